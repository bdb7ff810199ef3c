package hashnode

// ZeroPad grows n by one level, placing it centered within a canvas
// twice the side length, bordered on every side by dead cells. n.level
// must be at least 1. The result preserves n's warpMode, so a node built
// for WarpStep stays eligible for WarpStep after padding.
func (c *Cache) ZeroPad(n *Node) *Node {
	if n.level < 1 {
		panic("hashnode: ZeroPad requires level >= 1")
	}
	warp := n.warpMode
	zero := c.Zero(n.nw.level, warp)

	newNW := c.Quad(zero, zero, zero, n.nw, warp)
	newNE := c.Quad(zero, zero, n.ne, zero, warp)
	newSW := c.Quad(zero, n.sw, zero, zero, warp)
	newSE := c.Quad(n.se, zero, zero, zero, warp)
	return c.Quad(newNW, newNE, newSW, newSE, warp)
}

// TorusPad grows n by one level by tiling a 2x2 copy of n rolled by half
// its side (quadrants reordered se, sw, ne, nw), so the canvas's outer
// border is a wrapped copy of n's own far edge. The geometric center of
// that tiling is n itself, so stepping the result once and reading off the
// centered output is exactly Conway's rule evaluated on n with toroidal
// (wraparound) neighbors, in place. n.level must be at least 1; the result
// preserves n's warpMode.
func (c *Cache) TorusPad(n *Node) *Node {
	if n.level < 1 {
		panic("hashnode: TorusPad requires level >= 1")
	}
	rolled := c.Quad(n.se, n.sw, n.ne, n.nw, n.warpMode)
	return c.Quad(rolled, rolled, rolled, rolled, n.warpMode)
}

// ZeroPrune reverses the growth ZeroPad/TorusPad followed by a step can
// leave behind: if n's outer ring (everything outside its centered half)
// is entirely dead, ZeroPrune replaces n with its centered subnode and
// tries again, repeating until the outer ring holds a live cell or n can
// no longer be halved. This is what lets Open mode's canvas shrink back
// down after growing to make room for an expanding pattern, instead of
// growing forever even once the pattern has stabilized.
func (c *Cache) ZeroPrune(n *Node) *Node {
	for n.level >= 2 && outerRingEmpty(n) {
		n = centeredSubnode(c, n, n.warpMode)
	}
	return n
}

func outerRingEmpty(n *Node) bool {
	nw, ne, sw, se := n.nw, n.ne, n.sw, n.se
	return nw.nw.isEmpty && nw.ne.isEmpty && nw.sw.isEmpty &&
		ne.nw.isEmpty && ne.ne.isEmpty && ne.se.isEmpty &&
		sw.nw.isEmpty && sw.sw.isEmpty && sw.se.isEmpty &&
		se.ne.isEmpty && se.sw.isEmpty && se.se.isEmpty
}
