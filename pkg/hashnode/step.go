package hashnode

// This file implements the two next-generation algorithms as a recursive
// nine-subnode decomposition, grounded on the retrieved quadtree/
// NextGeneration reference: a level-L node's four children are combined,
// through their shared grandchildren, into nine overlapping level-(L-2)
// subnodes; those subnodes are regrouped into four overlapping
// level-(L-1) nodes, each stepped recursively; the four level-(L-2)
// results are recombined into the centered level-(L-1) output.
//
// "Deep" combinators below reach through a node's grandchildren (matching
// the reference exactly); the warp step additionally needs a second,
// "shallow" pair that reaches only one level down, used to build the
// quadrant-granularity neighborhood an extra half-step recursion needs —
// see the doc comment on WarpStep.

// centeredSubnode returns the level-(q.level-1) node at the center of q,
// built from q's grandchildren.
func centeredSubnode(c *Cache, q *Node, warp bool) *Node {
	return c.Quad(q.nw.se, q.ne.sw, q.sw.ne, q.se.nw, warp)
}

// centeredHorizontal returns the level-(w.level-1) node straddling the
// border between the west node w and the east node e, built from their
// grandchildren.
func centeredHorizontal(c *Cache, w, e *Node, warp bool) *Node {
	return c.Quad(w.ne.se, e.nw.sw, w.se.ne, e.sw.nw, warp)
}

// centeredVertical returns the level-(n.level-1) node straddling the border
// between the north node n and the south node s, built from their
// grandchildren.
func centeredVertical(c *Cache, n, s *Node, warp bool) *Node {
	return c.Quad(n.sw.se, n.se.sw, s.nw.ne, s.ne.nw, warp)
}

// centeredSubSubnode returns the level-(n.level-2) node at the true center
// of n, built from n's great-grandchildren (one level deeper than
// centeredSubnode, so it lands at the same level as the other eight
// subnodes below).
func centeredSubSubnode(c *Cache, n *Node, warp bool) *Node {
	return c.Quad(n.nw.se.se, n.ne.sw.sw, n.sw.ne.ne, n.se.nw.nw, warp)
}

// nineSubnodes builds the classic nine overlapping level-(n.level-2)
// subnodes tiling n's center at half the stride of its own quadrants.
func nineSubnodes(c *Cache, n *Node, warp bool) (n00, n01, n02, n10, n11, n12, n20, n21, n22 *Node) {
	nw, ne, sw, se := n.nw, n.ne, n.sw, n.se
	n00 = centeredSubnode(c, nw, warp)
	n01 = centeredHorizontal(c, nw, ne, warp)
	n02 = centeredSubnode(c, ne, warp)
	n10 = centeredVertical(c, nw, sw, warp)
	n11 = centeredSubSubnode(c, n, warp)
	n12 = centeredVertical(c, ne, se, warp)
	n20 = centeredSubnode(c, sw, warp)
	n21 = centeredHorizontal(c, sw, se, warp)
	n22 = centeredSubnode(c, se, warp)
	return
}

func base16(c *Cache, n *Node) *Node {
	var g [4][4]bool
	g[0][0], g[0][1] = n.nw.nw.alive, n.nw.ne.alive
	g[1][0], g[1][1] = n.nw.sw.alive, n.nw.se.alive
	g[0][2], g[0][3] = n.ne.nw.alive, n.ne.ne.alive
	g[1][2], g[1][3] = n.ne.sw.alive, n.ne.se.alive
	g[2][0], g[2][1] = n.sw.nw.alive, n.sw.ne.alive
	g[3][0], g[3][1] = n.sw.sw.alive, n.sw.se.alive
	g[2][2], g[2][3] = n.se.nw.alive, n.se.ne.alive
	g[3][2], g[3][3] = n.se.sw.alive, n.se.se.alive

	sumAround := func(r, c int) int {
		sum := 0
		for dr := -1; dr <= 1; dr++ {
			for dc := -1; dc <= 1; dc++ {
				if dr == 0 && dc == 0 {
					continue
				}
				if g[r+dr][c+dc] {
					sum++
				}
			}
		}
		return sum
	}
	nextAt := func(r, col int) bool {
		sum := sumAround(r, col)
		return sum == 3 || (g[r][col] && sum == 2)
	}

	nw := c.Cell(nextAt(1, 1))
	ne := c.Cell(nextAt(1, 2))
	sw := c.Cell(nextAt(2, 1))
	se := c.Cell(nextAt(2, 2))
	return c.Quad(nw, ne, sw, se, false)
}

// SimpleStep computes the centered level-(n.level-1) node one generation
// ahead. n.level must be at least 2. The result is memoized on n (keyed by
// n's own warpMode, which must be false — SimpleStep and WarpStep results
// never share a node's cache slot because a node's warpMode is fixed at
// construction and preserved through every boundary transform).
func (c *Cache) SimpleStep(n *Node) *Node {
	if n.level < 2 {
		panic("hashnode: SimpleStep requires level >= 2")
	}
	if n.resultSet {
		return n.result
	}

	var result *Node
	if n.level == 2 {
		result = base16(c, n)
	} else {
		n00, n01, n02, n10, n11, n12, n20, n21, n22 := nineSubnodes(c, n, false)
		comboNW := c.Quad(n00, n01, n10, n11, false)
		comboNE := c.Quad(n01, n02, n11, n12, false)
		comboSW := c.Quad(n10, n11, n20, n21, false)
		comboSE := c.Quad(n11, n12, n21, n22, false)
		result = c.Quad(c.SimpleStep(comboNW), c.SimpleStep(comboNE), c.SimpleStep(comboSW), c.SimpleStep(comboSE), false)
	}

	n.result, n.resultSet = result, true
	return result
}

// quadrantBorderHorizontal returns the level-w.level node straddling the
// border between west node w and east node e, built from their children
// (one level shallower than centeredHorizontal) — used only by WarpStep to
// build the quadrant-granularity neighborhood described below.
func quadrantBorderHorizontal(c *Cache, w, e *Node, warp bool) *Node {
	return c.Quad(w.ne, e.nw, w.se, e.sw, warp)
}

// quadrantBorderVertical is quadrantBorderHorizontal's north/south
// counterpart.
func quadrantBorderVertical(c *Cache, n, s *Node, warp bool) *Node {
	return c.Quad(n.sw, n.se, s.nw, s.ne, warp)
}

// WarpStep computes the centered level-(n.level-1) node 2^(n.level-2)
// generations ahead. n.level must be at least 2, and n (along with every
// node reachable through it) must carry warpMode true.
//
// A single recursive call, structured exactly like SimpleStep's nine
// subnodes feeding four combinations, only ever advances by one
// generation regardless of level — memoization makes repeated states
// cheap to revisit, but it does not make any one state reachable in fewer
// steps. Reaching 2^(level-2) generations in logarithmically many calls
// needs two half-advances chained together, each covering half the
// target distance, with the second half-advance seeing a neighborhood
// that has already moved.
//
// So WarpStep first builds the nine quadrant-granularity neighbors of n
// (its four children, the four node-width regions straddling each pair of
// adjacent children, and the true center — all level n.level-1, mirroring
// nineSubnodes one level shallower) and warp-steps each of the nine,
// advancing every one of them by half the target distance. Those nine
// half-advanced results are then regrouped into four overlapping
// level-(n.level-1) combinations — the same grouping nineSubnodes feeds
// into SimpleStep's last recursion — and warp-stepped a second time,
// advancing the remaining half. The four final results recombine into the
// centered output.
func (c *Cache) WarpStep(n *Node) *Node {
	if n.level < 2 {
		panic("hashnode: WarpStep requires level >= 2")
	}
	if !n.warpMode {
		panic("hashnode: WarpStep requires a node built with warpMode true")
	}
	if n.resultSet {
		return n.result
	}

	var result *Node
	if n.level == 2 {
		result = base16(c, n)
	} else {
		nw, ne, sw, se := n.nw, n.ne, n.sw, n.se

		pN := quadrantBorderHorizontal(c, nw, ne, true)
		pS := quadrantBorderHorizontal(c, sw, se, true)
		pW := quadrantBorderVertical(c, nw, sw, true)
		pE := quadrantBorderVertical(c, ne, se, true)
		pC := centeredSubnode(c, n, true)

		rNW := c.WarpStep(nw)
		rNE := c.WarpStep(ne)
		rSW := c.WarpStep(sw)
		rSE := c.WarpStep(se)
		rN := c.WarpStep(pN)
		rS := c.WarpStep(pS)
		rW := c.WarpStep(pW)
		rE := c.WarpStep(pE)
		rC := c.WarpStep(pC)

		comboNW := c.Quad(rNW, rN, rW, rC, true)
		comboNE := c.Quad(rN, rNE, rC, rE, true)
		comboSW := c.Quad(rW, rC, rSW, rS, true)
		comboSE := c.Quad(rC, rE, rS, rSE, true)

		result = c.Quad(c.WarpStep(comboNW), c.WarpStep(comboNE), c.WarpStep(comboSW), c.WarpStep(comboSE), true)
	}

	n.result, n.resultSet = result, true
	return result
}
