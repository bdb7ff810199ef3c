package hashnode

// nodeKey is the structural identity of a Node: two nodes with equal keys
// are the same node. level is redundant for interior nodes (it follows from
// the children) but kept explicit so base cells (which carry no children)
// participate in the same map without a separate table.
type nodeKey struct {
	level    int
	alive    bool
	warpMode bool
	nw, ne, sw, se *Node
}

func keyOf(n *Node) nodeKey {
	if n.level == 0 {
		return nodeKey{level: 0, alive: n.alive}
	}
	return nodeKey{
		level:    n.level,
		warpMode: n.warpMode,
		nw:       n.nw,
		ne:       n.ne,
		sw:       n.sw,
		se:       n.se,
	}
}

// Cache is the interning table and node factory for one universe of work.
// It is an explicit, caller-owned context rather than a package-level
// singleton guarded by a mutex: a single goroutine evaluates one Life
// instance's generations in sequence, so nothing here needs to be
// concurrency-safe, and keeping the table as an explicit value lets callers
// run independent universes — e.g. the two sides of a Validate comparison —
// without sharing (and so without contending on, or cross-polluting) each
// other's interning table.
type Cache struct {
	table map[nodeKey]*Node
	zeros [2][]*Node
}

// NewCache returns an empty Cache.
func NewCache() *Cache {
	return &Cache{table: make(map[nodeKey]*Node)}
}

var defaultCache = NewCache()

// Default returns a package-level Cache for callers that don't need
// isolation from other users of this package, such as one-off pattern
// loaders or ad hoc tooling.
func Default() *Cache { return defaultCache }

func (c *Cache) intern(n *Node) *Node {
	key := keyOf(n)
	if existing, ok := c.table[key]; ok {
		return existing
	}
	c.table[key] = n
	return n
}

// Cell returns the canonical level-0 node for the given state.
func (c *Cache) Cell(alive bool) *Node {
	return c.intern(&Node{level: 0, alive: alive, isEmpty: !alive})
}

// Quad combines four equal-level children into the canonical level-(L+1)
// node. It panics if the children's levels disagree.
func (c *Cache) Quad(nw, ne, sw, se *Node, warpMode bool) *Node {
	if nw.level != ne.level || nw.level != sw.level || nw.level != se.level {
		panic("hashnode: Quad requires four children of equal level")
	}
	return c.intern(&Node{
		level:    nw.level + 1,
		warpMode: warpMode,
		nw:       nw,
		ne:       ne,
		sw:       sw,
		se:       se,
		isEmpty:  nw.isEmpty && ne.isEmpty && sw.isEmpty && se.isEmpty,
	})
}

// Zero returns the canonical all-dead node at the given level, built with
// the requested warpMode. A node's warpMode is fixed at construction and
// preserved through every boundary transform, so a zero frame spliced into
// a warp-true node must itself carry warpMode true — otherwise it (and
// every node built above it) would reach WarpStep with warpMode false and
// panic.
func (c *Cache) Zero(level int, warp bool) *Node {
	if level < 0 {
		panic("hashnode: Zero requires a non-negative level")
	}
	ladder := &c.zeros[boolIndex(warp)]
	for len(*ladder) <= level {
		if len(*ladder) == 0 {
			*ladder = append(*ladder, c.Cell(false))
			continue
		}
		prev := (*ladder)[len(*ladder)-1]
		*ladder = append(*ladder, c.Quad(prev, prev, prev, prev, warp))
	}
	return (*ladder)[level]
}

func boolIndex(b bool) int {
	if b {
		return 1
	}
	return 0
}

// Size returns the number of distinct canonical nodes currently interned.
func (c *Cache) Size() int { return len(c.table) }

// Clear discards every interned node, including the zero-node ladder. Node
// values obtained before Clear can still be read, but they are no longer
// canonical for this Cache: a node built after Clear is never
// pointer-equal to one built before it, even when the two are structurally
// equal, so old and new nodes must not be combined.
func (c *Cache) Clear() {
	c.table = make(map[nodeKey]*Node)
	c.zeros = [2][]*Node{}
}
