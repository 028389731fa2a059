package jps

const (
	flagOpen uint8 = 1 << iota
	flagClosed
	flagForced // expansion found at least one forced neighbor
)

// noParent marks the start node (and unvisited nodes).
const noParent = -1

// node is the per-cell search record. A node whose gen differs from the
// arena's is unvisited and its other fields are meaningless.
type node struct {
	g, h, f float64
	parent  int
	seq     uint64 // insertion order, for deterministic ties
	pos     int    // position inside the heap frontier, -1 when absent
	gen     uint32
	flags   uint8
}

// arena is a flat row-major table of nodes plus a touched-cell stamp table.
type arena struct {
	nodes   []node
	touched []uint32
	gen     uint32
	seq     uint64
}

func newArena(size int) *arena {
	return &arena{
		nodes:   make([]node, size),
		touched: make([]uint32, size),
	}
}

// reset invalidates every node in O(1). A full sweep happens only when the
// 32-bit generation wraps.
func (a *arena) reset() {
	a.gen++
	if a.gen == 0 {
		for i := range a.nodes {
			a.nodes[i] = node{}
			a.touched[i] = 0
		}
		a.gen = 1
	}
	a.seq = 0
}

// at returns node i, initialising it if it belongs to an older generation.
func (a *arena) at(i int) *node {
	n := &a.nodes[i]
	if n.gen != a.gen {
		*n = node{parent: noParent, pos: -1, gen: a.gen}
	}

	return n
}

// visited reports whether node i was initialised during this search.
func (a *arena) visited(i int) bool {
	return a.nodes[i].gen == a.gen
}

// has reports whether node i belongs to this search and carries flag.
func (a *arena) has(i int, flag uint8) bool {
	n := &a.nodes[i]

	return n.gen == a.gen && n.flags&flag != 0
}

// touch stamps cell i as entered, reporting whether it was new.
func (a *arena) touch(i int) bool {
	if a.touched[i] == a.gen {
		return false
	}
	a.touched[i] = a.gen

	return true
}

func (a *arena) wasTouched(i int) bool {
	return a.touched[i] == a.gen
}

func (a *arena) nextSeq() uint64 {
	a.seq++

	return a.seq
}

// before orders frontier entries: lower f, then lower h, then earlier insertion.
func (a *arena) before(i, j int) bool {
	ni, nj := &a.nodes[i], &a.nodes[j]
	if ni.f != nj.f {
		return ni.f < nj.f
	}
	if ni.h != nj.h {
		return ni.h < nj.h
	}

	return ni.seq < nj.seq
}
