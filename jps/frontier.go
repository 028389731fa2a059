package jps

import "container/heap"

// frontier is the open set. Priorities live in the arena; the frontier only
// stores node indices.
type frontier interface {
	insert(i int)
	extractMin() int
	decrease(i int) // node i's f just dropped
	size() int
	clear()
}

func newFrontier(kind FrontierKind, a *arena) frontier {
	if kind == LinearFrontier {
		return &linearFrontier{a: a}
	}

	return &heapFrontier{a: a}
}

// heapFrontier is a binary min-heap with decrease-key via stored positions.
type heapFrontier struct {
	a     *arena
	items []int
}

// Len returns the number of items in the heap.
func (h *heapFrontier) Len() int { return len(h.items) }

// Less defines the comparison: see arena.before.
func (h *heapFrontier) Less(i, j int) bool { return h.a.before(h.items[i], h.items[j]) }

// Swap swaps two elements and keeps their stored positions current.
func (h *heapFrontier) Swap(i, j int) {
	h.items[i], h.items[j] = h.items[j], h.items[i]
	h.a.nodes[h.items[i]].pos = i
	h.a.nodes[h.items[j]].pos = j
}

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be a node index.
func (h *heapFrontier) Push(x any) {
	i := x.(int)
	h.a.nodes[i].pos = len(h.items)
	h.items = append(h.items, i)
}

// Pop removes and returns the last element.
// Called by heap.Pop after it has moved the minimum to the end.
func (h *heapFrontier) Pop() any {
	n := len(h.items)
	i := h.items[n-1]
	h.items = h.items[:n-1]
	h.a.nodes[i].pos = -1

	return i
}

func (h *heapFrontier) insert(i int)    { heap.Push(h, i) }
func (h *heapFrontier) extractMin() int { return heap.Pop(h).(int) }
func (h *heapFrontier) decrease(i int)  { heap.Fix(h, h.a.nodes[i].pos) }
func (h *heapFrontier) size() int       { return len(h.items) }
func (h *heapFrontier) clear()          { h.items = h.items[:0] }

// linearFrontier keeps entries unordered and scans for the minimum.
type linearFrontier struct {
	a     *arena
	items []int
}

func (l *linearFrontier) insert(i int) { l.items = append(l.items, i) }

func (l *linearFrontier) extractMin() int {
	best := 0
	for k := 1; k < len(l.items); k++ {
		if l.a.before(l.items[k], l.items[best]) {
			best = k
		}
	}
	i := l.items[best]
	last := len(l.items) - 1
	l.items[best] = l.items[last]
	l.items = l.items[:last]

	return i
}

func (l *linearFrontier) decrease(int) {}
func (l *linearFrontier) size() int    { return len(l.items) }
func (l *linearFrontier) clear()       { l.items = l.items[:0] }
