package search

// openHeap is a min-heap of *State ordered by Cost ascending, implementing
// container/heap. Equal costs are ordered by ascending row-major position
// (lower Y, then lower X) so that expansion order is deterministic.
//
// Each state records its current heap slot in heapIndex, kept up to date by
// Swap/Push/Pop. That index makes relaxation a true decrease-key: update the
// entry in place and heap.Fix its slot in O(log n), no full rebuild.
type openHeap []*State

// Len returns the number of enqueued states.
func (h openHeap) Len() int { return len(h) }

// Less orders by Cost ascending; ties break on row-major position.
func (h openHeap) Less(i, j int) bool {
	if h[i].Cost != h[j].Cost {
		return h[i].Cost < h[j].Cost
	}
	if h[i].Y != h[j].Y {
		return h[i].Y < h[j].Y
	}

	return h[i].X < h[j].X
}

// Swap exchanges two entries and keeps their heap indices current.
func (h openHeap) Swap(i, j int) {
	h[i], h[j] = h[j], h[i]
	h[i].heapIndex = i
	h[j].heapIndex = j
}

// Push appends x; called by heap.Push, x must be a *State.
func (h *openHeap) Push(x interface{}) {
	s := x.(*State)
	s.heapIndex = len(*h)
	*h = append(*h, s)
}

// Pop removes and returns the last entry; called by heap.Pop after the
// minimum has been swapped to the end.
func (h *openHeap) Pop() interface{} {
	old := *h
	n := len(old)
	s := old[n-1]
	old[n-1] = nil
	s.heapIndex = -1
	*h = old[:n-1]

	return s
}
