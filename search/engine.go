package search

import "container/heap"

// engine holds the scaffolding both variants share: the map collaborator,
// the open heap, and an index from canonical key to the live open entry.
//
// The open heap and the index always reference the same logical record per
// position — one *State — so relaxation updates apply once and are reflected
// everywhere. There are no stale duplicate heap entries: every pop is a
// genuine expansion.
type engine struct {
	m     Map
	width int            // cached Map.Width(), shared configuration for canonical keys
	open  openHeap       // discovered-but-not-yet-expanded states, min Cost first
	index map[int]*State // canonical key → the state currently enqueued in open
}

// newEngine validates the collaborator and builds the shared scaffolding.
func newEngine(m Map) (engine, error) {
	if m == nil {
		return engine{}, ErrNilMap
	}
	if m.Width() <= 0 || m.Height() <= 0 {
		return engine{}, ErrEmptyMap
	}

	return engine{m: m, width: m.Width()}, nil
}

// key returns the canonical bookkeeping key for s under this map's width.
func (e *engine) key(s *State) int {
	return s.Key(e.width)
}

// reset discards all per-invocation structures. Called at the top of every
// Search so one engine is reusable across sequential invocations.
func (e *engine) reset() {
	e.open = make(openHeap, 0, e.width)
	e.index = make(map[int]*State, e.width)
}

// push enqueues s and registers it as the live open record for its position.
func (e *engine) push(s *State) {
	heap.Push(&e.open, s)
	e.index[e.key(s)] = s
}

// pop removes and returns the minimum-cost state, dropping its index entry.
func (e *engine) pop() *State {
	s := heap.Pop(&e.open).(*State)
	delete(e.index, e.key(s))

	return s
}

// fix restores heap order around s after its Cost was lowered in place.
func (e *engine) fix(s *State) {
	heap.Fix(&e.open, s.heapIndex)
}
