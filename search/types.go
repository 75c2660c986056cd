// Package search defines the core types shared by both engines: the State
// entity, the Map collaborator contract, and the Searcher interface.
package search

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by engine constructors.
var (
	// ErrNilMap indicates that a nil Map collaborator was passed to an engine constructor.
	ErrNilMap = errors.New("search: map collaborator is nil")

	// ErrEmptyMap indicates that the Map collaborator reports zero width or height,
	// leaving no cell to search over.
	ErrEmptyMap = errors.New("search: map has zero width or height")
)

// NoPathCost is the sentinel cost returned by Search when no path exists
// between start and goal. The accompanying expansion count is 0.
const NoPathCost = -1

// State represents one grid cell instance in the search tree — not the grid
// cell itself. The same (x, y) position may be represented by several State
// instances during a search, each carrying a different cost history, until
// the engines resolve them as duplicates.
//
// Identity is (X, Y) only; the cost fields never participate in equality.
type State struct {
	// X and Y are the grid coordinates; together they are the state's identity.
	X, Y int

	// G is the accumulated path cost from the start state. Successor states
	// arrive from the Map collaborator with G already stamped.
	G float64

	// H is the heuristic estimate of the remaining cost to the goal.
	// Only the Heuristic engine assigns it.
	H float64

	// Cost is the open-heap sort key: G for UniformCost, G+H for Heuristic.
	Cost float64

	// heapIndex is the state's current slot in the open heap, maintained by
	// the heap operations; -1 when the state is not enqueued.
	heapIndex int
}

// NewState returns a State at (x, y) with all cost fields zero.
// Drivers use it to build start and goal states.
func NewState(x, y int) *State {
	return &State{X: x, Y: y, heapIndex: -1}
}

// Equals reports whether s and o represent the same grid position.
// The g/h/cost fields do not participate.
func (s *State) Equals(o *State) bool {
	return s.X == o.X && s.Y == o.Y
}

// Key returns the canonical key of s for bookkeeping maps: the perfect hash
// y*width + x. The grid width is a property of the map, not of the state, so
// it must be supplied explicitly by whoever owns the map configuration.
func (s *State) Key(width int) int {
	return s.Y*width + s.X
}

// String renders the state as "[x, y]".
func (s *State) String() string {
	return fmt.Sprintf("[%d, %d]", s.X, s.Y)
}

// Map is the collaborator contract the engines search over. The map owns the
// grid dimensions, the obstacle layout, and the edge-cost model; the engines
// only ever read the g-values it stamps.
//
// Successors must return a finite sequence of successor states for s, each
// pre-populated with the cumulative path cost (g-value) of reaching it from
// the start via this edge, with no duplicate positions within one call.
// The sequence order must be deterministic if reproducible expansion counts
// are required. Successor generation is assumed side-effect-free.
type Map interface {
	Width() int
	Height() int
	Successors(s *State) []*State
}

// Searcher is the single capability both engines expose.
//
// Search returns the minimum path cost between start and goal together with
// the number of node expansions performed (every pop from the open heap
// counts, the goal's own pop included). If no path exists, it returns the
// sentinel pair (NoPathCost, 0) — a normal outcome, not an error.
//
// Each call resets the engine's internal structures, so one engine is
// reusable across sequential calls. Engines are not safe for concurrent use.
type Searcher interface {
	Search(start, goal *State) (cost float64, expanded int)
}
