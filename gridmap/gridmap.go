// Package gridmap implements the Grid collaborator: construction,
// passability queries, and successor generation for the search engines.
package gridmap

import (
	"github.com/rykarov/gridsearch/search"
)

// Grid treats a rectangular 2-D integer layout as a search map.
// Cells with value ≥ BlockThreshold are impassable walls; the rest are open.
// It is immutable once built, except for ApplyZones, which may block
// additional cells before searching starts.
type Grid struct {
	width, height int
	cells         [][]int
	opts          Options
}

// New constructs a Grid from a non-empty, rectangular 2-D slice.
// It deep-copies the input to ensure immutability.
// Returns ErrEmptyGrid if cells has no rows or no columns,
// ErrNonRectangular if any row length differs.
// Complexity: O(W×H) time and memory.
func New(cells [][]int, opts ...Option) (*Grid, error) {
	if len(cells) == 0 || len(cells[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	h, w := len(cells), len(cells[0])
	for _, row := range cells {
		if len(row) != w {
			return nil, ErrNonRectangular
		}
	}

	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// Deep copy to prevent external mutation.
	copied := make([][]int, h)
	for y := 0; y < h; y++ {
		copied[y] = make([]int, w)
		copy(copied[y], cells[y])
	}

	return &Grid{
		width:  w,
		height: h,
		cells:  copied,
		opts:   cfg,
	}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// InBounds reports whether (x,y) lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.width && y >= 0 && y < g.height
}

// Passable reports whether (x,y) is inside the grid and not a wall.
// Complexity: O(1).
func (g *Grid) Passable(x, y int) bool {
	return g.InBounds(x, y) && g.cells[y][x] < g.opts.BlockThreshold
}

// Block marks (x,y) impassable. Returns ErrOutOfBounds for coordinates
// outside the grid. Used by zone rasterization and by drivers that patch
// maps before searching.
func (g *Grid) Block(x, y int) error {
	if !g.InBounds(x, y) {
		return ErrOutOfBounds
	}
	g.cells[y][x] = g.opts.BlockThreshold

	return nil
}

// Successors generates the passable 8-directional neighbors of s, each a
// fresh state stamped with its cumulative g-value: s.G plus the cardinal or
// diagonal edge cost. Offsets are visited in the fixed N, NE, E, SE, S, SW,
// W, NW order, so the sequence is deterministic and free of duplicates.
//
// Unless corner cutting is enabled, a diagonal step additionally requires
// both adjacent cardinal cells to be passable.
//
// Complexity: O(1) — at most 8 neighbors.
func (g *Grid) Successors(s *search.State) []*search.State {
	succ := make([]*search.State, 0, len(moveOffsets))
	for _, m := range moveOffsets {
		nx, ny := s.X+m.dx, s.Y+m.dy
		if !g.Passable(nx, ny) {
			continue
		}
		cost := g.opts.CardinalCost
		if m.diagonal {
			if !g.opts.CornerCutting && !(g.Passable(s.X+m.dx, s.Y) && g.Passable(s.X, s.Y+m.dy)) {
				continue
			}
			cost = g.opts.DiagonalCost
		}
		n := search.NewState(nx, ny)
		n.G = s.G + cost
		succ = append(succ, n)
	}

	return succ
}
