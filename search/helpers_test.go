package search_test

import (
	"testing"

	"github.com/rykarov/gridsearch/gridmap"
	"github.com/rykarov/gridsearch/search"
)

// stubMap is a minimal Map implementation for exercising engine behavior
// without a real grid (empty maps, custom successor functions).
type stubMap struct {
	width, height int
	successors    func(s *search.State) []*search.State
}

func (m *stubMap) Width() int  { return m.width }
func (m *stubMap) Height() int { return m.height }

func (m *stubMap) Successors(s *search.State) []*search.State {
	if m.successors == nil {
		return nil
	}

	return m.successors(s)
}

// recordingMap wraps a Grid and records the Cost field of every state whose
// successors are requested — the expansion order, goal pop excluded.
type recordingMap struct {
	*gridmap.Grid
	popped []float64
}

func (r *recordingMap) Successors(s *search.State) []*search.State {
	r.popped = append(r.popped, s.Cost)

	return r.Grid.Successors(s)
}

// openGrid builds an n×n grid with no walls.
func openGrid(t testing.TB, n int) *gridmap.Grid {
	t.Helper()
	cells := make([][]int, n)
	for y := range cells {
		cells[y] = make([]int, n)
	}
	g, err := gridmap.New(cells)
	if err != nil {
		t.Fatalf("openGrid(%d): %v", n, err)
	}

	return g
}

// wallsGrid builds a fixed 6×6 grid with interior walls; every open cell is
// reachable from every other open cell.
func wallsGrid(t testing.TB) *gridmap.Grid {
	t.Helper()
	cells := [][]int{
		{0, 0, 0, 0, 0, 0},
		{0, 1, 1, 1, 1, 0},
		{0, 0, 0, 0, 1, 0},
		{1, 1, 1, 0, 1, 0},
		{0, 0, 0, 0, 1, 0},
		{0, 0, 1, 0, 0, 0},
	}
	g, err := gridmap.New(cells)
	if err != nil {
		t.Fatalf("wallsGrid: %v", err)
	}

	return g
}

// enclosedGoalGrid builds a 5×5 grid whose center cell (2,2) is walled in on
// all eight sides.
func enclosedGoalGrid(t testing.TB) *gridmap.Grid {
	t.Helper()
	cells := [][]int{
		{0, 0, 0, 0, 0},
		{0, 1, 1, 1, 0},
		{0, 1, 0, 1, 0},
		{0, 1, 1, 1, 0},
		{0, 0, 0, 0, 0},
	}
	g, err := gridmap.New(cells)
	if err != nil {
		t.Fatalf("enclosedGoalGrid: %v", err)
	}

	return g
}
