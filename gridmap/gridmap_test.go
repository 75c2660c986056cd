package gridmap_test

import (
	"errors"
	"testing"

	"github.com/rykarov/gridsearch/gridmap"
	"github.com/rykarov/gridsearch/search"
)

//----------------------------------------------------------------------------//
// New and accessor tests
//----------------------------------------------------------------------------//

// TestNew_Errors verifies that New rejects empty or ragged inputs.
func TestNew_Errors(t *testing.T) {
	cases := []struct {
		name  string
		cells [][]int
		err   error
	}{
		{"EmptyRows", [][]int{}, gridmap.ErrEmptyGrid},
		{"EmptyCols", [][]int{{}}, gridmap.ErrEmptyGrid},
		{"NonRectangular", [][]int{{0, 0}, {0}}, gridmap.ErrNonRectangular},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := gridmap.New(tc.cells)
			if !errors.Is(err, tc.err) {
				t.Errorf("New(%v) error = %v; want %v", tc.cells, err, tc.err)
			}
		})
	}
}

// TestInBoundsAndPassable checks bounds and wall detection on a 3×2 grid.
func TestInBoundsAndPassable(t *testing.T) {
	g, err := gridmap.New([][]int{
		{0, 1, 0},
		{1, 0, 1},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	if g.Width() != 3 || g.Height() != 2 {
		t.Fatalf("dimensions = %dx%d; want 3x2", g.Width(), g.Height())
	}

	valid := [][2]int{{0, 0}, {2, 1}, {1, 1}}
	for _, xy := range valid {
		if !g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=false; want true", xy[0], xy[1])
		}
	}
	invalid := [][2]int{{-1, 0}, {3, 0}, {1, 2}, {2, -1}}
	for _, xy := range invalid {
		if g.InBounds(xy[0], xy[1]) {
			t.Errorf("InBounds(%d,%d)=true; want false", xy[0], xy[1])
		}
	}

	if !g.Passable(0, 0) || g.Passable(1, 0) {
		t.Error("Passable must follow the cell values")
	}
	if g.Passable(-1, 0) {
		t.Error("out-of-bounds cells must not be passable")
	}
}

// TestNew_DeepCopies verifies that mutating the input after construction
// does not leak into the grid.
func TestNew_DeepCopies(t *testing.T) {
	cells := [][]int{{0, 0}, {0, 0}}
	g, err := gridmap.New(cells)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	cells[0][0] = 1
	if !g.Passable(0, 0) {
		t.Error("grid must deep-copy its input")
	}
}

// TestBlock verifies in-place blocking and its bounds check.
func TestBlock(t *testing.T) {
	g, err := gridmap.New([][]int{{0, 0}, {0, 0}})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if err := g.Block(1, 1); err != nil {
		t.Fatalf("Block(1,1) error: %v", err)
	}
	if g.Passable(1, 1) {
		t.Error("Block(1,1) left the cell passable")
	}
	if err := g.Block(5, 5); !errors.Is(err, gridmap.ErrOutOfBounds) {
		t.Errorf("Block(5,5) error = %v; want ErrOutOfBounds", err)
	}
}

//----------------------------------------------------------------------------//
// Successor generation tests
//----------------------------------------------------------------------------//

// TestSuccessors_OrderAndCosts verifies the fixed N, NE, E, SE, S, SW, W, NW
// order and the stamped g-values on an open 3×3 grid.
func TestSuccessors_OrderAndCosts(t *testing.T) {
	g, err := gridmap.New([][]int{
		{0, 0, 0},
		{0, 0, 0},
		{0, 0, 0},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	center := search.NewState(1, 1)
	center.G = 2.0
	succ := g.Successors(center)

	want := []struct {
		x, y int
		g    float64
	}{
		{1, 0, 3.0}, {2, 0, 3.5}, {2, 1, 3.0}, {2, 2, 3.5},
		{1, 2, 3.0}, {0, 2, 3.5}, {0, 1, 3.0}, {0, 0, 3.5},
	}
	if len(succ) != len(want) {
		t.Fatalf("len(succ) = %d; want %d", len(succ), len(want))
	}
	for i, w := range want {
		if succ[i].X != w.x || succ[i].Y != w.y || succ[i].G != w.g {
			t.Errorf("succ[%d] = %v g=%g; want [%d, %d] g=%g",
				i, succ[i], succ[i].G, w.x, w.y, w.g)
		}
	}
}

// TestSuccessors_CornerAndWalls checks pruning at boundaries and walls.
func TestSuccessors_CornerAndWalls(t *testing.T) {
	g, err := gridmap.New([][]int{
		{0, 0},
		{0, 1},
	})
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	// From (0,0): E=(1,0) and S=(0,1) are open, SE=(1,1) is a wall.
	succ := g.Successors(search.NewState(0, 0))
	if len(succ) != 2 {
		t.Fatalf("len(succ) = %d; want 2", len(succ))
	}
}

// TestSuccessors_CornerCutting verifies the diagonal squeeze rule: blocked
// by default, permitted with WithCornerCutting.
func TestSuccessors_CornerCutting(t *testing.T) {
	cells := [][]int{
		{0, 1, 0},
		{1, 0, 0},
		{0, 0, 0},
	}

	strict, err := gridmap.New(cells)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	// From (0,0): E and S are walls, so the SE diagonal into (1,1) would
	// squeeze between them.
	if got := strict.Successors(search.NewState(0, 0)); len(got) != 0 {
		t.Errorf("strict successors = %v; want none", got)
	}

	loose, err := gridmap.New(cells, gridmap.WithCornerCutting())
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	got := loose.Successors(search.NewState(0, 0))
	if len(got) != 1 || got[0].X != 1 || got[0].Y != 1 || got[0].G != 1.5 {
		t.Errorf("corner-cutting successors = %v; want [[1, 1]] at g=1.5", got)
	}
}

// TestSuccessors_CustomCosts verifies the cost-model options.
func TestSuccessors_CustomCosts(t *testing.T) {
	g, err := gridmap.New(
		[][]int{{0, 0}, {0, 0}},
		gridmap.WithCardinalCost(2),
		gridmap.WithDiagonalCost(3),
	)
	if err != nil {
		t.Fatalf("New error: %v", err)
	}

	for _, s := range g.Successors(search.NewState(0, 0)) {
		diagonal := s.X == 1 && s.Y == 1
		if diagonal && s.G != 3 {
			t.Errorf("diagonal g = %g; want 3", s.G)
		}
		if !diagonal && s.G != 2 {
			t.Errorf("cardinal g = %g; want 2", s.G)
		}
	}
}

// TestBlockThreshold verifies that WithBlockThreshold reclassifies cells.
func TestBlockThreshold(t *testing.T) {
	g, err := gridmap.New([][]int{{0, 1, 2}}, gridmap.WithBlockThreshold(2))
	if err != nil {
		t.Fatalf("New error: %v", err)
	}
	if !g.Passable(1, 0) {
		t.Error("value 1 below threshold 2 must be passable")
	}
	if g.Passable(2, 0) {
		t.Error("value 2 at threshold must be a wall")
	}
}
