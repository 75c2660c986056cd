// Package gridmap defines core types, options, and sentinel errors
// for the grid map collaborator.
package gridmap

import (
	"errors"
)

// Sentinel errors for gridmap operations.
var (
	// ErrEmptyGrid indicates input cells have no rows or no columns.
	ErrEmptyGrid = errors.New("gridmap: grid must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("gridmap: all rows must have the same length")
	// ErrBadHeader indicates a malformed MovingAI map header.
	ErrBadHeader = errors.New("gridmap: malformed map header")
	// ErrBadDimensions indicates a map body that does not match its declared dimensions.
	ErrBadDimensions = errors.New("gridmap: map body does not match declared dimensions")
	// ErrBadCell indicates an unrecognized cell glyph in a map body.
	ErrBadCell = errors.New("gridmap: unrecognized cell glyph")
	// ErrOutOfBounds indicates a coordinate outside the grid boundaries.
	ErrOutOfBounds = errors.New("gridmap: coordinate outside grid boundaries")
)

// Default movement costs. The search package's heuristic assumes exactly
// this cardinal/diagonal ratio; override with care.
const (
	DefaultCardinalCost = 1.0
	DefaultDiagonalCost = 1.5
)

// Options contains tunable parameters for grid construction.
type Options struct {
	// CardinalCost is the edge cost of a N/E/S/W step.
	CardinalCost float64
	// DiagonalCost is the edge cost of a diagonal step.
	DiagonalCost float64
	// BlockThreshold specifies the minimum cell value considered a wall.
	BlockThreshold int
	// CornerCutting permits diagonal steps between two walls. When false,
	// a diagonal move requires both adjacent cardinal cells to be passable.
	CornerCutting bool
}

// DefaultOptions returns an Options with default settings:
// CardinalCost=1.0, DiagonalCost=1.5, BlockThreshold=1 (values ≥1 are
// walls), CornerCutting=false.
func DefaultOptions() Options {
	return Options{
		CardinalCost:   DefaultCardinalCost,
		DiagonalCost:   DefaultDiagonalCost,
		BlockThreshold: 1,
	}
}

// Option represents a functional option for configuring a Grid.
type Option func(*Options)

// WithCardinalCost sets the edge cost of cardinal (N/E/S/W) steps.
func WithCardinalCost(c float64) Option {
	return func(o *Options) { o.CardinalCost = c }
}

// WithDiagonalCost sets the edge cost of diagonal steps.
func WithDiagonalCost(c float64) Option {
	return func(o *Options) { o.DiagonalCost = c }
}

// WithBlockThreshold sets the minimum cell value considered a wall.
func WithBlockThreshold(t int) Option {
	return func(o *Options) { o.BlockThreshold = t }
}

// WithCornerCutting permits diagonal movement between two walls.
func WithCornerCutting() Option {
	return func(o *Options) { o.CornerCutting = true }
}

// move describes one of the 8 neighbor offsets.
type move struct {
	dx, dy   int
	diagonal bool
}

// moveOffsets is the fixed successor generation order: N, NE, E, SE, S, SW,
// W, NW. Changing this order changes expansion counts downstream.
var moveOffsets = [8]move{
	{0, -1, false},
	{1, -1, true},
	{1, 0, false},
	{1, 1, true},
	{0, 1, false},
	{-1, 1, true},
	{-1, 0, false},
	{-1, -1, true},
}
