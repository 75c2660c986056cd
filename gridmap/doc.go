// Package gridmap provides the map collaborator for the search engines: a
// rectangular grid of cells with 8-directional movement and tunable costs.
//
// What:
//
//   - Grid wraps a rectangular [][]int cell layout; cells with value ≥
//     BlockThreshold are impassable walls.
//   - Successors generates the passable 8-directional neighbors of a state,
//     each stamped with its cumulative g-value (cardinal cost 1.0, diagonal
//     cost 1.5 by default). Grid therefore satisfies search.Map.
//   - Load parses the MovingAI octile benchmark .map format.
//   - ApplyZones rasterizes GeoJSON polygon no-go zones onto the grid,
//     blocking every cell whose center lies inside a zone.
//
// Why:
//
//   - Game maps: walls, forests, and water as impassable glyphs.
//   - Robotics and drone planning: keep-out areas arrive as polygons, not
//     cell lists; rasterization bridges the two worlds.
//
// Determinism:
//
//   - Successor order is fixed — the 8 offsets are visited N, NE, E, SE, S,
//     SW, W, NW — so search expansion counts are reproducible.
//
// Options:
//
//   - WithCardinalCost / WithDiagonalCost: movement cost model. The default
//     1.0/1.5 pair is the model the search package's heuristic assumes;
//     changing the ratio silently breaks heuristic admissibility.
//   - WithBlockThreshold: minimum cell value considered a wall.
//   - WithCornerCutting: permit diagonal steps squeezing between two walls
//     (off by default: a diagonal move requires both adjacent cardinal
//     cells to be passable).
//
// Errors:
//
//   - ErrEmptyGrid, ErrNonRectangular: malformed cell input.
//   - ErrBadHeader, ErrBadDimensions, ErrBadCell: malformed .map files.
//   - ErrOutOfBounds: coordinate outside the grid.
package gridmap
