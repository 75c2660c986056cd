// Package gridmap implements loading of the MovingAI octile benchmark .map
// format in this file.
//
// The format:
//
//	type octile
//	height 5
//	width 5
//	map
//	.....
//	..@..
//	..@..
//	..@..
//	.....
//
// Glyphs '.', 'G', and 'S' are passable terrain; '@', 'O', 'T', and 'W'
// (out of bounds, obstacles, trees, water) are walls.
package gridmap

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
)

// Load parses a MovingAI octile map from r and builds a Grid with the given
// options. Returns ErrBadHeader, ErrBadDimensions, or ErrBadCell (wrapped
// with position context) on malformed input.
func Load(r io.Reader, opts ...Option) (*Grid, error) {
	sc := bufio.NewScanner(r)

	height, width, err := parseHeader(sc)
	if err != nil {
		return nil, err
	}

	cells := make([][]int, 0, height)
	for y := 0; y < height; y++ {
		if !sc.Scan() {
			return nil, fmt.Errorf("%w: want %d rows, got %d", ErrBadDimensions, height, y)
		}
		line := strings.TrimRight(sc.Text(), "\r")
		if len(line) != width {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrBadDimensions, y, len(line), width)
		}
		row := make([]int, width)
		for x, glyph := range line {
			switch glyph {
			case '.', 'G', 'S':
				row[x] = 0
			case '@', 'O', 'T', 'W':
				row[x] = 1
			default:
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrBadCell, glyph, x, y)
			}
		}
		cells = append(cells, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridmap: reading map body: %w", err)
	}

	return New(cells, opts...)
}

// LoadFile opens path and parses it with Load.
func LoadFile(path string, opts ...Option) (*Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: opening map file: %w", err)
	}
	defer f.Close()

	return Load(f, opts...)
}

// parseHeader consumes the four header lines: "type octile", "height H",
// "width W" (height and width in either order), and "map".
func parseHeader(sc *bufio.Scanner) (height, width int, err error) {
	if !sc.Scan() {
		return 0, 0, fmt.Errorf("%w: missing type line", ErrBadHeader)
	}
	if got := strings.TrimSpace(sc.Text()); got != "type octile" {
		return 0, 0, fmt.Errorf("%w: want %q, got %q", ErrBadHeader, "type octile", got)
	}

	height, width = -1, -1
	for i := 0; i < 2; i++ {
		if !sc.Scan() {
			return 0, 0, fmt.Errorf("%w: missing dimension line", ErrBadHeader)
		}
		fields := strings.Fields(sc.Text())
		if len(fields) != 2 {
			return 0, 0, fmt.Errorf("%w: malformed dimension line %q", ErrBadHeader, sc.Text())
		}
		n, convErr := strconv.Atoi(fields[1])
		if convErr != nil || n <= 0 {
			return 0, 0, fmt.Errorf("%w: bad dimension value %q", ErrBadHeader, fields[1])
		}
		switch fields[0] {
		case "height":
			height = n
		case "width":
			width = n
		default:
			return 0, 0, fmt.Errorf("%w: unexpected field %q", ErrBadHeader, fields[0])
		}
	}
	if height < 0 || width < 0 {
		return 0, 0, fmt.Errorf("%w: height or width missing", ErrBadHeader)
	}

	if !sc.Scan() || strings.TrimSpace(sc.Text()) != "map" {
		return 0, 0, fmt.Errorf("%w: missing map marker", ErrBadHeader)
	}

	return height, width, nil
}
