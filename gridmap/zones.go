// Package gridmap implements polygon obstacle zones in this file: GeoJSON
// no-go areas rasterized onto the grid before searching.
//
// Zone coordinates are expressed in cell units — x grows rightward, y grows
// downward, and cell (x,y) spans [x,x+1]×[y,y+1] — matching the grid's own
// coordinate convention.
package gridmap

import (
	"fmt"
	"io"
	"os"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
)

// LoadZones decodes a GeoJSON feature collection of no-go zones from r.
// Polygon and MultiPolygon features contribute zones; other geometry types
// are ignored.
func LoadZones(r io.Reader) (*geojson.FeatureCollection, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("gridmap: reading zones: %w", err)
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return nil, fmt.Errorf("gridmap: decoding zones: %w", err)
	}

	return fc, nil
}

// LoadZonesFile opens path and decodes it with LoadZones.
func LoadZonesFile(path string) (*geojson.FeatureCollection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gridmap: opening zones file: %w", err)
	}
	defer f.Close()

	return LoadZones(f)
}

// ApplyZones rasterizes the collection's polygon zones onto the grid,
// blocking every passable cell whose center lies inside a zone. Returns the
// number of cells newly blocked.
//
// An R-tree over zone bounding boxes keeps the per-cell work proportional to
// the zones actually near that cell rather than to the whole collection.
func (g *Grid) ApplyZones(fc *geojson.FeatureCollection) (int, error) {
	polys := collectPolygons(fc)
	if len(polys) == 0 {
		return 0, nil
	}

	idx, err := newZoneIndex(polys)
	if err != nil {
		return 0, err
	}

	blocked := 0
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if !g.Passable(x, y) {
				continue
			}
			if idx.covers(float64(x)+0.5, float64(y)+0.5) {
				g.cells[y][x] = g.opts.BlockThreshold
				blocked++
			}
		}
	}

	return blocked, nil
}

// collectPolygons flattens the collection's Polygon and MultiPolygon
// geometries into a single polygon list.
func collectPolygons(fc *geojson.FeatureCollection) []orb.Polygon {
	if fc == nil {
		return nil
	}
	var polys []orb.Polygon
	for _, f := range fc.Features {
		if f == nil {
			continue
		}
		switch geom := f.Geometry.(type) {
		case orb.Polygon:
			polys = append(polys, geom)
		case orb.MultiPolygon:
			polys = append(polys, geom...)
		}
	}

	return polys
}
