package gridmap

import (
	"fmt"

	"github.com/dhconnelly/rtreego"
	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// rtree branching factors; 2-D tree, 25–50 entries per node.
const (
	rtreeDim       = 2
	rtreeMinBranch = 25
	rtreeMaxBranch = 50
)

// zoneEntry wraps one no-go polygon for R-tree storage.
type zoneEntry struct {
	poly orb.Polygon
	bbox rtreego.Rect
}

// Bounds implements rtreego.Spatial.
func (z *zoneEntry) Bounds() rtreego.Rect {
	return z.bbox
}

// zoneIndex answers "does any zone cover this cell" queries. The R-tree
// narrows candidates by bounding box; exact point-in-polygon tests run only
// against those candidates.
type zoneIndex struct {
	tree *rtreego.Rtree
}

// newZoneIndex bulk-loads the polygons' bounding boxes into an R-tree.
func newZoneIndex(polys []orb.Polygon) (*zoneIndex, error) {
	tree := rtreego.NewTree(rtreeDim, rtreeMinBranch, rtreeMaxBranch)
	for i, p := range polys {
		rect, err := boundRect(p.Bound())
		if err != nil {
			return nil, fmt.Errorf("gridmap: zone %d bounding box: %w", i, err)
		}
		tree.Insert(&zoneEntry{poly: p, bbox: rect})
	}

	return &zoneIndex{tree: tree}, nil
}

// covers reports whether the point (px,py) lies inside any indexed zone.
// The query rect spans the unit cell whose center is being tested, so zones
// touching the cell are candidates even when their boxes miss the center.
func (zi *zoneIndex) covers(px, py float64) bool {
	rect, err := rtreego.NewRect(rtreego.Point{px - 0.5, py - 0.5}, []float64{1, 1})
	if err != nil {
		return false
	}
	for _, hit := range zi.tree.SearchIntersect(rect) {
		entry := hit.(*zoneEntry)
		if planar.PolygonContains(entry.poly, orb.Point{px, py}) {
			return true
		}
	}

	return false
}

// boundRect converts an orb bounding box to an rtreego rect. Degenerate
// extents are widened to a small epsilon because rtreego rejects
// non-positive lengths.
func boundRect(b orb.Bound) (rtreego.Rect, error) {
	const epsilon = 1e-9
	lengths := []float64{b.Max.X() - b.Min.X(), b.Max.Y() - b.Min.Y()}
	for i := range lengths {
		if lengths[i] <= 0 {
			lengths[i] = epsilon
		}
	}

	return rtreego.NewRect(rtreego.Point{b.Min.X(), b.Min.Y()}, lengths)
}
