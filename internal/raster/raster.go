// Package raster draws classified features onto the geotiles grid.
//
// Points land on a single cell, lines are stepped cell by cell and widened by
// parallel offset copies, and polygons are filled with an even-odd scanline
// pass. Every entry point checks that the feature's geometry matches the
// rasterizer; a mismatch is a programming error and panics.
package raster

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// Writer receives the cells produced by a rasterizer. *geotiles.Store and
// *geotiles.Tx both satisfy it.
type Writer interface {
	Upsert(c geotiles.GridCoord, f *geotiles.Feature)
}

// Stats reports what a rasterizer wrote.
type Stats struct {
	Cells int
	// Suppressed is set when a polygon was skipped by Visibility.
	Suppressed bool
}

// Draw dispatches f to the rasterizer matching its geometry.
func Draw(s *geotiles.Store, f *geotiles.Feature, vis Visibility) Stats {
	switch f.GeometryType() {
	case geotiles.GeometryTypePoint:
		return Point(s, f)
	case geotiles.GeometryTypeLineString:
		return Line(s, f)
	case geotiles.GeometryTypePolygon:
		return Polygon(s, f, vis)
	default:
		mismatch(f)
		return Stats{}
	}
}

func mismatch(f *geotiles.Feature) {
	panic(fmt.Sprintf("%s should not be dealing with a %s", f.Category(), f.GeometryType()))
}

// scaled projects a position onto the grid without rounding.
func scaled(p orb.Point) (x, y float64) {
	return p.X() * geotiles.Scale, p.Y() * geotiles.Scale
}

func round(v float64) int32 {
	return int32(math.Round(v))
}
