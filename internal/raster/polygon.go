package raster

import (
	"sort"

	"github.com/paulmach/orb"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// Visibility switches on the bulk area categories. They are hidden by
// default because they cover large areas and bury the features drawn on top.
type Visibility struct {
	Landuse  bool
	Leisure  bool
	Amenity  bool
	Boundary bool
}

// ShowAll returns a Visibility with every bulk category shown.
func ShowAll() Visibility {
	return Visibility{Landuse: true, Leisure: true, Amenity: true, Boundary: true}
}

// Shows reports whether polygons of category c are drawn.
func (v Visibility) Shows(c geotiles.Category) bool {
	switch c {
	case geotiles.CategoryLanduse:
		return v.Landuse
	case geotiles.CategoryLeisure:
		return v.Leisure
	case geotiles.CategoryAmenity:
		return v.Amenity
	case geotiles.CategoryBoundary:
		return v.Boundary
	default:
		return true
	}
}

// Polygon fills the exterior ring of a polygon feature. The whole pass runs
// under one store write lock. Interior rings are not subtracted.
func Polygon(s *geotiles.Store, f *geotiles.Feature, vis Visibility) Stats {
	poly, ok := f.Geometry().(orb.Polygon)
	if !ok {
		mismatch(f)
	}
	if !vis.Shows(f.Category()) {
		return Stats{Suppressed: true}
	}
	if len(poly) == 0 || len(poly[0]) == 0 {
		return Stats{}
	}

	var st Stats
	s.Update(func(tx *geotiles.Tx) {
		st.Cells = fill(poly[0], func(c geotiles.GridCoord) { tx.Upsert(c, f) })
	})
	return st
}

// fill runs the even-odd scanline over ring's bounding box, expanded by one
// cell on every side, then traces the ring itself so that cells on the
// boundary are always covered.
func fill(ring orb.Ring, emit func(geotiles.GridCoord)) int {
	bound := ring.Bound()
	minX := geotiles.ToGrid(bound.Min.X()) - 1
	maxX := geotiles.ToGrid(bound.Max.X()) + 1
	minY := geotiles.ToGrid(bound.Min.Y()) - 1
	maxY := geotiles.ToGrid(bound.Max.Y()) + 1

	n := 0
	var crossings []int32
	for y := minY; y <= maxY; y++ {
		yf := geotiles.FromGrid(y)
		crossings = crossings[:0]

		prev := ring[len(ring)-1]
		for _, cur := range ring {
			if (cur.Y() < yf && prev.Y() >= yf) || (prev.Y() < yf && cur.Y() >= yf) {
				x := cur.X() + (yf-cur.Y())/(prev.Y()-cur.Y())*(prev.X()-cur.X())
				crossings = append(crossings, geotiles.ToGrid(x))
			}
			prev = cur
		}
		if len(crossings) < 2 {
			continue
		}
		sort.Slice(crossings, func(i, j int) bool { return crossings[i] < crossings[j] })

		for i := 0; i+1 < len(crossings); i += 2 {
			from, to := crossings[i], crossings[i+1]
			if from > maxX {
				break
			}
			if to < minX {
				continue
			}
			if from < minX {
				from = minX
			}
			if to > maxX {
				to = maxX
			}
			for x := from; x <= to; x++ {
				emit(geotiles.GridCoord{X: x, Y: y})
				n++
			}
		}
	}

	for i := range ring {
		next := ring[(i+1)%len(ring)]
		n += segment(ring[i], next, 1, emit)
	}
	return n
}
