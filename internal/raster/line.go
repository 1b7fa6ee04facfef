package raster

import (
	"math"

	"github.com/paulmach/orb"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// highwayThickness is the drawn width, in cells, of each road class.
var highwayThickness = map[string]int{
	"motorway":      11,
	"motorway_link": 11,
	"trunk":         9,
	"trunk_link":    9,

	"primary":        7,
	"primary_link":   7,
	"secondary":      7,
	"secondary_link": 7,

	"tertiary":      5,
	"tertiary_link": 5,
	"residential":   5,
	"living_street": 5,
	"bridleway":     5,
	"road":          5,
	"track":         5,
	"raceway":       5,
	"bus_guideway":  5,

	"service":        3,
	"corridor":       3,
	"escape":         3,
	"turning_circle": 3,

	"bus_stop":   2,
	"crossing":   2,
	"cycleway":   2,
	"pedestrian": 2,
	"footway":    2,
	"steps":      2,
}

// routeThickness covers the rail and bus-like transit routes; other routes
// are one cell wide.
var routeThickness = map[string]int{
	"bus":        3,
	"light_rail": 3,
	"mtb":        3,
	"railway":    3,
	"road":       3,
	"subway":     3,
	"train":      3,
	"tracks":     3,
	"tram":       3,
	"trolleybus": 3,
}

// Thickness returns the number of parallel copies drawn for a line feature.
func Thickness(f *geotiles.Feature) int {
	var table map[string]int
	switch f.Category() {
	case geotiles.CategoryHighway:
		table = highwayThickness
	case geotiles.CategoryRoute:
		table = routeThickness
	default:
		return 1
	}
	if t, ok := table[f.Subtype()]; ok {
		return t
	}
	return 1
}

// Line draws every segment of a line string feature, taking the store lock
// once per cell.
func Line(w Writer, f *geotiles.Feature) Stats {
	ls, ok := f.Geometry().(orb.LineString)
	if !ok {
		mismatch(f)
	}
	var st Stats
	t := Thickness(f)
	for i := 1; i < len(ls); i++ {
		st.Cells += segment(ls[i-1], ls[i], t, func(c geotiles.GridCoord) {
			w.Upsert(c, f)
		})
	}
	return st
}

// segment steps from a to b one grid unit at a time, both ends included, and
// calls emit for each center cell and its offset copies. Copies alternate
// south/north (west/east for steep segments), moving one unit further out
// every second copy. It returns the number of emitted cells.
func segment(a, b orb.Point, thickness int, emit func(geotiles.GridCoord)) int {
	ax, ay := scaled(a)
	bx, by := scaled(b)
	dx, dy := bx-ax, by-ay
	vertical := math.Abs(dx) >= math.Abs(dy)

	steps := int(math.Round(math.Hypot(dx, dy)))
	n := 0
	for i := 0; i <= steps; i++ {
		c := geotiles.GridCoord{X: round(ax), Y: round(ay)}
		if steps > 0 {
			frac := float64(i) / float64(steps)
			c = geotiles.GridCoord{X: round(ax + dx*frac), Y: round(ay + dy*frac)}
		}
		emit(c)
		n++
		for k := 1; k < thickness; k++ {
			d := int32((k + 1) / 2)
			if k%2 == 1 {
				d = -d
			}
			if vertical {
				emit(geotiles.GridCoord{X: c.X, Y: c.Y + d})
			} else {
				emit(geotiles.GridCoord{X: c.X + d, Y: c.Y})
			}
			n++
		}
	}
	return n
}
