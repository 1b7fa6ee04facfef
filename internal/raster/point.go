package raster

import (
	"github.com/paulmach/orb"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// Point writes f into the single cell holding its position.
func Point(w Writer, f *geotiles.Feature) Stats {
	p, ok := f.Geometry().(orb.Point)
	if !ok {
		mismatch(f)
	}
	w.Upsert(geotiles.CoordFromLatLon(p.Lat(), p.Lon()), f)
	return Stats{Cells: 1}
}
