package geotiles

import (
	"fmt"
	"math"

	"github.com/paulmach/orb"
)

// ValidateCoordinate validates a single coordinate pair
func ValidateCoordinate(lat, lon float64) error {
	if math.IsNaN(lat) || math.IsNaN(lon) {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if lon < -180.0 || lon > 180.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return nil
}

// ValidateGeometry checks that g is one of the three rasterizable shapes,
// carries enough points, and stays within geographic bounds.
func ValidateGeometry(g orb.Geometry) error {
	if g == nil {
		return &ErrInvalidGeometry{Reason: "geometry is nil"}
	}

	gt := TypeOf(g)
	var points []orb.Point
	switch geom := g.(type) {
	case orb.Point:
		points = []orb.Point{geom}

	case orb.LineString:
		if len(geom) < 2 {
			return &ErrInvalidGeometry{
				Type:   gt,
				Reason: fmt.Sprintf("needs at least 2 points, got %d", len(geom)),
			}
		}
		points = geom

	case orb.Polygon:
		if len(geom) == 0 || len(geom[0]) < 3 {
			n := 0
			if len(geom) > 0 {
				n = len(geom[0])
			}
			return &ErrInvalidGeometry{
				Type:   gt,
				Reason: fmt.Sprintf("exterior ring needs at least 3 points, got %d", n),
			}
		}
		// Interior rings are carried but never rasterized, only the exterior is checked.
		points = geom[0]

	default:
		return &ErrUnsupportedGeometry{GeoJSONType: g.GeoJSONType()}
	}

	for i, p := range points {
		if err := ValidateCoordinate(p.Lat(), p.Lon()); err != nil {
			return &ErrInvalidGeometry{
				Type:   gt,
				Reason: fmt.Sprintf("coordinate %d invalid: %v", i, err),
			}
		}
	}
	return nil
}
