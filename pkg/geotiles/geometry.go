package geotiles

import (
	"math"

	"github.com/paulmach/orb"
)

// GeometryType represents the shape of a feature geometry.
type GeometryType int

const (
	// GeometryTypeUnknown is any orb geometry other than the three shapes
	// the rasterizers understand (multi-geometries, bounds, collections).
	GeometryTypeUnknown GeometryType = iota

	// GeometryTypePoint represents a single point location.
	GeometryTypePoint

	// GeometryTypeLineString represents a line composed of connected points.
	GeometryTypeLineString

	// GeometryTypePolygon represents an exterior ring plus optional interior rings.
	GeometryTypePolygon
)

// String returns the string representation of the geometry type.
func (g GeometryType) String() string {
	switch g {
	case GeometryTypePoint:
		return "point"
	case GeometryTypeLineString:
		return "line string"
	case GeometryTypePolygon:
		return "polygon"
	default:
		return "unknown"
	}
}

// TypeOf classifies an orb geometry. Coordinates are [lon, lat].
func TypeOf(g orb.Geometry) GeometryType {
	switch g.(type) {
	case orb.Point:
		return GeometryTypePoint
	case orb.LineString:
		return GeometryTypeLineString
	case orb.Polygon:
		return GeometryTypePolygon
	default:
		return GeometryTypeUnknown
	}
}

// Bounds is a geographic rectangle in decimal degrees.
type Bounds struct {
	MinLon float64 // Western edge
	MaxLon float64 // Eastern edge
	MinLat float64 // Southern edge
	MaxLat float64 // Northern edge
}

// BoundsAround returns the square of half-width radius degrees centred on
// the given position.
func BoundsAround(lat, lon, radius float64) Bounds {
	return Bounds{
		MinLon: lon - radius,
		MaxLon: lon + radius,
		MinLat: lat - radius,
		MaxLat: lat + radius,
	}
}

// BoundsOf returns the bounding box of an orb geometry.
func BoundsOf(g orb.Geometry) Bounds {
	b := g.Bound()
	return Bounds{MinLon: b.Min.Lon(), MaxLon: b.Max.Lon(), MinLat: b.Min.Lat(), MaxLat: b.Max.Lat()}
}

// Union returns the smallest Bounds holding both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	return Bounds{
		MinLon: math.Min(b.MinLon, other.MinLon),
		MaxLon: math.Max(b.MaxLon, other.MaxLon),
		MinLat: math.Min(b.MinLat, other.MinLat),
		MaxLat: math.Max(b.MaxLat, other.MaxLat),
	}
}

// Contains reports whether (lat, lon) lies inside b, edges included.
func (b Bounds) Contains(lat, lon float64) bool {
	return b.ContainsBounds(Bounds{MinLon: lon, MaxLon: lon, MinLat: lat, MaxLat: lat})
}

// ContainsBounds reports whether other lies entirely inside b.
func (b Bounds) ContainsBounds(other Bounds) bool {
	return other.MinLon >= b.MinLon && other.MaxLon <= b.MaxLon &&
		other.MinLat >= b.MinLat && other.MaxLat <= b.MaxLat
}
