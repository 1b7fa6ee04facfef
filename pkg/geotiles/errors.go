package geotiles

import (
	"fmt"
)

// ErrInvalidCoordinate indicates coordinate out of valid bounds
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.Lat, e.Lon)
}

// ErrInvalidGeometry indicates a geometry that cannot be rasterized
type ErrInvalidGeometry struct {
	Type   GeometryType
	Reason string
}

func (e *ErrInvalidGeometry) Error() string {
	if e.Type != GeometryTypeUnknown {
		return fmt.Sprintf("invalid geometry (%v): %s", e.Type, e.Reason)
	}
	return fmt.Sprintf("invalid geometry: %s", e.Reason)
}

// ErrUnsupportedGeometry indicates a geometry variant outside Point,
// LineString and Polygon. Multi-geometries must be flattened by the source
// reader before ingestion.
type ErrUnsupportedGeometry struct {
	GeoJSONType string
}

func (e *ErrUnsupportedGeometry) Error() string {
	return fmt.Sprintf("unsupported geometry %q: flatten multi-geometries before ingestion", e.GeoJSONType)
}
