package geotiles

import (
	"fmt"
	"math"
)

// Scale is the number of grid units per degree of latitude or longitude.
const Scale = 100_000.0

// GridCoord is a cell address: X is the scaled longitude, Y the scaled latitude.
type GridCoord struct {
	X, Y int32
}

func (c GridCoord) String() string {
	return fmt.Sprintf("(%d, %d)", c.X, c.Y)
}

// ToGrid converts a continuous coordinate to grid units, rounding to the
// nearest cell.
func ToGrid(x float64) int32 {
	return int32(math.Round(x * Scale))
}

// FromGrid converts grid units back to degrees. It is not the exact inverse
// of ToGrid.
func FromGrid(n int32) float64 {
	return float64(n) / Scale
}

// CoordFromLatLon returns the cell holding the given latitude/longitude.
func CoordFromLatLon(lat, lon float64) GridCoord {
	return GridCoord{X: ToGrid(lon), Y: ToGrid(lat)}
}

// LatLon returns the continuous position of the cell origin.
func (c GridCoord) LatLon() (lat, lon float64) {
	return FromGrid(c.Y), FromGrid(c.X)
}
