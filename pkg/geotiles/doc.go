// Package geotiles is the integer-addressed tile model behind the map viewer.
//
// Vector OpenStreetMap features are snapped onto a fixed-resolution grid
// (Scale units per degree). Every populated grid cell holds the ordered list
// of classified features occupying it, sorted by display tier and holding at
// most one feature per category.
//
// # Grid
//
// ToGrid and FromGrid convert between continuous degrees and grid units.
// The conversion is lossy: FromGrid(ToGrid(x)) is only within half a grid
// unit of x.
//
//	coord := geotiles.CoordFromLatLon(45.4215, -75.6972)
//	features, ok := store.Get(coord.X, coord.Y)
//
// # Store
//
// Store is safe for concurrent use. Writers take the write lock per cell
// insertion, or once for a whole batch via Update. Readers get copies of the
// cell lists so a concurrent writer never exposes a partially updated list.
//
//	store := geotiles.NewStore()
//	store.Upsert(geotiles.GridCoord{X: 10, Y: 20}, feature)
//	for _, f := range store.GetByContinuous(0.0002, 0.0001) {
//	    fmt.Println(f.Category(), f.Subtype())
//	}
//
// Features are immutable and shared by pointer between every cell they cover.
package geotiles
