package geotiles

import (
	"fmt"
	"sync"
	"testing"

	"github.com/paulmach/orb"
)

func newTestFeature(c Category, subtype, id string) *Feature {
	return NewFeature(FeatureSpec{
		Category: c,
		Subtype:  subtype,
		ID:       id,
		Geometry: orb.Point{0, 0},
	})
}

func assertCellInvariant(t *testing.T, cell []*Feature) {
	t.Helper()
	seen := make(map[Category]bool)
	for i, f := range cell {
		if seen[f.Category()] {
			t.Errorf("category %v appears more than once in %v", f.Category(), cell)
		}
		seen[f.Category()] = true
		if i > 0 && cell[i-1].Tier() > f.Tier() {
			t.Errorf("cell not tier-sorted at %d: %v (tier %v) before %v (tier %v)",
				i, cell[i-1], cell[i-1].Tier(), f, f.Tier())
		}
	}
}

func TestStoreUpsertOrdersByTier(t *testing.T) {
	s := NewStore()
	c := GridCoord{X: 1, Y: 1}

	s.Upsert(c, newTestFeature(CategoryLanduse, "grass", "a"))
	s.Upsert(c, newTestFeature(CategoryBuilding, "yes", "b"))
	s.Upsert(c, newTestFeature(CategoryHighway, "residential", "c"))

	cell, ok := s.Get(1, 1)
	if !ok {
		t.Fatal("Expected cell to exist")
	}
	want := []Category{CategoryHighway, CategoryBuilding, CategoryLanduse}
	if len(cell) != len(want) {
		t.Fatalf("len(cell) = %d, want %d", len(cell), len(want))
	}
	for i, c := range want {
		if cell[i].Category() != c {
			t.Errorf("cell[%d] = %v, want %v", i, cell[i].Category(), c)
		}
	}
}

func TestStoreUpsertDedupByCategory(t *testing.T) {
	s := NewStore()
	c := GridCoord{X: 5, Y: -5}

	first := newTestFeature(CategoryBuilding, "house", "way/1")
	second := newTestFeature(CategoryBuilding, "garage", "way/2")
	s.Upsert(c, first)
	s.Upsert(c, second)

	cell, _ := s.GetCoord(c)
	if len(cell) != 1 {
		t.Fatalf("len(cell) = %d, want 1", len(cell))
	}
	if cell[0] != second {
		t.Errorf("Expected later duplicate to replace earlier, got %v", cell[0])
	}
}

func TestStoreUpsertIdempotent(t *testing.T) {
	s := NewStore()
	c := GridCoord{}
	f := newTestFeature(CategoryShop, "bakery", "node/1")
	other := newTestFeature(CategoryHighway, "footway", "way/9")

	s.Upsert(c, other)
	s.Upsert(c, f)
	once, _ := s.GetCoord(c)
	s.Upsert(c, f)
	twice, _ := s.GetCoord(c)

	if len(once) != len(twice) {
		t.Errorf("len after repeat = %d, want %d", len(twice), len(once))
	}
}

func TestStoreAmenityTier(t *testing.T) {
	s := NewStore()
	c := GridCoord{X: 3, Y: 3}
	s.Upsert(c, newTestFeature(CategoryShop, "bakery", "node/2"))
	s.Upsert(c, newTestFeature(CategoryAmenity, "bench", "node/1"))

	cell, _ := s.GetCoord(c)
	if len(cell) != 2 {
		t.Fatalf("len(cell) = %d, want 2", len(cell))
	}
	if cell[0].Category() != CategoryAmenity {
		t.Errorf("cell[0] = %v, want amenity first", cell[0].Category())
	}

	s2 := NewStore()
	s2.Upsert(c, newTestFeature(CategoryAmenity, "parking", "way/1"))
	s2.Upsert(c, newTestFeature(CategoryShop, "bakery", "node/2"))
	cell, _ = s2.GetCoord(c)
	if cell[0].Category() != CategoryShop {
		t.Errorf("cell[0] = %v, want shop before background amenity", cell[0].Category())
	}
}

func TestStoreGetReturnsCopy(t *testing.T) {
	s := NewStore()
	c := GridCoord{X: 2, Y: 2}
	s.Upsert(c, newTestFeature(CategoryHighway, "primary", "way/1"))

	cell, _ := s.GetCoord(c)
	cell[0] = nil

	again, _ := s.GetCoord(c)
	if again[0] == nil {
		t.Error("Expected Get to return an independent copy")
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := NewStore()
	if _, ok := s.Get(0, 0); ok {
		t.Error("Expected missing cell")
	}
	if _, ok := s.GetByContinuous(45.0, -75.0); ok {
		t.Error("Expected missing cell")
	}
}

func TestStoreGetByContinuous(t *testing.T) {
	s := NewStore()
	s.Upsert(CoordFromLatLon(45.42153, -75.69719), newTestFeature(CategoryPlace, "city", "node/1"))

	cell, ok := s.GetByContinuous(45.42153, -75.69719)
	if !ok || len(cell) != 1 {
		t.Fatalf("GetByContinuous = %v, %v; want one feature", cell, ok)
	}
}

func TestStoreUpdateBatch(t *testing.T) {
	s := NewStore()
	f := newTestFeature(CategoryLanduse, "forest", "way/3")
	s.Update(func(tx *Tx) {
		for x := int32(0); x < 10; x++ {
			tx.Upsert(GridCoord{X: x, Y: 0}, f)
		}
	})
	if s.Len() != 10 {
		t.Errorf("Len() = %d, want 10", s.Len())
	}
}

func TestStoreWindowAndExtent(t *testing.T) {
	s := NewStore()
	if _, _, ok := s.Extent(); ok {
		t.Error("Expected empty store to have no extent")
	}

	f := newTestFeature(CategoryHighway, "path", "way/1")
	for _, c := range []GridCoord{{-3, 4}, {0, 0}, {7, -2}} {
		s.Upsert(c, f)
	}

	min, max, ok := s.Extent()
	if !ok || min != (GridCoord{-3, -2}) || max != (GridCoord{7, 4}) {
		t.Errorf("Extent() = %v, %v, %v; want (-3, -2), (7, 4), true", min, max, ok)
	}

	count := 0
	s.Window(GridCoord{-1, -1}, GridCoord{1, 1}, func(c GridCoord, cell []*Feature) {
		count++
		if c != (GridCoord{}) {
			t.Errorf("Window visited %v outside rectangle", c)
		}
	})
	if count != 1 {
		t.Errorf("Window visited %d cells, want 1", count)
	}

	count = 0
	s.Window(GridCoord{-1000, -1000}, GridCoord{1000, 1000}, func(GridCoord, []*Feature) { count++ })
	if count != 3 {
		t.Errorf("Window visited %d cells, want 3", count)
	}
}

func TestStoreConcurrentUpserts(t *testing.T) {
	s := NewStore()
	categories := []Category{CategoryHighway, CategoryBuilding, CategoryLanduse, CategoryShop, CategoryRailway}

	var wg sync.WaitGroup
	for w, cat := range categories {
		wg.Add(1)
		go func(w int, cat Category) {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				// Overlapping coordinates across writers.
				c := GridCoord{X: int32(i % 20), Y: int32(i / 20)}
				s.Upsert(c, newTestFeature(cat, "x", fmt.Sprintf("%d/%d", w, i)))
			}
		}(w, cat)
	}

	stop := make(chan struct{})
	var readers sync.WaitGroup
	readers.Add(1)
	go func() {
		defer readers.Done()
		for {
			select {
			case <-stop:
				return
			default:
			}
			s.Window(GridCoord{0, 0}, GridCoord{19, 9}, func(_ GridCoord, cell []*Feature) {
				assertCellInvariant(t, cell)
			})
		}
	}()

	wg.Wait()
	close(stop)
	readers.Wait()

	if s.Len() != 200 {
		t.Errorf("Len() = %d, want 200", s.Len())
	}
	for y := int32(0); y < 10; y++ {
		for x := int32(0); x < 20; x++ {
			cell, _ := s.Get(x, y)
			if len(cell) != len(categories) {
				t.Errorf("cell (%d,%d) has %d entries, want %d", x, y, len(cell), len(categories))
			}
			assertCellInvariant(t, cell)
		}
	}
}
