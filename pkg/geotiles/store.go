package geotiles

import (
	"sort"
	"sync"
)

// Store maps grid cells to their ordered feature lists.
//
// One reader/writer lock guards the whole map. Ordering and deduplication
// happen eagerly on write, so reads never do more than copy a list.
//
// Example:
//
//	store := geotiles.NewStore()
//	store.Upsert(geotiles.GridCoord{X: 1, Y: 2}, road)
//	cell, ok := store.Get(1, 2)
type Store struct {
	mu    sync.RWMutex
	cells map[GridCoord][]*Feature
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{cells: make(map[GridCoord][]*Feature)}
}

// Upsert adds f to the cell at c under the write lock. Any feature of the
// same category already in the cell is replaced, and the list is re-sorted
// by tier (stable within a tier).
func (s *Store) Upsert(c GridCoord, f *Feature) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.upsertLocked(c, f)
}

// Tx is a write handle valid only inside Store.Update.
type Tx struct {
	s *Store
}

// Upsert behaves like Store.Upsert without taking the lock again.
func (tx *Tx) Upsert(c GridCoord, f *Feature) {
	tx.s.upsertLocked(c, f)
}

// Update runs fn holding the write lock once for all of its insertions.
// Readers and other writers block until fn returns.
func (s *Store) Update(fn func(tx *Tx)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(&Tx{s: s})
}

func (s *Store) upsertLocked(c GridCoord, f *Feature) {
	cell := s.cells[c]

	kept := make([]*Feature, 0, len(cell)+1)
	for _, existing := range cell {
		if existing.category != f.category {
			kept = append(kept, existing)
		}
	}
	kept = append(kept, f)

	sort.SliceStable(kept, func(i, j int) bool {
		return kept[i].Tier() < kept[j].Tier()
	})
	s.cells[c] = kept
}

// Get returns a copy of the ordered feature list at (x, y).
func (s *Store) Get(x, y int32) ([]*Feature, bool) {
	return s.GetCoord(GridCoord{X: x, Y: y})
}

// GetCoord is Get addressed by GridCoord.
func (s *Store) GetCoord(c GridCoord) ([]*Feature, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	cell, ok := s.cells[c]
	if !ok {
		return nil, false
	}
	out := make([]*Feature, len(cell))
	copy(out, cell)
	return out, true
}

// GetByContinuous looks up the cell holding a latitude/longitude.
func (s *Store) GetByContinuous(lat, lon float64) ([]*Feature, bool) {
	return s.GetCoord(CoordFromLatLon(lat, lon))
}

// Len returns the number of populated cells.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cells)
}

// Window calls fn for every populated cell inside the inclusive rectangle
// [min, max], holding the read lock once for the whole pass. The slice passed
// to fn must not be retained or modified.
func (s *Store) Window(min, max GridCoord, fn func(c GridCoord, cell []*Feature)) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	area := int64(max.X-min.X+1) * int64(max.Y-min.Y+1)
	if area <= 0 {
		return
	}
	// Sparse map: walk whichever side is smaller.
	if area > int64(len(s.cells)) {
		for c, cell := range s.cells {
			if c.X >= min.X && c.X <= max.X && c.Y >= min.Y && c.Y <= max.Y {
				fn(c, cell)
			}
		}
		return
	}
	for y := min.Y; y <= max.Y; y++ {
		for x := min.X; x <= max.X; x++ {
			c := GridCoord{X: x, Y: y}
			if cell, ok := s.cells[c]; ok {
				fn(c, cell)
			}
		}
	}
}

// Extent returns the smallest rectangle containing every populated cell.
func (s *Store) Extent() (min, max GridCoord, ok bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for c := range s.cells {
		if !ok {
			min, max, ok = c, c, true
			continue
		}
		if c.X < min.X {
			min.X = c.X
		}
		if c.Y < min.Y {
			min.Y = c.Y
		}
		if c.X > max.X {
			max.X = c.X
		}
		if c.Y > max.Y {
			max.Y = c.Y
		}
	}
	return min, max, ok
}
