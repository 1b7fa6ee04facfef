package mapper

import (
	"sync"

	"github.com/dhconnelly/rtreego"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// extentEntry is one loaded area stored in the R-tree.
type extentEntry struct {
	bounds geotiles.Bounds
}

// Bounds method for rtreego.Spatial interface.
func (e extentEntry) Bounds() rtreego.Rect {
	return rectOf(e.bounds)
}

func rectOf(b geotiles.Bounds) rtreego.Rect {
	point := rtreego.Point{b.MinLon, b.MinLat}
	lengths := []float64{
		positive(b.MaxLon - b.MinLon),
		positive(b.MaxLat - b.MinLat),
	}
	rect, _ := rtreego.NewRect(point, lengths)
	return rect
}

// positive keeps degenerate extents valid for the R-tree.
func positive(v float64) float64 {
	if v <= 0 {
		return 1 / geotiles.Scale
	}
	return v
}

// extentIndex remembers which areas were loaded, and which downloads are in
// flight, so that loading around a nearby location can be skipped.
type extentIndex struct {
	mu      sync.RWMutex
	rtree   *rtreego.Rtree
	entries []geotiles.Bounds
	pending []geotiles.Bounds
}

func newExtentIndex() *extentIndex {
	return &extentIndex{rtree: rtreego.NewTree(2, 25, 50)}
}

// Add records b as loaded.
func (idx *extentIndex) Add(b geotiles.Bounds) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	idx.add(b)
}

func (idx *extentIndex) add(b geotiles.Bounds) {
	idx.rtree.Insert(extentEntry{bounds: b})
	idx.entries = append(idx.entries, b)
}

// Covers reports whether a single loaded area fully contains b.
func (idx *extentIndex) Covers(b geotiles.Bounds) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	return idx.covers(b)
}

func (idx *extentIndex) covers(b geotiles.Bounds) bool {
	for _, s := range idx.rtree.SearchIntersect(rectOf(b)) {
		if s.(extentEntry).bounds.ContainsBounds(b) {
			return true
		}
	}
	return false
}

// ContainsPoint reports whether any loaded area contains (lat, lon).
func (idx *extentIndex) ContainsPoint(lat, lon float64) bool {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	for _, s := range idx.rtree.SearchIntersect(rectOf(geotiles.BoundsAround(lat, lon, 0))) {
		if s.(extentEntry).bounds.Contains(lat, lon) {
			return true
		}
	}
	return false
}

// Claim reserves b for downloading. It returns false when b is already
// loaded or lies inside a download claimed earlier and not yet released.
// Every successful Claim must be followed by Release.
func (idx *extentIndex) Claim(b geotiles.Bounds) bool {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	if idx.covers(b) {
		return false
	}
	for _, p := range idx.pending {
		if p.ContainsBounds(b) {
			return false
		}
	}
	idx.pending = append(idx.pending, b)
	return true
}

// Release drops the claim on b and, when loaded is set, records it.
func (idx *extentIndex) Release(b geotiles.Bounds, loaded bool) {
	idx.mu.Lock()
	defer idx.mu.Unlock()
	for i, p := range idx.pending {
		if p == b {
			idx.pending = append(idx.pending[:i], idx.pending[i+1:]...)
			break
		}
	}
	if loaded {
		idx.add(b)
	}
}

// All returns the loaded areas in insertion order.
func (idx *extentIndex) All() []geotiles.Bounds {
	idx.mu.RLock()
	defer idx.mu.RUnlock()
	out := make([]geotiles.Bounds, len(idx.entries))
	copy(out, idx.entries)
	return out
}
