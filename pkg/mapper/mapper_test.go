package mapper

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// fakeFetcher serves a fixed OSM extract and a fixed geocoding answer.
type fakeFetcher struct {
	mu        sync.Mutex
	dir       string
	extract   string
	downloads []geotiles.Bounds
}

func (f *fakeFetcher) DownloadBounds(_ context.Context, b geotiles.Bounds) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.downloads = append(f.downloads, b)
	path := filepath.Join(f.dir, fmt.Sprintf("extract-%d.osm", len(f.downloads)))
	return path, os.WriteFile(path, []byte(f.extract), 0o644)
}

func (f *fakeFetcher) Geocode(_ context.Context, address string) (float64, float64, error) {
	if address == "Parliament Hill" {
		return 45.0005, -74.9995, nil
	}
	return 0, 0, errors.New("not found")
}

const extract = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="45.0" lon="-75.0"><tag k="amenity" v="bench"/></node>
  <node id="2" lat="45.0" lon="-75.0"><tag k="shop" v="bakery"/></node>
  <node id="3" lat="45.0" lon="-74.999"/>
  <way id="4">
    <nd ref="1"/><nd ref="3"/>
    <tag k="highway" v="footway"/>
  </way>
</osm>`

func newTestMapper(t *testing.T, buf *bytes.Buffer) (*Mapper, *fakeFetcher) {
	t.Helper()
	fetcher := &fakeFetcher{dir: t.TempDir(), extract: extract}
	opts := DefaultOptions()
	opts.Fetcher = fetcher
	if buf != nil {
		opts.Logger = log.NewWithOptions(buf, log.Options{Level: log.DebugLevel})
	}
	return New(opts), fetcher
}

func TestIngestBenchBeforeBakery(t *testing.T) {
	m, _ := newTestMapper(t, nil)
	p := orb.Point{-75.0, 45.0}

	if err := m.Ingest(geotiles.MapTags{"shop": "bakery"}, p); err != nil {
		t.Fatal(err)
	}
	if err := m.Ingest(geotiles.MapTags{"amenity": "bench"}, p); err != nil {
		t.Fatal(err)
	}

	cell, ok := m.GetByContinuous(45.0, -75.0)
	if !ok || len(cell) != 2 {
		t.Fatalf("GetByContinuous() = %v, %v; want 2 entries", cell, ok)
	}
	if cell[0].Category() != geotiles.CategoryAmenity || cell[1].Category() != geotiles.CategoryShop {
		t.Errorf("cell = %v, want amenity then shop", cell)
	}
}

func TestIngestInvalidGeometry(t *testing.T) {
	m, _ := newTestMapper(t, nil)

	tests := []struct {
		name string
		geom orb.Geometry
	}{
		{"nil", nil},
		{"multipoint", orb.MultiPoint{{0, 0}}},
		{"short line", orb.LineString{{0, 0}}},
		{"out of range", orb.Point{0, 95}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := m.Ingest(geotiles.MapTags{"highway": "path"}, tt.geom); err == nil {
				t.Error("Expected error")
			}
		})
	}
	if m.Store().Len() != 0 {
		t.Errorf("Len() = %d, want 0", m.Store().Len())
	}
}

func TestIngestLogsDiagnostics(t *testing.T) {
	var buf bytes.Buffer
	m, _ := newTestMapper(t, &buf)

	if err := m.Ingest(geotiles.MapTags{"highway": "teleporter"}, orb.Point{1, 1}); err != nil {
		t.Fatal(err)
	}
	if err := m.Ingest(geotiles.MapTags{"name": "nothing"}, orb.Point{2, 2}); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	if !strings.Contains(out, "unrecognized subtype") || !strings.Contains(out, "teleporter") {
		t.Errorf("log output missing subtype diagnostic:\n%s", out)
	}
	if !strings.Contains(out, "unclassified feature") {
		t.Errorf("log output missing unclassified debug line:\n%s", out)
	}

	cell, _ := m.Get(100000, 100000)
	if len(cell) != 1 || cell[0].Subtype() != "unclassified" || cell[0].Category() != geotiles.CategoryHighway {
		t.Errorf("cell = %v, want highway/unclassified", cell)
	}
}

func TestIngestVisibility(t *testing.T) {
	square := orb.Polygon{{{0, 0}, {0.0001, 0}, {0.0001, 0.0001}, {0, 0.0001}, {0, 0}}}

	hidden, _ := newTestMapper(t, nil)
	if err := hidden.Ingest(geotiles.MapTags{"landuse": "grass"}, square); err != nil {
		t.Fatal(err)
	}
	if hidden.Store().Len() != 0 {
		t.Errorf("Len() = %d, want landuse hidden", hidden.Store().Len())
	}

	shown := New(Options{Visibility: Visibility{Landuse: true}, Fetcher: &fakeFetcher{}})
	if err := shown.Ingest(geotiles.MapTags{"landuse": "grass"}, square); err != nil {
		t.Fatal(err)
	}
	if shown.Store().Len() != 121 {
		t.Errorf("Len() = %d, want 121", shown.Store().Len())
	}
}

func TestIngestIdempotent(t *testing.T) {
	m, _ := newTestMapper(t, nil)
	tags := geotiles.MapTags{"highway": "residential", "id": "way/1"}
	line := orb.LineString{{0, 0}, {0.001, 0.0005}}

	if err := m.Ingest(tags, line); err != nil {
		t.Fatal(err)
	}
	once := snapshot(m, false)
	if err := m.Ingest(tags, line); err != nil {
		t.Fatal(err)
	}
	if twice := snapshot(m, false); twice != once {
		t.Errorf("store changed after repeated ingest")
	}
}

// snapshot renders the store as text for comparisons. With sorted set, the
// features of each cell are listed by category so that features of one tier
// compare equal regardless of arrival order.
func snapshot(m *Mapper, sorted bool) string {
	min, max, ok := m.Store().Extent()
	if !ok {
		return ""
	}
	var lines []string
	m.Store().Window(min, max, func(c geotiles.GridCoord, cell []*geotiles.Feature) {
		names := make([]string, len(cell))
		for i, f := range cell {
			names[i] = f.String()
		}
		if sorted {
			sort.Strings(names)
		}
		lines = append(lines, fmt.Sprintf("%s:%s", c, strings.Join(names, ";")))
	})
	sort.Strings(lines)
	return strings.Join(lines, "\n")
}

func TestConcurrentIngestMatchesSequential(t *testing.T) {
	pairs := []struct {
		tags geotiles.MapTags
		geom orb.Geometry
	}{
		{geotiles.MapTags{"highway": "primary"}, orb.LineString{{0, 0}, {0.0005, 0.0005}}},
		{geotiles.MapTags{"building": "house"}, orb.Polygon{{{0.0001, 0.0001}, {0.0004, 0.0001}, {0.0004, 0.0004}, {0.0001, 0.0004}, {0.0001, 0.0001}}}},
		{geotiles.MapTags{"waterway": "stream"}, orb.LineString{{0, 0.0005}, {0.0005, 0}}},
		{geotiles.MapTags{"amenity": "bench"}, orb.Point{0.0002, 0.0002}},
		{geotiles.MapTags{"natural": "tree"}, orb.Point{0.0003, 0.0003}},
	}

	sequential, _ := newTestMapper(t, nil)
	for _, p := range pairs {
		if err := sequential.Ingest(p.tags, p.geom); err != nil {
			t.Fatal(err)
		}
	}

	concurrent, _ := newTestMapper(t, nil)
	var wg sync.WaitGroup
	for _, p := range pairs {
		p := p
		wg.Add(1)
		go func() {
			defer wg.Done()
			if err := concurrent.Ingest(p.tags, p.geom); err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	// Every pair has a distinct category, so each cell holds the same set.
	if snapshot(concurrent, true) != snapshot(sequential, true) {
		t.Error("concurrent ingestion differs from sequential ingestion")
	}

	min, max, _ := concurrent.Store().Extent()
	concurrent.Store().Window(min, max, func(c geotiles.GridCoord, cell []*geotiles.Feature) {
		seen := map[geotiles.Category]bool{}
		for i, f := range cell {
			if seen[f.Category()] {
				t.Errorf("%s: duplicate category %s", c, f.Category())
			}
			seen[f.Category()] = true
			if i > 0 && cell[i-1].Tier() > f.Tier() {
				t.Errorf("%s: %s before %s", c, cell[i-1], f)
			}
		}
	})
}

func TestLoadFile(t *testing.T) {
	m, _ := newTestMapper(t, nil)
	path := filepath.Join(t.TempDir(), "area.osm")
	if err := os.WriteFile(path, []byte(extract), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := m.LoadFile(context.Background(), path)
	if err != nil {
		t.Fatalf("LoadFile() error = %v", err)
	}
	if st.Pairs != 3 {
		t.Errorf("Pairs = %d, want 3", st.Pairs)
	}

	cell, ok := m.GetByContinuous(45.0, -75.0)
	if !ok || len(cell) != 3 {
		t.Fatalf("cell = %v, want footway, bench and bakery", cell)
	}
	if cell[2].Category() != geotiles.CategoryShop {
		t.Errorf("cell[2] = %v, want shop last", cell[2])
	}

	// The file extent is (45, -75) to (45, -74.999).
	want := geotiles.Bounds{MinLon: -75.0, MaxLon: -74.999, MinLat: 45.0, MaxLat: 45.0}
	if loaded := m.Loaded(); len(loaded) != 1 || loaded[0] != want {
		t.Errorf("Loaded() = %+v, want [%+v]", loaded, want)
	}
	if !m.Covered(45.0, -74.9995) {
		t.Error("Covered() = false inside the file extent")
	}
	if m.Covered(45.1, -75.0) {
		t.Error("Covered() = true outside the file extent")
	}
}

// writeGeoJSON writes a FeatureCollection of highway=path points.
func writeGeoJSON(t *testing.T, path string, coords ...[2]float64) {
	t.Helper()
	var features []string
	for _, c := range coords {
		features = append(features, fmt.Sprintf(
			`{"type":"Feature","properties":{"highway":"path"},"geometry":{"type":"Point","coordinates":[%g,%g]}}`,
			c[0], c[1]))
	}
	data := `{"type":"FeatureCollection","features":[` + strings.Join(features, ",") + `]}`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoadFileInvalidPairs(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mixed.geojson")
	writeGeoJSON(t, path, [2]float64{0.001, 0}, [2]float64{0, 95}, [2]float64{0.002, 0})

	tests := []struct {
		name        string
		skipErrors  bool
		wantErr     bool
		wantPairs   int
		wantInvalid int
		wantCells   int
	}{
		{"skip errors", true, false, 2, 1, 2},
		{"stop at first invalid pair", false, true, 1, 0, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New(Options{SkipErrors: tt.skipErrors, Fetcher: &fakeFetcher{}})
			st, err := m.LoadFile(context.Background(), path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("LoadFile() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				var invalid *geotiles.ErrInvalidGeometry
				if !errors.As(err, &invalid) {
					t.Errorf("error = %v, want *ErrInvalidGeometry", err)
				}
				if len(m.Loaded()) != 0 {
					t.Errorf("Loaded() = %v, want nothing recorded for a failed load", m.Loaded())
				}
			}
			if st.Pairs != tt.wantPairs || st.Invalid != tt.wantInvalid {
				t.Errorf("stats = %+v, want %d pairs, %d invalid", st, tt.wantPairs, tt.wantInvalid)
			}
			if m.Store().Len() != tt.wantCells {
				t.Errorf("Len() = %d, want %d", m.Store().Len(), tt.wantCells)
			}
		})
	}
}

func TestLoadFilesStopsOnFirstError(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.geojson")
	paths := []string{missing}
	for i := 0; i < 4; i++ {
		path := filepath.Join(dir, fmt.Sprintf("part-%d.geojson", i))
		writeGeoJSON(t, path, [2]float64{float64(i+1) / 100, 0})
		paths = append(paths, path)
	}

	m, _ := newTestMapper(t, nil)
	calls := 0
	st, errs := m.LoadFiles(context.Background(), paths, LoadOptions{
		Workers:  1,
		Progress: func(loaded, total int) { calls++ },
	})

	if len(errs) != 1 {
		t.Fatalf("errs = %v, want exactly one", errs)
	}
	if !strings.Contains(errs[0].Error(), "missing.geojson") || errors.Is(errs[0], context.Canceled) {
		t.Errorf("errs[0] = %v, want the missing file error", errs[0])
	}
	if st.Pairs != 0 || m.Store().Len() != 0 {
		t.Errorf("Pairs = %d, Len() = %d; want remaining files cancelled", st.Pairs, m.Store().Len())
	}
	if calls != len(paths) {
		t.Errorf("progress called %d times, want %d", calls, len(paths))
	}
}

func TestLoadFiles(t *testing.T) {
	dir := t.TempDir()
	var paths []string
	for i := 0; i < 4; i++ {
		path := filepath.Join(dir, fmt.Sprintf("part-%d.geojson", i))
		data := fmt.Sprintf(`{"type":"FeatureCollection","features":[
			{"type":"Feature","properties":{"highway":"path"},
			 "geometry":{"type":"Point","coordinates":[0.0%d,0]}}]}`, i+1)
		if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
			t.Fatal(err)
		}
		paths = append(paths, path)
	}
	paths = append(paths, filepath.Join(dir, "missing.geojson"))

	m, _ := newTestMapper(t, nil)
	var progress []int
	var mu sync.Mutex
	st, errs := m.LoadFiles(context.Background(), paths, LoadOptions{
		Workers:    2,
		SkipErrors: true,
		Progress: func(loaded, total int) {
			mu.Lock()
			progress = append(progress, loaded)
			mu.Unlock()
		},
	})

	if len(errs) != 1 || !strings.Contains(errs[0].Error(), "missing.geojson") {
		t.Errorf("errs = %v, want one error for the missing file", errs)
	}
	if st.Pairs != 4 {
		t.Errorf("Pairs = %d, want 4", st.Pairs)
	}
	if m.Store().Len() != 4 {
		t.Errorf("Len() = %d, want 4", m.Store().Len())
	}
	if len(progress) != len(paths) {
		t.Errorf("progress called %d times, want %d", len(progress), len(paths))
	}
}

func TestLoadAroundSkipsCoveredArea(t *testing.T) {
	m, fetcher := newTestMapper(t, nil)
	ctx := context.Background()

	loaded, err := m.LoadAround(ctx, 45.0, -75.0, 200)
	if err != nil || !loaded {
		t.Fatalf("LoadAround() = %v, %v", loaded, err)
	}
	if _, ok := m.GetByContinuous(45.0, -75.0); !ok {
		t.Error("Expected downloaded features in the store")
	}

	// Nearby and smaller: already covered.
	loaded, err = m.LoadAround(ctx, 45.0005, -75.0005, 100)
	if err != nil || loaded {
		t.Errorf("LoadAround() = %v, %v; want skipped", loaded, err)
	}

	// Far away: new download.
	loaded, err = m.LoadAround(ctx, 46.0, -75.0, 200)
	if err != nil || !loaded {
		t.Errorf("LoadAround() = %v, %v; want loaded", loaded, err)
	}

	if len(fetcher.downloads) != 2 {
		t.Errorf("downloads = %d, want 2", len(fetcher.downloads))
	}
	if len(m.Loaded()) != 2 {
		t.Errorf("Loaded() = %v", m.Loaded())
	}
}

func TestLoadAroundRejectsBadInput(t *testing.T) {
	m, _ := newTestMapper(t, nil)
	if _, err := m.LoadAround(context.Background(), 91, 0, 200); err == nil {
		t.Error("Expected invalid coordinate error")
	}
	if _, err := m.LoadAround(context.Background(), 45, -75, 0); err == nil {
		t.Error("Expected invalid radius error")
	}
}

func TestLoadAddress(t *testing.T) {
	m, _ := newTestMapper(t, nil)

	lat, lon, err := m.LoadAddress(context.Background(), "Parliament Hill", 200)
	if err != nil {
		t.Fatalf("LoadAddress() error = %v", err)
	}
	if lat != 45.0005 || lon != -74.9995 {
		t.Errorf("LoadAddress() = %v, %v", lat, lon)
	}
	if _, _, err := m.LoadAddress(context.Background(), "Atlantis", 200); err == nil {
		t.Error("Expected geocoding error")
	}
}

// gatedFetcher blocks downloads until release is closed.
type gatedFetcher struct {
	fakeFetcher
	started chan struct{}
	release chan struct{}
	once    sync.Once
}

func (g *gatedFetcher) DownloadBounds(ctx context.Context, b geotiles.Bounds) (string, error) {
	g.once.Do(func() { close(g.started) })
	<-g.release
	return g.fakeFetcher.DownloadBounds(ctx, b)
}

func TestLoadAroundConcurrentSameArea(t *testing.T) {
	fetcher := &gatedFetcher{
		fakeFetcher: fakeFetcher{dir: t.TempDir(), extract: extract},
		started:     make(chan struct{}),
		release:     make(chan struct{}),
	}
	m := New(Options{Fetcher: fetcher})
	ctx := context.Background()

	type result struct {
		loaded bool
		err    error
	}
	first := make(chan result, 1)
	go func() {
		loaded, err := m.LoadAround(ctx, 45.0, -75.0, 200)
		first <- result{loaded, err}
	}()

	<-fetcher.started
	loaded, err := m.LoadAround(ctx, 45.0, -75.0, 200)
	if err != nil || loaded {
		t.Errorf("LoadAround() during download = %v, %v; want skipped", loaded, err)
	}

	close(fetcher.release)
	if r := <-first; r.err != nil || !r.loaded {
		t.Errorf("LoadAround() = %v, %v; want loaded", r.loaded, r.err)
	}
	if len(fetcher.downloads) != 1 {
		t.Errorf("downloads = %d, want 1", len(fetcher.downloads))
	}
	if len(m.Loaded()) != 1 {
		t.Errorf("Loaded() = %v, want one area", m.Loaded())
	}
}

// failingFetcher fails the first failures downloads.
type failingFetcher struct {
	fakeFetcher
	failures int
	calls    int
}

func (f *failingFetcher) DownloadBounds(ctx context.Context, b geotiles.Bounds) (string, error) {
	f.calls++
	if f.calls <= f.failures {
		return "", errors.New("overpass unavailable")
	}
	return f.fakeFetcher.DownloadBounds(ctx, b)
}

func TestLoadAroundRetriesAfterFailure(t *testing.T) {
	fetcher := &failingFetcher{fakeFetcher: fakeFetcher{dir: t.TempDir(), extract: extract}, failures: 1}
	m := New(Options{Fetcher: fetcher})
	ctx := context.Background()

	if _, err := m.LoadAround(ctx, 45.0, -75.0, 200); err == nil {
		t.Fatal("Expected download error")
	}
	if len(m.Loaded()) != 0 {
		t.Errorf("Loaded() = %v after a failed download", m.Loaded())
	}

	loaded, err := m.LoadAround(ctx, 45.0, -75.0, 200)
	if err != nil || !loaded {
		t.Errorf("LoadAround() retry = %v, %v; want loaded", loaded, err)
	}
	if fetcher.calls != 2 {
		t.Errorf("calls = %d, want 2", fetcher.calls)
	}
}
