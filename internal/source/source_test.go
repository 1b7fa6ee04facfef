package source

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

const testGeoJSON = `{
  "type": "FeatureCollection",
  "features": [
    {
      "type": "Feature",
      "id": "node/1",
      "properties": {"amenity": "bench", "backrest": true, "seats": 4},
      "geometry": {"type": "Point", "coordinates": [-75.69, 45.42]}
    },
    {
      "type": "Feature",
      "properties": {"id": "way/2", "highway": "residential"},
      "geometry": {"type": "MultiLineString", "coordinates": [
        [[-75.69, 45.42], [-75.68, 45.43]],
        [[-75.67, 45.44], [-75.66, 45.45]]
      ]}
    },
    {
      "type": "Feature",
      "properties": null,
      "geometry": {"type": "Point", "coordinates": [0, 0]}
    }
  ]
}`

const testOSMXML = `<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6">
  <node id="1" lat="45.0" lon="-75.0"/>
  <node id="2" lat="45.0" lon="-74.999"/>
  <node id="3" lat="45.001" lon="-74.999"/>
  <node id="4" lat="45.001" lon="-75.0">
    <tag k="amenity" v="bench"/>
  </node>
  <way id="10">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/><nd ref="4"/><nd ref="1"/>
    <tag k="building" v="house"/>
  </way>
  <way id="11">
    <nd ref="1"/><nd ref="2"/><nd ref="3"/><nd ref="4"/><nd ref="1"/>
    <tag k="highway" v="service"/>
    <tag k="junction" v="roundabout"/>
  </way>
  <way id="12">
    <nd ref="1"/><nd ref="99"/>
    <tag k="highway" v="footway"/>
  </way>
</osm>`

func collect(t *testing.T, format Format, data string) []Pair {
	t.Helper()
	var pairs []Pair
	err := Read(context.Background(), strings.NewReader(data), format, func(p Pair) error {
		pairs = append(pairs, p)
		return nil
	})
	if err != nil {
		t.Fatalf("Read() error = %v", err)
	}
	return pairs
}

func TestReadGeoJSON(t *testing.T) {
	pairs := collect(t, FormatGeoJSON, testGeoJSON)

	// One point, two flattened lines; the feature without properties is skipped.
	if len(pairs) != 3 {
		t.Fatalf("len(pairs) = %d, want 3", len(pairs))
	}

	bench := pairs[0]
	if id, _ := bench.Tags.Fetch("id"); id != "node/1" {
		t.Errorf("id = %q, want node/1", id)
	}
	if v, _ := bench.Tags.Fetch("backrest"); v != "true" {
		t.Errorf("backrest = %q, want true", v)
	}
	if v, _ := bench.Tags.Fetch("seats"); v != "4" {
		t.Errorf("seats = %q, want 4", v)
	}

	for _, p := range pairs[1:] {
		if geotiles.TypeOf(p.Geometry) != geotiles.GeometryTypeLineString {
			t.Errorf("Geometry = %T, want orb.LineString", p.Geometry)
		}
		if id, _ := p.Tags.Fetch("id"); id != "way/2" {
			t.Errorf("id = %q, want way/2", id)
		}
	}
}

func TestReadGeoJSONFeatureIDs(t *testing.T) {
	tests := []struct {
		name string
		id   string
		want string
	}{
		{"string", `"way/77"`, "way/77"},
		{"large number", `123456789`, "123456789"},
		{"fraction", `1.5`, "1.5"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := `{"type":"FeatureCollection","features":[{"type":"Feature","id":` + tt.id +
				`,"properties":{"highway":"path"},"geometry":{"type":"Point","coordinates":[0,0]}}]}`
			pairs := collect(t, FormatGeoJSON, data)
			if len(pairs) != 1 {
				t.Fatalf("len(pairs) = %d, want 1", len(pairs))
			}
			if id, _ := pairs[0].Tags.Fetch("id"); id != tt.want {
				t.Errorf("id = %q, want %q", id, tt.want)
			}
		})
	}
}

func TestReadOSMXML(t *testing.T) {
	pairs := collect(t, FormatOSMXML, testOSMXML)

	if len(pairs) != 3 {
		t.Fatalf("len(pairs) = %d, want 3", len(pairs))
	}

	tests := []struct {
		id   string
		want geotiles.GeometryType
	}{
		{"node/4", geotiles.GeometryTypePoint},
		{"way/10", geotiles.GeometryTypePolygon},
		{"way/11", geotiles.GeometryTypeLineString},
	}
	for i, tt := range tests {
		id, _ := pairs[i].Tags.Fetch("id")
		if id != tt.id {
			t.Errorf("pairs[%d] id = %q, want %q", i, id, tt.id)
		}
		if got := geotiles.TypeOf(pairs[i].Geometry); got != tt.want {
			t.Errorf("pairs[%d] geometry = %v, want %v", i, got, tt.want)
		}
	}
}

func TestReadStopsOnEmitError(t *testing.T) {
	stop := errors.New("stop")
	calls := 0
	err := Read(context.Background(), strings.NewReader(testOSMXML), FormatOSMXML, func(Pair) error {
		calls++
		return stop
	})
	if !errors.Is(err, stop) {
		t.Errorf("Read() error = %v, want %v", err, stop)
	}
	if calls != 1 {
		t.Errorf("emit called %d times, want 1", calls)
	}
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "extract.osm")
	if err := os.WriteFile(path, []byte(testOSMXML), 0o644); err != nil {
		t.Fatal(err)
	}

	n := 0
	if err := ReadFile(context.Background(), path, func(Pair) error { n++; return nil }); err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if n != 3 {
		t.Errorf("read %d pairs, want 3", n)
	}

	var unknown *ErrUnknownFormat
	err := ReadFile(context.Background(), filepath.Join(dir, "extract.shp"), func(Pair) error { return nil })
	if !errors.As(err, &unknown) {
		t.Errorf("ReadFile() error = %v, want ErrUnknownFormat", err)
	}

	if err := ReadFile(context.Background(), filepath.Join(dir, "missing.geojson"), func(Pair) error { return nil }); err == nil {
		t.Error("Expected error for missing file")
	}
}

func TestFormatOf(t *testing.T) {
	tests := []struct {
		path string
		want Format
	}{
		{"a.geojson", FormatGeoJSON},
		{"a.JSON", FormatGeoJSON},
		{"a.osm", FormatOSMXML},
		{"a.xml", FormatOSMXML},
		{"planet.osm.pbf", FormatOSMPBF},
		{"a.txt", FormatUnknown},
	}
	for _, tt := range tests {
		if got := FormatOf(tt.path); got != tt.want {
			t.Errorf("FormatOf(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestFlatten(t *testing.T) {
	tests := []struct {
		name string
		geom orb.Geometry
		want int
	}{
		{"point", orb.Point{1, 2}, 1},
		{"multipoint", orb.MultiPoint{{1, 2}, {3, 4}}, 2},
		{"multipolygon", orb.MultiPolygon{{{{0, 0}, {1, 0}, {1, 1}, {0, 0}}}, {{{2, 2}, {3, 2}, {3, 3}, {2, 2}}}}, 2},
		{"collection", orb.Collection{orb.Point{0, 0}, orb.MultiLineString{{{0, 0}, {1, 1}}, {{2, 2}, {3, 3}}}}, 3},
		{"bound", orb.Bound{Min: orb.Point{0, 0}, Max: orb.Point{1, 1}}, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Flatten(tt.geom)
			if len(got) != tt.want {
				t.Fatalf("len(Flatten()) = %d, want %d", len(got), tt.want)
			}
			for _, g := range got {
				if geotiles.TypeOf(g) == geotiles.GeometryTypeUnknown {
					t.Errorf("Flatten() left %T", g)
				}
			}
		})
	}
}

func TestIsArea(t *testing.T) {
	closed := osm.WayNodes{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 1}}
	open := osm.WayNodes{{ID: 1}, {ID: 2}, {ID: 3}, {ID: 4}}

	tests := []struct {
		name  string
		nodes osm.WayNodes
		tags  osm.Tags
		want  bool
	}{
		{"closed building", closed, osm.Tags{{Key: "building", Value: "yes"}}, true},
		{"open building", open, osm.Tags{{Key: "building", Value: "yes"}}, false},
		{"closed highway", closed, osm.Tags{{Key: "highway", Value: "service"}}, false},
		{"closed highway area", closed, osm.Tags{{Key: "highway", Value: "pedestrian"}, {Key: "area", Value: "yes"}}, true},
		{"area no", closed, osm.Tags{{Key: "leisure", Value: "track"}, {Key: "area", Value: "no"}}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := &osm.Way{Nodes: tt.nodes, Tags: tt.tags}
			if got := IsArea(w); got != tt.want {
				t.Errorf("IsArea() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestOSMTagsDump(t *testing.T) {
	tags := NewOSMTags(osm.Tags{{Key: "name", Value: "Elm"}, {Key: "highway", Value: "residential"}}, "way/5")
	if got := tags.Dump(); got != "{highway=residential, name=Elm}" {
		t.Errorf("Dump() = %s", got)
	}
	if !tags.Has("id") {
		t.Error("Expected id to be exposed")
	}
}
