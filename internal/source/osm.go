package source

import (
	"context"
	"io"
	"runtime"

	"github.com/paulmach/orb"
	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// OSMTags adapts an osm.Tags list to geotiles.TagSource. The feature id
// ("node/1", "way/2") is exposed as the "id" tag unless the list has one.
type OSMTags struct {
	tags osm.Tags
	id   string
}

// NewOSMTags wraps tags with the given feature id.
func NewOSMTags(tags osm.Tags, id string) OSMTags {
	return OSMTags{tags: tags, id: id}
}

func (t OSMTags) Has(key string) bool {
	_, ok := t.Fetch(key)
	return ok
}

func (t OSMTags) Fetch(key string) (string, bool) {
	for _, tag := range t.tags {
		if tag.Key == key {
			return tag.Value, true
		}
	}
	if key == "id" && t.id != "" {
		return t.id, true
	}
	return "", false
}

func (t OSMTags) Dump() string {
	return geotiles.DumpPairs(len(t.tags), func(yield func(k, v string)) {
		for _, tag := range t.tags {
			yield(tag.Key, tag.Value)
		}
	})
}

// areaKeys mark a closed way as an area rather than a ring-shaped line.
var areaKeys = []string{
	"building", "building:part", "landuse", "landcover", "natural", "leisure", "amenity", "shop",
	"tourism", "man_made", "military", "aeroway", "place", "boundary", "historic", "office",
	"craft", "healthcare", "geological", "water",
}

// IsArea reports whether a way should become a polygon. The way must be
// closed; area=yes forces a polygon, area=no forces a line, otherwise any
// area key decides.
func IsArea(w *osm.Way) bool {
	if len(w.Nodes) < 4 || w.Nodes[0].ID != w.Nodes[len(w.Nodes)-1].ID {
		return false
	}
	switch w.Tags.Find("area") {
	case "yes":
		return true
	case "no":
		return false
	}
	for _, k := range areaKeys {
		if w.Tags.HasTag(k) {
			return true
		}
	}
	return false
}

func readOSM(ctx context.Context, r io.Reader, format Format, emit EmitFunc) error {
	var scanner osm.Scanner
	if format == FormatOSMPBF {
		s := osmpbf.New(ctx, r, runtime.NumCPU())
		s.SkipRelations = true
		scanner = s
	} else {
		scanner = osmxml.New(ctx, r)
	}
	defer scanner.Close()

	logger := loggerFrom(ctx)
	nodes := make(map[osm.NodeID]orb.Point)
	skipped := 0

	for scanner.Scan() {
		switch o := scanner.Object().(type) {
		case *osm.Node:
			p := orb.Point{o.Lon, o.Lat}
			nodes[o.ID] = p
			if len(o.Tags) == 0 {
				continue
			}
			tags := NewOSMTags(o.Tags, o.FeatureID().String())
			if err := emit(Pair{Tags: tags, Geometry: p}); err != nil {
				return err
			}
		case *osm.Way:
			if len(o.Tags) == 0 {
				continue
			}
			g, ok := wayGeometry(o, nodes)
			if !ok {
				skipped++
				continue
			}
			tags := NewOSMTags(o.Tags, o.FeatureID().String())
			if err := emit(Pair{Tags: tags, Geometry: g}); err != nil {
				return err
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return errors.Wrap(err, "scan osm data")
	}
	if skipped > 0 {
		logger.Warn("skipped ways with missing nodes", "count", skipped)
	}
	return nil
}

// wayGeometry resolves the way's node references against nodes seen earlier
// in the stream. It fails when any node is missing.
func wayGeometry(w *osm.Way, nodes map[osm.NodeID]orb.Point) (orb.Geometry, bool) {
	ls := make(orb.LineString, 0, len(w.Nodes))
	for _, wn := range w.Nodes {
		p, ok := nodes[wn.ID]
		if !ok {
			return nil, false
		}
		ls = append(ls, p)
	}
	if IsArea(w) {
		return orb.Polygon{orb.Ring(ls)}, true
	}
	return ls, true
}
