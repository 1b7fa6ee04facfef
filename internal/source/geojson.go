package source

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geojson"
	"github.com/pkg/errors"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// PropertyTags adapts GeoJSON feature properties to geotiles.TagSource.
// Non-string values are rendered in their JSON text form.
type PropertyTags struct {
	props geojson.Properties
	id    string
}

// NewPropertyTags wraps props. id is used as the "id" tag when props lack one.
func NewPropertyTags(props geojson.Properties, id string) PropertyTags {
	return PropertyTags{props: props, id: id}
}

func (p PropertyTags) Has(key string) bool {
	_, ok := p.Fetch(key)
	return ok
}

func (p PropertyTags) Fetch(key string) (string, bool) {
	v, ok := p.props[key]
	if !ok {
		if key == "id" && p.id != "" {
			return p.id, true
		}
		return "", false
	}
	return propertyString(v), true
}

func (p PropertyTags) Dump() string {
	return geotiles.DumpPairs(len(p.props), func(yield func(k, v string)) {
		for k, v := range p.props {
			yield(k, propertyString(v))
		}
	})
}

func propertyString(v interface{}) string {
	switch v := v.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	case nil:
		return ""
	default:
		return fmt.Sprint(v)
	}
}

func readGeoJSON(ctx context.Context, r io.Reader, emit EmitFunc) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "read geojson")
	}
	fc, err := geojson.UnmarshalFeatureCollection(data)
	if err != nil {
		return errors.Wrap(err, "decode geojson")
	}

	logger := loggerFrom(ctx)
	for i, f := range fc.Features {
		if err := ctx.Err(); err != nil {
			return err
		}
		if f.Geometry == nil || f.Properties == nil {
			logger.Warn("skipping geojson feature without geometry or properties", "index", i)
			continue
		}
		var id string
		if f.ID != nil {
			id = propertyString(f.ID)
		}
		tags := NewPropertyTags(f.Properties, id)
		for _, g := range Flatten(f.Geometry) {
			if err := emit(Pair{Tags: tags, Geometry: g}); err != nil {
				return err
			}
		}
	}
	return nil
}

// Flatten expands multi-geometries and collections into their points, line
// strings and polygons. Rings and bounds become polygons. Other shapes are
// returned unchanged so that validation can reject them.
func Flatten(g orb.Geometry) []orb.Geometry {
	switch g := g.(type) {
	case orb.MultiPoint:
		out := make([]orb.Geometry, len(g))
		for i, p := range g {
			out[i] = p
		}
		return out
	case orb.MultiLineString:
		out := make([]orb.Geometry, len(g))
		for i, ls := range g {
			out[i] = ls
		}
		return out
	case orb.MultiPolygon:
		out := make([]orb.Geometry, len(g))
		for i, p := range g {
			out[i] = p
		}
		return out
	case orb.Collection:
		var out []orb.Geometry
		for _, member := range g {
			out = append(out, Flatten(member)...)
		}
		return out
	case orb.Ring:
		return []orb.Geometry{orb.Polygon{g}}
	case orb.Bound:
		return []orb.Geometry{g.ToPolygon()}
	default:
		return []orb.Geometry{g}
	}
}
