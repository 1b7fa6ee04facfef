// Package classify turns an OSM tag dictionary into a geotiles.Feature.
//
// Classification is driven by the descriptor table in tables.go: the first
// category key present in the dictionary (in the order given by Precedence)
// decides the category, the key's value is matched against that category's
// token list, and the category's attribute keys are copied verbatim.
package classify

import (
	"fmt"

	"github.com/paulmach/orb"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// Unclassified is the subtype given to features whose token is not in their
// category's token list, and to features with no category key at all.
const Unclassified = "unclassified"

// Address keys consulted for the address sub-record.
const (
	KeyHouseNumber = "addr:housenumber"
	KeyUnit        = "addr:unit"
	KeyStreet      = "addr:street"
	KeyPostalCode  = "addr:postcode"
)

// DiagnosticKind says why a classification was degraded.
type DiagnosticKind int

const (
	// UnknownSubtype means the category key was present but its value is not
	// a recognized token.
	UnknownSubtype DiagnosticKind = iota + 1
	// NoCategory means no category key matched.
	NoCategory
)

func (k DiagnosticKind) String() string {
	switch k {
	case UnknownSubtype:
		return "unknown subtype"
	case NoCategory:
		return "no category"
	default:
		return "unknown"
	}
}

// Diagnostic is a non-fatal data-quality note produced during classification.
type Diagnostic struct {
	Kind     DiagnosticKind
	Category geotiles.Category
	// Token is the raw subtype value that failed to match.
	Token string
	// Tags is the full dictionary, rendered by TagSource.Dump.
	Tags string
}

func (d *Diagnostic) String() string {
	if d.Kind == NoCategory {
		return fmt.Sprintf("no category key in %s", d.Tags)
	}
	return fmt.Sprintf("unknown %s subtype %q in %s", d.Category, d.Token, d.Tags)
}

// Classify builds exactly one feature from tags and geom. It never fails: an
// unknown subtype yields the category's Unclassified subtype and a diagnostic,
// and a dictionary without category keys yields an Unclassified feature.
func Classify(tags geotiles.TagSource, geom orb.Geometry) (*geotiles.Feature, *Diagnostic) {
	id, _ := tags.Fetch("id")

	r, value, ok := match(tags)
	if !ok {
		f := geotiles.NewFeature(geotiles.FeatureSpec{
			Category: geotiles.CategoryUnclassified,
			Subtype:  Unclassified,
			ID:       id,
			Geometry: geom,
			Address:  addressOf(tags),
		})
		return f, &Diagnostic{Kind: NoCategory, Tags: tags.Dump()}
	}

	d, _ := Lookup(r.Category)
	subtype := value
	if r.Subtype != "" {
		subtype = r.Subtype
	}

	var diag *Diagnostic
	if !d.HasToken(subtype) {
		diag = &Diagnostic{
			Kind:     UnknownSubtype,
			Category: r.Category,
			Token:    subtype,
			Tags:     tags.Dump(),
		}
		subtype = Unclassified
	}

	f := geotiles.NewFeature(geotiles.FeatureSpec{
		Category:   r.Category,
		Subtype:    subtype,
		ID:         id,
		Geometry:   geom,
		Address:    addressOf(tags),
		Attributes: copyAttributes(tags, d.Attributes),
	})
	return f, diag
}

// match walks the precedence list and returns the first rule that applies
// together with the tag value it matched.
func match(tags geotiles.TagSource) (rule, string, bool) {
	for _, r := range precedence {
		v, ok := tags.Fetch(r.Key)
		if !ok {
			continue
		}
		if r.Value != "" && v != r.Value {
			continue
		}
		return r, v, true
	}
	return rule{}, "", false
}

func copyAttributes(tags geotiles.TagSource, keys []string) map[string]string {
	attrs := make(map[string]string)
	for _, k := range keys {
		if v, ok := tags.Fetch(k); ok {
			attrs[k] = v
		}
	}
	return attrs
}

func addressOf(tags geotiles.TagSource) *geotiles.Address {
	var a geotiles.Address
	var found bool
	for _, f := range []struct {
		key string
		dst *string
	}{
		{KeyHouseNumber, &a.HouseNumber},
		{KeyUnit, &a.Unit},
		{KeyStreet, &a.Street},
		{KeyPostalCode, &a.PostalCode},
	} {
		if v, ok := tags.Fetch(f.key); ok {
			*f.dst = v
			found = true
		}
	}
	if !found {
		return nil
	}
	return &a
}
