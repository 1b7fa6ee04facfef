package geotiles

import (
	"fmt"
	"sort"
	"strings"

	"github.com/paulmach/orb"
)

// Feature is a classified OSM feature. It is immutable once built with
// NewFeature and is shared by pointer between all cells it covers.
type Feature struct {
	category   Category
	subtype    string
	id         string
	geometry   orb.Geometry
	address    *Address
	attributes map[string]string
}

// FeatureSpec holds the fields of a Feature under construction.
type FeatureSpec struct {
	Category Category
	Subtype  string
	ID       string
	Geometry orb.Geometry
	Address  *Address
	// Attributes holds the recognized attribute keys that were present.
	Attributes map[string]string
}

// NewFeature builds an immutable Feature. The attribute map, address and
// geometry are copied.
func NewFeature(spec FeatureSpec) *Feature {
	attrs := make(map[string]string, len(spec.Attributes))
	for k, v := range spec.Attributes {
		attrs[k] = v
	}
	var addr *Address
	if spec.Address != nil {
		a := *spec.Address
		addr = &a
	}
	return &Feature{
		category:   spec.Category,
		subtype:    spec.Subtype,
		id:         spec.ID,
		geometry:   cloneGeometry(spec.Geometry),
		address:    addr,
		attributes: attrs,
	}
}

// Category returns the feature category.
func (f *Feature) Category() Category {
	return f.category
}

// Subtype returns the category-specific subtype token, e.g. "motorway" for a
// highway. Unrecognized source values are reported as "unclassified".
func (f *Feature) Subtype() string {
	return f.subtype
}

// ID returns the source identifier, e.g. "way/123", or "" when the source had none.
func (f *Feature) ID() string {
	return f.id
}

// Geometry returns the source geometry in continuous coordinates. The value
// is shared by every cell holding the feature and must not be modified.
func (f *Feature) Geometry() orb.Geometry {
	return f.geometry
}

// GeometryType returns the shape of the source geometry.
func (f *Feature) GeometryType() GeometryType {
	return TypeOf(f.geometry)
}

// Tier returns the display tier used to order cell lists.
func (f *Feature) Tier() Tier {
	return TierOf(f.category, f.subtype)
}

// Address returns the address sub-record, or nil when the source carried no
// addr:* keys.
func (f *Feature) Address() *Address {
	if f.address == nil {
		return nil
	}
	a := *f.address
	return &a
}

// Attribute returns a recognized attribute value.
//
// Example:
//
//	if name, ok := feature.Attribute("name"); ok {
//	    fmt.Println(name)
//	}
func (f *Feature) Attribute(key string) (string, bool) {
	v, ok := f.attributes[key]
	return v, ok
}

// Attributes returns a copy of the recognized attributes that were present.
func (f *Feature) Attributes() map[string]string {
	out := make(map[string]string, len(f.attributes))
	for k, v := range f.attributes {
		out[k] = v
	}
	return out
}

// Name is shorthand for the "name" attribute.
func (f *Feature) Name() string {
	return f.attributes["name"]
}

func (f *Feature) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s/%s", f.category, f.subtype)
	if f.id != "" {
		fmt.Fprintf(&b, " %s", f.id)
	}
	if name := f.Name(); name != "" {
		fmt.Fprintf(&b, " %q", name)
	}
	return b.String()
}

// SortedAttributeKeys returns the present attribute keys in lexical order.
func (f *Feature) SortedAttributeKeys() []string {
	keys := make([]string, 0, len(f.attributes))
	for k := range f.attributes {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Address is the optional addr:* sub-record. Each field is empty when the
// corresponding key was missing.
type Address struct {
	HouseNumber string // addr:housenumber
	Unit        string // addr:unit
	Street      string // addr:street
	PostalCode  string // addr:postcode
}

// String joins the present fields with single spaces.
func (a Address) String() string {
	parts := make([]string, 0, 4)
	for _, p := range []string{a.HouseNumber, a.Unit, a.Street, a.PostalCode} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " ")
}

func cloneGeometry(g orb.Geometry) orb.Geometry {
	if g == nil {
		return nil
	}
	return orb.Clone(g)
}
