package classify

import (
	"sync"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// Descriptor describes one category: the tag key that carries its subtype,
// the accepted subtype tokens and the attribute keys worth keeping.
type Descriptor struct {
	Category geotiles.Category
	// Key is the tag key naming the subtype. Defaults to the category name.
	Key        string
	Tokens     []string
	Attributes []string

	tokens map[string]struct{}
}

// HasToken reports whether token is a recognized subtype.
func (d *Descriptor) HasToken(token string) bool {
	_, ok := d.tokens[token]
	return ok
}

// rule is one step of the precedence walk. The first rule whose key is present
// (and whose value matches, when Value is set) decides the category.
type rule struct {
	Key      string
	Value    string
	Category geotiles.Category
	// Subtype overrides the tag value as the subtype token.
	Subtype string
}

// precedence is the order in which category keys are consulted. A feature
// carrying several keys (building + amenity, say) takes the first match.
//
// One order serves points, lines and polygons alike. Barrier comes last, so
// a way tagged both highway and barrier is drawn as the road, and a fence
// shared with a landuse area is drawn as the area.
var precedence = []rule{
	{Key: "building", Category: geotiles.CategoryBuilding},
	{Key: "natural", Category: geotiles.CategoryNatural},
	{Key: "boundary", Category: geotiles.CategoryBoundary},
	{Key: "craft", Category: geotiles.CategoryCraft},
	{Key: "aeroway", Category: geotiles.CategoryAeroway},
	{Key: "aerialway", Category: geotiles.CategoryAerialway},
	{Key: "leisure", Category: geotiles.CategoryLeisure},
	{Key: "emergency", Category: geotiles.CategoryEmergency},
	{Key: "landuse", Category: geotiles.CategoryLanduse},
	{Key: "amenity", Category: geotiles.CategoryAmenity},
	{Key: "highway", Category: geotiles.CategoryHighway},
	{Key: "healthcare", Category: geotiles.CategoryHealthcare},
	{Key: "historic", Category: geotiles.CategoryHistoric},
	{Key: "man_made", Category: geotiles.CategoryManMade},
	{Key: "military", Category: geotiles.CategoryMilitary},
	{Key: "office", Category: geotiles.CategoryOffice},
	{Key: "place", Category: geotiles.CategoryPlace},
	{Key: "railway", Category: geotiles.CategoryRailway},
	{Key: "route", Category: geotiles.CategoryRoute},
	{Key: "geological", Category: geotiles.CategoryGeological},
	{Key: "public_transport", Category: geotiles.CategoryPublicTransport},
	{Key: "power", Category: geotiles.CategoryPower},
	{Key: "shop", Category: geotiles.CategoryShop},
	{Key: "sport", Category: geotiles.CategorySport},
	{Key: "telecom", Category: geotiles.CategoryTelecom},
	{Key: "tourism", Category: geotiles.CategoryTourism},
	{Key: "water", Category: geotiles.CategoryWater},
	{Key: "waterway", Category: geotiles.CategoryWaterway},
	{Key: "barrier", Category: geotiles.CategoryBarrier},

	// Secondary keys for features lacking a primary one.
	{Key: "building:part", Category: geotiles.CategoryBuilding},
	{Key: "addr:housenumber", Category: geotiles.CategoryBuilding, Subtype: "yes"},
	{Key: "landcover", Category: geotiles.CategoryLanduse},
	{Key: "piste:type", Category: geotiles.CategoryRoute, Subtype: "piste"},
	{Key: "service", Value: "driveway", Category: geotiles.CategoryHighway, Subtype: "service"},
}

var (
	byCategory     map[geotiles.Category]*Descriptor
	byCategoryOnce sync.Once
)

func loadDescriptors() {
	byCategory = make(map[geotiles.Category]*Descriptor, len(descriptors))
	for i := range descriptors {
		d := &descriptors[i]
		if d.Key == "" {
			d.Key = d.Category.String()
		}
		d.tokens = make(map[string]struct{}, len(d.Tokens))
		for _, t := range d.Tokens {
			d.tokens[t] = struct{}{}
		}
		byCategory[d.Category] = d
	}
}

// Lookup returns the descriptor for a category.
func Lookup(c geotiles.Category) (*Descriptor, bool) {
	byCategoryOnce.Do(loadDescriptors)
	d, ok := byCategory[c]
	return d, ok
}

// Precedence returns the category keys in the order they are consulted.
func Precedence() []string {
	keys := make([]string, len(precedence))
	for i, r := range precedence {
		keys[i] = r.Key
	}
	return keys
}
