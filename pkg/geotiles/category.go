package geotiles

// Category is the top-level semantic class of a feature. Each category owns a
// closed set of subtype tokens (see internal/classify).
type Category int

const (
	CategoryUnclassified Category = iota
	CategoryAerialway
	CategoryAeroway
	CategoryAmenity
	CategoryBarrier
	CategoryBoundary
	CategoryBuilding
	CategoryCraft
	CategoryEmergency
	CategoryGeological
	CategoryHealthcare
	CategoryHighway
	CategoryHistoric
	CategoryLanduse
	CategoryLeisure
	CategoryManMade
	CategoryMilitary
	CategoryNatural
	CategoryOffice
	CategoryPlace
	CategoryPower
	CategoryPublicTransport
	CategoryRailway
	CategoryRoute
	CategoryShop
	CategorySport
	CategoryTelecom
	CategoryTourism
	CategoryWater
	CategoryWaterway

	categoryCount
)

var categoryNames = [categoryCount]string{
	CategoryUnclassified:    "unclassified",
	CategoryAerialway:       "aerialway",
	CategoryAeroway:         "aeroway",
	CategoryAmenity:         "amenity",
	CategoryBarrier:         "barrier",
	CategoryBoundary:        "boundary",
	CategoryBuilding:        "building",
	CategoryCraft:           "craft",
	CategoryEmergency:       "emergency",
	CategoryGeological:      "geological",
	CategoryHealthcare:      "healthcare",
	CategoryHighway:         "highway",
	CategoryHistoric:        "historic",
	CategoryLanduse:         "landuse",
	CategoryLeisure:         "leisure",
	CategoryManMade:         "man_made",
	CategoryMilitary:        "military",
	CategoryNatural:         "natural",
	CategoryOffice:          "office",
	CategoryPlace:           "place",
	CategoryPower:           "power",
	CategoryPublicTransport: "public_transport",
	CategoryRailway:         "railway",
	CategoryRoute:           "route",
	CategoryShop:            "shop",
	CategorySport:           "sport",
	CategoryTelecom:         "telecom",
	CategoryTourism:         "tourism",
	CategoryWater:           "water",
	CategoryWaterway:        "waterway",
}

// String returns the OSM key naming the category.
func (c Category) String() string {
	if c < 0 || c >= categoryCount {
		return "unknown"
	}
	return categoryNames[c]
}

// ParseCategory returns the category named by an OSM key such as "highway".
func ParseCategory(name string) (Category, bool) {
	for c, n := range categoryNames {
		if n == name {
			return Category(c), true
		}
	}
	return CategoryUnclassified, false
}

// Categories returns every category in declaration order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for c := Category(0); c < categoryCount; c++ {
		out = append(out, c)
	}
	return out
}

// Tier is the display priority group of a feature. Lower tiers are drawn on
// top and come first in a cell's list.
type Tier int

const (
	// TierForeground is always shown: roads, barriers, routes, places,
	// railways, high-value amenities and unclassified features.
	TierForeground Tier = 1

	// TierOverlay is shown over background areas: buildings, boundaries and
	// most point-of-interest categories.
	TierOverlay Tier = 2

	// TierBackground holds large areas such as landuse, leisure and water.
	TierBackground Tier = 3
)

func (t Tier) String() string {
	switch t {
	case TierForeground:
		return "foreground"
	case TierOverlay:
		return "overlay"
	case TierBackground:
		return "background"
	default:
		return "unknown"
	}
}

var categoryTiers = map[Category]Tier{
	CategoryHighway:      TierForeground,
	CategoryBarrier:      TierForeground,
	CategoryRoute:        TierForeground,
	CategoryPlace:        TierForeground,
	CategoryRailway:      TierForeground,
	CategoryUnclassified: TierForeground,

	CategoryBuilding:        TierOverlay,
	CategoryBoundary:        TierOverlay,
	CategoryCraft:           TierOverlay,
	CategoryEmergency:       TierOverlay,
	CategoryHealthcare:      TierOverlay,
	CategoryHistoric:        TierOverlay,
	CategoryManMade:         TierOverlay,
	CategoryMilitary:        TierOverlay,
	CategoryNatural:         TierOverlay,
	CategoryOffice:          TierOverlay,
	CategoryPower:           TierOverlay,
	CategoryPublicTransport: TierOverlay,
	CategoryShop:            TierOverlay,
	CategorySport:           TierOverlay,
	CategoryTelecom:         TierOverlay,
	CategoryTourism:         TierOverlay,
}

// foregroundAmenities are amenity subtypes small and important enough to be
// drawn with the roads.
var foregroundAmenities = map[string]bool{
	"atm":              true,
	"bench":            true,
	"bicycle_parking":  true,
	"bus_station":      true,
	"charging_station": true,
	"drinking_water":   true,
	"fire_station":     true,
	"fuel":             true,
	"hospital":         true,
	"parking_entrance": true,
	"pharmacy":         true,
	"police":           true,
	"post_box":         true,
	"telephone":        true,
	"toilets":          true,
	"waste_basket":     true,
}

// TierOf returns the display tier for a category and subtype. Only amenity
// depends on the subtype; every category missing from the tier table is
// background.
func TierOf(c Category, subtype string) Tier {
	if c == CategoryAmenity && foregroundAmenities[subtype] {
		return TierForeground
	}
	if t, ok := categoryTiers[c]; ok {
		return t
	}
	return TierBackground
}
