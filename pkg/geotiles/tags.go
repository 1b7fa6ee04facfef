package geotiles

import (
	"fmt"
	"sort"
	"strings"
)

// TagSource is read-only access to a feature's tag dictionary. Each source
// format (GeoJSON properties, OSM tag lists, plain maps) provides its own
// implementation.
type TagSource interface {
	// Has reports whether key is present.
	Has(key string) bool
	// Fetch returns the value for key.
	Fetch(key string) (string, bool)
	// Dump renders the whole dictionary for diagnostics.
	Dump() string
}

// MapTags is a TagSource over a plain string map.
type MapTags map[string]string

func (m MapTags) Has(key string) bool {
	_, ok := m[key]
	return ok
}

func (m MapTags) Fetch(key string) (string, bool) {
	v, ok := m[key]
	return v, ok
}

func (m MapTags) Dump() string {
	return DumpPairs(len(m), func(yield func(k, v string)) {
		for k, v := range m {
			yield(k, v)
		}
	})
}

// DumpPairs renders key/value pairs as a sorted "{k=v, ...}" string. It lets
// TagSource implementations share one diagnostic format.
func DumpPairs(n int, each func(yield func(k, v string))) string {
	pairs := make([]string, 0, n)
	each(func(k, v string) {
		pairs = append(pairs, fmt.Sprintf("%s=%s", k, v))
	})
	sort.Strings(pairs)
	return "{" + strings.Join(pairs, ", ") + "}"
}
