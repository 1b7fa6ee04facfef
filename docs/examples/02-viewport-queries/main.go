package main

import (
	"context"
	"fmt"
	"log"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
	"github.com/edouardpoitras/osm-geo-mapper/pkg/mapper"
)

func main() {
	opts := mapper.DefaultOptions()
	opts.Visibility = mapper.Visibility{Landuse: true, Leisure: true}
	m := mapper.New(opts)

	if _, err := m.LoadFile(context.Background(), "ottawa.osm"); err != nil {
		log.Fatal(err)
	}

	// Define viewport (ByWard Market area)
	min := geotiles.CoordFromLatLon(45.4270, -75.6950)
	max := geotiles.CoordFromLatLon(45.4300, -75.6900)

	// Count the top feature of every populated cell, one read lock for the pass
	counts := make(map[geotiles.Category]int)
	m.Store().Window(min, max, func(c geotiles.GridCoord, cell []*geotiles.Feature) {
		counts[cell[0].Category()]++
	})

	fmt.Printf("Viewport %s to %s\n", min, max)
	for _, c := range geotiles.Categories() {
		if n := counts[c]; n > 0 {
			fmt.Printf("  %-18s %d cells\n", c, n)
		}
	}
}
