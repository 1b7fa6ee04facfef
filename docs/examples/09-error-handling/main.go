package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/paulmach/orb"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
	"github.com/edouardpoitras/osm-geo-mapper/pkg/mapper"
)

func safeLoad(m *mapper.Mapper, path string) error {
	st, err := m.LoadFile(context.Background(), path)
	if err != nil {
		// Check if file exists
		if errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("map file not found: %s", path)
		}
		return err
	}

	if st.Invalid > 0 {
		log.Printf("Warning: %s had %d features with invalid geometry", path, st.Invalid)
	}
	return nil
}

func main() {
	m := mapper.New(mapper.DefaultOptions())

	if err := safeLoad(m, "ottawa.osm"); err != nil {
		log.Printf("Error: %v", err)
	}

	// Try to load a non-existent file
	if err := safeLoad(m, "nonexistent.geojson"); err != nil {
		log.Printf("Expected error: %v", err)
	}

	// Invalid geometry is reported with a typed error
	err := m.Ingest(geotiles.MapTags{"highway": "path"}, orb.LineString{{-75.7, 45.4}})
	var invalid *geotiles.ErrInvalidGeometry
	if errors.As(err, &invalid) {
		log.Printf("Rejected %s: %s", invalid.Type, invalid.Reason)
	}

	// Out-of-range coordinates
	if _, err := m.LoadAround(context.Background(), 123, 0, 200); err != nil {
		var coord *geotiles.ErrInvalidCoordinate
		if errors.As(err, &coord) {
			log.Printf("Bad coordinate: %v", coord)
		}
	}
}
