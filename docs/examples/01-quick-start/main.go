package main

import (
	"context"
	"fmt"
	"log"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/mapper"
)

func main() {
	// Create mapper
	m := mapper.New(mapper.DefaultOptions())

	// Load an OpenStreetMap extract
	st, err := m.LoadFile(context.Background(), "ottawa.osm")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Features: %d (skipped %d)\n", st.Pairs, st.Invalid)
	fmt.Printf("Cells: %d\n", m.Store().Len())

	// What is at Parliament Hill?
	cell, ok := m.GetByContinuous(45.4236, -75.7009)
	if !ok {
		fmt.Println("Nothing here")
		return
	}
	for _, f := range cell {
		fmt.Printf("  %s (%s)\n", f, f.Tier())
	}
}
