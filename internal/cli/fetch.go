package cli

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
	"github.com/edouardpoitras/osm-geo-mapper/pkg/mapper"
)

// location is the --lat/--lon/--address/--radius flag group shared by fetch
// and view.
type location struct {
	lat, lon float64
	address  string
	radius   int32
}

func (l *location) addFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&l.lat, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&l.lon, "lon", 0, "longitude in degrees")
	cmd.Flags().StringVar(&l.address, "address", "", "free-form address to geocode instead of --lat/--lon")
	cmd.Flags().Int32Var(&l.radius, "radius", 0, "half-width of the area in grid units (default from config)")
	cmd.MarkFlagsMutuallyExclusive("address", "lat")
	cmd.MarkFlagsMutuallyExclusive("address", "lon")
	cmd.MarkFlagsRequiredTogether("lat", "lon")
}

// set reports whether a location was given on the command line.
func (l *location) set(cmd *cobra.Command) bool {
	return l.address != "" || cmd.Flags().Changed("lat")
}

// load downloads the area around the location into m and returns its center.
func (c *CLI) load(ctx context.Context, m *mapper.Mapper, l *location) (lat, lon float64, err error) {
	radius := l.radius
	if radius <= 0 {
		radius = c.cfg.Radius
	}
	if l.address != "" {
		return m.LoadAddress(ctx, l.address, radius)
	}
	if _, err := m.LoadAround(ctx, l.lat, l.lon, radius); err != nil {
		return 0, 0, err
	}
	return l.lat, l.lon, nil
}

// fetchCommand downloads the area around a location and summarizes it.
func (c *CLI) fetchCommand() *cobra.Command {
	var loc location

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download and rasterize the area around a location",
		Long: `Download the OpenStreetMap data around a coordinate or geocoded address
from the Overpass API, rasterize it and print the cell at the center.`,
		Example: `  osm-geo-mapper fetch --lat 45.4215 --lon -75.6972
  osm-geo-mapper fetch --address "111 Wellington St, Ottawa" --radius 300`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !loc.set(cmd) {
				return errors.New("either --address or --lat and --lon is required")
			}
			ctx := cmd.Context()
			c.serveMetrics(ctx)

			m := c.newMapper()
			lat, lon, err := c.load(ctx, m, &loc)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			for _, b := range m.Loaded() {
				printSuccess(out, "Loaded area lat %.5f..%.5f lon %.5f..%.5f",
					b.MinLat, b.MaxLat, b.MinLon, b.MaxLon)
			}
			printInfo(out, "%s populated cells", styleNumber.Render(fmt.Sprint(m.Store().Len())))

			coord := geotiles.CoordFromLatLon(lat, lon)
			cell, _ := m.Get(coord.X, coord.Y)
			printInfo(out, "%s %s (%.5f, %.5f)", styleTitle.Render("center"), coord, lat, lon)
			fmt.Fprintln(out, describeCell(cell))
			return nil
		},
	}

	loc.addFlags(cmd)
	c.addVisibilityFlags(cmd)
	return cmd
}
