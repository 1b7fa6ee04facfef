package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// queryCommand loads files and prints the cell at one coordinate.
func (c *CLI) queryCommand() *cobra.Command {
	var lat, lon float64

	cmd := &cobra.Command{
		Use:   "query FILE...",
		Short: "Print the features at a latitude/longitude",
		Long: `Load map files, then print every feature occupying the grid cell at the given
latitude and longitude, highest display priority first.`,
		Example: `  osm-geo-mapper query --lat 45.4215 --lon -75.6972 ottawa.osm`,
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := geotiles.ValidateCoordinate(lat, lon); err != nil {
				return err
			}

			m := c.newMapper()
			if _, err := c.loadFiles(cmd.Context(), m, args); err != nil {
				return err
			}

			coord := geotiles.CoordFromLatLon(lat, lon)
			cell, _ := m.Get(coord.X, coord.Y)
			out := cmd.OutOrStdout()
			printInfo(out, "%s %s", styleTitle.Render("cell"), coord)
			if !m.Covered(lat, lon) {
				printError(out, "%.5f, %.5f is outside every loaded area", lat, lon)
			}
			fmt.Fprintln(out, describeCell(cell))
			return nil
		},
	}

	cmd.Flags().Float64Var(&lat, "lat", 0, "latitude in degrees")
	cmd.Flags().Float64Var(&lon, "lon", 0, "longitude in degrees")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")
	c.addVisibilityFlags(cmd)
	return cmd
}
