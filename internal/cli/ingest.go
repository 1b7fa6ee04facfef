package cli

import (
	"strconv"
	"time"

	"github.com/spf13/cobra"
)

// ingestCommand loads files and prints a summary of the resulting store.
func (c *CLI) ingestCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ingest FILE...",
		Short: "Load GeoJSON, OSM XML or PBF files and summarize the grid",
		Long: `Load one or more map files into a fresh grid and report how many features
were ingested, how many were skipped and how many cells are populated.

Formats are chosen by extension: .geojson/.json, .osm/.xml and .pbf.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			c.serveMetrics(ctx)

			start := time.Now()
			m := c.newMapper()
			st, err := c.loadFiles(ctx, m, args)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			printSuccess(out, "Ingested %s features from %s files (%s)",
				styleNumber.Render(strconv.Itoa(st.Pairs)),
				styleNumber.Render(strconv.Itoa(len(args))),
				time.Since(start).Round(time.Millisecond))
			if st.Invalid > 0 {
				printError(out, "Skipped %d features with invalid geometry", st.Invalid)
			}

			min, max, ok := m.Store().Extent()
			if !ok {
				printInfo(out, "The grid is empty")
				return nil
			}
			printInfo(out, "%s populated cells", styleNumber.Render(strconv.Itoa(m.Store().Len())))
			minLat, minLon := min.LatLon()
			maxLat, maxLon := max.LatLon()
			printDetail(out, "extent %s to %s", min, max)
			printDetail(out, "lat %.5f..%.5f  lon %.5f..%.5f", minLat, maxLat, minLon, maxLon)
			return nil
		},
	}
	c.addVisibilityFlags(cmd)
	return cmd
}
