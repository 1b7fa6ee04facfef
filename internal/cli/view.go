package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// viewCommand loads files and/or a downloaded area and opens the viewer.
func (c *CLI) viewCommand() *cobra.Command {
	var loc location

	cmd := &cobra.Command{
		Use:   "view [FILE...]",
		Short: "Browse the grid in the terminal",
		Long: `Load map files, download the area around a location, or both, then browse
the grid interactively. Each cell shows its highest priority feature; the side
panel lists every feature under the cursor.`,
		Example: `  osm-geo-mapper view ottawa.osm --lat 45.4215 --lon -75.6972
  osm-geo-mapper view --address "Parliament Hill, Ottawa"`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && !loc.set(cmd) {
				return errors.New("give map files, a location, or both")
			}
			ctx := cmd.Context()
			c.serveMetrics(ctx)

			m := c.newMapper()
			if _, err := c.loadFiles(ctx, m, args); err != nil {
				return err
			}

			var lat, lon float64
			if loc.set(cmd) {
				var err error
				if lat, lon, err = c.load(ctx, m, &loc); err != nil {
					return err
				}
			} else if min, max, ok := m.Store().Extent(); ok {
				lat, lon = geotiles.GridCoord{X: (min.X + max.X) / 2, Y: (min.Y + max.Y) / 2}.LatLon()
			}

			p := tea.NewProgram(NewMapModel(m.Store(), lat, lon),
				tea.WithAltScreen(),
				tea.WithContext(ctx),
				tea.WithOutput(cmd.OutOrStdout()))
			_, err := p.Run()
			return err
		},
	}

	loc.addFlags(cmd)
	c.addVisibilityFlags(cmd)
	return cmd
}
