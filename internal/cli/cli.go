// Package cli implements the osm-geo-mapper command-line interface.
//
// # Commands
//
//   - ingest: load map files and report what the store holds
//   - query: print the features at a coordinate
//   - fetch: download the area around a coordinate or address
//   - view: browse the store in the terminal
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging, which also
// surfaces unclassified features. Otherwise the level comes from the
// log_level setting.
package cli

import (
	"context"
	"io"
	"net/http"
	"time"

	"github.com/charmbracelet/log"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/edouardpoitras/osm-geo-mapper/internal/config"
	"github.com/edouardpoitras/osm-geo-mapper/internal/metrics"
	"github.com/edouardpoitras/osm-geo-mapper/internal/osmapi"
	"github.com/edouardpoitras/osm-geo-mapper/pkg/mapper"
)

// =============================================================================
// Constants
// =============================================================================

const appName = "osm-geo-mapper"

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	verbose    bool
	cfg        config.Config
	vis        mapper.Visibility
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:               appName,
		Short:             "Rasterize OpenStreetMap data into a queryable grid",
		Long:              `osm-geo-mapper classifies OpenStreetMap features and rasterizes them into an integer grid where every cell lists the features occupying it, ordered by display priority.`,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default "+config.DefaultPath()+")")
	root.PersistentFlags().BoolVarP(&c.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(c.ingestCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.fetchCommand())
	root.AddCommand(c.viewCommand())

	return root
}

// setup loads the configuration and applies the log level before any
// subcommand runs.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load(c.configPath)
	if err != nil {
		return err
	}
	c.cfg = cfg

	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return errors.Wrapf(err, "log_level %q", cfg.LogLevel)
	}
	if c.verbose {
		level = log.DebugLevel
	}
	c.SetLogLevel(level)
	c.Logger.Debug("configuration loaded", "path", c.configPath, "workers", cfg.Workers, "radius", cfg.Radius)
	return nil
}

// =============================================================================
// Mapper Factory
// =============================================================================

// addVisibilityFlags registers the --show-* flags shared by the commands that
// ingest data. A flag can only switch a category on; the config file may
// already have done so.
func (c *CLI) addVisibilityFlags(cmd *cobra.Command) {
	cmd.Flags().BoolVar(&c.vis.Landuse, "show-landuse", false, "rasterize landuse polygons")
	cmd.Flags().BoolVar(&c.vis.Leisure, "show-leisure", false, "rasterize leisure polygons")
	cmd.Flags().BoolVar(&c.vis.Amenity, "show-amenity", false, "rasterize amenity polygons")
	cmd.Flags().BoolVar(&c.vis.Boundary, "show-boundary", false, "rasterize boundary polygons")
}

func (c *CLI) visibility() mapper.Visibility {
	return mapper.Visibility{
		Landuse:  c.vis.Landuse || c.cfg.ShowLanduse,
		Leisure:  c.vis.Leisure || c.cfg.ShowLeisure,
		Amenity:  c.vis.Amenity || c.cfg.ShowAmenity,
		Boundary: c.vis.Boundary || c.cfg.ShowBoundary,
	}
}

// newMapper builds a Mapper from the loaded configuration.
func (c *CLI) newMapper() *mapper.Mapper {
	return mapper.New(mapper.Options{
		Logger:     c.Logger,
		Visibility: c.visibility(),
		SkipErrors: c.cfg.SkipErrors,
		Fetcher: osmapi.New(osmapi.Options{
			OverpassURL:  c.cfg.OverpassURL,
			NominatimURL: c.cfg.NominatimURL,
			UserAgent:    c.cfg.UserAgent,
			DownloadDir:  c.cfg.DownloadDir,
		}),
	})
}

// loadFiles ingests paths with the configured worker count. Per-file errors
// are logged by the mapper; without skip_errors the first one is returned.
func (c *CLI) loadFiles(ctx context.Context, m *mapper.Mapper, paths []string) (mapper.FileStats, error) {
	st, errs := m.LoadFiles(ctx, paths, mapper.LoadOptions{
		Workers:    c.cfg.Workers,
		SkipErrors: c.cfg.SkipErrors,
	})
	if len(errs) > 0 && !c.cfg.SkipErrors {
		return st, errs[0]
	}
	return st, nil
}

// =============================================================================
// Metrics
// =============================================================================

// serveMetrics exposes the Prometheus endpoint on metrics_addr until ctx is
// done. It does nothing when the address is empty.
func (c *CLI) serveMetrics(ctx context.Context) {
	if c.cfg.MetricsAddr == "" {
		return
	}
	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	srv := &http.Server{
		Addr:              c.cfg.MetricsAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()
	go func() {
		c.Logger.Info("serving metrics", "addr", c.cfg.MetricsAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			c.Logger.Error("metrics server stopped", "error", err)
		}
	}()
}
