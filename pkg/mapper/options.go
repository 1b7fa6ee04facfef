package mapper

import (
	"context"
	"io"
	"runtime"

	"github.com/charmbracelet/log"

	"github.com/edouardpoitras/osm-geo-mapper/internal/raster"
	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// Visibility switches on the bulk polygon categories (landuse, leisure,
// amenity, boundary). The zero value hides all four.
type Visibility = raster.Visibility

// Fetcher downloads map extracts and resolves addresses. *osmapi.Client
// implements it.
type Fetcher interface {
	DownloadBounds(ctx context.Context, b geotiles.Bounds) (string, error)
	Geocode(ctx context.Context, address string) (lat, lon float64, err error)
}

// Options configures a Mapper.
type Options struct {
	// Logger receives diagnostics and load progress. Nil discards.
	Logger *log.Logger

	Visibility Visibility

	// SkipErrors makes file loads skip pairs with invalid geometry instead
	// of aborting on the first one.
	SkipErrors bool

	// Fetcher is used by LoadAround and LoadAddress. Nil uses the public
	// OpenStreetMap services with default settings.
	Fetcher Fetcher
}

// DefaultOptions returns options with sensible defaults.
func DefaultOptions() Options {
	return Options{
		SkipErrors: true,
	}
}

// LoadOptions controls parallel file loading.
type LoadOptions struct {
	// Workers is the number of files read concurrently.
	// If 0, defaults to runtime.NumCPU().
	Workers int

	// SkipErrors keeps loading the remaining files when one fails. Failed
	// files are reported in the returned error list.
	SkipErrors bool

	// Progress is called after each file with the number processed so far.
	Progress func(loaded, total int)
}

// DefaultLoadOptions returns load options with sensible defaults.
func DefaultLoadOptions() LoadOptions {
	return LoadOptions{
		Workers:    runtime.NumCPU(),
		SkipErrors: true,
	}
}

func discardLogger() *log.Logger {
	return log.NewWithOptions(io.Discard, log.Options{})
}
