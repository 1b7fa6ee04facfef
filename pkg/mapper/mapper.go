// Package mapper is the ingestion pipeline. It classifies (tags, geometry)
// pairs, rasterizes them into a shared geotiles.Store and loads whole files
// or downloaded areas.
//
// # Basic Usage
//
//	m := mapper.New(mapper.DefaultOptions())
//	if _, err := m.LoadFile(ctx, "ottawa.osm"); err != nil {
//	    log.Fatal(err)
//	}
//	cell, ok := m.GetByContinuous(45.4215, -75.6972)
//
// # Concurrency
//
// Ingest, LoadFile, LoadFiles and LoadAround may be called from any number of
// goroutines against one Mapper. The store serializes writers; readers see
// every cell either before or after a given write.
package mapper

import (
	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"

	"github.com/edouardpoitras/osm-geo-mapper/internal/classify"
	"github.com/edouardpoitras/osm-geo-mapper/internal/metrics"
	"github.com/edouardpoitras/osm-geo-mapper/internal/osmapi"
	"github.com/edouardpoitras/osm-geo-mapper/internal/raster"
	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// Mapper owns a tile store and feeds it.
type Mapper struct {
	store      *geotiles.Store
	logger     *log.Logger
	visibility Visibility
	skipErrors bool
	fetcher    Fetcher
	extents    *extentIndex
}

// New creates a Mapper with an empty store.
func New(opts Options) *Mapper {
	m := &Mapper{
		store:      geotiles.NewStore(),
		logger:     opts.Logger,
		visibility: opts.Visibility,
		skipErrors: opts.SkipErrors,
		fetcher:    opts.Fetcher,
		extents:    newExtentIndex(),
	}
	if m.logger == nil {
		m.logger = discardLogger()
	}
	if m.fetcher == nil {
		m.fetcher = osmapi.New(osmapi.Options{})
	}
	return m
}

// Ingest classifies one pair and rasterizes it into the store. Invalid
// geometry is returned as an error and leaves the store untouched.
// Classification problems are logged and never fail.
//
// Ingest panics if a rasterizer is handed a geometry it does not draw.
func (m *Mapper) Ingest(tags geotiles.TagSource, geom orb.Geometry) error {
	if err := geotiles.ValidateGeometry(geom); err != nil {
		metrics.IngestErrors.Inc()
		return err
	}

	f, diag := classify.Classify(tags, geom)
	if diag != nil {
		m.report(diag)
	}

	st := raster.Draw(m.store, f, m.visibility)
	if st.Suppressed {
		metrics.PolygonsSuppressed.WithLabelValues(f.Category().String()).Inc()
		return nil
	}
	metrics.CellWrites.Add(float64(st.Cells))
	metrics.FeaturesIngested.WithLabelValues(f.Category().String(), f.GeometryType().String()).Inc()
	return nil
}

func (m *Mapper) report(d *classify.Diagnostic) {
	metrics.Diagnostics.WithLabelValues(d.Kind.String(), d.Category.String()).Inc()
	switch d.Kind {
	case classify.UnknownSubtype:
		m.logger.Warn("unrecognized subtype", "category", d.Category, "token", d.Token, "tags", d.Tags)
	case classify.NoCategory:
		m.logger.Debug("unclassified feature", "tags", d.Tags)
	}
}

// Store returns the underlying tile store.
func (m *Mapper) Store() *geotiles.Store {
	return m.store
}

// Get returns the ordered features at a grid cell.
func (m *Mapper) Get(x, y int32) ([]*geotiles.Feature, bool) {
	return m.store.Get(x, y)
}

// GetByContinuous returns the ordered features at a latitude/longitude.
func (m *Mapper) GetByContinuous(lat, lon float64) ([]*geotiles.Feature, bool) {
	return m.store.GetByContinuous(lat, lon)
}

// Covered reports whether (lat, lon) lies inside a loaded file or
// downloaded area.
func (m *Mapper) Covered(lat, lon float64) bool {
	return m.extents.ContainsPoint(lat, lon)
}

// Loaded returns the extents of the files and areas loaded so far.
func (m *Mapper) Loaded() []geotiles.Bounds {
	return m.extents.All()
}
