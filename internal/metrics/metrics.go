// Package metrics holds the Prometheus instruments for ingestion.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FeaturesIngested = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "osmgeo_features_ingested_total",
		Help: "Features classified and rasterized, by category and geometry",
	}, []string{"category", "geometry"})
	Diagnostics = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "osmgeo_classify_diagnostics_total",
		Help: "Degraded classifications, by kind and category",
	}, []string{"kind", "category"})
	CellWrites = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "osmgeo_cell_writes_total",
		Help: "Cell upserts performed by the rasterizers",
	})
	PolygonsSuppressed = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "osmgeo_polygons_suppressed_total",
		Help: "Polygons skipped by visibility flags",
	}, []string{"category"})
	IngestErrors = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "osmgeo_ingest_errors_total",
		Help: "Pairs rejected because of invalid geometry",
	})
	FileLoadSeconds = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "osmgeo_file_load_seconds",
		Help:    "Time to read and ingest one source file",
		Buckets: []float64{0.01, 0.05, 0.1, 0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"format"})
	StoreCells = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "osmgeo_store_cells",
		Help: "Populated cells in the tile store",
	})
)

func init() {
	prometheus.MustRegister(FeaturesIngested)
	prometheus.MustRegister(Diagnostics)
	prometheus.MustRegister(CellWrites)
	prometheus.MustRegister(PolygonsSuppressed)
	prometheus.MustRegister(IngestErrors)
	prometheus.MustRegister(FileLoadSeconds)
	prometheus.MustRegister(StoreCells)
}

// Handler exposes the registered instruments for scraping.
func Handler() http.Handler { return promhttp.Handler() }
