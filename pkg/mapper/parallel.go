package mapper

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/edouardpoitras/osm-geo-mapper/internal/metrics"
	"github.com/edouardpoitras/osm-geo-mapper/internal/source"
	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// FileStats summarizes one file load.
type FileStats struct {
	Pairs   int // pairs ingested
	Invalid int // pairs skipped for invalid geometry
}

// LoadFile reads a GeoJSON, OSM XML or OSM PBF file (chosen by extension) and
// ingests every pair. With SkipErrors set, invalid pairs are logged and
// counted; otherwise the first one aborts the load.
//
// The bounding box of the ingested features is recorded as loaded, so a
// later LoadAround inside it does not download.
func (m *Mapper) LoadFile(ctx context.Context, path string) (FileStats, error) {
	st, area, err := m.loadFile(ctx, path)
	if err != nil {
		return st, err
	}
	if area != nil {
		m.extents.Add(*area)
	}
	return st, nil
}

// loadFile ingests path and returns the extent of what it ingested, nil when
// nothing was.
func (m *Mapper) loadFile(ctx context.Context, path string) (FileStats, *geotiles.Bounds, error) {
	start := time.Now()
	var (
		st   FileStats
		area *geotiles.Bounds
	)

	ctx = source.WithLogger(ctx, m.logger)
	err := source.ReadFile(ctx, path, func(p source.Pair) error {
		if err := m.Ingest(p.Tags, p.Geometry); err != nil {
			if !m.skipErrors {
				return err
			}
			st.Invalid++
			m.logger.Debug("skipping invalid feature", "error", err, "tags", p.Tags.Dump())
			return nil
		}
		st.Pairs++
		b := geotiles.BoundsOf(p.Geometry)
		if area != nil {
			b = area.Union(b)
		}
		area = &b
		return nil
	})

	metrics.FileLoadSeconds.WithLabelValues(source.FormatOf(path).String()).Observe(time.Since(start).Seconds())
	metrics.StoreCells.Set(float64(m.store.Len()))
	if err != nil {
		return st, nil, err
	}

	m.logger.Info("loaded file", "path", path, "features", st.Pairs, "invalid", st.Invalid,
		"elapsed", time.Since(start).Round(time.Millisecond))
	return st, area, nil
}

// LoadFiles loads multiple files concurrently into the same store.
//
// The function uses a worker pool; each worker ingests whole files. Errors are
// returned per file, prefixed with the path. Without SkipErrors the first
// failure cancels the remaining files.
//
// Example:
//
//	_, errs := m.LoadFiles(ctx, paths, mapper.LoadOptions{
//	    Workers:    4,
//	    SkipErrors: true,
//	    Progress: func(loaded, total int) {
//	        fmt.Printf("\rLoading: %d/%d", loaded, total)
//	    },
//	})
func (m *Mapper) LoadFiles(ctx context.Context, paths []string, opts LoadOptions) (FileStats, []error) {
	var total FileStats
	if len(paths) == 0 {
		return total, nil
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(paths) {
		workers = len(paths)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	type loadResult struct {
		index int
		stats FileStats
		err   error
	}

	jobs := make(chan int, len(paths))
	results := make(chan loadResult, len(paths))

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for index := range jobs {
				if err := ctx.Err(); err != nil {
					results <- loadResult{index: index, err: err}
					continue
				}
				st, err := m.LoadFile(ctx, paths[index])
				if err != nil && !opts.SkipErrors {
					cancel()
				}
				results <- loadResult{index: index, stats: st, err: err}
			}
		}()
	}

	for i := range paths {
		jobs <- i
	}
	close(jobs)

	go func() {
		wg.Wait()
		close(results)
	}()

	var errs []error
	loaded := 0
	for result := range results {
		loaded++
		if opts.Progress != nil {
			opts.Progress(loaded, len(paths))
		}

		total.Pairs += result.stats.Pairs
		total.Invalid += result.stats.Invalid

		if result.err != nil {
			err := fmt.Errorf("%s: %w", paths[result.index], result.err)
			m.logger.Error("failed to load file", "error", err)
			errs = append(errs, err)
		}
	}

	if !opts.SkipErrors && len(errs) > 0 {
		// Report the failure that caused the cancellation, not its echoes.
		for _, err := range errs {
			if !errors.Is(err, context.Canceled) {
				return total, []error{err}
			}
		}
		return total, errs[:1]
	}
	return total, errs
}
