package mapper

import (
	"context"

	"github.com/pkg/errors"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// LoadAround downloads and ingests the square of half-width radius grid units
// centred on (lat, lon). It returns false without downloading when an area
// loaded earlier, or a download still in progress, already covers the square.
//
// LoadAround is how the viewer loads more data after moving to a new
// location; the new features merge into the existing store.
func (m *Mapper) LoadAround(ctx context.Context, lat, lon float64, radius int32) (bool, error) {
	if err := geotiles.ValidateCoordinate(lat, lon); err != nil {
		return false, err
	}
	if radius <= 0 {
		return false, errors.Errorf("radius must be positive, got %d", radius)
	}

	b := geotiles.BoundsAround(lat, lon, geotiles.FromGrid(radius))
	if !m.extents.Claim(b) {
		m.logger.Debug("area already loaded", "lat", lat, "lon", lon, "radius", radius)
		return false, nil
	}
	loaded := false
	defer func() { m.extents.Release(b, loaded) }()

	m.logger.Info("downloading area", "lat", lat, "lon", lon, "radius", radius)
	path, err := m.fetcher.DownloadBounds(ctx, b)
	if err != nil {
		return false, errors.Wrap(err, "download area")
	}
	if _, _, err := m.loadFile(ctx, path); err != nil {
		return false, errors.Wrapf(err, "load downloaded area %s", path)
	}
	loaded = true
	return true, nil
}

// LoadAddress geocodes address and loads the area around it. It returns the
// resolved position.
func (m *Mapper) LoadAddress(ctx context.Context, address string, radius int32) (lat, lon float64, err error) {
	lat, lon, err = m.fetcher.Geocode(ctx, address)
	if err != nil {
		return 0, 0, errors.Wrap(err, "geocode address")
	}
	m.logger.Info("resolved address", "address", address, "lat", lat, "lon", lon)

	if _, err := m.LoadAround(ctx, lat, lon, radius); err != nil {
		return lat, lon, err
	}
	return lat, lon, nil
}
