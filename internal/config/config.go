// Package config loads osm-geo-mapper settings from a TOML file, a .env file
// and OSM_GEO_MAPPER_* environment variables, in increasing precedence.
package config

import (
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"github.com/pkg/errors"

	"github.com/edouardpoitras/osm-geo-mapper/internal/osmapi"
)

// EnvPrefix prefixes every environment override.
const EnvPrefix = "OSM_GEO_MAPPER_"

// Config holds every runtime setting.
type Config struct {
	LogLevel   string `toml:"log_level"`
	Workers    int    `toml:"workers"`
	SkipErrors bool   `toml:"skip_errors"`
	// Radius is the half-width, in grid units, of the area fetched around a
	// location.
	Radius int32 `toml:"radius"`

	ShowLanduse  bool `toml:"show_landuse"`
	ShowLeisure  bool `toml:"show_leisure"`
	ShowAmenity  bool `toml:"show_amenity"`
	ShowBoundary bool `toml:"show_boundary"`

	OverpassURL  string `toml:"overpass_url"`
	NominatimURL string `toml:"nominatim_url"`
	UserAgent    string `toml:"user_agent"`
	DownloadDir  string `toml:"download_dir"`

	// MetricsAddr enables the Prometheus endpoint when non-empty.
	MetricsAddr string `toml:"metrics_addr"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		LogLevel:     "info",
		Workers:      runtime.NumCPU(),
		SkipErrors:   true,
		Radius:       200,
		OverpassURL:  osmapi.DefaultOverpassURL,
		NominatimURL: osmapi.DefaultNominatimURL,
		UserAgent:    osmapi.DefaultUserAgent,
		DownloadDir:  filepath.Join(os.TempDir(), "osm-geo-mapper"),
	}
}

// DefaultPath returns the user config file location. It may not exist.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "osm-geo-mapper", "config.toml")
}

// Load builds a Config from the defaults, then path (skipped when empty or,
// for the default path, missing), then .env, then the environment.
func Load(path string) (Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}
	if path != "" {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			if explicit || !os.IsNotExist(errors.Cause(err)) {
				return cfg, errors.Wrapf(err, "load config %s", path)
			}
		}
	}

	if err := loadDotEnv(".env"); err != nil {
		return cfg, err
	}

	if err := applyEnv(&cfg, os.LookupEnv); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// loadDotEnv exports the variables of path that are not already set. A
// missing file is ignored.
func loadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil && !os.IsNotExist(err) {
		return errors.Wrapf(err, "load %s", path)
	}
	return nil
}

func applyEnv(cfg *Config, lookup func(string) (string, bool)) error {
	strs := map[string]*string{
		"LOG_LEVEL":     &cfg.LogLevel,
		"OVERPASS_URL":  &cfg.OverpassURL,
		"NOMINATIM_URL": &cfg.NominatimURL,
		"USER_AGENT":    &cfg.UserAgent,
		"DOWNLOAD_DIR":  &cfg.DownloadDir,
		"METRICS_ADDR":  &cfg.MetricsAddr,
	}
	for k, dst := range strs {
		if v, ok := lookup(EnvPrefix + k); ok {
			*dst = v
		}
	}

	bools := map[string]*bool{
		"SKIP_ERRORS":   &cfg.SkipErrors,
		"SHOW_LANDUSE":  &cfg.ShowLanduse,
		"SHOW_LEISURE":  &cfg.ShowLeisure,
		"SHOW_AMENITY":  &cfg.ShowAmenity,
		"SHOW_BOUNDARY": &cfg.ShowBoundary,
	}
	for k, dst := range bools {
		v, ok := lookup(EnvPrefix + k)
		if !ok {
			continue
		}
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "parse %s%s", EnvPrefix, k)
		}
		*dst = b
	}

	if v, ok := lookup(EnvPrefix + "WORKERS"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			return errors.Wrapf(err, "parse %sWORKERS", EnvPrefix)
		}
		cfg.Workers = n
	}
	if v, ok := lookup(EnvPrefix + "RADIUS"); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(v), 10, 32)
		if err != nil {
			return errors.Wrapf(err, "parse %sRADIUS", EnvPrefix)
		}
		cfg.Radius = int32(n)
	}
	return nil
}
