// Package source reads map data files and hands out flattened
// (tags, geometry) pairs ready for ingestion.
package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/paulmach/orb"
	"github.com/pkg/errors"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

// Pair is one feature as seen by the ingestion pipeline: a tag dictionary
// and a single point, line string or polygon.
type Pair struct {
	Tags     geotiles.TagSource
	Geometry orb.Geometry
}

// EmitFunc receives each pair. Returning an error stops the read.
type EmitFunc func(Pair) error

// Format identifies a source file format.
type Format int

const (
	FormatUnknown Format = iota
	FormatGeoJSON
	FormatOSMXML
	FormatOSMPBF
)

func (f Format) String() string {
	switch f {
	case FormatGeoJSON:
		return "geojson"
	case FormatOSMXML:
		return "osm"
	case FormatOSMPBF:
		return "pbf"
	default:
		return "unknown"
	}
}

// ErrUnknownFormat is returned for files whose extension is not recognized.
type ErrUnknownFormat struct {
	Path string
}

func (e *ErrUnknownFormat) Error() string {
	return fmt.Sprintf("unknown source format: %s", e.Path)
}

// FormatOf picks the format from a file extension.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".geojson", ".json":
		return FormatGeoJSON
	case ".osm", ".xml":
		return FormatOSMXML
	case ".pbf":
		return FormatOSMPBF
	default:
		return FormatUnknown
	}
}

// ReadFile opens path and streams its pairs to emit.
func ReadFile(ctx context.Context, path string, emit EmitFunc) error {
	format := FormatOf(path)
	if format == FormatUnknown {
		return &ErrUnknownFormat{Path: path}
	}

	f, err := os.Open(path)
	if err != nil {
		return errors.Wrap(err, "open source file")
	}
	defer f.Close()

	return errors.Wrapf(Read(ctx, f, format, emit), "read %s", path)
}

// Read streams the pairs of r, decoded as format, to emit.
func Read(ctx context.Context, r io.Reader, format Format, emit EmitFunc) error {
	switch format {
	case FormatGeoJSON:
		return readGeoJSON(ctx, r, emit)
	case FormatOSMXML, FormatOSMPBF:
		return readOSM(ctx, r, format, emit)
	default:
		return &ErrUnknownFormat{Path: format.String()}
	}
}

type ctxKey int

const loggerKey ctxKey = 0

// WithLogger attaches the logger used to report skipped features.
func WithLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFrom(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.NewWithOptions(io.Discard, log.Options{})
}
