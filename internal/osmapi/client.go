// Package osmapi talks to the public OpenStreetMap services: Overpass for
// raw map extracts and Nominatim for address lookups.
package osmapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/edouardpoitras/osm-geo-mapper/pkg/geotiles"
)

const (
	DefaultOverpassURL  = "https://overpass-api.de"
	DefaultNominatimURL = "https://nominatim.openstreetmap.org"
	DefaultUserAgent    = "osm-geo-mapper"
)

// Options configures a Client. Empty fields take the defaults above, the
// system temp directory and a 60 second HTTP timeout.
type Options struct {
	OverpassURL  string
	NominatimURL string
	UserAgent    string
	DownloadDir  string
	HTTPClient   *http.Client

	// GeocodeTTL is how long a resolved address stays cached.
	// Default: 1 hour
	GeocodeTTL time.Duration
}

// Client downloads map extracts and geocodes addresses.
type Client struct {
	overpassURL  string
	nominatimURL string
	userAgent    string
	downloadDir  string
	http         *http.Client
	geocoded     *gocache.Cache
}

// New creates a Client.
func New(opts Options) *Client {
	c := &Client{
		overpassURL:  strings.TrimRight(opts.OverpassURL, "/"),
		nominatimURL: strings.TrimRight(opts.NominatimURL, "/"),
		userAgent:    opts.UserAgent,
		downloadDir:  opts.DownloadDir,
		http:         opts.HTTPClient,
	}
	if c.overpassURL == "" {
		c.overpassURL = DefaultOverpassURL
	}
	if c.nominatimURL == "" {
		c.nominatimURL = DefaultNominatimURL
	}
	if c.userAgent == "" {
		c.userAgent = DefaultUserAgent
	}
	if c.downloadDir == "" {
		c.downloadDir = os.TempDir()
	}
	if c.http == nil {
		c.http = &http.Client{Timeout: 60 * time.Second}
	}
	ttl := opts.GeocodeTTL
	if ttl <= 0 {
		ttl = time.Hour
	}
	c.geocoded = gocache.New(ttl, 2*ttl)
	return c
}

// ErrHTTPStatus is returned when a service answers with a non-200 status.
type ErrHTTPStatus struct {
	URL    string
	Status int
}

func (e *ErrHTTPStatus) Error() string {
	return fmt.Sprintf("request %s failed: HTTP %d", e.URL, e.Status)
}

// ErrAddressNotFound is returned when geocoding yields no result.
type ErrAddressNotFound struct {
	Address string
}

func (e *ErrAddressNotFound) Error() string {
	return fmt.Sprintf("address not found: %q", e.Address)
}

// DownloadBounds fetches the OSM XML extract covering b and saves it under
// the download directory with a random name. It returns the file path.
func (c *Client) DownloadBounds(ctx context.Context, b geotiles.Bounds) (string, error) {
	u := fmt.Sprintf("%s/api/map?bbox=%s,%s,%s,%s", c.overpassURL,
		formatDegrees(b.MinLon), formatDegrees(b.MinLat), formatDegrees(b.MaxLon), formatDegrees(b.MaxLat))

	resp, err := c.get(ctx, u)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if err := os.MkdirAll(c.downloadDir, 0o755); err != nil {
		return "", errors.Wrap(err, "create download directory")
	}
	path := filepath.Join(c.downloadDir, uuid.NewString()+".osm")
	out, err := os.Create(path)
	if err != nil {
		return "", errors.Wrap(err, "create extract file")
	}
	defer out.Close()

	if _, err := io.Copy(out, resp.Body); err != nil {
		os.Remove(path)
		return "", errors.Wrap(err, "save extract")
	}
	return path, nil
}

type place struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a free-form address to a position. Results are cached.
func (c *Client) Geocode(ctx context.Context, address string) (lat, lon float64, err error) {
	if v, ok := c.geocoded.Get(address); ok {
		p := v.([2]float64)
		return p[0], p[1], nil
	}

	q := url.Values{}
	q.Set("q", address)
	q.Set("format", "json")
	q.Set("addressdetails", "1")
	q.Set("limit", "1")

	resp, err := c.get(ctx, c.nominatimURL+"/search?"+q.Encode())
	if err != nil {
		return 0, 0, err
	}
	defer resp.Body.Close()

	var places []place
	if err := json.NewDecoder(resp.Body).Decode(&places); err != nil {
		return 0, 0, errors.Wrap(err, "decode geocoding response")
	}
	if len(places) == 0 {
		return 0, 0, &ErrAddressNotFound{Address: address}
	}

	lat, err = strconv.ParseFloat(places[0].Lat, 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "parse latitude")
	}
	lon, err = strconv.ParseFloat(places[0].Lon, 64)
	if err != nil {
		return 0, 0, errors.Wrap(err, "parse longitude")
	}
	if err := geotiles.ValidateCoordinate(lat, lon); err != nil {
		return 0, 0, err
	}

	c.geocoded.Set(address, [2]float64{lat, lon}, gocache.DefaultExpiration)
	return lat, lon, nil
}

func (c *Client) get(ctx context.Context, u string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, errors.Wrap(err, "build request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Wrapf(err, "request %s", u)
	}
	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, &ErrHTTPStatus{URL: u, Status: resp.StatusCode}
	}
	return resp, nil
}

func formatDegrees(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
