// Package geocode resolves postal codes to geographic coordinates via
// an external geocoding service.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	apperrors "gin-jobs/internal/errors"
)

// Location is a resolved coordinate pair.
type Location struct {
	Latitude  float64
	Longitude float64
}

// Geocoder resolves a postal code to zero or more candidate locations.
type Geocoder interface {
	Geocode(ctx context.Context, postalCode string) ([]Location, error)
}

// HTTPGeocoder calls a Nominatim-compatible search endpoint.
type HTTPGeocoder struct {
	client  *http.Client
	baseURL string
	apiKey  string
}

// NewHTTPGeocoder creates a geocoder against the given base URL.
func NewHTTPGeocoder(baseURL, apiKey string) *HTTPGeocoder {
	return &HTTPGeocoder{
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
		apiKey:  apiKey,
	}
}

// geocodeResult is the wire format of a single search hit. The service
// returns coordinates as strings.
type geocodeResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}

// Geocode resolves a postal code. An empty slice with a nil error means
// the service had no match for the code.
func (g *HTTPGeocoder) Geocode(ctx context.Context, postalCode string) ([]Location, error) {
	params := url.Values{}
	params.Set("postalcode", postalCode)
	params.Set("format", "json")
	params.Set("limit", "5")
	if g.apiKey != "" {
		params.Set("key", g.apiKey)
	}

	reqURL := fmt.Sprintf("%s/search?%s", g.baseURL, params.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating geocode request: %w", err)
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing geocode request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned status %d", resp.StatusCode)
	}

	var results []geocodeResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decoding geocode response: %w", err)
	}

	locations := make([]Location, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			continue
		}
		locations = append(locations, Location{Latitude: lat, Longitude: lon})
	}

	return locations, nil
}

// First returns the first candidate location, or ErrLocationNotFound
// when the lookup had no results.
func First(locations []Location) (Location, error) {
	if len(locations) == 0 {
		return Location{}, apperrors.ErrLocationNotFound
	}
	return locations[0], nil
}
