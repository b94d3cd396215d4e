package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/prodflow/shopfloor-routing/pkg/geometry"
)

const DefaultNominatimURL = "https://nominatim.openstreetmap.org"

// Nominatim queries a Nominatim instance's search endpoint. Use it behind a
// Static table in a Fallback chain so well-known plants resolve without
// network traffic.
type Nominatim struct {
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

func NewNominatim(baseURL string) *Nominatim {
	if baseURL == "" {
		baseURL = DefaultNominatimURL
	}
	return &Nominatim{
		BaseURL:   baseURL,
		UserAgent: "shopfloor-routing",
		Client:    &http.Client{Timeout: 10 * time.Second},
	}
}

func (n *Nominatim) Geocode(ctx context.Context, address string) (geometry.Point, error) {
	endpoint := fmt.Sprintf("%s/search?format=json&limit=1&q=%s",
		strings.TrimRight(n.BaseURL, "/"), url.QueryEscape(address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("geocode: build request: %w", err)
	}
	req.Header.Set("User-Agent", n.UserAgent)

	resp, err := n.Client.Do(req)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("geocode: query nominatim: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return geometry.Point{}, fmt.Errorf("geocode: nominatim returned %s", resp.Status)
	}

	// Nominatim encodes coordinates as strings.
	var hits []struct {
		Lat string `json:"lat"`
		Lon string `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&hits); err != nil {
		return geometry.Point{}, fmt.Errorf("geocode: decode nominatim response: %w", err)
	}
	if len(hits) == 0 {
		return geometry.Point{}, fmt.Errorf("%w: %q", ErrNotFound, address)
	}

	lat, err := strconv.ParseFloat(hits[0].Lat, 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("geocode: parse lat: %w", err)
	}
	lon, err := strconv.ParseFloat(hits[0].Lon, 64)
	if err != nil {
		return geometry.Point{}, fmt.Errorf("geocode: parse lon: %w", err)
	}
	return geometry.MakePoint(lat, lon), nil
}
