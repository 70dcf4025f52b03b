package places

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/flowstate/study-spots-api/internal/dto"
)

const (
	defaultBaseURL = "https://maps.googleapis.com"

	// The legacy nearby-search endpoint caps a page at 20 results; the
	// client truncates as well so the contract holds if that ever changes.
	resultCap = 20

	photoMaxWidth = 400
)

// ErrNotFound marks a legitimate empty geocode outcome. It is a normal
// business result, not a provider fault.
var ErrNotFound = errors.New("no match found")

// ProviderError indicates the provider call itself could not complete:
// transport failure, non-success HTTP status, or a failing provider status.
type ProviderError struct {
	Op     string
	Status string
	Err    error
}

func (e *ProviderError) Error() string {
	if e.Status != "" {
		return fmt.Sprintf("places %s: provider status %s", e.Op, e.Status)
	}
	return fmt.Sprintf("places %s: %v", e.Op, e.Err)
}

func (e *ProviderError) Unwrap() error { return e.Err }

// categorySearch is the fixed mapping from a generic category to the
// provider's search parameters. The keyword bias narrows cafe results
// toward study-friendly spots.
type categorySearch struct {
	placeType string
	keyword   string
}

var categoryTable = map[dto.Category]categorySearch{
	dto.CategoryCafe:    {placeType: "cafe", keyword: "wifi study"},
	dto.CategoryLibrary: {placeType: "library"},
}

// Client calls the external places and geocoding endpoints.
type Client struct {
	client       *http.Client
	apiKey       string
	baseURL      string
	radiusMeters int
}

// NewClient builds a provider client. A nil HTTP client gets a sane timeout
// so a slow provider call fails the category instead of hanging the search.
func NewClient(client *http.Client, apiKey string, radiusMeters int) *Client {
	if client == nil {
		client = &http.Client{Timeout: 10 * time.Second}
	}
	if radiusMeters <= 0 {
		radiusMeters = 3000
	}
	return &Client{
		client:       client,
		apiKey:       apiKey,
		baseURL:      defaultBaseURL,
		radiusMeters: radiusMeters,
	}
}

// Ready reports whether the client can reach the provider at all. A missing
// credential is the pre-flight failure that fails a whole search fast.
func (c *Client) Ready() error {
	if c.apiKey == "" {
		return &ProviderError{Op: "preflight", Err: errors.New("provider API key is not configured")}
	}
	return nil
}

type nearbyResponse struct {
	Results      []Place `json:"results"`
	Places       []Place `json:"places"`
	Status       string  `json:"status"`
	ErrorMessage string  `json:"error_message"`
}

// NearbySearch runs one category search centered at origin. ZERO_RESULTS is
// a valid empty outcome; any other non-OK provider status is a fault.
func (c *Client) NearbySearch(ctx context.Context, origin dto.LatLng, category dto.Category) ([]Place, error) {
	search, ok := categoryTable[category]
	if !ok {
		return nil, &ProviderError{Op: "nearbysearch", Err: fmt.Errorf("no provider mapping for category %q", category)}
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%f,%f", origin.Lat, origin.Lng))
	params.Set("radius", fmt.Sprintf("%d", c.radiusMeters))
	params.Set("type", search.placeType)
	if search.keyword != "" {
		params.Set("keyword", search.keyword)
	}
	params.Set("key", c.apiKey)

	var payload nearbyResponse
	if err := c.getJSON(ctx, "/maps/api/place/nearbysearch/json", params, &payload); err != nil {
		return nil, err
	}

	switch payload.Status {
	case "", "OK":
	case "ZERO_RESULTS":
		return nil, nil
	default:
		return nil, &ProviderError{Op: "nearbysearch", Status: payload.Status, Err: errors.New(payload.ErrorMessage)}
	}

	results := payload.Results
	if len(results) == 0 {
		results = payload.Places
	}
	if len(results) > resultCap {
		results = results[:resultCap]
	}
	return results, nil
}

type geocodeResponse struct {
	Results []struct {
		Geometry Geometry `json:"geometry"`
	} `json:"results"`
	Status       string `json:"status"`
	ErrorMessage string `json:"error_message"`
}

// Geocode resolves a free-text address to coordinates, taking the first
// provider match as ground truth. An empty result list yields ErrNotFound.
func (c *Client) Geocode(ctx context.Context, address string) (*dto.LatLng, error) {
	params := url.Values{}
	params.Set("address", address)
	params.Set("key", c.apiKey)

	var payload geocodeResponse
	if err := c.getJSON(ctx, "/maps/api/geocode/json", params, &payload); err != nil {
		return nil, err
	}

	switch payload.Status {
	case "", "OK":
	case "ZERO_RESULTS":
		return nil, ErrNotFound
	default:
		return nil, &ProviderError{Op: "geocode", Status: payload.Status, Err: errors.New(payload.ErrorMessage)}
	}

	if len(payload.Results) == 0 {
		return nil, ErrNotFound
	}
	coords := payload.Results[0].Geometry.Location.Coords()
	if coords == nil {
		return nil, &ProviderError{Op: "geocode", Err: errors.New("match has no coordinates")}
	}
	return coords, nil
}

// PhotoURL turns a provider photo handle into a fully-qualified media URL.
func (c *Client) PhotoURL(ref string) string {
	params := url.Values{}
	params.Set("maxwidth", fmt.Sprintf("%d", photoMaxWidth))
	params.Set("photoreference", ref)
	params.Set("key", c.apiKey)
	return c.baseURL + "/maps/api/place/photo?" + params.Encode()
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	op := path
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return &ProviderError{Op: op, Err: fmt.Errorf("build request: %w", err)}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return &ProviderError{Op: op, Err: fmt.Errorf("request failed: %w", err)}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return &ProviderError{Op: op, Err: fmt.Errorf("unexpected HTTP status %d", resp.StatusCode)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return &ProviderError{Op: op, Err: fmt.Errorf("decode response: %w", err)}
	}
	return nil
}
