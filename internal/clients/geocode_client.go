package clients

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

const defaultGeocodeBaseURL = "https://geocoding-api.open-meteo.com"

// ErrPlaceNotFound возвращается, когда геокодер не знает такого населённого пункта.
var ErrPlaceNotFound = errors.New("place not found")

// GeocodeResult описывает найденный населённый пункт.
type GeocodeResult struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Country   string  `json:"country"`
	Timezone  string  `json:"timezone"`
}

// GeocodeClient превращает название города в координаты через Open-Meteo Geocoding API.
type GeocodeClient interface {
	Search(ctx context.Context, name string) (*GeocodeResult, error)
}

type geocodeClient struct {
	baseURL string
	client  *http.Client
}

func NewGeocodeClient(baseURL string) GeocodeClient {
	if baseURL == "" {
		baseURL = defaultGeocodeBaseURL
	}
	return &geocodeClient{
		baseURL: baseURL,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

type geocodeResponse struct {
	Results []GeocodeResult `json:"results"`
}

func (c *geocodeClient) Search(ctx context.Context, name string) (*GeocodeResult, error) {
	reqURL := fmt.Sprintf("%s/v1/search?name=%s&count=1&language=en&format=json", c.baseURL, url.QueryEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var result geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	if len(result.Results) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrPlaceNotFound, name)
	}

	return &result.Results[0], nil
}
