// Package openweather implements domain.WeatherProvider against the
// OpenWeatherMap current weather API.
package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/skycast/weather-lookup/internal/domain"
)

const defaultBaseURL = "https://api.openweathermap.org/data/2.5/weather"

// ProviderError reports a non-success response from the provider that is not
// a missing city, e.g. an invalid API key or a provider outage.
type ProviderError struct {
	StatusCode int
	Message    string
}

func (e *ProviderError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("openweathermap: status %d", e.StatusCode)
	}
	return fmt.Sprintf("openweathermap: status %d: %s", e.StatusCode, e.Message)
}

// Client implements domain.WeatherProvider using the OpenWeatherMap API.
type Client struct {
	apiKey     string
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

// NewClient creates an OpenWeatherMap client. An empty baseURL selects the
// production endpoint; tests point it at an httptest server.
func NewClient(apiKey, baseURL string, timeout time.Duration, logger *slog.Logger) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		apiKey: apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		logger:  logger,
	}
}

// CurrentByCity fetches current conditions for a city and returns them as a
// normalized observation. A provider 404 is reported as domain.ErrCityNotFound;
// transport failures are wrapped so the caller can treat them as upstream errors.
func (c *Client) CurrentByCity(ctx context.Context, city string) (domain.Observation, error) {
	params := url.Values{
		"q":     {city},
		"appid": {c.apiKey},
		"units": {"metric"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Observation{}, fmt.Errorf("current weather request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return domain.Observation{}, fmt.Errorf("city %q: %w", city, domain.ErrCityNotFound)
	}
	if resp.StatusCode != http.StatusOK {
		return domain.Observation{}, &ProviderError{
			StatusCode: resp.StatusCode,
			Message:    decodeAPIMessage(resp.Body),
		}
	}

	var cur currentResponse
	if err := json.NewDecoder(resp.Body).Decode(&cur); err != nil {
		return domain.Observation{}, fmt.Errorf("decode response: %w", err)
	}

	return toObservation(cur), nil
}

// toObservation normalizes the provider payload into a domain observation.
// A missing weather entry yields an empty condition code; missing numeric
// fields decode to zero, which the core treats as safe defaults.
func toObservation(cur currentResponse) domain.Observation {
	var code, description string
	if len(cur.Weather) > 0 {
		code = strconv.Itoa(cur.Weather[0].ID)
		description = cur.Weather[0].Description
	}

	return domain.NewObservation(
		cur.Name,
		cur.Sys.Country,
		cur.Main.Temp,
		cur.Main.FeelsLike,
		cur.Main.Humidity,
		cur.Wind.Speed,
		code,
		description,
	)
}

// decodeAPIMessage extracts the provider's error message, best effort.
func decodeAPIMessage(body io.Reader) string {
	var apiErr apiError
	if err := json.NewDecoder(body).Decode(&apiErr); err != nil {
		return ""
	}
	return apiErr.Message
}

// OpenWeatherMap API response types.

type currentResponse struct {
	Name string `json:"name"`
	Sys  struct {
		Country string `json:"country"`
	} `json:"sys"`
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
}

type apiError struct {
	Cod     any    `json:"cod"` // the API returns cod as int or string depending on context
	Message string `json:"message"`
}
