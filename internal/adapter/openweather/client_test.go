package openweather

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/skycast/weather-lookup/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	testAPIKey        = "test-key"
	contentTypeJSON   = "application/json"
	headerContentType = "Content-Type"
)

const successBody = `{
	"name": "London",
	"sys": {"country": "GB"},
	"main": {"temp": 18.4, "feels_like": 17.9, "humidity": 72},
	"wind": {"speed": 3.5},
	"weather": [{"id": 803, "main": "Clouds", "description": "broken clouds"}]
}`

func testClient(baseURL string) *Client {
	return NewClient(testAPIKey, baseURL, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func TestClient_CurrentByCity_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "London", r.URL.Query().Get("q"))
		assert.Equal(t, testAPIKey, r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))

		w.Header().Set(headerContentType, contentTypeJSON)
		_, err := w.Write([]byte(successBody))
		require.NoError(t, err)
	}))
	defer srv.Close()

	obs, err := testClient(srv.URL).CurrentByCity(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, "London", obs.City)
	assert.Equal(t, "GB", obs.Country)
	assert.Equal(t, 18.4, obs.TemperatureC)
	assert.Equal(t, 17.9, obs.FeelsLikeC)
	assert.Equal(t, 72, obs.HumidityPct)
	assert.Equal(t, 3.5, obs.WindSpeedMPS)
	assert.Equal(t, "803", obs.ConditionCode)
	assert.Equal(t, "Broken Clouds", obs.Description)
}

func TestClient_CurrentByCity_CityNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CurrentByCity(context.Background(), "Atlantis")
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrCityNotFound)
	assert.Contains(t, err.Error(), "Atlantis")
}

func TestClient_CurrentByCity_Unauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CurrentByCity(context.Background(), "London")
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusUnauthorized, provErr.StatusCode)
	assert.Equal(t, "Invalid API key", provErr.Message)
	assert.NotErrorIs(t, err, domain.ErrCityNotFound)
}

func TestClient_CurrentByCity_ServerErrorWithoutBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("not json"))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL).CurrentByCity(context.Background(), "London")
	require.Error(t, err)

	var provErr *ProviderError
	require.ErrorAs(t, err, &provErr)
	assert.Equal(t, http.StatusInternalServerError, provErr.StatusCode)
	assert.Empty(t, provErr.Message)
}

func TestClient_CurrentByCity_TransportError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	srv.Close() // refuse connections

	_, err := testClient(srv.URL).CurrentByCity(context.Background(), "London")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "current weather request")
	assert.NotErrorIs(t, err, domain.ErrCityNotFound)
}

func TestClient_CurrentByCity_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(time.Second)
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := testClient(srv.URL).CurrentByCity(ctx, "London")
	require.Error(t, err)
	assert.True(t, errors.Is(err, context.Canceled))
}

func TestToObservation_MissingWeatherEntry(t *testing.T) {
	obs := toObservation(currentResponse{Name: "Somewhere"})

	assert.Equal(t, "Somewhere", obs.City)
	assert.Equal(t, "", obs.ConditionCode)
	assert.Equal(t, "", obs.Description)
	assert.Equal(t, 0.0, obs.TemperatureC)
}
