// Package http exposes the weather lookup API plus health, readiness, and
// metrics endpoints.
package http

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/skycast/weather-lookup/internal/domain"
	"github.com/skycast/weather-lookup/internal/lookup"
)

// WeatherLookup answers a city query with a render-ready report.
type WeatherLookup interface {
	Lookup(ctx context.Context, city string) (lookup.Report, error)
}

// ReadinessChecker reports whether the service is ready to serve traffic.
type ReadinessChecker interface {
	CheckReadiness(ctx context.Context) error
}

// Server exposes the lookup API and operational HTTP endpoints.
type Server struct {
	httpServer *http.Server
	lookups    WeatherLookup
	logger     *slog.Logger
}

// NewServer creates an HTTP server with /v1/weather, /healthz, /readyz, and
// /metrics routes.
func NewServer(addr string, lookups WeatherLookup, ready ReadinessChecker, logger *slog.Logger) *Server {
	mux := http.NewServeMux()

	s := &Server{
		httpServer: &http.Server{
			Addr:         addr,
			Handler:      mux,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		lookups: lookups,
		logger:  logger,
	}

	mux.HandleFunc("GET /v1/weather", s.handleWeather)
	mux.HandleFunc("GET /healthz", s.handleHealth)
	mux.HandleFunc("GET /readyz", handleReady(ready))
	mux.Handle("GET /metrics", promhttp.Handler())

	return s
}

// Start begins listening. Returns http.ErrServerClosed on graceful shutdown.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully drains connections within the given context deadline.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// ServeHTTP delegates to the underlying handler, useful for testing.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.httpServer.Handler.ServeHTTP(w, r)
}

// weatherResponse is the wire shape of a lookup report.
type weatherResponse struct {
	City         string        `json:"city"`
	Country      string        `json:"country,omitempty"`
	TemperatureC float64       `json:"temperature_c"`
	FeelsLikeC   float64       `json:"feels_like_c"`
	HumidityPct  int           `json:"humidity_pct"`
	WindSpeedMPS float64       `json:"wind_speed_mps"`
	Description  string        `json:"description,omitempty"`
	ObservedAt   time.Time     `json:"observed_at"`
	Theme        domain.Theme  `json:"theme"`
	Alert        *domain.Alert `json:"alert"`
}

func (s *Server) handleWeather(w http.ResponseWriter, r *http.Request) {
	city := r.URL.Query().Get("city")

	report, err := s.lookups.Lookup(r.Context(), city)
	if err != nil {
		s.writeLookupError(w, city, err)
		return
	}

	obs := report.Observation
	writeJSON(w, http.StatusOK, weatherResponse{
		City:         obs.City,
		Country:      obs.Country,
		TemperatureC: obs.TemperatureC,
		FeelsLikeC:   obs.FeelsLikeC,
		HumidityPct:  obs.HumidityPct,
		WindSpeedMPS: obs.WindSpeedMPS,
		Description:  obs.Description,
		ObservedAt:   obs.ObservedAt,
		Theme:        report.Theme,
		Alert:        report.Alert,
	})
}

// writeLookupError maps lookup failures onto the API's error contract:
// blank input 400, unknown city 404, anything upstream 502.
func (s *Server) writeLookupError(w http.ResponseWriter, city string, err error) {
	switch {
	case errors.Is(err, lookup.ErrEmptyCity):
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "city query parameter is required"})
	case errors.Is(err, domain.ErrCityNotFound):
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "city not found"})
	default:
		s.logger.Error("lookup failed", "city", city, "error", err)
		writeJSON(w, http.StatusBadGateway, map[string]string{"error": "weather provider unavailable"})
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

func handleReady(checker ReadinessChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := checker.CheckReadiness(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "not ready",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best-effort response write
}
