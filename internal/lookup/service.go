// Package lookup orchestrates one weather query: fetch an observation,
// classify its condition, evaluate alerts, and assemble a render-ready
// report.
package lookup

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/skycast/weather-lookup/internal/domain"
	"github.com/skycast/weather-lookup/internal/observability"
)

// ErrEmptyCity is returned when a lookup is requested without a city name.
var ErrEmptyCity = errors.New("city name is empty")

// AlertPublisher delivers alert events to downstream consumers.
type AlertPublisher interface {
	PublishAlert(ctx context.Context, event domain.AlertEvent) error
}

// Report is everything the rendering layer needs for one query: the
// observation itself, its visual theme, and the alert banner if one was
// raised. Theme and Alert are derived from the same Observation value, so
// they can never describe two different readings.
type Report struct {
	Observation domain.Observation
	Theme       domain.Theme
	Alert       *domain.Alert
}

// Service performs weather lookups.
type Service struct {
	provider  domain.WeatherProvider
	publisher AlertPublisher // nil when alert publishing is disabled
	logger    *slog.Logger
	metrics   *observability.Metrics
}

// New creates a lookup Service. Pass a nil publisher to disable alert
// publishing.
func New(provider domain.WeatherProvider, publisher AlertPublisher, logger *slog.Logger, metrics *observability.Metrics) *Service {
	return &Service{
		provider:  provider,
		publisher: publisher,
		logger:    logger,
		metrics:   metrics,
	}
}

// CheckReadiness reports whether the service can serve lookups. Lookups are
// on-demand with no warm-up phase, so the service is ready once wired.
func (s *Service) CheckReadiness(_ context.Context) error {
	if s.provider == nil {
		return errors.New("no weather provider configured")
	}
	return nil
}

// Lookup fetches current conditions for a city and derives its presentation.
// A raised alert is published best-effort; publish failures are logged and
// counted but never fail the lookup.
func (s *Service) Lookup(ctx context.Context, city string) (Report, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		s.metrics.LookupsTotal.WithLabelValues("bad_request").Inc()
		return Report{}, ErrEmptyCity
	}

	start := time.Now()
	obs, err := s.provider.CurrentByCity(ctx, city)
	s.metrics.ProviderRequestDuration.Observe(time.Since(start).Seconds())

	if err != nil {
		if errors.Is(err, domain.ErrCityNotFound) {
			s.metrics.LookupsTotal.WithLabelValues("not_found").Inc()
			s.logger.Info("city not found", "city", city)
			return Report{}, err
		}
		s.metrics.LookupsTotal.WithLabelValues("upstream_error").Inc()
		s.logger.Error("weather fetch failed", "city", city, "error", err)
		return Report{}, fmt.Errorf("fetch weather for %q: %w", city, err)
	}

	report := Report{
		Observation: obs,
		Theme:       domain.ClassifyCondition(obs.ConditionCode),
	}

	if alert, ok := domain.EvaluateAlert(obs.TemperatureC, obs.ConditionCode); ok {
		report.Alert = &alert
		s.metrics.AlertsTriggered.WithLabelValues(string(alert.Category)).Inc()
		s.publishAlert(ctx, obs, alert)
	}

	s.metrics.LookupsTotal.WithLabelValues("success").Inc()
	s.logger.Debug("lookup complete",
		"city", obs.City,
		"temperature_c", obs.TemperatureC,
		"condition_code", obs.ConditionCode,
		"alert", report.Alert != nil,
	)
	return report, nil
}

func (s *Service) publishAlert(ctx context.Context, obs domain.Observation, alert domain.Alert) {
	if s.publisher == nil {
		return
	}
	event := domain.NewAlertEvent(obs, alert)
	if err := s.publisher.PublishAlert(ctx, event); err != nil {
		s.metrics.AlertPublishErrors.Inc()
		s.logger.Warn("alert publish failed",
			"city", event.City,
			"category", event.Category,
			"error", err,
		)
	}
}
