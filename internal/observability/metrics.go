package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for the
// lookup service.
type Metrics struct {
	LookupsTotal    *prometheus.CounterVec // labels: outcome={success,not_found,upstream_error,bad_request}
	AlertsTriggered *prometheus.CounterVec // labels: category={HEAT,COLD,RAIN,SUN}

	ProviderRequestDuration prometheus.Histogram
	ProviderCache           *prometheus.CounterVec // labels: result={hit,miss}

	AlertPublishErrors     prometheus.Counter
	AlertPublishingEnabled prometheus.Gauge
}

// NewMetrics creates and registers all service metrics with the default
// Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		LookupsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_lookup",
			Name:      "lookups_total",
			Help:      "Total weather lookups by outcome.",
		}, []string{"outcome"}),
		AlertsTriggered: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_lookup",
			Name:      "alerts_triggered_total",
			Help:      "Total alerts raised by category.",
		}, []string{"category"}),
		ProviderRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "weather_lookup",
			Name:      "provider_request_duration_seconds",
			Help:      "Duration of upstream weather provider requests.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}),
		ProviderCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "weather_lookup",
			Name:      "provider_cache_total",
			Help:      "Provider cache lookups by result.",
		}, []string{"result"}),
		AlertPublishErrors: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "weather_lookup",
			Name:      "alert_publish_errors_total",
			Help:      "Total failures publishing alert events.",
		}),
		AlertPublishingEnabled: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "weather_lookup",
			Name:      "alert_publishing_enabled",
			Help:      "1 when alert publishing is enabled, 0 otherwise.",
		}),
	}

	prometheus.MustRegister(
		m.LookupsTotal,
		m.AlertsTriggered,
		m.ProviderRequestDuration,
		m.ProviderCache,
		m.AlertPublishErrors,
		m.AlertPublishingEnabled,
	)

	return m
}

// NewMetricsForTesting creates Metrics without registering them, to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		LookupsTotal:            prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_lookup", Name: "lookups_total"}, []string{"outcome"}),
		AlertsTriggered:         prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_lookup", Name: "alerts_triggered_total"}, []string{"category"}),
		ProviderRequestDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "weather_lookup", Name: "provider_request_duration_seconds"}),
		ProviderCache:           prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "weather_lookup", Name: "provider_cache_total"}, []string{"result"}),
		AlertPublishErrors:      prometheus.NewCounter(prometheus.CounterOpts{Namespace: "weather_lookup", Name: "alert_publish_errors_total"}),
		AlertPublishingEnabled:  prometheus.NewGauge(prometheus.GaugeOpts{Namespace: "weather_lookup", Name: "alert_publishing_enabled"}),
	}
}
