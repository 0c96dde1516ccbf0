package lookup_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/skycast/weather-lookup/internal/domain"
	"github.com/skycast/weather-lookup/internal/lookup"
	"github.com/skycast/weather-lookup/internal/observability"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type stubProvider struct {
	obs   domain.Observation
	err   error
	calls int
}

func (p *stubProvider) CurrentByCity(_ context.Context, _ string) (domain.Observation, error) {
	p.calls++
	return p.obs, p.err
}

type recordingPublisher struct {
	events []domain.AlertEvent
	err    error
}

func (p *recordingPublisher) PublishAlert(_ context.Context, event domain.AlertEvent) error {
	p.events = append(p.events, event)
	return p.err
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newService(provider domain.WeatherProvider, publisher lookup.AlertPublisher) *lookup.Service {
	return lookup.New(provider, publisher, testLogger(), observability.NewMetricsForTesting())
}

// --- tests ---

func TestLookup_MildWeatherNoAlert(t *testing.T) {
	provider := &stubProvider{
		obs: domain.Observation{City: "London", Country: "GB", TemperatureC: 18.0, ConditionCode: "803"},
	}
	publisher := &recordingPublisher{}
	svc := newService(provider, publisher)

	report, err := svc.Lookup(context.Background(), "London")
	require.NoError(t, err)

	assert.Equal(t, "London", report.Observation.City)
	assert.Equal(t, domain.ClassifyCondition("803"), report.Theme)
	assert.Nil(t, report.Alert)
	assert.Empty(t, publisher.events, "no alert, nothing published")
}

func TestLookup_AlertRaisedAndPublished(t *testing.T) {
	provider := &stubProvider{
		obs: domain.Observation{City: "Dubai", Country: "AE", TemperatureC: 41.2, ConditionCode: "800"},
	}
	publisher := &recordingPublisher{}
	svc := newService(provider, publisher)

	report, err := svc.Lookup(context.Background(), "Dubai")
	require.NoError(t, err)

	require.NotNil(t, report.Alert)
	assert.Equal(t, domain.AlertHeat, report.Alert.Category)
	assert.Equal(t, domain.ClassifyCondition("800"), report.Theme)

	require.Len(t, publisher.events, 1)
	event := publisher.events[0]
	assert.Equal(t, "Dubai", event.City)
	assert.Equal(t, domain.AlertHeat, event.Category)
	assert.Equal(t, 41.2, event.TemperatureC)
	assert.Equal(t, "800", event.ConditionCode)
}

func TestLookup_ThemeAndAlertSeeSameObservation(t *testing.T) {
	// Rainy and freezing: theme must say rain, alert must say cold, both from
	// the same reading.
	provider := &stubProvider{
		obs: domain.Observation{City: "Oslo", TemperatureC: 2.0, ConditionCode: "500"},
	}
	svc := newService(provider, &recordingPublisher{})

	report, err := svc.Lookup(context.Background(), "Oslo")
	require.NoError(t, err)

	assert.Equal(t, domain.ClassifyCondition("500"), report.Theme)
	require.NotNil(t, report.Alert)
	assert.Equal(t, domain.AlertCold, report.Alert.Category)
}

func TestLookup_PublishFailureDoesNotFailLookup(t *testing.T) {
	provider := &stubProvider{
		obs: domain.Observation{City: "Dubai", TemperatureC: 40.0, ConditionCode: "800"},
	}
	publisher := &recordingPublisher{err: errors.New("broker unavailable")}
	svc := newService(provider, publisher)

	report, err := svc.Lookup(context.Background(), "Dubai")
	require.NoError(t, err)
	require.NotNil(t, report.Alert)
}

func TestLookup_NilPublisher(t *testing.T) {
	provider := &stubProvider{
		obs: domain.Observation{City: "Dubai", TemperatureC: 40.0, ConditionCode: "800"},
	}
	svc := newService(provider, nil)

	report, err := svc.Lookup(context.Background(), "Dubai")
	require.NoError(t, err)
	require.NotNil(t, report.Alert)
}

func TestLookup_EmptyCity(t *testing.T) {
	provider := &stubProvider{}
	svc := newService(provider, nil)

	for _, city := range []string{"", "   ", "\t"} {
		_, err := svc.Lookup(context.Background(), city)
		assert.ErrorIs(t, err, lookup.ErrEmptyCity)
	}
	assert.Zero(t, provider.calls, "blank input never reaches the provider")
}

func TestLookup_CityNotFound(t *testing.T) {
	provider := &stubProvider{err: domain.ErrCityNotFound}
	svc := newService(provider, nil)

	_, err := svc.Lookup(context.Background(), "Atlantis")
	assert.ErrorIs(t, err, domain.ErrCityNotFound)
}

func TestLookup_UpstreamError(t *testing.T) {
	provider := &stubProvider{err: errors.New("connection refused")}
	svc := newService(provider, nil)

	_, err := svc.Lookup(context.Background(), "London")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "London")
	assert.NotErrorIs(t, err, domain.ErrCityNotFound)
}

func TestCheckReadiness(t *testing.T) {
	svc := newService(&stubProvider{}, nil)
	assert.NoError(t, svc.CheckReadiness(context.Background()))

	unwired := lookup.New(nil, nil, testLogger(), observability.NewMetricsForTesting())
	assert.Error(t, unwired.CheckReadiness(context.Background()))
}
