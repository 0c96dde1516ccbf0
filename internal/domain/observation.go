package domain

import (
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Observation is a normalized current-weather reading for one city.
// Immutable once constructed; the classifier and the alert evaluator must
// both run against the same Observation value so that theme and alert never
// disagree about which reading they describe.
type Observation struct {
	City          string
	Country       string
	TemperatureC  float64
	FeelsLikeC    float64
	HumidityPct   int
	WindSpeedMPS  float64
	ConditionCode string
	Description   string
	ObservedAt    time.Time
}

// NewObservation builds an Observation from provider fields. Missing numeric
// fields arrive as zero values, which is exactly the defensive default the
// core expects; a missing condition entry must be passed as an empty code.
// The description is title-cased for display and ObservedAt is stamped from
// the package clock.
func NewObservation(city, country string, tempC, feelsLikeC float64, humidityPct int, windMPS float64, code, description string) Observation {
	return Observation{
		City:          city,
		Country:       country,
		TemperatureC:  tempC,
		FeelsLikeC:    feelsLikeC,
		HumidityPct:   humidityPct,
		WindSpeedMPS:  windMPS,
		ConditionCode: code,
		Description:   titleCase(description),
		ObservedAt:    clock.Now(),
	}
}

// titleCase capitalizes each word of a provider description ("light rain" ->
// "Light Rain"). A cases.Caser may be stateful, so one is built per call
// rather than shared.
func titleCase(s string) string {
	if s == "" {
		return ""
	}
	return cases.Title(language.English).String(s)
}
