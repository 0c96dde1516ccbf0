package domain

import "time"

// AlertEvent is the serialized record published for downstream notification
// consumers when an observation raises an alert.
type AlertEvent struct {
	City           string        `json:"city"`
	Country        string        `json:"country,omitempty"`
	Category       AlertCategory `json:"category"`
	Color          string        `json:"color"`
	Recommendation string        `json:"recommendation"`
	TemperatureC   float64       `json:"temperature_c"`
	ConditionCode  string        `json:"condition_code,omitempty"`
	IssuedAt       time.Time     `json:"issued_at"`
}

// NewAlertEvent builds the publishable record for an alert raised against an
// observation. IssuedAt is stamped from the package clock.
func NewAlertEvent(obs Observation, alert Alert) AlertEvent {
	return AlertEvent{
		City:           obs.City,
		Country:        obs.Country,
		Category:       alert.Category,
		Color:          alert.Color,
		Recommendation: alert.Recommendation,
		TemperatureC:   obs.TemperatureC,
		ConditionCode:  obs.ConditionCode,
		IssuedAt:       clock.Now(),
	}
}
