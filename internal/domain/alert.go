package domain

import "strings"

// AlertCategory identifies which threshold rule raised an alert.
type AlertCategory string

const (
	AlertHeat AlertCategory = "HEAT"
	AlertCold AlertCategory = "COLD"
	AlertRain AlertCategory = "RAIN"
	AlertSun  AlertCategory = "SUN"
)

// Alert is a safety recommendation surfaced when temperature or condition
// severity crosses a fixed threshold. Color is the banner severity color.
type Alert struct {
	Category       AlertCategory `json:"category"`
	Color          string        `json:"color"`
	Recommendation string        `json:"recommendation"`
}

// Temperature thresholds in degrees Celsius.
const (
	heatThresholdC = 35.0
	coldThresholdC = 5.0
	uvThresholdC   = 28.0
)

// alertRule pairs a predicate with the alert it raises.
type alertRule struct {
	match func(tempC float64, code string) bool
	alert Alert
}

// alertRules is evaluated in order, first match wins. The order is a
// contract: HEAT before COLD (the thresholds are disjoint today, but the
// precedence must survive threshold changes), COLD before RAIN (a freezing
// rainy day surfaces the cold warning), RAIN before SUN. The SUN exclusion
// list is exactly {"6","2","5"}; "7" (mist) and "8" (clouds/clear) codes can
// still raise a SUN alert when hot enough, as can an empty code.
var alertRules = []alertRule{
	{
		match: func(tempC float64, _ string) bool { return tempC >= heatThresholdC },
		alert: Alert{
			Category:       AlertHeat,
			Color:          "#D32F2F",
			Recommendation: "🔥 EXTREME HEAT WARNING! Stay hydrated and limit outdoor activity.",
		},
	},
	{
		match: func(tempC float64, _ string) bool { return tempC <= coldThresholdC },
		alert: Alert{
			Category:       AlertCold,
			Color:          "#1976D2",
			Recommendation: "🥶 COLD WARNING! Wear warm layers and protect exposed skin.",
		},
	},
	{
		match: func(_ float64, code string) bool {
			return strings.HasPrefix(code, "5") || strings.HasPrefix(code, "2")
		},
		alert: Alert{
			Category:       AlertRain,
			Color:          "#F57C00",
			Recommendation: "🌧️ Heavy Rain Expected. Bring an umbrella and drive safely.",
		},
	},
	{
		match: func(tempC float64, code string) bool {
			if tempC < uvThresholdC {
				return false
			}
			return !strings.HasPrefix(code, "6") && !strings.HasPrefix(code, "2") && !strings.HasPrefix(code, "5")
		},
		alert: Alert{
			Category:       AlertSun,
			Color:          "#F9A825",
			Recommendation: "☀️ High UV Index expected. Wear sunscreen and a hat.",
		},
	},
}

// EvaluateAlert checks an observation's temperature and condition code
// against the threshold rules and returns the highest-precedence alert.
// It is total and side-effect free; the second return value is false when
// no rule matches.
func EvaluateAlert(tempC float64, code string) (Alert, bool) {
	for _, rule := range alertRules {
		if rule.match(tempC, code) {
			return rule.alert, true
		}
	}
	return Alert{}, false
}
