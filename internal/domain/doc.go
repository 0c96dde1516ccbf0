// Package domain models current weather observations and the presentation
// rules derived from them: a visual theme per condition category and an
// optional safety alert per temperature/condition thresholds.
//
// # Condition Codes
//
// Condition codes come from the OpenWeatherMap current weather API
// (https://openweathermap.org/weather-conditions). The provider groups codes
// by their leading digit:
//
//	2xx  thunderstorm
//	3xx  drizzle
//	5xx  rain
//	6xx  snow
//	7xx  atmosphere (mist, fog, haze, ...)
//	800  clear sky
//	80x  clouds
//
// Because "800" (clear) shares a leading digit with the cloud codes, the
// classifier checks it as an exact match before falling back to the
// first-character rule. Codes are kept as strings end to end; the grouping is
// a prefix contract of the provider, not a numeric range, so boundary codes
// must never be reinterpreted with range arithmetic.
//
// # Alert Precedence
//
// Alert rules are evaluated in a fixed order, first match wins:
//
//	1. HEAT  temperature >= 35.0 °C
//	2. COLD  temperature <= 5.0 °C
//	3. RAIN  condition code starts with "5" (rain) or "2" (thunderstorm)
//	4. SUN   temperature >= 28.0 °C and code does not start with "6", "2" or "5"
//
// The order is a contract: COLD is checked before RAIN, so a freezing rainy
// day surfaces the cold warning, and the SUN exclusion list is exactly
// {"6","2","5"} — mist ("7") and clouds/clear ("8") remain SUN-eligible.
// Both [ClassifyCondition] and [EvaluateAlert] are total: any input, including
// an empty or unrecognized code, yields a defined result.
package domain
