package domain

// Theme is the visual treatment the rendering layer applies for a condition
// category: a background color (hex) and a large display icon.
type Theme struct {
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// clearSkyCode is the one provider code checked as an exact match. It shares
// its leading digit with the cloud codes but gets its own visual category.
const clearSkyCode = "800"

// conditionThemes maps a category key to its theme. Keys are the code's first
// character, plus the exact-match clear-sky entry and a catch-all default.
// Read-only after init; never mutate.
var conditionThemes = map[string]Theme{
	"2":          {Color: "#4527A0", Icon: "⛈️"}, // thunderstorm
	"3":          {Color: "#455A64", Icon: "🌧️"}, // drizzle
	"5":          {Color: "#3949AB", Icon: "☔"}, // rain
	"6":          {Color: "#81D4FA", Icon: "❄️"}, // snow
	"7":          {Color: "#78909C", Icon: "🌫️"}, // atmosphere
	clearSkyCode: {Color: "#FFEE58", Icon: "☀️"}, // clear sky
	"8":          {Color: "#90A4AE", Icon: "☁️"}, // clouds
	"default":    {Color: "#FFFFFF", Icon: "❓"},
}

// ClassifyCondition maps a provider condition code to its display theme.
// It is total: malformed, unknown, and empty codes all resolve to the
// default entry, so the caller always gets a usable theme.
func ClassifyCondition(code string) Theme {
	if code == clearSkyCode {
		return conditionThemes[clearSkyCode]
	}

	key := "default"
	if code != "" {
		key = code[:1]
	}

	theme, ok := conditionThemes[key]
	if !ok {
		return conditionThemes["default"]
	}
	return theme
}
