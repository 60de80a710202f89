package models

import "strings"

// DefaultConditionIcon is used for descriptions missing from the table.
const DefaultConditionIcon = "🌤️"

var conditionIcons = map[string]string{
	"clear sky":        "☀️",
	"few clouds":       "🌤️",
	"scattered clouds": "⛅",
	"broken clouds":    "☁️",
	"overcast clouds":  "☁️",
	"shower rain":      "🌦️",
	"rain":             "🌧️",
	"thunderstorm":     "⛈️",
	"snow":             "❄️",
	"mist":             "🌫️",
	"fog":              "🌫️",
}

// ConditionIcon maps a provider description to an emoji. It never fails.
func ConditionIcon(description string) string {
	if icon, ok := conditionIcons[strings.ToLower(description)]; ok {
		return icon
	}
	return DefaultConditionIcon
}
