package models

import (
	"math"
	"time"
)

// WeatherSnapshot is the current weather of one city as reported by the
// provider. Temperatures are in Celsius, wind speed in m/s, visibility in
// meters and pressure in hPa.
type WeatherSnapshot struct {
	City          string    `json:"city" example:"Colombo"`
	Country       string    `json:"country" example:"LK"`
	Temp          float64   `json:"temp" example:"28.4"`
	FeelsLike     float64   `json:"feels_like" example:"32.1"`
	TempMin       float64   `json:"temp_min" example:"27.9"`
	TempMax       float64   `json:"temp_max" example:"28.9"`
	Humidity      int       `json:"humidity" example:"78"`
	WindSpeed     float64   `json:"wind_speed" example:"4.6"`
	Visibility    int       `json:"visibility" example:"10000"`
	Pressure      int       `json:"pressure" example:"1010"`
	Sunrise       time.Time `json:"sunrise"`
	Sunset        time.Time `json:"sunset"`
	Description   string    `json:"description" example:"clear sky"`
	ConditionCode int       `json:"condition_code" example:"800"`
}

// Icon is the emoji for the snapshot's description.
func (s WeatherSnapshot) Icon() string {
	return ConditionIcon(s.Description)
}

// VisibilityKm converts the visibility to kilometers.
func (s WeatherSnapshot) VisibilityKm() float64 {
	return float64(s.Visibility) / 1000
}

// RoundCelsius rounds a temperature to whole degrees for display.
func RoundCelsius(t float64) int {
	return int(math.Round(t))
}
