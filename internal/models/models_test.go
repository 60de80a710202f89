package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConditionIcon(t *testing.T) {
	cases := map[string]string{
		"clear sky":        "☀️",
		"Clear Sky":        "☀️",
		"few clouds":       "🌤️",
		"scattered clouds": "⛅",
		"broken clouds":    "☁️",
		"overcast clouds":  "☁️",
		"shower rain":      "🌦️",
		"RAIN":             "🌧️",
		"thunderstorm":     "⛈️",
		"snow":             "❄️",
		"mist":             "🌫️",
		"fog":              "🌫️",
		"light rain":       DefaultConditionIcon,
		"":                 DefaultConditionIcon,
	}

	for description, want := range cases {
		assert.Equal(t, want, ConditionIcon(description), "description %q", description)
	}
}

func TestRequestState_Constructors(t *testing.T) {
	assert.Nil(t, Idle().Snapshot)
	assert.Empty(t, Idle().Message())

	assert.True(t, Loading().IsLoading())
	assert.Nil(t, Loading().Snapshot)

	ok := Succeeded(WeatherSnapshot{City: "Colombo"})
	assert.Equal(t, StatusSucceeded, ok.Status)
	if assert.NotNil(t, ok.Snapshot) {
		assert.Equal(t, "Colombo", ok.Snapshot.City)
	}
	assert.Empty(t, ok.Reason)
	assert.Empty(t, ok.Message())

	notFound := Failed(CityNotFound)
	assert.Nil(t, notFound.Snapshot)
	assert.Equal(t, "City not found. Please check the spelling and try again.", notFound.Message())

	offline := Failed(NetworkError)
	assert.Equal(t, "Failed to fetch weather data. Please check your internet connection.", offline.Message())
}

func TestRoundCelsius(t *testing.T) {
	assert.Equal(t, 28, RoundCelsius(28.4))
	assert.Equal(t, 29, RoundCelsius(28.5))
	assert.Equal(t, -3, RoundCelsius(-2.6))
	assert.Equal(t, 0, RoundCelsius(-0.4))
}

func TestWeatherSnapshot_Derived(t *testing.T) {
	s := WeatherSnapshot{Description: "clear sky", Visibility: 7500}

	assert.Equal(t, "☀️", s.Icon())
	assert.InDelta(t, 7.5, s.VisibilityKm(), 1e-9)
}
