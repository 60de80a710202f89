package repositories

import (
	"context"
	"errors"
	"net/http"

	"weather-app/config"
	"weather-app/internal/models"
	"weather-app/pkg/logger"
)

// ErrCityNotFound is returned when the provider answers but does not
// resolve the city.
var ErrCityNotFound = errors.New("city not found")

type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

type WeatherRepository interface {
	Name() string
	FetchCurrent(ctx context.Context, city string) (models.WeatherSnapshot, error)
}

// InitWeatherRepository builds the provider client described by cfg. A zero
// timeout leaves the transport defaults in charge.
func InitWeatherRepository(cfg *config.Config, l *logger.Logger) (WeatherRepository, error) {
	httpClient := &http.Client{Timeout: cfg.Weather.Timeout}

	return NewOpenWeatherMapRepository(cfg.Weather.BaseURL, cfg.Weather.APIKey, l, httpClient)
}
