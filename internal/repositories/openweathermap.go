package repositories

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"weather-app/internal/models"
	"weather-app/pkg/logger"
)

const (
	OpenWeatherMapBaseURL = "https://api.openweathermap.org/data/2.5/weather"

	// the provider reports success with this value in the "cod" field
	openWeatherMapSuccessCode = 200
)

type OpenWeatherMapRepository struct {
	BaseURL    string
	APIKey     string
	httpClient HTTPClient
	l          *logger.Logger
}

func NewOpenWeatherMapRepository(baseURL, apiKey string, l *logger.Logger, httpClient HTTPClient) (*OpenWeatherMapRepository, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, errors.New("API key cannot be empty")
	}
	if baseURL == "" {
		baseURL = OpenWeatherMapBaseURL
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &OpenWeatherMapRepository{
		BaseURL:    baseURL,
		APIKey:     apiKey,
		httpClient: httpClient,
		l:          l,
	}, nil
}

func (o *OpenWeatherMapRepository) Name() string {
	return "openweathermap"
}

// statusCode decodes "cod", which the provider sends as a number on success
// and as a string ("404") on failures.
type statusCode int

func (c *statusCode) UnmarshalJSON(data []byte) error {
	data = bytes.Trim(data, `"`)
	if len(data) == 0 || string(data) == "null" {
		*c = 0
		return nil
	}

	n, err := strconv.Atoi(string(data))
	if err != nil {
		return fmt.Errorf("invalid cod %q: %w", data, err)
	}

	*c = statusCode(n)
	return nil
}

type OpenWeatherMapResponse struct {
	Cod     statusCode `json:"cod"`
	Message string     `json:"message"`
	Name    string     `json:"name"`
	Main    struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		TempMin   float64 `json:"temp_min"`
		TempMax   float64 `json:"temp_max"`
		Pressure  int     `json:"pressure"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		ID          int    `json:"id"`
		Main        string `json:"main"`
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
	Sys struct {
		Country string `json:"country"`
		Sunrise int64  `json:"sunrise"`
		Sunset  int64  `json:"sunset"`
	} `json:"sys"`
	Visibility int `json:"visibility"`
}

// FetchCurrent asks the provider for the current weather in city. A payload
// whose cod is not 200 yields ErrCityNotFound; transport and decoding
// failures are returned wrapped.
func (o *OpenWeatherMapRepository) FetchCurrent(ctx context.Context, city string) (models.WeatherSnapshot, error) {
	query := url.Values{}
	query.Set("q", city)
	query.Set("appid", o.APIKey)
	query.Set("units", "metric")

	o.l.Info("making openweathermap API request", map[string]any{
		"city": city,
	})

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, o.BaseURL+"?"+query.Encode(), nil)
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := o.httpClient.Do(req)
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to do request: %w", err)
	}
	defer resp.Body.Close()

	o.l.Info("received openweathermap API response", map[string]any{
		"city":       city,
		"status":     resp.StatusCode,
		"statusText": resp.Status,
	})

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to read response body: %w", err)
	}

	var response OpenWeatherMapResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return models.WeatherSnapshot{}, fmt.Errorf("failed to parse JSON response (status %d): %w", resp.StatusCode, err)
	}

	if response.Cod != openWeatherMapSuccessCode {
		o.l.Warning("openweathermap did not resolve city", map[string]any{
			"city":    city,
			"cod":     int(response.Cod),
			"message": response.Message,
		})
		return models.WeatherSnapshot{}, fmt.Errorf("%w: %q (cod %d)", ErrCityNotFound, city, response.Cod)
	}

	return snapshotFromResponse(response), nil
}

func snapshotFromResponse(r OpenWeatherMapResponse) models.WeatherSnapshot {
	snapshot := models.WeatherSnapshot{
		City:       r.Name,
		Country:    r.Sys.Country,
		Temp:       r.Main.Temp,
		FeelsLike:  r.Main.FeelsLike,
		TempMin:    r.Main.TempMin,
		TempMax:    r.Main.TempMax,
		Humidity:   r.Main.Humidity,
		WindSpeed:  r.Wind.Speed,
		Visibility: r.Visibility,
		Pressure:   r.Main.Pressure,
		Sunrise:    time.Unix(r.Sys.Sunrise, 0).UTC(),
		Sunset:     time.Unix(r.Sys.Sunset, 0).UTC(),
	}

	if len(r.Weather) > 0 {
		snapshot.Description = r.Weather[0].Description
		snapshot.ConditionCode = r.Weather[0].ID
	}

	return snapshot
}
