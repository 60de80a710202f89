package repositories

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-app/pkg/logger"
)

const colomboPayload = `{
	"cod": 200,
	"name": "Colombo",
	"main": {"temp": 28.4, "feels_like": 32.1, "temp_min": 27.9, "temp_max": 28.9, "pressure": 1010, "humidity": 78},
	"weather": [{"id": 800, "main": "Clear", "description": "clear sky", "icon": "01d"}],
	"wind": {"speed": 4.63, "deg": 250},
	"sys": {"country": "LK", "sunrise": 1753489320, "sunset": 1753533840},
	"visibility": 10000
}`

func newTestRepository(t *testing.T, baseURL string) *OpenWeatherMapRepository {
	t.Helper()

	repo, err := NewOpenWeatherMapRepository(baseURL, "test-key", logger.NewNop(), http.DefaultClient)
	require.NoError(t, err)
	return repo
}

func TestOpenWeatherMapRepository_FetchCurrent_Success(t *testing.T) {
	var gotQuery map[string][]string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(colomboPayload))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	snapshot, err := repo.FetchCurrent(context.Background(), "Colombo")
	require.NoError(t, err)

	assert.Equal(t, []string{"Colombo"}, gotQuery["q"])
	assert.Equal(t, []string{"test-key"}, gotQuery["appid"])
	assert.Equal(t, []string{"metric"}, gotQuery["units"])

	assert.Equal(t, "Colombo", snapshot.City)
	assert.Equal(t, "LK", snapshot.Country)
	assert.Equal(t, 28.4, snapshot.Temp)
	assert.Equal(t, 32.1, snapshot.FeelsLike)
	assert.Equal(t, 27.9, snapshot.TempMin)
	assert.Equal(t, 28.9, snapshot.TempMax)
	assert.Equal(t, 78, snapshot.Humidity)
	assert.Equal(t, 1010, snapshot.Pressure)
	assert.Equal(t, 4.63, snapshot.WindSpeed)
	assert.Equal(t, 10000, snapshot.Visibility)
	assert.Equal(t, "clear sky", snapshot.Description)
	assert.Equal(t, 800, snapshot.ConditionCode)
	assert.True(t, snapshot.Sunrise.Equal(time.Unix(1753489320, 0)))
	assert.True(t, snapshot.Sunset.Equal(time.Unix(1753533840, 0)))
}

func TestOpenWeatherMapRepository_FetchCurrent_EscapesCity(t *testing.T) {
	var rawQuery string
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		rawQuery = r.URL.RawQuery
		w.Write([]byte(colomboPayload))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.FetchCurrent(context.Background(), "New York&units=imperial")
	require.NoError(t, err)

	assert.Contains(t, rawQuery, "q=New+York%26units%3Dimperial")
	assert.Contains(t, rawQuery, "units=metric")
	assert.NotContains(t, rawQuery, "units=imperial")
}

func TestOpenWeatherMapRepository_FetchCurrent_NotFound(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"cod":"404","message":"city not found"}`))
	}))
	defer mockServer.Close()

	repo := newTestRepository(t, mockServer.URL)

	_, err := repo.FetchCurrent(context.Background(), "Zzzznotacity")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrCityNotFound))
}

func TestOpenWeatherMapRepository_FetchCurrent_NonSuccessCodes(t *testing.T) {
	payloads := []string{
		`{"cod":401,"message":"Invalid API key"}`,
		`{"cod":"429","message":"rate limited"}`,
		`{"message":"no cod at all"}`,
	}

	for _, payload := range payloads {
		payload := payload
		t.Run(payload, func(t *testing.T) {
			mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Write([]byte(payload))
			}))
			defer mockServer.Close()

			_, err := newTestRepository(t, mockServer.URL).FetchCurrent(context.Background(), "Colombo")
			assert.ErrorIs(t, err, ErrCityNotFound)
		})
	}
}

func TestOpenWeatherMapRepository_FetchCurrent_InvalidJSON(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("<html>bad gateway</html>"))
	}))
	defer mockServer.Close()

	_, err := newTestRepository(t, mockServer.URL).FetchCurrent(context.Background(), "Colombo")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCityNotFound))
	assert.Contains(t, err.Error(), "failed to parse JSON response")
}

func TestOpenWeatherMapRepository_FetchCurrent_ConnectionRefused(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	baseURL := mockServer.URL
	mockServer.Close()

	_, err := newTestRepository(t, baseURL).FetchCurrent(context.Background(), "Colombo")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrCityNotFound))
}

func TestOpenWeatherMapRepository_FetchCurrent_ContextCancellation(t *testing.T) {
	mockServer := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(100 * time.Millisecond)
		w.Write([]byte(colomboPayload))
	}))
	defer mockServer.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := newTestRepository(t, mockServer.URL).FetchCurrent(ctx, "Colombo")
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestNewOpenWeatherMapRepository_RequiresKey(t *testing.T) {
	_, err := NewOpenWeatherMapRepository("", "  ", logger.NewNop(), nil)
	assert.Error(t, err)

	repo, err := NewOpenWeatherMapRepository("", "key", logger.NewNop(), nil)
	require.NoError(t, err)
	assert.Equal(t, OpenWeatherMapBaseURL, repo.BaseURL)
	assert.Equal(t, "openweathermap", repo.Name())
}

func TestStatusCode_UnmarshalJSON(t *testing.T) {
	var c statusCode

	require.NoError(t, c.UnmarshalJSON([]byte(`200`)))
	assert.Equal(t, statusCode(200), c)

	require.NoError(t, c.UnmarshalJSON([]byte(`"404"`)))
	assert.Equal(t, statusCode(404), c)

	require.NoError(t, c.UnmarshalJSON([]byte(`null`)))
	assert.Equal(t, statusCode(0), c)

	assert.Error(t, c.UnmarshalJSON([]byte(`"abc"`)))
}
