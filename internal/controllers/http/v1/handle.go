package http

import (
	"net/url"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"

	"weather-app/internal/app"
	"weather-app/internal/models"
)

// WeatherView is a snapshot prepared for display
type WeatherView struct {
	City         string  `json:"city" example:"Colombo"`
	Country      string  `json:"country" example:"LK"`
	Icon         string  `json:"icon" example:"☀️"`
	Description  string  `json:"description" example:"clear sky"`
	Temp         int     `json:"temp" example:"28"`
	FeelsLike    int     `json:"feels_like" example:"32"`
	TempMin      int     `json:"temp_min" example:"28"`
	TempMax      int     `json:"temp_max" example:"29"`
	Humidity     int     `json:"humidity" example:"78"`
	WindSpeed    float64 `json:"wind_speed" example:"4.63"`
	VisibilityKm float64 `json:"visibility_km" example:"10"`
	Pressure     int     `json:"pressure" example:"1010"`
	Sunrise      string  `json:"sunrise" example:"2025-07-26T00:22:00Z"`
	Sunset       string  `json:"sunset" example:"2025-07-26T12:44:00Z"`
}

// StateResponse represents the application state
type StateResponse struct {
	City           string       `json:"city" example:"Colombo"`
	Status         string       `json:"status" example:"succeeded"`
	Loading        bool         `json:"loading" example:"false"`
	Weather        *WeatherView `json:"weather,omitempty"`
	Error          string       `json:"error,omitempty" example:"City not found. Please check the spelling and try again."`
	Favorites      []string     `json:"favorites" example:"Colombo,Kandy"`
	IsFavorite     bool         `json:"is_favorite" example:"false"`
	CanAddFavorite bool         `json:"can_add_favorite" example:"true"`
}

// FavoritesResponse represents the favorites list
type FavoritesResponse struct {
	Favorites []string `json:"favorites" example:"Colombo,Kandy"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error string `json:"error" example:"Missing required parameter: city"`
}

func newStateResponse(s app.State) StateResponse {
	resp := StateResponse{
		City:           s.City,
		Status:         string(s.Request.Status),
		Loading:        s.Loading(),
		Error:          s.Request.Message(),
		Favorites:      s.Favorites,
		IsFavorite:     s.IsFavorite(),
		CanAddFavorite: s.CanAddFavorite(),
	}

	if snap := s.Request.Snapshot; snap != nil {
		resp.Weather = &WeatherView{
			City:         snap.City,
			Country:      snap.Country,
			Icon:         snap.Icon(),
			Description:  snap.Description,
			Temp:         models.RoundCelsius(snap.Temp),
			FeelsLike:    models.RoundCelsius(snap.FeelsLike),
			TempMin:      models.RoundCelsius(snap.TempMin),
			TempMax:      models.RoundCelsius(snap.TempMax),
			Humidity:     snap.Humidity,
			WindSpeed:    snap.WindSpeed,
			VisibilityKm: snap.VisibilityKm(),
			Pressure:     snap.Pressure,
			Sunrise:      snap.Sunrise.Format(time.RFC3339),
			Sunset:       snap.Sunset.Format(time.RFC3339),
		}
	}

	return resp
}

// statusFor maps a settled request to the HTTP status of the response.
func statusFor(s app.State) int {
	if s.Request.Status != models.StatusFailed {
		return fiber.StatusOK
	}
	if s.Request.Reason == models.CityNotFound {
		return fiber.StatusNotFound
	}
	return fiber.StatusBadGateway
}

func cityParam(c *fiber.Ctx) (string, error) {
	return url.PathUnescape(c.Params("city"))
}

// GetWeather godoc
// @Summary Search the current weather
// @Description Fetches the current weather for a city and returns the resulting application state
// @Tags Weather
// @Produce json
// @Param city query string true "City name" example(Colombo)
// @Success 200 {object} StateResponse "Weather fetched"
// @Failure 400 {object} ErrorResponse "Missing city"
// @Failure 404 {object} StateResponse "City not found"
// @Failure 502 {object} StateResponse "Provider unreachable"
// @Router /api/v1/weather [get]
// @Example {curl} Example usage:
//
//	curl -X GET "http://localhost:8080/api/v1/weather?city=Colombo"
func (r *routes) handleWeatherCall(c *fiber.Ctx) error {
	s, ok := r.app.Search(c.UserContext(), c.Query("city"))
	if !ok {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{
			Error: "Missing required parameter: city",
		})
	}

	return c.Status(statusFor(s)).JSON(newStateResponse(s))
}

// GetState godoc
// @Summary Get the application state
// @Tags State
// @Produce json
// @Success 200 {object} StateResponse
// @Router /api/v1/state [get]
func (r *routes) handleState(c *fiber.Ctx) error {
	return c.JSON(newStateResponse(r.app.State()))
}

// ListFavorites godoc
// @Summary List favorite cities
// @Tags Favorites
// @Produce json
// @Success 200 {object} FavoritesResponse
// @Router /api/v1/favorites [get]
func (r *routes) handleListFavorites(c *fiber.Ctx) error {
	return c.JSON(FavoritesResponse{Favorites: r.app.State().Favorites})
}

// AddFavorite godoc
// @Summary Add the displayed city to favorites
// @Description Adds the resolved name of the currently displayed city. Adding an existing favorite changes nothing.
// @Tags Favorites
// @Produce json
// @Success 200 {object} StateResponse
// @Failure 409 {object} ErrorResponse "No weather displayed"
// @Failure 500 {object} ErrorResponse "Favorites could not be saved"
// @Router /api/v1/favorites [post]
func (r *routes) handleAddFavorite(c *fiber.Ctx) error {
	s, err := r.app.AddCurrentToFavorites(c.UserContext())
	if errors.Is(err, app.ErrNoSnapshot) {
		return c.Status(fiber.StatusConflict).JSON(ErrorResponse{
			Error: "No weather is displayed; search for a city first",
		})
	}
	if err != nil {
		r.l.Error(err, map[string]any{"route": "add_favorite"})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to save favorites",
		})
	}

	return c.JSON(newStateResponse(s))
}

// RemoveFavorite godoc
// @Summary Remove a favorite city
// @Description Removing a city that is not a favorite changes nothing.
// @Tags Favorites
// @Produce json
// @Param city path string true "Favorite city name"
// @Success 200 {object} StateResponse
// @Failure 400 {object} ErrorResponse "Malformed city"
// @Failure 500 {object} ErrorResponse "Favorites could not be saved"
// @Router /api/v1/favorites/{city} [delete]
func (r *routes) handleRemoveFavorite(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Malformed city"})
	}

	s, err := r.app.RemoveFavorite(c.UserContext(), city)
	if err != nil {
		r.l.Error(err, map[string]any{"route": "remove_favorite", "city": city})
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Failed to save favorites",
		})
	}

	return c.JSON(newStateResponse(s))
}

// LoadFavorite godoc
// @Summary Show the weather of a favorite city
// @Tags Favorites
// @Produce json
// @Param city path string true "Favorite city name"
// @Success 200 {object} StateResponse
// @Failure 404 {object} ErrorResponse "Not a favorite, or city not found"
// @Failure 502 {object} StateResponse "Provider unreachable"
// @Router /api/v1/favorites/{city}/load [post]
func (r *routes) handleLoadFavorite(c *fiber.Ctx) error {
	city, err := cityParam(c)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(ErrorResponse{Error: "Malformed city"})
	}

	s, err := r.app.LoadFavorite(c.UserContext(), city)
	if errors.Is(err, app.ErrNotFavorite) {
		return c.Status(fiber.StatusNotFound).JSON(ErrorResponse{
			Error: "City is not a favorite: " + city,
		})
	}
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{Error: err.Error()})
	}

	return c.Status(statusFor(s)).JSON(newStateResponse(s))
}
