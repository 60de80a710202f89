package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"weather-app/internal/models"
	"weather-app/internal/repositories"
	"weather-app/pkg/logger"
)

// WeatherService turns one provider call into a settled RequestState.
type WeatherService struct {
	repo repositories.WeatherRepository
	l    *logger.Logger
}

func NewWeatherService(repo repositories.WeatherRepository, l *logger.Logger) *WeatherService {
	return &WeatherService{
		repo: repo,
		l:    l,
	}
}

// Fetch issues exactly one request for city and classifies the outcome. It
// never returns Loading or Idle: provider "not found" answers become
// Failed(CityNotFound), everything else that goes wrong, panics included,
// becomes Failed(NetworkError).
func (s *WeatherService) Fetch(ctx context.Context, city string) (state models.RequestState) {
	defer func() {
		if r := recover(); r != nil {
			s.l.Error(errors.New(fmt.Sprint(r)), map[string]any{
				"city":  city,
				"repo":  s.repo.Name(),
				"panic": true,
			})
			state = models.Failed(models.NetworkError)
		}
	}()

	s.l.Info("starting weather fetch", map[string]any{
		"city": city,
		"repo": s.repo.Name(),
	})

	snapshot, err := s.repo.FetchCurrent(ctx, city)
	if err != nil {
		return s.failure(city, err)
	}

	s.l.Info("successfully fetched weather", map[string]any{
		"city":        snapshot.City,
		"country":     snapshot.Country,
		"description": snapshot.Description,
	})

	return models.Succeeded(snapshot)
}

func (s *WeatherService) failure(city string, err error) models.RequestState {
	if errors.Is(err, repositories.ErrCityNotFound) {
		s.l.Warning("city not found", map[string]any{
			"city": city,
			"err":  err.Error(),
		})
		return models.Failed(models.CityNotFound)
	}

	s.l.Error(errors.Wrap(err, "failed to fetch weather"), map[string]any{
		"city": city,
		"repo": s.repo.Name(),
	})
	return models.Failed(models.NetworkError)
}

// Normalize trims surrounding whitespace; an empty result means the request
// must not be issued.
func Normalize(city string) (string, bool) {
	city = strings.TrimSpace(city)
	return city, city != ""
}
