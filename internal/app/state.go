package app

import (
	"slices"

	"weather-app/internal/models"
)

// State is everything a surface needs to render the application.
type State struct {
	City      string              `json:"city" example:"Colombo"`
	Request   models.RequestState `json:"request"`
	Favorites []string            `json:"favorites"`
}

func InitialState() State {
	return State{
		Request:   models.Idle(),
		Favorites: []string{},
	}
}

// Loading reports whether a fetch is in flight.
func (s State) Loading() bool {
	return s.Request.IsLoading()
}

// CurrentCity is the resolved name of the displayed snapshot, empty when
// none is displayed.
func (s State) CurrentCity() string {
	if s.Request.Snapshot == nil {
		return ""
	}
	return s.Request.Snapshot.City
}

// IsFavorite reports whether the displayed city is already a favorite.
func (s State) IsFavorite() bool {
	city := s.CurrentCity()
	return city != "" && slices.Contains(s.Favorites, city)
}

// CanAddFavorite is true when a snapshot is displayed and its city is not yet
// a favorite.
func (s State) CanAddFavorite() bool {
	return s.CurrentCity() != "" && !s.IsFavorite()
}

type Action interface {
	isAction()
}

type CityChanged struct{ City string }

type FetchStarted struct{ City string }

type FetchSettled struct{ Result models.RequestState }

type FavoritesChanged struct{ Favorites []string }

func (CityChanged) isAction()      {}
func (FetchStarted) isAction()     {}
func (FetchSettled) isAction()     {}
func (FavoritesChanged) isAction() {}

// Reduce is the only way State changes. It is pure: the input state is not
// modified.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case CityChanged:
		s.City = a.City
	case FetchStarted:
		s.City = a.City
		s.Request = models.Loading()
	case FetchSettled:
		if a.Result.IsLoading() {
			break
		}
		s.Request = a.Result
	case FavoritesChanged:
		s.Favorites = slices.Clone(a.Favorites)
		if s.Favorites == nil {
			s.Favorites = []string{}
		}
	}
	return s
}
