package app

import (
	"context"
	"slices"
	"sync"

	"github.com/pkg/errors"

	"weather-app/internal/models"
	"weather-app/internal/services/weather"
	"weather-app/pkg/logger"
)

var (
	// ErrNoSnapshot is returned when adding the current city while no weather
	// is displayed.
	ErrNoSnapshot = errors.New("no weather is displayed")
	// ErrNotFavorite is returned when loading a city that is not a favorite.
	ErrNotFavorite = errors.New("city is not a favorite")
)

type Fetcher interface {
	Fetch(ctx context.Context, city string) models.RequestState
}

type FavoritesStore interface {
	Load(ctx context.Context) []string
	Add(ctx context.Context, city string) (bool, error)
	Remove(ctx context.Context, city string) (bool, error)
	List() []string
}

// App owns the State and applies every change through Reduce. Fetches run
// without holding the lock, so concurrent fetches may settle in any order and
// the last one to settle is what the state shows.
type App struct {
	mu        sync.Mutex
	state     State
	fetcher   Fetcher
	favorites FavoritesStore
	listeners []func(State)
	l         *logger.Logger
}

func New(fetcher Fetcher, favorites FavoritesStore, l *logger.Logger) *App {
	return &App{
		state:     InitialState(),
		fetcher:   fetcher,
		favorites: favorites,
		l:         l,
	}
}

// Subscribe registers fn to be called with the new state after every change.
// Listeners run on the goroutine that made the change.
func (a *App) Subscribe(fn func(State)) {
	a.mu.Lock()
	defer a.mu.Unlock()

	a.listeners = append(a.listeners, fn)
}

func (a *App) dispatch(action Action) State {
	a.mu.Lock()
	a.state = Reduce(a.state, action)
	next := a.snapshot()
	listeners := slices.Clone(a.listeners)
	a.mu.Unlock()

	for _, fn := range listeners {
		fn(next)
	}
	return next
}

// snapshot copies the state so callers cannot alias the favorites slice.
// The caller holds a.mu.
func (a *App) snapshot() State {
	s := a.state
	s.Favorites = slices.Clone(a.state.Favorites)
	return s
}

func (a *App) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()

	return a.snapshot()
}

// Init loads the persisted favorites and, when defaultCity is not blank,
// fetches its weather.
func (a *App) Init(ctx context.Context, defaultCity string) State {
	s := a.dispatch(FavoritesChanged{Favorites: a.favorites.Load(ctx)})

	if _, ok := weather.Normalize(defaultCity); !ok {
		return s
	}

	s, _ = a.Search(ctx, defaultCity)
	return s
}

// SetCity updates the city input without fetching.
func (a *App) SetCity(city string) State {
	return a.dispatch(CityChanged{City: city})
}

// Search fetches the weather for the trimmed city. A blank city is a no-op
// and reports false.
func (a *App) Search(ctx context.Context, city string) (State, bool) {
	city, ok := weather.Normalize(city)
	if !ok {
		return a.State(), false
	}

	return a.Fetch(ctx, city), true
}

// Fetch moves the request to Loading, performs one fetch and settles it. The
// request leaves Loading on every path.
func (a *App) Fetch(ctx context.Context, city string) (s State) {
	a.dispatch(FetchStarted{City: city})

	result := models.Failed(models.NetworkError)
	defer func() {
		if r := recover(); r != nil {
			a.l.Error(errors.Errorf("fetch panicked: %v", r), map[string]any{"city": city})
		}
		s = a.dispatch(FetchSettled{Result: result})
	}()

	result = a.fetcher.Fetch(ctx, city)
	return s
}

// LoadFavorite sets the city input to a favorite and fetches it.
func (a *App) LoadFavorite(ctx context.Context, city string) (State, error) {
	if !slices.Contains(a.favorites.List(), city) {
		return a.State(), errors.Wrapf(ErrNotFavorite, "load %q", city)
	}

	a.SetCity(city)
	return a.Fetch(ctx, city), nil
}

// AddCurrentToFavorites adds the resolved name of the displayed city. Adding
// a city that is already a favorite changes nothing.
func (a *App) AddCurrentToFavorites(ctx context.Context) (State, error) {
	city := a.State().CurrentCity()
	if city == "" {
		return a.State(), ErrNoSnapshot
	}

	if _, err := a.favorites.Add(ctx, city); err != nil {
		return a.State(), errors.Wrapf(err, "add favorite %q", city)
	}

	return a.dispatch(FavoritesChanged{Favorites: a.favorites.List()}), nil
}

func (a *App) RemoveFavorite(ctx context.Context, city string) (State, error) {
	if _, err := a.favorites.Remove(ctx, city); err != nil {
		return a.State(), errors.Wrapf(err, "remove favorite %q", city)
	}

	return a.dispatch(FavoritesChanged{Favorites: a.favorites.List()}), nil
}
