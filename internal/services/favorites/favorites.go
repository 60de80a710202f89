package favorites

import (
	"context"
	"encoding/json"
	"slices"
	"sync"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"weather-app/internal/storage"
	"weather-app/pkg/logger"
)

// storedList is the persisted shape: a JSON array of distinct, non-empty
// city names.
type storedList struct {
	Cities []string `validate:"unique,dive,required"`
}

// Store is the ordered, duplicate-free list of favorite cities. Every
// mutation writes the whole list to the key-value store before it is
// committed in memory, so a failed write leaves the list unchanged.
type Store struct {
	mu       sync.RWMutex
	cities   []string
	kv       storage.KV
	key      string
	validate *validator.Validate
	l        *logger.Logger
}

func NewStore(kv storage.KV, key string, l *logger.Logger) *Store {
	return &Store{
		cities:   []string{},
		kv:       kv,
		key:      key,
		validate: validator.New(),
		l:        l,
	}
}

// Load replaces the in-memory list with the persisted one. A missing,
// unreadable or malformed value yields an empty list.
func (s *Store) Load(ctx context.Context) []string {
	cities := s.decode(s.read(ctx))

	s.mu.Lock()
	s.cities = cities
	s.mu.Unlock()

	s.l.Info("favorites loaded", map[string]any{
		"key":   s.key,
		"count": len(cities),
	})

	return slices.Clone(cities)
}

func (s *Store) read(ctx context.Context) []byte {
	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		s.l.Warning("failed to read favorites, starting empty", map[string]any{
			"key": s.key,
			"err": err.Error(),
		})
		return nil
	}
	return raw
}

func (s *Store) decode(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}

	var list storedList
	if err := json.Unmarshal(raw, &list.Cities); err != nil {
		s.l.Warning("malformed favorites, starting empty", map[string]any{
			"key": s.key,
			"err": err.Error(),
		})
		return []string{}
	}

	if list.Cities == nil {
		return []string{}
	}

	if err := s.validate.Struct(list); err != nil {
		s.l.Warning("invalid favorites, starting empty", map[string]any{
			"key": s.key,
			"err": err.Error(),
		})
		return []string{}
	}

	return list.Cities
}

// Add appends city unless an exact match is already present. It reports
// whether the list changed.
func (s *Store) Add(ctx context.Context, city string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if slices.Contains(s.cities, city) {
		return false, nil
	}

	next := append(slices.Clone(s.cities), city)
	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.cities = next

	s.l.Info("favorite added", map[string]any{"city": city, "count": len(next)})
	return true, nil
}

// Remove deletes the exact match for city. It reports whether the list
// changed.
func (s *Store) Remove(ctx context.Context, city string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := slices.Index(s.cities, city)
	if idx < 0 {
		return false, nil
	}

	next := slices.Delete(slices.Clone(s.cities), idx, idx+1)
	if err := s.persist(ctx, next); err != nil {
		return false, err
	}
	s.cities = next

	s.l.Info("favorite removed", map[string]any{"city": city, "count": len(next)})
	return true, nil
}

// List returns a copy of the favorites in insertion order.
func (s *Store) List() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Clone(s.cities)
}

func (s *Store) Contains(city string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return slices.Contains(s.cities, city)
}

func (s *Store) persist(ctx context.Context, cities []string) error {
	raw, err := json.Marshal(cities)
	if err != nil {
		return errors.Wrap(err, "failed to encode favorites")
	}

	if err := s.kv.Set(ctx, s.key, raw); err != nil {
		s.l.Error(err, map[string]any{"key": s.key})
		return errors.Wrap(err, "failed to persist favorites")
	}
	return nil
}
