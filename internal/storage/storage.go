// Package storage is a tiny key-value layer used to persist the favorites
// list. Every backend stores opaque byte values under string keys.
package storage

import (
	"context"
	"errors"
	"fmt"

	"weather-app/config"
)

// ErrNotFound is returned by Get when the key has never been written.
var ErrNotFound = errors.New("key not found")

type KV interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}

// New opens the backend selected by cfg.Driver.
func New(cfg config.FavoritesConfig) (KV, error) {
	switch cfg.Driver {
	case "file":
		return NewFileStore(cfg.Path)
	case "sqlite":
		return NewSQLiteStore(cfg.Path)
	case "redis":
		return NewRedisStore(RedisOptions{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
	case "memory":
		return NewMemoryStore(), nil
	}

	return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
}
