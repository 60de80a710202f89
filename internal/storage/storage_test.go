package storage

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weather-app/config"
)

// exerciseKV runs the behaviour every backend must share.
func exerciseKV(t *testing.T, kv KV) {
	t.Helper()
	ctx := context.Background()

	_, err := kv.Get(ctx, "weatherFavorites")
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, kv.Set(ctx, "weatherFavorites", []byte(`["Colombo"]`)))
	got, err := kv.Get(ctx, "weatherFavorites")
	require.NoError(t, err)
	assert.Equal(t, `["Colombo"]`, string(got))

	require.NoError(t, kv.Set(ctx, "weatherFavorites", []byte(`[]`)))
	got, err = kv.Get(ctx, "weatherFavorites")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))

	require.NoError(t, kv.Set(ctx, "other", []byte("not json")))
	got, err = kv.Get(ctx, "other")
	require.NoError(t, err)
	assert.Equal(t, "not json", string(got))

	got, err = kv.Get(ctx, "weatherFavorites")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestMemoryStore(t *testing.T) {
	exerciseKV(t, NewMemoryStore())
}

func TestFileStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "favorites.json")

	s, err := NewFileStore(path)
	require.NoError(t, err)
	defer s.Close()

	exerciseKV(t, s)

	// a second store on the same file sees the persisted values
	reopened, err := NewFileStore(path)
	require.NoError(t, err)
	got, err := reopened.Get(context.Background(), "weatherFavorites")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestFileStore_CorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.json")
	require.NoError(t, os.WriteFile(path, []byte("{broken"), 0o644))

	s, err := NewFileStore(path)
	require.NoError(t, err)

	_, err = s.Get(context.Background(), "weatherFavorites")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.Set(context.Background(), "weatherFavorites", []byte(`["Kandy"]`)))
	got, err := s.Get(context.Background(), "weatherFavorites")
	require.NoError(t, err)
	assert.Equal(t, `["Kandy"]`, string(got))
}

func TestFileStore_EmptyPath(t *testing.T) {
	_, err := NewFileStore("")
	assert.Error(t, err)
}

func TestSQLiteStore(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favorites.db")

	s, err := NewSQLiteStore(path)
	require.NoError(t, err)

	exerciseKV(t, s)
	require.NoError(t, s.Close())

	reopened, err := NewSQLiteStore(path)
	require.NoError(t, err)
	defer reopened.Close()

	got, err := reopened.Get(context.Background(), "weatherFavorites")
	require.NoError(t, err)
	assert.Equal(t, `[]`, string(got))
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)

	s, err := NewRedisStore(RedisOptions{Addr: mr.Addr()})
	require.NoError(t, err)
	defer s.Close()

	exerciseKV(t, s)

	raw, err := mr.Get("weatherFavorites")
	require.NoError(t, err)
	assert.Equal(t, `[]`, raw)
}

func TestRedisStore_Unreachable(t *testing.T) {
	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()

	_, err := NewRedisStore(RedisOptions{Addr: addr})
	assert.Error(t, err)
}

func TestNew(t *testing.T) {
	dir := t.TempDir()

	kv, err := New(config.FavoritesConfig{Driver: "memory"})
	require.NoError(t, err)
	assert.IsType(t, &MemoryStore{}, kv)

	kv, err = New(config.FavoritesConfig{Driver: "file", Path: filepath.Join(dir, "f.json")})
	require.NoError(t, err)
	assert.IsType(t, &FileStore{}, kv)

	kv, err = New(config.FavoritesConfig{Driver: "sqlite", Path: filepath.Join(dir, "f.db")})
	require.NoError(t, err)
	assert.IsType(t, &SQLiteStore{}, kv)
	kv.Close()

	mr := miniredis.RunT(t)
	kv, err = New(config.FavoritesConfig{Driver: "redis", RedisAddr: mr.Addr()})
	require.NoError(t, err)
	assert.IsType(t, &RedisStore{}, kv)
	kv.Close()

	_, err = New(config.FavoritesConfig{Driver: "etcd"})
	assert.Error(t, err)
}
