package main

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func providerStub(t *testing.T) *httptest.Server {
	t.Helper()

	s := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("q") != "Colombo" {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"cod":"404","message":"city not found"}`))
			return
		}
		w.Write([]byte(`{"cod":200,"name":"Colombo","main":{"temp":28.4,"feels_like":32.1},
			"weather":[{"id":800,"description":"clear sky"}],"sys":{"country":"LK"},"visibility":10000}`))
	}))
	t.Cleanup(s.Close)
	return s
}

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "missing.yaml"), "--no-color"}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestGet(t *testing.T) {
	t.Setenv("WEATHER_BASE_URL", providerStub(t).URL)
	t.Setenv("WEATHER_API_KEY", "test-key")
	t.Setenv("FAVORITES_DRIVER", "memory")

	out, err := runCmd(t, "get", "Colombo")
	require.NoError(t, err)
	assert.Contains(t, out, "Colombo, LK")
	assert.Contains(t, out, "28°C")

	out, err = runCmd(t, "get", "Zzzz", "notacity")
	assert.Error(t, err)
	assert.Contains(t, out, "City not found. Please check the spelling and try again.")
}

func TestGet_RequiresAPIKey(t *testing.T) {
	t.Setenv("WEATHER_API_KEY", "")
	t.Setenv("FAVORITES_DRIVER", "memory")

	_, err := runCmd(t, "get", "Colombo")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "WEATHER_API_KEY")
}

func TestGet_RequiresCity(t *testing.T) {
	_, err := runCmd(t, "get")
	assert.Error(t, err)
}
