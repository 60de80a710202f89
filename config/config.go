package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

// DefaultPath is where NewConfig looks for the YAML file when none is given.
const DefaultPath = "config/config.yaml"

type Config struct {
	App       AppConfig       `yaml:"app"`
	Server    ServerConfig    `yaml:"server"`
	Weather   WeatherConfig   `yaml:"weather"`
	Favorites FavoritesConfig `yaml:"favorites"`
	Log       LogConfig       `yaml:"log"`
	Sentry    SentryConfig    `yaml:"sentry"`
}

type AppConfig struct {
	Name        string `yaml:"name"`
	Version     string `yaml:"version"`
	Env         string `yaml:"env"`
	DefaultCity string `yaml:"default_city" split_words:"true"`
}

type ServerConfig struct {
	Port         string        `yaml:"port"`
	ReadTimeout  time.Duration `yaml:"read_timeout" split_words:"true"`
	WriteTimeout time.Duration `yaml:"write_timeout" split_words:"true"`
	IdleTimeout  time.Duration `yaml:"idle_timeout" split_words:"true"`
}

// WeatherConfig describes the provider. APIKey is only ever read from the
// file or the environment.
type WeatherConfig struct {
	BaseURL string        `yaml:"base_url" split_words:"true"`
	APIKey  string        `yaml:"api_key" split_words:"true"`
	Timeout time.Duration `yaml:"timeout"`
}

type FavoritesConfig struct {
	Driver        string `yaml:"driver"`
	Path          string `yaml:"path"`
	Key           string `yaml:"key"`
	RedisAddr     string `yaml:"redis_addr" split_words:"true"`
	RedisPassword string `yaml:"redis_password" split_words:"true"`
	RedisDB       int    `yaml:"redis_db" split_words:"true"`
}

type LogConfig struct {
	Level string `yaml:"level"`
}

type SentryConfig struct {
	DSN   string `yaml:"dsn"`
	Debug bool   `yaml:"debug"`
}

// Default returns the configuration used when neither the file nor the
// environment say otherwise.
func Default() *Config {
	return &Config{
		App: AppConfig{
			Name:        "weather-app",
			Version:     "1.0.0",
			Env:         "development",
			DefaultCity: "Colombo",
		},
		Server: ServerConfig{
			Port:         "8080",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  120 * time.Second,
		},
		Weather: WeatherConfig{
			BaseURL: "https://api.openweathermap.org/data/2.5/weather",
		},
		Favorites: FavoritesConfig{
			Driver:    "file",
			Path:      "favorites.json",
			Key:       "weatherFavorites",
			RedisAddr: "localhost:6379",
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// NewConfig layers defaults, the YAML file at path and the environment, in
// that order, and validates the result. A missing file is not an error.
func NewConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultPath
	}

	cnf := Default()

	if err := loadFromFile(path, cnf); err != nil {
		return nil, err
	}

	if err := envconfig.Process("", cnf); err != nil {
		return nil, fmt.Errorf("error environment variable parsing: %w", err)
	}

	if err := cnf.Validate(); err != nil {
		return nil, err
	}

	return cnf, nil
}

func loadFromFile(path string, cnf *Config) error {
	yamlData, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(yamlData, cnf); err != nil {
		return fmt.Errorf("failed to parse YAML config %s: %w", path, err)
	}

	return nil
}

func (c *Config) Validate() error {
	var problems []string

	if strings.TrimSpace(c.App.Name) == "" {
		problems = append(problems, "app.name is required")
	}
	if strings.TrimSpace(c.Weather.BaseURL) == "" {
		problems = append(problems, "weather.base_url is required")
	}
	if strings.TrimSpace(c.Weather.APIKey) == "" {
		problems = append(problems, "weather.api_key is required (set WEATHER_API_KEY)")
	}
	if c.Weather.Timeout < 0 {
		problems = append(problems, "weather.timeout must not be negative")
	}
	if strings.TrimSpace(c.Favorites.Key) == "" {
		problems = append(problems, "favorites.key is required")
	}

	switch c.Favorites.Driver {
	case "file", "sqlite":
		if strings.TrimSpace(c.Favorites.Path) == "" {
			problems = append(problems, "favorites.path is required for driver "+c.Favorites.Driver)
		}
	case "redis":
		if strings.TrimSpace(c.Favorites.RedisAddr) == "" {
			problems = append(problems, "favorites.redis_addr is required for driver redis")
		}
	case "memory":
	default:
		problems = append(problems, fmt.Sprintf("favorites.driver %q is not supported", c.Favorites.Driver))
	}

	if len(problems) > 0 {
		return fmt.Errorf("invalid config: %s", strings.Join(problems, "; "))
	}

	return nil
}

func (c *Config) IsDevelopment() bool {
	return c.App.Env == "development"
}

func (c *Config) IsProduction() bool {
	return c.App.Env == "prod" || c.App.Env == "production"
}
