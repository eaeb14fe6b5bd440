package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// -----------------------------------------------------------------------------
// Environment variable configuration guidelines:
// - required: Values that differ between environments (backend URL, API keys)
// - default: Values common across all environments (timeouts, storage layout)
// -----------------------------------------------------------------------------

type Config struct {
	API     APIConfig
	Storage StorageConfig
	Places  PlacesConfig
	Log     LogConfig
}

type APIConfig struct {
	BaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:8000"`
	Timeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"15s"`
}

type StorageConfig struct {
	// Backend selects where durable client state (tokens, pending bookings)
	// lives: "file" or "redis".
	Backend  string `envconfig:"STORAGE_BACKEND" default:"file"`
	StateDir string `envconfig:"STATE_DIR" default:".vedicjivan"`

	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	RedisPassword string `envconfig:"REDIS_PASSWORD" default:""`
	RedisDB       int    `envconfig:"REDIS_DB" default:"0"`
}

type PlacesConfig struct {
	// APIKey is optional: without it the place-of-birth input degrades to a
	// disabled field instead of failing.
	APIKey   string        `envconfig:"PLACES_API_KEY" default:""`
	BaseURL  string        `envconfig:"PLACES_BASE_URL" default:"https://maps.googleapis.com/maps/api/place"`
	Debounce time.Duration `envconfig:"PLACES_DEBOUNCE" default:"300ms"`
	MinChars int           `envconfig:"PLACES_MIN_CHARS" default:"2"`
}

type LogConfig struct {
	Level      string `envconfig:"LOG_LEVEL" default:"info"`
	TimeZone   string `envconfig:"LOG_TIMEZONE" default:"Asia/Kolkata"`
	TimeFormat string `envconfig:"LOG_TIME_FORMAT" default:"2006-01-02 15:04:05.000"`
}

func LoadConfig() (Config, error) {
	var cfg Config
	err := envconfig.Process("", &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("failed to process env config: %w", err)
	}
	return cfg, nil
}

func NewTestConfig() Config {
	return Config{
		API: APIConfig{
			BaseURL: "http://localhost:8999", // Test backend port
			Timeout: 2 * time.Second,
		},
		Storage: StorageConfig{
			Backend:  "memory",
			StateDir: ".vedicjivan-test",
		},
		Places: PlacesConfig{
			Debounce: 5 * time.Millisecond, // Keep debounce tests fast
			MinChars: 2,
		},
		Log: LogConfig{
			Level:      "error", // Error level only for tests
			TimeZone:   "Asia/Kolkata",
			TimeFormat: "2006-01-02 15:04:05.000",
		},
	}
}
