package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Dashboard"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	// DatabaseURL is the only required setting; startup fails without it.
	DatabaseURL string `envconfig:"DATABASE_URL" required:"true"`

	Session struct {
		Secret string        `envconfig:"SESSION_SECRET" default:"dev-only-secret"`
		TTL    time.Duration `envconfig:"SESSION_TTL" default:"24h"`
	}

	Redis struct {
		Addr     string        `envconfig:"REDIS_ADDR" default:"localhost:6379"`
		Password string        `envconfig:"REDIS_PASSWORD" default:""`
		DB       int           `envconfig:"REDIS_DB" default:"0"`
		ViewTTL  time.Duration `envconfig:"REDIS_VIEW_TTL" default:"10m"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
