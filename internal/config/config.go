package config

import (
	"context"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	GinMode  string `env:"GIN_MODE,  default=debug"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Database DatabaseConfig
	JWT      JWTConfig
	CORS     CORSConfig
}

type DatabaseConfig struct {
	// Driver selects the GORM dialector: sqlite, mysql or postgres.
	Driver string `env:"DB_DRIVER, default=sqlite"`
	DSN    string `env:"DB_DSN,    default=projects.db"`
}

type JWTConfig struct {
	Secret string        `env:"JWT_SECRET, default=change-me-in-production"`
	TTL    time.Duration `env:"JWT_TTL,    default=24h"`
}

type CORSConfig struct {
	AllowOrigins []string `env:"CORS_ALLOW_ORIGINS, default=*"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
