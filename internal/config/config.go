package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type Config struct {
	Server ServerConfig
	JWT    JWTConfig
	Seed   SeedConfig
}

type ServerConfig struct {
	Port            int           `env:"SERVER_PORT" envDefault:"8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"10s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

type JWTConfig struct {
	Secret     string        `env:"JWT_SECRET" envDefault:"super-secret-key"`
	Expiration time.Duration `env:"JWT_EXPIRATION" envDefault:"24h"`
}

// SeedConfig controls the demo dataset loaded at startup. State lives in
// process memory only, so a fresh process starts from this fixture.
type SeedConfig struct {
	DemoData   bool   `env:"SEED_DEMO_DATA" envDefault:"true"`
	AdminEmail string `env:"SEED_ADMIN_EMAIL" envDefault:"admin@nexus.com"`
	AdminName  string `env:"SEED_ADMIN_NAME" envDefault:"Admin User"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
