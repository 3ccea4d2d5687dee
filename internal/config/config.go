package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters loaded from the
// environment. A .env file, if present, is loaded by main beforehand.
type Config struct {
	ServerPort     string `env:"SERVER_PORT" envDefault:"8080"`
	JWTSecret      string `env:"JWT_SECRET_KEY"`
	JWTExpiryHours int64  `env:"JWT_EXPIRATION_HOURS" envDefault:"1"`
	DB             DB     `envPrefix:"DB_"`
}

// DB contains database connection parameters.
type DB struct {
	Host     string `env:"HOST" envDefault:"localhost"`
	Port     string `env:"PORT" envDefault:"5432"`
	User     string `env:"USER" envDefault:"dochouse"`
	Password string `env:"PASSWORD"`
	Name     string `env:"NAME" envDefault:"dochouse"`
}

// DSN builds the connection string for the configured database.
func (d DB) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		d.Host, d.Port, d.User, d.Password, d.Name)
}

// Load parses configuration from environment variables. A missing JWT
// secret is a fatal condition: the token service cannot run without it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET_KEY not set in environment")
	}
	return cfg, nil
}
