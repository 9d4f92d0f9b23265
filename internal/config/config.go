package config

import (
	"fmt"
	"net/url"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
)

type Config struct {
	Host     string `env:"HOST" envDefault:"0.0.0.0"`
	Port     string `env:"PORT" envDefault:"8080"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	JWTSecret string        `env:"JWT_SECRET,required"`
	TokenTTL  time.Duration `env:"TOKEN_TTL" envDefault:"24h"`

	Database struct {
		URL      string `env:"DATABASE_URL"`
		Host     string `env:"DB_HOST" envDefault:"localhost:27017"`
		Name     string `env:"DB_NAME" envDefault:"users"`
		Username string `env:"DB_USER"`
		Password string `env:"DB_PASSWORD"`
	}
}

// Load reads configuration from the environment, loading a .env file first
// when one is present in the working directory.
func Load() (*Config, error) {
	if _, err := os.Stat(".env"); !os.IsNotExist(err) {
		if err := godotenv.Load(); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config from environment: %w", err)
	}

	return cfg, nil
}

// Addr returns the host:port the HTTP server listens on.
func (c *Config) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// DatabaseURL returns DATABASE_URL verbatim when set, otherwise a mongodb://
// connection string assembled from the individual DB_* variables.
func (c *Config) DatabaseURL() string {
	if c.Database.URL != "" {
		return c.Database.URL
	}

	if c.Database.Username == "" {
		return fmt.Sprintf("mongodb://%s/%s", c.Database.Host, c.Database.Name)
	}

	return fmt.Sprintf(
		"mongodb://%s:%s@%s/%s?authSource=admin",
		url.QueryEscape(c.Database.Username),
		url.QueryEscape(c.Database.Password),
		c.Database.Host,
		c.Database.Name,
	)
}
