package config

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	Env            string        `env:"APP_ENV" env-default:"local" env-description:"local enables the pretty log handler"`
	LogLevel       string        `env:"LOG_LEVEL" env-default:"info"`
	APIBaseURL     string        `env:"API_BASE_URL" env-default:"http://localhost:8000" env-description:"poll backend base url"`
	PollInterval   time.Duration `env:"POLL_INTERVAL" env-default:"3s"`
	BackendTimeout time.Duration `env:"BACKEND_TIMEOUT" env-default:"0s" env-description:"0 keeps the transport default"`
	UIAddr         string        `env:"UI_ADDR" env-default:"0.0.0.0:3000"`
	AllowedOrigins []string      `env:"UI_ALLOWED_ORIGINS" env-default:"http://localhost:3000" env-separator:","`
}

// Load reads the optional env files (".env" when none are given) and then the
// process environment. Variables already set in the environment win.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load env file: %w", err)
	}

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) validate() error {
	u, err := url.Parse(c.APIBaseURL)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return fmt.Errorf("API_BASE_URL must be an absolute http(s) url, got %q", c.APIBaseURL)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("POLL_INTERVAL must be positive, got %s", c.PollInterval)
	}
	if c.BackendTimeout < 0 {
		return fmt.Errorf("BACKEND_TIMEOUT must not be negative, got %s", c.BackendTimeout)
	}
	if c.UIAddr == "" {
		return errors.New("UI_ADDR is required")
	}
	return nil
}
