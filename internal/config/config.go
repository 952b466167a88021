package config

import (
	"fmt"
	"time"

	"github.com/kelseyhightower/envconfig"

	"github.com/MrJamesThe3rd/pocket/internal/session"
)

type Config struct {
	App struct {
		Name string `envconfig:"APP_NAME" default:"Pocket"`
		Port int    `envconfig:"PORT" default:"8080"`
	}

	DB struct {
		Host     string `envconfig:"DB_HOST" default:"localhost"`
		Port     int    `envconfig:"DB_PORT" default:"5432"`
		User     string `envconfig:"DB_USER" default:"postgres"`
		Password string `envconfig:"DB_PASSWORD" default:""`
		Name     string `envconfig:"DB_NAME" default:"pocket"`
	}

	Server struct {
		Timeout time.Duration `envconfig:"SERVER_TIMEOUT" default:"30s"`
	}

	Session struct {
		Mode   session.Mode  `envconfig:"SESSION_MODE" default:"plain"`
		Secret string        `envconfig:"SESSION_SECRET"`
		// Cookie lifetime. Clients rely on the 7-day default; override only for tests.
		MaxAge time.Duration `envconfig:"SESSION_MAX_AGE" default:"168h"`
		Secure bool          `envconfig:"SESSION_SECURE" default:"false"`
	}

	CORS struct {
		AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:3000"`
	}

	TUI struct {
		// Session the terminal client reads and writes. Empty starts a new one.
		SessionID string `envconfig:"TUI_SESSION_ID"`
	}
}

func (c *Config) ConnectionString() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.DB.User, c.DB.Password, c.DB.Host, c.DB.Port, c.DB.Name)
}

func (c *Config) SessionOptions() session.Options {
	return session.Options{
		Mode:   c.Session.Mode,
		Secret: c.Session.Secret,
		MaxAge: c.Session.MaxAge,
		Secure: c.Session.Secure,
	}
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	return &cfg, nil
}
