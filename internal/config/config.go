package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config contains runtime configuration required by the service.
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Addr            string        `env:"HTTP_ADDR"               env-default:":8080"`
	ReadTimeout     time.Duration `env:"SERVER_READ_TIMEOUT"     env-default:"10s"`
	WriteTimeout    time.Duration `env:"SERVER_WRITE_TIMEOUT"    env-default:"30s"`
	IdleTimeout     time.Duration `env:"SERVER_IDLE_TIMEOUT"     env-default:"60s"`
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" env-default:"10s"`
}

// DatabaseConfig selects the persistence driver. "memory" keeps everything
// in process and loses state on restart; it exists for development only.
type DatabaseConfig struct {
	Driver string `env:"STORE_DRIVER" env-default:"postgres"`
	URL    string `env:"DATABASE_URL"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `env:"LOG_LEVEL"  env-default:"info"`
	Format string `env:"LOG_FORMAT" env-default:"json"`
}

// Load reads configuration from environment variables and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: validate: %w", err)
	}
	return cfg, nil
}

// Validate checks driver-dependent requirements.
func (c Config) Validate() error {
	switch c.Database.Driver {
	case "postgres":
		if strings.TrimSpace(c.Database.URL) == "" {
			return fmt.Errorf("DATABASE_URL required for the postgres store driver")
		}
	case "memory":
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q (want postgres or memory)", c.Database.Driver)
	}
	return nil
}
