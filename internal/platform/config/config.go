package config

import (
	"fmt"
	"log/slog"
	"net"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv    string `env:"APP_ENV" default:"development"`
	Port      string `env:"PORT" default:"8080"`
	DataDir   string `env:"DATA_DIR" default:"."`
	HostIP    string `env:"HOST_IP"`
	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	StatsCacheTTL time.Duration `env:"STATS_CACHE_TTL" default:"2s"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	port, err := strconv.Atoi(cfg.Port)
	if err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("PORT must be a valid port number, got %q", cfg.Port)
	}

	if cfg.HostIP != "" && net.ParseIP(cfg.HostIP) == nil {
		return fmt.Errorf("HOST_IP must be a valid IP address, got %q", cfg.HostIP)
	}

	if cfg.DataDir == "" {
		return fmt.Errorf("DATA_DIR is required")
	}

	if cfg.StatsCacheTTL <= 0 {
		return fmt.Errorf("STATS_CACHE_TTL must be positive, got %s", cfg.StatsCacheTTL)
	}

	return nil
}
