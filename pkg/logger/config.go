package logger

import (
	"log/slog"
	"strings"

	"github.com/dmitrymomot/annotations/pkg/config"
)

// Config is the environment-driven logger setup.
type Config struct {
	Level   string `env:"LEVEL" envDefault:"info"`
	Format  string `env:"FORMAT" envDefault:"json"`
	Service string `env:"SERVICE"`
}

// LoadConfig reads Config from LOG_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix("LOG_")); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseLevel maps debug, info, warn (or warning) and error to slog levels.
func ParseLevel(s string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	}
	return 0, false
}
