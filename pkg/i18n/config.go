package i18n

import (
	"context"

	"github.com/dmitrymomot/annotations/pkg/config"
	"github.com/dmitrymomot/annotations/pkg/logger"
)

// Config selects the catalogs and behavior of a translator built with
// NewFromConfig.
type Config struct {
	DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
	// Dir holds extra catalog files layered over the built-in ones.
	Dir        string `env:"DIR"`
	LogMissing bool   `env:"LOG_MISSING" envDefault:"false"`
	// Log configures the translator's logger (I18N_LOG_LEVEL, I18N_LOG_FORMAT,
	// I18N_LOG_SERVICE).
	Log logger.Config `envPrefix:"LOG_"`
}

// LoadConfig reads Config from I18N_* environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := config.Load(&cfg, config.WithPrefix("I18N_")); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// NewFromConfig builds a translator over the built-in catalogs plus the
// files in cfg.Dir, if set. It logs to stdout as set by cfg.Log. Options
// are applied after the ones derived from cfg, so WithLogger replaces the
// configured logger.
func NewFromConfig(ctx context.Context, cfg Config, options ...Option) (*Translator, error) {
	layers := LayeredAdapter{DefaultAdapter()}
	if cfg.Dir != "" {
		layers = append(layers, NewDirectoryAdapter(nil, cfg.Dir))
	}

	opts := []Option{
		WithDefaultLanguage(cfg.DefaultLanguage),
		WithLogger(logger.New(logger.WithConfig(cfg.Log))),
		WithMissingTranslationsLogging(cfg.LogMissing),
	}
	return NewTranslator(ctx, layers, append(opts, options...)...)
}
