package config

import (
	"errors"
	"io/fs"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Option configures Load.
type Option func(*options)

type options struct {
	prefix   string
	envFiles []string
}

// WithPrefix prepends prefix to every env tag, e.g. "I18N_" turns
// `env:"DEFAULT_LANGUAGE"` into I18N_DEFAULT_LANGUAGE.
func WithPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithEnvFiles loads the given .env files before parsing instead of the
// default ".env". Files that do not exist are skipped. Variables already
// present in the process environment are never overwritten.
func WithEnvFiles(files ...string) Option {
	return func(o *options) {
		if len(files) > 0 {
			o.envFiles = files
		}
	}
}

// Load populates v from environment variables according to its `env` and
// `envDefault` struct tags.
//
// Example:
//
//	type TranslatorConfig struct {
//		DefaultLanguage string `env:"DEFAULT_LANGUAGE" envDefault:"en"`
//		Dir             string `env:"DIR"`
//	}
//
//	var cfg TranslatorConfig
//	if err := config.Load(&cfg, config.WithPrefix("I18N_")); err != nil {
//		// handle error
//	}
func Load[T any](v *T, opts ...Option) error {
	if v == nil {
		return ErrNilPointer
	}

	o := &options{envFiles: []string{".env"}}
	for _, opt := range opts {
		opt(o)
	}

	if err := loadEnvFiles(o.envFiles); err != nil {
		return err
	}

	if err := env.ParseWithOptions(v, env.Options{Prefix: o.prefix}); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad works like Load but panics on failure.
func MustLoad[T any](v *T, opts ...Option) {
	if err := Load(v, opts...); err != nil {
		panic(err)
	}
}

func loadEnvFiles(files []string) error {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return errors.Join(ErrLoadingEnvFile, err)
		}
	}
	return nil
}
