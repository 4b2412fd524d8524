// Package config loads settings for the rule packages from environment
// variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// optional `.env` files are read first (missing files are skipped and
// existing process variables win), then the environment is parsed into a
// struct using `env` and `envDefault` field tags.
//
// # Usage
//
//	type Defaults struct {
//	    MinimumAge int    `env:"MINIMUM_AGE" envDefault:"18"`
//	    Locale     string `env:"LOCALE" envDefault:"en-US"`
//	}
//
//	var d Defaults
//	if err := config.Load(&d, config.WithPrefix("VALIDATOR_")); err != nil {
//	    log.Fatalf("loading defaults: %v", err)
//	}
//
// # Error Handling
//
// Sentinel errors can be compared with `errors.Is`:
//
//   - `ErrParsingConfig`  – failed to parse env vars into struct.
//   - `ErrLoadingEnvFile` – an existing .env file could not be read.
//   - `ErrNilPointer`     – nil pointer passed to `Load`/`MustLoad`.
package config
