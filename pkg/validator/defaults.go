package validator

import (
	"fmt"

	"golang.org/x/text/language"

	"github.com/dmitrymomot/annotations/pkg/config"
)

// Defaults holds deployment-wide settings for the date rules.
type Defaults struct {
	MinimumAge int    `env:"MINIMUM_AGE" envDefault:"18"`
	Locale     string `env:"LOCALE" envDefault:"en-US"`
}

// LoadDefaults reads Defaults from VALIDATOR_* environment variables.
func LoadDefaults() (Defaults, error) {
	var d Defaults
	if err := config.Load(&d, config.WithPrefix("VALIDATOR_")); err != nil {
		return Defaults{}, err
	}
	if d.MinimumAge < 0 {
		return Defaults{}, fmt.Errorf("%w: negative minimum age %d", ErrInvalidRuleConfig, d.MinimumAge)
	}
	if _, err := language.Parse(d.Locale); err != nil {
		return Defaults{}, fmt.Errorf("%w: locale %q: %w", ErrInvalidRuleConfig, d.Locale, err)
	}
	return d, nil
}

// AgeOptions converts the defaults into options for the date rules.
func (d Defaults) AgeOptions() []AgeOption {
	tag, err := language.Parse(d.Locale)
	if err != nil {
		return nil
	}
	return []AgeOption{WithLocale(tag)}
}

// MinimumAgeRule applies the configured minimum age to value.
func (d Defaults) MinimumAgeRule(field string, value any, opts ...AgeOption) Rule {
	opts = append(d.AgeOptions(), opts...)
	if d.MinimumAge == 18 {
		return Over18Required(field, value, opts...)
	}
	return MinimumAge(field, value, d.MinimumAge, opts...)
}
