package validator

import (
	"errors"
	"fmt"
)

var (
	// ErrValidationFailed matches any ValidationErrors through errors.Is.
	ErrValidationFailed = errors.New("validation failed")

	// ErrInvalidRuleConfig marks mistakes in how a rule was declared, as opposed
	// to data that failed a rule.
	ErrInvalidRuleConfig = errors.New("invalid rule configuration")

	// ErrFieldNotFound is returned when a referenced sibling field does not exist on the record.
	ErrFieldNotFound = errors.New("field was not found")

	// ErrFieldNotBoolean is returned when a referenced sibling field is not a bool.
	ErrFieldNotBoolean = errors.New("field must be a boolean type")

	// ErrFieldNotReadable is returned when a referenced sibling field has no getter.
	ErrFieldNotReadable = errors.New("field must be readable")
)

// ConfigError reports a misdeclared rule: the sibling field Field could not
// be used for the reason in Err.
type ConfigError struct {
	Field string
	Err   error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("field %q: %v", e.Field, e.Err)
}

func (e *ConfigError) Unwrap() []error {
	return []error{ErrInvalidRuleConfig, e.Err}
}

// IsConfigError reports whether err was caused by a misdeclared rule.
func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidRuleConfig)
}
