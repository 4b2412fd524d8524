package validator

import (
	"reflect"
	"strings"
)

// RequiredWhenOption configures a conditional requirement.
type RequiredWhenOption func(*Condition)

// Invert makes the field required while the sibling is false instead of true.
func Invert() RequiredWhenOption {
	return func(c *Condition) { c.invert = true }
}

// AllowEmptyStrings accepts empty and whitespace-only strings even when the
// condition holds.
func AllowEmptyStrings() RequiredWhenOption {
	return func(c *Condition) { c.allowEmpty = true }
}

// WithOtherDisplayName overrides the label used for the sibling in messages.
func WithOtherDisplayName(name string) RequiredWhenOption {
	return func(c *Condition) {
		if name != "" {
			c.otherLabel = name
		}
	}
}

// Condition is a conditional requirement bound to a resolved bool sibling
// field. It holds no per-call state and may be shared between goroutines as
// long as the sibling getter is safe to call concurrently.
type Condition struct {
	other      Field
	otherLabel string
	invert     bool
	allowEmpty bool
}

var boolType = reflect.TypeOf(false)

// BindRequiredWhen resolves the sibling field other on record. It returns a
// *ConfigError wrapping ErrFieldNotFound, ErrFieldNotBoolean or
// ErrFieldNotReadable when the sibling cannot drive the condition.
func BindRequiredWhen(record FieldAccessor, other string, opts ...RequiredWhenOption) (*Condition, error) {
	if record == nil {
		return nil, &ConfigError{Field: other, Err: ErrFieldNotFound}
	}

	f, ok := record.Field(other)
	if !ok {
		return nil, &ConfigError{Field: other, Err: ErrFieldNotFound}
	}
	if f.Type != boolType {
		return nil, &ConfigError{Field: other, Err: ErrFieldNotBoolean}
	}
	if f.Get == nil {
		return nil, &ConfigError{Field: other, Err: ErrFieldNotReadable}
	}

	c := &Condition{other: f}
	for _, opt := range opts {
		opt(c)
	}
	if c.otherLabel == "" {
		c.otherLabel = f.Label()
	}
	return c, nil
}

// Active reports whether the requirement applies right now: the sibling is
// true, or false when inverted.
func (c *Condition) Active() bool {
	b, ok := c.other.Get().(bool)
	return ok && b != c.invert
}

// Satisfied reports whether value meets the requirement. While the condition
// is active, a string or *string that is nil, empty or only whitespace fails
// unless empty strings are allowed. Other values always pass.
func (c *Condition) Satisfied(value any) bool {
	if !c.Active() || c.allowEmpty {
		return true
	}
	switch s := value.(type) {
	case string:
		return strings.TrimSpace(s) != ""
	case *string:
		return s != nil && strings.TrimSpace(*s) != ""
	}
	return true
}

// Rule binds value of field to the condition.
func (c *Condition) Rule(field string, value any) Rule {
	key := KeyRequiredWhen
	if c.invert {
		key = KeyRequiredWhenFalse
	}
	return newRule(field, key, func() bool {
		return c.Satisfied(value)
	}, map[string]any{
		"other": c.otherLabel,
	})
}

// RequiredWhen binds the sibling other on record and returns the rule for
// value in one step. Configuration problems are returned as the error and
// never as a failing rule.
func RequiredWhen(field string, value any, record FieldAccessor, other string, opts ...RequiredWhenOption) (Rule, error) {
	c, err := BindRequiredWhen(record, other, opts...)
	if err != nil {
		return Rule{}, err
	}
	return c.Rule(field, value), nil
}
