package validator

import (
	"regexp"
	"slices"
)

// Translation keys for every rule in the package.
const (
	KeyChildPathOnly            = "validation.child_path_only"
	KeyRelativePathOnly         = "validation.relative_path_only"
	KeyNotHTTPLink              = "validation.not_http_link"
	KeyMinimumTimeSpan          = "validation.minimum_time_span"
	KeyOneOrMoreDigits          = "validation.one_or_more_digits"
	KeyOneOrMoreUppercase       = "validation.one_or_more_uppercase"
	KeyOneOrMoreNonAlphanumeric = "validation.one_or_more_non_alphanumeric"
	KeyOver18Required           = "validation.over_18_required"
	KeyMinimumAge               = "validation.minimum_age"
	KeyRequiredWhen             = "validation.required_when"
	KeyRequiredWhenFalse        = "validation.required_when_false"
)

// messages is the built-in English catalog. The same keys and placeholders
// are used by the i18n locale files.
var messages = map[string]string{
	KeyChildPathOnly:            "'%{field}' must point to a child folder.",
	KeyRelativePathOnly:         "'%{field}' must contain a relative path.",
	KeyNotHTTPLink:              "'%{field}' must not contain an HTTP link.",
	KeyMinimumTimeSpan:          "'%{field}' must contain a value of at least '%{min}'.",
	KeyOneOrMoreDigits:          "'%{field}' must have at least one digit ('0'-'9').",
	KeyOneOrMoreUppercase:       "'%{field}' must have at least one uppercase ('A'-'Z').",
	KeyOneOrMoreNonAlphanumeric: "'%{field}' must have at least one non alphanumeric character.",
	KeyOver18Required:           "'%{field}' date must be at least 18 years ago.",
	KeyMinimumAge:               "'%{field}' date must be at least %{years} years ago.",
	KeyRequiredWhen:             "%{field} is required when %{other} is true!",
	KeyRequiredWhenFalse:        "%{field} is required when %{other} is false!",
}

var placeholderRegex = regexp.MustCompile(`%\{([^}]+)\}`)

// FormatMessage renders the English message for key, substituting %{name}
// placeholders from values. Placeholders without a value are left as is and
// an unknown key renders as the key itself.
//
//	validator.FormatMessage(validator.KeyChildPathOnly, map[string]any{"field": "Folder"})
//	// 'Folder' must point to a child folder.
func FormatMessage(key string, values map[string]any) string {
	tmpl, ok := messages[key]
	if !ok {
		tmpl = key
	}
	return Interpolate(tmpl, values)
}

// Interpolate substitutes %{name} placeholders in tmpl with the text
// rendering of values[name].
func Interpolate(tmpl string, values map[string]any) string {
	return placeholderRegex.ReplaceAllStringFunc(tmpl, func(match string) string {
		name := match[2 : len(match)-1]
		if v, ok := values[name]; ok {
			return Text(v)
		}
		return match
	})
}

// MessageKeys returns every translation key the package can report, sorted.
func MessageKeys() []string {
	keys := make([]string, 0, len(messages))
	for k := range messages {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
