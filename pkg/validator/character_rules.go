package validator

import "regexp"

var (
	digitRegex = regexp.MustCompile(`\d+`)
	upperRegex = regexp.MustCompile(`(?s)^.*[A-Z].*$`)
	// End-anchored: "ab!" matches, "a!b" does not.
	trailingNonAlnumRegex = regexp.MustCompile(`[^a-zA-Z0-9]+$`)
)

// HasDigit reports whether the text rendering of v contains an ASCII digit
// '0' to '9'. Other Unicode decimal digits such as '٣' do not count.
// Nil is never valid.
func HasDigit(v any) bool {
	if isNil(v) {
		return false
	}
	return digitRegex.MatchString(Text(v))
}

// HasUppercase reports whether the text rendering of v contains an
// uppercase ASCII letter. Nil is never valid.
func HasUppercase(v any) bool {
	if isNil(v) {
		return false
	}
	return upperRegex.MatchString(Text(v))
}

// EndsWithNonAlphanumeric reports whether the text rendering of v ends with
// one or more characters outside [a-zA-Z0-9]. Nil is never valid.
func EndsWithNonAlphanumeric(v any) bool {
	if isNil(v) {
		return false
	}
	return trailingNonAlnumRegex.MatchString(Text(v))
}

func OneOrMoreDigits(field string, value any) Rule {
	return newRule(field, KeyOneOrMoreDigits, func() bool {
		return HasDigit(value)
	}, nil)
}

func OneOrMoreUppercase(field string, value any) Rule {
	return newRule(field, KeyOneOrMoreUppercase, func() bool {
		return HasUppercase(value)
	}, nil)
}

// OneOrMoreNonAlphanumeric validates that value ends with a non-alphanumeric
// character. Symbols elsewhere in the value do not count.
func OneOrMoreNonAlphanumeric(field string, value any) Rule {
	return newRule(field, KeyOneOrMoreNonAlphanumeric, func() bool {
		return EndsWithNonAlphanumeric(value)
	}, nil)
}
