package validator_test

import (
	"path"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/annotations/pkg/validator"
)

// pathLike generates short strings built from path fragments so that "..",
// separators, drive prefixes and links show up often.
func pathLike() gopter.Gen {
	return gen.RegexMatch(`(\.\.|\.|/|\\|[a-z]{1,3}|[A-Z]:|http:|https:|:){0,8}`)
}

func newProperties() *gopter.Properties {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	return gopter.NewProperties(parameters)
}

func TestPathPredicates_Properties(t *testing.T) {
	properties := newProperties()

	properties.Property("child path iff no double dot", prop.ForAll(
		func(s string) bool {
			return validator.IsChildPath(s) == !strings.Contains(s, "..")
		},
		pathLike(),
	))

	properties.Property("child path iff no double dot for arbitrary text", prop.ForAll(
		func(s string) bool {
			return validator.IsChildPath(s) == !strings.Contains(s, "..")
		},
		gen.AnyString(),
	))

	properties.Property("not http link iff no http:", prop.ForAll(
		func(s string) bool {
			return validator.HasNoHTTPLink(s) == !strings.Contains(s, "http:")
		},
		pathLike(),
	))

	properties.Property("relative iff not absolute for slash paths", prop.ForAll(
		func(s string) bool {
			return validator.IsRelativePath(s) == !path.IsAbs(s)
		},
		gen.RegexMatch(`(\.\.|\.|/|[a-z]{1,3}){0,8}`),
	))

	properties.Property("rooted prefixes are never relative", prop.ForAll(
		func(prefix, rest string) bool {
			return !validator.IsRelativePath(prefix + rest)
		},
		gen.OneConstOf("/", `\`, "C:", "z:"),
		pathLike(),
	))

	properties.TestingRun(t)
}

func TestCharacterPredicates_Properties(t *testing.T) {
	properties := newProperties()

	properties.Property("digit iff text contains 0-9", prop.ForAll(
		func(s string) bool {
			return validator.HasDigit(s) == strings.ContainsAny(s, "0123456789")
		},
		gen.AnyString(),
	))

	properties.Property("integers always contain a digit", prop.ForAll(
		func(n int64) bool {
			return validator.HasDigit(n)
		},
		gen.Int64(),
	))

	properties.Property("uppercase iff text contains A-Z", prop.ForAll(
		func(s string) bool {
			return validator.HasUppercase(s) == strings.ContainsAny(s, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
		},
		gen.AnyString(),
	))

	properties.Property("appending a symbol satisfies non-alphanumeric", prop.ForAll(
		func(s string) bool {
			return validator.EndsWithNonAlphanumeric(s + "!")
		},
		gen.AlphaString(),
	))

	properties.Property("alphanumeric text never satisfies non-alphanumeric", prop.ForAll(
		func(s string) bool {
			return !validator.EndsWithNonAlphanumeric(s)
		},
		gen.RegexMatch(`[a-zA-Z0-9]{0,16}`),
	))

	properties.TestingRun(t)
}

func TestNilIsInvalid(t *testing.T) {
	rules := map[string]validator.Rule{
		"minimum time span":        validator.MinimumTimeSpan("f", nil, 0),
		"one or more digits":       validator.OneOrMoreDigits("f", nil),
		"one or more uppercase":    validator.OneOrMoreUppercase("f", nil),
		"one or more non-alphanum": validator.OneOrMoreNonAlphanumeric("f", nil),
		"over 18":                  validator.Over18Required("f", nil),
		"child path only":          validator.ChildPathOnly("f", nil),
		"relative path only":       validator.RelativePathOnly("f", nil),
		"not http link":            validator.NotHTTPLink("f", nil),
	}

	for name, rule := range rules {
		t.Run(name, func(t *testing.T) {
			assert.False(t, rule.Check())
		})
	}
}
