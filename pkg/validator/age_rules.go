package validator

import (
	"strings"
	"time"

	"golang.org/x/text/language"
)

// AgeOption configures the date rules.
type AgeOption func(*ageConfig)

type ageConfig struct {
	now    func() time.Time
	locale language.Tag
}

func defaultAgeConfig() *ageConfig {
	return &ageConfig{
		now:    time.Now,
		locale: language.AmericanEnglish,
	}
}

// WithClock overrides the source of "today". Nil is ignored.
func WithClock(now func() time.Time) AgeOption {
	return func(c *ageConfig) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocale sets the locale that decides how ambiguous numeric dates such as
// "03/04/2005" are read. Region-less tags use their most likely region, so
// "en" reads month first and "de" reads day first.
func WithLocale(tag language.Tag) AgeOption {
	return func(c *ageConfig) {
		if tag != language.Und {
			c.locale = tag
		}
	}
}

var (
	isoLayouts = []string{
		"2006-01-02",
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.999999999 -0700 MST",
		"2006/1/2",
	}
	monthFirstLayouts = []string{
		"1/2/2006",
		"1/2/2006 15:04:05",
		"1/2/2006 3:04:05 PM",
		"1-2-2006",
	}
	dayFirstLayouts = []string{
		"2/1/2006",
		"2/1/2006 15:04:05",
		"2.1.2006",
		"2.1.2006 15:04:05",
		"2-1-2006",
	}
	namedMonthLayouts = []string{
		"January 2, 2006",
		"Jan 2, 2006",
		"Monday, January 2, 2006",
		"2 January 2006",
		"2 Jan 2006",
	}

	// Regions that write numeric dates month first.
	monthFirstRegions = map[string]struct{}{
		"US": {}, "PH": {}, "FM": {}, "MH": {}, "PW": {},
		"AS": {}, "GU": {}, "MP": {}, "PR": {}, "UM": {}, "VI": {},
	}
)

func dateLayouts(tag language.Tag) []string {
	region, _ := tag.Region()
	numeric := dayFirstLayouts
	if _, ok := monthFirstRegions[region.String()]; ok {
		numeric = monthFirstLayouts
	}

	layouts := make([]string, 0, len(isoLayouts)+len(numeric)+len(namedMonthLayouts))
	layouts = append(layouts, isoLayouts...)
	layouts = append(layouts, numeric...)
	return append(layouts, namedMonthLayouts...)
}

// ParseDate reads v as a calendar date. time.Time values keep their wall
// clock but move to loc, so a birthday stored at UTC midnight stays on the
// same day. Text is tried against ISO layouts, then the numeric order of
// the locale, then month-name layouts. Times without a zone are read in loc.
func ParseDate(v any, tag language.Tag, loc *time.Location) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return inLocation(t, loc), true
	case *time.Time:
		if t == nil {
			return time.Time{}, false
		}
		return inLocation(*t, loc), true
	}

	if isNil(v) {
		return time.Time{}, false
	}
	s := strings.TrimSpace(Text(v))
	if s == "" {
		return time.Time{}, false
	}

	for _, layout := range dateLayouts(tag) {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func inLocation(t time.Time, loc *time.Location) time.Time {
	if loc == nil {
		return t
	}
	return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), loc)
}

// yearsAgo returns midnight of the date that is years before now. A Feb 29
// that does not exist in the target year becomes Feb 28.
func yearsAgo(now time.Time, years int) time.Time {
	y, m, d := now.Date()
	y -= years
	if last := time.Date(y, m+1, 0, 0, 0, 0, 0, now.Location()).Day(); d > last {
		d = last
	}
	return time.Date(y, m, d, 0, 0, 0, 0, now.Location())
}

// IsOlderThan reports whether v parses as a date on or before the same day
// years ago. Nil and unparseable values are never valid.
func IsOlderThan(v any, years int, opts ...AgeOption) bool {
	cfg := defaultAgeConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	now := cfg.now()
	date, ok := ParseDate(v, cfg.locale, now.Location())
	if !ok {
		return false
	}
	return !date.After(yearsAgo(now, years))
}

// Over18Required validates that value is a date at least 18 years in the past.
func Over18Required(field string, value any, opts ...AgeOption) Rule {
	return newRule(field, KeyOver18Required, func() bool {
		return IsOlderThan(value, 18, opts...)
	}, nil)
}

// MinimumAge validates that value is a date at least years in the past.
func MinimumAge(field string, value any, years int, opts ...AgeOption) Rule {
	return newRule(field, KeyMinimumAge, func() bool {
		return IsOlderThan(value, years, opts...)
	}, map[string]any{
		"years": years,
	})
}
