package validator

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

const day = 24 * time.Hour

var (
	spanRegex     = regexp.MustCompile(`^(-)?(?:(\d+)\.)?(\d{1,2}):(\d{1,2})(?::(\d{1,2})(?:\.(\d{1,7}))?)?$`)
	spanDaysRegex = regexp.MustCompile(`^(-)?(\d+)$`)
)

// ToDuration converts v to a time.Duration. It accepts time.Duration,
// *time.Duration, and strings in either Go duration syntax ("4h30m") or
// span syntax ("[-][d.]hh:mm[:ss[.fffffff]]", e.g. "04:00:00" or
// "1.02:30:00"). Any other value reports false.
func ToDuration(v any) (time.Duration, bool) {
	switch d := v.(type) {
	case time.Duration:
		return d, true
	case *time.Duration:
		if d == nil {
			return 0, false
		}
		return *d, true
	}

	s, ok := asString(v)
	if !ok {
		return 0, false
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if d, err := time.ParseDuration(s); err == nil {
		return d, true
	}
	return parseSpan(s)
}

func parseSpan(s string) (time.Duration, bool) {
	if m := spanDaysRegex.FindStringSubmatch(s); m != nil {
		days, err := strconv.ParseInt(m[2], 10, 64)
		if err != nil || days > int64(maxDuration/day) {
			return 0, false
		}
		d := time.Duration(days) * day
		if m[1] == "-" {
			d = -d
		}
		return d, true
	}

	m := spanRegex.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}

	var days int64
	if m[2] != "" {
		var err error
		days, err = strconv.ParseInt(m[2], 10, 64)
		if err != nil || days > int64(maxDuration/day) {
			return 0, false
		}
	}
	hours, _ := strconv.Atoi(m[3])
	minutes, _ := strconv.Atoi(m[4])
	seconds := 0
	if m[5] != "" {
		seconds, _ = strconv.Atoi(m[5])
	}
	if hours > 23 || minutes > 59 || seconds > 59 {
		return 0, false
	}

	var fraction time.Duration
	if m[6] != "" {
		// Right-pad to 9 digits so the fraction reads as nanoseconds.
		ns, _ := strconv.Atoi(m[6] + strings.Repeat("0", 9-len(m[6])))
		fraction = time.Duration(ns)
	}

	d := time.Duration(days)*day +
		time.Duration(hours)*time.Hour +
		time.Duration(minutes)*time.Minute +
		time.Duration(seconds)*time.Second +
		fraction
	if d < 0 {
		return 0, false
	}
	if m[1] == "-" {
		d = -d
	}
	return d, true
}

const maxDuration = time.Duration(1<<63 - 1)

// FormatSpan renders d in span syntax: "hh:mm:ss", prefixed with "d." when
// it spans whole days and suffixed with a 7-digit fraction when it has
// sub-second precision.
func FormatSpan(d time.Duration) string {
	var b strings.Builder
	if d < 0 {
		b.WriteByte('-')
		d = -d
	}

	days := d / day
	d -= days * day
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	d -= minutes * time.Minute
	seconds := d / time.Second
	d -= seconds * time.Second

	if days > 0 {
		fmt.Fprintf(&b, "%d.", days)
	}
	fmt.Fprintf(&b, "%02d:%02d:%02d", hours, minutes, seconds)
	if ticks := d / 100; ticks > 0 {
		fmt.Fprintf(&b, ".%07d", ticks)
	}
	return b.String()
}

// IsAtLeastDuration reports whether v converts to a duration of at least min.
// Nil and values that cannot be converted are never valid.
func IsAtLeastDuration(v any, min time.Duration) bool {
	d, ok := ToDuration(v)
	return ok && d >= min
}

// MinimumTimeSpan validates that value is a duration of at least min.
func MinimumTimeSpan(field string, value any, min time.Duration) Rule {
	return newRule(field, KeyMinimumTimeSpan, func() bool {
		return IsAtLeastDuration(value, min)
	}, map[string]any{
		"min": FormatSpan(min),
	})
}
