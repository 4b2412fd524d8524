package validator_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/annotations/pkg/validator"
)

func TestMinimumTimeSpan(t *testing.T) {
	t.Run("passes above minimum", func(t *testing.T) {
		rule := validator.MinimumTimeSpan("Timeout", 5*time.Hour, 4*time.Hour)
		assert.True(t, rule.Check())
		assert.Equal(t, "'Timeout' must contain a value of at least '04:00:00'.", rule.Error.Message)
		assert.Equal(t, "validation.minimum_time_span", rule.Error.TranslationKey)
		assert.Equal(t, map[string]any{"field": "Timeout", "min": "04:00:00"}, rule.Error.TranslationValues)
	})

	t.Run("fails below minimum", func(t *testing.T) {
		assert.False(t, validator.MinimumTimeSpan("Timeout", 3*time.Hour, 4*time.Hour).Check())
	})

	t.Run("passes at minimum", func(t *testing.T) {
		assert.True(t, validator.MinimumTimeSpan("Timeout", 4*time.Hour, 4*time.Hour).Check())
	})

	t.Run("fails for nil", func(t *testing.T) {
		var d *time.Duration
		assert.False(t, validator.MinimumTimeSpan("Timeout", nil, 0).Check())
		assert.False(t, validator.MinimumTimeSpan("Timeout", d, 0).Check())
	})

	t.Run("accepts duration pointer", func(t *testing.T) {
		d := 90 * time.Minute
		assert.True(t, validator.MinimumTimeSpan("Timeout", &d, time.Hour).Check())
	})

	t.Run("accepts text durations", func(t *testing.T) {
		assert.True(t, validator.MinimumTimeSpan("Timeout", "4h30m", 4*time.Hour).Check())
		assert.True(t, validator.MinimumTimeSpan("Timeout", "05:00:00", 4*time.Hour).Check())
		assert.False(t, validator.MinimumTimeSpan("Timeout", "03:59:59", 4*time.Hour).Check())
	})

	t.Run("fails for unconvertible values", func(t *testing.T) {
		assert.False(t, validator.MinimumTimeSpan("Timeout", "soon", 0).Check())
		assert.False(t, validator.MinimumTimeSpan("Timeout", 3600, 0).Check())
		assert.False(t, validator.MinimumTimeSpan("Timeout", "", 0).Check())
	})
}

func TestToDuration(t *testing.T) {
	tests := []struct {
		in   string
		want time.Duration
	}{
		{"1h", time.Hour},
		{"-15m", -15 * time.Minute},
		{"0", 0},
		{"04:00", 4 * time.Hour},
		{"04:00:30", 4*time.Hour + 30*time.Second},
		{"1.02:00:00", 26 * time.Hour},
		{"-00:30:00", -30 * time.Minute},
		{"00:00:01.5", 1500 * time.Millisecond},
		{"00:00:00.0000001", 100 * time.Nanosecond},
		{"3", 72 * time.Hour},
		{"  02:00:00  ", 2 * time.Hour},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := validator.ToDuration(tt.in)
			require.True(t, ok)
			assert.Equal(t, tt.want, got)
		})
	}

	for _, bad := range []string{"24:00:00", "10:60", "1:2:3:4", "abc", "1.5.00:00"} {
		t.Run("rejects "+bad, func(t *testing.T) {
			_, ok := validator.ToDuration(bad)
			assert.False(t, ok)
		})
	}
}

func TestFormatSpan(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{0, "00:00:00"},
		{4 * time.Hour, "04:00:00"},
		{90 * time.Second, "00:01:30"},
		{26*time.Hour + 5*time.Minute, "1.02:05:00"},
		{-30 * time.Minute, "-00:30:00"},
		{1500 * time.Millisecond, "00:00:01.5000000"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, validator.FormatSpan(tt.in))
		})
	}

	t.Run("round trips through ToDuration", func(t *testing.T) {
		d := 3*24*time.Hour + 7*time.Hour + 42*time.Second + 300*time.Millisecond
		got, ok := validator.ToDuration(validator.FormatSpan(d))
		require.True(t, ok)
		assert.Equal(t, d, got)
	})
}
