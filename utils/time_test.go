package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseTimeWithFallback(t *testing.T) {
	tests := []struct {
		input string
		want  time.Time
	}{
		{"2026-03-14T09:26:53.589Z", time.Date(2026, 3, 14, 9, 26, 53, 589000000, time.UTC)},
		{"2026-03-14T09:26:53Z", time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)},
		{"2026-03-14 09:26:53", time.Date(2026, 3, 14, 9, 26, 53, 0, time.UTC)},
		{"2026-03-14", time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		got, err := ParseTimeWithFallback(tt.input)
		if err != nil {
			t.Fatalf("ParseTimeWithFallback(%q) failed: %v", tt.input, err)
		}
		assert.True(t, got.Equal(tt.want), "parsed %q as %v, want %v", tt.input, got, tt.want)
	}
}

func TestParseTimeWithFallback_Unparseable(t *testing.T) {
	_, err := ParseTimeWithFallback("yesterday-ish")

	assert.Error(t, err)
}

func TestFormatTimestamp_PassesThroughGarbage(t *testing.T) {
	assert.Equal(t, "yesterday-ish", FormatTimestamp("yesterday-ish"))
}
