package utils

import (
	"fmt"
	"time"
)

var timeFormats = []string{
	time.RFC3339Nano,      // 2006-01-02T15:04:05.999999999Z07:00
	time.RFC3339,          // 2006-01-02T15:04:05Z07:00
	"2006-01-02 15:04:05", // timestamps from older deployments
	"2006-01-02",          // date-only fields
}

func ParseTimeWithFallback(timeStr string) (time.Time, error) {
	for _, format := range timeFormats {
		if t, err := time.Parse(format, timeStr); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unable to parse time '%s' with any known format", timeStr)
}

// FormatTimestamp rewrites a service timestamp into a compact local form.
// Unparseable input comes back unchanged so callers can always print it.
func FormatTimestamp(timeStr string) string {
	t, err := ParseTimeWithFallback(timeStr)
	if err != nil {
		return timeStr
	}
	return t.Local().Format("2006-01-02 15:04")
}
