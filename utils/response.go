package utils

import (
	"fmt"
	"math"
	"strconv"
	"unicode/utf8"
)

// responseListKeys are the envelope keys the service wraps result lists in,
// in preference order. All response rendering goes through ServiceItems.
var responseListKeys = []string{"memories", "entities", "results", "data"}

// ServiceItems digs the result list out of a decoded service response using
// the standard envelope keys.
func ServiceItems(result map[string]any) []map[string]any {
	return ResultItems(result, responseListKeys...)
}

// ResultItems digs the first list of records out of a decoded service
// response. Endpoints differ in how they wrap their lists, so callers pass
// the candidate keys in preference order.
func ResultItems(result map[string]any, keys ...string) []map[string]any {
	for _, key := range keys {
		list, ok := result[key].([]any)
		if !ok {
			continue
		}
		items := make([]map[string]any, 0, len(list))
		for _, entry := range list {
			if m, ok := entry.(map[string]any); ok {
				items = append(items, m)
			}
		}
		return items
	}
	return nil
}

// FieldString renders one field of a decoded record as display text.
// Whole numbers print without a decimal point; missing fields print empty.
func FieldString(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		if v == math.Trunc(v) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		return strconv.FormatBool(v)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// Truncate shortens s to at most max runes, marking the cut with an ellipsis.
// A non-positive max yields the empty string.
func Truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	if max == 1 {
		return string(runes[:1])
	}
	return string(runes[:max-1]) + "…"
}
