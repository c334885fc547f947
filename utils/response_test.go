package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResultItems_PrefersEarlierKeys(t *testing.T) {
	result := map[string]any{
		"memories": []any{map[string]any{"title": "first"}},
		"results":  []any{map[string]any{"title": "second"}},
	}

	items := ResultItems(result, "memories", "results")

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	assert.Equal(t, "first", items[0]["title"])
}

func TestResultItems_SkipsNonListValues(t *testing.T) {
	result := map[string]any{
		"memories": "not a list",
		"data":     []any{map[string]any{"title": "fallback"}},
	}

	items := ResultItems(result, "memories", "results", "data")

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	assert.Equal(t, "fallback", items[0]["title"])
}

func TestResultItems_NoMatch(t *testing.T) {
	assert.Nil(t, ResultItems(map[string]any{"status": "ok"}, "memories"))
}

func TestServiceItems_KeyOrder(t *testing.T) {
	result := map[string]any{
		"results":  []any{map[string]any{"title": "unified"}},
		"memories": []any{map[string]any{"title": "memory"}},
		"data":     []any{map[string]any{"title": "generic"}},
	}

	items := ServiceItems(result)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	assert.Equal(t, "memory", items[0]["title"])
}

func TestServiceItems_FallsBackToData(t *testing.T) {
	result := map[string]any{
		"data": []any{map[string]any{"title": "generic"}},
	}

	items := ServiceItems(result)

	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}
	assert.Equal(t, "generic", items[0]["title"])
}

func TestFieldString(t *testing.T) {
	record := map[string]any{
		"title":    "Standup notes",
		"count":    float64(42),
		"score":    0.85,
		"archived": true,
	}

	assert.Equal(t, "Standup notes", FieldString(record, "title"))
	assert.Equal(t, "42", FieldString(record, "count"))
	assert.Equal(t, "0.85", FieldString(record, "score"))
	assert.Equal(t, "true", FieldString(record, "archived"))
	assert.Equal(t, "", FieldString(record, "missing"))
}

func TestTruncate(t *testing.T) {
	assert.Equal(t, "short", Truncate("short", 10))
	assert.Equal(t, "long…", Truncate("long text", 5))
	assert.Equal(t, "héll…", Truncate("héllo wörld", 5))
	assert.Equal(t, "l", Truncate("long text", 1))
	assert.Equal(t, "", Truncate("long text", 0))
	assert.Equal(t, "", Truncate("long text", -3))
}
