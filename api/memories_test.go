package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

// Helper functions for the endpoint tests

// recordingHandler captures the method, path, query and JSON body of each
// request and answers with an empty JSON object.
type recordingHandler struct {
	method string
	path   string
	query  url.Values
	body   map[string]any
}

func (h *recordingHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.method = r.Method
	h.path = r.URL.Path
	h.query = r.URL.Query()
	h.body = nil
	if r.Body != nil {
		var body map[string]any
		if err := json.NewDecoder(r.Body).Decode(&body); err == nil {
			h.body = body
		}
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{}`))
}

func TestAddMemory_AppliesDefaults(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.AddMemory(context.Background(), Memory{
		Title:   "Standup notes",
		Content: "Discussed the Q3 roadmap",
	})
	if err != nil {
		t.Fatalf("AddMemory failed: %v", err)
	}

	assert.Equal(t, http.MethodPost, h.method)
	assert.Equal(t, "/api/memories", h.path)
	assert.Equal(t, "Standup notes", h.body["title"])
	assert.Equal(t, "Discussed the Q3 roadmap", h.body["content"])
	assert.Equal(t, DefaultMemoryType, h.body["memory_type"])
	assert.Equal(t, float64(DefaultImportance), h.body["importance"])
	assert.Equal(t, []any{}, h.body["tags"])
	assert.Equal(t, []any{}, h.body["entity_ids"])
}

func TestAddMemory_KeepsExplicitFields(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.AddMemory(context.Background(), Memory{
		Title:      "Postgres tuning",
		Content:    "shared_buffers at 25% of RAM",
		MemoryType: "TECHNICAL",
		Importance: 4,
		Tags:       []string{"postgres", "performance"},
		EntityIDs:  []int64{7, 12},
	})
	if err != nil {
		t.Fatalf("AddMemory failed: %v", err)
	}

	assert.Equal(t, "TECHNICAL", h.body["memory_type"])
	assert.Equal(t, float64(4), h.body["importance"])
	assert.Equal(t, []any{"postgres", "performance"}, h.body["tags"])
	assert.Equal(t, []any{float64(7), float64(12)}, h.body["entity_ids"])
}

func TestSearchMemories_DefaultParams(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.SearchMemories(context.Background(), "roadmap")
	if err != nil {
		t.Fatalf("SearchMemories failed: %v", err)
	}

	assert.Equal(t, http.MethodGet, h.method)
	assert.Equal(t, "/api/memories/search", h.path)
	assert.Equal(t, "roadmap", h.query.Get("query"))
	assert.Equal(t, "10", h.query.Get("limit"))
	assert.Equal(t, "0.7", h.query.Get("threshold"))
	assert.False(t, h.query.Has("memory_types"))
}

func TestSearchMemories_Options(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.SearchMemories(context.Background(), "roadmap",
		WithLimit(3), WithThreshold(0.25))
	if err != nil {
		t.Fatalf("SearchMemories failed: %v", err)
	}

	assert.Equal(t, "3", h.query.Get("limit"))
	assert.Equal(t, "0.25", h.query.Get("threshold"))
}

func TestSearchMemories_TypeFilter(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.SearchMemories(context.Background(), "roadmap",
		WithMemoryTypes("MEMORY", "FACT"))
	if err != nil {
		t.Fatalf("SearchMemories failed: %v", err)
	}

	assert.Equal(t, "MEMORY,FACT", h.query.Get("memory_types"))
}
