package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateEntity_AppliesDefaults(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.CreateEntity(context.Background(), Entity{
		Name:       "Acme Corp",
		EntityType: "organization",
	})
	if err != nil {
		t.Fatalf("CreateEntity failed: %v", err)
	}

	assert.Equal(t, http.MethodPost, h.method)
	assert.Equal(t, "/api/entities", h.path)
	assert.Equal(t, "Acme Corp", h.body["name"])
	assert.Equal(t, "organization", h.body["entity_type"])
	assert.Equal(t, float64(DefaultImportance), h.body["importance"])

	_, hasDescription := h.body["description"]
	assert.False(t, hasDescription, "empty description must be omitted")
}

func TestCreateEntity_WithDescription(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.CreateEntity(context.Background(), Entity{
		Name:        "Jane Doe",
		EntityType:  "person",
		Description: "Staff engineer on the storage team",
		Importance:  3,
	})
	if err != nil {
		t.Fatalf("CreateEntity failed: %v", err)
	}

	assert.Equal(t, "Staff engineer on the storage team", h.body["description"])
	assert.Equal(t, float64(3), h.body["importance"])
}

func TestCreateEntity_ExtraFieldsWinCollisions(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.CreateEntity(context.Background(), Entity{
		Name:       "Acme Corp",
		EntityType: "organization",
		Extra: map[string]any{
			"website":    "https://acme.example.com",
			"importance": 4,
		},
	})
	if err != nil {
		t.Fatalf("CreateEntity failed: %v", err)
	}

	assert.Equal(t, "https://acme.example.com", h.body["website"])
	assert.Equal(t, float64(4), h.body["importance"])
}

func TestSearchEntities_Params(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.SearchEntities(context.Background(), "acme", WithLimit(5))
	if err != nil {
		t.Fatalf("SearchEntities failed: %v", err)
	}

	assert.Equal(t, http.MethodGet, h.method)
	assert.Equal(t, "/api/entities/search", h.path)
	assert.Equal(t, "acme", h.query.Get("query"))
	assert.Equal(t, "5", h.query.Get("limit"))
	assert.False(t, h.query.Has("threshold"))
}

func TestSearchEntities_IgnoresUnsupportedOptions(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.SearchEntities(context.Background(), "acme",
		WithThreshold(0.9), WithMemoryTypes("FACT"))
	if err != nil {
		t.Fatalf("SearchEntities failed: %v", err)
	}

	assert.False(t, h.query.Has("threshold"))
	assert.False(t, h.query.Has("memory_types"))
}
