package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCreateUser_RequiredOnly(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.CreateUser(context.Background(), User{Email: "dev@example.com"})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	assert.Equal(t, http.MethodPost, h.method)
	assert.Equal(t, "/api/users", h.path)
	assert.Equal(t, map[string]any{"email": "dev@example.com"}, h.body)
}

func TestCreateUser_AllFields(t *testing.T) {
	h := &recordingHandler{}
	client := newTestClient(t, h)

	_, err := client.CreateUser(context.Background(), User{
		Email:        "dev@example.com",
		Name:         "Dev Example",
		Organization: "Example Corp",
	})
	if err != nil {
		t.Fatalf("CreateUser failed: %v", err)
	}

	assert.Equal(t, "Dev Example", h.body["name"])
	assert.Equal(t, "Example Corp", h.body["organization"])
}
