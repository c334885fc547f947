package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestServiceEndpoints(t *testing.T) {
	tests := []struct {
		name string
		call func(*Client, context.Context) (map[string]any, error)
		path string
	}{
		{"health", (*Client).HealthCheck, "/api/health"},
		{"info", (*Client).ServiceInfo, "/api"},
		{"statistics", (*Client).Statistics, "/api/statistics"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := &recordingHandler{}
			client := newTestClient(t, h)

			result, err := tt.call(client, context.Background())

			assert.NoError(t, err)
			assert.NotNil(t, result)
			assert.Equal(t, http.MethodGet, h.method)
			assert.Equal(t, tt.path, h.path)
		})
	}
}
