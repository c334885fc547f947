package api

import (
	"context"
	"net/http"
)

// HealthCheck reports service liveness.
func (c *Client) HealthCheck(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/api/health", nil, nil)
}

// ServiceInfo returns deployment metadata such as the service version and
// enabled features.
func (c *Client) ServiceInfo(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/api", nil, nil)
}

// Statistics returns the caller's memory and entity counts.
func (c *Client) Statistics(ctx context.Context) (map[string]any, error) {
	return c.request(ctx, http.MethodGet, "/api/statistics", nil, nil)
}
