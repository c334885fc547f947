package api

import (
	"context"
	"net/http"
)

// User is the draft body for CreateUser. Name and Organization are optional
// and omitted from the request when empty.
type User struct {
	Email        string
	Name         string
	Organization string
}

// CreateUser provisions a service account for the given email address.
func (c *Client) CreateUser(ctx context.Context, u User) (map[string]any, error) {
	body := map[string]any{"email": u.Email}
	if u.Name != "" {
		body["name"] = u.Name
	}
	if u.Organization != "" {
		body["organization"] = u.Organization
	}
	return c.request(ctx, http.MethodPost, "/api/users", nil, body)
}
