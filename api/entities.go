package api

import (
	"context"
	"net/http"
	"net/url"
)

// Entity is the draft body for CreateEntity. Extra carries fields beyond the
// fixed ones; it is merged into the request body last, so extra fields win
// key collisions.
type Entity struct {
	Name        string
	EntityType  string
	Description string
	Importance  int
	Extra       map[string]any
}

// CreateEntity registers a named entity (person, organization, project, ...)
// and returns the created record.
func (c *Client) CreateEntity(ctx context.Context, ent Entity) (map[string]any, error) {
	importance := ent.Importance
	if importance == 0 {
		importance = DefaultImportance
	}

	body := map[string]any{
		"name":        ent.Name,
		"entity_type": ent.EntityType,
		"importance":  importance,
	}
	if ent.Description != "" {
		body["description"] = ent.Description
	}
	for k, v := range ent.Extra {
		body[k] = v
	}

	return c.request(ctx, http.MethodPost, "/api/entities", nil, body)
}

// SearchEntities searches entities by name and description. Only WithLimit
// applies; the endpoint has no threshold or type filters.
func (c *Client) SearchEntities(ctx context.Context, query string, opts ...SearchOption) (map[string]any, error) {
	p := newSearchParams(opts)
	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", p.limitValue())
	return c.request(ctx, http.MethodGet, "/api/entities/search", q, nil)
}
