package api

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// Defaults applied when a Memory draft leaves the optional fields zero.
// The service ranks importance 1 (low) to 4 (critical).
const (
	DefaultMemoryType = "MEMORY"
	DefaultImportance = 2
)

// Memory is the draft body for AddMemory. Zero optional fields take the
// service defaults: MemoryType "MEMORY", Importance 2, and empty tag and
// entity lists, sent as empty arrays rather than omitted.
type Memory struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	MemoryType string   `json:"memory_type"`
	Importance int      `json:"importance"`
	Tags       []string `json:"tags"`
	EntityIDs  []int64  `json:"entity_ids"`
}

// AddMemory stores a new memory and returns the created record.
func (c *Client) AddMemory(ctx context.Context, mem Memory) (map[string]any, error) {
	if mem.MemoryType == "" {
		mem.MemoryType = DefaultMemoryType
	}
	if mem.Importance == 0 {
		mem.Importance = DefaultImportance
	}
	if mem.Tags == nil {
		mem.Tags = []string{}
	}
	if mem.EntityIDs == nil {
		mem.EntityIDs = []int64{}
	}
	return c.request(ctx, http.MethodPost, "/api/memories", nil, mem)
}

// SearchMemories runs a similarity search over stored memories. It honors
// WithLimit, WithThreshold and WithMemoryTypes.
func (c *Client) SearchMemories(ctx context.Context, query string, opts ...SearchOption) (map[string]any, error) {
	p := newSearchParams(opts)
	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", p.limitValue())
	q.Set("threshold", p.thresholdValue())
	if len(p.memoryTypes) > 0 {
		q.Set("memory_types", strings.Join(p.memoryTypes, ","))
	}
	return c.request(ctx, http.MethodGet, "/api/memories/search", q, nil)
}
