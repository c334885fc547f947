package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"
	"strings"
)

// Search defaults, mirroring the service's own.
const (
	DefaultSearchLimit     = 10
	DefaultSearchThreshold = 0.7
)

type searchParams struct {
	limit       int
	threshold   float64
	memoryTypes []string
	entityTypes []string
}

// SearchOption tunes a search call. Each endpoint honors the subset of
// options it supports and ignores the rest, matching the REST API.
type SearchOption func(*searchParams)

// WithLimit caps the number of results. Non-positive values keep the
// default of 10.
func WithLimit(n int) SearchOption {
	return func(p *searchParams) {
		if n > 0 {
			p.limit = n
		}
	}
}

// WithThreshold sets the minimum similarity score. Non-positive values keep
// the default of 0.7.
func WithThreshold(t float64) SearchOption {
	return func(p *searchParams) {
		if t > 0 {
			p.threshold = t
		}
	}
}

// WithMemoryTypes restricts results to the given memory types. An empty list
// leaves the filter off the query string entirely.
func WithMemoryTypes(types ...string) SearchOption {
	return func(p *searchParams) { p.memoryTypes = types }
}

// WithEntityTypes restricts unified results to the given entity types. An
// empty list leaves the filter off the query string entirely.
func WithEntityTypes(types ...string) SearchOption {
	return func(p *searchParams) { p.entityTypes = types }
}

func newSearchParams(opts []SearchOption) searchParams {
	p := searchParams{limit: DefaultSearchLimit, threshold: DefaultSearchThreshold}
	for _, opt := range opts {
		opt(&p)
	}
	return p
}

func (p searchParams) limitValue() string { return strconv.Itoa(p.limit) }

func (p searchParams) thresholdValue() string {
	return strconv.FormatFloat(p.threshold, 'g', -1, 64)
}

// Search queries memories and entities in a single call; the service runs
// both searches concurrently and combines the results. All search options
// apply.
func (c *Client) Search(ctx context.Context, query string, opts ...SearchOption) (map[string]any, error) {
	p := newSearchParams(opts)
	q := url.Values{}
	q.Set("query", query)
	q.Set("limit", p.limitValue())
	q.Set("threshold", p.thresholdValue())
	if len(p.memoryTypes) > 0 {
		q.Set("memory_types", strings.Join(p.memoryTypes, ","))
	}
	if len(p.entityTypes) > 0 {
		q.Set("entity_types", strings.Join(p.entityTypes, ","))
	}
	return c.request(ctx, http.MethodGet, "/api/search", q, nil)
}
