package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
)

// APIError is a non-2xx answer from the service. Payload holds the decoded
// JSON error body when the service sent one; Body holds the raw response
// text otherwise.
type APIError struct {
	StatusCode int
	Payload    map[string]any
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error (%d): %v", e.StatusCode, e.detail())
}

func (e *APIError) detail() any {
	if e.Payload != nil {
		return e.Payload
	}
	return e.Body
}

// TransportError is a failure to complete the HTTP exchange at all: dial or
// DNS failure, timeout, context cancellation. It wraps the underlying error,
// so errors.Is still matches the net and context sentinels beneath it.
type TransportError struct {
	Method   string
	Endpoint string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Method, e.Endpoint, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }

// joinURL glues an endpoint path onto the base URL with exactly one slash
// between them, whatever slashes the inputs carry.
func joinURL(base, endpoint string) string {
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(endpoint, "/")
}

// request issues a single HTTP call and decodes the JSON response into a
// generic map. Failures are logged with their context and returned; the
// client never retries.
func (c *Client) request(ctx context.Context, method, endpoint string, query url.Values, body any) (map[string]any, error) {
	u := joinURL(c.baseURL, endpoint)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header = c.headers.Clone()
	req.Header.Set("X-Request-ID", uuid.NewString())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("memory service request failed",
			"method", method, "endpoint", endpoint, "error", err)
		return nil, &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		c.logger.Error("memory service response read failed",
			"method", method, "endpoint", endpoint, "error", err)
		return nil, &TransportError{Method: method, Endpoint: endpoint, Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		apiErr := &APIError{StatusCode: resp.StatusCode}
		var payload map[string]any
		if json.Unmarshal(data, &payload) == nil {
			apiErr.Payload = payload
		} else {
			apiErr.Body = string(data)
		}
		c.logger.Error("memory service request failed",
			"method", method, "endpoint", endpoint,
			"status", resp.StatusCode, "detail", apiErr.detail())
		return nil, apiErr
	}

	result := map[string]any{}
	if len(data) == 0 {
		return result, nil
	}
	if err := json.Unmarshal(data, &result); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	return result, nil
}
