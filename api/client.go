package api

import (
	"crypto/tls"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Version identifies this client build. It is sent with every request in the
// X-Client-Version and User-Agent headers.
const Version = "1.0.0"

const (
	// DefaultBaseURL is the public demo deployment of the memory service.
	DefaultBaseURL = "https://mcp-memory-ts.vercel.app"
	// DefaultTimeout bounds each HTTP exchange when Config.Timeout is zero.
	DefaultTimeout = 30 * time.Second

	defaultAuthToken = "demo-token-for-testing"

	envBaseURL  = "MEMORY_SERVICE_URL"
	envToken    = "MEMORY_SERVICE_TOKEN"
	envTimeout  = "MEMORY_SERVICE_TIMEOUT"
	envInsecure = "MEMORY_SERVICE_INSECURE"
)

// Config holds the connection settings for one memory service deployment.
// Fields are read once by NewClient and never mutated afterwards.
type Config struct {
	BaseURL   string
	AuthToken string
	// Timeout bounds each request including the response body read.
	// Zero means DefaultTimeout.
	Timeout time.Duration
	// SkipTLSVerify disables certificate verification. Only useful against
	// self-signed staging deployments.
	SkipTLSVerify bool
}

// ConfigFromEnv builds a Config from the MEMORY_SERVICE_URL,
// MEMORY_SERVICE_TOKEN, MEMORY_SERVICE_TIMEOUT and MEMORY_SERVICE_INSECURE
// environment variables, falling back to the public demo deployment.
func ConfigFromEnv() Config {
	cfg := Config{
		BaseURL:   os.Getenv(envBaseURL),
		AuthToken: os.Getenv(envToken),
	}
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.AuthToken == "" {
		cfg.AuthToken = defaultAuthToken
	}
	if v := os.Getenv(envTimeout); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.Timeout = d
		}
	}
	if v := os.Getenv(envInsecure); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.SkipTLSVerify = b
		}
	}
	return cfg
}

// Client talks to one memory service deployment. The header set (including
// the Authorization header) is built once at construction and reused for
// every request; a Client is safe for concurrent use.
type Client struct {
	baseURL    string
	headers    http.Header
	httpClient *http.Client
	logger     *slog.Logger
}

// Option customizes a Client beyond its Config.
type Option func(*Client)

// WithHTTPClient replaces the underlying HTTP client. The replacement owns
// the timeout and TLS behavior from then on.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger routes request diagnostics to the given logger instead of
// slog.Default().
func WithLogger(l *slog.Logger) Option {
	return func(c *Client) { c.logger = l }
}

// NewClient validates cfg and builds a Client for it.
func NewClient(cfg Config, opts ...Option) (*Client, error) {
	if cfg.BaseURL == "" {
		return nil, errors.New("base URL is required")
	}
	if cfg.AuthToken == "" {
		return nil, errors.New("auth token is required")
	}

	timeout := cfg.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	headers := http.Header{}
	headers.Set("Content-Type", "application/json")
	headers.Set("Accept", "application/json")
	headers.Set("Authorization", "Bearer "+cfg.AuthToken)
	headers.Set("X-Client-Type", "go")
	headers.Set("X-Client-Version", Version)
	headers.Set("User-Agent", "mcp-memory-go-client/"+Version)

	httpClient := &http.Client{Timeout: timeout}
	if cfg.SkipTLSVerify {
		httpClient.Transport = &http.Transport{
			TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
		}
	}

	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		headers:    headers,
		httpClient: httpClient,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}
