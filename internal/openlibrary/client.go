// Package openlibrary provides a client for the OpenLibrary search API.
package openlibrary

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/lepinkainen/bookscout/internal/ratelimit"
)

const (
	defaultBaseURL       = "https://openlibrary.org"
	defaultCoverBaseURL  = "https://covers.openlibrary.org"
	defaultRatePerSecond = 1 // OpenLibrary asks for courteous clients
)

// HTTPDoer is an interface for making HTTP requests.
type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client is an OpenLibrary search API client.
type Client struct {
	baseURL      string
	coverBaseURL string
	httpClient   HTTPDoer
	rateLimiter  *ratelimit.Limiter
	useCache     bool
}

// NewClient creates a new OpenLibrary client.
func NewClient(opts ...Option) *Client {
	client := &Client{
		baseURL:      defaultBaseURL,
		coverBaseURL: defaultCoverBaseURL,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
		rateLimiter:  ratelimit.New("OpenLibrary", defaultRatePerSecond),
	}

	for _, opt := range opts {
		opt(client)
	}

	return client
}

// Option is a functional option for configuring the Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(c HTTPDoer) Option {
	return func(client *Client) {
		if c != nil {
			client.httpClient = c
		}
	}
}

// WithBaseURL sets a custom base URL for the search API.
func WithBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.baseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithCoverBaseURL sets a custom base URL for cover images.
func WithCoverBaseURL(base string) Option {
	return func(client *Client) {
		if base != "" {
			client.coverBaseURL = strings.TrimSuffix(base, "/")
		}
	}
}

// WithRateLimiter sets a custom rate limiter for the client.
func WithRateLimiter(limiter *ratelimit.Limiter) Option {
	return func(client *Client) {
		if limiter != nil {
			client.rateLimiter = limiter
		}
	}
}

// WithCache enables the local SQLite response cache for search pages.
func WithCache(enabled bool) Option {
	return func(client *Client) {
		client.useCache = enabled
	}
}

// CoverURL returns the medium-size cover image URL for a book, or the empty
// string when the record has no cover ID. Callers render a placeholder
// instead of requesting a URL for coverless records.
func (c *Client) CoverURL(b Book) string {
	if !b.HasCover() {
		return ""
	}
	return fmt.Sprintf("%s/b/id/%d-M.jpg", c.coverBaseURL, b.CoverID)
}
