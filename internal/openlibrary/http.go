package openlibrary

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
)

// getJSON performs a single GET request and decodes the JSON response into
// target. The client deliberately does not retry: a failed fetch is reported
// once and the session stays usable for another attempt.
func (c *Client) getJSON(ctx context.Context, endpoint string, target any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fetchErrorf(err, "failed to create request")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fetchErrorf(err, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fetchErrorf(nil, "unexpected status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	if err := json.NewDecoder(resp.Body).Decode(target); err != nil {
		return fetchErrorf(err, "failed to decode response")
	}

	return nil
}
