package randomuser

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// DefaultURL returns a single US profile
const DefaultURL = "https://randomuser.me/api/?results=1&nat=us"

// maxBodySize caps the profile payload
const maxBodySize = 1 << 20

// Client fetches mock user profiles; implements repository.ProfileFetcher
type Client struct {
	url        string
	httpClient *http.Client
}

// NewClient creates a client for url with the given request timeout
func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	return &Client{
		url:        url,
		httpClient: &http.Client{Timeout: timeout},
	}
}

// FetchProfile returns the raw JSON body of one profile response
func (c *Client) FetchProfile(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("failed to fetch: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	return body, nil
}
