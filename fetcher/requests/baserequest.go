package requests

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// Client does the plain requests to the Data Dragon.
// No token is needed, but every request waits on the limiter when one is set.
type Client struct {
	httpClient *http.Client
	limiter    *RateLimiter
	userAgent  string
}

// NewClient creates a client with the given timeout.
// A nil limiter disables the rate limiting.
func NewClient(timeout time.Duration, limiter *RateLimiter) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
			Transport: &http.Transport{
				MaxIdleConns:        20,
				MaxIdleConnsPerHost: 10,
				IdleConnTimeout:     90 * time.Second,
			},
		},
		limiter:   limiter,
		userAgent: "lolatlas/1.0",
	}
}

// Create a simple request and return it.
func (c *Client) Request(ctx context.Context, url string, method string) (*http.Response, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, method, url, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", c.userAgent)

	return c.httpClient.Do(req)
}
