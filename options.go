package quill

import (
	"net/http"
	"time"
)

// Option is a functional option for configuring a Client.
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client for fetching URLs.
func WithHTTPClient(httpClient *http.Client) Option {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithTimeout sets the timeout for HTTP requests made by Parse.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.timeout = timeout
		if c.httpClient == nil {
			c.httpClient = &http.Client{}
		}
		c.httpClient.Timeout = timeout
	}
}

// WithUserAgent sets the User-Agent header used when fetching URLs.
func WithUserAgent(userAgent string) Option {
	return func(c *Client) {
		c.userAgent = userAgent
	}
}

// WithAllowPrivateNetworks allows Parse to fetch URLs that resolve to
// loopback or private-network addresses. Off by default as an SSRF guard.
func WithAllowPrivateNetworks(allow bool) Option {
	return func(c *Client) {
		c.allowPrivateNetworks = allow
	}
}

// WithIgnoreEntityErrors makes Result.Text() treat every fragment's plain
// text as trustworthy regardless of how many character references failed
// to decode. Without it, a fragment that fails the linearizer's 3-to-1
// budget is rendered as its raw HTML instead of its decoded text.
func WithIgnoreEntityErrors(ignore bool) Option {
	return func(c *Client) {
		c.ignoreEntityErrors = ignore
	}
}
