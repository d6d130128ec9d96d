package quill

import (
	"context"
	"net/http"
	"time"

	"github.com/inkloom/quill/internal/loader"
	"github.com/inkloom/quill/internal/pipeline"
)

// Client fetches and extracts article content. The zero value is not usable;
// construct one with New.
type Client struct {
	httpClient           *http.Client
	userAgent            string
	timeout              time.Duration
	allowPrivateNetworks bool
	ignoreEntityErrors   bool
}

// New builds a Client, applying opts in order.
func New(opts ...Option) *Client {
	c := &Client{
		httpClient: &http.Client{Timeout: 20 * time.Second},
		timeout:    20 * time.Second,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Parse fetches rawURL and extracts its content. Every fetch failure — a
// malformed or non-HTTP(S) URL, an address refused by the private-network
// guard, a non-200 status, an oversized body, or a timeout — is reported
// with Code ErrFetch, or ErrContext when ctx is done; Parse does not return
// ErrInvalidURL, ErrSSRF or ErrTimeout.
func (c *Client) Parse(ctx context.Context, rawURL string) (*Result, error) {
	body, contentType, err := loader.Fetch(ctx, c.httpClient, c.userAgent, rawURL, c.allowPrivateNetworks)
	if err != nil {
		code := ErrFetch
		if ctx.Err() != nil {
			code = ErrContext
		}
		return nil, &ParseError{Code: code, URL: rawURL, Op: "Parse", Err: err}
	}

	html := loader.Decode(body, contentType)
	return c.ParseHTML(ctx, html, rawURL)
}

// ParseHTML extracts content directly from an HTML string, without fetching
// anything. url is used only to populate Result.URL.
func (c *Client) ParseHTML(ctx context.Context, html, url string) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, &ParseError{Code: ErrContext, URL: url, Op: "ParseHTML", Err: err}
	}

	fragments, meta := pipeline.Extract(html)

	return &Result{
		URL:                url,
		Title:              meta.Title,
		Description:        meta.Description,
		Published:          meta.Published,
		Modified:           meta.Modified,
		ParsedPublished:    meta.ParsedPublished,
		ParsedModified:     meta.ParsedModified,
		Fragments:          fragments,
		ignoreEntityErrors: c.ignoreEntityErrors,
	}, nil
}
