package loader

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"
)

const (
	maxRedirects     = 5
	maxContentLength = 15 << 20 // 15MB, generous for an article page
	defaultUserAgent = "quill/1.0 (+https://github.com/inkloom/quill)"
	defaultTimeout   = 20 * time.Second
)

// Fetch retrieves rawURL over HTTP(S), returning the response body and its
// Content-Type header. It refuses to resolve to a private/loopback address
// unless allowPrivateNetworks is set, guarding the CLI's URL-fetch path
// against SSRF against the operator's own network.
func Fetch(ctx context.Context, client *http.Client, userAgent, rawURL string, allowPrivateNetworks bool) ([]byte, string, error) {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return nil, "", fmt.Errorf("invalid URL: %w", err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return nil, "", fmt.Errorf("unsupported URL scheme %q", parsed.Scheme)
	}
	if !allowPrivateNetworks {
		if err := guardPrivateNetwork(parsed.Hostname()); err != nil {
			return nil, "", err
		}
	}

	if client == nil {
		client = &http.Client{Timeout: defaultTimeout}
	}
	client.CheckRedirect = func(req *http.Request, via []*http.Request) error {
		if len(via) >= maxRedirects {
			return fmt.Errorf("stopped after %d redirects", maxRedirects)
		}
		if !allowPrivateNetworks {
			if err := guardPrivateNetwork(req.URL.Hostname()); err != nil {
				return err
			}
		}
		return nil
	}

	if userAgent == "" {
		userAgent = defaultUserAgent
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, parsed.String(), nil)
	if err != nil {
		return nil, "", err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("unexpected status %d fetching %s", resp.StatusCode, rawURL)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxContentLength+1))
	if err != nil {
		return nil, "", err
	}
	if len(body) > maxContentLength {
		return nil, "", fmt.Errorf("response body exceeds %d bytes", maxContentLength)
	}

	return body, resp.Header.Get("Content-Type"), nil
}

// guardPrivateNetwork rejects hostnames that resolve to loopback, link-local,
// or RFC1918 private addresses.
func guardPrivateNetwork(host string) error {
	if host == "" {
		return fmt.Errorf("empty host")
	}
	ips, err := net.LookupIP(host)
	if err != nil {
		return fmt.Errorf("resolving %q: %w", host, err)
	}
	for _, ip := range ips {
		if ip.IsLoopback() || ip.IsPrivate() || ip.IsLinkLocalUnicast() || ip.IsLinkLocalMulticast() || ip.IsUnspecified() {
			return fmt.Errorf("refusing to fetch %q: resolves to a private/loopback address", host)
		}
	}
	return nil
}
