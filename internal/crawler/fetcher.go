package crawler

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Fetcher retrieves documentation pages over HTTP and parses them into
// queryable documents.
//
// Design decision: We return goquery documents rather than raw bytes
// because:
//  1. Every caller immediately needs CSS selector queries (sidebar,
//     article, anchors)
//  2. Parsing once at the fetch boundary avoids re-parsing per strategy
//  3. goquery handles the malformed HTML common on real sites
type Fetcher struct {
	// client is the HTTP client with the per-request timeout applied.
	client *http.Client

	// userAgent is the User-Agent header to send.
	userAgent string

	// maxBodySize limits the size of response bodies to read.
	maxBodySize int64
}

// FetcherOption configures a Fetcher.
type FetcherOption func(*Fetcher)

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(d time.Duration) FetcherOption {
	return func(f *Fetcher) {
		f.client.Timeout = d
	}
}

// WithUserAgent sets a custom User-Agent header.
func WithUserAgent(ua string) FetcherOption {
	return func(f *Fetcher) {
		f.userAgent = ua
	}
}

// WithMaxBodySize sets the maximum response body size.
// Non-positive values keep the default limit.
func WithMaxBodySize(size int64) FetcherOption {
	return func(f *Fetcher) {
		if size > 0 {
			f.maxBodySize = size
		}
	}
}

// NewFetcher creates a new Fetcher with the given options.
func NewFetcher(opts ...FetcherOption) *Fetcher {
	f := &Fetcher{
		client:      &http.Client{Timeout: 10 * time.Second},
		userAgent:   "docdump/1.0",
		maxBodySize: 5 * 1024 * 1024, // 5MB
	}

	for _, opt := range opts {
		opt(f)
	}

	return f
}

// Fetch performs a GET request and parses the response body into a
// document. Any network error or non-2xx status yields an error;
// callers treat a failed fetch as "skip this URL", not as fatal.
func (f *Fetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request for %s: %w", pageURL, err)
	}

	req.Header.Set("User-Agent", f.userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	req.Header.Set("Accept-Language", "en-US,en;q=0.5")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %w", pageURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return nil, fmt.Errorf("failed to fetch %s: unexpected status %d", pageURL, resp.StatusCode)
	}

	// Read body with limit to guard against pathological responses
	doc, err := goquery.NewDocumentFromReader(io.LimitReader(resp.Body, f.maxBodySize))
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", pageURL, err)
	}

	return doc, nil
}
