package crawler

import (
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// DeriveBaseURL derives the documentation base URL from a seed URL by
// dropping the last path segment. The result always ends with "/" and
// is used purely as a string-prefix filter for discovered links.
//
// For https://example.com/docs/intro the base URL is
// https://example.com/docs/. A single-segment path keeps its segment:
// https://example.com/docs derives to https://example.com/docs/.
func DeriveBaseURL(seedURL string) (string, error) {
	u, err := url.Parse(seedURL)
	if err != nil {
		return "", fmt.Errorf("invalid seed URL: %w", err)
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("invalid seed URL %q: scheme and host are required", seedURL)
	}

	var basePath string
	if trimmed := strings.Trim(u.Path, "/"); trimmed != "" {
		segments := strings.Split(trimmed, "/")
		if len(segments) > 1 {
			basePath = strings.Join(segments[:len(segments)-1], "/") + "/"
		} else {
			basePath = segments[0] + "/"
		}
	}

	return u.Scheme + "://" + u.Host + "/" + basePath, nil
}

// LinkExtractor discovers lesson links on a fetched documentation page.
// It applies two strategies: a targeted search inside a known sidebar
// container and an unconditional page-wide anchor scan. Duplicates
// across strategies are expected and intentional; the caller combines
// and deduplicates the results.
type LinkExtractor struct {
	// baseURL is the prefix filter every admitted link must match.
	baseURL string

	// sidebarSelectors are tried in order; the first selector that
	// matches an element on the page is used as the sidebar container.
	sidebarSelectors []string
}

// NewLinkExtractor creates a LinkExtractor filtering to baseURL and
// locating the sidebar with the given selectors.
func NewLinkExtractor(baseURL string, sidebarSelectors []string) *LinkExtractor {
	return &LinkExtractor{
		baseURL:          baseURL,
		sidebarSelectors: sidebarSelectors,
	}
}

// SidebarLinks collects admitted lesson links from the first matching
// sidebar container. It returns nil when no configured selector matches
// anything on the page; callers fall back to the page-wide scan.
func (e *LinkExtractor) SidebarLinks(doc *goquery.Document, pageURL string) []string {
	var container *goquery.Selection
	for _, selector := range e.sidebarSelectors {
		if sel := doc.Find(selector).First(); sel.Length() > 0 {
			container = sel
			break
		}
	}
	if container == nil {
		return nil
	}

	var links []string
	seen := make(map[string]bool)
	container.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		resolved, ok := e.admit(pageURL, href)
		if !ok || seen[resolved] {
			return
		}
		seen[resolved] = true
		links = append(links, resolved)
	})

	return links
}

// PageLinks collects admitted lesson links from every anchor anywhere
// in the document. The result may contain duplicates; deduplication
// happens when strategies are combined.
func (e *LinkExtractor) PageLinks(doc *goquery.Document, pageURL string) []string {
	var links []string
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if resolved, ok := e.admit(pageURL, href); ok {
			links = append(links, resolved)
		}
	})

	return links
}

// admit normalizes an href and decides whether it is a lesson link.
// The href is resolved against the originating page URL and stripped of
// any fragment; it is admitted only if it starts with the base URL and
// differs from both the base URL and the originating page.
func (e *LinkExtractor) admit(pageURL, href string) (string, bool) {
	href = strings.TrimSpace(href)
	if href == "" || href == "#" {
		return "", false
	}

	// Non-navigational schemes never lead to lesson pages
	for _, prefix := range []string{"javascript:", "mailto:", "tel:", "data:"} {
		if strings.HasPrefix(href, prefix) {
			return "", false
		}
	}

	base, err := url.Parse(pageURL)
	if err != nil {
		return "", false
	}
	ref, err := url.Parse(href)
	if err != nil {
		return "", false
	}

	resolved := base.ResolveReference(ref)
	resolved.Fragment = ""
	link := resolved.String()

	if !strings.HasPrefix(link, e.baseURL) || link == e.baseURL || link == pageURL {
		return "", false
	}

	return link, true
}

// Combine merges link slices from multiple strategies into one
// deduplicated, lexicographically sorted list. Order is stabilized only
// for reproducible processing and file numbering.
func Combine(linkSets ...[]string) []string {
	seen := make(map[string]bool)
	combined := make([]string, 0)
	for _, links := range linkSets {
		for _, link := range links {
			if !seen[link] {
				seen[link] = true
				combined = append(combined, link)
			}
		}
	}

	sort.Strings(combined)
	return combined
}
