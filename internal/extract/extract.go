package extract

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/nao1215/docdump/internal/model"
)

// Content returns the serialized HTML of the first element matching the
// article selector, or "" when the page has no such element. Callers
// treat an empty result as "skip this page".
func Content(doc *goquery.Document, selector string) string {
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return ""
	}

	// OuterHtml fails only on an empty selection, which is excluded above
	html, err := goquery.OuterHtml(sel)
	if err != nil {
		return ""
	}

	return html
}

// titleCaser word-capitalizes URL-derived titles.
// cases.Title allocates internal state, so we keep one per package.
var titleCaser = cases.Title(language.English)

// Title resolves a human-readable title for a lesson page.
// It prefers the document's <title> element, trimmed. When absent it
// derives a title from the URL's final non-empty path segment with the
// extension stripped, hyphens and underscores replaced by spaces, and
// each word capitalized. If derivation fails for any reason the fixed
// placeholder is returned.
func Title(doc *goquery.Document, pageURL string) string {
	if doc != nil {
		if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
			return title
		}
	}

	if title := titleFromURL(pageURL); title != "" {
		return title
	}

	return model.PlaceholderTitle
}

// titleFromURL derives a title from the last non-empty path segment of
// a URL. Returns "" when the URL yields nothing usable.
func titleFromURL(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}

	segment := lastSegment(u.Path)
	if segment == "" {
		return ""
	}

	// Strip a file extension such as .html
	if idx := strings.Index(segment, "."); idx >= 0 {
		segment = segment[:idx]
	}
	if segment == "" {
		return ""
	}

	segment = strings.ReplaceAll(segment, "-", " ")
	segment = strings.ReplaceAll(segment, "_", " ")

	return titleCaser.String(segment)
}

// lastSegment returns the final non-empty path segment, handling
// trailing slashes.
func lastSegment(path string) string {
	segments := strings.Split(path, "/")
	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] != "" {
			return segments[i]
		}
	}
	return ""
}

// URLTail returns the last non-empty path segment of a URL as-is.
// It is used as the filename base when no real title was resolved.
func URLTail(pageURL string) string {
	u, err := url.Parse(pageURL)
	if err != nil {
		return ""
	}
	return lastSegment(u.Path)
}
