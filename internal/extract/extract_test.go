package extract

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/nao1215/docdump/internal/model"
)

// mustParse parses an HTML document for tests.
func mustParse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("failed to parse HTML: %v", err)
	}
	return doc
}

// TestContent tests article content extraction.
func TestContent(t *testing.T) {
	t.Parallel()

	t.Run("returns the serialized article element", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body><article><h1>Setup</h1><p>Install it.</p></article></body></html>`)
		got := Content(doc, "article")

		if !strings.HasPrefix(got, "<article>") {
			t.Errorf("expected serialized article element, got %q", got)
		}
		if !strings.Contains(got, "<h1>Setup</h1>") {
			t.Errorf("expected article to contain the heading, got %q", got)
		}
	})

	t.Run("returns the first match only", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body><article>first</article><article>second</article></body></html>`)
		got := Content(doc, "article")

		if !strings.Contains(got, "first") || strings.Contains(got, "second") {
			t.Errorf("expected only the first article, got %q", got)
		}
	})

	t.Run("returns empty string when the selector matches nothing", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body><div>no article here</div></body></html>`)
		if got := Content(doc, "article"); got != "" {
			t.Errorf("expected empty string, got %q", got)
		}
	})

	t.Run("supports configurable selectors", func(t *testing.T) {
		t.Parallel()

		doc := mustParse(t, `<html><body><main class="content"><p>hello</p></main></body></html>`)
		if got := Content(doc, "main.content"); !strings.Contains(got, "hello") {
			t.Errorf("expected configured selector to match, got %q", got)
		}
	})
}

// TestTitle tests title resolution from documents and URLs.
func TestTitle(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		html    string
		pageURL string
		want    string
	}{
		{
			name:    "prefers the document title",
			html:    `<html><head><title>  Getting Started  </title></head><body></body></html>`,
			pageURL: "https://example.com/docs/getting-started",
			want:    "Getting Started",
		},
		{
			name:    "derives from the URL when the title is missing",
			html:    `<html><head></head><body></body></html>`,
			pageURL: "https://example.com/docs/getting-started",
			want:    "Getting Started",
		},
		{
			name:    "derives from the URL when the title is whitespace",
			html:    `<html><head><title>   </title></head><body></body></html>`,
			pageURL: "https://example.com/docs/state_management",
			want:    "State Management",
		},
		{
			name:    "strips the extension from the URL segment",
			html:    `<html><head></head><body></body></html>`,
			pageURL: "https://example.com/docs/intro.html",
			want:    "Intro",
		},
		{
			name:    "trailing slash uses the previous segment",
			html:    `<html><head></head><body></body></html>`,
			pageURL: "https://example.com/docs/advanced-topics/",
			want:    "Advanced Topics",
		},
		{
			name:    "placeholder when nothing is derivable",
			html:    `<html><head></head><body></body></html>`,
			pageURL: "https://example.com/",
			want:    model.PlaceholderTitle,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Title(mustParse(t, tt.html), tt.pageURL)
			if got != tt.want {
				t.Errorf("expected title %q, got %q", tt.want, got)
			}
		})
	}

	t.Run("nil document falls back to the URL", func(t *testing.T) {
		t.Parallel()

		if got := Title(nil, "https://example.com/docs/setup"); got != "Setup" {
			t.Errorf("expected 'Setup', got %q", got)
		}
	})
}

// TestURLTail tests extraction of the final path segment.
func TestURLTail(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		pageURL string
		want    string
	}{
		{name: "simple path", pageURL: "https://example.com/docs/setup", want: "setup"},
		{name: "trailing slash", pageURL: "https://example.com/docs/setup/", want: "setup"},
		{name: "root path", pageURL: "https://example.com/", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := URLTail(tt.pageURL); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}
