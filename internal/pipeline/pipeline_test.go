package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nao1215/docdump/internal/config"
	"github.com/nao1215/docdump/internal/crawler"
	"github.com/nao1215/docdump/internal/writer"
)

// discardLogger returns a logger that swallows all output.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// lessonPage renders a minimal lesson page.
func lessonPage(title, article string) string {
	return fmt.Sprintf(`<html><head><title>%s</title></head><body>%s</body></html>`, title, article)
}

// newDocsServer serves a small documentation site exercising every
// skip path: a page without article content, a 404 page, a blank
// article, and two pages sharing one title.
func newDocsServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/docs/intro", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `<html><head><title>Intro</title></head><body>
			<div class="sidebar_CUen">
				<a href="/docs/intro">Intro</a>
				<a href="/docs/setup">Setup</a>
				<a href="/docs/usage">Usage</a>
				<a href="/docs/blank">Blank</a>
				<a href="/docs/gone">Gone</a>
				<a href="#anchor-on-intro">Anchor</a>
				<a href="https://other.example/x">Other</a>
			</div>
			<main>
				<a href="/docs/extra">Extra</a>
				<a href="/docs/zz-final">Wrap up</a>
			</main>
		</body></html>`)
	})
	mux.HandleFunc("/docs/setup", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, lessonPage("Setup", `<article><h1>Setup</h1><p>Install things.</p></article>`))
	})
	// Same title as /docs/setup: the classic duplicate-content case
	mux.HandleFunc("/docs/usage", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, lessonPage("Setup", `<article><h1>Setup</h1><p>Install things.</p></article>`))
	})
	mux.HandleFunc("/docs/blank", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, lessonPage("Blank", `<article>   </article>`))
	})
	// /docs/extra has a title but no article element
	mux.HandleFunc("/docs/extra", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, lessonPage("Extra", `<div>not an article</div>`))
	})
	mux.HandleFunc("/docs/zz-final", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, lessonPage("Wrap Up", `<article><h1>Wrap Up</h1><p>Done.</p></article>`))
	})
	// /docs/gone is intentionally unregistered and 404s

	return httptest.NewServer(mux)
}

// newPipeline builds a pipeline writing to dir with test-friendly
// logging and progress capture.
func newPipeline(dir string, progress io.Writer) *Pipeline {
	return New(
		crawler.NewFetcher(),
		writer.New(dir),
		config.DefaultSelectors(),
		WithLogger(discardLogger()),
		WithProgress(progress),
	)
}

// TestPipelineRun tests a complete dump over a local site.
func TestPipelineRun(t *testing.T) {
	t.Parallel()

	server := newDocsServer(t)
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "lessons")
	var progress bytes.Buffer
	p := newPipeline(dir, &progress)

	result, err := p.Run(context.Background(), server.URL+"/docs/intro")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	t.Run("discovers all admissible links once", func(t *testing.T) {
		// Sidebar: setup, usage, blank, gone; page-wide adds extra and
		// zz-final. The seed, the anchor, and the foreign host are
		// excluded.
		if result.LinksDiscovered != 6 {
			t.Errorf("expected 6 discovered links, got %d", result.LinksDiscovered)
		}
	})

	t.Run("saves unique non-empty lessons with gapless numbering", func(t *testing.T) {
		if result.Saved != 2 {
			t.Fatalf("expected 2 saved lessons, got %d", result.Saved)
		}

		for _, name := range []string{"001_Setup.md", "002_Wrap_Up.md"} {
			path := filepath.Join(dir, name)
			data, err := os.ReadFile(path)
			if err != nil {
				t.Fatalf("expected %s to exist: %v", name, err)
			}
			if len(strings.TrimSpace(string(data))) == 0 {
				t.Errorf("expected %s to have content", name)
			}
		}
	})

	t.Run("saved markdown contains converted content", func(t *testing.T) {
		data, err := os.ReadFile(filepath.Join(dir, "001_Setup.md"))
		if err != nil {
			t.Fatalf("failed to read saved file: %v", err)
		}
		if !strings.Contains(string(data), "# Setup") {
			t.Errorf("expected converted heading, got %q", string(data))
		}
	})

	t.Run("tallies every skip reason", func(t *testing.T) {
		if result.FetchFailures != 1 {
			t.Errorf("expected 1 fetch failure (/docs/gone), got %d", result.FetchFailures)
		}
		if result.MissingContent != 1 {
			t.Errorf("expected 1 missing content page (/docs/extra), got %d", result.MissingContent)
		}
		if result.DuplicateTitles != 1 {
			t.Errorf("expected 1 duplicate title (/docs/usage), got %d", result.DuplicateTitles)
		}
		if result.EmptyMarkdown != 1 {
			t.Errorf("expected 1 empty markdown (/docs/blank), got %d", result.EmptyMarkdown)
		}
	})

	t.Run("duplicate page produced no extra file", func(t *testing.T) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			t.Fatalf("failed to read output dir: %v", err)
		}
		if len(entries) != 2 {
			t.Errorf("expected exactly 2 files, got %d", len(entries))
		}
	})

	t.Run("progress lines mention each processed URL", func(t *testing.T) {
		out := progress.String()
		if !strings.Contains(out, "Found 6 unique lesson links") {
			t.Errorf("expected link count line, got:\n%s", out)
		}
		if !strings.Contains(out, "Skipping duplicate content") {
			t.Errorf("expected duplicate skip line, got:\n%s", out)
		}
		if !strings.Contains(out, "Dump complete. 2 unique lessons saved") {
			t.Errorf("expected completion line, got:\n%s", out)
		}
	})
}

// TestPipelineRunEarlyTermination tests the two conditions that end a
// run before any file is written.
func TestPipelineRunEarlyTermination(t *testing.T) {
	t.Parallel()

	t.Run("unreachable seed returns ErrSeedUnreachable and creates nothing", func(t *testing.T) {
		t.Parallel()

		server := httptest.NewServer(http.NewServeMux()) // 404 for everything
		defer server.Close()

		dir := filepath.Join(t.TempDir(), "lessons")
		p := newPipeline(dir, io.Discard)

		_, err := p.Run(context.Background(), server.URL+"/docs/intro")
		if !errors.Is(err, ErrSeedUnreachable) {
			t.Fatalf("expected ErrSeedUnreachable, got %v", err)
		}

		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Error("expected output directory not to be created")
		}
	})

	t.Run("seed without lesson links returns ErrNoLinks and creates nothing", func(t *testing.T) {
		t.Parallel()

		mux := http.NewServeMux()
		mux.HandleFunc("/docs/intro", func(w http.ResponseWriter, _ *http.Request) {
			_, _ = fmt.Fprint(w, `<html><body>
				<a href="/docs/intro">Self</a>
				<a href="https://other.example/x">Other</a>
			</body></html>`)
		})
		server := httptest.NewServer(mux)
		defer server.Close()

		dir := filepath.Join(t.TempDir(), "lessons")
		p := newPipeline(dir, io.Discard)

		_, err := p.Run(context.Background(), server.URL+"/docs/intro")
		if !errors.Is(err, ErrNoLinks) {
			t.Fatalf("expected ErrNoLinks, got %v", err)
		}

		if _, err := os.Stat(dir); !os.IsNotExist(err) {
			t.Error("expected output directory not to be created")
		}
	})

	t.Run("invalid seed URL returns an error", func(t *testing.T) {
		t.Parallel()

		p := newPipeline(t.TempDir(), io.Discard)
		if _, err := p.Run(context.Background(), "not a url"); err == nil {
			t.Error("expected error for invalid seed URL, got nil")
		}
	})
}

// TestPipelineRunCancellation tests that cancelling the context
// mid-run stops the loop before the remaining pages are processed.
func TestPipelineRunCancellation(t *testing.T) {
	t.Parallel()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	mux := http.NewServeMux()
	mux.HandleFunc("/docs/intro", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = fmt.Fprint(w, `<html><body><div class="sidebar_CUen">
			<a href="/docs/first">First</a>
			<a href="/docs/second">Second</a>
		</div></body></html>`)
	})
	mux.HandleFunc("/docs/first", func(w http.ResponseWriter, _ *http.Request) {
		cancel()
		_, _ = fmt.Fprint(w, lessonPage("First", `<article><p>First.</p></article>`))
	})
	mux.HandleFunc("/docs/second", func(w http.ResponseWriter, _ *http.Request) {
		t.Error("second page should not be fetched after cancellation")
	})
	server := httptest.NewServer(mux)
	defer server.Close()

	dir := filepath.Join(t.TempDir(), "lessons")
	p := newPipeline(dir, io.Discard)

	if _, err := p.Run(ctx, server.URL+"/docs/intro"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}
