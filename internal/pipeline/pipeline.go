package pipeline

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/PuerkitoBio/goquery"

	"github.com/nao1215/docdump/internal/config"
	"github.com/nao1215/docdump/internal/convert"
	"github.com/nao1215/docdump/internal/crawler"
	"github.com/nao1215/docdump/internal/extract"
	"github.com/nao1215/docdump/internal/model"
	"github.com/nao1215/docdump/internal/writer"
)

// Pipeline runs one complete dump: link discovery on the seed page
// followed by the per-lesson fetch → extract → convert → save loop.
//
// Design decision: The run is strictly sequential with one request in
// flight at a time because:
//  1. Documentation dumps are one-shot, not latency sensitive
//  2. Sequential fetching is the politest possible access pattern
//  3. The dedup set and save counter need no synchronization
type Pipeline struct {
	// fetcher retrieves pages as queryable documents.
	fetcher *crawler.Fetcher

	// writer persists converted lessons to the output directory.
	writer *writer.Writer

	// selectors locate the sidebar container and article element.
	selectors config.Selectors

	// logger is used for structured logging during execution.
	logger *slog.Logger

	// progress receives the per-step progress lines. Defaults to
	// stdout; tests substitute a buffer.
	progress io.Writer
}

// Option is a function that configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets a custom logger for the pipeline.
// If not set, slog.Default() is used.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) {
		p.logger = logger
	}
}

// WithProgress sets the destination for progress lines.
func WithProgress(w io.Writer) Option {
	return func(p *Pipeline) {
		p.progress = w
	}
}

// New creates a Pipeline from its collaborators.
func New(fetcher *crawler.Fetcher, w *writer.Writer, selectors config.Selectors, opts ...Option) *Pipeline {
	p := &Pipeline{
		fetcher:   fetcher,
		writer:    w,
		selectors: selectors,
		progress:  os.Stdout,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.logger == nil {
		p.logger = slog.Default()
	}

	return p
}

// Run executes a dump starting from seedURL and returns the run result.
//
// The two early-termination conditions, ErrSeedUnreachable and
// ErrNoLinks, are the only errors besides an invalid seed URL and
// context cancellation; every per-page failure is logged, tallied on
// the result, and skipped.
func (p *Pipeline) Run(ctx context.Context, seedURL string) (*model.Result, error) {
	baseURL, err := crawler.DeriveBaseURL(seedURL)
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(p.progress, "Starting dump with seed page: %s\n", seedURL)
	fmt.Fprintf(p.progress, "Derived documentation base URL: %s\n", baseURL)

	seedDoc, err := p.fetcher.Fetch(ctx, seedURL)
	if err != nil {
		p.logger.Error("seed fetch failed", "url", seedURL, "error", err)
		return nil, fmt.Errorf("%w: %s", ErrSeedUnreachable, seedURL)
	}

	links := p.discoverLinks(seedDoc, seedURL, baseURL)
	if len(links) == 0 {
		return nil, fmt.Errorf("%w (within %s)", ErrNoLinks, baseURL)
	}

	fmt.Fprintf(p.progress, "Found %d unique lesson links to process after combining all methods.\n", len(links))

	result := model.NewResult(seedURL, baseURL, p.writer.OutputDir())
	result.LinksDiscovered = len(links)

	err = p.processLinks(ctx, links, result)

	fmt.Fprintf(p.progress, "Dump complete. %d unique lessons saved to %s.\n", result.Saved, p.writer.OutputDir())
	return result, err
}

// discoverLinks combines both extraction strategies into one
// deduplicated, sorted link list.
//
// The page-wide scan always runs even when the sidebar was found:
// duplicates across the two strategies are expected and cheap, while a
// sidebar that silently misses pages is not. Robustness over elegance.
func (p *Pipeline) discoverLinks(doc *goquery.Document, seedURL, baseURL string) []string {
	extractor := crawler.NewLinkExtractor(baseURL, p.selectors.Sidebar)

	fmt.Fprintln(p.progress, "Attempting to extract links from known sidebar selectors...")
	sidebarLinks := extractor.SidebarLinks(doc, seedURL)
	if len(sidebarLinks) > 0 {
		fmt.Fprintf(p.progress, "Found %d links using sidebar selectors.\n", len(sidebarLinks))
	} else {
		fmt.Fprintln(p.progress, "No links found using the configured sidebar selectors.")
	}

	fmt.Fprintln(p.progress, "Performing a broader search for links on the entire page...")
	pageLinks := extractor.PageLinks(doc, seedURL)
	if len(pageLinks) > 0 {
		fmt.Fprintf(p.progress, "Found %d links with page-wide search.\n", len(pageLinks))
	} else {
		fmt.Fprintln(p.progress, "No additional links found with page-wide search.")
	}

	return crawler.Combine(sidebarLinks, pageLinks)
}

// processLinks runs the per-lesson loop over the sorted link list.
// It returns a non-nil error only when the context is cancelled;
// every page-level failure is a skip.
func (p *Pipeline) processLinks(ctx context.Context, links []string, result *model.Result) error {
	savedTitles := make(map[string]bool)

	for i, lessonURL := range links {
		// Check for cancellation between pages; each fetch also
		// carries the context for mid-request cancellation.
		select {
		case <-ctx.Done():
			p.logger.Warn("dump cancelled", "remaining", len(links)-i)
			return ctx.Err()
		default:
		}

		fmt.Fprintf(p.progress, "Processing URL (%d/%d): %s\n", i+1, len(links), lessonURL)
		p.processLesson(ctx, lessonURL, savedTitles, result)
	}

	return nil
}

// processLesson handles a single lesson page: fetch, resolve title,
// extract article content, dedupe by title, convert, and save.
func (p *Pipeline) processLesson(ctx context.Context, lessonURL string, savedTitles map[string]bool, result *model.Result) {
	doc, err := p.fetcher.Fetch(ctx, lessonURL)
	if err != nil {
		p.logger.Warn("fetch failed", "url", lessonURL, "error", err)
		fmt.Fprintf(p.progress, "  Failed to fetch %s\n", lessonURL)
		result.FetchFailures++
		return
	}

	lesson := &model.Lesson{
		URL:   lessonURL,
		Title: extract.Title(doc, lessonURL),
	}

	lesson.HTML = extract.Content(doc, p.selectors.Article)
	if lesson.HTML == "" {
		p.logger.Warn("no article content", "url", lessonURL, "selector", p.selectors.Article)
		fmt.Fprintf(p.progress, "  Could not extract content from %s\n", lessonURL)
		result.MissingContent++
		return
	}

	// Duplicate titles mean duplicate content (e.g., the same page
	// reachable under two URLs); the content is discarded without
	// being converted.
	if savedTitles[lesson.Title] {
		fmt.Fprintf(p.progress, "  Skipping duplicate content for title: %q\n", lesson.Title)
		result.DuplicateTitles++
		return
	}

	lesson.Markdown, err = convert.ToMarkdown(lesson.HTML)
	if err != nil {
		p.logger.Warn("markdown conversion failed", "url", lessonURL, "error", err)
		fmt.Fprintf(p.progress, "  Failed to convert %s\n", lessonURL)
		result.EmptyMarkdown++
		return
	}
	if convert.IsBlank(lesson.Markdown) {
		fmt.Fprintf(p.progress, "  Skipping empty or whitespace-only markdown for title: %q\n", lesson.Title)
		result.EmptyMarkdown++
		return
	}

	// Prefer the resolved title as the filename base; fall back to the
	// URL tail when only the placeholder was available.
	base := lesson.Title
	if !lesson.HasTitle() {
		if tail := extract.URLTail(lessonURL); tail != "" {
			base = tail
		}
	}

	// The sequence number is claimed only by a successful write, so
	// saved files are numbered 001, 002, ... without gaps.
	lesson.Filename = writer.NumberedName(result.Saved+1, base)
	path, err := p.writer.Save(lesson.Filename, lesson.Markdown)
	if err != nil {
		p.logger.Error("save failed", "url", lessonURL, "file", lesson.Filename, "error", err)
		fmt.Fprintf(p.progress, "  Error saving %s: %v\n", lesson.Filename, err)
		return
	}

	fmt.Fprintf(p.progress, "  Saved: %s\n", path)
	savedTitles[lesson.Title] = true
	result.RecordSave(writer.Sanitize(lesson.Filename))
}
