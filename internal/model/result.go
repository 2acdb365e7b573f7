package model

import "time"

// Result summarizes one complete dump run. It is built incrementally by
// the pipeline and handed to a report.Writer once the link list is
// exhausted.
type Result struct {
	// SeedURL is the user-supplied starting page.
	SeedURL string

	// BaseURL is the path-prefix filter derived from the seed URL.
	BaseURL string

	// OutputDir is the directory Markdown files were written to.
	OutputDir string

	// LinksDiscovered is the number of unique lesson links after
	// combining both extraction strategies.
	LinksDiscovered int

	// Saved is the number of files actually written. This is also the
	// highest sequence number used, since the counter increments only
	// on successful saves.
	Saved int

	// FetchFailures counts pages that could not be fetched.
	FetchFailures int

	// MissingContent counts pages where the article selector matched
	// nothing.
	MissingContent int

	// DuplicateTitles counts pages skipped because an identically
	// titled page was already saved.
	DuplicateTitles int

	// EmptyMarkdown counts pages whose conversion produced only
	// whitespace.
	EmptyMarkdown int

	// SavedFiles lists the written file names in save order.
	SavedFiles []string

	// StartedAt is when the run began.
	StartedAt time.Time

	// Elapsed is the total run duration.
	Elapsed time.Duration
}

// NewResult creates a Result for a run starting now.
func NewResult(seedURL, baseURL, outputDir string) *Result {
	return &Result{
		SeedURL:   seedURL,
		BaseURL:   baseURL,
		OutputDir: outputDir,
		StartedAt: time.Now(),
	}
}

// Skipped returns the total number of discovered links that did not
// produce a file.
func (r *Result) Skipped() int {
	return r.FetchFailures + r.MissingContent + r.DuplicateTitles + r.EmptyMarkdown
}

// RecordSave registers a successfully written file.
func (r *Result) RecordSave(filename string) {
	r.Saved++
	r.SavedFiles = append(r.SavedFiles, filename)
}
