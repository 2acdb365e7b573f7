package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/nao1215/docdump/internal/model"
)

// SimpleWriter outputs human-readable text summaries.
// This is the default format, designed for terminal display.
//
// Design decision: We use plain text with ASCII formatting rather than
// ANSI colors because:
//  1. It works in all terminals without compatibility issues
//  2. It's easier to pipe to files or other tools
//  3. Color can be added as an option later if needed
type SimpleWriter struct {
	baseWriter

	// verbose enables the per-file listing in the output.
	verbose bool
}

// SimpleWriterOption configures a SimpleWriter.
type SimpleWriterOption func(*SimpleWriter)

// WithVerbose enables verbose output listing every saved file.
func WithVerbose(verbose bool) SimpleWriterOption {
	return func(w *SimpleWriter) {
		w.verbose = verbose
	}
}

// NewSimpleWriter creates a SimpleWriter that outputs to the given writer.
func NewSimpleWriter(output io.Writer, opts ...SimpleWriterOption) *SimpleWriter {
	w := &SimpleWriter{
		baseWriter: newBaseWriter(output),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

// Write outputs the run summary in human-readable format.
func (w *SimpleWriter) Write(result *model.Result) (int, error) {
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n")
	sb.WriteString("                      DOCDUMP SUMMARY\n")
	sb.WriteString(strings.Repeat("=", 60))
	sb.WriteString("\n\n")

	fmt.Fprintf(&sb, "Seed URL:         %s\n", result.SeedURL)
	fmt.Fprintf(&sb, "Base URL:         %s\n", result.BaseURL)
	fmt.Fprintf(&sb, "Output Directory: %s\n", result.OutputDir)
	fmt.Fprintf(&sb, "Links Discovered: %d\n", result.LinksDiscovered)
	fmt.Fprintf(&sb, "Lessons Saved:    %d\n", result.Saved)
	fmt.Fprintf(&sb, "Elapsed:          %s\n", result.Elapsed.Round(time.Millisecond))

	if result.Skipped() > 0 {
		sb.WriteString("\nSkipped pages:\n")
		writeSkipLine(&sb, "fetch failed", result.FetchFailures)
		writeSkipLine(&sb, "no article content", result.MissingContent)
		writeSkipLine(&sb, "duplicate title", result.DuplicateTitles)
		writeSkipLine(&sb, "empty markdown", result.EmptyMarkdown)
	}

	if w.verbose && len(result.SavedFiles) > 0 {
		sb.WriteString("\nSaved files:\n")
		for _, name := range result.SavedFiles {
			fmt.Fprintf(&sb, "  %s\n", name)
		}
	}

	sb.WriteString("\n")

	return w.output.Write([]byte(sb.String()))
}

// writeSkipLine writes one skip-reason tally, omitting zero counts.
func writeSkipLine(sb *strings.Builder, reason string, count int) {
	if count > 0 {
		fmt.Fprintf(sb, "  %-20s %d\n", reason+":", count)
	}
}
