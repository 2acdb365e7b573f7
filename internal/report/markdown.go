package report

import (
	"io"
	"strconv"

	"github.com/nao1215/markdown"

	"github.com/nao1215/docdump/internal/model"
)

// MarkdownWriter outputs run summaries in Markdown format.
// This format is designed for pasting into notes or issue trackers.
//
// Design decision: We use the nao1215/markdown library for fluent
// markdown generation which provides:
//  1. Type-safe markdown generation
//  2. Support for tables, lists, and code blocks
//  3. GitHub-flavored markdown output
type MarkdownWriter struct {
	baseWriter
}

// NewMarkdownWriter creates a MarkdownWriter that outputs to the given writer.
func NewMarkdownWriter(output io.Writer) *MarkdownWriter {
	return &MarkdownWriter{
		baseWriter: newBaseWriter(output),
	}
}

// Write outputs the run summary in Markdown format.
func (w *MarkdownWriter) Write(result *model.Result) (int, error) {
	md := markdown.NewMarkdown(w.output)

	md.H1("docdump Summary")
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Seed URL", "`" + result.SeedURL + "`"},
			{"Base URL", "`" + result.BaseURL + "`"},
			{"Output Directory", "`" + result.OutputDir + "`"},
			{"Started", result.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Links Discovered", strconv.Itoa(result.LinksDiscovered)},
			{"Lessons Saved", strconv.Itoa(result.Saved)},
		},
	})
	md.PlainText("")

	if result.Skipped() > 0 {
		md.H2("Skipped Pages")
		md.PlainText("")
		md.Table(markdown.TableSet{
			Header: []string{"Reason", "Count"},
			Rows: [][]string{
				{"Fetch failed", strconv.Itoa(result.FetchFailures)},
				{"No article content", strconv.Itoa(result.MissingContent)},
				{"Duplicate title", strconv.Itoa(result.DuplicateTitles)},
				{"Empty markdown", strconv.Itoa(result.EmptyMarkdown)},
			},
		})
		md.PlainText("")
	}

	if len(result.SavedFiles) > 0 {
		md.H2("Saved Files")
		md.PlainText("")
		md.BulletList(result.SavedFiles...)
		md.PlainText("")
	}

	return len(md.String()), md.Build()
}
