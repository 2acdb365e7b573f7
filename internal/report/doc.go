// Package report renders end-of-run summaries in plain text or
// Markdown format.
package report
