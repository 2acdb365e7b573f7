package convert

import (
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
)

// ToMarkdown converts an HTML fragment to Markdown text.
// Empty input yields empty output without error. The fragment is passed
// to the converter as-is; no semantic validation happens here.
//
// Design decision: We wrap the library in a package function rather
// than exposing it directly because:
//  1. The pipeline depends on this package, not on the library
//  2. The empty-input short circuit lives in one place
//  3. Swapping converters later touches only this file
func ToMarkdown(html string) (string, error) {
	if html == "" {
		return "", nil
	}

	return htmltomarkdown.ConvertString(html)
}

// IsBlank reports whether converted Markdown contains no visible
// content. Pages converting to blank Markdown are skipped rather than
// written as empty files.
func IsBlank(markdown string) bool {
	return strings.TrimSpace(markdown) == ""
}
