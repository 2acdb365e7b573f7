package writer

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// illegalChars matches characters that are invalid in filenames on at
// least one supported filesystem. They are stripped, not replaced, so
// "Intro: Setup" becomes "Intro Setup.md" rather than "Intro_ Setup.md".
var illegalChars = regexp.MustCompile(`[\\/*?:"<>|]`)

// nonWordChars matches everything outside the conservative character
// set used for numbered filename bases.
var nonWordChars = regexp.MustCompile(`[^a-zA-Z0-9_-]`)

// Writer persists Markdown lessons to a single output directory.
// The directory is created lazily on the first save so a run that
// saves nothing leaves no directory behind.
type Writer struct {
	// outputDir is the directory Markdown files are written into.
	outputDir string
}

// New creates a Writer targeting the given output directory.
func New(outputDir string) *Writer {
	return &Writer{outputDir: outputDir}
}

// OutputDir returns the directory this writer saves into.
func (w *Writer) OutputDir() string {
	return w.outputDir
}

// Save writes Markdown text under the given filename candidate.
// The candidate is sanitized and given a .md suffix; an existing file
// of the same name is overwritten. Returns the path written to.
func (w *Writer) Save(filename, markdown string) (string, error) {
	if err := os.MkdirAll(w.outputDir, 0750); err != nil {
		return "", fmt.Errorf("failed to create output directory %s: %w", w.outputDir, err)
	}

	name := Sanitize(filename)
	path := filepath.Join(w.outputDir, name)

	if err := os.WriteFile(path, []byte(markdown), 0600); err != nil {
		return "", fmt.Errorf("failed to save %s: %w", path, err)
	}

	return path, nil
}

// Sanitize strips filesystem-illegal characters from a filename
// candidate and enforces a .md suffix.
func Sanitize(filename string) string {
	name := illegalChars.ReplaceAllString(filename, "")
	if !strings.HasSuffix(name, ".md") {
		name += ".md"
	}
	return name
}

// NumberedName builds the final filename for the nth saved lesson:
// a zero-padded three-digit sequence number, an underscore, and the
// base with every character outside [A-Za-z0-9_-] replaced by an
// underscore.
// Sequence numbers count successful saves only, so saved files never
// have gaps.
func NumberedName(seq int, base string) string {
	return fmt.Sprintf("%03d_%s", seq, nonWordChars.ReplaceAllString(base, "_"))
}
