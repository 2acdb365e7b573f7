package model

// Lesson represents a single documentation page as it moves through the
// fetch → extract → convert → save sequence. It is transient: a Lesson
// lives for exactly one loop iteration and is either written to disk or
// discarded.
//
// Design decision: We keep both the extracted HTML fragment and the
// converted Markdown on the struct because:
//  1. The duplicate-title check must run before conversion, so the two
//     stages are populated at different times
//  2. Report writers can show why a page was skipped at either stage
//  3. The struct doubles as the unit of work in tests
type Lesson struct {
	// URL is the absolute, fragment-free URL the page was fetched from.
	URL string

	// Title is the resolved human-readable title. Falls back to a
	// URL-derived title and finally to PlaceholderTitle.
	Title string

	// HTML is the serialized article fragment extracted from the page.
	// Empty when the content selector matched nothing.
	HTML string

	// Markdown is the converted article content.
	// Populated only for pages that pass the duplicate-title check.
	Markdown string

	// Filename is the final numbered file name, set on successful save.
	Filename string
}

// PlaceholderTitle is used when no title can be resolved from either
// the document or the URL.
const PlaceholderTitle = "untitled lesson"

// HasTitle reports whether the lesson resolved a real title rather than
// the placeholder.
func (l *Lesson) HasTitle() bool {
	return l.Title != "" && l.Title != PlaceholderTitle
}
