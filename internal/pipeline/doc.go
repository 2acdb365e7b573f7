// Package pipeline orchestrates a complete dump run: discover lesson
// links from the seed page, then fetch, extract, convert, and save each
// lesson in sequence.
package pipeline
