// Package writer sanitizes lesson titles into filesystem-safe names
// and persists converted Markdown to the output directory.
package writer
