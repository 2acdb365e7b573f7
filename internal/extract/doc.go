// Package extract locates the main article content of a lesson page
// and resolves a human-readable title for it.
package extract
