// Package main provides the entry point for the docdump CLI.
//
// docdump crawls a documentation website starting from one URL,
// discovers sibling lesson pages via sidebar navigation and a
// page-wide link scan, extracts each page's article content, converts
// it to Markdown, and saves every page as a numbered file.
//
// Usage:
//
//	docdump dump <url>
//	docdump dump -o lessons https://reactnative.dev/docs/getting-started
//
// See --help for all available options.
package main

// main is the entry point for docdump.
func main() {
	Execute()
}
