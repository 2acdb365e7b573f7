package config

import (
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

// Default configuration values.
// These mirror the behavior of the original one-off scraper where
// applicable and are all overridable via CLI flags.
const (
	// DefaultTimeout is the per-request HTTP timeout. Documentation
	// pages are small static HTML, so 10 seconds is generous; a page
	// that takes longer is almost certainly unreachable.
	DefaultTimeout = 10 * time.Second

	// DefaultOutputDir is the directory Markdown files are written to
	// when no --output flag is given.
	DefaultOutputDir = "output_lessons"

	// DefaultUserAgent identifies docdump in HTTP requests.
	// A descriptive User-Agent lets site operators identify the
	// traffic in their logs.
	DefaultUserAgent = "docdump/1.0 (+https://github.com/nao1215/docdump)"

	// DefaultMaxBodySize limits the response body size to read.
	// 5MB is far beyond any realistic documentation page while
	// preventing memory exhaustion from unexpected responses.
	DefaultMaxBodySize = 5 * 1024 * 1024 // 5MB

	// AppName is the application name used for XDG directory paths.
	AppName = "docdump"
)

// Config holds all options for a dump run.
// The struct is populated from CLI flags and passed through the
// application via dependency injection rather than global state.
//
// Design decision: We use a single flat struct instead of nested
// structs (e.g., FetchConfig, OutputConfig) for simplicity. The number
// of options is small and nesting would add complexity without benefit.
type Config struct {
	// SeedURL is the starting page of the documentation site.
	// Required; sibling lesson pages are discovered from here.
	SeedURL string

	// OutputDir is the directory to write Markdown files into.
	// Created on the first successful save, never earlier, so a run
	// that saves nothing leaves no trace on disk.
	OutputDir string

	// Timeout is the HTTP timeout applied to each individual request.
	Timeout time.Duration

	// UserAgent is the User-Agent header sent with every request.
	UserAgent string

	// MaxBodySize is the maximum response body size in bytes to read.
	// Zero means use DefaultMaxBodySize.
	MaxBodySize int64

	// ConfigFilePath is the path to the .docdump configuration file.
	// If empty, the file is searched for in the current directory,
	// the home directory, and the XDG config directory, in that order.
	ConfigFilePath string

	// Site is the name of a selector profile from the configuration
	// file. Empty means use the profile defaults.
	Site string

	// Selectors are the CSS selectors used to locate the sidebar and
	// the article element. Populated from the configuration file (or
	// its built-in defaults) before the run starts.
	Selectors Selectors

	// MarkdownReport switches the end-of-run summary from plain text
	// to Markdown.
	MarkdownReport bool

	// Verbose enables debug-level log output.
	Verbose bool
}

// NewConfig creates a new Config with default values.
//
// Design decision: We use a constructor instead of relying on zero
// values because most defaults are non-zero (timeout, output dir,
// selectors). The constructor also documents what the defaults are.
func NewConfig() *Config {
	return &Config{
		OutputDir:   DefaultOutputDir,
		Timeout:     DefaultTimeout,
		UserAgent:   DefaultUserAgent,
		MaxBodySize: DefaultMaxBodySize,
		Selectors:   DefaultSelectors(),
	}
}

// XDGConfigDir returns the XDG config directory for docdump.
// On Linux: ~/.config/docdump
// On macOS: ~/Library/Application Support/docdump
// On Windows: %APPDATA%\docdump
func XDGConfigDir() string {
	return filepath.Join(xdg.ConfigHome, AppName)
}

// Validate checks if the configuration is valid.
// It returns a specific sentinel error describing what is invalid.
//
// Design decision: We validate once after CLI parsing rather than at
// each point of use to fail fast with a clear message. The first error
// found is returned because fixing one error often makes others
// irrelevant.
func (c *Config) Validate() error {
	if c.SeedURL == "" {
		return ErrNoSeedURL
	}

	if c.OutputDir == "" {
		return ErrNoOutputDir
	}

	// Zero or negative timeout would cause immediate request failures
	if c.Timeout <= 0 {
		return ErrInvalidTimeout
	}

	if c.MaxBodySize < 0 {
		return ErrInvalidMaxBodySize
	}

	if len(c.Selectors.Sidebar) == 0 || c.Selectors.Article == "" {
		return ErrNoSelectors
	}

	return nil
}
