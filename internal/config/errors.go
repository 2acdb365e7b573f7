package config

import "errors"

// Configuration validation errors.
// These errors are returned by Config.Validate() and provide specific
// information about what is wrong with the configuration.
//
// Design decision: We use package-level sentinel errors rather than
// creating new error instances in Validate(). This allows callers to
// use errors.Is() for programmatic error handling while still providing
// human-readable messages.
var (
	// ErrNoSeedURL is returned when no starting URL is given.
	ErrNoSeedURL = errors.New("no seed URL specified: provide the documentation page to start from")

	// ErrNoOutputDir is returned when the output directory is empty.
	ErrNoOutputDir = errors.New("no output directory specified")

	// ErrInvalidTimeout is returned when the timeout is not positive.
	// A timeout of zero or negative would cause immediate connection failures.
	ErrInvalidTimeout = errors.New("invalid timeout: must be positive")

	// ErrInvalidMaxBodySize is returned when the max body size is negative.
	// Use 0 to fall back to the default limit.
	ErrInvalidMaxBodySize = errors.New("invalid max body size: must be non-negative")

	// ErrNoSelectors is returned when the selector profile is missing a
	// sidebar or article selector. A run without selectors could never
	// extract anything.
	ErrNoSelectors = errors.New("invalid selector profile: sidebar and article selectors are required")
)
