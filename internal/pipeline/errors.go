package pipeline

import "errors"

// Early-termination conditions.
// These are the only two failures that end a run before the link loop;
// every other failure is a per-page skip. The command layer maps them
// to explanatory messages rather than error exits, preserving the
// skip-and-continue character of the tool.
var (
	// ErrSeedUnreachable is returned when the seed page itself cannot
	// be fetched. Nothing is written and the output directory is not
	// created.
	ErrSeedUnreachable = errors.New("could not fetch the seed documentation page")

	// ErrNoLinks is returned when neither extraction strategy found a
	// single admissible lesson link on the seed page.
	ErrNoLinks = errors.New("no lesson links found on the seed page")
)
