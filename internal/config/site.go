package config

// Selectors holds the CSS selectors used to locate navigation and
// content on one documentation platform.
//
// Design decision: The original scraper hard-coded these for a single
// site. We make them a named, file-configurable profile because the
// selectors are the only site-specific coupling in the whole program;
// everything else generalizes for free.
type Selectors struct {
	// Sidebar lists selectors for the navigation container that holds
	// the lesson links. They are tried in order and the first match
	// wins, so more specific selectors should come first.
	Sidebar []string `yaml:"sidebar,omitempty"`

	// Article is the selector for the main content element of a
	// lesson page.
	Article string `yaml:"article,omitempty"`
}

// DefaultSelectors returns the selector profile for Docusaurus-style
// documentation sites, the platform the tool was originally written
// against.
func DefaultSelectors() Selectors {
	return Selectors{
		Sidebar: []string{
			"div.sidebar_CUen",
			`nav[aria-label="Docs sidebar"]`,
		},
		Article: "article",
	}
}

// File represents the structure of the .docdump configuration file.
type File struct {
	// Sites maps profile names to selector sets. Profile names are
	// free-form; by convention they name the documentation platform
	// (e.g., "docusaurus", "nextra") or the site's hostname.
	Sites map[string]Selectors `yaml:"sites,omitempty"`

	// Defaults contains the selector set applied when no profile is
	// requested or a requested profile omits a field.
	Defaults Selectors `yaml:"defaults,omitempty"`
}

// GetSelectors returns the selector profile for the given name.
// Fields missing from the named profile fall back to the file's
// defaults, and finally to the built-in defaults.
func (cf *File) GetSelectors(name string) Selectors {
	result := cf.Defaults

	// Fill holes in the file defaults from the built-in profile
	builtin := DefaultSelectors()
	if len(result.Sidebar) == 0 {
		result.Sidebar = builtin.Sidebar
	}
	if result.Article == "" {
		result.Article = builtin.Article
	}

	if name == "" {
		return result
	}

	if profile, ok := cf.Sites[name]; ok {
		if len(profile.Sidebar) > 0 {
			result.Sidebar = profile.Sidebar
		}
		if profile.Article != "" {
			result.Article = profile.Article
		}
	}

	return result
}
