package app

import "errors"

// Config holds all the necessary configuration for an App instance to run.
type Config struct {
	// CatalogPath points to an .hcl catalog file or a directory of them.
	CatalogPath string

	// Targets maps component names to the number of units to produce
	// every Seconds seconds. More than one entry means a combined
	// bill-of-materials query.
	Targets map[string]float64

	// Seconds is the production time window for rate queries.
	Seconds float64

	// Summarize switches from producer-count mode to transitive
	// ingredient totals for one unit of each target.
	Summarize bool

	// Plain emits "name : count" lines with counts rounded up, instead
	// of the default table with exact fractional values.
	Plain bool

	// Speeds maps producer category names to multipliers, overriding any
	// speeds block shipped with the catalog.
	Speeds map[string]float64

	LogFormat string
	LogLevel  string
}

// NewConfig validates a Config and returns it, or an error describing the
// first problem found.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.CatalogPath == "" {
		return nil, errors.New("CatalogPath is a required configuration field and cannot be empty")
	}
	if len(cfg.Targets) == 0 {
		return nil, errors.New("at least one target component is required")
	}
	if !cfg.Summarize && cfg.Seconds <= 0 {
		return nil, errors.New("Seconds must be positive for rate queries")
	}
	return &cfg, nil
}
