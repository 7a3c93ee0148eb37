package config

// Model is the unified, format-agnostic representation of everything a
// catalog source can declare: an ordered list of component definitions and
// an optional default speed table.
type Model struct {
	// Components in declaration order. Order matters: it is the
	// registration order, and registration only accepts ingredients that
	// were declared earlier.
	Components []*ComponentDef

	// Speeds maps producer category names to throughput multipliers.
	// Queries may override it; an empty map means no modifiers.
	Speeds map[string]float64
}

// ComponentDef is the format-agnostic representation of a single
// `component` declaration.
type ComponentDef struct {
	Name string
	// Seconds is nil for raw resources.
	Seconds     *float64
	Ingredients map[string]float64
	// Producer is the declared category name, validated when the catalog
	// is built.
	Producer string
}
