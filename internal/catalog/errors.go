package catalog

import "errors"

var (
	// ErrUnknownComponent is returned when a query references a name that
	// is not present in the catalog.
	ErrUnknownComponent = errors.New("unknown component")

	// ErrUnknownIngredient is returned when a registration references an
	// ingredient that has not been registered yet. Rejecting forward
	// references is what keeps the ingredient graph acyclic.
	ErrUnknownIngredient = errors.New("unknown ingredient")

	// ErrDuplicateName is returned when a registration reuses an existing
	// component name. There is no upsert: a catalog is write-once data.
	ErrDuplicateName = errors.New("duplicate component name")

	// ErrInvalidComponent is returned when a definition violates a local
	// invariant, such as a negative ingredient quantity.
	ErrInvalidComponent = errors.New("invalid component definition")
)
