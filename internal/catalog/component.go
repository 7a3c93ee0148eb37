package catalog

import "fmt"

// ProducerCategory identifies the class of building that produces a component.
type ProducerCategory int

const (
	// Machine is a general assembling machine.
	Machine ProducerCategory = iota
	// ChemPlant is a chemical plant.
	ChemPlant
	// Furnace is a smelting furnace.
	Furnace
	// RocketSilo is a rocket silo.
	RocketSilo
	// Infinite marks a component with unlimited, instant availability.
	// Raw resources use it; no producer is ever required for them.
	Infinite
)

// String returns the canonical name of the category, as used in catalog files.
func (p ProducerCategory) String() string {
	switch p {
	case Machine:
		return "machine"
	case ChemPlant:
		return "chem_plant"
	case Furnace:
		return "furnace"
	case RocketSilo:
		return "rocket_silo"
	case Infinite:
		return "infinite"
	default:
		return fmt.Sprintf("ProducerCategory(%d)", int(p))
	}
}

// ParseProducerCategory converts a canonical category name into its
// ProducerCategory value. Unknown names are rejected so typos in catalog
// files fail at load time rather than silently becoming a default.
func ParseProducerCategory(s string) (ProducerCategory, error) {
	switch s {
	case "machine":
		return Machine, nil
	case "chem_plant":
		return ChemPlant, nil
	case "furnace":
		return Furnace, nil
	case "rocket_silo":
		return RocketSilo, nil
	case "infinite":
		return Infinite, nil
	default:
		return 0, fmt.Errorf("unknown producer category %q", s)
	}
}

// Component is a single named item in the production graph.
type Component struct {
	// Name is the unique identifier of the component within a catalog.
	Name string
	// Seconds is the time to produce one unit. A nil value marks a raw
	// resource: no production time and no producer requirement.
	Seconds *float64
	// Ingredients maps ingredient names to the quantity consumed per one
	// unit of this component produced.
	Ingredients map[string]float64
	// Producer is the category of building that produces this component.
	Producer ProducerCategory
}

// Raw reports whether the component is a raw resource with no craft time.
func (c *Component) Raw() bool {
	return c.Seconds == nil
}

// validate checks the definition-local invariants: a non-empty name,
// a positive craft time when one is declared, and non-negative quantities.
func (c *Component) validate() error {
	if c.Name == "" {
		return fmt.Errorf("%w: component name must not be empty", ErrInvalidComponent)
	}
	if c.Seconds != nil && *c.Seconds <= 0 {
		return fmt.Errorf("%w: component %q declares craft time %v, must be positive",
			ErrInvalidComponent, c.Name, *c.Seconds)
	}
	for ingredient, qty := range c.Ingredients {
		if qty < 0 {
			return fmt.Errorf("%w: component %q requires %v of %q, quantity must not be negative",
				ErrInvalidComponent, c.Name, qty, ingredient)
		}
	}
	return nil
}

// Seconds is a convenience for building components with a literal craft time.
func Seconds(s float64) *float64 {
	return &s
}
