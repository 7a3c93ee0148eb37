package catalog

import (
	"fmt"
	"sync"
)

// Catalog is a registry of component definitions keyed by name.
//
// It is safe for concurrent use, though the natural usage pattern is
// phase-separated: register everything once at startup, then serve
// read-only queries for the life of the process.
type Catalog struct {
	mu         sync.RWMutex
	components map[string]*Component
	order      []string // names in registration order
}

// New creates a new, empty catalog.
func New() *Catalog {
	return &Catalog{
		components: make(map[string]*Component),
	}
}

// Register inserts a new component definition.
//
// It fails with ErrDuplicateName if the name is already taken, with
// ErrUnknownIngredient if any ingredient has not been registered before
// this component, and with ErrInvalidComponent on malformed definitions.
// A failed registration leaves the catalog unchanged.
func (c *Catalog) Register(comp *Component) error {
	if err := comp.validate(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.components[comp.Name]; exists {
		return fmt.Errorf("%w: %q is already registered", ErrDuplicateName, comp.Name)
	}
	for ingredient := range comp.Ingredients {
		if _, exists := c.components[ingredient]; !exists {
			return fmt.Errorf("%w: component %q references %q, which is not registered yet",
				ErrUnknownIngredient, comp.Name, ingredient)
		}
	}

	c.components[comp.Name] = comp
	c.order = append(c.order, comp.Name)
	return nil
}

// Get returns the component registered under the given name, or
// ErrUnknownComponent if there is none.
func (c *Catalog) Get(name string) (*Component, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	comp, ok := c.components[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownComponent, name)
	}
	return comp, nil
}

// Len returns the number of registered components.
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.components)
}

// Names returns all registered component names in registration order.
// The order is always a valid re-registration order: every component
// appears after all of its ingredients.
func (c *Catalog) Names() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, len(c.order))
	copy(names, c.order)
	return names
}
