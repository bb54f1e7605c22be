package sim

import (
	"fmt"
	"log/slog"
	"slices"
)

// Catalog holds the compiled-in simulation adapters keyed by name. The
// manifest's simulation list is resolved against it before anything runs,
// so an unknown name fails at composition time instead of mid-run.
type Catalog struct {
	adapters map[string]Adapter
	order    []string
}

// NewCatalog creates an empty adapter catalog.
func NewCatalog() *Catalog {
	return &Catalog{
		adapters: make(map[string]Adapter),
	}
}

// Add registers a compiled-in adapter. Registering an empty or already
// taken name is a programmer error and panics.
func (c *Catalog) Add(adapter Adapter) {
	name := adapter.Metadata().Name
	if name == "" {
		panic("simulation adapter with an empty name")
	}
	if _, exists := c.adapters[name]; exists {
		panic(fmt.Sprintf("simulation adapter with name '%s' already registered", name))
	}
	slog.Debug("Registering simulation adapter.", "name", name)
	c.adapters[name] = adapter
	c.order = append(c.order, name)
}

// Resolve maps manifest simulation names onto adapters, in the given order.
// An empty list selects every registered adapter in registration order.
func (c *Catalog) Resolve(names []string) ([]Adapter, error) {
	if len(names) == 0 {
		names = c.order
	}
	out := make([]Adapter, 0, len(names))
	for _, name := range names {
		adapter, ok := c.adapters[name]
		if !ok {
			return nil, fmt.Errorf("unknown simulation %q (known: %v)", name, c.order)
		}
		out = append(out, adapter)
	}
	return out, nil
}

// Names returns every registered adapter name in registration order.
func (c *Catalog) Names() []string {
	return slices.Clone(c.order)
}
