package model

import (
	"fmt"
	"strings"
)

// Parameter is a single named numeric quantity and its provenance.
type Parameter struct {
	// Path is the hierarchical dot-separated key, unique within a registry,
	// e.g. "topology.b3". It is the primary identifier; lookup is by path
	// and insertion order carries no meaning for identity.
	Path string

	// Value is the computed or adopted value.
	Value Number

	// Status classifies how Value came to be.
	Status Status

	// Provenance describes the derivation chain in free text: which
	// formulas and parameters produced Value. Required; a value nobody can
	// account for has no business in the registry.
	Provenance string

	// Uncertainty is the optional theory-side uncertainty on Value. It is
	// distinct from the experimental uncertainty a validation run divides
	// by.
	Uncertainty *Number

	// Unit is a display label. It takes no part in any computation.
	Unit string

	// Sector is an optional category label used to partition aggregate
	// validation statistics.
	Sector string
}

// Validate checks the schema rules a parameter must satisfy before the
// registry accepts it. Violations fail with ErrSchema naming the field.
func (p Parameter) Validate() error {
	if err := ValidatePath(p.Path); err != nil {
		return err
	}
	if !p.Status.Valid() {
		return fmt.Errorf("parameter %q has unknown status %q: %w", p.Path, string(p.Status), ErrSchema)
	}
	if strings.TrimSpace(p.Provenance) == "" {
		return fmt.Errorf("parameter %q has no provenance: %w", p.Path, ErrSchema)
	}
	return nil
}
