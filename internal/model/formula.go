package model

import (
	"fmt"
	"strings"
)

// Formula is a named derivation step: a symbolic or textual expression
// together with the parameter paths it produces.
type Formula struct {
	// Name is the unique registry key for the formula.
	Name string

	// Expression is the symbolic or textual form of the derivation.
	Expression string

	// Label is a free-text display caption.
	Label string

	// Produces lists the parameter paths this formula yields, if any.
	Produces []string

	// ArtifactPath optionally links the formula to the derivation artifact
	// it was extracted from. Existence is checked at validation time, not at
	// registration: a formula may legitimately outlive a reorganized
	// artifact tree, but the report must say so.
	ArtifactPath string
}

// Validate checks the schema rules a formula must satisfy before the
// registry accepts it.
func (f Formula) Validate() error {
	if strings.TrimSpace(f.Name) == "" {
		return fmt.Errorf("formula has no name: %w", ErrSchema)
	}
	for _, path := range f.Produces {
		if err := ValidatePath(path); err != nil {
			return fmt.Errorf("formula %q: %w", f.Name, err)
		}
	}
	return nil
}
