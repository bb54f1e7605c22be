package sim

import (
	"context"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/model"
)

// Metadata identifies one simulation to the orchestrator and the report.
type Metadata struct {
	// Name is the unique slug manifest simulation blocks refer to.
	Name   string
	Title  string
	Sector string
}

// Section is a pass-through content fragment produced by a simulation for
// downstream document tooling. The validation core records it untouched.
type Section struct {
	Heading string
	Body    string
}

// Result is everything one simulation run hands back for merging into the
// registry.
type Result struct {
	Formulas   []model.Formula
	Parameters []model.Parameter
	Content    []Section
}

// Adapter is the uniform contract every derivation package implements so
// its output can be merged into the registry without per-package special
// cases.
type Adapter interface {
	Metadata() Metadata
	Run(ctx context.Context) (*Result, error)
}
