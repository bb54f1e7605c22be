package testutil

import (
	"context"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/model"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/sim"
)

// StaticAdapter is a shared, self-contained simulation stub returning a
// fixed result. Integration tests compose it instead of compiling in the
// real simulation set.
type StaticAdapter struct {
	Name       string
	Title      string
	Sector     string
	Formulas   []model.Formula
	Parameters []model.Parameter
	RunErr     error  // returned from Run when set
	PanicMsg   string // panics in Run when set
	Runs       int    // incremented on every Run call
}

// Metadata implements sim.Adapter.
func (a *StaticAdapter) Metadata() sim.Metadata {
	return sim.Metadata{Name: a.Name, Title: a.Title, Sector: a.Sector}
}

// Run implements sim.Adapter.
func (a *StaticAdapter) Run(_ context.Context) (*sim.Result, error) {
	a.Runs++
	if a.PanicMsg != "" {
		panic(a.PanicMsg)
	}
	if a.RunErr != nil {
		return nil, a.RunErr
	}
	return &sim.Result{Formulas: a.Formulas, Parameters: a.Parameters}, nil
}

// DerivedParam builds a minimal valid DERIVED parameter for tests.
func DerivedParam(path, value string) model.Parameter {
	return model.Parameter{
		Path:       path,
		Value:      model.MustNumber(value),
		Status:     model.StatusDerived,
		Provenance: "test derivation",
	}
}
