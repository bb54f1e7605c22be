package sim

import (
	"context"
	"fmt"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/ctxlog"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/registry"
)

// Outcome records how one simulation run went, for the report header.
type Outcome struct {
	Name       string
	Title      string
	Sector     string
	Err        error
	Formulas   int
	Parameters int
	Sections   int
}

// Runner executes simulation adapters sequentially in a fixed order,
// merging every result into one registry.
type Runner struct {
	reg *registry.Registry
}

// NewRunner returns a Runner writing into reg.
func NewRunner(reg *registry.Registry) *Runner {
	return &Runner{reg: reg}
}

// RunAll runs every adapter in order. An adapter that fails or panics is
// logged with its identity and skipped; its parameters never reach the
// registry and surface later as MISSING rows rather than aborting the run.
// A result the registry rejects is fatal and returns an error immediately.
func (r *Runner) RunAll(ctx context.Context, adapters []Adapter) ([]Outcome, error) {
	outcomes := make([]Outcome, 0, len(adapters))

	for _, adapter := range adapters {
		meta := adapter.Metadata()
		runCtx := ctxlog.With(ctx, "simulation", meta.Name)
		runLogger := ctxlog.FromContext(runCtx)
		runLogger.Info("▶️ Running simulation.", "title", meta.Title)

		out := Outcome{Name: meta.Name, Title: meta.Title, Sector: meta.Sector}
		res, err := runContained(runCtx, adapter)
		if err != nil {
			runLogger.Error("Simulation failed, continuing with the rest.", "error", err)
			out.Err = err
			outcomes = append(outcomes, out)
			continue
		}

		if err := Apply(r.reg, meta, res); err != nil {
			runLogger.Error("Registry rejected simulation result.", "error", err)
			return outcomes, err
		}

		if res != nil {
			out.Formulas = len(res.Formulas)
			out.Parameters = len(res.Parameters)
			out.Sections = len(res.Content)
		}
		outcomes = append(outcomes, out)
		runLogger.Info("✅ Simulation finished.", "parameters", out.Parameters, "formulas", out.Formulas)
	}

	return outcomes, nil
}

// runContained shields the run loop from a misbehaving adapter: a panic in
// Run becomes an ordinary error attributed to that adapter.
func runContained(ctx context.Context, adapter Adapter) (res *Result, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			res = nil
			err = fmt.Errorf("simulation panicked | %v", rec)
		}
	}()
	return adapter.Run(ctx)
}
