package validation

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/ctxlog"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/expdata"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/manifest"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/model"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/registry"
	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/report"
)

var (
	one   = model.NumberFromInt(1)
	two   = model.NumberFromInt(2)
	three = model.NumberFromInt(3)
)

// Engine classifies registered parameters against experimental references.
type Engine struct {
	reg   *registry.Registry
	store *expdata.Store
}

// NewEngine returns an Engine reading from reg and store.
func NewEngine(reg *registry.Registry, store *expdata.Store) *Engine {
	return &Engine{reg: reg, store: store}
}

// Validate evaluates every check row independently, in declared order, and
// assembles the run report: one row per check regardless of outcome, the
// aggregate summary, and formula artifact warnings. Parameters with no
// check row are not evaluated at all. The returned error covers only
// unrecoverable conditions; per-row failures are recorded as data.
func (e *Engine) Validate(ctx context.Context, checks []manifest.Check) (*report.Report, error) {
	if e.reg == nil || e.store == nil {
		return nil, errors.New("validation engine needs a registry and a data store")
	}
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Validation started.", "checks", len(checks))

	rep := report.New()
	for _, c := range checks {
		row := e.evaluate(c)
		logger.Debug("Check evaluated.", "check", c.Name, "status", row.Status)
		rep.Results = append(rep.Results, row)
	}
	rep.Summary = report.Summarize(rep.Results)
	rep.Warnings = e.auditFormulas(ctx)

	logger.Info("Validation finished.",
		"checks", rep.Summary.Checks,
		"pass", rep.Summary.Pass,
		"marginal", rep.Summary.Marginal,
		"tension", rep.Summary.Tension,
		"fail", rep.Summary.Fail,
		"missing", rep.Summary.Missing,
		"invalid", rep.Summary.Invalid)
	return rep, nil
}

// evaluate produces the row for one check. Both lookups happen before the
// classification so the report shows everything that was known about the
// row even when it cannot be scored.
func (e *Engine) evaluate(c manifest.Check) report.Row {
	row := report.Row{
		Name:      c.Name,
		Sector:    c.Sector,
		ParamPath: c.Parameter,
	}

	// A non-finite value keeps Computed null: JSON has no NaN or infinity.
	// Its spelling still lands in ComputedExact, so the row stays explicit.
	param, regErr := e.reg.GetParam(c.Parameter)
	if regErr == nil {
		if param.Value.IsFinite() {
			row.Computed = report.FloatPtr(param.Value.Float64())
		}
		row.ComputedExact = param.Value.String()
	}

	exp, expErr := e.store.Get(c.File, c.Path)
	if expErr == nil {
		row.Experimental = report.FloatPtr(exp.Value.Float64())
		row.Uncertainty = report.FloatPtr(exp.Uncertainty.Float64())
	}

	switch {
	case regErr != nil:
		row.Status = report.StatusMissing
		row.Detail = "parameter not registered"
	case expErr != nil:
		row.Status = report.StatusInvalid
		row.Detail = expErr.Error()
	case !param.Value.IsFinite():
		row.Status = report.StatusInvalid
		row.Detail = "computed value is not finite"
	case exp.Uncertainty.Sign() <= 0:
		row.Status = report.StatusInvalid
		row.Detail = "experimental uncertainty is not positive"
	default:
		sigma := param.Value.Sub(exp.Value).Abs().Quo(exp.Uncertainty)
		row.Sigma = report.FloatPtr(sigma.Float64())
		row.SigmaExact = sigma.String()
		row.Status = classify(sigma)
	}
	return row
}

// classify maps a sigma deviation onto its category. Boundaries belong to
// the worse category: exactly 1 is MARGINAL, exactly 2 TENSION, exactly 3
// FAIL.
func classify(sigma model.Number) report.Status {
	switch {
	case sigma.Cmp(one) < 0:
		return report.StatusPass
	case sigma.Cmp(two) < 0:
		return report.StatusMarginal
	case sigma.Cmp(three) < 0:
		return report.StatusTension
	default:
		return report.StatusFail
	}
}

// auditFormulas checks that every formula pointing at a derivation artifact
// still points at something on disk. Missing artifacts are warnings, never
// fatal.
func (e *Engine) auditFormulas(ctx context.Context) []string {
	logger := ctxlog.FromContext(ctx)
	var warnings []string
	for _, f := range e.reg.FormulasInOrder() {
		if f.ArtifactPath == "" {
			continue
		}
		if _, err := os.Stat(f.ArtifactPath); err != nil {
			logger.Warn("Formula artifact not reachable.", "formula", f.Name, "artifact", f.ArtifactPath)
			warnings = append(warnings, fmt.Sprintf("formula %s: artifact %s not reachable", f.Name, f.ArtifactPath))
		}
	}
	return warnings
}
