package registry

import (
	"fmt"
	"slices"

	"github.com/andrewkwatts-maker/PrincipiaMetaphysica-sub019/internal/model"
)

// Registry holds every registered parameter and formula for one validation
// run, preserving insertion order for deterministic reporting.
type Registry struct {
	params       map[string]model.Parameter
	paramOrder   []string
	formulas     map[string]model.Formula
	formulaOrder []string
}

// New creates an empty, independent Registry instance. The orchestrator
// constructs its own registry through New and passes it by reference to
// every simulation and the validation engine.
func New() *Registry {
	return &Registry{
		params:   make(map[string]model.Parameter),
		formulas: make(map[string]model.Formula),
	}
}

// Reset restores the registry to its freshly constructed state. A reset
// registry behaves identically to one from New, so test suites can run
// independent scenarios in one process without cross-contamination.
func (r *Registry) Reset() {
	r.params = make(map[string]model.Parameter)
	r.paramOrder = nil
	r.formulas = make(map[string]model.Formula)
	r.formulaOrder = nil
}

// SetParam inserts or overwrites the parameter at p.Path after checking the
// schema rules (path grammar, known status, non-empty provenance). An
// overwrite keeps the original insertion position and discards the previous
// value; no history is kept. An overwrite that flips the status between
// DERIVED and PREDICTED while leaving the provenance byte-identical fails
// with model.ErrStatusConflict.
func (r *Registry) SetParam(p model.Parameter) error {
	if err := p.Validate(); err != nil {
		return err
	}
	prev, exists := r.params[p.Path]
	if exists && statusFlip(prev.Status, p.Status) && prev.Provenance == p.Provenance {
		return fmt.Errorf("parameter %q: overwrite flips status %s -> %s without a provenance update: %w",
			p.Path, prev.Status, p.Status, model.ErrStatusConflict)
	}
	r.params[p.Path] = p
	if !exists {
		r.paramOrder = append(r.paramOrder, p.Path)
	}
	return nil
}

// statusFlip reports whether an overwrite moves between the two computed
// provenance classes. ESTABLISHED values may be refined in either direction
// freely; only the DERIVED/PREDICTED boundary hides a real conflict.
func statusFlip(old, new model.Status) bool {
	computed := func(s model.Status) bool {
		return s == model.StatusDerived || s == model.StatusPredicted
	}
	return old != new && computed(old) && computed(new)
}

// GetParam returns the parameter at path, failing with model.ErrNotFound
// when it is absent. It never hands back a zero value on a miss.
func (r *Registry) GetParam(path string) (model.Parameter, error) {
	p, ok := r.params[path]
	if !ok {
		return model.Parameter{}, fmt.Errorf("parameter %q: %w", path, model.ErrNotFound)
	}
	return p, nil
}

// HasParam reports whether path is registered. It never fails.
func (r *Registry) HasParam(path string) bool {
	_, ok := r.params[path]
	return ok
}

// RegisterFormula registers a named formula, failing with
// model.ErrDuplicate when the name already exists. Formulas represent fixed
// derivation steps and, unlike parameters, are never overwritten.
func (r *Registry) RegisterFormula(f model.Formula) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if _, ok := r.formulas[f.Name]; ok {
		return fmt.Errorf("formula %q: %w", f.Name, model.ErrDuplicate)
	}
	f.Produces = slices.Clone(f.Produces)
	r.formulas[f.Name] = f
	r.formulaOrder = append(r.formulaOrder, f.Name)
	return nil
}

// GetFormula returns the formula registered under name, failing with
// model.ErrNotFound when it is absent.
func (r *Registry) GetFormula(name string) (model.Formula, error) {
	f, ok := r.formulas[name]
	if !ok {
		return model.Formula{}, fmt.Errorf("formula %q: %w", name, model.ErrNotFound)
	}
	return copyFormula(f), nil
}

// HasFormula reports whether name is registered. It never fails.
func (r *Registry) HasFormula(name string) bool {
	_, ok := r.formulas[name]
	return ok
}

// Params returns a snapshot copy of every registered parameter keyed by
// path. Mutating the returned map does not touch registry state.
func (r *Registry) Params() map[string]model.Parameter {
	snapshot := make(map[string]model.Parameter, len(r.params))
	for path, p := range r.params {
		snapshot[path] = p
	}
	return snapshot
}

// ParamsInOrder returns a snapshot of every registered parameter in
// insertion order, the order reports are emitted in.
func (r *Registry) ParamsInOrder() []model.Parameter {
	out := make([]model.Parameter, 0, len(r.paramOrder))
	for _, path := range r.paramOrder {
		out = append(out, r.params[path])
	}
	return out
}

// FormulasInOrder returns a snapshot of every registered formula in
// registration order.
func (r *Registry) FormulasInOrder() []model.Formula {
	out := make([]model.Formula, 0, len(r.formulaOrder))
	for _, name := range r.formulaOrder {
		out = append(out, copyFormula(r.formulas[name]))
	}
	return out
}

// Len returns the number of registered parameters.
func (r *Registry) Len() int {
	return len(r.params)
}

// copyFormula deep-copies the one mutable field so snapshot reads stay
// snapshots.
func copyFormula(f model.Formula) model.Formula {
	f.Produces = slices.Clone(f.Produces)
	return f
}
