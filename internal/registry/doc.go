// Package registry provides the central store for registered parameters and
// formulas during one validation run.
//
// The Registry is the single source of truth the simulations write into and
// the validation engine reads from. It owns every Parameter and Formula for
// the lifetime of the run: reads hand out snapshot copies, never live views,
// so no caller can mutate registry state behind its back.
//
// Lookups on unknown paths fail loudly with model.ErrNotFound. The one hard
// correctness rule of this package is that nothing ever defaults to a zero
// value on a miss: silent zero propagation corrupts every computation
// downstream of it.
//
// Parameters may be overwritten (the previous value is permanently lost; the
// registry keeps no history), with one exception:
// an overwrite that flips a parameter between DERIVED and PREDICTED without
// a provenance update fails with model.ErrStatusConflict, surfacing the
// disagreement instead of hiding it. Formulas are never overwritten at all.
//
// The execution model is single-threaded batch, so the Registry is not safe
// for concurrent use; callers that introduce goroutines must serialize
// access themselves.
package registry
