package model

import "errors"

// Sentinel errors shared across the validation core. Component errors wrap
// these with the offending path, name or file so callers can classify a
// failure with errors.Is and still read what went wrong.
var (
	// ErrNotFound marks a lookup of an unknown parameter path, formula name,
	// or experimental reference. Lookups fail loudly; there is no
	// default-to-zero fallback anywhere in the core.
	ErrNotFound = errors.New("not found")

	// ErrDuplicate marks an attempt to re-register an existing formula name.
	// Formulas represent fixed derivation steps and are never overwritten.
	ErrDuplicate = errors.New("already registered")

	// ErrDataFormat marks a malformed experimental reference document.
	ErrDataFormat = errors.New("malformed data")

	// ErrSchema marks a malformed parameter path or a record missing a
	// required field such as status or provenance.
	ErrSchema = errors.New("schema violation")

	// ErrStatusConflict marks a parameter overwrite that flips the status
	// between DERIVED and PREDICTED without updating the provenance. Such a
	// write hides a real disagreement between two derivations, so the
	// registry rejects it instead of silently keeping the newer value.
	ErrStatusConflict = errors.New("status conflict")
)
