// Package sim defines the contract derivation packages implement to feed
// the registry, plus the sequential runner that executes them.
//
// Every simulation hands back one Result: formulas, parameters, and
// pass-through content sections. The runner merges results into a single
// registry in manifest order. A simulation that fails or panics is
// contained and skipped; a result the registry rejects (schema violation,
// duplicate formula, status conflict) aborts the whole run, since a
// corrupted registry would poison every downstream check.
package sim
