// Package model defines the data model shared by the registry and the
// validation engine: exact numeric values, parameter and formula records,
// the provenance status classification, the parameter path grammar, and the
// sentinel error taxonomy every component wraps.
//
// Everything in this package is a passive record. Ownership and lifecycle
// rules live in the registry; classification rules live in the validation
// engine.
package model
