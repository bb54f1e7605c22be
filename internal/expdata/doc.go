// Package expdata loads experimental reference documents and serves
// value/uncertainty lookups by dotted path.
//
// Documents are JSON files keyed by section, each section carrying a
// "parameters" object of named {value, uncertainty} entries. Sibling
// structures such as correlation or covariance matrices are kept opaque and
// never interpreted. A document is parsed once per run and cached by its
// cleaned path; reference data is static for the lifetime of a run.
package expdata
