// Package manifest loads the HCL validation manifest: experiment sources,
// the ordered simulation run list, and the explicit check table mapping
// registry parameters to experimental reference values.
//
// The check table is the only association mechanism between computed
// parameters and reference data. Nothing is ever matched by name similarity.
package manifest
