// Package report defines the validation report model and its two writers:
// an indented JSON artifact for downstream tooling and an aligned text
// table for humans. Both emit rows in the same deterministic order, the
// check-table declaration order, so runs can be diffed.
package report
