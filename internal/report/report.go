package report

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Status is the classification of one validation row.
type Status string

const (
	StatusPass     Status = "PASS"
	StatusMarginal Status = "MARGINAL"
	StatusTension  Status = "TENSION"
	StatusFail     Status = "FAIL"
	StatusMissing  Status = "MISSING"
	StatusInvalid  Status = "INVALID"
)

// Row is one validation result. Pointer fields serialize as null when the
// quantity is undefined for the row's status (a MISSING parameter has no
// computed value, an undefined sigma has no number).
type Row struct {
	Name          string   `json:"name"`
	Sector        string   `json:"sector,omitempty"`
	ParamPath     string   `json:"prediction_path"`
	Computed      *float64 `json:"computed"`
	ComputedExact string   `json:"computed_exact,omitempty"`
	Experimental  *float64 `json:"experimental"`
	Uncertainty   *float64 `json:"uncertainty"`
	Sigma         *float64 `json:"sigma"`
	SigmaExact    string   `json:"sigma_exact,omitempty"`
	Status        Status   `json:"status"`
	Detail        string   `json:"detail,omitempty"`
}

// Source names one experimental reference document the run loaded.
type Source struct {
	Label  string `json:"label"`
	File   string `json:"file"`
	Source string `json:"source,omitempty"`
}

// AdapterOutcome records how one simulation run went.
type AdapterOutcome struct {
	Name       string `json:"name"`
	Title      string `json:"title,omitempty"`
	Error      string `json:"error,omitempty"`
	Parameters int    `json:"parameters"`
	Formulas   int    `json:"formulas"`
}

// Report is the sole externally consumed artifact of a validation run.
type Report struct {
	RunID     string           `json:"run_id"`
	CreatedAt time.Time        `json:"created_at"`
	Manifest  []string         `json:"manifest,omitempty"`
	Sources   []Source         `json:"sources,omitempty"`
	Adapters  []AdapterOutcome `json:"simulations,omitempty"`
	Results   []Row            `json:"results"`
	Summary   Summary          `json:"summary"`
	Warnings  []string         `json:"warnings,omitempty"`
}

// New creates an empty report with a fresh run identity. Results starts
// non-nil so an empty run still serializes as [] rather than null.
func New() *Report {
	return &Report{
		RunID:     uuid.NewString(),
		CreatedAt: time.Now().UTC(),
		Results:   []Row{},
	}
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return nil
}

// FloatPtr is a small helper for filling nullable row fields.
func FloatPtr(f float64) *float64 {
	return &f
}
