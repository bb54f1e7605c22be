package model

// Status classifies the provenance of a parameter value.
type Status string

const (
	// StatusEstablished marks a value taken directly from experiment or
	// literature.
	StatusEstablished Status = "ESTABLISHED"

	// StatusDerived marks a value computed from other registered parameters
	// with zero free inputs.
	StatusDerived Status = "DERIVED"

	// StatusPredicted marks a value whose computation involved at least one
	// fitted or calibrated coefficient.
	StatusPredicted Status = "PREDICTED"
)

// Valid reports whether s is one of the known status values.
func (s Status) Valid() bool {
	switch s {
	case StatusEstablished, StatusDerived, StatusPredicted:
		return true
	}
	return false
}
