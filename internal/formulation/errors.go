package formulation

import "fmt"

// ValidationError reports a request value outside the declared domain.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("formulation: invalid %s: %s", e.Field, e.Reason)
}

// NegativeVolumeError reports an over-specified formulation whose derived
// carrier oil volume fell below zero. Retrying the same input cannot succeed.
type NegativeVolumeError struct {
	DeficitML float64
}

func (e *NegativeVolumeError) Error() string {
	return fmt.Sprintf("formulation: carrier oil volume is negative by %.3f mL; reduce concentration or excipient percentages", e.DeficitML)
}

func validationErr(field, format string, args ...any) error {
	return &ValidationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
