package frame

import (
	"errors"
	"fmt"
)

// Domain errors for frame analysis.
var (
	// ErrInvalidInput is matched by every *ValidationError.
	ErrInvalidInput = errors.New("frame: invalid input")

	// ErrDimensionMismatch indicates a load, displacement or fixed-DOF
	// vector that does not fit 3 x node count.
	ErrDimensionMismatch = errors.New("frame: dimension mismatch")

	// ErrSingular indicates a singular or near-singular reduced stiffness
	// matrix, i.e. an unstable or under-restrained structure.
	ErrSingular = errors.New("frame: structure is unstable (singular stiffness matrix)")

	// ErrNotInEquilibrium is returned by CheckEquilibrium.
	ErrNotInEquilibrium = errors.New("frame: loads and reactions are not in equilibrium")
)

// ValidationError reports malformed model input found before any
// numerical work.
type ValidationError struct {
	Field string // offending quantity, e.g. "area" or "end"
	Index int    // element or node index, -1 when not applicable
	Msg   string
}

func (e *ValidationError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("frame: %s: %s", e.Field, e.Msg)
	}
	return fmt.Sprintf("frame: element %d: %s: %s", e.Index, e.Field, e.Msg)
}

// Is makes errors.Is(err, ErrInvalidInput) hold for validation errors.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func dimensionError(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrDimensionMismatch, fmt.Sprintf(format, args...))
}
