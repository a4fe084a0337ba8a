package beam

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is matched by every *ValidationError.
var ErrInvalidInput = errors.New("beam: invalid input")

// ValidationError represents a rejected beam formula argument
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// Is makes errors.Is(err, ErrInvalidInput) hold.
func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

func validatePositive(value float64, name string) error {
	if !(value > 0) {
		return &ValidationError{msg: fmt.Sprintf("%s must be positive; got %g", name, value)}
	}
	return nil
}

func validatePosition(x, length float64) error {
	if !(x >= 0 && x <= length) {
		return &ValidationError{msg: fmt.Sprintf("x must be within [0, %g]; got %g", length, x)}
	}
	return nil
}

// MaximumDeflection returns the midspan deflection of a simply supported
// beam under a uniformly distributed load: 5wL⁴/(384EI)
func MaximumDeflection(loadPerLength, length, elasticity, inertia float64) (float64, error) {
	if err := validatePositive(loadPerLength, "load_per_length"); err != nil {
		return 0, err
	}
	if err := validatePositive(length, "length"); err != nil {
		return 0, err
	}
	if err := validatePositive(elasticity, "elasticity"); err != nil {
		return 0, err
	}
	if err := validatePositive(inertia, "inertia"); err != nil {
		return 0, err
	}
	l2 := length * length
	return 5 * loadPerLength * l2 * l2 / (384 * elasticity * inertia), nil
}

// BendingMoment returns M(x) = wx(L-x)/2 for a simply supported beam under UDL
func BendingMoment(loadPerLength, length, x float64) (float64, error) {
	if err := validatePositive(loadPerLength, "load_per_length"); err != nil {
		return 0, err
	}
	if err := validatePositive(length, "length"); err != nil {
		return 0, err
	}
	if err := validatePosition(x, length); err != nil {
		return 0, err
	}
	return loadPerLength * x * (length - x) / 2, nil
}

// ShearForce returns V(x) = w(L/2-x) for a simply supported beam under UDL
func ShearForce(loadPerLength, length, x float64) (float64, error) {
	if err := validatePositive(loadPerLength, "load_per_length"); err != nil {
		return 0, err
	}
	if err := validatePositive(length, "length"); err != nil {
		return 0, err
	}
	if err := validatePosition(x, length); err != nil {
		return 0, err
	}
	return loadPerLength * (length/2 - x), nil
}

// SimplySupported is a single span carrying a uniformly distributed load
type SimplySupported struct {
	Load   float64 // w - load per unit length
	Length float64 // L - span
}

// NewSimplySupported creates a validated span
func NewSimplySupported(load, length float64) (*SimplySupported, error) {
	if err := validatePositive(load, "load_per_length"); err != nil {
		return nil, err
	}
	if err := validatePositive(length, "length"); err != nil {
		return nil, err
	}
	return &SimplySupported{Load: load, Length: length}, nil
}

// Reactions returns the left and right support reactions (wL/2 each)
func (b *SimplySupported) Reactions() (left, right float64) {
	r := b.Load * b.Length / 2
	return r, r
}

// MaxMoment returns wL²/8 at midspan
func (b *SimplySupported) MaxMoment() float64 {
	return b.Load * b.Length * b.Length / 8
}

// Deflection returns the midspan deflection for the given stiffness
func (b *SimplySupported) Deflection(elasticity, inertia float64) (float64, error) {
	return MaximumDeflection(b.Load, b.Length, elasticity, inertia)
}

// Station holds the internal forces at one point along the span
type Station struct {
	X      float64
	Moment float64
	Shear  float64
}

// Stations samples moment and shear at n+1 equally spaced points from
// x = 0 to x = L. n must be at least 1.
func (b *SimplySupported) Stations(n int) ([]Station, error) {
	if n < 1 {
		return nil, &ValidationError{msg: fmt.Sprintf("number of segments must be at least 1; got %d", n)}
	}
	out := make([]Station, n+1)
	for i := 0; i <= n; i++ {
		x := b.Length * float64(i) / float64(n)
		if i == n {
			x = b.Length
		}
		m, err := BendingMoment(b.Load, b.Length, x)
		if err != nil {
			return nil, err
		}
		v, err := ShearForce(b.Load, b.Length, x)
		if err != nil {
			return nil, err
		}
		out[i] = Station{X: x, Moment: m, Shear: v}
	}
	return out, nil
}
