package nscp

import (
	"fmt"
	"math"
)

// NSCP 2015 Material Constants

const (
	// Modulus of elasticity for steel (Section 420.2.2)
	Es = 200000.0 // MPa

	// MPa expresses a stress in MPa as Pa, the unit the frame solver uses
	MPa = 1e6
)

// Ec calculates the modulus of elasticity of normal-weight concrete
// NSCP 2015 Section 419.2.2.1
// fc and the result are in MPa
func Ec(fc float64) (float64, error) {
	if !(fc > 0) || math.IsInf(fc, 1) {
		return 0, fmt.Errorf("f'c must be a positive finite strength; got %g MPa", fc)
	}
	// Ec = 4700√f'c
	return 4700 * math.Sqrt(fc), nil
}
