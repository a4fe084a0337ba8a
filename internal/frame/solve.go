package frame

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// ConditionLimit is the largest condition number of the diagonally scaled
// reduced stiffness matrix accepted by the solver. Anything above it, an
// exactly singular matrix, or a free DOF without positive diagonal
// stiffness is reported as ErrSingular.
const ConditionLimit = 1e12

// Solve returns the displacement vector for the structure stiffness k under
// loads, with the DOFs in fixed restrained to zero. Duplicated entries in
// fixed are allowed.
func Solve(k *mat.Dense, loads []float64, fixed []int) ([]float64, error) {
	prescribed := make(map[int]float64, len(fixed))
	for _, d := range fixed {
		prescribed[d] = 0
	}
	return SolvePrescribed(k, loads, prescribed)
}

// SolvePrescribed is Solve with nonzero prescribed displacements (support
// settlement). The free-DOF load vector is corrected by -K_RF·u_F and the
// fixed DOFs hold their prescribed values in the result.
func SolvePrescribed(k *mat.Dense, loads []float64, prescribed map[int]float64) ([]float64, error) {
	if k == nil {
		return nil, dimensionError("stiffness matrix is nil")
	}
	r, c := k.Dims()
	if r != c {
		return nil, dimensionError("stiffness matrix is %dx%d, want square", r, c)
	}
	n := r
	if len(loads) != n {
		return nil, dimensionError("load vector has %d entries, want %d", len(loads), n)
	}
	for d, v := range prescribed {
		if d < 0 || d >= n {
			return nil, dimensionError("fixed DOF %d out of range [0, %d)", d, n)
		}
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ValidationError{Field: "prescribed", Index: -1, Msg: fmt.Sprintf("DOF %d has non-finite value", d)}
		}
	}
	for i, p := range loads {
		if math.IsNaN(p) || math.IsInf(p, 0) {
			return nil, &ValidationError{Field: "loads", Index: -1, Msg: fmt.Sprintf("DOF %d has non-finite value", i)}
		}
	}

	free, fixed := partition(n, prescribed)

	u := make([]float64, n)
	for _, d := range fixed {
		u[d] = prescribed[d]
	}
	if len(free) == 0 {
		return u, nil
	}

	// Jacobi scaling: solve D^-½·K_RR·D^-½·y = D^-½·P_R with D = diag(K_RR),
	// so the condition estimate does not depend on units or on mixing
	// translations with rotations.
	scale := make([]float64, len(free))
	for i, p := range free {
		d := k.At(p, p)
		if !(d > 0) || math.IsInf(d, 0) {
			return nil, fmt.Errorf("%w: DOF %d has no positive stiffness", ErrSingular, p)
		}
		scale[i] = 1 / math.Sqrt(d)
	}

	krr := mat.NewDense(len(free), len(free), nil)
	prr := mat.NewVecDense(len(free), nil)
	for i, p := range free {
		for j, q := range free {
			krr.Set(i, j, k.At(p, q)*scale[i]*scale[j])
		}
		rhs := loads[p]
		for _, q := range fixed {
			rhs -= k.At(p, q) * u[q]
		}
		prr.SetVec(i, rhs*scale[i])
	}

	var lu mat.LU
	lu.Factorize(krr)
	if cond := lu.Cond(); math.IsInf(cond, 1) || math.IsNaN(cond) || cond > ConditionLimit {
		return nil, fmt.Errorf("%w: condition number %.3g over %d free DOFs", ErrSingular, cond, len(free))
	}
	ur := mat.NewVecDense(len(free), nil)
	if err := lu.SolveVecTo(ur, false, prr); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSingular, err)
	}
	for i := range free {
		ur.SetVec(i, ur.AtVec(i)*scale[i])
	}

	for i, p := range free {
		u[p] = ur.AtVec(i)
	}
	return u, nil
}

// partition splits [0, n) into ascending free and fixed DOF lists.
func partition(n int, prescribed map[int]float64) (free, fixed []int) {
	for d := 0; d < n; d++ {
		if _, ok := prescribed[d]; ok {
			fixed = append(fixed, d)
		} else {
			free = append(free, d)
		}
	}
	return free, fixed
}
