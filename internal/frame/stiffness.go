package frame

import "gonum.org/v1/gonum/mat"

// LocalStiffness returns the 6x6 stiffness matrix of a 2D Euler-Bernoulli
// beam-column in member axes, DOF order (axial1, transverse1, rotation1,
// axial2, transverse2, rotation2). Inputs must be positive; they are not
// checked here.
func LocalStiffness(area, inertia, modulus, length float64) *mat.Dense {
	ll := length * length
	m := modulus * area / length           // EA/L
	n := modulus * inertia / (ll * length) // EI/L³

	return mat.NewDense(6, 6, []float64{
		m, 0, 0, -m, 0, 0,
		0, 12 * n, 6 * length * n, 0, -12 * n, 6 * length * n,
		0, 6 * length * n, 4 * ll * n, 0, -6 * length * n, 2 * ll * n,
		-m, 0, 0, m, 0, 0,
		0, -12 * n, -6 * length * n, 0, 12 * n, -6 * length * n,
		0, 6 * length * n, 2 * ll * n, 0, -6 * length * n, 4 * ll * n,
	})
}

// Transformation returns the 6x6 rotation mapping global DOFs of a member
// to its local DOFs. length must equal hypot(dx, dy) and be positive.
// The matrix is orthogonal, so its transpose maps local back to global.
func Transformation(dx, dy, length float64) *mat.Dense {
	c := dx / length
	s := dy / length
	return mat.NewDense(6, 6, []float64{
		c, s, 0, 0, 0, 0,
		-s, c, 0, 0, 0, 0,
		0, 0, 1, 0, 0, 0,
		0, 0, 0, c, s, 0,
		0, 0, 0, -s, c, 0,
		0, 0, 0, 0, 0, 1,
	})
}

// GlobalStiffness returns Tᵀ·K·T for one element, together with its local
// stiffness and transformation.
func GlobalStiffness(nodes []Node, e Element) (kg, kl, t *mat.Dense) {
	dx, dy, l := Geometry(nodes, e)
	kl = LocalStiffness(e.Area, e.Inertia, e.Modulus, l)
	t = Transformation(dx, dy, l)
	kg = mat.NewDense(6, 6, nil)
	kg.Product(t.T(), kl, t)
	return kg, kl, t
}
