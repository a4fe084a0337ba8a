package frame

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
)

// EndForce holds member end actions in member axes.
type EndForce struct {
	N1, V1, M1 float64 // axial, shear, moment at the start node
	N2, V2, M2 float64 // axial, shear, moment at the end node
}

// Vector returns (N1, V1, M1, N2, V2, M2).
func (f EndForce) Vector() []float64 {
	return []float64{f.N1, f.V1, f.M1, f.N2, f.V2, f.M2}
}

// Axial returns the member axial force, tension positive.
func (f EndForce) Axial() float64 {
	return f.N2
}

func endForceFrom(v *mat.VecDense) EndForce {
	return EndForce{
		N1: v.AtVec(0), V1: v.AtVec(1), M1: v.AtVec(2),
		N2: v.AtVec(3), V2: v.AtVec(4), M2: v.AtVec(5),
	}
}

// EndForces recovers the local end forces of one element from the global
// displacement vector u: f = K_local · T · u_e.
func EndForces(nodes []Node, e Element, u []float64) (EndForce, error) {
	if err := ValidateElement(nodes, -1, e); err != nil {
		return EndForce{}, err
	}
	if want := DOFCount(len(nodes)); len(u) != want {
		return EndForce{}, dimensionError("displacement vector has %d entries, want %d", len(u), want)
	}
	return endForces(nodes, e, u), nil
}

func endForces(nodes []Node, e Element, u []float64) EndForce {
	_, kl, t := GlobalStiffness(nodes, e)

	ue := mat.NewVecDense(6, nil)
	for i, d := range ElementDOFs(e) {
		ue.SetVec(i, u[d])
	}

	var local, f mat.VecDense
	local.MulVec(t, ue)
	f.MulVec(kl, &local)
	return endForceFrom(&f)
}

// AllEndForces recovers end forces for every element, in element order.
func AllEndForces(nodes []Node, elements []Element, u []float64) ([]EndForce, error) {
	if err := validateModel(nodes, elements); err != nil {
		return nil, err
	}
	if want := DOFCount(len(nodes)); len(u) != want {
		return nil, dimensionError("displacement vector has %d entries, want %d", len(u), want)
	}
	out := make([]EndForce, len(elements))
	for i, e := range elements {
		out[i] = endForces(nodes, e, u)
	}
	return out, nil
}

// Reactions rebuilds the global internal force vector from recovered member
// end forces (Σ Tᵀ·f) and returns it minus the applied loads. The result
// holds support reactions at restrained DOFs and round-off elsewhere.
func Reactions(nodes []Node, elements []Element, u, loads []float64) ([]float64, error) {
	forces, err := AllEndForces(nodes, elements, u)
	if err != nil {
		return nil, err
	}
	n := DOFCount(len(nodes))
	if len(loads) != n {
		return nil, dimensionError("load vector has %d entries, want %d", len(loads), n)
	}

	r := make([]float64, n)
	for i, e := range elements {
		dx, dy, l := Geometry(nodes, e)
		t := Transformation(dx, dy, l)
		var g mat.VecDense
		g.MulVec(t.T(), mat.NewVecDense(6, forces[i].Vector()))
		for j, d := range ElementDOFs(e) {
			r[d] += g.AtVec(j)
		}
	}
	for d := range r {
		r[d] -= loads[d]
	}
	return r, nil
}

// CheckEquilibrium verifies that applied loads plus reactions have zero
// resultant force and zero moment about the origin. tol is relative to the
// largest load or reaction component.
func CheckEquilibrium(nodes []Node, loads, reactions []float64, tol float64) error {
	n := DOFCount(len(nodes))
	if len(loads) != n || len(reactions) != n {
		return dimensionError("loads (%d) and reactions (%d) must both have %d entries", len(loads), len(reactions), n)
	}

	var fx, fy, mz, scale float64
	for i, node := range nodes {
		px := loads[DOF(i, UX)] + reactions[DOF(i, UX)]
		py := loads[DOF(i, UY)] + reactions[DOF(i, UY)]
		pm := loads[DOF(i, RZ)] + reactions[DOF(i, RZ)]
		fx += px
		fy += py
		mz += pm + node.X*py - node.Y*px
	}
	for d := 0; d < n; d++ {
		scale = math.Max(scale, math.Max(math.Abs(loads[d]), math.Abs(reactions[d])))
	}
	if scale == 0 {
		return nil
	}

	lever := 1.0
	for _, node := range nodes {
		lever = math.Max(lever, math.Max(math.Abs(node.X), math.Abs(node.Y)))
	}
	if math.Abs(fx) > tol*scale || math.Abs(fy) > tol*scale || math.Abs(mz) > tol*scale*lever {
		return fmt.Errorf("%w: ΣFx=%.3e ΣFy=%.3e ΣMz=%.3e", ErrNotInEquilibrium, fx, fy, mz)
	}
	return nil
}
