package frame

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
)

// Model is a complete linear-static load case for a plane frame.
type Model struct {
	Nodes    []Node
	Elements []Element
	Loads    []float64 // one entry per global DOF
	Fixed    []int     // restrained DOFs, displacement zero

	// Settlements holds restrained DOFs with a nonzero imposed
	// displacement. They need not also appear in Fixed.
	Settlements map[int]float64
}

// Result holds everything recovered from one analysis.
type Result struct {
	Displacements []float64
	EndForces     []EndForce
	Reactions     []float64
	Stiffness     *mat.Dense
}

// NodeDisplacement returns (ux, uy, rz) of node i.
func (r *Result) NodeDisplacement(i int) (ux, uy, rz float64) {
	return r.Displacements[DOF(i, UX)], r.Displacements[DOF(i, UY)], r.Displacements[DOF(i, RZ)]
}

// Validate checks dimensions first, then the nodes and elements.
func (m Model) Validate() error {
	n := DOFCount(len(m.Nodes))
	if len(m.Loads) != n {
		return dimensionError("load vector has %d entries, want %d", len(m.Loads), n)
	}
	for _, d := range m.Fixed {
		if d < 0 || d >= n {
			return dimensionError("fixed DOF %d out of range [0, %d)", d, n)
		}
	}
	for d := range m.Settlements {
		if d < 0 || d >= n {
			return dimensionError("settlement DOF %d out of range [0, %d)", d, n)
		}
	}
	return validateModel(m.Nodes, m.Elements)
}

// Analyze assembles, solves and recovers member forces and reactions.
func Analyze(m Model) (*Result, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	k, err := Assemble(m.Nodes, m.Elements)
	if err != nil {
		return nil, err
	}
	prescribed := m.prescribed()
	u, err := SolvePrescribed(k, m.Loads, prescribed)
	if err != nil {
		return nil, err
	}
	forces, err := AllEndForces(m.Nodes, m.Elements, u)
	if err != nil {
		return nil, fmt.Errorf("recovering end forces: %w", err)
	}
	reactions, err := Reactions(m.Nodes, m.Elements, u, m.Loads)
	if err != nil {
		return nil, fmt.Errorf("recovering reactions: %w", err)
	}

	// only restrained DOFs carry reactions; the rest is round-off
	for d := range reactions {
		if _, ok := prescribed[d]; !ok {
			reactions[d] = 0
		}
	}

	return &Result{
		Displacements: u,
		EndForces:     forces,
		Reactions:     reactions,
		Stiffness:     k,
	}, nil
}

// prescribed merges Fixed (zero) and Settlements into one map.
func (m Model) prescribed() map[int]float64 {
	p := make(map[int]float64, len(m.Fixed)+len(m.Settlements))
	for _, d := range m.Fixed {
		p[d] = 0
	}
	for d, v := range m.Settlements {
		p[d] = v
	}
	return p
}

// Restrained returns the distinct DOFs listed in Fixed or Settlements in
// ascending order.
func (m Model) Restrained() []int {
	p := m.prescribed()
	out := make([]int, 0, len(p))
	for d := range p {
		out = append(out, d)
	}
	sort.Ints(out)
	return out
}
