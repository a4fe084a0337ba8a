package frame

import "gonum.org/v1/gonum/mat"

// Assemble builds the structure stiffness matrix of size 3·len(nodes).
// Every element is validated before any contribution is added, so a bad
// element leaves no partial result. Element order does not matter.
func Assemble(nodes []Node, elements []Element) (*mat.Dense, error) {
	if err := validateModel(nodes, elements); err != nil {
		return nil, err
	}

	n := DOFCount(len(nodes))
	k := mat.NewDense(n, n, nil)
	for _, e := range elements {
		kg, _, _ := GlobalStiffness(nodes, e)
		scatter(k, kg, ElementDOFs(e))
	}
	return k, nil
}

// scatter adds the 6x6 element matrix into k at the given DOF map.
func scatter(k, ke *mat.Dense, dofs [6]int) {
	for i, p := range dofs {
		for j, q := range dofs {
			k.Set(p, q, k.At(p, q)+ke.At(i, j))
		}
	}
}
