package frame

import (
	"fmt"
	"math"
)

// DOFsPerNode is the number of degrees of freedom owned by each node.
const DOFsPerNode = 3

// Local DOF offsets within a node.
const (
	UX = iota // translation along global x
	UY        // translation along global y
	RZ        // rotation about z, counter-clockwise positive
)

// Node is a joint position in the global frame.
type Node struct {
	X float64 `json:"x" yaml:"x"`
	Y float64 `json:"y" yaml:"y"`
}

// Element is a straight prismatic member between two nodes.
type Element struct {
	Start   int     // index of the start node
	End     int     // index of the end node
	Area    float64 // cross-sectional area
	Inertia float64 // second moment of area about the bending axis
	Modulus float64 // elastic modulus
}

// DOF returns the global DOF number of a node's local offset (UX, UY, RZ).
func DOF(node, local int) int {
	return node*DOFsPerNode + local
}

// DOFCount returns the size of the global system for n nodes.
func DOFCount(nodes int) int {
	return nodes * DOFsPerNode
}

// ElementDOFs returns the six global DOFs of an element in the order
// (ux1, uy1, rz1, ux2, uy2, rz2).
func ElementDOFs(e Element) [6]int {
	return [6]int{
		DOF(e.Start, UX), DOF(e.Start, UY), DOF(e.Start, RZ),
		DOF(e.End, UX), DOF(e.End, UY), DOF(e.End, RZ),
	}
}

// Geometry returns the projections and length of an element.
func Geometry(nodes []Node, e Element) (dx, dy, length float64) {
	a, b := nodes[e.Start], nodes[e.End]
	dx = b.X - a.X
	dy = b.Y - a.Y
	return dx, dy, math.Hypot(dx, dy)
}

// ValidateElement checks an element against the node list.
// idx is only used for error reporting.
func ValidateElement(nodes []Node, idx int, e Element) error {
	n := len(nodes)
	if e.Start < 0 || e.Start >= n {
		return &ValidationError{Field: "start", Index: idx, Msg: fmt.Sprintf("node %d does not exist (%d nodes)", e.Start, n)}
	}
	if e.End < 0 || e.End >= n {
		return &ValidationError{Field: "end", Index: idx, Msg: fmt.Sprintf("node %d does not exist (%d nodes)", e.End, n)}
	}
	if !(e.Area > 0) {
		return &ValidationError{Field: "area", Index: idx, Msg: fmt.Sprintf("must be positive; got %g", e.Area)}
	}
	if !(e.Inertia > 0) {
		return &ValidationError{Field: "inertia", Index: idx, Msg: fmt.Sprintf("must be positive; got %g", e.Inertia)}
	}
	if !(e.Modulus > 0) {
		return &ValidationError{Field: "modulus", Index: idx, Msg: fmt.Sprintf("must be positive; got %g", e.Modulus)}
	}
	if _, _, l := Geometry(nodes, e); !(l > 0) {
		return &ValidationError{Field: "length", Index: idx, Msg: fmt.Sprintf("nodes %d and %d coincide", e.Start, e.End)}
	}
	return nil
}

// validateModel checks nodes and every element.
func validateModel(nodes []Node, elements []Element) error {
	if len(nodes) == 0 {
		return &ValidationError{Field: "nodes", Index: -1, Msg: "at least one node is required"}
	}
	for i, n := range nodes {
		if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsInf(n.X, 0) || math.IsInf(n.Y, 0) {
			return &ValidationError{Field: "nodes", Index: -1, Msg: fmt.Sprintf("node %d has a non-finite coordinate", i)}
		}
	}
	for i, e := range elements {
		if err := ValidateElement(nodes, i, e); err != nil {
			return err
		}
	}
	return nil
}
