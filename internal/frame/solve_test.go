package frame

import (
	"testing"

	. "github.com/onsi/gomega"
	"gonum.org/v1/gonum/mat"
)

const (
	colE = 200e9
	colA = 0.04
	colI = 0.2 * 0.2 * 0.2 * 0.2 / 12
	colL = 4.0
)

// cantilever is a vertical column fixed at its base with a horizontal
// point load p at the top.
func cantilever(p float64) Model {
	loads := make([]float64, 6)
	loads[DOF(1, UX)] = p
	return Model{
		Nodes:    []Node{{0, 0}, {0, colL}},
		Elements: []Element{{Start: 0, End: 1, Area: colA, Inertia: colI, Modulus: colE}},
		Loads:    loads,
		Fixed:    []int{0, 1, 2},
	}
}

func TestSolve_CantileverTipDeflection(t *testing.T) {
	g := NewWithT(t)

	const p = 10e3
	m := cantilever(p)
	k, err := Assemble(m.Nodes, m.Elements)
	g.Expect(err).NotTo(HaveOccurred())

	u, err := Solve(k, m.Loads, m.Fixed)
	g.Expect(err).NotTo(HaveOccurred())

	want := p * colL * colL * colL / (3 * colE * colI)
	g.Expect(u[DOF(1, UX)]).To(BeNumerically("~", want, 1e-9*want))
	g.Expect(u[DOF(1, UY)]).To(BeNumerically("~", 0, 1e-15))
	g.Expect(u[DOF(1, RZ)]).To(BeNumerically("~", -p*colL*colL/(2*colE*colI), 1e-9*want))
	g.Expect(u[:3]).To(Equal([]float64{0, 0, 0}))
}

func TestSolve_AxialLoad(t *testing.T) {
	g := NewWithT(t)

	m := cantilever(0)
	m.Loads[DOF(1, UY)] = -50e3
	k, err := Assemble(m.Nodes, m.Elements)
	g.Expect(err).NotTo(HaveOccurred())
	u, err := Solve(k, m.Loads, m.Fixed)
	g.Expect(err).NotTo(HaveOccurred())

	want := -50e3 * colL / (colE * colA)
	g.Expect(u[DOF(1, UY)]).To(BeNumerically("~", want, 1e-9*-want))
	g.Expect(u[DOF(1, UX)]).To(BeNumerically("~", 0, 1e-15))
}

func TestSolve_AllFixedIsNoOp(t *testing.T) {
	g := NewWithT(t)

	m := portal()
	k, err := Assemble(m.Nodes, m.Elements)
	g.Expect(err).NotTo(HaveOccurred())

	fixed := make([]int, 12)
	for i := range fixed {
		fixed[i] = i
	}
	u, err := Solve(k, m.Loads, fixed)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(u).To(Equal(make([]float64, 12)))
}

func TestSolve_DoesNotMutateInputs(t *testing.T) {
	g := NewWithT(t)

	m := portal()
	k, err := Assemble(m.Nodes, m.Elements)
	g.Expect(err).NotTo(HaveOccurred())
	kCopy := mat.DenseCopyOf(k)
	loads := append([]float64(nil), m.Loads...)

	_, err = Solve(k, m.Loads, m.Fixed)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(mat.Equal(k, kCopy)).To(BeTrue())
	g.Expect(m.Loads).To(Equal(loads))
}

func TestSolve_Mechanism(t *testing.T) {
	tests := []struct {
		name  string
		fixed []int
	}{
		{"unsupported", nil},
		{"pinned base only", []int{0, 1}},
		{"roller", []int{1}},
	}

	nodes := []Node{{0, 0}, {1, 0}}
	els := []Element{{Start: 0, End: 1, Area: 1, Inertia: 1, Modulus: 1}}
	loads := []float64{0, 0, 0, 0, -1, 0}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			k, err := Assemble(nodes, els)
			g.Expect(err).NotTo(HaveOccurred())

			u, err := Solve(k, loads, tt.fixed)
			g.Expect(u).To(BeNil())
			g.Expect(err).To(MatchError(ErrSingular))
			g.Expect(err).NotTo(MatchError(ErrInvalidInput))
		})
	}
}

func TestSolve_UnconnectedNodeIsSingular(t *testing.T) {
	g := NewWithT(t)

	m := cantilever(1e3)
	m.Nodes = append(m.Nodes, Node{10, 10})
	m.Loads = append(m.Loads, 0, 0, 0)
	k, err := Assemble(m.Nodes, m.Elements)
	g.Expect(err).NotTo(HaveOccurred())

	_, err = Solve(k, m.Loads, m.Fixed)
	g.Expect(err).To(MatchError(ErrSingular))
}

func TestSolve_FinelyMeshedColumnInMillimetres(t *testing.T) {
	g := NewWithT(t)

	const (
		segments = 100
		length   = 30000.0 // mm
		e        = 200000.0
		a        = 40000.0
		inertia  = 200.0 * 200 * 200 * 200 / 12
		p        = 10e3 // N
	)

	nodes := make([]Node, segments+1)
	for i := range nodes {
		nodes[i] = Node{X: 0, Y: length * float64(i) / segments}
	}
	els := make([]Element, segments)
	for i := range els {
		els[i] = Element{Start: i, End: i + 1, Area: a, Inertia: inertia, Modulus: e}
	}
	loads := make([]float64, 3*len(nodes))
	loads[DOF(segments, UX)] = p

	res, err := Analyze(Model{Nodes: nodes, Elements: els, Loads: loads, Fixed: []int{0, 1, 2}})
	g.Expect(err).NotTo(HaveOccurred())

	want := p * length * length * length / (3 * e * inertia)
	g.Expect(res.Displacements[DOF(segments, UX)]).To(BeNumerically("~", want, 1e-6*want))
	g.Expect(res.Reactions[DOF(0, UX)]).To(BeNumerically("~", -p, 1e-6*p))
}

func TestSolve_ZeroDiagonalIsSingular(t *testing.T) {
	g := NewWithT(t)

	k := mat.NewDense(2, 2, []float64{1, 0, 0, 0})
	u, err := Solve(k, []float64{1, 0}, nil)
	g.Expect(u).To(BeNil())
	g.Expect(err).To(MatchError(ErrSingular))
	g.Expect(err).To(MatchError(ContainSubstring("DOF 1")))
}

func TestSolve_DimensionMismatch(t *testing.T) {
	m := cantilever(1)
	k, err := Assemble(m.Nodes, m.Elements)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name  string
		k     *mat.Dense
		loads []float64
		fixed []int
	}{
		{"short loads", k, []float64{1, 2, 3}, m.Fixed},
		{"long loads", k, make([]float64, 7), m.Fixed},
		{"negative fixed DOF", k, m.Loads, []int{-1}},
		{"fixed DOF past end", k, m.Loads, []int{0, 1, 6}},
		{"non-square matrix", mat.NewDense(6, 5, nil), m.Loads, m.Fixed},
		{"nil matrix", nil, m.Loads, m.Fixed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := NewWithT(t)
			_, err := Solve(tt.k, tt.loads, tt.fixed)
			g.Expect(err).To(MatchError(ErrDimensionMismatch))
		})
	}
}

func TestSolvePrescribed_Settlement(t *testing.T) {
	g := NewWithT(t)

	// two collinear bars, both ends fully fixed, right end pushed by delta
	const (
		e     = 200e9
		a     = 0.01
		l     = 2.0
		delta = 1e-3
	)
	nodes := []Node{{0, 0}, {l, 0}, {2 * l, 0}}
	els := []Element{
		{Start: 0, End: 1, Area: a, Inertia: 1e-5, Modulus: e},
		{Start: 1, End: 2, Area: a, Inertia: 1e-5, Modulus: e},
	}
	k, err := Assemble(nodes, els)
	g.Expect(err).NotTo(HaveOccurred())

	prescribed := map[int]float64{0: 0, 1: 0, 2: 0, 6: delta, 7: 0, 8: 0}
	u, err := SolvePrescribed(k, make([]float64, 9), prescribed)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(u[6]).To(Equal(delta))
	g.Expect(u[DOF(1, UX)]).To(BeNumerically("~", delta/2, 1e-12))
	g.Expect(u[DOF(1, UY)]).To(BeNumerically("~", 0, 1e-15))

	forces, err := AllEndForces(nodes, els, u)
	g.Expect(err).NotTo(HaveOccurred())
	for _, f := range forces {
		g.Expect(f.Axial()).To(BeNumerically("~", e*a*(delta/2)/l, 1e-3))
	}
}

func TestSolvePrescribed_ZeroMatchesSolve(t *testing.T) {
	g := NewWithT(t)

	m := portal()
	k, err := Assemble(m.Nodes, m.Elements)
	g.Expect(err).NotTo(HaveOccurred())

	u1, err := Solve(k, m.Loads, m.Fixed)
	g.Expect(err).NotTo(HaveOccurred())
	u2, err := SolvePrescribed(k, m.Loads, map[int]float64{0: 0, 1: 0, 2: 0, 3: 0, 4: 0, 5: 0})
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(u2).To(Equal(u1))
}
