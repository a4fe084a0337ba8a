package diagram

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"unicode/utf8"

	. "github.com/onsi/gomega"

	"github.com/alexiusacademia/goframe/internal/beam"
	"github.com/alexiusacademia/goframe/internal/frame"
)

func cantilever() ([]frame.Node, []frame.Element, []float64) {
	nodes := []frame.Node{{X: 0, Y: 0}, {X: 4, Y: 0}}
	elements := []frame.Element{{Start: 0, End: 1, Area: 0.01, Inertia: 1e-4, Modulus: 200e9}}
	u := []float64{0, 0, 0, 0, -0.002, -0.00075}
	return nodes, elements, u
}

func TestDrawSummaryBox(t *testing.T) {
	g := NewWithT(t)

	box := DrawSummaryBox("Results", []string{"a = 1", "longer line here"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	g.Expect(lines).To(HaveLen(6))
	g.Expect(box).To(ContainSubstring("Results"))
	g.Expect(box).To(ContainSubstring("longer line here"))
	for _, line := range lines {
		g.Expect(utf8.RuneCountInString(line)).To(Equal(utf8.RuneCountInString(lines[0])), line)
	}
}

func TestDrawSummaryBox_NonASCIIWidth(t *testing.T) {
	g := NewWithT(t)

	box := DrawSummaryBox("Section", []string{"A = 0.0600 m²", "I = 0.000450 m⁴", "ok"})
	lines := strings.Split(strings.TrimRight(box, "\n"), "\n")
	g.Expect(lines).To(HaveLen(7))
	want := utf8.RuneCountInString(lines[0])
	for _, line := range lines {
		g.Expect(utf8.RuneCountInString(line)).To(Equal(want), line)
	}
	g.Expect(lines[4]).To(Equal("  ║  I = 0.000450 m⁴  ║"))
}

func TestDisplacementTable(t *testing.T) {
	g := NewWithT(t)

	nodes, _, u := cantilever()
	out := DisplacementTable(nodes, u)
	g.Expect(out).To(ContainSubstring("ux (mm)"))
	g.Expect(out).To(ContainSubstring("-2.0000"))
	g.Expect(out).To(ContainSubstring("-0.000750"))

	// short vectors stop the table instead of panicking
	g.Expect(DisplacementTable(nodes, u[:3])).NotTo(ContainSubstring("4.000"))
}

func TestEndForceAndReactionTables(t *testing.T) {
	g := NewWithT(t)

	nodes, elements, _ := cantilever()
	forces := []frame.EndForce{{N1: 0, V1: 10e3, M1: 40e3, N2: 0, V2: -10e3, M2: 0}}
	out := EndForceTable(elements, forces)
	g.Expect(out).To(ContainSubstring("0-1"))
	g.Expect(out).To(ContainSubstring("40.000"))

	reactions := []float64{0, 10e3, 40e3, 0, 0, 0}
	out = ReactionTable(nodes, reactions, []int{0, 1, 2})
	g.Expect(out).To(ContainSubstring("10.000"))
	g.Expect(strings.Count(out, "\n")).To(Equal(2))
}

func TestBeamPlot(t *testing.T) {
	g := NewWithT(t)

	b, err := beam.NewSimplySupported(10, 6)
	g.Expect(err).NotTo(HaveOccurred())
	st, err := b.Stations(20)
	g.Expect(err).NotTo(HaveOccurred())

	out := BeamPlot(st)
	g.Expect(out).To(ContainSubstring("bending moment"))
	g.Expect(out).To(ContainSubstring("shear force"))
	g.Expect(BeamPlot(st[:1])).To(BeEmpty())
}

func TestDeformedShapeEndpoints(t *testing.T) {
	g := NewWithT(t)

	nodes, elements, u := cantilever()
	pts := deformedShape(nodes, elements[0], u, 100)
	g.Expect(pts).To(HaveLen(deformedSamples + 1))
	g.Expect(pts[0].X).To(BeNumerically("~", 0, 1e-12))
	g.Expect(pts[0].Y).To(BeNumerically("~", 0, 1e-12))
	g.Expect(pts[deformedSamples].X).To(BeNumerically("~", 4, 1e-12))
	g.Expect(pts[deformedSamples].Y).To(BeNumerically("~", -0.2, 1e-12))
}

func TestAutoScale(t *testing.T) {
	g := NewWithT(t)

	nodes, _, u := cantilever()
	g.Expect(AutoScale(nodes, u)).To(BeNumerically("~", 0.4/0.002, 1e-9))
	g.Expect(AutoScale(nodes, make([]float64, 6))).To(Equal(1.0))
	g.Expect(AutoScale(nil, nil)).To(Equal(1.0))
}

func TestExportFrame(t *testing.T) {
	g := NewWithT(t)

	nodes, elements, u := cantilever()
	dir := t.TempDir()

	path := filepath.Join(dir, "out", "frame.png")
	g.Expect(ExportFrame(nodes, elements, u, 0, path)).To(Succeed())
	info, err := os.Stat(path)
	g.Expect(err).NotTo(HaveOccurred())
	g.Expect(info.Size()).To(BeNumerically(">", 0))

	g.Expect(ExportFrame(nodes, elements, u[:4], 1, path)).To(MatchError(frame.ErrDimensionMismatch))

	bad := []frame.Element{{Start: 0, End: 5}}
	g.Expect(ExportFrame(nodes, bad, u, 1, path)).To(MatchError(frame.ErrInvalidInput))
}

func TestExportBeamDiagram(t *testing.T) {
	g := NewWithT(t)

	b, _ := beam.NewSimplySupported(10, 6)
	st, _ := b.Stations(10)

	path := filepath.Join(t.TempDir(), "beam.svg")
	g.Expect(ExportBeamDiagram(st, path)).To(Succeed())
	_, err := os.Stat(path)
	g.Expect(err).NotTo(HaveOccurred())

	g.Expect(ExportBeamDiagram(st[:1], path)).NotTo(Succeed())
}
