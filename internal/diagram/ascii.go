package diagram

import (
	"fmt"
	"strings"
	"text/tabwriter"
	"unicode/utf8"

	"github.com/guptarohit/asciigraph"

	"github.com/alexiusacademia/goframe/internal/beam"
	"github.com/alexiusacademia/goframe/internal/frame"
)

// DisplacementTable lists ux, uy and rz for every node
func DisplacementTable(nodes []frame.Node, u []float64) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "  Node\tX (m)\tY (m)\tux (mm)\tuy (mm)\trz (rad)\t")
	for i, n := range nodes {
		if frame.DOF(i, frame.RZ) >= len(u) {
			break
		}
		fmt.Fprintf(tw, "  %d\t%.3f\t%.3f\t%.4f\t%.4f\t%.6f\t\n", i, n.X, n.Y,
			u[frame.DOF(i, frame.UX)]*1000,
			u[frame.DOF(i, frame.UY)]*1000,
			u[frame.DOF(i, frame.RZ)])
	}
	tw.Flush()
	return sb.String()
}

// EndForceTable lists the local end forces of every element in kN and kN-m
func EndForceTable(elements []frame.Element, forces []frame.EndForce) string {
	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "  Elem\tNodes\tN1\tV1\tM1\tN2\tV2\tM2\t")
	for i, f := range forces {
		if i >= len(elements) {
			break
		}
		e := elements[i]
		fmt.Fprintf(tw, "  %d\t%d-%d\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t%.3f\t\n", i, e.Start, e.End,
			f.N1/1000, f.V1/1000, f.M1/1000, f.N2/1000, f.V2/1000, f.M2/1000)
	}
	tw.Flush()
	return sb.String()
}

// ReactionTable lists support reactions for nodes with any restrained DOF
func ReactionTable(nodes []frame.Node, reactions []float64, fixed []int) string {
	restrained := make(map[int]bool)
	for _, d := range fixed {
		restrained[d/frame.DOFsPerNode] = true
	}

	var sb strings.Builder
	tw := tabwriter.NewWriter(&sb, 0, 0, 2, ' ', tabwriter.AlignRight)

	fmt.Fprintln(tw, "  Node\tRx (kN)\tRy (kN)\tMz (kN-m)\t")
	for i := range nodes {
		if !restrained[i] || frame.DOF(i, frame.RZ) >= len(reactions) {
			continue
		}
		fmt.Fprintf(tw, "  %d\t%.3f\t%.3f\t%.3f\t\n", i,
			reactions[frame.DOF(i, frame.UX)]/1000,
			reactions[frame.DOF(i, frame.UY)]/1000,
			reactions[frame.DOF(i, frame.RZ)]/1000)
	}
	tw.Flush()
	return sb.String()
}

// BeamPlot renders the moment and shear diagrams of a span as ASCII graphs
func BeamPlot(stations []beam.Station) string {
	if len(stations) < 2 {
		return ""
	}

	moments := make([]float64, len(stations))
	shears := make([]float64, len(stations))
	for i, s := range stations {
		moments[i] = s.Moment
		shears[i] = s.Shear
	}

	var sb strings.Builder
	sb.WriteString("\n")
	sb.WriteString(asciigraph.Plot(moments,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("bending moment M(x)"),
	))
	sb.WriteString("\n\n")
	sb.WriteString(asciigraph.Plot(shears,
		asciigraph.Height(10),
		asciigraph.Width(60),
		asciigraph.Caption("shear force V(x)"),
	))
	sb.WriteString("\n")
	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	width := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > width {
			width = n
		}
	}

	border := strings.Repeat("═", width+4)
	row := func(text string) {
		pad := strings.Repeat(" ", width-utf8.RuneCountInString(text))
		sb.WriteString("  ║  " + text + pad + "  ║\n")
	}

	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	row(title)
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		row(line)
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}
