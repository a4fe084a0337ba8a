package diagram

import (
	"fmt"
	"image/color"
	"math"
	"os"
	"path/filepath"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"

	"github.com/alexiusacademia/goframe/internal/beam"
	"github.com/alexiusacademia/goframe/internal/frame"
)

// samples per element along the deformed shape
const deformedSamples = 12

// AutoScale picks a displacement magnification so the largest
// translation is drawn at a tenth of the frame's overall size.
func AutoScale(nodes []frame.Node, u []float64) float64 {
	if len(nodes) == 0 {
		return 1
	}
	minX, maxX := nodes[0].X, nodes[0].X
	minY, maxY := nodes[0].Y, nodes[0].Y
	for _, n := range nodes {
		minX, maxX = math.Min(minX, n.X), math.Max(maxX, n.X)
		minY, maxY = math.Min(minY, n.Y), math.Max(maxY, n.Y)
	}
	size := math.Max(maxX-minX, maxY-minY)

	var maxDisp float64
	for i := range nodes {
		if frame.DOF(i, frame.UY) >= len(u) {
			break
		}
		maxDisp = math.Max(maxDisp, math.Hypot(u[frame.DOF(i, frame.UX)], u[frame.DOF(i, frame.UY)]))
	}
	if maxDisp == 0 || size == 0 {
		return 1
	}
	return 0.1 * size / maxDisp
}

// deformedShape samples an element's deflected axis with the cubic
// Hermite shape functions, displacements magnified by scale.
func deformedShape(nodes []frame.Node, e frame.Element, u []float64, scale float64) plotter.XYs {
	dx, dy, l := frame.Geometry(nodes, e)
	c, s := dx/l, dy/l
	dofs := frame.ElementDOFs(e)

	// end displacements in local axes
	u1 := c*u[dofs[0]] + s*u[dofs[1]]
	v1 := -s*u[dofs[0]] + c*u[dofs[1]]
	t1 := u[dofs[2]]
	u2 := c*u[dofs[3]] + s*u[dofs[4]]
	v2 := -s*u[dofs[3]] + c*u[dofs[4]]
	t2 := u[dofs[5]]

	start := nodes[e.Start]
	pts := make(plotter.XYs, deformedSamples+1)
	for i := 0; i <= deformedSamples; i++ {
		xi := float64(i) / deformedSamples
		ax := (1-xi)*u1 + xi*u2
		h1 := 1 - 3*xi*xi + 2*xi*xi*xi
		h2 := l * (xi - 2*xi*xi + xi*xi*xi)
		h3 := 3*xi*xi - 2*xi*xi*xi
		h4 := l * (-xi*xi + xi*xi*xi)
		tr := h1*v1 + h2*t1 + h3*v2 + h4*t2

		x := xi * l
		pts[i] = plotter.XY{
			X: start.X + c*(x+scale*ax) - s*scale*tr,
			Y: start.Y + s*(x+scale*ax) + c*scale*tr,
		}
	}
	return pts
}

// ExportFrame plots the undeformed frame and its deflected shape. A scale
// of zero or less picks one with AutoScale.
func ExportFrame(nodes []frame.Node, elements []frame.Element, u []float64, scale float64, filename string) error {
	if len(u) != frame.DOFCount(len(nodes)) {
		return fmt.Errorf("%w: %d displacements for %d nodes", frame.ErrDimensionMismatch, len(u), len(nodes))
	}
	for i, e := range elements {
		if err := frame.ValidateElement(nodes, i, frame.Element{Start: e.Start, End: e.End, Area: 1, Inertia: 1, Modulus: 1}); err != nil {
			return err
		}
	}
	if scale <= 0 {
		scale = AutoScale(nodes, u)
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Deflected Shape (x%.0f)", scale)
	p.X.Label.Text = "X (m)"
	p.Y.Label.Text = "Y (m)"

	for _, e := range elements {
		a, b := nodes[e.Start], nodes[e.End]
		member, err := plotter.NewLine(plotter.XYs{{X: a.X, Y: a.Y}, {X: b.X, Y: b.Y}})
		if err != nil {
			return err
		}
		member.LineStyle.Width = vg.Points(2)
		member.LineStyle.Color = color.Gray{Y: 128}
		p.Add(member)

		deformed, err := plotter.NewLine(deformedShape(nodes, e, u, scale))
		if err != nil {
			return err
		}
		deformed.LineStyle.Width = vg.Points(1.5)
		deformed.LineStyle.Color = color.RGBA{R: 255, G: 0, B: 0, A: 255}
		deformed.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
		p.Add(deformed)
	}

	joints := make(plotter.XYs, len(nodes))
	labels := make([]string, len(nodes))
	for i, n := range nodes {
		joints[i] = plotter.XY{X: n.X, Y: n.Y}
		labels[i] = fmt.Sprintf(" %d", i)
	}
	scatter, err := plotter.NewScatter(joints)
	if err != nil {
		return err
	}
	scatter.GlyphStyle.Color = color.Black
	scatter.GlyphStyle.Radius = vg.Points(3)
	scatter.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(scatter)

	names, err := plotter.NewLabels(plotter.XYLabels{XYs: joints, Labels: labels})
	if err != nil {
		return err
	}
	p.Add(names)

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportBeamDiagram plots the moment and shear along a span
func ExportBeamDiagram(stations []beam.Station, filename string) error {
	if len(stations) < 2 {
		return fmt.Errorf("at least 2 stations are required, got %d", len(stations))
	}

	p := plot.New()
	p.Title.Text = "Simply Supported Beam - UDL"
	p.X.Label.Text = "x (m)"
	p.Y.Label.Text = "M (kN-m), V (kN)"

	moment := make(plotter.XYs, len(stations))
	shear := make(plotter.XYs, len(stations))
	for i, s := range stations {
		moment[i] = plotter.XY{X: s.X, Y: s.Moment}
		shear[i] = plotter.XY{X: s.X, Y: s.Shear}
	}

	mLine, err := plotter.NewLine(moment)
	if err != nil {
		return err
	}
	mLine.LineStyle.Width = vg.Points(2)
	mLine.LineStyle.Color = color.RGBA{R: 0, G: 0, B: 139, A: 255}
	p.Add(mLine)

	vLine, err := plotter.NewLine(shear)
	if err != nil {
		return err
	}
	vLine.LineStyle.Width = vg.Points(1.5)
	vLine.LineStyle.Color = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	vLine.LineStyle.Dashes = []vg.Length{vg.Points(3), vg.Points(3)}
	p.Add(vLine)

	p.Legend.Add("moment", mLine)
	p.Legend.Add("shear", vLine)
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 5*vg.Inch, filename)
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	switch filepath.Ext(filename) {
	case ".png", ".svg", ".pdf":
		return p.Save(width, height, filename)
	default:
		return p.Save(width, height, filename+".png")
	}
}
