package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/beam"
	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/spf13/cobra"
)

var (
	udlLoad     float64
	udlLength   float64
	udlModulus  float64
	udlInertia  float64
	udlX        float64
	udlStations int
	udlPlot     bool
	udlOutput   string
)

var beamUDLCmd = &cobra.Command{
	Use:   "udl",
	Short: "Analyze a simply supported beam under uniform load",
	Long: `Calculate support reactions, the moment and shear diagrams and,
when E and I are given, the midspan deflection of a simply supported
beam under a uniformly distributed load.

Units are consistent: with w in kN/m and L in m, moments are in kN-m.
For the deflection use E in kPa and I in m⁴ to get metres.

Examples:
  # 10 kN/m over 6 m
  goframe beam udl --load 10 --length 6

  # With deflection (E = 200 GPa, I = 8.1e-5 m⁴) and an ASCII plot
  goframe beam udl -w 10 -L 6 --modulus 200e6 --inertia 8.1e-5 --plot

  # Moment and shear at x = 1.5 m
  goframe beam udl -w 10 -L 6 --x 1.5`,
	RunE: runBeamUDL,
}

func init() {
	beamCmd.AddCommand(beamUDLCmd)

	// Load and geometry flags
	beamUDLCmd.Flags().Float64VarP(&udlLoad, "load", "w", 0, "Uniform load per unit length [required]")
	beamUDLCmd.Flags().Float64VarP(&udlLength, "length", "L", 0, "Span length [required]")

	// Stiffness flags
	beamUDLCmd.Flags().Float64VarP(&udlModulus, "modulus", "E", 0, "Modulus of elasticity")
	beamUDLCmd.Flags().Float64VarP(&udlInertia, "inertia", "I", 0, "Second moment of area")

	// Options
	beamUDLCmd.Flags().Float64Var(&udlX, "x", -1, "Report moment and shear at this position")
	beamUDLCmd.Flags().IntVarP(&udlStations, "stations", "n", 10, "Number of segments in the station table")
	beamUDLCmd.Flags().BoolVarP(&udlPlot, "plot", "p", false, "Show ASCII moment and shear diagrams")
	beamUDLCmd.Flags().StringVarP(&udlOutput, "output", "o", "", "Export moment and shear diagram to file (png, svg, pdf)")

	beamUDLCmd.MarkFlagRequired("load")
	beamUDLCmd.MarkFlagRequired("length")
}

func runBeamUDL(cmd *cobra.Command, args []string) error {
	b, err := beam.NewSimplySupported(udlLoad, udlLength)
	if err != nil {
		return err
	}
	stations, err := b.Stations(udlStations)
	if err != nil {
		return err
	}

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     SIMPLY SUPPORTED BEAM - UNIFORM LOAD")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("INPUT DATA:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Load (w):\t%g\n", b.Load)
	fmt.Fprintf(w, "  Span (L):\t%g\n", b.Length)
	if cmd.Flags().Changed("modulus") || cmd.Flags().Changed("inertia") {
		fmt.Fprintf(w, "  Modulus (E):\t%g\n", udlModulus)
		fmt.Fprintf(w, "  Inertia (I):\t%g\n", udlInertia)
	}
	w.Flush()
	fmt.Println()

	left, right := b.Reactions()
	lines := []string{
		fmt.Sprintf("Reactions   R1 = R2 = %.3f", left),
		fmt.Sprintf("Max moment  wL²/8   = %.3f", b.MaxMoment()),
		fmt.Sprintf("Max shear   wL/2    = %.3f", right),
	}
	if cmd.Flags().Changed("modulus") || cmd.Flags().Changed("inertia") {
		d, err := b.Deflection(udlModulus, udlInertia)
		if err != nil {
			return err
		}
		lines = append(lines, fmt.Sprintf("Deflection  5wL⁴/384EI = %.6g", d))
	}
	fmt.Print(diagram.DrawSummaryBox("RESULTS", lines))
	fmt.Println()

	if cmd.Flags().Changed("x") {
		m, err := beam.BendingMoment(b.Load, b.Length, udlX)
		if err != nil {
			return err
		}
		v, err := beam.ShearForce(b.Load, b.Length, udlX)
		if err != nil {
			return err
		}
		fmt.Printf("  %s\n", diagram.KeyValue(fmt.Sprintf("M(%g)", udlX), fmt.Sprintf("%.3f", m)))
		fmt.Printf("  %s\n", diagram.KeyValue(fmt.Sprintf("V(%g)", udlX), fmt.Sprintf("%.3f", v)))
		fmt.Println()
	}

	fmt.Println("STATIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "  x\tM(x)\tV(x)\t\n")
	for _, s := range stations {
		fmt.Fprintf(w, "  %.3f\t%.3f\t%.3f\t\n", s.X, s.Moment, s.Shear)
	}
	w.Flush()
	fmt.Println()

	if udlPlot {
		fmt.Println(diagram.BeamPlot(stations))
	}

	if udlOutput != "" {
		if err := diagram.ExportBeamDiagram(stations, udlOutput); err != nil {
			return fmt.Errorf("exporting diagram: %w", err)
		}
		fmt.Printf("Diagram exported to: %s\n", udlOutput)
	}
	return nil
}
