package cmd

import (
	"fmt"
	"math"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/alexiusacademia/goframe/internal/frame"
	"github.com/alexiusacademia/goframe/internal/model"
	"github.com/alexiusacademia/goframe/internal/nscp"
	"github.com/spf13/cobra"
)

var (
	frameCombosFile       string
	frameCombosSimplified bool
)

var frameCombosCmd = &cobra.Command{
	Use:   "combos",
	Short: "Run every NSCP load combination over a frame model",
	Long: `Factor the model loads by each NSCP 2015 load combination,
analyze the frame for each, and report the peak lateral and vertical
nodal displacement with the governing combination.

Load Types:
  D  - Dead load
  L  - Live load
  Lr - Roof live load
  W  - Wind load
  E  - Earthquake load
  R  - Rain load

Examples:
  goframe frame combos -f portal.yaml
  goframe frame combos -f portal.yaml --simplified`,
	RunE: runFrameCombos,
}

func init() {
	frameCmd.AddCommand(frameCombosCmd)

	frameCombosCmd.Flags().StringVarP(&frameCombosFile, "file", "f", "", "Path to model file (.yaml, .yml, .json) [required]")
	frameCombosCmd.Flags().BoolVarP(&frameCombosSimplified, "simplified", "s", false, "Use simplified combinations (gravity only: 1.4D and 1.2D+1.6L)")

	frameCombosCmd.MarkFlagRequired("file")
}

// peakDisplacement returns the largest-magnitude ux and uy over all nodes.
func peakDisplacement(nodes int, u []float64) (ux, uy float64) {
	for i := 0; i < nodes; i++ {
		if x := u[frame.DOF(i, frame.UX)]; math.Abs(x) > math.Abs(ux) {
			ux = x
		}
		if y := u[frame.DOF(i, frame.UY)]; math.Abs(y) > math.Abs(uy) {
			uy = y
		}
	}
	return ux, uy
}

func runFrameCombos(cmd *cobra.Command, args []string) error {
	f, err := model.Load(frameCombosFile)
	if err != nil {
		return err
	}
	combinations := combinationSet(frameCombosSimplified)

	// Print header
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("          NSCP 2015 LOAD COMBINATIONS - " + f.Name)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	lateral := make([]float64, len(combinations))
	vertical := make([]float64, len(combinations))
	for i := range combinations {
		m, err := f.Build(&combinations[i])
		if err != nil {
			return err
		}
		res, err := frame.Analyze(m)
		if err != nil {
			return fmt.Errorf("combination %s: %w", combinations[i].ID, err)
		}
		lateral[i], vertical[i] = peakDisplacement(len(m.Nodes), res.Displacements)
	}

	maxUx, uxCombo := nscp.Governing(lateral, combinations)
	maxUy, uyCombo := nscp.Governing(vertical, combinations)

	fmt.Println("LOAD COMBINATIONS (NSCP 2015 Section 203.3):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tCombination\tmax ux (mm)\tmax uy (mm)\n")
	fmt.Fprintf(w, "  ─\t───────────\t───────────\t───────────\n")
	for i, combo := range combinations {
		fmt.Fprintf(w, "  %s\t%s\t%.4f\t%.4f\n", combo.ID, combo.Description, lateral[i]*1000, vertical[i]*1000)
	}
	w.Flush()
	fmt.Println()

	fmt.Println("RESULT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DrawSummaryBox("GOVERNING DISPLACEMENTS", []string{
		fmt.Sprintf("Lateral  ux = %.4f mm  (%s: %s)", maxUx*1000, uxCombo.ID, uxCombo.Description),
		fmt.Sprintf("Vertical uy = %.4f mm  (%s: %s)", maxUy*1000, uyCombo.ID, uyCombo.Description),
	}))
	fmt.Println()
	return nil
}
