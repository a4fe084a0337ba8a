package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/diagram"
	"github.com/alexiusacademia/goframe/internal/frame"
	"github.com/spf13/cobra"
)

var frameCmd = &cobra.Command{
	Use:   "frame",
	Short: "Plane frame analysis by the direct stiffness method",
	Long: `Analyze 2D frames made of prismatic Euler-Bernoulli members
with three degrees of freedom per node (ux, uy, rz).

Subcommands:
  analyze  - Analyze a frame model file
  demo     - Analyze the built-in portal frame
  combos   - Run every NSCP load combination over a model

Example YAML model:
  name: Portal
  materials:
    steel: {e: 200e9}
  sections:
    col: {width: 0.2, depth: 0.2}
  nodes:
    - {x: 0, y: 0}
    - {x: 0, y: 4}
  elements:
    - {start: 0, end: 1, material: steel, section: col}
  supports:
    - {node: 0, fixed: true}
  loads:
    - {node: 1, fx: 10e3, type: W}`,
}

func init() {
	rootCmd.AddCommand(frameCmd)
}

// printFrameResult writes the analysis report shared by frame subcommands.
func printFrameResult(title string, m frame.Model, res *frame.Result) error {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", diagram.Title.Render(title))
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("MODEL:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Nodes:\t%d\n", len(m.Nodes))
	fmt.Fprintf(w, "  Elements:\t%d\n", len(m.Elements))
	fmt.Fprintf(w, "  Degrees of freedom:\t%d\n", frame.DOFCount(len(m.Nodes)))
	restrained := m.Restrained()
	fmt.Fprintf(w, "  Restrained DOFs:\t%d\n", len(restrained))
	w.Flush()
	fmt.Println()

	fmt.Println("NODAL DISPLACEMENTS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.DisplacementTable(m.Nodes, res.Displacements))
	fmt.Println()

	fmt.Println("MEMBER END FORCES (local axes, kN and kN-m):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.EndForceTable(m.Elements, res.EndForces))
	fmt.Println()

	fmt.Println("SUPPORT REACTIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	fmt.Print(diagram.ReactionTable(m.Nodes, res.Reactions, restrained))
	fmt.Println()

	fmt.Println("STATUS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	err := frame.CheckEquilibrium(m.Nodes, m.Loads, res.Reactions, 1e-6)
	if err != nil {
		fmt.Printf("  %s\n", diagram.Status(false, err.Error()))
	} else {
		fmt.Printf("  %s\n", diagram.Status(true, "Global equilibrium satisfied"))
	}
	fmt.Println()
	return err
}

// exportFrame writes the deflected shape plot when a file was requested.
func exportFrame(m frame.Model, res *frame.Result, scale float64, filename string) error {
	if filename == "" {
		return nil
	}
	if err := diagram.ExportFrame(m.Nodes, m.Elements, res.Displacements, scale, filename); err != nil {
		return fmt.Errorf("exporting diagram: %w", err)
	}
	fmt.Printf("Diagram exported to: %s\n", filename)
	return nil
}
