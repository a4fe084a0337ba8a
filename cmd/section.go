package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/goframe/internal/section"
	"github.com/spf13/cobra"
)

var sectionCmd = &cobra.Command{
	Use:   "section",
	Short: "Cross-section properties for frame members",
	Long: `Compute area, centroid and second moments of area of member
cross-sections. The area and Ixx feed the A and I of frame elements.

Subcommands:
  rect     - Solid rectangle
  polygon  - Arbitrary polygon from a JSON file

Example JSON file structure:
{
  "name": "T-Beam Section",
  "vertices": [
    {"x": 150, "y": 0},
    {"x": 450, "y": 0},
    {"x": 450, "y": 400},
    {"x": 600, "y": 400},
    {"x": 600, "y": 500},
    {"x": 0, "y": 500},
    {"x": 0, "y": 400},
    {"x": 150, "y": 400}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(sectionCmd)
}

func printSectionProperties(title string, p section.Properties) {
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Printf("     %s\n", title)
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	fmt.Println("SECTION PROPERTIES:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Width:\t%g\n", p.Width)
	fmt.Fprintf(w, "  Height:\t%g\n", p.Height)
	fmt.Fprintf(w, "  Area (A):\t%g\n", p.Area)
	fmt.Fprintf(w, "  Centroid (x, y):\t(%g, %g)\n", p.CentroidX, p.CentroidY)
	fmt.Fprintf(w, "  Ixx (centroidal):\t%g\n", p.Ixx)
	fmt.Fprintf(w, "  Iyy (centroidal):\t%g\n", p.Iyy)
	w.Flush()
	fmt.Println()
}
