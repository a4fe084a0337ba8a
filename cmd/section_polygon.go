package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/section"
	"github.com/spf13/cobra"
)

var sectionPolygonFile string

var sectionPolygonCmd = &cobra.Command{
	Use:   "polygon",
	Short: "Properties of a polygonal section from a JSON file",
	Long: `Calculate the properties of an arbitrary simple polygon using
the shoelace formula and Green's theorem. Vertices may be listed
clockwise or counter-clockwise.

Examples:
  goframe section polygon -f tbeam.json`,
	RunE: func(cmd *cobra.Command, args []string) error {
		sec, err := section.LoadFromFile(sectionPolygonFile)
		if err != nil {
			return fmt.Errorf("loading section: %w", err)
		}
		title := "POLYGONAL SECTION"
		if sec.Name != "" {
			title += " - " + sec.Name
		}
		printSectionProperties(title, *sec.CalculateProperties())
		return nil
	},
}

func init() {
	sectionCmd.AddCommand(sectionPolygonCmd)

	sectionPolygonCmd.Flags().StringVarP(&sectionPolygonFile, "file", "f", "", "Path to section JSON file [required]")
	sectionPolygonCmd.MarkFlagRequired("file")
}
