package cmd

import (
	"github.com/alexiusacademia/goframe/internal/section"
	"github.com/spf13/cobra"
)

var (
	rectWidth float64
	rectDepth float64
)

var sectionRectCmd = &cobra.Command{
	Use:   "rect",
	Short: "Properties of a solid rectangular section",
	Long: `Calculate A = b·d and I = b·d³/12 of a solid rectangle.

Examples:
  goframe section rect --width 0.2 --depth 0.3
  goframe section rect -b 200 -d 300`,
	RunE: func(cmd *cobra.Command, args []string) error {
		p, err := section.Rectangular(rectWidth, rectDepth)
		if err != nil {
			return err
		}
		printSectionProperties("RECTANGULAR SECTION", p)
		return nil
	},
}

func init() {
	sectionCmd.AddCommand(sectionRectCmd)

	sectionRectCmd.Flags().Float64VarP(&rectWidth, "width", "b", 0, "Section width [required]")
	sectionRectCmd.Flags().Float64VarP(&rectDepth, "depth", "d", 0, "Section depth [required]")

	sectionRectCmd.MarkFlagRequired("width")
	sectionRectCmd.MarkFlagRequired("depth")
}
