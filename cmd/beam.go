package cmd

import (
	"github.com/spf13/cobra"
)

var beamCmd = &cobra.Command{
	Use:   "beam",
	Short: "Simply supported beam formulas",
	Long: `Closed-form results for a simply supported prismatic beam
carrying a uniformly distributed load w over its span L.

Subcommands:
  udl  - Reactions, moment, shear and midspan deflection

Formulas:
  M(x)  = w·x·(L - x) / 2
  V(x)  = w·(L/2 - x)
  δmax  = 5·w·L⁴ / (384·E·I)`,
}

func init() {
	rootCmd.AddCommand(beamCmd)
}
