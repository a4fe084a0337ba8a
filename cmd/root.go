package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "goframe",
	Short: "Plane Frame Analysis Tool",
	Long: `goframe - Go Plane Frame Analyzer

A CLI tool for the linear static analysis of 2D frames
by the direct stiffness method.

This tool helps structural engineers perform:
  - Frame analysis (displacements, member end forces, reactions)
  - NSCP load combination runs over a frame model
  - Simply supported beam checks under uniform load
  - Cross-section property calculation

Models are read from YAML or JSON files in SI units.`,
	SilenceUsage: true,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   goframe v%-47s║\n", version.Version)
		fmt.Println("  ║   Go Plane Frame Analyzer                                 ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • Direct stiffness analysis of plane frames")
		fmt.Println("    • Support settlement")
		fmt.Println("    • NSCP 2015 load combinations")
		fmt.Println("    • Simply supported beam formulas")
		fmt.Println("    • Polygonal section properties")
		fmt.Println()
		fmt.Println("  Use 'goframe --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
	rootCmd.SilenceErrors = true
}
