package cmd

import (
	"fmt"

	"github.com/alexiusacademia/goframe/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of goframe",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("goframe v%s\n", version.Version)
		fmt.Println("Plane Frame Analysis Tool")
		fmt.Printf("Build: %s (commit %s)\n", version.BuildTime, version.GitCommit)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
