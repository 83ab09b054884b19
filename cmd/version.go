package cmd

import (
	"fmt"

	"github.com/alexiusacademia/govdrop/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of govdrop",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("govdrop v%s\n", version.Version)
		fmt.Println("Voltage Drop Wire Sizing Tool")
		fmt.Printf("Commit %s, built %s\n", version.GitCommit, version.BuildTime)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
