package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/raveheart1/relbump/internal/build"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show relbump version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		label := build.Version
		if build.IsDevBuild() {
			label += " (development build)"
		}
		fmt.Fprintf(cmd.OutOrStdout(), "relbump %s\n", label)
		fmt.Fprintf(cmd.OutOrStdout(), "Commit: %s\n", build.Commit)
		fmt.Fprintf(cmd.OutOrStdout(), "Built:  %s\n", build.BuildDate)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
