package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/softkeyboard/internal/cli/styles"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show version and build information",
	Run: func(cmd *cobra.Command, _ []string) {
		renderer := styles.NewAboutRenderer(styles.NewTheme())
		fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(buildInfo))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
