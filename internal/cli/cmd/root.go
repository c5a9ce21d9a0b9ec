// Package cmd provides Cobra CLI commands for softkbd.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/softkeyboard/internal/cli"
	"github.com/bnema/softkeyboard/internal/domain/build"
)

var (
	app       *cli.App
	buildInfo build.Info
	configDir string
	rootCmd   = &cobra.Command{
		Use:   "softkbd",
		Short: "Observe on-screen keyboard visibility",
		Long: `softkbd - an on-screen keyboard visibility observer.

It tracks whether the soft keyboard of a window is shown, whether the input
method runs in full-screen mode and how much height the keyboard takes.
Layout changes are observed passively while full-screen mode is polled.

The commands below drive a simulated host with scripted scenarios so the
observer can be exercised without a device.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "version":
				return nil
			}

			var err error
			app, err = cli.NewApp(configDir)
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "directory holding config.toml")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
func SetBuildInfo(info build.Info) {
	buildInfo = info
}
