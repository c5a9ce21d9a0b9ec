package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/softkeyboard/internal/cli/scenario"
	"github.com/bnema/softkeyboard/internal/cli/styles"
)

var probeCmd = &cobra.Command{
	Use:   "probe [scenario.yaml]",
	Short: "Replay a scenario and print only the final keyboard state",
	Long: `Replay a scenario silently, then print whether the keyboard is shown, the
full-screen flag, the app-visible height and the device-level height.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProbe,
}

func init() {
	rootCmd.AddCommand(probeCmd)
}

func runProbe(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	sc, err := loadScenario(args)
	if err != nil {
		return err
	}
	runner, err := scenario.NewRunner(app.RunnerOptions())
	if err != nil {
		return err
	}

	report, err := runner.Run(app.Ctx(), sc, nil)
	if err != nil {
		return err
	}

	renderer := styles.NewEventRenderer(app.Theme)
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderReport(report))
	return nil
}
