package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/softkeyboard/internal/cli/scenario"
	"github.com/bnema/softkeyboard/internal/cli/styles"
)

var (
	watchPollInterval time.Duration
	watchFullScreen   bool
	watchNoTouch      bool
)

var watchCmd = &cobra.Command{
	Use:   "watch [scenario.yaml]",
	Short: "Replay a scenario and print every keyboard notification",
	Long: `Replay a scripted scenario against the simulated host and print each
notification as it is delivered.

Without a file the built-in demo scenario is replayed.

Scenario steps (one action per step):
  keyboard_height: 300     height applied by the next show
  device_height: 0         device-level visible height
  device_supported: true   enable the device height query
  fullscreen: true         flip full-screen input mode (no layout pass)
  touch: true              touch the window
  layout: true             run a layout pass
  wait: 250ms              sleep, letting the checker poll
  show: true               show the keyboard for the input field
  hide: true               hide the keyboard of the window

Examples:
  softkbd watch
  softkbd watch session.yaml --poll-interval 200ms --fullscreen`,
	Args: cobra.MaximumNArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().DurationVar(&watchPollInterval, "poll-interval", 0, "full-screen poll interval (default from config)")
	watchCmd.Flags().BoolVar(&watchFullScreen, "fullscreen", false, "also subscribe to full-screen mode changes")
	watchCmd.Flags().BoolVar(&watchNoTouch, "no-touch", false, "disable touch-triggered rechecks")
}

func runWatch(cmd *cobra.Command, args []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	app.WatchConfig()

	sc, err := loadScenario(args)
	if err != nil {
		return err
	}

	opts := app.RunnerOptions()
	opts.WatchFullScreen = watchFullScreen
	if watchPollInterval != 0 {
		opts.PollInterval = watchPollInterval
	}
	if watchNoTouch {
		opts.TouchRecheck = false
	}
	runner, err := scenario.NewRunner(opts)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(app.Ctx(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	renderer := styles.NewEventRenderer(app.Theme)
	out := cmd.OutOrStdout()
	fmt.Fprint(out, renderer.RenderHeader(sc.Name, len(sc.Steps), opts.PollInterval))

	report, err := runner.Run(ctx, sc, func(ev scenario.Event) {
		fmt.Fprintln(out, renderer.RenderEvent(ev))
	})
	if err != nil {
		if ctx.Err() != nil {
			return fmt.Errorf("replay interrupted: %w", ctx.Err())
		}
		return err
	}
	fmt.Fprint(out, renderer.RenderReport(report))
	return nil
}

func loadScenario(args []string) (*scenario.Scenario, error) {
	if len(args) == 0 {
		return scenario.Default(), nil
	}
	return scenario.Load(args[0])
}
