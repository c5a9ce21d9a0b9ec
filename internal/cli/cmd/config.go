package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/softkeyboard/internal/cli/styles"
	"github.com/bnema/softkeyboard/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View the effective configuration or write a default config file.`,
	RunE:  runConfigShow,
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file with all defaults",
	Long:  `Write config.toml with every default setting. Existing files are never overwritten.`,
	RunE:  runConfigInit,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
}

// runConfigShow shows the config file path and the effective values.
func runConfigShow(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)
	out := cmd.OutOrStdout()

	if used := app.Manager.ConfigFile(); used != "" {
		fmt.Fprint(out, renderer.RenderConfigInfo(used))
	} else {
		path, err := configFilePath()
		if err != nil {
			fmt.Fprintln(out, renderer.RenderError(err))
			return nil
		}
		fmt.Fprint(out, renderer.RenderNoConfigFile(path))
	}
	fmt.Fprint(out, renderer.RenderEffective(app.Config))
	return nil
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	renderer := styles.NewConfigRenderer(app.Theme)

	path, err := configFilePath()
	if err != nil {
		return err
	}
	if _, statErr := os.Stat(path); statErr == nil {
		fmt.Fprint(cmd.OutOrStdout(), renderer.RenderConfigInfo(path))
		return nil
	}
	if err := app.Manager.WriteDefault(path); err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), renderer.RenderCreated(path))
	return nil
}

func configFilePath() (string, error) {
	if configDir != "" {
		return filepath.Join(configDir, "config.toml"), nil
	}
	return config.GetConfigFile()
}
