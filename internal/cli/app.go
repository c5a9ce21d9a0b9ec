// Package cli wires the softkbd command line application.
package cli

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/bnema/softkeyboard/internal/cli/scenario"
	"github.com/bnema/softkeyboard/internal/cli/styles"
	"github.com/bnema/softkeyboard/internal/config"
	"github.com/bnema/softkeyboard/internal/domain/build"
	"github.com/bnema/softkeyboard/internal/logging"
)

// App holds CLI dependencies.
type App struct {
	Config    *config.Config
	Manager   *config.Manager
	Theme     *styles.Theme
	BuildInfo build.Info
	Logger    zerolog.Logger

	ctx context.Context
}

// NewApp loads the configuration from configDir (the XDG directory when empty)
// and builds the logger.
func NewApp(configDir string) (*App, error) {
	var (
		mgr *config.Manager
		err error
	)
	if configDir == "" {
		mgr, err = config.NewManager()
	} else {
		mgr, err = config.NewManagerWithDir(configDir)
	}
	if err != nil {
		return nil, fmt.Errorf("create config manager: %w", err)
	}
	if err := mgr.Load(); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	cfg := mgr.Get()

	level, err := logging.ParseLevel(cfg.Logging.Level)
	if err != nil {
		return nil, err
	}
	logger := logging.New(logging.Config{
		Level:      level,
		Format:     cfg.Logging.Format,
		TimeFormat: cfg.Logging.TimeFormat,
	})
	logger.Debug().Str("config_file", mgr.ConfigFile()).Msg("configuration loaded")

	return &App{
		Config:  cfg,
		Manager: mgr,
		Theme:   styles.NewTheme(),
		Logger:  logger,
		ctx:     logging.WithContext(context.Background(), logger),
	}, nil
}

// Ctx returns the application context carrying the logger.
func (a *App) Ctx() context.Context {
	return a.ctx
}

// RunnerOptions maps the loaded configuration onto replay options.
func (a *App) RunnerOptions() scenario.Options {
	return scenario.Options{
		PollInterval:          a.Config.Keyboard.PollInterval,
		PreferDeviceHeight:    a.Config.Keyboard.PreferDeviceHeight,
		TouchRecheck:          a.Config.Keyboard.TouchRecheck,
		KeyboardHeight:        a.Config.Simulator.KeyboardHeight,
		DeviceHeightSupported: a.Config.Simulator.DeviceHeightSupported,
	}
}

// WatchConfig reloads the configuration on file changes for long-running commands.
func (a *App) WatchConfig() {
	if a.Manager.ConfigFile() == "" {
		return
	}
	a.Manager.OnConfigChange(func(cfg *config.Config) {
		a.Logger.Info().
			Dur("poll_interval", cfg.Keyboard.PollInterval).
			Msg("configuration reloaded, applies to the next replay")
	})
	if err := a.Manager.Watch(func(err error) {
		a.Logger.Warn().Err(err).Msg("ignoring invalid configuration change")
	}); err != nil {
		a.Logger.Warn().Err(err).Msg("config watch unavailable")
	}
}
