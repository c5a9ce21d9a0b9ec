package config

import (
	"time"

	"github.com/bnema/softkeyboard/internal/softkeyboard"
)

const defaultKeyboardHeight = 240

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Keyboard: KeyboardConfig{
			PollInterval:       softkeyboard.DefaultPollInterval,
			PreferDeviceHeight: true,
			TouchRecheck:       true,
		},
		Logging: LoggingConfig{
			Level:      "info",
			Format:     "console",
			TimeFormat: time.RFC3339,
		},
		Simulator: SimulatorConfig{
			KeyboardHeight:        defaultKeyboardHeight,
			DeviceHeightSupported: false,
		},
	}
}
