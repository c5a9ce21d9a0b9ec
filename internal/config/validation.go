package config

import (
	"fmt"
	"strings"

	"github.com/bnema/softkeyboard/internal/logging"
	"github.com/bnema/softkeyboard/internal/softkeyboard"
)

// validateConfig performs comprehensive validation of configuration values
func validateConfig(config *Config) error {
	var validationErrors []string

	validationErrors = append(validationErrors, validateKeyboard(config)...)
	validationErrors = append(validationErrors, validateLogging(config)...)
	validationErrors = append(validationErrors, validateSimulator(config)...)

	// If there are validation errors, return them
	if len(validationErrors) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(validationErrors, "\n  - "))
	}

	return nil
}

func validateKeyboard(config *Config) []string {
	if err := softkeyboard.ValidateInterval(config.Keyboard.PollInterval); err != nil {
		return []string{fmt.Sprintf("keyboard.poll_interval: %v", err)}
	}
	return nil
}

func validateLogging(config *Config) []string {
	var validationErrors []string
	if _, err := logging.ParseLevel(config.Logging.Level); err != nil {
		validationErrors = append(validationErrors, fmt.Sprintf("logging.level: %v", err))
	}
	switch config.Logging.Format {
	case "json", "console":
	default:
		validationErrors = append(validationErrors, "logging.format must be 'json' or 'console'")
	}
	return validationErrors
}

func validateSimulator(config *Config) []string {
	if config.Simulator.KeyboardHeight < 0 {
		return []string{"simulator.keyboard_height must be non-negative"}
	}
	return nil
}
