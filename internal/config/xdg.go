package config

import (
	"os"
	"path/filepath"
)

const (
	appName        = "softkeyboard"
	configFileName = "config.toml"
)

// GetConfigDir returns the XDG config directory for softkeyboard:
// $XDG_CONFIG_HOME/softkeyboard (default: ~/.config/softkeyboard).
func GetConfigDir() (string, error) {
	// Development mode: use .dev directory in current working directory
	if os.Getenv("ENV") == "dev" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", err
		}
		return filepath.Join(cwd, ".dev", appName), nil
	}

	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName), nil
}

// GetConfigFile returns the default config file path.
func GetConfigFile() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, configFileName), nil
}
