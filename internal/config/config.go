// Package config provides configuration management for softkeyboard with Viper integration.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
)

// File permission constants
const (
	dirPerm = 0755 // Standard directory permissions (rwxr-xr-x)
)

// Config represents the complete configuration for softkeyboard.
type Config struct {
	Keyboard  KeyboardConfig  `mapstructure:"keyboard" yaml:"keyboard"`
	Logging   LoggingConfig   `mapstructure:"logging" yaml:"logging"`
	Simulator SimulatorConfig `mapstructure:"simulator" yaml:"simulator"`
}

// KeyboardConfig tunes the keyboard observer.
type KeyboardConfig struct {
	// PollInterval is how often full-screen input mode is re-checked while active.
	PollInterval time.Duration `mapstructure:"poll_interval" yaml:"poll_interval"`
	// PreferDeviceHeight uses the device-level height when the platform reports one.
	PreferDeviceHeight bool `mapstructure:"prefer_device_height" yaml:"prefer_device_height"`
	// TouchRecheck re-checks full-screen mode when the window is touched.
	TouchRecheck bool `mapstructure:"touch_recheck" yaml:"touch_recheck"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level"`
	Format     string `mapstructure:"format" yaml:"format"`
	TimeFormat string `mapstructure:"time_format" yaml:"time_format"`
}

// SimulatorConfig configures the in-memory host used by the CLI.
type SimulatorConfig struct {
	KeyboardHeight        int  `mapstructure:"keyboard_height" yaml:"keyboard_height"`
	DeviceHeightSupported bool `mapstructure:"device_height_supported" yaml:"device_height_supported"`
}

// Manager handles configuration loading, watching, and reloading.
type Manager struct {
	config    *Config
	viper     *viper.Viper
	mu        sync.RWMutex
	callbacks []func(*Config)
	watching  bool
}

// NewManager creates a configuration manager reading from the XDG config directory.
func NewManager() (*Manager, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get config directory: %w", err)
	}
	return NewManagerWithDir(configDir)
}

// NewManagerWithDir creates a configuration manager reading config.toml from dir.
func NewManagerWithDir(dir string) (*Manager, error) {
	v := viper.New()

	// Configure Viper for TOML as default format
	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(dir)

	// Set up environment variable support
	v.SetEnvPrefix("SOFTKBD")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// Logging environment variable bindings
	if err := v.BindEnv("logging.level", "SOFTKBD_LOG_LEVEL"); err != nil {
		return nil, fmt.Errorf("failed to bind SOFTKBD_LOG_LEVEL: %w", err)
	}
	if err := v.BindEnv("logging.format", "SOFTKBD_LOG_FORMAT"); err != nil {
		return nil, fmt.Errorf("failed to bind SOFTKBD_LOG_FORMAT: %w", err)
	}

	m := &Manager{
		viper:     v,
		callbacks: make([]func(*Config), 0),
	}
	m.setDefaults()
	return m, nil
}

// Load loads the configuration from file and environment variables.
// A missing config file is not an error.
func (m *Manager) Load() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return fmt.Errorf("failed to read config file: %w", err)
		}
	}

	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

// Get returns the current configuration (thread-safe).
func (m *Manager) Get() *Config {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.config == nil {
		return DefaultConfig()
	}
	// Return a copy to prevent external modification
	configCopy := *m.config
	return &configCopy
}

// Watch starts watching the config file for changes and reloads automatically.
// Invalid edits are reported through onError and the previous config is kept.
func (m *Manager) Watch(onError func(error)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.watching {
		return nil
	}
	if m.viper.ConfigFileUsed() == "" {
		return errors.New("no config file to watch")
	}

	m.viper.OnConfigChange(func(_ fsnotify.Event) {
		if err := m.reload(); err != nil {
			if onError != nil {
				onError(err)
			}
			return
		}

		m.mu.RLock()
		config := m.config
		callbacks := make([]func(*Config), len(m.callbacks))
		copy(callbacks, m.callbacks)
		m.mu.RUnlock()

		for _, callback := range callbacks {
			callback(config)
		}
	})
	m.viper.WatchConfig()

	m.watching = true
	return nil
}

// OnConfigChange registers a callback function to be called when config changes.
func (m *Manager) OnConfigChange(callback func(*Config)) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.callbacks = append(m.callbacks, callback)
}

// WriteDefault writes the defaults to path unless the file already exists.
func (m *Manager) WriteDefault(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	if err := m.viper.SafeWriteConfigAs(path); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}

// ConfigFile returns the path to the configuration file being used.
func (m *Manager) ConfigFile() string {
	return m.viper.ConfigFileUsed()
}

func (m *Manager) reload() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if err := m.viper.ReadInConfig(); err != nil {
		return err
	}
	config, err := m.decode()
	if err != nil {
		return err
	}
	m.config = config
	return nil
}

func (m *Manager) decode() (*Config, error) {
	config := &Config{}
	if err := m.viper.Unmarshal(config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	config.Logging.Level = strings.ToLower(config.Logging.Level)
	config.Logging.Format = strings.ToLower(config.Logging.Format)

	if err := validateConfig(config); err != nil {
		return nil, err
	}
	return config, nil
}

// setDefaults sets default configuration values in Viper.
func (m *Manager) setDefaults() {
	defaults := DefaultConfig()

	m.viper.SetDefault("keyboard.poll_interval", defaults.Keyboard.PollInterval.String())
	m.viper.SetDefault("keyboard.prefer_device_height", defaults.Keyboard.PreferDeviceHeight)
	m.viper.SetDefault("keyboard.touch_recheck", defaults.Keyboard.TouchRecheck)

	m.viper.SetDefault("logging.level", defaults.Logging.Level)
	m.viper.SetDefault("logging.format", defaults.Logging.Format)
	m.viper.SetDefault("logging.time_format", defaults.Logging.TimeFormat)

	m.viper.SetDefault("simulator.keyboard_height", defaults.Simulator.KeyboardHeight)
	m.viper.SetDefault("simulator.device_height_supported", defaults.Simulator.DeviceHeightSupported)
}
