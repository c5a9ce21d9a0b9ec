package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/softkeyboard/internal/config"
)

// ConfigRenderer renders config status messages with styled output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderConfigInfo renders the config file path.
func (r *ConfigRenderer) RenderConfigInfo(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
	)
}

// RenderEffective renders the effective configuration values.
func (r *ConfigRenderer) RenderEffective(cfg *config.Config) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	keyStyle := r.theme.Highlight
	valueStyle := r.theme.Normal

	entries := []struct {
		key   string
		value string
	}{
		{"keyboard.poll_interval", cfg.Keyboard.PollInterval.String()},
		{"keyboard.prefer_device_height", fmt.Sprintf("%t", cfg.Keyboard.PreferDeviceHeight)},
		{"keyboard.touch_recheck", fmt.Sprintf("%t", cfg.Keyboard.TouchRecheck)},
		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
		{"simulator.keyboard_height", fmt.Sprintf("%d", cfg.Simulator.KeyboardHeight)},
		{"simulator.device_height_supported", fmt.Sprintf("%t", cfg.Simulator.DeviceHeightSupported)},
	}

	var sb strings.Builder
	sb.WriteString("\n")
	for _, e := range entries {
		sb.WriteString(fmt.Sprintf(
			"    %s %s = %s\n",
			iconStyle.Render(IconCursor),
			keyStyle.Render(e.key),
			valueStyle.Render(e.value),
		))
	}
	return sb.String()
}

// RenderCreated renders the message shown after writing a default config file.
func (r *ConfigRenderer) RenderCreated(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	return fmt.Sprintf(
		"\n  %s Wrote defaults to %s\n",
		iconStyle.Render(IconCheck),
		r.theme.Subtle.Render(path),
	)
}

// RenderError renders an error message.
func (r *ConfigRenderer) RenderError(err error) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Error)

	return fmt.Sprintf(
		"\n  %s Config error: %v\n",
		iconStyle.Render(IconX),
		err,
	)
}

// RenderNoConfigFile renders message when config file doesn't exist yet.
func (r *ConfigRenderer) RenderNoConfigFile(path string) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s Config %s\n  %s\n",
		iconStyle.Render(IconConfig),
		r.theme.Subtle.Render(path),
		r.theme.Subtle.Render("No config file, using defaults. Run 'softkbd config init' to create one."),
	)
}
