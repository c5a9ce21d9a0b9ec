package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// AccentBadge renders a badge with accent color.
func (t *Theme) AccentBadge(text string) string {
	return t.Badge.Render(text)
}

// MutedBadge renders a badge with muted colors.
func (t *Theme) MutedBadge(text string) string {
	return t.BadgeMuted.Render(text)
}

// StatusBadge renders a status badge with custom colors.
func (*Theme) StatusBadge(text string, fg, bg lipgloss.Color) string {
	style := lipgloss.NewStyle().
		Foreground(fg).
		Background(bg).
		Padding(0, 1)
	return style.Render(text)
}

// BoolBadge renders on/off flags.
func (t *Theme) BoolBadge(label string, on bool) string {
	if on {
		return t.AccentBadge(label)
	}
	return t.MutedBadge(label)
}
