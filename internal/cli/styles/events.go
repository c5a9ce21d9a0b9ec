package styles

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/softkeyboard/internal/cli/scenario"
	"github.com/bnema/softkeyboard/internal/domain/entity"
)

// EventRenderer renders keyboard notifications and replay summaries.
type EventRenderer struct {
	theme *Theme
}

// NewEventRenderer creates a new event renderer with the given theme.
func NewEventRenderer(theme *Theme) *EventRenderer {
	return &EventRenderer{theme: theme}
}

// RenderHeader renders the line printed before a replay starts.
func (r *EventRenderer) RenderHeader(name string, steps int, interval time.Duration) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	return fmt.Sprintf(
		"\n  %s %s %s\n",
		iconStyle.Render(IconKeyboard),
		r.theme.Title.Render(name),
		r.theme.Subtle.Render(fmt.Sprintf("(%d steps, polling every %s)", steps, interval)),
	)
}

// RenderEvent renders one notification line.
func (r *EventRenderer) RenderEvent(ev scenario.Event) string {
	seq := r.theme.Subtle.Render(fmt.Sprintf("#%-3d", ev.Seq))
	at := r.theme.Subtle.Render(fmt.Sprintf("%6s", ev.Elapsed.Round(time.Millisecond)))

	switch ev.Source {
	case scenario.SourceFullScreen:
		return fmt.Sprintf("  %s %s %s %s", seq, at, r.theme.MutedBadge(ev.Source), r.renderFullScreen(ev.FullScreen))
	default:
		return fmt.Sprintf("  %s %s %s %s", seq, at, r.theme.AccentBadge(ev.Source), r.RenderState(ev.State))
	}
}

// RenderState renders a visibility state on one line.
func (r *EventRenderer) RenderState(state entity.VisibilityState) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var visibility string
	if state.Shown {
		visibility = r.theme.StatusBadge(IconKeyboard+" shown", r.theme.Background, r.theme.Success)
	} else {
		visibility = r.theme.Subtle.Render(IconHidden + " hidden")
	}

	return strings.Join([]string{
		visibility,
		r.renderFullScreen(state.FullScreen),
		fmt.Sprintf("%s %s", iconStyle.Render(IconHeight), r.theme.Normal.Render(fmt.Sprintf("%dpx", state.AppVisibleHeight))),
	}, "  ")
}

func (r *EventRenderer) renderFullScreen(fullScreen bool) string {
	if fullScreen {
		return r.theme.StatusBadge(IconExpand+" full-screen", r.theme.Background, r.theme.Warning)
	}
	return r.theme.Subtle.Render(IconCollapse + " windowed")
}

// RenderReport renders the final state of a replay.
func (r *EventRenderer) RenderReport(report *scenario.Report) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Success)

	device := "unavailable"
	if report.DeviceHeight != entity.DeviceHeightUnavailable {
		device = fmt.Sprintf("%dpx", report.DeviceHeight)
	}

	body := strings.Join([]string{
		r.theme.BoxHeader.Render(report.Scenario),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("state "), r.RenderState(report.Final)),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("device"), r.theme.Normal.Render(device)),
		fmt.Sprintf("%s %s", r.theme.Subtle.Render("events"), r.theme.Normal.Render(fmt.Sprintf("%d", len(report.Events)))),
		fmt.Sprintf("%s %s %s",
			r.theme.Subtle.Render("took  "),
			iconStyle.Render(IconClock),
			r.theme.Normal.Render(report.Elapsed.Round(time.Millisecond).String()),
		),
	}, "\n")

	return "\n" + r.theme.Box.Render(body) + "\n"
}
