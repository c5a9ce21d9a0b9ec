package scenario

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/softkeyboard/internal/domain/entity"
	"github.com/bnema/softkeyboard/internal/softkeyboard"
)

func mustParse(t *testing.T, input string) *Scenario {
	t.Helper()
	sc, err := Parse(strings.NewReader(input))
	require.NoError(t, err)
	return sc
}

func showStates(events []Event) []entity.VisibilityState {
	var states []entity.VisibilityState
	for _, ev := range events {
		if ev.Source == SourceShow {
			states = append(states, ev.State)
		}
	}
	return states
}

func TestNewRunner_RejectsShortInterval(t *testing.T) {
	_, err := NewRunner(Options{PollInterval: 50 * time.Millisecond})
	require.ErrorIs(t, err, softkeyboard.ErrInvalidInterval)
}

func TestRunner_ShowAndHide(t *testing.T) {
	runner, err := NewRunner(Options{PollInterval: softkeyboard.MinPollInterval})
	require.NoError(t, err)

	sc := mustParse(t, `
name: show-hide
steps:
  - show: true
  - hide: true
`)

	var streamed []Event
	report, err := runner.Run(context.Background(), sc, func(ev Event) {
		streamed = append(streamed, ev)
	})
	require.NoError(t, err)

	assert.Equal(t, []entity.VisibilityState{
		{},
		{Shown: true, AppVisibleHeight: 240},
		{},
	}, showStates(report.Events))
	assert.Equal(t, report.Events, streamed)
	assert.False(t, report.Final.Shown)
	assert.Equal(t, entity.DeviceHeightUnavailable, report.DeviceHeight)

	for i, ev := range report.Events {
		assert.Equal(t, i+1, ev.Seq)
	}
}

func TestRunner_KeyboardHeightStep(t *testing.T) {
	runner, err := NewRunner(Options{PollInterval: softkeyboard.MinPollInterval})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), mustParse(t, `
steps:
  - keyboard_height: 310
  - show: true
`), nil)
	require.NoError(t, err)

	assert.True(t, report.Final.Shown)
	assert.Equal(t, 310, report.Final.AppVisibleHeight)
}

func TestRunner_LeavingFullScreenIsPolled(t *testing.T) {
	runner, err := NewRunner(Options{PollInterval: softkeyboard.MinPollInterval})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), mustParse(t, `
steps:
  - fullscreen: true
  - layout: true
  - fullscreen: false
  - wait: 400ms
`), nil)
	require.NoError(t, err)

	assert.Equal(t, []entity.VisibilityState{
		{},
		{Shown: true, FullScreen: true},
		{},
	}, showStates(report.Events))
}

func TestRunner_TouchRechecksWithoutWaiting(t *testing.T) {
	runner, err := NewRunner(Options{
		PollInterval:    time.Minute,
		TouchRecheck:    true,
		WatchFullScreen: true,
	})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), mustParse(t, `
steps:
  - fullscreen: true
  - layout: true
  - fullscreen: false
  - touch: true
`), nil)
	require.NoError(t, err)

	var flags []bool
	for _, ev := range report.Events {
		if ev.Source == SourceFullScreen {
			flags = append(flags, ev.FullScreen)
		}
	}
	assert.Equal(t, []bool{false}, flags, "the dedicated watch only reports its initial flag before the touch")

	states := showStates(report.Events)
	require.NotEmpty(t, states)
	assert.False(t, states[len(states)-1].FullScreen)
}

func TestRunner_DevicePreference(t *testing.T) {
	runner, err := NewRunner(Options{
		PollInterval:          softkeyboard.MinPollInterval,
		PreferDeviceHeight:    true,
		DeviceHeightSupported: true,
	})
	require.NoError(t, err)

	report, err := runner.Run(context.Background(), mustParse(t, `
steps:
  - show: true
  - device_height: 0
  - layout: true
`), nil)
	require.NoError(t, err)

	assert.False(t, report.Final.Shown, "a reported device height of zero wins over the padding")
	assert.Equal(t, 240, report.Final.AppVisibleHeight)
	assert.Equal(t, 0, report.DeviceHeight)
}

func TestRunner_Canceled(t *testing.T) {
	runner, err := NewRunner(Options{PollInterval: softkeyboard.MinPollInterval})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err = runner.Run(ctx, mustParse(t, "steps:\n  - wait: 10s\n"), nil)
	require.ErrorIs(t, err, context.DeadlineExceeded)
}
