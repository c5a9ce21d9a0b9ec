package softkeyboard

import (
	"context"

	"github.com/bnema/softkeyboard/internal/application/port"
	"github.com/bnema/softkeyboard/internal/domain/entity"
)

// Classifier turns height probes into a VisibilityState.
type Classifier struct {
	ime          port.InputMethodManager
	probe        *HeightProbe
	preferDevice bool
}

// NewClassifier creates a classifier. When preferDevice is set, a known
// device-level height takes precedence over the app-visible height.
func NewClassifier(ime port.InputMethodManager, probe *HeightProbe, preferDevice bool) *Classifier {
	return &Classifier{ime: ime, probe: probe, preferDevice: preferDevice}
}

// KeyboardHeight returns the best known keyboard height for the window.
func (c *Classifier) KeyboardHeight(ctx context.Context, win port.Window) int {
	return c.keyboardHeight(ctx, c.probe.AppVisibleHeight(win))
}

func (c *Classifier) keyboardHeight(ctx context.Context, appHeight int) int {
	if !c.preferDevice {
		return appHeight
	}
	if height, ok := c.probe.DeviceVisibleHeight(ctx); ok {
		return height
	}
	return appHeight
}

// Classify evaluates the current keyboard state of the window.
// Must run on the UI thread.
func (c *Classifier) Classify(ctx context.Context, win port.Window) entity.VisibilityState {
	fullScreen := c.ime.IsFullscreenMode()
	appHeight := c.probe.AppVisibleHeight(win)

	return entity.VisibilityState{
		Shown:            fullScreen || c.keyboardHeight(ctx, appHeight) > 0,
		FullScreen:       fullScreen,
		AppVisibleHeight: appHeight,
	}
}
