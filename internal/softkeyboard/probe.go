package softkeyboard

import (
	"context"
	"errors"

	"github.com/bnema/softkeyboard/internal/application/port"
	"github.com/bnema/softkeyboard/internal/domain/entity"
)

// HeightProbe reads raw keyboard height signals from the host.
type HeightProbe struct {
	ime        port.InputMethodManager
	loggerFrom port.LoggerFromContext
}

// NewHeightProbe creates a probe backed by the given input method manager.
func NewHeightProbe(ime port.InputMethodManager, loggerFrom port.LoggerFromContext) *HeightProbe {
	return &HeightProbe{ime: ime, loggerFrom: loggerFrom}
}

// AppVisibleHeight returns the bottom padding of the window's content view,
// which the host reserves while the keyboard shares the screen with the app.
func (p *HeightProbe) AppVisibleHeight(win port.Window) int {
	if win == nil {
		return 0
	}
	root := win.Root()
	if root == nil {
		return 0
	}
	content := root.ChildAt(0)
	if content == nil {
		return 0
	}
	return content.PaddingBottom()
}

// DeviceVisibleHeight returns the device-level keyboard height.
// ok is false when the platform lacks the query, the query fails or the
// reported value is negative; failures are logged and never returned.
func (p *HeightProbe) DeviceVisibleHeight(ctx context.Context) (height int, ok bool) {
	if p.ime == nil || !p.ime.SupportsDeviceVisibleHeight() {
		return entity.DeviceHeightUnavailable, false
	}

	height, err := p.ime.DeviceVisibleHeight(ctx)
	if err != nil {
		log := p.loggerFrom(ctx)
		if errors.Is(err, port.ErrDeviceHeightUnsupported) {
			log.Debug().Msg("device visible height not supported, using app height")
		} else {
			log.Debug().Err(err).Msg("device visible height query failed, using app height")
		}
		return entity.DeviceHeightUnavailable, false
	}
	if height < 0 {
		return entity.DeviceHeightUnavailable, false
	}
	return height, true
}
