package port

import (
	"context"
	"errors"

	"github.com/bnema/softkeyboard/internal/domain/entity"
)

// ErrDeviceHeightUnsupported is returned by input method back-ends that cannot
// report the device-level keyboard height.
var ErrDeviceHeightUnsupported = errors.New("device visible height not supported")

// InputMethodManager is the host input method coordinator.
// Implementations are only required to be safe on the UI thread.
type InputMethodManager interface {
	// IsFullscreenMode is the authoritative full-screen input mode flag.
	IsFullscreenMode() bool

	// SupportsDeviceVisibleHeight gates DeviceVisibleHeight on platform capability.
	SupportsDeviceVisibleHeight() bool

	// DeviceVisibleHeight returns the keyboard height measured on the device.
	// Best effort: may fail or return a negative value when unknown.
	DeviceVisibleHeight(ctx context.Context) (int, error)

	// ShowSoftInput shows the keyboard for the given view.
	ShowSoftInput(ctx context.Context, view View, mode entity.ShowMode) error

	// HideSoftInputFromWindow hides the keyboard attached to the window token.
	HideSoftInputFromWindow(ctx context.Context, token string, mode entity.HideMode) error
}
