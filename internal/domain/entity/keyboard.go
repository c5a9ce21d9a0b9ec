// Package entity defines domain entities for softkeyboard.
package entity

import "fmt"

// DeviceHeightUnavailable is reported when the device-level keyboard height
// cannot be determined.
const DeviceHeightUnavailable = -1

// VisibilityState is a snapshot of the soft keyboard as seen from one window.
// Values are replaced wholesale on every evaluation and compared with ==.
type VisibilityState struct {
	// Shown is true when the keyboard is visible or full-screen input mode is active.
	Shown bool
	// FullScreen is true when the keyboard covers the whole display.
	FullScreen bool
	// AppVisibleHeight is the space the window reserves at the bottom of its content.
	AppVisibleHeight int
}

// Equal reports whether both snapshots carry the same values.
func (s VisibilityState) Equal(other VisibilityState) bool {
	return s == other
}

// String returns a compact representation used in logs and CLI output.
func (s VisibilityState) String() string {
	return fmt.Sprintf("shown=%t fullscreen=%t height=%d", s.Shown, s.FullScreen, s.AppVisibleHeight)
}

// ShowMode selects how forcefully the input method should be shown.
type ShowMode int

const (
	// ShowImplicit lets the input method decide whether to show.
	ShowImplicit ShowMode = iota
	// ShowForced shows the keyboard even without an explicit user request.
	ShowForced
)

// String returns a human-readable string for the show mode.
func (m ShowMode) String() string {
	switch m {
	case ShowImplicit:
		return "implicit"
	case ShowForced:
		return "forced"
	default:
		return "unknown"
	}
}

// HideMode selects which show requests a hide request overrides.
type HideMode int

const (
	// HideAlways hides the keyboard regardless of how it was shown.
	HideAlways HideMode = iota
	// HideImplicitOnly hides only a keyboard that was shown implicitly.
	HideImplicitOnly
)

// String returns a human-readable string for the hide mode.
func (m HideMode) String() string {
	switch m {
	case HideAlways:
		return "always"
	case HideImplicitOnly:
		return "implicit-only"
	default:
		return "unknown"
	}
}
