// Package simhost is an in-memory windowing system with a scriptable input method.
//
// It stands in for the platform UI toolkit in the CLI and in tests. Like a real
// toolkit, views must only be touched from the UI thread; the internal locks only
// keep the race detector quiet when tests inspect state from other goroutines.
package simhost

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/softkeyboard/internal/application/port"
	"github.com/bnema/softkeyboard/internal/domain/entity"
)

// DefaultKeyboardHeight is the height applied when the keyboard is shown.
const DefaultKeyboardHeight = 240

// ErrUnknownWindow is returned for tokens that match no window.
var ErrUnknownWindow = errors.New("unknown window token")

// Compile-time interface checks.
var (
	_ port.InputMethodManager = (*Host)(nil)
	_ port.MarkerFactory      = (*Host)(nil)
)

// Host owns the simulated windows and input method state.
type Host struct {
	mu              sync.Mutex
	windows         map[string]*Window
	fullScreen      bool
	deviceSupported bool
	deviceHeight    int
	deviceErr       error
	keyboardHeight  int
	shownToken      string
	deviceQueries   int
}

// New creates a host without device height support.
func New() *Host {
	return &Host{
		windows:        make(map[string]*Window),
		deviceHeight:   entity.DeviceHeightUnavailable,
		keyboardHeight: DefaultKeyboardHeight,
	}
}

// NewWindow creates and registers a window.
func (h *Host) NewWindow() *Window {
	w := newWindow()
	h.mu.Lock()
	h.windows[w.token] = w
	h.mu.Unlock()
	return w
}

// IsFullscreenMode reports full-screen input mode.
func (h *Host) IsFullscreenMode() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.fullScreen
}

// SetFullscreenMode changes the flag without any layout pass,
// like hosts that switch modes silently.
func (h *Host) SetFullscreenMode(fullScreen bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.fullScreen = fullScreen
}

// SupportsDeviceVisibleHeight reports the device height capability.
func (h *Host) SupportsDeviceVisibleHeight() bool {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deviceSupported
}

// SetDeviceSupported toggles the device height capability.
func (h *Host) SetDeviceSupported(supported bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deviceSupported = supported
}

// DeviceVisibleHeight returns the scripted device height.
func (h *Host) DeviceVisibleHeight(_ context.Context) (int, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deviceQueries++
	if !h.deviceSupported {
		return entity.DeviceHeightUnavailable, port.ErrDeviceHeightUnsupported
	}
	if h.deviceErr != nil {
		return entity.DeviceHeightUnavailable, h.deviceErr
	}
	return h.deviceHeight, nil
}

// SetDeviceVisibleHeight scripts the device height; negative means unknown.
func (h *Host) SetDeviceVisibleHeight(height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deviceHeight = height
}

// FailDeviceQuery makes device height queries fail with err; nil clears it.
func (h *Host) FailDeviceQuery(err error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.deviceErr = err
}

// DeviceQueries returns how often the device height was queried.
func (h *Host) DeviceQueries() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.deviceQueries
}

// SetKeyboardHeight sets the height used by ShowSoftInput.
func (h *Host) SetKeyboardHeight(height int) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.keyboardHeight = height
}

// ShownToken returns the token of the window the keyboard is shown for.
func (h *Host) ShownToken() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.shownToken
}

// ShowSoftInput raises the keyboard for the view's window and lays it out.
// In full-screen mode the window keeps its size.
func (h *Host) ShowSoftInput(_ context.Context, view port.View, _ entity.ShowMode) error {
	token := view.WindowToken()

	h.mu.Lock()
	win, ok := h.windows[token]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("show soft input: %w", ErrUnknownWindow)
	}
	h.shownToken = token
	height := h.keyboardHeight
	if h.deviceSupported {
		h.deviceHeight = height
	}
	fullScreen := h.fullScreen
	h.mu.Unlock()

	if fullScreen {
		height = 0
	}
	win.SetBottomInset(height)
	return nil
}

// HideSoftInputFromWindow lowers the keyboard of the window.
func (h *Host) HideSoftInputFromWindow(_ context.Context, token string, _ entity.HideMode) error {
	h.mu.Lock()
	win, ok := h.windows[token]
	if !ok {
		h.mu.Unlock()
		return fmt.Errorf("hide soft input: %w", ErrUnknownWindow)
	}
	if h.shownToken == token {
		h.shownToken = ""
	}
	if h.deviceSupported {
		h.deviceHeight = 0
	}
	h.mu.Unlock()

	win.SetBottomInset(0)
	return nil
}

// NewTouchMarker creates a zero-size view that forwards touches to onTouch.
func (h *Host) NewTouchMarker(onTouch func(port.TouchEvent)) port.View {
	v := newView(nil, "touch-marker")
	v.marker = true
	v.onTouch = onTouch
	return v
}
