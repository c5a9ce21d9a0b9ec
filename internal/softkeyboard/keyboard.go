// Package softkeyboard observes the on-screen keyboard of a host window.
//
// Visibility is tracked through layout notifications pushed by the host. Full-screen
// input mode does not always produce a layout pass, so while it is active a
// background checker polls the authoritative flag and hands each check over to the
// UI thread. User touches on the window trigger the same check through a shared
// marker view.
//
// Subscribe calls, callbacks, Show and Hide run on the UI thread.
package softkeyboard

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/bnema/softkeyboard/internal/application/port"
	"github.com/bnema/softkeyboard/internal/domain/entity"
)

// ShowChangedFunc receives debounced keyboard states.
type ShowChangedFunc func(state entity.VisibilityState)

// FullScreenChangedFunc receives full-screen input mode transitions.
type FullScreenChangedFunc func(fullScreen bool)

// Option configures a Keyboard.
type Option func(*Keyboard)

// WithLoggerFromContext sets how loggers are resolved from contexts.
func WithLoggerFromContext(fn port.LoggerFromContext) Option {
	return func(k *Keyboard) {
		if fn != nil {
			k.loggerFrom = fn
		}
	}
}

// WithPollInterval sets the full-screen poll interval used by show subscriptions.
func WithPollInterval(interval time.Duration) Option {
	return func(k *Keyboard) {
		k.pollInterval = interval
	}
}

// WithDeviceHeight enables or disables the device-level height preference.
func WithDeviceHeight(prefer bool) Option {
	return func(k *Keyboard) {
		k.preferDevice = prefer
	}
}

// WithMarkerFactory enables touch-triggered full-screen rechecks.
func WithMarkerFactory(factory port.MarkerFactory) Option {
	return func(k *Keyboard) {
		k.markers = newTouchMarkers(factory)
	}
}

// Keyboard observes the soft keyboard for any number of windows.
type Keyboard struct {
	ime          port.InputMethodManager
	dispatcher   port.UIDispatcher
	markers      *touchMarkers
	loggerFrom   port.LoggerFromContext
	pollInterval time.Duration
	preferDevice bool

	probe      *HeightProbe
	classifier *Classifier

	mu     sync.Mutex
	nextID uint64
	subs   map[uint64]watch
}

// New creates a Keyboard. dispatcher must post onto the thread owning the windows.
func New(ime port.InputMethodManager, dispatcher port.UIDispatcher, opts ...Option) (*Keyboard, error) {
	k := &Keyboard{
		ime:          ime,
		dispatcher:   dispatcher,
		markers:      newTouchMarkers(nil),
		loggerFrom:   zerolog.Ctx,
		pollInterval: DefaultPollInterval,
		preferDevice: true,
		subs:         make(map[uint64]watch),
	}
	for _, opt := range opts {
		opt(k)
	}
	if err := ValidateInterval(k.pollInterval); err != nil {
		return nil, fmt.Errorf("keyboard poll interval: %w", err)
	}

	k.probe = NewHeightProbe(ime, k.loggerFrom)
	k.classifier = NewClassifier(ime, k.probe, k.preferDevice)
	return k, nil
}

// IsShown reports whether the keyboard is visible in the window.
func (k *Keyboard) IsShown(ctx context.Context, win port.Window) bool {
	return k.classifier.Classify(ctx, win).Shown
}

// State returns the current, undebounced keyboard state of the window.
func (k *Keyboard) State(ctx context.Context, win port.Window) entity.VisibilityState {
	return k.classifier.Classify(ctx, win)
}

// AppVisibleHeight returns the height the keyboard occupies inside the window.
func (k *Keyboard) AppVisibleHeight(win port.Window) int {
	return k.probe.AppVisibleHeight(win)
}

// DeviceVisibleHeight returns the device-level keyboard height or
// entity.DeviceHeightUnavailable.
func (k *Keyboard) DeviceVisibleHeight(ctx context.Context) int {
	height, _ := k.probe.DeviceVisibleHeight(ctx)
	return height
}

// Show focuses field and forces the keyboard up for it.
func (k *Keyboard) Show(ctx context.Context, field port.View) error {
	if field == nil {
		return ErrNilView
	}
	field.RequestFocus()
	if err := k.ime.ShowSoftInput(ctx, field, entity.ShowForced); err != nil {
		return fmt.Errorf("show soft input: %w", err)
	}
	return nil
}

// HideWindow hides the keyboard attached to win.
func (k *Keyboard) HideWindow(ctx context.Context, win port.Window) error {
	if win == nil {
		return nil
	}
	return k.hide(ctx, win.Token())
}

// HideFromView hides the keyboard of the focused view below view.
// It is a no-op when nothing there holds focus.
func (k *Keyboard) HideFromView(ctx context.Context, view port.View) error {
	if view == nil {
		return nil
	}
	focused := view.FindFocus()
	if focused == nil {
		return nil
	}
	return k.hide(ctx, focused.WindowToken())
}

func (k *Keyboard) hide(ctx context.Context, token string) error {
	if err := k.ime.HideSoftInputFromWindow(ctx, token, entity.HideAlways); err != nil {
		return fmt.Errorf("hide soft input: %w", err)
	}
	return nil
}

// ActiveSubscriptions returns the number of live subscriptions, including
// the full-screen watches owned by show subscriptions.
func (k *Keyboard) ActiveSubscriptions() int {
	k.mu.Lock()
	defer k.mu.Unlock()
	return len(k.subs)
}

// ActivePollers returns the number of running full-screen checkers.
func (k *Keyboard) ActivePollers() int {
	k.mu.Lock()
	watches := make([]watch, 0, len(k.subs))
	for _, w := range k.subs {
		watches = append(watches, w)
	}
	k.mu.Unlock()

	n := 0
	for _, w := range watches {
		if fw, ok := w.(*fullScreenWatch); ok && fw.polling() {
			n++
		}
	}
	return n
}

// Close cancels every live subscription.
func (k *Keyboard) Close() {
	k.mu.Lock()
	ids := make([]uint64, 0, len(k.subs))
	for id := range k.subs {
		ids = append(ids, id)
	}
	k.mu.Unlock()

	for _, id := range ids {
		k.release(id)
	}
}

func (k *Keyboard) allocID() uint64 {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.nextID++
	return k.nextID
}

func (k *Keyboard) store(id uint64, w watch) {
	k.mu.Lock()
	defer k.mu.Unlock()
	k.subs[id] = w
}

func (k *Keyboard) lookup(id uint64) watch {
	k.mu.Lock()
	defer k.mu.Unlock()
	return k.subs[id]
}

// release removes the record from the arena and closes it.
// Unknown ids are ignored, which makes cancellation idempotent.
func (k *Keyboard) release(id uint64) {
	k.mu.Lock()
	w, ok := k.subs[id]
	delete(k.subs, id)
	k.mu.Unlock()

	if ok {
		w.close()
	}
}

func (k *Keyboard) logger(ctx context.Context) *zerolog.Logger {
	return k.loggerFrom(ctx)
}
