package softkeyboard

import (
	"errors"
	"fmt"
	"time"
)

const (
	// DefaultPollInterval is used when no interval is given.
	DefaultPollInterval = 500 * time.Millisecond
	// MinPollInterval is the smallest accepted full-screen poll interval.
	MinPollInterval = 100 * time.Millisecond
)

var (
	// ErrInvalidInterval is returned for poll intervals below MinPollInterval.
	ErrInvalidInterval = errors.New("invalid poll interval")
	// ErrNilWindow is returned when a subscription targets no window.
	ErrNilWindow = errors.New("window is nil")
	// ErrNilCallback is returned when a subscription has no callback.
	ErrNilCallback = errors.New("callback is nil")
	// ErrNilView is returned by Show when no input field is given.
	ErrNilView = errors.New("view is nil")
	// ErrPollerStarted is returned when a checker is started twice.
	ErrPollerStarted = errors.New("poller already started")
	// ErrPollerStopped is returned when starting a checker that was stopped.
	ErrPollerStopped = errors.New("poller stopped")
)

// ValidateInterval checks that interval is usable for full-screen polling.
// Intervals are never clamped.
func ValidateInterval(interval time.Duration) error {
	if interval < MinPollInterval {
		return fmt.Errorf("%w: %s is below the %s minimum", ErrInvalidInterval, interval, MinPollInterval)
	}
	return nil
}
