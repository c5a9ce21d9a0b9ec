package softkeyboard

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/bnema/softkeyboard/internal/application/port"
)

// PollerState is the lifecycle state of a Poller.
type PollerState int

const (
	PollerIdle PollerState = iota
	PollerRunning
	PollerStopped
)

// String returns a human-readable string for the poller state.
func (s PollerState) String() string {
	switch s {
	case PollerIdle:
		return "idle"
	case PollerRunning:
		return "running"
	case PollerStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Poller wakes on a fixed interval and hands check over to the UI thread.
// A Poller runs at most once; a new full-screen period gets a new Poller.
type Poller struct {
	interval   time.Duration
	dispatcher port.UIDispatcher
	check      func()

	mu    sync.Mutex
	state PollerState

	canceled atomic.Bool
	stop     chan struct{}
	done     chan struct{}
}

// NewPoller creates a stopped poller. Intervals below MinPollInterval are rejected.
func NewPoller(interval time.Duration, dispatcher port.UIDispatcher, check func()) (*Poller, error) {
	if err := ValidateInterval(interval); err != nil {
		return nil, err
	}
	return newPoller(interval, dispatcher, check), nil
}

func newPoller(interval time.Duration, dispatcher port.UIDispatcher, check func()) *Poller {
	return &Poller{
		interval:   interval,
		dispatcher: dispatcher,
		check:      check,
		stop:       make(chan struct{}),
		done:       make(chan struct{}),
	}
}

// Start launches the background worker.
func (p *Poller) Start() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case PollerRunning:
		return ErrPollerStarted
	case PollerStopped:
		return ErrPollerStopped
	}
	p.state = PollerRunning
	go p.run()
	return nil
}

// Stop cancels the poller and wakes its wait immediately.
// Safe to call from any goroutine, any number of times.
func (p *Poller) Stop() {
	p.canceled.Store(true)

	p.mu.Lock()
	defer p.mu.Unlock()

	switch p.state {
	case PollerStopped:
		return
	case PollerIdle:
		// No worker will ever close done.
		close(p.done)
	}
	p.state = PollerStopped
	close(p.stop)
}

// State returns the current lifecycle state.
func (p *Poller) State() PollerState {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

// Done is closed once the worker has exited.
func (p *Poller) Done() <-chan struct{} {
	return p.done
}

// Interval returns the wake interval.
func (p *Poller) Interval() time.Duration {
	return p.interval
}

func (p *Poller) run() {
	defer close(p.done)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-p.stop:
			return
		case <-ticker.C:
		}
		// A stop may race with the tick; the flag wins.
		if p.canceled.Load() {
			return
		}
		p.dispatcher.Post(p.check)
	}
}
