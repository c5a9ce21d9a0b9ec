// Package mainloop provides a single-threaded UI event loop.
//
// It plays the role of the GTK main loop: every function posted to the loop runs
// on the same locked OS thread, in FIFO order, one at a time.
package mainloop

import (
	"context"
	"errors"
	"runtime"
	"sync"

	"github.com/bnema/softkeyboard/internal/application/port"
	"github.com/bnema/softkeyboard/internal/logging"
)

// ErrLoopStopped is returned by Invoke once the loop has exited.
var ErrLoopStopped = errors.New("main loop stopped")

// Compile-time interface check.
var _ port.UIDispatcher = (*Loop)(nil)

// Loop is an unbounded FIFO of functions executed on one goroutine.
type Loop struct {
	mu      sync.Mutex
	queue   []func()
	wake    chan struct{}
	quit    chan struct{}
	done    chan struct{}
	stopped bool
	running bool

	quitOnce sync.Once
}

// New creates a loop. Nothing runs until Run is called.
func New() *Loop {
	return &Loop{
		wake: make(chan struct{}, 1),
		quit: make(chan struct{}),
		done: make(chan struct{}),
	}
}

// Post queues fn. It never blocks and may be called from any goroutine,
// including the loop itself. Functions posted after the loop stops are dropped.
func (l *Loop) Post(fn func()) {
	if fn == nil {
		return
	}

	l.mu.Lock()
	if l.stopped {
		l.mu.Unlock()
		return
	}
	l.queue = append(l.queue, fn)
	l.mu.Unlock()

	select {
	case l.wake <- struct{}{}:
	default:
	}
}

// Invoke runs fn on the loop and waits for it to return.
// Must not be called from the loop itself.
func (l *Loop) Invoke(ctx context.Context, fn func()) error {
	finished := make(chan struct{})

	l.mu.Lock()
	stopped := l.stopped
	l.mu.Unlock()
	if stopped {
		return ErrLoopStopped
	}

	l.Post(func() {
		defer close(finished)
		fn()
	})

	select {
	case <-finished:
		return nil
	case <-l.done:
		select {
		case <-finished:
			return nil
		default:
			return ErrLoopStopped
		}
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Run processes posted functions until ctx is canceled or Quit is called.
// The calling goroutine is locked to its OS thread for the lifetime of the loop.
func (l *Loop) Run(ctx context.Context) error {
	log := logging.FromContext(ctx)

	l.mu.Lock()
	if l.running || l.stopped {
		l.mu.Unlock()
		return errors.New("main loop already started")
	}
	l.running = true
	l.mu.Unlock()

	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	defer close(l.done)

	log.Debug().Msg("main loop started")
	for {
		l.drain()

		select {
		case <-l.wake:
		case <-l.quit:
			l.stop()
			log.Debug().Msg("main loop quit")
			return nil
		case <-ctx.Done():
			l.stop()
			log.Debug().Msg("main loop canceled")
			return ctx.Err()
		}
	}
}

// Quit stops the loop after the function currently running.
func (l *Loop) Quit() {
	l.quitOnce.Do(func() {
		close(l.quit)
	})
}

// Done is closed when Run returns.
func (l *Loop) Done() <-chan struct{} {
	return l.done
}

// Pending returns the number of queued functions.
func (l *Loop) Pending() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.queue)
}

func (l *Loop) drain() {
	for {
		l.mu.Lock()
		if len(l.queue) == 0 {
			l.mu.Unlock()
			return
		}
		fn := l.queue[0]
		l.queue[0] = nil
		l.queue = l.queue[1:]
		l.mu.Unlock()

		fn()

		select {
		case <-l.quit:
			return
		default:
		}
	}
}

func (l *Loop) stop() {
	l.mu.Lock()
	l.stopped = true
	l.queue = nil
	l.mu.Unlock()
}
