package softkeyboard

import (
	"context"
	"sync"
	"time"

	"github.com/bnema/softkeyboard/internal/application/port"
)

// watch is a subscription record stored in the Keyboard arena.
type watch interface {
	close()
}

// Subscription is the cancel handle returned by subscribe calls.
type Subscription struct {
	id uint64
	kb *Keyboard
}

// ID returns the arena id of the subscription.
func (s *Subscription) ID() uint64 {
	return s.id
}

// Active reports whether the subscription has not been canceled.
func (s *Subscription) Active() bool {
	if s == nil || s.kb == nil {
		return false
	}
	return s.kb.lookup(s.id) != nil
}

// Cancel releases the layout listener, stops the full-screen checker and
// frees the window's touch marker slot. Only the first call has an effect.
// The host side of the release must run on the UI thread.
func (s *Subscription) Cancel() {
	if s == nil || s.kb == nil {
		return
	}
	s.kb.release(s.id)
}

// SubscribeToFullScreenChanges reports full-screen input mode transitions of win.
// The current flag is delivered immediately. While full-screen mode is active the
// flag is polled every interval; zero selects DefaultPollInterval.
func (k *Keyboard) SubscribeToFullScreenChanges(
	ctx context.Context, win port.Window, fn FullScreenChangedFunc, interval time.Duration,
) (*Subscription, error) {
	if interval == 0 {
		interval = DefaultPollInterval
	}
	if err := ValidateInterval(interval); err != nil {
		return nil, err
	}
	if win == nil {
		return nil, ErrNilWindow
	}
	if fn == nil {
		return nil, ErrNilCallback
	}
	return k.subscribeFullScreen(ctx, win, fn, interval, true), nil
}

func (k *Keyboard) subscribeFullScreen(
	ctx context.Context, win port.Window, fn FullScreenChangedFunc, interval time.Duration, notifyInitial bool,
) *Subscription {
	id := k.allocID()
	log := k.logger(ctx).With().
		Uint64("subscription_id", id).
		Str("window_id", win.ID()).
		Logger()

	w := &fullScreenWatch{
		kb:       k,
		id:       id,
		ctx:      log.WithContext(ctx),
		winID:    win.ID(),
		interval: interval,
		onChange: fn,
		alive:    true,
		value:    k.ime.IsFullscreenMode(),
	}
	k.store(id, w)
	k.markers.acquire(win, id, func(port.TouchEvent) {
		k.recheck(id, 0)
	})

	if notifyInitial {
		fn(w.value)
	}

	w.mu.Lock()
	if w.alive && w.value && w.poller == nil {
		w.startPollerLocked()
	}
	w.mu.Unlock()

	log.Debug().Bool("fullscreen", w.value).Dur("interval", interval).Msg("full-screen watch started")
	return &Subscription{id: id, kb: k}
}

// recheck runs on the UI thread, from a poll hand-off or a touch.
// Hand-offs for released subscriptions are dropped here.
func (k *Keyboard) recheck(id, gen uint64) {
	w, ok := k.lookup(id).(*fullScreenWatch)
	if !ok {
		return
	}
	w.check(gen)
}

type fullScreenWatch struct {
	kb       *Keyboard
	id       uint64
	ctx      context.Context
	winID    string
	interval time.Duration
	onChange FullScreenChangedFunc

	mu     sync.Mutex
	alive  bool
	value  bool
	poller *Poller
	// gen identifies the current poller; hand-offs from older pollers are stale.
	gen uint64
}

// check compares the authoritative flag with the last reported value.
// gen 0 marks a touch-triggered check, which is never stale.
func (w *fullScreenWatch) check(gen uint64) {
	current := w.kb.ime.IsFullscreenMode()

	w.mu.Lock()
	if !w.alive || (gen != 0 && gen != w.gen) {
		w.mu.Unlock()
		return
	}
	if current == w.value {
		w.mu.Unlock()
		return
	}
	w.value = current
	if !current {
		// Stop before notifying so no poll lands after the "left" notification.
		w.stopPollerLocked()
	}
	w.mu.Unlock()

	w.kb.logger(w.ctx).Debug().Bool("fullscreen", current).Msg("full-screen mode changed")
	w.onChange(current)

	if current {
		w.mu.Lock()
		if w.alive && w.value && w.poller == nil {
			w.startPollerLocked()
		}
		w.mu.Unlock()
	}
}

func (w *fullScreenWatch) startPollerLocked() {
	w.gen++
	gen := w.gen
	p := newPoller(w.interval, w.kb.dispatcher, func() {
		w.kb.recheck(w.id, gen)
	})
	if err := p.Start(); err != nil {
		w.kb.logger(w.ctx).Error().Err(err).Msg("failed to start full-screen checker")
		return
	}
	w.poller = p
}

func (w *fullScreenWatch) stopPollerLocked() {
	if w.poller == nil {
		return
	}
	w.poller.Stop()
	w.poller = nil
	w.gen++
}

func (w *fullScreenWatch) polling() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.poller != nil
}

func (w *fullScreenWatch) close() {
	w.mu.Lock()
	if !w.alive {
		w.mu.Unlock()
		return
	}
	w.alive = false
	w.stopPollerLocked()
	w.mu.Unlock()

	if w.kb.markers.release(w.winID, w.id) {
		w.kb.logger(w.ctx).Debug().Msg("touch marker removed")
	}
	w.kb.logger(w.ctx).Debug().Msg("full-screen watch canceled")
}

// SubscribeToShowChanges reports debounced keyboard states of win.
// The current state is delivered immediately, then on every change seen by a
// layout pass, a full-screen poll or a touch.
func (k *Keyboard) SubscribeToShowChanges(ctx context.Context, win port.Window, fn ShowChangedFunc) (*Subscription, error) {
	if win == nil {
		return nil, ErrNilWindow
	}
	if fn == nil {
		return nil, ErrNilCallback
	}

	id := k.allocID()
	log := k.logger(ctx).With().
		Uint64("subscription_id", id).
		Str("window_id", win.ID()).
		Logger()

	w := &showWatch{
		kb:       k,
		id:       id,
		ctx:      log.WithContext(ctx),
		win:      win,
		interval: k.pollInterval,
		onChange: fn,
		alive:    true,
	}
	k.store(id, w)
	w.evaluate()

	token := win.AddLayoutListener(w.evaluate)
	w.mu.Lock()
	if !w.alive {
		w.mu.Unlock()
		win.RemoveLayoutListener(token)
		return &Subscription{id: id, kb: k}, nil
	}
	w.token = token
	w.registered = true
	w.mu.Unlock()

	log.Debug().Msg("show watch started")
	return &Subscription{id: id, kb: k}, nil
}

type showWatch struct {
	kb       *Keyboard
	id       uint64
	ctx      context.Context
	interval time.Duration
	onChange ShowChangedFunc

	mu         sync.Mutex
	alive      bool
	win        port.Window
	token      port.ListenerToken
	registered bool
	debouncer  Debouncer
	// inner is the full-screen watch that exists while full-screen mode is active.
	inner *Subscription
}

func (w *showWatch) evaluate() {
	w.mu.Lock()
	win, alive := w.win, w.alive
	w.mu.Unlock()
	if !alive {
		return
	}

	state := w.kb.classifier.Classify(w.ctx, win)

	w.mu.Lock()
	if !w.alive {
		w.mu.Unlock()
		return
	}
	next, changed := w.debouncer.Offer(state)
	if !changed {
		w.mu.Unlock()
		return
	}
	var stale *Subscription
	if !next.FullScreen && w.inner != nil {
		stale = w.inner
		w.inner = nil
	}
	w.mu.Unlock()

	if stale != nil {
		stale.Cancel()
	}

	w.kb.logger(w.ctx).Debug().Stringer("state", next).Msg("keyboard state changed")
	w.onChange(next)

	if next.FullScreen {
		w.watchFullScreen(win)
	}
}

func (w *showWatch) watchFullScreen(win port.Window) {
	w.mu.Lock()
	need := w.alive && w.inner == nil
	w.mu.Unlock()
	if !need {
		return
	}

	inner := w.kb.subscribeFullScreen(w.ctx, win, func(bool) {
		w.evaluate()
	}, w.interval, false)

	w.mu.Lock()
	if w.alive && w.inner == nil {
		w.inner = inner
		w.mu.Unlock()
		return
	}
	w.mu.Unlock()
	inner.Cancel()
}

func (w *showWatch) close() {
	w.mu.Lock()
	if !w.alive {
		w.mu.Unlock()
		return
	}
	w.alive = false
	win, token, registered := w.win, w.token, w.registered
	inner := w.inner
	w.win = nil
	w.inner = nil
	w.registered = false
	w.mu.Unlock()

	if registered {
		win.RemoveLayoutListener(token)
	}
	if inner != nil {
		inner.Cancel()
	}
	w.kb.logger(w.ctx).Debug().Msg("show watch canceled")
}
