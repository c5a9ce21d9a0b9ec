package scenario

import (
	"context"
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/softkeyboard/internal/application/port"
	"github.com/bnema/softkeyboard/internal/domain/entity"
	"github.com/bnema/softkeyboard/internal/infrastructure/mainloop"
	"github.com/bnema/softkeyboard/internal/infrastructure/simhost"
	"github.com/bnema/softkeyboard/internal/logging"
	"github.com/bnema/softkeyboard/internal/softkeyboard"
)

// Event sources.
const (
	SourceShow       = "show"
	SourceFullScreen = "fullscreen"
)

// Event is one notification delivered while replaying.
type Event struct {
	Seq        int
	Elapsed    time.Duration
	Source     string
	State      entity.VisibilityState
	FullScreen bool
}

// Report is the outcome of a replay.
type Report struct {
	Scenario     string
	Events       []Event
	Final        entity.VisibilityState
	DeviceHeight int
	Elapsed      time.Duration
}

// Options configures the simulated keyboard used for a replay.
type Options struct {
	PollInterval          time.Duration
	PreferDeviceHeight    bool
	TouchRecheck          bool
	KeyboardHeight        int
	DeviceHeightSupported bool
	// WatchFullScreen adds a dedicated full-screen subscription next to the show one.
	WatchFullScreen bool
}

// Runner replays scenarios against a fresh simulated host.
type Runner struct {
	opts Options
}

// NewRunner validates opts and creates a runner.
func NewRunner(opts Options) (*Runner, error) {
	if opts.PollInterval == 0 {
		opts.PollInterval = softkeyboard.DefaultPollInterval
	}
	if err := softkeyboard.ValidateInterval(opts.PollInterval); err != nil {
		return nil, err
	}
	if opts.KeyboardHeight == 0 {
		opts.KeyboardHeight = simhost.DefaultKeyboardHeight
	}
	return &Runner{opts: opts}, nil
}

// Run replays sc. Host mutations and callbacks run on a dedicated main loop while
// waits happen on the calling goroutine. sink, when set, sees every event in order.
func (r *Runner) Run(ctx context.Context, sc *Scenario, sink func(Event)) (*Report, error) {
	ctx = logging.WithComponent(ctx, "scenario")
	log := logging.FromContext(ctx)

	host := simhost.New()
	host.SetKeyboardHeight(r.opts.KeyboardHeight)
	host.SetDeviceSupported(r.opts.DeviceHeightSupported)
	win := host.NewWindow()
	loop := mainloop.New()

	kbOpts := []softkeyboard.Option{
		softkeyboard.WithPollInterval(r.opts.PollInterval),
		softkeyboard.WithDeviceHeight(r.opts.PreferDeviceHeight),
	}
	if r.opts.TouchRecheck {
		kbOpts = append(kbOpts, softkeyboard.WithMarkerFactory(host))
	}
	kb, err := softkeyboard.New(host, loop, kbOpts...)
	if err != nil {
		return nil, fmt.Errorf("create keyboard: %w", err)
	}

	rec := &recorder{start: time.Now(), sink: sink}
	report := &Report{Scenario: sc.Name}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer loop.Quit()

		winCtx := logging.WithWindowID(gctx, win.ID())
		if err := r.subscribe(winCtx, loop, kb, win, rec); err != nil {
			return err
		}
		for i, step := range sc.Steps {
			if err := r.apply(winCtx, loop, kb, host, win, step); err != nil {
				return fmt.Errorf("step %d: %w", i+1, err)
			}
		}
		return loop.Invoke(gctx, func() {
			report.Final = kb.State(winCtx, win)
			report.DeviceHeight = kb.DeviceVisibleHeight(winCtx)
			kb.Close()
		})
	})

	if err := g.Wait(); err != nil {
		// The loop is gone; release pollers from here.
		kb.Close()
		return nil, err
	}

	report.Events = rec.events()
	report.Elapsed = time.Since(rec.start)
	log.Debug().
		Str("scenario", sc.Name).
		Int("events", len(report.Events)).
		Dur("elapsed", report.Elapsed).
		Msg("scenario replayed")
	return report, nil
}

func (r *Runner) subscribe(
	ctx context.Context, loop *mainloop.Loop, kb *softkeyboard.Keyboard, win port.Window, rec *recorder,
) error {
	var subErr error
	err := loop.Invoke(ctx, func() {
		_, subErr = kb.SubscribeToShowChanges(ctx, win, func(state entity.VisibilityState) {
			rec.add(Event{Source: SourceShow, State: state, FullScreen: state.FullScreen})
		})
		if subErr != nil || !r.opts.WatchFullScreen {
			return
		}
		_, subErr = kb.SubscribeToFullScreenChanges(ctx, win, func(fullScreen bool) {
			rec.add(Event{Source: SourceFullScreen, FullScreen: fullScreen})
		}, r.opts.PollInterval)
	})
	if err != nil {
		return err
	}
	if subErr != nil {
		return fmt.Errorf("subscribe: %w", subErr)
	}
	return nil
}

func (r *Runner) apply(
	ctx context.Context,
	loop *mainloop.Loop,
	kb *softkeyboard.Keyboard,
	host *simhost.Host,
	win *simhost.Window,
	step Step,
) error {
	kind, err := step.Kind()
	if err != nil {
		return err
	}
	logging.FromContext(ctx).Trace().Str("step", kind).Msg("applying step")

	if kind == KindWait {
		timer := time.NewTimer(step.Wait)
		defer timer.Stop()
		select {
		case <-timer.C:
			return nil
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	var stepErr error
	err = loop.Invoke(ctx, func() {
		switch kind {
		case KindKeyboardHeight:
			host.SetKeyboardHeight(*step.KeyboardHeight)
		case KindDeviceHeight:
			host.SetDeviceVisibleHeight(*step.DeviceHeight)
		case KindDeviceSupported:
			host.SetDeviceSupported(*step.DeviceSupported)
		case KindFullScreen:
			host.SetFullscreenMode(*step.FullScreen)
		case KindTouch:
			win.Touch(port.TouchEvent{Action: port.TouchDown})
		case KindLayout:
			win.Layout()
		case KindShow:
			stepErr = kb.Show(ctx, win.Input())
		case KindHide:
			stepErr = kb.HideWindow(ctx, win)
		}
	})
	if err != nil {
		return err
	}
	return stepErr
}

type recorder struct {
	mu    sync.Mutex
	start time.Time
	list  []Event
	sink  func(Event)
}

func (r *recorder) add(ev Event) {
	r.mu.Lock()
	ev.Seq = len(r.list) + 1
	ev.Elapsed = time.Since(r.start)
	r.list = append(r.list, ev)
	r.mu.Unlock()

	if r.sink != nil {
		r.sink(ev)
	}
}

func (r *recorder) events() []Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Event, len(r.list))
	copy(out, r.list)
	return out
}
