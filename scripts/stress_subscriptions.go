package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/softkeyboard/internal/application/port"
	"github.com/bnema/softkeyboard/internal/domain/entity"
	"github.com/bnema/softkeyboard/internal/infrastructure/mainloop"
	"github.com/bnema/softkeyboard/internal/infrastructure/simhost"
	"github.com/bnema/softkeyboard/internal/logging"
	"github.com/bnema/softkeyboard/internal/softkeyboard"
)

const defaultIterations = 5000

// Subscribes, flips full-screen mode and cancels in a tight loop while checkers
// keep posting to the main loop, then verifies nothing leaked.
func main() {
	iterations := flag.Int("iterations", defaultIterations, "number of subscribe/cancel cycles")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	flag.Parse()

	logger := logging.NewFromEnv()
	ctx := logging.WithContext(context.Background(), logger)

	host := simhost.New()
	loop := mainloop.New()
	kb, err := softkeyboard.New(host, loop,
		softkeyboard.WithPollInterval(softkeyboard.MinPollInterval),
		softkeyboard.WithMarkerFactory(host),
	)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	win := host.NewWindow()
	rng := rand.New(rand.NewSource(*seed))

	notifications := 0
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return loop.Run(gctx)
	})
	g.Go(func() error {
		defer loop.Quit()
		for i := 0; i < *iterations; i++ {
			err := loop.Invoke(gctx, func() {
				sub, err := kb.SubscribeToShowChanges(gctx, win, func(entity.VisibilityState) {
					notifications++
				})
				if err != nil {
					logger.Error().Err(err).Msg("subscribe failed")
					return
				}
				host.SetFullscreenMode(rng.Intn(2) == 0)
				win.Layout()
				if rng.Intn(4) == 0 {
					win.Touch(port.TouchEvent{Action: port.TouchDown})
				}
				sub.Cancel()
			})
			if err != nil {
				return err
			}
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	fmt.Printf("iterations=%d seed=%d notifications=%d subscriptions=%d pollers=%d markers=%d\n",
		*iterations, *seed, notifications, kb.ActiveSubscriptions(), kb.ActivePollers(), win.MarkerCount())
	if kb.ActiveSubscriptions() != 0 || kb.ActivePollers() != 0 || win.MarkerCount() != 0 {
		fmt.Fprintln(os.Stderr, "leaked subscription state")
		os.Exit(1)
	}
}
