package softkeyboard

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/softkeyboard/internal/domain/entity"
	"github.com/bnema/softkeyboard/internal/infrastructure/mainloop"
	"github.com/bnema/softkeyboard/internal/infrastructure/simhost"
)

func TestKeyboard_WithMainLoop(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	loop := mainloop.New()
	go func() { _ = loop.Run(ctx) }()

	host := simhost.New()
	kb, err := New(host, loop, WithMarkerFactory(host), WithPollInterval(MinPollInterval))
	require.NoError(t, err)

	var (
		mu  sync.Mutex
		got []entity.VisibilityState
	)
	record := func(s entity.VisibilityState) {
		mu.Lock()
		defer mu.Unlock()
		got = append(got, s)
	}
	last := func() entity.VisibilityState {
		mu.Lock()
		defer mu.Unlock()
		return got[len(got)-1]
	}

	var win *simhost.Window
	var sub *Subscription
	require.NoError(t, loop.Invoke(ctx, func() {
		win = host.NewWindow()
		sub, err = kb.SubscribeToShowChanges(ctx, win, record)
	}))
	require.NoError(t, err)

	require.NoError(t, loop.Invoke(ctx, func() {
		host.SetFullscreenMode(true)
		win.Layout()
	}))
	assert.True(t, last().FullScreen)

	// The host leaves full-screen without a layout pass; the checker catches it.
	host.SetFullscreenMode(false)
	require.Eventually(t, func() bool {
		return !last().FullScreen
	}, 2*time.Second, 20*time.Millisecond)
	assert.Zero(t, kb.ActivePollers())

	require.NoError(t, loop.Invoke(ctx, sub.Cancel))
	assert.Zero(t, kb.ActiveSubscriptions())

	loop.Quit()
	<-loop.Done()
}
