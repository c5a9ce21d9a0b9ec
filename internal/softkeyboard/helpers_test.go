package softkeyboard

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/bnema/softkeyboard/internal/infrastructure/simhost"
)

// queueDispatcher collects posted functions; Drain runs them on the test goroutine,
// which plays the UI thread.
type queueDispatcher struct {
	mu    sync.Mutex
	queue []func()
}

func (d *queueDispatcher) Post(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.queue = append(d.queue, fn)
}

func (d *queueDispatcher) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.queue)
}

func (d *queueDispatcher) Drain() int {
	d.mu.Lock()
	fns := d.queue
	d.queue = nil
	d.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

func newTestKeyboard(t *testing.T, opts ...Option) (*Keyboard, *simhost.Host, *queueDispatcher) {
	t.Helper()

	host := simhost.New()
	dispatcher := &queueDispatcher{}
	opts = append([]Option{WithMarkerFactory(host), WithPollInterval(MinPollInterval)}, opts...)

	kb, err := New(host, dispatcher, opts...)
	require.NoError(t, err)
	t.Cleanup(kb.Close)
	return kb, host, dispatcher
}

// waitForPost waits until a poller has handed at least one check over.
func waitForPost(t *testing.T, d *queueDispatcher) {
	t.Helper()
	require.Eventually(t, func() bool { return d.Len() > 0 }, 2*time.Second, 10*time.Millisecond)
}
