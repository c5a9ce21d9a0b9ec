package softkeyboard

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/bnema/softkeyboard/internal/application/port/gomocks"
)

func TestNewPoller_RejectsShortInterval(t *testing.T) {
	p, err := NewPoller(99*time.Millisecond, &queueDispatcher{}, func() {})

	require.ErrorIs(t, err, ErrInvalidInterval)
	assert.Nil(t, p)
}

func TestNewPoller_AcceptsMinimum(t *testing.T) {
	p, err := NewPoller(MinPollInterval, &queueDispatcher{}, func() {})

	require.NoError(t, err)
	assert.Equal(t, PollerIdle, p.State())
	assert.Equal(t, MinPollInterval, p.Interval())
}

func TestPoller_PostsChecksToDispatcher(t *testing.T) {
	ctrl := gomock.NewController(t)
	dispatcher := gomocks.NewMockUIDispatcher(ctrl)

	posted := make(chan func(), 8)
	dispatcher.EXPECT().Post(gomock.Any()).Do(func(fn func()) {
		select {
		case posted <- fn:
		default:
		}
	}).MinTimes(2)

	checks := 0
	p, err := NewPoller(MinPollInterval, dispatcher, func() { checks++ })
	require.NoError(t, err)
	require.NoError(t, p.Start())
	assert.Equal(t, PollerRunning, p.State())

	for i := 0; i < 2; i++ {
		select {
		case fn := <-posted:
			// The check only runs when the UI thread executes the hand-off.
			fn()
		case <-time.After(2 * time.Second):
			t.Fatal("poller did not post a check")
		}
	}
	p.Stop()
	<-p.Done()

	assert.Equal(t, 2, checks)
	assert.Equal(t, PollerStopped, p.State())
}

func TestPoller_StopWakesImmediately(t *testing.T) {
	d := &queueDispatcher{}
	p, err := NewPoller(time.Hour, d, func() {})
	require.NoError(t, err)
	require.NoError(t, p.Start())

	start := time.Now()
	p.Stop()

	select {
	case <-p.Done():
	case <-time.After(time.Second):
		t.Fatal("stop did not wake the poller")
	}
	assert.Less(t, time.Since(start), time.Second)
	assert.Zero(t, d.Len())
}

func TestPoller_ConcurrentStop(t *testing.T) {
	const (
		rounds  = 2000
		callers = 16
	)

	for round := 0; round < rounds; round++ {
		p, err := NewPoller(MinPollInterval, &queueDispatcher{}, func() {})
		require.NoError(t, err)
		if round%2 == 0 {
			require.NoError(t, p.Start())
		}

		release := make(chan struct{})
		var wg sync.WaitGroup
		for i := 0; i < callers; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				<-release
				p.Stop()
			}()
		}
		close(release)
		wg.Wait()

		select {
		case <-p.Done():
		case <-time.After(time.Second):
			t.Fatalf("round %d: worker did not exit", round)
		}
		require.Equal(t, PollerStopped, p.State())
	}
}

func TestPoller_NoPostAfterStop(t *testing.T) {
	d := &queueDispatcher{}
	p, err := NewPoller(MinPollInterval, d, func() {})
	require.NoError(t, err)
	require.NoError(t, p.Start())

	p.Stop()
	<-p.Done()
	posted := d.Len()

	time.Sleep(3 * MinPollInterval)
	assert.Equal(t, posted, d.Len())
}

func TestPoller_Lifecycle(t *testing.T) {
	p, err := NewPoller(MinPollInterval, &queueDispatcher{}, func() {})
	require.NoError(t, err)

	require.NoError(t, p.Start())
	assert.ErrorIs(t, p.Start(), ErrPollerStarted)

	p.Stop()
	assert.ErrorIs(t, p.Start(), ErrPollerStopped)
}

func TestPoller_StopBeforeStart(t *testing.T) {
	p, err := NewPoller(MinPollInterval, &queueDispatcher{}, func() {})
	require.NoError(t, err)

	p.Stop()

	select {
	case <-p.Done():
	default:
		t.Fatal("done should be closed for a poller that never ran")
	}
	assert.Equal(t, PollerStopped, p.State())
}

func TestPollerState_String(t *testing.T) {
	assert.Equal(t, "idle", PollerIdle.String())
	assert.Equal(t, "running", PollerRunning.String())
	assert.Equal(t, "stopped", PollerStopped.String())
	assert.Equal(t, "unknown", PollerState(9).String())
}
