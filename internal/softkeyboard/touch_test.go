package softkeyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/softkeyboard/internal/application/port"
	"github.com/bnema/softkeyboard/internal/infrastructure/simhost"
)

func TestTouchMarkers_SharedPerWindow(t *testing.T) {
	host := simhost.New()
	win := host.NewWindow()
	other := host.NewWindow()
	markers := newTouchMarkers(host)

	var hits []uint64
	markers.acquire(win, 1, func(port.TouchEvent) { hits = append(hits, 1) })
	markers.acquire(win, 2, func(port.TouchEvent) { hits = append(hits, 2) })
	markers.acquire(other, 3, func(port.TouchEvent) { hits = append(hits, 3) })

	assert.Equal(t, 1, win.MarkerCount())
	assert.Equal(t, 1, other.MarkerCount())
	assert.Equal(t, 2, markers.listenerCount(win.ID()))

	delivered := win.Touch(port.TouchEvent{Action: port.TouchDown})
	assert.Equal(t, 1, delivered)
	assert.Equal(t, []uint64{1, 2}, hits)
}

func TestTouchMarkers_RemovedWithLastListener(t *testing.T) {
	host := simhost.New()
	win := host.NewWindow()
	markers := newTouchMarkers(host)

	markers.acquire(win, 1, func(port.TouchEvent) {})
	markers.acquire(win, 2, func(port.TouchEvent) {})

	assert.False(t, markers.release(win.ID(), 1))
	assert.Equal(t, 1, win.MarkerCount())

	assert.True(t, markers.release(win.ID(), 2))
	assert.Zero(t, win.MarkerCount())

	assert.False(t, markers.release(win.ID(), 2))
}

func TestTouchMarkers_ContentStaysFirstChild(t *testing.T) {
	host := simhost.New()
	win := host.NewWindow()
	win.Content().SetPaddingBottom(120)
	markers := newTouchMarkers(host)

	markers.acquire(win, 1, func(port.TouchEvent) {})

	probe := NewHeightProbe(host, nil)
	assert.Equal(t, 120, probe.AppVisibleHeight(win))
}

func TestTouchMarkers_ReacquireReplacesListener(t *testing.T) {
	host := simhost.New()
	win := host.NewWindow()
	markers := newTouchMarkers(host)

	calls := 0
	markers.acquire(win, 1, func(port.TouchEvent) { calls += 10 })
	markers.acquire(win, 1, func(port.TouchEvent) { calls++ })

	win.Touch(port.TouchEvent{})
	assert.Equal(t, 1, calls)
	assert.Equal(t, 1, markers.listenerCount(win.ID()))
}

func TestTouchMarkers_NoFactory(t *testing.T) {
	win := simhost.New().NewWindow()
	markers := newTouchMarkers(nil)

	markers.acquire(win, 1, func(port.TouchEvent) {})

	assert.Zero(t, win.MarkerCount())
	assert.False(t, markers.release(win.ID(), 1))
}
