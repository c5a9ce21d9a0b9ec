package softkeyboard

import (
	"sync"

	"github.com/bnema/softkeyboard/internal/application/port"
)

type touchListener struct {
	id uint64
	fn func(port.TouchEvent)
}

// touchMarker is the single marker view shared by every full-screen watch of a window.
type touchMarker struct {
	root      port.ViewGroup
	view      port.View
	listeners []touchListener
}

// touchMarkers tracks one refcounted marker per window.
// acquire and release mutate the view hierarchy and must run on the UI thread.
type touchMarkers struct {
	factory port.MarkerFactory

	mu       sync.Mutex
	byWindow map[string]*touchMarker
}

func newTouchMarkers(factory port.MarkerFactory) *touchMarkers {
	return &touchMarkers{
		factory:  factory,
		byWindow: make(map[string]*touchMarker),
	}
}

// acquire registers fn for touches on win, inserting the marker on first use.
func (m *touchMarkers) acquire(win port.Window, id uint64, fn func(port.TouchEvent)) {
	if m.factory == nil {
		return
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	winID := win.ID()
	marker, ok := m.byWindow[winID]
	if !ok {
		root := win.Root()
		if root == nil {
			return
		}
		marker = &touchMarker{root: root}
		marker.view = m.factory.NewTouchMarker(func(ev port.TouchEvent) {
			m.dispatch(winID, ev)
		})
		root.AddChild(marker.view)
		m.byWindow[winID] = marker
	}

	for i, l := range marker.listeners {
		if l.id == id {
			marker.listeners[i].fn = fn
			return
		}
	}
	marker.listeners = append(marker.listeners, touchListener{id: id, fn: fn})
}

// release drops the listener and removes the marker with the last one.
// It reports whether the marker view was removed.
func (m *touchMarkers) release(winID string, id uint64) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	marker, ok := m.byWindow[winID]
	if !ok {
		return false
	}

	for i, l := range marker.listeners {
		if l.id == id {
			marker.listeners = append(marker.listeners[:i], marker.listeners[i+1:]...)
			break
		}
	}
	if len(marker.listeners) > 0 {
		return false
	}

	marker.root.RemoveChild(marker.view)
	delete(m.byWindow, winID)
	return true
}

func (m *touchMarkers) dispatch(winID string, ev port.TouchEvent) {
	m.mu.Lock()
	marker, ok := m.byWindow[winID]
	if !ok {
		m.mu.Unlock()
		return
	}
	fns := make([]func(port.TouchEvent), 0, len(marker.listeners))
	for _, l := range marker.listeners {
		fns = append(fns, l.fn)
	}
	m.mu.Unlock()

	for _, fn := range fns {
		fn(ev)
	}
}

// listenerCount returns the number of listeners on the window's marker.
func (m *touchMarkers) listenerCount(winID string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	if marker, ok := m.byWindow[winID]; ok {
		return len(marker.listeners)
	}
	return 0
}
