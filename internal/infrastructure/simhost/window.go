package simhost

import (
	"sync"

	"github.com/google/uuid"

	"github.com/bnema/softkeyboard/internal/application/port"
)

// Compile-time interface check.
var _ port.Window = (*Window)(nil)

// Window is an in-memory top-level window: a decor root holding a content view.
type Window struct {
	id    string
	token string
	root  *View

	content *View
	input   *View

	mu        sync.Mutex
	listeners map[port.ListenerToken]func()
	order     []port.ListenerToken
	nextToken port.ListenerToken
	focused   *View
}

func newWindow() *Window {
	w := &Window{
		id:        uuid.NewString(),
		token:     uuid.NewString(),
		listeners: make(map[port.ListenerToken]func()),
	}
	w.root = newView(w, "decor")
	w.content = newView(w, "content")
	w.input = newView(w, "input")
	w.content.AddChild(w.input)
	w.root.AddChild(w.content)
	return w
}

// ID returns the window id.
func (w *Window) ID() string {
	return w.id
}

// Token returns the window token.
func (w *Window) Token() string {
	return w.token
}

// Root returns the decor view.
func (w *Window) Root() port.ViewGroup {
	return w.root
}

// Content returns the content view, the first child of the decor view.
func (w *Window) Content() *View {
	return w.content
}

// Input returns the text input field inside the content view.
func (w *Window) Input() *View {
	return w.input
}

// AddLayoutListener registers fn for every layout pass.
func (w *Window) AddLayoutListener(fn func()) port.ListenerToken {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.nextToken++
	w.listeners[w.nextToken] = fn
	w.order = append(w.order, w.nextToken)
	return w.nextToken
}

// RemoveLayoutListener unregisters a listener.
func (w *Window) RemoveLayoutListener(token port.ListenerToken) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if _, ok := w.listeners[token]; !ok {
		return
	}
	delete(w.listeners, token)
	for i, t := range w.order {
		if t == token {
			w.order = append(w.order[:i], w.order[i+1:]...)
			break
		}
	}
}

// LayoutListenerCount returns the number of registered layout listeners.
func (w *Window) LayoutListenerCount() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return len(w.listeners)
}

// Layout runs a layout pass, firing every listener in registration order.
// Must be called on the UI thread.
func (w *Window) Layout() {
	w.mu.Lock()
	fns := make([]func(), 0, len(w.order))
	for _, t := range w.order {
		fns = append(fns, w.listeners[t])
	}
	w.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

// SetBottomInset reserves height at the bottom of the content and lays out.
func (w *Window) SetBottomInset(height int) {
	w.content.SetPaddingBottom(height)
	w.Layout()
}

// Touch delivers ev to the window and returns the number of handlers reached.
func (w *Window) Touch(ev port.TouchEvent) int {
	return w.root.dispatchTouch(ev)
}

// MarkerCount returns the number of touch markers attached to the decor view.
func (w *Window) MarkerCount() int {
	n := 0
	for i := 0; i < w.root.ChildCount(); i++ {
		if v, ok := w.root.ChildAt(i).(*View); ok && v.IsMarker() {
			n++
		}
	}
	return n
}

func (w *Window) focus(v *View) {
	w.mu.Lock()
	prev := w.focused
	w.focused = v
	w.mu.Unlock()

	if prev != nil && prev != v {
		prev.setFocused(false)
	}
	v.setFocused(true)
}
