package simhost

import (
	"sync"

	"github.com/bnema/softkeyboard/internal/application/port"
)

// Compile-time interface check.
var _ port.ViewGroup = (*View)(nil)

// View is an in-memory view node. Every view may hold children.
type View struct {
	name string
	win  *Window

	mu       sync.Mutex
	padding  int
	focused  bool
	children []*View
	onTouch  func(port.TouchEvent)
	marker   bool
}

func newView(win *Window, name string) *View {
	return &View{name: name, win: win}
}

// Name returns the debug name of the view.
func (v *View) Name() string {
	return v.name
}

// IsMarker reports whether the view is a touch marker.
func (v *View) IsMarker() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.marker
}

// PaddingBottom returns the bottom padding.
func (v *View) PaddingBottom() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.padding
}

// SetPaddingBottom changes the bottom padding without triggering a layout.
func (v *View) SetPaddingBottom(padding int) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.padding = padding
}

// RequestFocus moves window focus to this view.
func (v *View) RequestFocus() bool {
	if v.win == nil {
		return false
	}
	v.win.focus(v)
	return true
}

// HasFocus reports whether the view holds focus.
func (v *View) HasFocus() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.focused
}

// FindFocus returns the focused view in the subtree, or nil.
func (v *View) FindFocus() port.View {
	if found := v.findFocus(); found != nil {
		return found
	}
	return nil
}

func (v *View) findFocus() *View {
	v.mu.Lock()
	focused := v.focused
	children := append([]*View(nil), v.children...)
	v.mu.Unlock()

	if focused {
		return v
	}
	for _, child := range children {
		if found := child.findFocus(); found != nil {
			return found
		}
	}
	return nil
}

// WindowToken returns the token of the owning window.
func (v *View) WindowToken() string {
	if v.win == nil {
		return ""
	}
	return v.win.token
}

// ChildCount returns the number of children.
func (v *View) ChildCount() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.children)
}

// ChildAt returns the child at index i, or nil.
func (v *View) ChildAt(i int) port.View {
	v.mu.Lock()
	defer v.mu.Unlock()
	if i < 0 || i >= len(v.children) {
		return nil
	}
	return v.children[i]
}

// AddChild appends child. Only views created by this package are accepted.
func (v *View) AddChild(child port.View) {
	c, ok := child.(*View)
	if !ok || c == nil {
		return
	}
	if c.win == nil {
		c.win = v.win
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	v.children = append(v.children, c)
}

// RemoveChild detaches child if present.
func (v *View) RemoveChild(child port.View) {
	c, ok := child.(*View)
	if !ok {
		return
	}

	v.mu.Lock()
	defer v.mu.Unlock()
	for i, existing := range v.children {
		if existing == c {
			v.children = append(v.children[:i], v.children[i+1:]...)
			return
		}
	}
}

// SetTouchHandler installs the handler receiving touches.
func (v *View) SetTouchHandler(fn func(port.TouchEvent)) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onTouch = fn
}

// dispatchTouch delivers ev to every handler in the subtree.
func (v *View) dispatchTouch(ev port.TouchEvent) int {
	v.mu.Lock()
	handler := v.onTouch
	children := append([]*View(nil), v.children...)
	v.mu.Unlock()

	delivered := 0
	if handler != nil {
		handler(ev)
		delivered++
	}
	for _, child := range children {
		delivered += child.dispatchTouch(ev)
	}
	return delivered
}

func (v *View) setFocused(focused bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.focused = focused
}
