// Package port defines interfaces for the host windowing system and infrastructure adapters.
package port

// ListenerToken identifies a layout listener registration.
type ListenerToken uint64

// TouchAction describes the phase of a touch event.
type TouchAction int

const (
	TouchDown TouchAction = iota
	TouchMove
	TouchUp
	TouchCancel
)

// TouchEvent is a pointer event delivered to views of a window.
type TouchEvent struct {
	Action TouchAction
	X, Y   float64
}

// View is the subset of a host view the keyboard observer relies on.
// All methods must be called on the UI thread.
type View interface {
	// PaddingBottom returns the space reserved at the bottom of the view.
	PaddingBottom() int

	// RequestFocus asks the view to take input focus.
	RequestFocus() bool

	// FindFocus returns the focused view in this view's subtree, or nil.
	FindFocus() View

	// WindowToken identifies the window the view is attached to.
	WindowToken() string
}

// ViewGroup is a view that holds children.
type ViewGroup interface {
	View

	ChildCount() int

	// ChildAt returns the child at index i, or nil when out of range.
	ChildAt(i int) View

	// AddChild appends a child at the end of the group.
	AddChild(child View)

	// RemoveChild detaches a child. Removing an unknown child is a no-op.
	RemoveChild(child View)
}

// Window is a top-level host window.
type Window interface {
	// ID returns a stable identifier for the window.
	ID() string

	// Root returns the decor view. Its first child is the content view.
	Root() ViewGroup

	// Token returns the token used to address the window in input method calls.
	Token() string

	// AddLayoutListener registers fn to be called after every layout pass.
	AddLayoutListener(fn func()) ListenerToken

	// RemoveLayoutListener unregisters a listener. Unknown tokens are ignored.
	RemoveLayoutListener(token ListenerToken)
}

// MarkerFactory creates zero-size marker views that receive touches.
type MarkerFactory interface {
	NewTouchMarker(onTouch func(TouchEvent)) View
}
