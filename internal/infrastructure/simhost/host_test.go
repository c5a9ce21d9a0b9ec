package simhost

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/softkeyboard/internal/application/port"
	"github.com/bnema/softkeyboard/internal/domain/entity"
)

func TestWindow_Structure(t *testing.T) {
	win := New().NewWindow()

	assert.NotEmpty(t, win.ID())
	assert.NotEqual(t, win.ID(), win.Token())
	assert.Equal(t, 1, win.Root().ChildCount())
	assert.Equal(t, win.Content(), win.Root().ChildAt(0))
	assert.Nil(t, win.Root().ChildAt(1))
	assert.Equal(t, win.Token(), win.Input().WindowToken())
}

func TestWindow_LayoutListeners(t *testing.T) {
	win := New().NewWindow()

	var order []string
	a := win.AddLayoutListener(func() { order = append(order, "a") })
	win.AddLayoutListener(func() { order = append(order, "b") })

	win.Layout()
	assert.Equal(t, []string{"a", "b"}, order)

	win.RemoveLayoutListener(a)
	win.RemoveLayoutListener(a)
	win.Layout()
	assert.Equal(t, []string{"a", "b", "b"}, order)
	assert.Equal(t, 1, win.LayoutListenerCount())
}

func TestView_Focus(t *testing.T) {
	win := New().NewWindow()

	assert.Nil(t, win.Root().FindFocus())

	require.True(t, win.Input().RequestFocus())
	assert.Equal(t, win.Input(), win.Root().FindFocus())

	require.True(t, win.Content().RequestFocus())
	assert.False(t, win.Input().HasFocus())
	assert.Equal(t, win.Content(), win.Root().FindFocus())
}

func TestHost_ShowHide(t *testing.T) {
	ctx := context.Background()
	host := New()
	host.SetKeyboardHeight(300)
	win := host.NewWindow()

	layouts := 0
	win.AddLayoutListener(func() { layouts++ })

	require.NoError(t, host.ShowSoftInput(ctx, win.Input(), entity.ShowForced))
	assert.Equal(t, 300, win.Content().PaddingBottom())
	assert.Equal(t, win.Token(), host.ShownToken())

	require.NoError(t, host.HideSoftInputFromWindow(ctx, win.Token(), entity.HideAlways))
	assert.Zero(t, win.Content().PaddingBottom())
	assert.Empty(t, host.ShownToken())
	assert.Equal(t, 2, layouts)

	err := host.HideSoftInputFromWindow(ctx, "nope", entity.HideAlways)
	assert.ErrorIs(t, err, ErrUnknownWindow)
}

func TestHost_ShowInFullScreenKeepsContent(t *testing.T) {
	ctx := context.Background()
	host := New()
	host.SetFullscreenMode(true)
	win := host.NewWindow()

	require.NoError(t, host.ShowSoftInput(ctx, win.Input(), entity.ShowForced))
	assert.Zero(t, win.Content().PaddingBottom())
}

func TestHost_DeviceVisibleHeight(t *testing.T) {
	ctx := context.Background()
	host := New()

	_, err := host.DeviceVisibleHeight(ctx)
	assert.ErrorIs(t, err, port.ErrDeviceHeightUnsupported)

	host.SetDeviceSupported(true)
	host.SetDeviceVisibleHeight(180)
	height, err := host.DeviceVisibleHeight(ctx)
	require.NoError(t, err)
	assert.Equal(t, 180, height)

	boom := errors.New("private call failed")
	host.FailDeviceQuery(boom)
	_, err = host.DeviceVisibleHeight(ctx)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, 3, host.DeviceQueries())
}

func TestHost_TouchMarker(t *testing.T) {
	host := New()
	win := host.NewWindow()

	touches := 0
	marker := host.NewTouchMarker(func(port.TouchEvent) { touches++ })
	win.Root().AddChild(marker)

	assert.Equal(t, 1, win.MarkerCount())
	assert.Equal(t, 1, win.Touch(port.TouchEvent{Action: port.TouchDown}))
	assert.Equal(t, 1, touches)
	assert.Equal(t, win.Token(), marker.WindowToken())

	win.Root().RemoveChild(marker)
	assert.Zero(t, win.MarkerCount())
	assert.Zero(t, win.Touch(port.TouchEvent{}))
}
