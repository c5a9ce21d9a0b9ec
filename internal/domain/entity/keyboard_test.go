package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVisibilityState_Equal(t *testing.T) {
	base := VisibilityState{Shown: true, FullScreen: false, AppVisibleHeight: 240}

	tests := []struct {
		name  string
		other VisibilityState
		want  bool
	}{
		{name: "identical", other: base, want: true},
		{name: "shown differs", other: VisibilityState{Shown: false, AppVisibleHeight: 240}, want: false},
		{name: "fullscreen differs", other: VisibilityState{Shown: true, FullScreen: true, AppVisibleHeight: 240}, want: false},
		{name: "height differs", other: VisibilityState{Shown: true, AppVisibleHeight: 120}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, base.Equal(tt.other))
		})
	}
}

func TestVisibilityState_String(t *testing.T) {
	s := VisibilityState{Shown: true, FullScreen: true, AppVisibleHeight: 0}
	assert.Equal(t, "shown=true fullscreen=true height=0", s.String())
}

func TestModes_String(t *testing.T) {
	assert.Equal(t, "forced", ShowForced.String())
	assert.Equal(t, "implicit", ShowImplicit.String())
	assert.Equal(t, "always", HideAlways.String())
	assert.Equal(t, "implicit-only", HideImplicitOnly.String())
	assert.Equal(t, "unknown", ShowMode(42).String())
}
