package softkeyboard

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/softkeyboard/internal/domain/entity"
)

func TestDebouncer_FirstOfferEmits(t *testing.T) {
	var d Debouncer

	_, seen := d.Last()
	assert.False(t, seen)

	state, emit := d.Offer(entity.VisibilityState{})
	assert.True(t, emit)
	assert.Equal(t, entity.VisibilityState{}, state)
}

func TestDebouncer_SameStateTwice(t *testing.T) {
	var d Debouncer
	s := entity.VisibilityState{Shown: true, AppVisibleHeight: 240}

	_, first := d.Offer(s)
	_, second := d.Offer(s)

	assert.True(t, first)
	assert.False(t, second)
}

func TestDebouncer_AnyFieldChangeEmits(t *testing.T) {
	var d Debouncer
	d.Offer(entity.VisibilityState{Shown: true, AppVisibleHeight: 240})

	_, emit := d.Offer(entity.VisibilityState{Shown: true, AppVisibleHeight: 250})
	assert.True(t, emit)

	_, emit = d.Offer(entity.VisibilityState{Shown: true, FullScreen: true, AppVisibleHeight: 250})
	assert.True(t, emit)

	_, emit = d.Offer(entity.VisibilityState{Shown: false, AppVisibleHeight: 250})
	assert.True(t, emit)

	last, seen := d.Last()
	assert.True(t, seen)
	assert.Equal(t, entity.VisibilityState{Shown: false, AppVisibleHeight: 250}, last)
}

func TestDebouncer_Reset(t *testing.T) {
	var d Debouncer
	s := entity.VisibilityState{Shown: true}
	d.Offer(s)
	d.Reset()

	_, emit := d.Offer(s)
	assert.True(t, emit)
}
