package softkeyboard

import "github.com/bnema/softkeyboard/internal/domain/entity"

// Debouncer drops states equal to the last emitted one.
// The zero value is ready to use and emits on its first Offer.
type Debouncer struct {
	last entity.VisibilityState
	seen bool
}

// Offer records state and reports whether it must be emitted.
func (d *Debouncer) Offer(state entity.VisibilityState) (entity.VisibilityState, bool) {
	if d.seen && d.last.Equal(state) {
		return d.last, false
	}
	d.last = state
	d.seen = true
	return state, true
}

// Last returns the last emitted state, if any.
func (d *Debouncer) Last() (entity.VisibilityState, bool) {
	return d.last, d.seen
}

// Reset forgets the last emitted state.
func (d *Debouncer) Reset() {
	d.last = entity.VisibilityState{}
	d.seen = false
}
