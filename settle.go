package drawer

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Settle animates a single offset toward a resting value. Call Update(dt)
// each frame until Done. The final value is exactly To, not the float32
// value the tween produced.
//
// There is no global animation manager; the owning Layer drives it.
type Settle struct {
	tween *gween.Tween
	value float64
	From  float64
	To    float64
	Done  bool
}

// NewSettle creates a settle from one offset to another over duration
// seconds. A nil easing function means linear.
func NewSettle(from, to float64, duration float32, fn ease.TweenFunc) *Settle {
	if fn == nil {
		fn = ease.Linear
	}
	return &Settle{
		tween: gween.New(float32(from), float32(to), duration, fn),
		value: from,
		From:  from,
		To:    to,
	}
}

// Update advances the settle by dt seconds and returns the new offset.
// After Done it keeps returning the last value.
func (s *Settle) Update(dt float32) float64 {
	if s.Done {
		return s.value
	}
	val, finished := s.tween.Update(dt)
	if finished {
		s.value = s.To
		s.Done = true
		return s.value
	}
	s.value = float64(val)
	return s.value
}

// Value returns the current offset without advancing.
func (s *Settle) Value() float64 {
	return s.value
}

// Cancel stops the settle at its current value.
func (s *Settle) Cancel() {
	s.Done = true
}
