package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"

	"scrollcue/internal/doc"
)

// anim is an in-flight animated scroll. Smooth is linear, eased is
// ease-out-cubic; both land exactly on the target when done.
type anim struct {
	from, to float64
	elapsed  time.Duration
	dur      time.Duration
	eased    bool
}

func (a *anim) step(dt time.Duration) (offset float64, done bool) {
	a.elapsed += dt
	if a.elapsed >= a.dur {
		return a.to, true
	}
	t := float64(a.elapsed) / float64(a.dur)
	if a.eased {
		u := 1 - t
		t = 1 - u*u*u
	}
	return a.from + (a.to-a.from)*t, false
}

func newAnim(from, to float64, behavior doc.Behavior) *anim {
	return &anim{from: from, to: to, dur: 180 * time.Millisecond, eased: behavior == doc.Eased}
}

// logRegion adapts a bubbles viewport to the engine's scroll geometry.
// Vertical axis only; offsets are line counts.
type logRegion struct {
	vp   viewport.Model
	anim *anim
}

func newLogRegion(width, height int, content string) *logRegion {
	vp := viewport.New(width, height)
	vp.SetContent(content)
	return &logRegion{vp: vp}
}

func (r *logRegion) Offset(doc.Axis) float64 { return float64(r.vp.YOffset) }

func (r *logRegion) ContentExtent(doc.Axis) float64 { return float64(r.vp.TotalLineCount()) }

func (r *logRegion) ViewportExtent(doc.Axis) float64 { return float64(r.vp.Height) }

func (r *logRegion) ScrollTo(_ doc.Axis, offset float64, behavior doc.Behavior) {
	if behavior == doc.Instant {
		r.anim = nil
		r.vp.SetYOffset(int(offset + 0.5))
		return
	}
	r.anim = newAnim(float64(r.vp.YOffset), offset, behavior)
}

// tick advances the active animation; reports whether the offset moved.
func (r *logRegion) tick(dt time.Duration) bool {
	if r.anim == nil {
		return false
	}
	off, done := r.anim.step(dt)
	r.vp.SetYOffset(int(off + 0.5))
	if done {
		r.anim = nil
	}
	return true
}

// cardStrip is a horizontal row of fixed-width cards with its own offset,
// the demo's item-based region.
type cardStrip struct {
	cards  []string
	cardW  int
	width  int // viewport width in cells
	offset float64
	anim   *anim
}

func newCardStrip(cards []string, cardW, width int) *cardStrip {
	return &cardStrip{cards: cards, cardW: cardW, width: width}
}

func (s *cardStrip) Offset(doc.Axis) float64 { return s.offset }

func (s *cardStrip) ContentExtent(doc.Axis) float64 { return float64(len(s.cards) * s.cardW) }

func (s *cardStrip) ViewportExtent(doc.Axis) float64 { return float64(s.width) }

func (s *cardStrip) ScrollTo(_ doc.Axis, offset float64, behavior doc.Behavior) {
	if behavior == doc.Instant {
		s.anim = nil
		s.offset = offset
		return
	}
	s.anim = newAnim(s.offset, offset, behavior)
}

func (s *cardStrip) tick(dt time.Duration) bool {
	if s.anim == nil {
		return false
	}
	off, done := s.anim.step(dt)
	s.offset = off
	if done {
		s.anim = nil
	}
	return true
}

// itemOffset is the layout hook for card i: its left edge in content coordinates.
func (s *cardStrip) itemOffset(i int) doc.Rect {
	return doc.Rect{X: float64(i * s.cardW), W: float64(s.cardW), H: 1}
}
