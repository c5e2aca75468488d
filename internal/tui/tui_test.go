package tui

import (
	"strings"
	"testing"
	"time"

	"scrollcue/internal/doc"
)

func TestStripWindow(t *testing.T) {
	cards := []string{"a", "b", "c"}
	full := stripWindow(cards, 5, 0, 100)
	if full != "[a]  [b]  [c]  " {
		t.Fatalf("unexpected full row: %q", full)
	}
	win := stripWindow(cards, 5, 5, 5)
	if win != "[b]  " {
		t.Fatalf("unexpected window: %q", win)
	}
	if got := stripWindow(cards, 5, 999, 5); got != "" {
		t.Fatalf("offset past content must yield empty window, got %q", got)
	}
}

func TestRenderStateDiff(t *testing.T) {
	if got := renderStateDiff("", "a\nb"); got != "a\nb" {
		t.Fatalf("first dump must render as-is, got %q", got)
	}
	if got := renderStateDiff("same", "same"); !strings.Contains(got, "No changes") {
		t.Fatalf("expected no-changes notice, got %q", got)
	}
	got := renderStateDiff("x classes=[sc-visible]\n", "x classes=[sc-hidden]\n")
	if !strings.Contains(got, "visible") || !strings.Contains(got, "hidden") {
		t.Fatalf("expected both sides in diff, got %q", got)
	}
}

func TestAnimLandsOnTarget(t *testing.T) {
	a := newAnim(0, 100, doc.Eased)
	var off float64
	done := false
	for i := 0; i < 20 && !done; i++ {
		off, done = a.step(50 * time.Millisecond)
	}
	if !done || off != 100 {
		t.Fatalf("animation must finish exactly on target, got off=%v done=%v", off, done)
	}
}

func TestNextAnimationCycles(t *testing.T) {
	if nextAnimation("instant") != "eased" || nextAnimation("eased") != "smooth" || nextAnimation("smooth") != "instant" {
		t.Fatalf("animation cycle broken")
	}
}

func TestCardStripGeometry(t *testing.T) {
	s := newCardStrip([]string{"a", "b", "c", "d"}, 10, 25)
	if s.ContentExtent(doc.Horizontal) != 40 || s.ViewportExtent(doc.Horizontal) != 25 {
		t.Fatalf("unexpected extents: %v %v", s.ContentExtent(doc.Horizontal), s.ViewportExtent(doc.Horizontal))
	}
	s.ScrollTo(doc.Horizontal, 15, doc.Instant)
	if s.Offset(doc.Horizontal) != 15 {
		t.Fatalf("instant scroll must apply immediately, got %v", s.Offset(doc.Horizontal))
	}
	s.ScrollTo(doc.Horizontal, 0, doc.Smooth)
	if s.Offset(doc.Horizontal) != 15 {
		t.Fatalf("animated scroll must not jump, got %v", s.Offset(doc.Horizontal))
	}
	if !s.tick(time.Second) || s.Offset(doc.Horizontal) != 0 {
		t.Fatalf("animation must land on 0, got %v", s.Offset(doc.Horizontal))
	}
	if r := s.itemOffset(2); r.X != 20 {
		t.Fatalf("item 2 offset must be 20, got %v", r.X)
	}
}
