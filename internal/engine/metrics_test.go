package engine

import (
	"testing"

	"scrollcue/internal/doc"
)

func TestMeasureMiddleOfRange(t *testing.T) {
	s := &fakeScroller{offset: 200, content: 500, viewport: 100}
	m := Measure(s, doc.Horizontal, 1)
	if m.MaxOffset != 400 {
		t.Fatalf("expected maxOffset 400, got %v", m.MaxOffset)
	}
	if m.AtStart || m.AtEnd {
		t.Fatalf("expected neither boundary, got %+v", m)
	}
}

func TestMeasureThresholdAbsorbsSubPixel(t *testing.T) {
	s := &fakeScroller{offset: 399, content: 500, viewport: 100}
	m := Measure(s, doc.Horizontal, 1)
	if !m.AtEnd {
		t.Fatalf("offset maxOffset-1 with threshold 1 must classify AtEnd, got %+v", m)
	}
	s.offset = 0.5
	m = Measure(s, doc.Horizontal, 1)
	if !m.AtStart {
		t.Fatalf("fractional near-zero offset must classify AtStart, got %+v", m)
	}
}

func TestMeasureMaxOffsetNeverNegative(t *testing.T) {
	s := &fakeScroller{offset: 0, content: 40, viewport: 100}
	m := Measure(s, doc.Vertical, 1)
	if m.MaxOffset != 0 {
		t.Fatalf("expected clamped maxOffset 0, got %v", m.MaxOffset)
	}
	if !m.AtStart || !m.AtEnd {
		t.Fatalf("no overflow means both boundaries reached, got %+v", m)
	}
}

func TestMeasureZeroThreshold(t *testing.T) {
	s := &fakeScroller{offset: 1, content: 500, viewport: 100}
	m := Measure(s, doc.Horizontal, 0)
	if m.AtStart {
		t.Fatalf("offset 1 with threshold 0 is not at start")
	}
}
