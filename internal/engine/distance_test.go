package engine

import (
	"fmt"
	"testing"

	"scrollcue/internal/doc"
	"scrollcue/internal/markup"
)

func testCtx(s *fakeScroller, d *doc.Document) resolveContext {
	return resolveContext{
		document:    d,
		region:      s,
		axis:        doc.Horizontal,
		fontSize:    2,
		itemOffsets: func() []float64 { return nil },
		defaultSpec: markup.DefaultSpec(),
		logf:        func(string, ...any) {},
	}
}

func mustParse(t *testing.T, raw string) markup.DistanceSpec {
	t.Helper()
	spec, err := markup.ParseDistance(raw)
	if err != nil {
		t.Fatalf("ParseDistance(%q): %v", raw, err)
	}
	return spec
}

func TestResolveMagnitudes(t *testing.T) {
	d := doc.NewDocument()
	d.SetSize(200, 50)
	d.SetRootFontSize(2)
	s := &fakeScroller{offset: 0, content: 2000, viewport: 400}
	ctx := testCtx(s, d)

	cases := []struct {
		raw     string
		forward bool
		want    float64
	}{
		{"50%", true, 200}, // half the viewport extent
		{"50%", false, -200},
		{"120px", true, 120},
		{" 120PX ", true, 120}, // case-insensitive, trimmed
		{"-30px", true, 30},    // magnitudes: sign comes from the side
		{"3rem", true, 6},
		{"4em", true, 8},
		{"10vw", true, 20},
		{"10vh", false, -5},
	}
	for _, c := range cases {
		got := resolveDistance(ctx, mustParse(t, c.raw), 1, c.forward)
		if got.Boundary {
			t.Fatalf("resolve(%q) unexpectedly boundary", c.raw)
		}
		if got.Delta != c.want {
			t.Fatalf("resolve(%q, forward=%v) = %v, want %v", c.raw, c.forward, got.Delta, c.want)
		}
	}
}

func TestResolveBoundarySentinel(t *testing.T) {
	d := doc.NewDocument()
	s := &fakeScroller{offset: 333, content: 2000, viewport: 400}
	ctx := testCtx(s, d)
	// "end" resolves to the sentinel regardless of current position or side.
	for _, forward := range []bool{true, false} {
		got := resolveDistance(ctx, mustParse(t, "end"), 1, forward)
		if !got.Boundary {
			t.Fatalf("expected boundary sentinel, got %+v", got)
		}
	}
}

func TestResolveEmptyUsesConfiguredDefault(t *testing.T) {
	d := doc.NewDocument()
	s := &fakeScroller{content: 2000, viewport: 400}
	ctx := testCtx(s, d)

	// Empty default: boundary jump.
	got := resolveDistance(ctx, markup.DefaultSpec(), 1, true)
	if !got.Boundary {
		t.Fatalf("empty spec with empty default must be boundary, got %+v", got)
	}

	// Concrete configured default.
	ctx.defaultSpec = mustParse(t, "100px")
	got = resolveDistance(ctx, markup.DefaultSpec(), 1, false)
	if got.Boundary || got.Delta != -100 {
		t.Fatalf("expected -100 from configured default, got %+v", got)
	}
}

func TestResolveUnparseableFallsBackWithWarning(t *testing.T) {
	spec, err := markup.ParseDistance("12wobbles")
	if err == nil {
		t.Fatalf("expected parse error")
	}
	if spec.Kind != markup.KindDefault {
		t.Fatalf("unparseable spec must degrade to the default kind, got %v", spec.Kind)
	}
	d := doc.NewDocument()
	s := &fakeScroller{content: 2000, viewport: 400}
	ctx := testCtx(s, d)
	ctx.defaultSpec = mustParse(t, "25%")
	got := resolveDistance(ctx, spec, 1, true)
	if got.Boundary || got.Delta != 100 {
		t.Fatalf("expected default resolution 100, got %+v", got)
	}
}

func TestResolveItemsDelta(t *testing.T) {
	d := doc.NewDocument()
	s := &fakeScroller{offset: 90, content: 2000, viewport: 400}
	ctx := testCtx(s, d)
	ctx.itemOffsets = func() []float64 { return []float64{0, 100, 250} }

	got := resolveDistance(ctx, mustParse(t, "next"), 1, true)
	if got.Delta != 160 {
		t.Fatalf("expected delta 160 (250-90), got %+v", got)
	}
	// Two steps back from nearest index 1 clamps to index 0.
	got = resolveDistance(ctx, mustParse(t, "next"), 2, false)
	if got.Delta != -90 {
		t.Fatalf("expected delta -90, got %+v", got)
	}
}

func TestResolveItemsWithoutItems(t *testing.T) {
	d := doc.NewDocument()
	s := &fakeScroller{offset: 90, content: 2000, viewport: 400}
	ctx := testCtx(s, d)
	var warned string
	ctx.logf = func(f string, a ...any) { warned = fmt.Sprintf(f, a...) }
	got := resolveDistance(ctx, mustParse(t, "next"), 1, true)
	if got.Boundary || got.Delta != 0 {
		t.Fatalf("expected zero delta, got %+v", got)
	}
	if warned == "" {
		t.Fatalf("expected a diagnostic about missing items")
	}
}
