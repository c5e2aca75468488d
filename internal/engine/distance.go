package engine

import (
	"scrollcue/internal/doc"
	"scrollcue/internal/markup"
)

// Resolved is a distance resolution: either the boundary sentinel (jump to
// the absolute start/end offset) or a signed pixel delta. Magnitude specs get
// their sign from the requesting side here; item specs produce a naturally
// signed delta toward the target item.
type Resolved struct {
	Boundary bool
	Delta    float64
}

// resolveContext is the sizing context a resolution runs against, assembled
// by the container at click time so every value reflects current layout.
type resolveContext struct {
	document    *doc.Document
	region      doc.Scroller
	axis        doc.Axis
	fontSize    float64 // triggering element's effective font size
	itemOffsets func() []float64
	defaultSpec markup.DistanceSpec
	logf        func(format string, args ...any)
}

// resolveDistance turns a parsed spec into a Resolved for the given
// direction. Unresolvable input falls back to the configured default spec
// with a warning; it never fails the interaction.
func resolveDistance(ctx resolveContext, spec markup.DistanceSpec, count int, forward bool) Resolved {
	sign := -1.0
	if forward {
		sign = 1.0
	}
	switch spec.Kind {
	case markup.KindDefault:
		// The configured default is either a concrete spec or, when empty,
		// the boundary jump. Guard the one level of recursion.
		if ctx.defaultSpec.Kind == markup.KindDefault {
			return Resolved{Boundary: true}
		}
		return resolveDistance(ctx, ctx.defaultSpec, count, forward)
	case markup.KindBoundary:
		return Resolved{Boundary: true}
	case markup.KindPixels:
		return Resolved{Delta: sign * spec.Value}
	case markup.KindPercent:
		return Resolved{Delta: sign * spec.Value / 100 * ctx.region.ViewportExtent(ctx.axis)}
	case markup.KindRem:
		return Resolved{Delta: sign * spec.Value * ctx.document.RootFontSize()}
	case markup.KindEm:
		return Resolved{Delta: sign * spec.Value * ctx.fontSize}
	case markup.KindVw:
		w, _ := ctx.document.Size()
		return Resolved{Delta: sign * spec.Value / 100 * w}
	case markup.KindVh:
		_, h := ctx.document.Size()
		return Resolved{Delta: sign * spec.Value / 100 * h}
	case markup.KindItems:
		return resolveItems(ctx, count, forward)
	}
	ctx.logf("unrecognized distance spec %q, using default", spec.Raw)
	if ctx.defaultSpec.Kind == markup.KindDefault {
		return Resolved{Boundary: true}
	}
	return resolveDistance(ctx, ctx.defaultSpec, count, forward)
}

func resolveItems(ctx resolveContext, count int, forward bool) Resolved {
	offsets := ctx.itemOffsets()
	if len(offsets) == 0 {
		ctx.logf("item-based distance with no items registered, scrolling nowhere")
		return Resolved{Delta: 0}
	}
	current := ctx.region.Offset(ctx.axis)
	idx := NearestIndex(offsets, current)
	target := StepIndex(offsets, idx, count, forward)
	return Resolved{Delta: offsets[target] - current}
}
