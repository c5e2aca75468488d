package engine

import "scrollcue/internal/doc"

// Metrics is one boundary-state snapshot of a region along an axis.
type Metrics struct {
	Offset         float64
	MaxOffset      float64
	ViewportExtent float64
	AtStart        bool
	AtEnd          bool
}

// Measure reads the region's live geometry and classifies the boundaries.
// Threshold is the pixel (cell) tolerance: offsets within threshold of an
// edge count as at that edge, absorbing fractional scroll positions. Pure;
// nothing is cached because layout can change between calls.
func Measure(s doc.Scroller, axis doc.Axis, threshold float64) Metrics {
	offset := s.Offset(axis)
	max := s.ContentExtent(axis) - s.ViewportExtent(axis)
	if max < 0 {
		max = 0
	}
	return Metrics{
		Offset:         offset,
		MaxOffset:      max,
		ViewportExtent: s.ViewportExtent(axis),
		AtStart:        offset <= threshold,
		AtEnd:          offset >= max-threshold,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
