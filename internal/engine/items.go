package engine

import "math"

// NearestIndex finds the item whose offset is closest to current, ties going
// to the lowest index. Offsets are expected monotonic in document order but
// an unordered set still gets a best-effort nearest match. Returns -1 when
// no items are registered.
func NearestIndex(offsets []float64, current float64) int {
	best := -1
	bestDist := math.Inf(1)
	for i, off := range offsets {
		d := math.Abs(off - current)
		if d < bestDist {
			best = i
			bestDist = d
		}
	}
	return best
}

// StepIndex advances idx by count in the given direction, clamping to the
// ends of the item list; stepping past either edge never wraps.
func StepIndex(offsets []float64, idx, count int, forward bool) int {
	if len(offsets) == 0 {
		return -1
	}
	if count < 1 {
		count = 1
	}
	if forward {
		idx += count
	} else {
		idx -= count
	}
	if idx < 0 {
		idx = 0
	}
	if idx > len(offsets)-1 {
		idx = len(offsets) - 1
	}
	return idx
}
