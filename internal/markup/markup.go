// Package markup defines the attribute keys that bind elements into scrollcue
// containers and parses their raw string values into typed records once, at
// discovery time. Nothing here touches live geometry.
package markup

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"scrollcue/internal/doc"
)

// Keys derives the full marker names from a single configurable prefix.
type Keys struct {
	Prefix string
}

func (k Keys) Container() string { return k.Prefix }
func (k Keys) Axis() string      { return k.Prefix + "-axis" }
func (k Keys) Side() string      { return k.Prefix + "-side" }
func (k Keys) Click() string     { return k.Prefix + "-click" }
func (k Keys) Distance() string  { return k.Prefix + "-distance" }
func (k Keys) Target() string    { return k.Prefix + "-target" }
func (k Keys) Item() string      { return k.Prefix + "-item" }
func (k Keys) Count() string     { return k.Prefix + "-count" }

// Side tags an indicator or click target with the boundary it represents.
// Start is reachable by scrolling backward, End by scrolling forward.
type Side int

const (
	Start Side = iota
	End
)

func (s Side) String() string {
	if s == Start {
		return "start"
	}
	return "end"
}

// Forward reports whether activating this side scrolls forward.
func (s Side) Forward() bool { return s == End }

func ParseSide(raw string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "start":
		return Start, nil
	case "end":
		return End, nil
	}
	return Start, fmt.Errorf("invalid side %q (want start|end)", raw)
}

func ParseAxis(raw string) (doc.Axis, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "horizontal":
		return doc.Horizontal, nil
	case "vertical":
		return doc.Vertical, nil
	}
	return doc.Horizontal, fmt.Errorf("invalid axis %q (want horizontal|vertical)", raw)
}

// DistanceKind is the parsed shape of a distance spec.
type DistanceKind int

const (
	KindDefault DistanceKind = iota // absent/empty: use the configured default
	KindBoundary                    // jump to the absolute start/end offset
	KindPixels
	KindPercent // of the region's viewport extent along the axis
	KindRem     // multiples of the root font size
	KindEm      // multiples of the triggering element's font size
	KindVw      // percent of viewport width
	KindVh      // percent of viewport height
	KindItems   // discrete item stepping ("next")
)

// DistanceSpec is a distance marker parsed into a tagged value. Value is a
// magnitude; the caller applies direction by side. Count only applies to
// KindItems.
type DistanceSpec struct {
	Kind  DistanceKind
	Value float64
	Count int
	Raw   string
}

// DefaultSpec is the spec used when no distance marker is present.
func DefaultSpec() DistanceSpec { return DistanceSpec{Kind: KindDefault} }

// ParseDistance parses a raw distance marker. Grammar is case-insensitive and
// whitespace-trimmed: "end", "next", or a number suffixed with one of
// px % rem em vw vh. The error return is diagnostic only; callers fall back
// to the configured default rather than failing the interaction.
func ParseDistance(raw string) (DistanceSpec, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	switch s {
	case "":
		return DistanceSpec{Kind: KindDefault, Raw: raw}, nil
	case "end":
		return DistanceSpec{Kind: KindBoundary, Raw: raw}, nil
	case "next":
		return DistanceSpec{Kind: KindItems, Count: 1, Raw: raw}, nil
	}

	// Suffix table ordered so "rem" wins over "em".
	units := []struct {
		suffix string
		kind   DistanceKind
	}{
		{"px", KindPixels},
		{"rem", KindRem},
		{"em", KindEm},
		{"vw", KindVw},
		{"vh", KindVh},
		{"%", KindPercent},
	}
	for _, u := range units {
		if !strings.HasSuffix(s, u.suffix) {
			continue
		}
		num := strings.TrimSpace(strings.TrimSuffix(s, u.suffix))
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			return DistanceSpec{Kind: KindDefault, Raw: raw}, fmt.Errorf("invalid distance %q: %w", raw, err)
		}
		// Distances are magnitudes; sign comes from the side at resolve time.
		return DistanceSpec{Kind: u.kind, Value: math.Abs(v), Raw: raw}, nil
	}
	return DistanceSpec{Kind: KindDefault, Raw: raw}, fmt.Errorf("unrecognized distance %q", raw)
}

// ParseCount parses an item-count marker; it must be a positive integer.
func ParseCount(raw string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 1, fmt.Errorf("invalid item count %q: %w", raw, err)
	}
	if n < 1 {
		return 1, fmt.Errorf("invalid item count %d (want >= 1)", n)
	}
	return n, nil
}

// IsTrue reports whether a flag-style marker value means enabled.
func IsTrue(raw string) bool {
	return strings.ToLower(strings.TrimSpace(raw)) == "true"
}
