package config

import (
	"encoding/json"
	"fmt"
	"os"

	"scrollcue/internal/doc"
)

// Options is the engine's configuration record. Structural keys (marker
// prefix, class names, target mode) are fixed once an engine is constructed;
// only the fields covered by Patch may change at runtime.
type Options struct {
	// Structural: marker prefix and presentation class names.
	Prefix         string `json:"prefix,omitempty"`
	VisibleClass   string `json:"visible_class,omitempty"`
	HiddenClass    string `json:"hidden_class,omitempty"`
	ClickableClass string `json:"clickable_class,omitempty"`

	// TargetMode selects the click-target model: "indicator" (side-marked
	// indicators double as click targets) or "separate" (only elements with
	// the target marker are clickable).
	TargetMode string `json:"target_mode,omitempty"`

	// Runtime-tunable.
	Animation        string  `json:"animation,omitempty"` // instant | eased | smooth
	Threshold        float64 `json:"threshold"`           // boundary tolerance, cells
	SettleMS         int     `json:"settle_ms,omitempty"` // post-scroll refresh delay for animated modes
	ResizeDebounceMS int     `json:"resize_debounce_ms,omitempty"`
	Debug            bool    `json:"debug,omitempty"`

	// DefaultDistance is the spec used when a click target carries no
	// distance marker. Empty means "jump to the boundary".
	DefaultDistance string `json:"default_distance,omitempty"`
}

const (
	TargetModeIndicator = "indicator"
	TargetModeSeparate  = "separate"
)

// Default returns the stock configuration.
func Default() Options {
	return Options{
		Prefix:           "scrollcue",
		VisibleClass:     "sc-visible",
		HiddenClass:      "sc-hidden",
		ClickableClass:   "sc-clickable",
		TargetMode:       TargetModeIndicator,
		Animation:        "smooth",
		Threshold:        1,
		SettleMS:         100,
		ResizeDebounceMS: 150,
	}
}

// Behavior maps the animation option onto the surface scroll behavior.
// Unknown values fall back to smooth, the environment default.
func (o Options) Behavior() doc.Behavior {
	switch o.Animation {
	case "instant":
		return doc.Instant
	case "eased":
		return doc.Eased
	default:
		return doc.Smooth
	}
}

func validAnimation(s string) bool {
	return s == "instant" || s == "eased" || s == "smooth"
}

// Patch is the runtime-tunable subset of Options. Nil fields are left
// unchanged. Structural keys are deliberately absent: the allow-list is the
// type itself.
type Patch struct {
	Animation *string  `json:"animation,omitempty"`
	Threshold *float64 `json:"threshold,omitempty"`
	SettleMS  *int     `json:"settle_ms,omitempty"`
	Debug     *bool    `json:"debug,omitempty"`
}

// Apply validates the patch and returns the patched copy.
func (o Options) Apply(p Patch) (Options, error) {
	if p.Animation != nil {
		if !validAnimation(*p.Animation) {
			return o, fmt.Errorf("invalid animation %q (want instant|eased|smooth)", *p.Animation)
		}
		o.Animation = *p.Animation
	}
	if p.Threshold != nil {
		if *p.Threshold < 0 {
			return o, fmt.Errorf("invalid threshold %v (want >= 0)", *p.Threshold)
		}
		o.Threshold = *p.Threshold
	}
	if p.SettleMS != nil {
		if *p.SettleMS < 0 {
			return o, fmt.Errorf("invalid settle_ms %d (want >= 0)", *p.SettleMS)
		}
		o.SettleMS = *p.SettleMS
	}
	if p.Debug != nil {
		o.Debug = *p.Debug
	}
	return o, nil
}

// Load reads options from a JSON file, filling unset fields from Default.
func Load(path string) (Options, error) {
	o := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("parse config JSON: %w", err)
	}
	return o, nil
}

func Save(path string, o Options) error {
	data, err := json.MarshalIndent(o, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
