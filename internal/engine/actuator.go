package engine

import (
	"time"

	"scrollcue/internal/doc"
	"scrollcue/internal/markup"
)

// activateTarget is the click path: resolve the target's distance against
// current layout, perform the scroll, and keep indicator state consistent
// afterwards.
func (c *Container) activateTarget(t clickTarget) {
	ctx := resolveContext{
		document:    c.eng.document,
		region:      c.region.Scroll,
		axis:        c.axis,
		fontSize:    t.el.FontSize(),
		itemOffsets: c.itemOffsets,
		defaultSpec: c.eng.defaultSpec,
		logf:        c.eng.warnf,
	}
	resolved := resolveDistance(ctx, t.spec, t.count, t.side.Forward())
	c.act(resolved, t.side)
}

// act applies a resolution to the region. Boundary requests jump to the
// absolute edge; deltas are clamped so the region never scrolls past either
// end. A visibility refresh follows: immediately for instant scrolls (the
// offset is already final), after the settle delay for animated ones where
// boundary state lags the scroll call.
func (c *Container) act(resolved Resolved, side markup.Side) {
	m := Measure(c.region.Scroll, c.axis, c.eng.opts.Threshold)
	var target float64
	if resolved.Boundary {
		if side == markup.Start {
			target = 0
		} else {
			target = m.MaxOffset
		}
	} else {
		target = clamp(m.Offset+resolved.Delta, 0, m.MaxOffset)
	}

	behavior := c.eng.opts.Behavior()
	c.region.Scroll.ScrollTo(c.axis, target, behavior)

	if behavior == doc.Instant {
		c.refreshOrSuspend()
		return
	}
	if c.settleCancel != nil {
		c.settleCancel()
	}
	d := time.Duration(c.eng.opts.SettleMS) * time.Millisecond
	c.settleCancel = c.eng.sched.After(d, func() {
		c.settleCancel = nil
		c.refreshOrSuspend()
	})
}
