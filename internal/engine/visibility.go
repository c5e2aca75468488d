package engine

import (
	"scrollcue/internal/doc"
	"scrollcue/internal/markup"
)

// refresh recomputes boundary state and rewrites the presentation classes of
// every bound element. Rule per side: a start element is visible iff the
// region is not at its start, an end element iff not at its end. Returns
// false without touching any class when the region is hidden or has no
// measurable extent, since zero-sized geometry would classify every boundary
// as reached.
func (c *Container) refresh() bool {
	if !c.region.Visible() {
		return false
	}
	m := Measure(c.region.Scroll, c.axis, c.eng.opts.Threshold)
	if m.ViewportExtent <= 0 {
		return false
	}
	for _, ind := range c.indicators {
		c.applyClass(ind.el, c.sideVisible(ind.side, m))
	}
	for _, t := range c.targets {
		c.applyClass(t.el, c.sideVisible(t.side, m))
	}
	c.eng.debugf("container %q: offset=%.1f max=%.1f atStart=%v atEnd=%v",
		c.root.Tag, m.Offset, m.MaxOffset, m.AtStart, m.AtEnd)
	return true
}

func (c *Container) sideVisible(side markup.Side, m Metrics) bool {
	if side == markup.Start {
		return !m.AtStart
	}
	return !m.AtEnd
}

// applyClass keeps the visible/hidden pair mutually exclusive: exactly one of
// the two classes is present after every call.
func (c *Container) applyClass(el *doc.Element, visible bool) {
	if visible {
		el.RemoveClass(c.eng.opts.HiddenClass)
		el.AddClass(c.eng.opts.VisibleClass)
	} else {
		el.RemoveClass(c.eng.opts.VisibleClass)
		el.AddClass(c.eng.opts.HiddenClass)
	}
}
