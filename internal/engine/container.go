package engine

import (
	"fmt"
	"time"

	"scrollcue/internal/config"
	"scrollcue/internal/doc"
	"scrollcue/internal/markup"
)

type containerState int

const (
	stateDiscovered containerState = iota
	stateValidated
	stateActive
	stateSuspended
	stateCleaned
)

func (s containerState) String() string {
	switch s {
	case stateDiscovered:
		return "discovered"
	case stateValidated:
		return "validated"
	case stateActive:
		return "active"
	case stateSuspended:
		return "suspended"
	default:
		return "cleaned"
	}
}

// indicator is a side-tagged presentation element bound to the container's region.
type indicator struct {
	el   *doc.Element
	side markup.Side
}

// clickTarget carries everything a click needs, parsed once at validation.
type clickTarget struct {
	el    *doc.Element
	side  markup.Side
	spec  markup.DistanceSpec
	count int
}

// Container owns one scrollable region, its indicators, click targets and
// items. Built by validation, driven by events, torn down explicitly.
type Container struct {
	eng    *Engine
	root   *doc.Element
	region *doc.Element
	axis   doc.Axis

	clickEnabled bool
	indicators   []indicator
	targets      []clickTarget
	items        []*doc.Element

	state        containerState
	handles      []doc.ListenerHandle
	framePending bool
	frameCancel  func()
	resizeCancel func()
	settleCancel func()
	watchCancel  func()
}

// validateContainer builds a typed Container from a marked-up element, or
// explains why it cannot. The raw markers are read exactly once here; events
// afterwards only touch the typed record.
func validateContainer(e *Engine, root *doc.Element) (*Container, error) {
	keys := e.keys
	c := &Container{eng: e, root: root, state: stateDiscovered}

	root.Walk(func(el *doc.Element) {
		if c.region == nil && el.HasAttr(keys.Axis()) {
			c.region = el
		}
	})
	if c.region == nil {
		return nil, fmt.Errorf("no element with %s marker", keys.Axis())
	}
	rawAxis, _ := c.region.Attr(keys.Axis())
	axis, err := markup.ParseAxis(rawAxis)
	if err != nil {
		return nil, err
	}
	c.axis = axis
	if c.region.Scroll == nil {
		return nil, fmt.Errorf("region element %q has no scroll geometry", c.region.Tag)
	}

	if raw, ok := root.Attr(keys.Click()); ok {
		c.clickEnabled = markup.IsTrue(raw)
	}

	separate := e.opts.TargetMode == config.TargetModeSeparate
	var badElements int
	root.Walk(func(el *doc.Element) {
		if raw, ok := el.Attr(keys.Side()); ok {
			side, err := markup.ParseSide(raw)
			if err != nil {
				e.warnf("container %q: %v, skipping indicator", root.Tag, err)
				badElements++
			} else {
				c.indicators = append(c.indicators, indicator{el: el, side: side})
				if c.clickEnabled && !separate {
					c.targets = append(c.targets, e.buildTarget(el, side))
				}
			}
		}
		if separate {
			if raw, ok := el.Attr(keys.Target()); ok {
				side, err := markup.ParseSide(raw)
				if err != nil {
					e.warnf("container %q: %v, skipping click target", root.Tag, err)
					badElements++
				} else if c.clickEnabled {
					c.targets = append(c.targets, e.buildTarget(el, side))
				}
			}
		}
		if el.HasAttr(keys.Item()) {
			c.items = append(c.items, el)
		}
	})

	if len(c.indicators) == 0 && len(c.targets) == 0 {
		return nil, fmt.Errorf("no indicator or click target tagged with %s/%s", keys.Side(), keys.Target())
	}
	c.state = stateValidated
	return c, nil
}

// buildTarget parses a click target's distance and count markers, falling
// back to defaults on bad values with a diagnostic.
func (e *Engine) buildTarget(el *doc.Element, side markup.Side) clickTarget {
	t := clickTarget{el: el, side: side, spec: markup.DefaultSpec(), count: 1}
	if raw, ok := el.Attr(e.keys.Distance()); ok {
		spec, err := markup.ParseDistance(raw)
		if err != nil {
			e.warnf("%v, using default distance", err)
		}
		t.spec = spec
	}
	if raw, ok := el.Attr(e.keys.Count()); ok {
		n, err := markup.ParseCount(raw)
		if err != nil {
			e.warnf("%v, using 1", err)
		}
		t.count = n
	}
	if t.spec.Kind == markup.KindItems && t.spec.Count > 0 && t.count == 1 {
		t.count = t.spec.Count
	}
	return t
}

// activate wires the container's listeners and runs the first recompute.
func (c *Container) activate() {
	// Scroll recomputes are coalesced: at most one refresh per frame no
	// matter how many scroll events arrive before it renders.
	c.handles = append(c.handles, c.region.On(doc.EventScroll, func(*doc.Element) {
		c.scheduleFrameRefresh()
	}))

	// Resize recomputes wait for the quiet period so only the settled size
	// is measured.
	c.handles = append(c.handles, c.eng.document.Root.On(doc.EventResize, func(*doc.Element) {
		if c.resizeCancel != nil {
			c.resizeCancel()
		}
		d := time.Duration(c.eng.opts.ResizeDebounceMS) * time.Millisecond
		c.resizeCancel = c.eng.sched.After(d, func() {
			c.resizeCancel = nil
			c.refreshOrSuspend()
		})
	}))

	if c.clickEnabled {
		for i := range c.targets {
			t := c.targets[i]
			t.el.AddClass(c.eng.opts.ClickableClass)
			c.handles = append(c.handles, t.el.On(doc.EventActivate, func(*doc.Element) {
				c.activateTarget(t)
			}))
		}
	}

	c.state = stateActive
	c.refreshOrSuspend()
}

func (c *Container) scheduleFrameRefresh() {
	if c.framePending {
		return
	}
	c.framePending = true
	c.frameCancel = c.eng.sched.Frame(func() {
		c.framePending = false
		c.frameCancel = nil
		c.refreshOrSuspend()
	})
}

// refreshOrSuspend runs a visibility recompute; when the region cannot be
// measured it suspends the container and arms the one-shot watcher instead.
func (c *Container) refreshOrSuspend() {
	if c.state == stateCleaned {
		return
	}
	if c.refresh() {
		if c.state == stateSuspended {
			c.state = stateActive
		}
		return
	}
	if c.state != stateActive && c.state != stateSuspended {
		return
	}
	c.state = stateSuspended
	if c.watchCancel != nil {
		c.watchCancel()
	}
	c.watchCancel = c.eng.watcher.Watch(c.region, func() {
		c.watchCancel = nil
		c.refreshOrSuspend()
	})
}

// teardown detaches everything this container installed. Safe to call twice;
// the second call is a no-op.
func (c *Container) teardown() {
	if c.state == stateCleaned {
		return
	}
	for _, h := range c.handles {
		h.Remove()
	}
	c.handles = nil
	for _, cancel := range []func(){c.frameCancel, c.resizeCancel, c.settleCancel, c.watchCancel} {
		if cancel != nil {
			cancel()
		}
	}
	c.frameCancel, c.resizeCancel, c.settleCancel, c.watchCancel = nil, nil, nil, nil
	c.framePending = false
	for _, t := range c.targets {
		t.el.RemoveClass(c.eng.opts.ClickableClass)
	}
	c.state = stateCleaned
}

// itemOffsets reads every item's current position along the scroll axis.
// Never cached: layout can change between interactions.
func (c *Container) itemOffsets() []float64 {
	out := make([]float64, 0, len(c.items))
	for _, it := range c.items {
		if it.Layout == nil {
			continue
		}
		r := it.Layout()
		if c.axis == doc.Horizontal {
			out = append(out, r.X)
		} else {
			out = append(out, r.Y)
		}
	}
	return out
}
