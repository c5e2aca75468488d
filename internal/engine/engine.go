// Package engine is the scrollcue core: it discovers marked-up scrollable
// containers in a document, tracks their scroll-boundary state, drives the
// visible/hidden presentation classes of their indicators, and performs
// click-triggered scroll jumps. One Engine instance owns one registry; there
// is no package-level state.
package engine

import (
	"fmt"
	"sort"

	"scrollcue/internal/config"
	"scrollcue/internal/doc"
	"scrollcue/internal/markup"
)

type Engine struct {
	document    *doc.Document
	opts        config.Options
	keys        markup.Keys
	defaultSpec markup.DistanceSpec
	sched       Scheduler
	watcher     VisibilityWatcher
	logf        func(format string, args ...any)

	containers map[*doc.Element]*Container
}

// Option adjusts an Engine at construction.
type Option func(*Engine)

// WithScheduler replaces the default timer-backed scheduler; surfaces with
// their own event loop use this to get callbacks on that loop.
func WithScheduler(s Scheduler) Option {
	return func(e *Engine) { e.sched = s }
}

// WithLogf redirects the diagnostic channel.
func WithLogf(fn func(format string, args ...any)) Option {
	return func(e *Engine) { e.logf = fn }
}

// WithWatcher overrides the visibility watcher selected from the document's
// capabilities.
func WithWatcher(w VisibilityWatcher) Option {
	return func(e *Engine) { e.watcher = w }
}

func New(d *doc.Document, opts config.Options, extra ...Option) *Engine {
	e := &Engine{
		document:   d,
		opts:       opts,
		keys:       markup.Keys{Prefix: opts.Prefix},
		sched:      NewTimerScheduler(),
		containers: map[*doc.Element]*Container{},
		logf: func(format string, args ...any) {
			fmt.Printf("[scrollcue] "+format+"\n", args...)
		},
	}
	spec, err := markup.ParseDistance(opts.DefaultDistance)
	if err != nil {
		e.warnf("%v, default distance is boundary jump", err)
	}
	e.defaultSpec = spec
	for _, o := range extra {
		o(e)
	}
	if e.watcher == nil {
		e.watcher = newWatcher(d)
	}
	return e
}

// Initialize scans the document and activates every valid container. It is
// idempotent: already-active containers are left alone, not rewired. The
// result is the number of active containers after the scan; configuration
// problems are diagnostics, never errors.
func (e *Engine) Initialize() int {
	var candidates []*doc.Element
	e.document.Root.Walk(func(el *doc.Element) {
		if el.HasAttr(e.keys.Container()) {
			candidates = append(candidates, el)
		}
	})
	for _, el := range candidates {
		e.RegisterContainer(el)
	}
	return e.activeCount()
}

// RegisterContainer validates and activates a single container element,
// for content added after the initial scan. Re-registering an active
// container is a no-op reporting success. One bad container never blocks
// others: validation failures and activation panics are confined here.
func (e *Engine) RegisterContainer(el *doc.Element) bool {
	if c, ok := e.containers[el]; ok && c.state != stateCleaned {
		return true
	}
	c, err := validateContainer(e, el)
	if err != nil {
		e.warnf("container %q rejected: %v", el.Tag, err)
		return false
	}
	if !e.safeActivate(c) {
		return false
	}
	e.containers[el] = c
	return true
}

func (e *Engine) safeActivate(c *Container) (ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.warnf("container %q: activation failed: %v", c.root.Tag, r)
			c.teardown()
			ok = false
		}
	}()
	c.activate()
	return true
}

// UnregisterContainer tears down one container. Unknown elements and
// repeated calls are no-ops.
func (e *Engine) UnregisterContainer(el *doc.Element) {
	if c, ok := e.containers[el]; ok {
		c.teardown()
		delete(e.containers, el)
	}
}

// Cleanup tears down every container and empties the registry. Idempotent.
func (e *Engine) Cleanup() {
	for el, c := range e.containers {
		c.teardown()
		delete(e.containers, el)
	}
}

// RefreshAll forces a visibility recompute on every container, for content
// changes the engine cannot observe itself.
func (e *Engine) RefreshAll() {
	for _, c := range e.containers {
		c.refreshOrSuspend()
	}
}

// Configuration returns a copy of the current options.
func (e *Engine) Configuration() config.Options { return e.opts }

// UpdateConfiguration applies a runtime patch. Only the allow-listed fields
// in config.Patch can change; structural keys are fixed for the engine's
// lifetime.
func (e *Engine) UpdateConfiguration(p config.Patch) error {
	opts, err := e.opts.Apply(p)
	if err != nil {
		return err
	}
	e.opts = opts
	return nil
}

func (e *Engine) activeCount() int {
	n := 0
	for _, c := range e.containers {
		if c.state == stateActive || c.state == stateSuspended {
			n++
		}
	}
	return n
}

func (e *Engine) warnf(format string, args ...any) {
	e.logf(format, args...)
}

func (e *Engine) debugf(format string, args ...any) {
	if e.opts.Debug {
		e.logf(format, args...)
	}
}

// DumpState renders the registry for the debug overlay: one line per
// container plus one per bound element with its current classes. Output is
// sorted so successive dumps diff cleanly.
func (e *Engine) DumpState() string {
	cs := make([]*Container, 0, len(e.containers))
	for _, c := range e.containers {
		cs = append(cs, c)
	}
	sort.Slice(cs, func(i, j int) bool { return cs[i].root.Tag < cs[j].root.Tag })
	out := ""
	for _, c := range cs {
		out += fmt.Sprintf("container %q axis=%s state=%s click=%v items=%d\n",
			c.root.Tag, c.axis, c.state, c.clickEnabled, len(c.items))
		for _, ind := range c.indicators {
			out += fmt.Sprintf("  indicator %q side=%s classes=%v\n", ind.el.Tag, ind.side, ind.el.Classes())
		}
		for _, t := range c.targets {
			out += fmt.Sprintf("  target %q side=%s spec=%q count=%d classes=%v\n",
				t.el.Tag, t.side, t.spec.Raw, t.count, t.el.Classes())
		}
	}
	return out
}
