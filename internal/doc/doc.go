// Package doc holds the minimal element tree scrollcue operates on: elements
// with attributes, presentation classes, listeners, and geometry hooks the
// embedding surface fills in. It is the engine's view of "the document"; it
// never renders anything itself.
package doc

import "sort"

// Axis is the scroll direction a region supports.
type Axis int

const (
	Horizontal Axis = iota
	Vertical
)

func (a Axis) String() string {
	if a == Horizontal {
		return "horizontal"
	}
	return "vertical"
}

// Behavior is the animation mode requested of the surface when scrolling.
type Behavior int

const (
	Instant Behavior = iota
	Smooth
	Eased
)

// Rect is an element's layout box in cell units, relative to its scroll parent's content.
type Rect struct {
	X, Y, W, H float64
}

// Scroller is the live scroll geometry of a region. Implementations read
// current layout on every call; the engine never caches these values.
type Scroller interface {
	Offset(axis Axis) float64
	ContentExtent(axis Axis) float64
	ViewportExtent(axis Axis) float64
	ScrollTo(axis Axis, offset float64, behavior Behavior)
}

// Event names dispatched through the tree.
const (
	EventScroll   = "scroll"
	EventActivate = "activate"
	EventResize   = "resize"
	EventShow     = "show"
)

// Element is one node of the tree. All mutation happens on the single UI
// goroutine; there is no locking here on purpose.
type Element struct {
	Tag string

	// Scroll is non-nil on scrollable region elements.
	Scroll Scroller
	// Layout reports the element's box; non-nil on item elements.
	Layout func() Rect

	attrs    map[string]string
	classes  map[string]struct{}
	parent   *Element
	children []*Element
	fontSize float64
	hidden   bool

	listeners map[string]map[int]func(*Element)
	nextID    int
}

func NewElement(tag string) *Element {
	return &Element{Tag: tag}
}

func (e *Element) SetAttr(key, val string) *Element {
	if e.attrs == nil {
		e.attrs = map[string]string{}
	}
	e.attrs[key] = val
	return e
}

// Attr returns the attribute value and whether it is present.
func (e *Element) Attr(key string) (string, bool) {
	v, ok := e.attrs[key]
	return v, ok
}

func (e *Element) HasAttr(key string) bool {
	_, ok := e.attrs[key]
	return ok
}

func (e *Element) AddClass(name string) {
	if name == "" {
		return
	}
	if e.classes == nil {
		e.classes = map[string]struct{}{}
	}
	e.classes[name] = struct{}{}
}

func (e *Element) RemoveClass(name string) {
	delete(e.classes, name)
}

func (e *Element) HasClass(name string) bool {
	_, ok := e.classes[name]
	return ok
}

// Classes returns the class list in stable (sorted) order.
func (e *Element) Classes() []string {
	out := make([]string, 0, len(e.classes))
	for c := range e.classes {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func (e *Element) Append(children ...*Element) *Element {
	for _, c := range children {
		c.parent = e
		e.children = append(e.children, c)
	}
	return e
}

func (e *Element) Parent() *Element     { return e.parent }
func (e *Element) Children() []*Element { return e.children }

// Walk visits e and every descendant in document order.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.Walk(fn)
	}
}

// SetFontSize sets the element's font size in cell units. Zero means inherit.
func (e *Element) SetFontSize(size float64) { e.fontSize = size }

// FontSize resolves the effective font size by walking up until an explicit
// value is found; the tree default is 1 (one terminal cell).
func (e *Element) FontSize() float64 {
	for n := e; n != nil; n = n.parent {
		if n.fontSize > 0 {
			return n.fontSize
		}
	}
	return 1
}

func (e *Element) SetHidden(hidden bool) { e.hidden = hidden }

// Visible reports whether the element and all its ancestors are rendered.
func (e *Element) Visible() bool {
	for n := e; n != nil; n = n.parent {
		if n.hidden {
			return false
		}
	}
	return true
}

// ListenerHandle identifies one installed listener so it can be removed.
// Remove is idempotent.
type ListenerHandle struct {
	el    *Element
	event string
	id    int
}

func (h ListenerHandle) Remove() {
	if h.el == nil {
		return
	}
	if m := h.el.listeners[h.event]; m != nil {
		delete(m, h.id)
	}
}

// On installs a listener for the named event and returns its handle.
func (e *Element) On(event string, fn func(*Element)) ListenerHandle {
	if e.listeners == nil {
		e.listeners = map[string]map[int]func(*Element){}
	}
	if e.listeners[event] == nil {
		e.listeners[event] = map[int]func(*Element){}
	}
	e.nextID++
	id := e.nextID
	e.listeners[event][id] = fn
	return ListenerHandle{el: e, event: event, id: id}
}

// Dispatch fires every listener for the named event on this element.
// Listeners are snapshotted first so a listener may remove itself (or
// siblings) while running.
func (e *Element) Dispatch(event string) {
	m := e.listeners[event]
	if len(m) == 0 {
		return
	}
	ids := make([]int, 0, len(m))
	for id := range m {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	for _, id := range ids {
		if fn, ok := m[id]; ok {
			fn(e)
		}
	}
}

// ListenerCount reports installed listeners for the event; used by teardown tests.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}
