package doc

// Document wraps the root element with viewport-level sizing context: the
// terminal's width/height in cells and the root font size used for rem-style
// distances. One cell is one unit, so "px" distances are cell counts here.
type Document struct {
	Root *Element

	width, height float64
	rootFontSize  float64
	showEvents    bool
}

func NewDocument() *Document {
	return &Document{Root: NewElement("root"), rootFontSize: 1}
}

// SetSize records the viewport size and dispatches a resize event on the root.
func (d *Document) SetSize(w, h float64) {
	d.width, d.height = w, h
	d.Root.Dispatch(EventResize)
}

func (d *Document) Size() (w, h float64) { return d.width, d.height }

func (d *Document) SetRootFontSize(size float64) {
	if size > 0 {
		d.rootFontSize = size
	}
}

func (d *Document) RootFontSize() float64 { return d.rootFontSize }

// EnableShowEvents declares that the surface will call NotifyShown when a
// hidden element becomes visible again. Without it the engine falls back to
// piggybacking on resize/scroll to retry suspended regions.
func (d *Document) EnableShowEvents() { d.showEvents = true }

func (d *Document) SupportsShowEvents() bool { return d.showEvents }

// NotifyShown reports that el (or an ancestor) was just un-hidden.
func (d *Document) NotifyShown(el *Element) {
	el.Dispatch(EventShow)
}
