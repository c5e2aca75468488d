package engine

import "scrollcue/internal/doc"

// VisibilityWatcher re-arms a suspended container: it watches a hidden region
// element and fires fn once, the moment the region can be measured again.
type VisibilityWatcher interface {
	Watch(el *doc.Element, fn func()) (cancel func())
}

// showEventWatcher relies on the surface calling Document.NotifyShown when
// collapsed content is revealed. One-shot: the listener removes itself on the
// first show event.
type showEventWatcher struct{}

func (showEventWatcher) Watch(el *doc.Element, fn func()) func() {
	var h doc.ListenerHandle
	h = el.On(doc.EventShow, func(*doc.Element) {
		h.Remove()
		fn()
	})
	return h.Remove
}

// piggybackWatcher is the degraded fallback for surfaces without show
// notifications: the retry rides on the next resize or scroll instead.
type piggybackWatcher struct {
	root *doc.Element
}

func (w piggybackWatcher) Watch(el *doc.Element, fn func()) func() {
	var hs []doc.ListenerHandle
	fire := func(*doc.Element) {
		for _, h := range hs {
			h.Remove()
		}
		fn()
	}
	hs = append(hs, w.root.On(doc.EventResize, fire))
	hs = append(hs, el.On(doc.EventScroll, fire))
	return func() {
		for _, h := range hs {
			h.Remove()
		}
	}
}

// newWatcher selects the watcher implementation from the document's
// capabilities at engine construction.
func newWatcher(d *doc.Document) VisibilityWatcher {
	if d.SupportsShowEvents() {
		return showEventWatcher{}
	}
	return piggybackWatcher{root: d.Root}
}
