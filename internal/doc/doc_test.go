package doc

import "testing"

func TestWalkDocumentOrder(t *testing.T) {
	root := NewElement("root")
	a := NewElement("a")
	b := NewElement("b")
	c := NewElement("c")
	a.Append(b)
	root.Append(a, c)
	var order []string
	root.Walk(func(e *Element) { order = append(order, e.Tag) })
	want := "root a b c"
	got := order[0] + " " + order[1] + " " + order[2] + " " + order[3]
	if got != want {
		t.Fatalf("walk order %q, want %q", got, want)
	}
}

func TestAttrAndClasses(t *testing.T) {
	e := NewElement("x").SetAttr("k", "v")
	if v, ok := e.Attr("k"); !ok || v != "v" {
		t.Fatalf("attr lost: %q %v", v, ok)
	}
	e.AddClass("b")
	e.AddClass("a")
	e.AddClass("a")
	got := e.Classes()
	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Fatalf("expected sorted unique classes, got %v", got)
	}
	e.RemoveClass("a")
	if e.HasClass("a") || !e.HasClass("b") {
		t.Fatalf("remove broke the class set: %v", e.Classes())
	}
}

func TestListenerHandleRemoveIsIdempotent(t *testing.T) {
	e := NewElement("x")
	n := 0
	h := e.On(EventScroll, func(*Element) { n++ })
	e.Dispatch(EventScroll)
	h.Remove()
	h.Remove()
	e.Dispatch(EventScroll)
	if n != 1 {
		t.Fatalf("expected exactly one delivery, got %d", n)
	}
}

func TestListenerMayRemoveItselfDuringDispatch(t *testing.T) {
	e := NewElement("x")
	n := 0
	var h ListenerHandle
	h = e.On(EventShow, func(*Element) {
		n++
		h.Remove()
	})
	e.Dispatch(EventShow)
	e.Dispatch(EventShow)
	if n != 1 {
		t.Fatalf("one-shot listener fired %d times", n)
	}
}

func TestVisibilityInherits(t *testing.T) {
	root := NewElement("root")
	child := NewElement("child")
	root.Append(child)
	if !child.Visible() {
		t.Fatalf("expected visible by default")
	}
	root.SetHidden(true)
	if child.Visible() {
		t.Fatalf("hidden ancestor must hide descendants")
	}
}

func TestFontSizeInherits(t *testing.T) {
	root := NewElement("root")
	mid := NewElement("mid")
	leaf := NewElement("leaf")
	root.Append(mid)
	mid.Append(leaf)
	if leaf.FontSize() != 1 {
		t.Fatalf("tree default font size is 1, got %v", leaf.FontSize())
	}
	mid.SetFontSize(3)
	if leaf.FontSize() != 3 {
		t.Fatalf("expected inherited 3, got %v", leaf.FontSize())
	}
}

func TestDocumentResizeDispatch(t *testing.T) {
	d := NewDocument()
	n := 0
	d.Root.On(EventResize, func(*Element) { n++ })
	d.SetSize(80, 24)
	if n != 1 {
		t.Fatalf("expected resize dispatch, got %d", n)
	}
	w, h := d.Size()
	if w != 80 || h != 24 {
		t.Fatalf("size lost: %v %v", w, h)
	}
}
