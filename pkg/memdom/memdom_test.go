package memdom

import (
	"testing"

	"github.com/gomorph/gomorph/pkg/dom"
)

func mustElement(t *testing.T, d *Document, tag string) dom.Element {
	t.Helper()
	el, err := d.CreateElement(tag)
	if err != nil {
		t.Fatalf("CreateElement(%q): %v", tag, err)
	}
	return el
}

func TestCreateElement(t *testing.T) {
	d := NewDocument()
	el := mustElement(t, d, "div")
	if el.TagName() != "div" {
		t.Errorf("TagName = %q, want div", el.TagName())
	}
	if el.Type() != dom.NodeElement {
		t.Errorf("Type = %v, want NodeElement", el.Type())
	}
	if el.Parent() != nil {
		t.Error("fresh element should be detached")
	}
}

func TestCreateElementInvalidTag(t *testing.T) {
	d := NewDocument()
	for _, tag := range []string{"", "di v", "<div>", "a/b"} {
		if _, err := d.CreateElement(tag); err == nil {
			t.Errorf("CreateElement(%q) should fail", tag)
		}
	}
}

func TestCreateElementNS(t *testing.T) {
	d := NewDocument()
	el, err := d.CreateElementNS("http://www.w3.org/2000/svg", "circle")
	if err != nil {
		t.Fatalf("CreateElementNS: %v", err)
	}
	if el.Namespace() != "http://www.w3.org/2000/svg" {
		t.Errorf("Namespace = %q", el.Namespace())
	}
}

func TestAttributes(t *testing.T) {
	d := NewDocument()
	el := mustElement(t, d, "div")

	el.SetAttribute("id", "a")
	el.SetAttribute("class", "x")
	el.SetAttribute("id", "b")

	if v, ok := el.Attribute("id"); !ok || v != "b" {
		t.Errorf("id = %q,%v, want b,true", v, ok)
	}
	names := el.AttributeNames()
	if len(names) != 2 || names[0] != "id" || names[1] != "class" {
		t.Errorf("AttributeNames = %v, want [id class] in first-set order", names)
	}

	el.RemoveAttribute("id")
	if _, ok := el.Attribute("id"); ok {
		t.Error("id should be removed")
	}
	el.RemoveAttribute("missing") // no-op
}

func TestInsertBeforeAndSiblings(t *testing.T) {
	d := NewDocument()
	parent := mustElement(t, d, "ul")
	a := mustElement(t, d, "li")
	b := mustElement(t, d, "li")
	c := mustElement(t, d, "li")

	parent.InsertBefore(a, nil)
	parent.InsertBefore(c, nil)
	parent.InsertBefore(b, c)

	kids := parent.ChildNodes()
	if len(kids) != 3 || kids[0] != a || kids[1] != b || kids[2] != c {
		t.Fatalf("children out of order: %v", kids)
	}
	if a.NextSibling() != b || b.NextSibling() != c {
		t.Error("NextSibling chain broken")
	}
	if c.NextSibling() != nil {
		t.Error("last child should have nil NextSibling")
	}
	if a.Parent() != parent {
		t.Error("Parent not set on insert")
	}
}

func TestInsertBeforeReparents(t *testing.T) {
	d := NewDocument()
	p1 := mustElement(t, d, "div")
	p2 := mustElement(t, d, "div")
	n := mustElement(t, d, "span")

	p1.InsertBefore(n, nil)
	p2.InsertBefore(n, nil)

	if len(p1.ChildNodes()) != 0 {
		t.Error("node should be detached from the old parent")
	}
	if n.Parent() != p2 {
		t.Error("node should be attached to the new parent")
	}
}

func TestInsertBeforeUnknownRefAppends(t *testing.T) {
	d := NewDocument()
	parent := mustElement(t, d, "div")
	stranger := mustElement(t, d, "span")
	n := mustElement(t, d, "span")

	parent.InsertBefore(n, stranger)
	kids := parent.ChildNodes()
	if len(kids) != 1 || kids[0] != n {
		t.Errorf("children = %v, want [n] appended", kids)
	}
}

func TestRemoveChild(t *testing.T) {
	d := NewDocument()
	parent := mustElement(t, d, "div")
	n := mustElement(t, d, "span")
	parent.InsertBefore(n, nil)

	parent.RemoveChild(n)
	if len(parent.ChildNodes()) != 0 {
		t.Error("child not removed")
	}
	if n.Parent() != nil {
		t.Error("removed child should be detached")
	}
	parent.RemoveChild(n) // no-op
}

func TestTextNode(t *testing.T) {
	d := NewDocument()
	txt := d.CreateTextNode("hi")
	if txt.Type() != dom.NodeText {
		t.Errorf("Type = %v, want NodeText", txt.Type())
	}
	if txt.Data() != "hi" {
		t.Errorf("Data = %q, want hi", txt.Data())
	}
	txt.SetData("bye")
	if txt.Data() != "bye" {
		t.Errorf("Data = %q, want bye", txt.Data())
	}
}

func TestDispatchEvent(t *testing.T) {
	d := NewDocument()
	el := mustElement(t, d, "button").(*Element)

	var got []string
	el.AddEventListener("click", dom.EventFunc(func(e dom.Event) {
		got = append(got, "first:"+e.Type())
		if e.Target() != el {
			t.Error("Target should be the dispatching element")
		}
	}), dom.ListenerOptions{})
	el.AddEventListener("click", dom.EventFunc(func(dom.Event) {
		got = append(got, "second")
	}), dom.ListenerOptions{})

	if n := el.DispatchEvent("click"); n != 2 {
		t.Errorf("delivered = %d, want 2", n)
	}
	if len(got) != 2 || got[0] != "first:click" || got[1] != "second" {
		t.Errorf("delivery order = %v", got)
	}
	if n := el.DispatchEvent("keydown"); n != 0 {
		t.Errorf("delivered = %d for unlistened event, want 0", n)
	}
}

func TestDispatchOnce(t *testing.T) {
	d := NewDocument()
	el := mustElement(t, d, "button").(*Element)

	calls := 0
	el.AddEventListener("click", dom.EventFunc(func(dom.Event) { calls++ }), dom.ListenerOptions{Once: true})

	el.DispatchEvent("click")
	el.DispatchEvent("click")
	if calls != 1 {
		t.Errorf("calls = %d, want 1 for Once listener", calls)
	}
	if el.ListenerCount("click") != 0 {
		t.Error("Once listener should be detached after delivery")
	}
}

func TestRemoveEventListener(t *testing.T) {
	d := NewDocument()
	el := mustElement(t, d, "button").(*Element)

	h := dom.EventFunc(func(dom.Event) {})
	el.AddEventListener("click", h, dom.ListenerOptions{})
	el.RemoveEventListener("click", h, dom.ListenerOptions{})
	if el.ListenerCount("click") != 0 {
		t.Error("listener should be removed")
	}
}

func TestRemoveEventListenerCaptureMismatch(t *testing.T) {
	d := NewDocument()
	el := mustElement(t, d, "button").(*Element)

	h := dom.EventFunc(func(dom.Event) {})
	el.AddEventListener("click", h, dom.ListenerOptions{Capture: true})
	el.RemoveEventListener("click", h, dom.ListenerOptions{})
	if el.ListenerCount("click") != 1 {
		t.Error("removal with a different capture flag must not match")
	}
}

func TestNilHandlerIgnored(t *testing.T) {
	d := NewDocument()
	el := mustElement(t, d, "button").(*Element)
	el.AddEventListener("click", nil, dom.ListenerOptions{})
	if el.ListenerCount("click") != 0 {
		t.Error("nil handler should be ignored")
	}
}

func TestSupportsMoveBefore(t *testing.T) {
	if !NewDocument().SupportsMoveBefore() {
		t.Error("default document should support MoveBefore")
	}
	if NewDocument(WithMoveBefore(false)).SupportsMoveBefore() {
		t.Error("WithMoveBefore(false) should disable the capability")
	}
}

func TestComment(t *testing.T) {
	d := NewDocument()
	parent := mustElement(t, d, "div")
	c := NewComment("note")
	parent.InsertBefore(c, nil)

	if c.Type() != dom.NodeOther {
		t.Errorf("Type = %v, want NodeOther", c.Type())
	}
	if c.Parent() != parent {
		t.Error("comment parent not set")
	}
}
