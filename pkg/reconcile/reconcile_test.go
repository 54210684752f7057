package reconcile

import (
	"errors"
	"testing"

	"github.com/gomorph/gomorph/pkg/component"
	"github.com/gomorph/gomorph/pkg/dom"
	"github.com/gomorph/gomorph/pkg/memdom"
	"github.com/gomorph/gomorph/pkg/vdom"
)

func handlerA(dom.Event) {}
func handlerB(dom.Event) {}

func newTestReconciler(t *testing.T, opts ...Option) (*Reconciler, *memdom.Document) {
	t.Helper()
	doc := memdom.NewDocument()
	return New(doc, opts...), doc
}

func mustMount(t *testing.T, r *Reconciler, desc *vdom.VNode) dom.Element {
	t.Helper()
	el, err := r.Mount(desc)
	if err != nil {
		t.Fatalf("Mount: %v", err)
	}
	return el
}

func mustUpdate(t *testing.T, r *Reconciler, el dom.Element, desc *vdom.VNode) {
	t.Helper()
	if _, err := r.Update(el, desc); err != nil {
		t.Fatalf("Update: %v", err)
	}
}

func TestMountBasic(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div(vdom.ID("app"),
		vdom.Span("hi"),
		vdom.Text("there"),
	))

	if el.TagName() != "div" {
		t.Errorf("TagName = %q, want div", el.TagName())
	}
	if got := memdom.OuterHTML(el); got != `<div id="app"><span>hi</span>there</div>` {
		t.Errorf("OuterHTML = %q", got)
	}
	if el.Parent() != nil {
		t.Error("mounted root should be detached")
	}
}

func TestMountOps(t *testing.T) {
	r, _ := newTestReconciler(t)
	mustMount(t, r, vdom.Div(vdom.ID("a"),
		vdom.Span(),
		vdom.Text("t"),
	))

	ops := r.LastOps()
	if got := ops.Count(OpCreateElement); got != 2 {
		t.Errorf("CreateElement = %d, want 2", got)
	}
	if got := ops.Count(OpCreateText); got != 1 {
		t.Errorf("CreateText = %d, want 1", got)
	}
	if got := ops.Count(OpSetAttr); got != 1 {
		t.Errorf("SetAttr = %d, want 1", got)
	}
	if got := ops.Count(OpInsertNode); got != 2 {
		t.Errorf("InsertNode = %d, want 2", got)
	}
}

func TestMountListeners(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Button(vdom.OnClick(handlerA)))

	mel := el.(*memdom.Element)
	if mel.ListenerCount("click") != 1 {
		t.Errorf("ListenerCount = %d, want 1", mel.ListenerCount("click"))
	}
	if r.LastOps().Count(OpAttachListener) != 1 {
		t.Errorf("AttachListener = %d, want 1", r.LastOps().Count(OpAttachListener))
	}
}

func TestMountErrors(t *testing.T) {
	r, _ := newTestReconciler(t)

	if _, err := r.Mount(nil); !errors.Is(err, ErrNilNode) {
		t.Errorf("Mount(nil) = %v, want ErrNilNode", err)
	}
	if _, err := r.Mount(vdom.Text("x")); !errors.Is(err, ErrNotElement) {
		t.Errorf("Mount(text) = %v, want ErrNotElement", err)
	}
	if _, err := r.Mount(vdom.CustomElement("bad tag")); err == nil {
		t.Error("Mount with invalid tag should surface the document error")
	}
}

func TestUpdateIdempotent(t *testing.T) {
	r, _ := newTestReconciler(t)
	desc := vdom.Div(vdom.ID("app"), vdom.Class("page"),
		vdom.OnClick(handlerA),
		vdom.Ul(
			vdom.Li(vdom.Key(1), "one"),
			vdom.Li(vdom.Key(2), "two"),
		),
	)

	el := mustMount(t, r, desc)
	rec := &Recorder{}
	r.observers = append(r.observers, rec)

	before := memdom.OuterHTML(el)
	mustUpdate(t, r, el, desc)
	if rec.Len() != 0 {
		t.Errorf("update against an identical description performed %d ops: %v", rec.Len(), rec.Ops())
	}
	if r.LastOps().Total() != 0 {
		t.Errorf("LastOps().Total() = %d, want 0", r.LastOps().Total())
	}
	if after := memdom.OuterHTML(el); after != before {
		t.Errorf("markup changed:\nbefore: %q\nafter:  %q", before, after)
	}
}

func TestUpdateErrors(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div())

	if _, err := r.Update(nil, vdom.Div()); !errors.Is(err, ErrNilNode) {
		t.Errorf("Update(nil, desc) = %v, want ErrNilNode", err)
	}
	if _, err := r.Update(el, nil); !errors.Is(err, ErrNilNode) {
		t.Errorf("Update(el, nil) = %v, want ErrNilNode", err)
	}
	if _, err := r.Update(el, vdom.Text("x")); !errors.Is(err, ErrNotElement) {
		t.Errorf("Update(el, text) = %v, want ErrNotElement", err)
	}
	if _, err := r.Update(el, vdom.Span()); !errors.Is(err, ErrTagMismatch) {
		t.Errorf("Update div against span = %v, want ErrTagMismatch", err)
	}
}

func TestUpdateTagCaseInsensitive(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div())
	if _, err := r.Update(el, vdom.New("DIV", nil)); err != nil {
		t.Errorf("Update with different tag casing: %v", err)
	}
}

func TestUpdateAttributeDelta(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div(vdom.ID("a"), vdom.Class("old"), vdom.TitleAttr("keep")))

	rec := &Recorder{}
	r.observers = append(r.observers, rec)
	mustUpdate(t, r, el, vdom.Div(vdom.ID("a"), vdom.Class("new"), vdom.Data("x", "1")))

	if v, _ := el.Attribute("class"); v != "new" {
		t.Errorf("class = %q, want new", v)
	}
	if v, _ := el.Attribute("data-x"); v != "1" {
		t.Errorf("data-x = %q, want 1", v)
	}
	if _, ok := el.Attribute("title"); ok {
		t.Error("title should be removed")
	}
	if got := rec.CountOf(OpSetAttr); got != 2 {
		t.Errorf("SetAttr = %d, want 2 (class update, data-x add)", got)
	}
	if got := rec.CountOf(OpRemoveAttr); got != 1 {
		t.Errorf("RemoveAttr = %d, want 1", got)
	}
}

func TestUpdateRemovesAllAttributes(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div(vdom.ID("a"), vdom.Class("x")))
	mustUpdate(t, r, el, vdom.Div())

	if names := el.AttributeNames(); len(names) != 0 {
		t.Errorf("attributes remain: %v", names)
	}
}

func TestUpdateListenerKept(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Button(vdom.OnClick(handlerA)))

	rec := &Recorder{}
	r.observers = append(r.observers, rec)
	mustUpdate(t, r, el, vdom.Button(vdom.OnClick(handlerA)))

	if rec.CountOf(OpDetachListener) != 0 || rec.CountOf(OpAttachListener) != 0 {
		t.Errorf("same handler caused listener churn: %v", rec.Ops())
	}
	if el.(*memdom.Element).ListenerCount("click") != 1 {
		t.Error("listener count drifted")
	}
}

func TestUpdateListenerSwapped(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Button(vdom.OnClick(handlerA)))

	rec := &Recorder{}
	r.observers = append(r.observers, rec)
	mustUpdate(t, r, el, vdom.Button(vdom.OnClick(handlerB)))

	if rec.CountOf(OpDetachListener) != 1 || rec.CountOf(OpAttachListener) != 1 {
		t.Errorf("handler swap should detach and reattach once: %v", rec.Ops())
	}
	mel := el.(*memdom.Element)
	if mel.ListenerCount("click") != 1 {
		t.Errorf("ListenerCount = %d, want 1 after swap", mel.ListenerCount("click"))
	}
	entry, ok := r.registry.lookup(el, "click")
	if !ok {
		t.Fatal("registry lost the click entry")
	}
	if !dom.SameHandler(entry.handler, dom.EventFunc(handlerB)) {
		t.Error("registry should hold the new handler after the swap")
	}
}

func TestUpdateListenerOptionsChanged(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Button(vdom.OnClick(handlerA)))

	rec := &Recorder{}
	r.observers = append(r.observers, rec)
	mustUpdate(t, r, el, vdom.Button(vdom.OnClick(handlerA, dom.ListenerOptions{Once: true})))

	if rec.CountOf(OpDetachListener) != 1 || rec.CountOf(OpAttachListener) != 1 {
		t.Errorf("options change should detach and reattach: %v", rec.Ops())
	}
}

func TestUpdateListenerRemoved(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Button(vdom.OnClick(handlerA)))
	mustUpdate(t, r, el, vdom.Button())

	if el.(*memdom.Element).ListenerCount("click") != 0 {
		t.Error("listener should be detached when the description drops it")
	}
	if len(r.registry.byElement) != 0 {
		t.Error("registry should drop the element record")
	}
}

func TestKeyedReorderReusesElements(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Ul(
		vdom.Li(vdom.Key(1), "one"),
		vdom.Li(vdom.Key(2), "two"),
		vdom.Li(vdom.Key(3), "three"),
	))
	before := el.ChildNodes()

	rec := &Recorder{}
	r.observers = append(r.observers, rec)
	mustUpdate(t, r, el, vdom.Ul(
		vdom.Li(vdom.Key(3), "three"),
		vdom.Li(vdom.Key(1), "one"),
		vdom.Li(vdom.Key(2), "two"),
	))

	after := el.ChildNodes()
	if len(after) != 3 {
		t.Fatalf("len(children) = %d, want 3", len(after))
	}
	if after[0] != before[2] || after[1] != before[0] || after[2] != before[1] {
		t.Error("keyed children were not reused by identity")
	}
	if rec.CountOf(OpCreateElement) != 0 || rec.CountOf(OpRemoveNode) != 0 {
		t.Errorf("reorder should neither create nor remove: %v", rec.Ops())
	}
	if rec.CountOf(OpMoveNode) == 0 {
		t.Error("reorder should move at least one node")
	}
}

func TestKeyedUpdateMixed(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Ul(
		vdom.Li(vdom.Key(1), "one"),
		vdom.Li(vdom.Key(2), "two"),
	))
	before := el.ChildNodes()

	rec := &Recorder{}
	r.observers = append(r.observers, rec)
	mustUpdate(t, r, el, vdom.Ul(
		vdom.Li(vdom.Key(2), "two"),
		vdom.Li(vdom.Key(3), "three"),
	))

	after := el.ChildNodes()
	if len(after) != 2 {
		t.Fatalf("len(children) = %d, want 2", len(after))
	}
	if after[0] != before[1] {
		t.Error("key=2 element should be reused")
	}
	if rec.CountOf(OpCreateElement) != 1 {
		t.Errorf("CreateElement = %d, want 1 (key=3)", rec.CountOf(OpCreateElement))
	}
	if rec.CountOf(OpRemoveNode) != 1 {
		t.Errorf("RemoveNode = %d, want 1 (key=1)", rec.CountOf(OpRemoveNode))
	}
}

func TestUnkeyedTagMatchingReuses(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div(
		vdom.H1("title"),
		vdom.H2("subtitle"),
	))
	before := el.ChildNodes()

	rec := &Recorder{}
	r.observers = append(r.observers, rec)
	mustUpdate(t, r, el, vdom.Div(
		vdom.H2("subtitle"),
		vdom.H1("title"),
	))

	after := el.ChildNodes()
	if after[0] != before[1] || after[1] != before[0] {
		t.Error("unkeyed same-tag children should be reused by identity")
	}
	if rec.CountOf(OpCreateElement) != 0 {
		t.Errorf("CreateElement = %d, want 0", rec.CountOf(OpCreateElement))
	}
}

func TestUnkeyedDuplicateTagsMatchInOrder(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div(
		vdom.Span(vdom.ID("a")),
		vdom.Span(vdom.ID("b")),
	))
	before := el.ChildNodes()

	mustUpdate(t, r, el, vdom.Div(
		vdom.Span(vdom.ID("a")),
		vdom.Span(vdom.ID("b")),
	))

	after := el.ChildNodes()
	if after[0] != before[0] || after[1] != before[1] {
		t.Error("duplicate-tag children should match first-to-first, second-to-second")
	}
}

func TestTextNodeReuse(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.P(vdom.Text("stable")))
	before := el.ChildNodes()

	rec := &Recorder{}
	r.observers = append(r.observers, rec)
	mustUpdate(t, r, el, vdom.P(vdom.Text("stable")))

	if el.ChildNodes()[0] != before[0] {
		t.Error("unchanged text node should be reused by identity")
	}
	if rec.Len() != 0 {
		t.Errorf("unchanged text caused ops: %v", rec.Ops())
	}
}

func TestTextNodeChanged(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.P(vdom.Text("old")))

	rec := &Recorder{}
	r.observers = append(r.observers, rec)
	mustUpdate(t, r, el, vdom.P(vdom.Text("new")))

	if got := memdom.InnerHTML(el); got != "new" {
		t.Errorf("InnerHTML = %q, want new", got)
	}
	if rec.CountOf(OpCreateText) != 1 || rec.CountOf(OpRemoveNode) != 1 {
		t.Errorf("changed text should create and remove once: %v", rec.Ops())
	}
}

func TestTextNeverMatchesElement(t *testing.T) {
	r, _ := newTestReconciler(t)
	// A text node whose content equals an element's tag must not be
	// matched against that element.
	el := mustMount(t, r, vdom.Div(vdom.Text("span")))
	mustUpdate(t, r, el, vdom.Div(vdom.Span()))

	kids := el.ChildNodes()
	if len(kids) != 1 {
		t.Fatalf("len(children) = %d, want 1", len(kids))
	}
	if kids[0].Type() != dom.NodeElement {
		t.Error("child should now be an element")
	}
}

func TestRemoveAllChildren(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div(vdom.Span(), vdom.Text("x"), vdom.P()))
	mustUpdate(t, r, el, vdom.Div())

	if len(el.ChildNodes()) != 0 {
		t.Errorf("children remain after empty update: %d", len(el.ChildNodes()))
	}
	if got := r.LastOps().Count(OpRemoveNode); got != 3 {
		t.Errorf("RemoveNode = %d, want 3", got)
	}
}

func TestNestedUpdate(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div(
		vdom.Ul(vdom.Li(vdom.Key("a"), "first")),
	))
	mustUpdate(t, r, el, vdom.Div(
		vdom.Ul(
			vdom.Li(vdom.Key("a"), "first"),
			vdom.Li(vdom.Key("b"), "second"),
		),
	))

	want := "<div><ul>" +
		`<li key="a">first</li>` +
		`<li key="b">second</li>` +
		"</ul></div>"
	if got := memdom.OuterHTML(el); got != want {
		t.Errorf("OuterHTML = %q, want %q", got, want)
	}
}

func TestCommentLeftAlone(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div(vdom.Span()))

	comment := memdom.NewComment("note")
	el.InsertBefore(comment, nil)

	mustUpdate(t, r, el, vdom.Div(vdom.Span(), vdom.P()))

	found := false
	for _, c := range el.ChildNodes() {
		if c == comment {
			found = true
		}
	}
	if !found {
		t.Error("foreign node should survive reconciliation")
	}
}

func TestMoveBeforeFallback(t *testing.T) {
	doc := memdom.NewDocument(memdom.WithMoveBefore(false))
	r := New(doc)
	el := mustMount(t, r, vdom.Ul(
		vdom.Li(vdom.Key(1), "one"),
		vdom.Li(vdom.Key(2), "two"),
	))
	before := el.ChildNodes()

	mustUpdate(t, r, el, vdom.Ul(
		vdom.Li(vdom.Key(2), "two"),
		vdom.Li(vdom.Key(1), "one"),
	))

	after := el.ChildNodes()
	if after[0] != before[1] || after[1] != before[0] {
		t.Error("insert-before fallback should still reorder correctly")
	}
}

func TestReleaseOnRemove(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div(
		vdom.Div(
			vdom.Button(vdom.OnClick(handlerA)),
		),
	))
	if len(r.registry.byElement) != 1 {
		t.Fatalf("registry records = %d, want 1", len(r.registry.byElement))
	}

	mustUpdate(t, r, el, vdom.Div())
	if len(r.registry.byElement) != 0 {
		t.Error("registry should release records for removed subtrees")
	}
}

func TestUpdateReturnsSameElement(t *testing.T) {
	r, _ := newTestReconciler(t)
	el := mustMount(t, r, vdom.Div())
	got, err := r.Update(el, vdom.Div(vdom.ID("x")))
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if got != el {
		t.Error("Update should return the element it was given")
	}
}

type observingComponent struct {
	changes []string
}

func (c *observingComponent) Render() *vdom.VNode {
	return vdom.Span("widget")
}

func (c *observingComponent) AttributeChanged(name, oldValue, newValue string) {
	c.changes = append(c.changes, name+":"+oldValue+"->"+newValue)
}

func TestComponentRendersHostSubtree(t *testing.T) {
	reg := component.NewRegistry()
	reg.Define("x-widget", func() component.Component {
		return component.Func(func() *vdom.VNode {
			return vdom.Span("widget")
		})
	})

	r, _ := newTestReconciler(t, WithComponents(reg))
	el := mustMount(t, r, vdom.CustomElement("x-widget", vdom.ID("w"),
		vdom.Text("ignored"),
	))

	if got := memdom.InnerHTML(el); got != "<span>widget</span>" {
		t.Errorf("InnerHTML = %q, want component-rendered subtree", got)
	}
}

func TestComponentInstancePersists(t *testing.T) {
	reg := component.NewRegistry()
	var instances int
	reg.Define("x-widget", func() component.Component {
		instances++
		return component.Func(func() *vdom.VNode {
			return vdom.Span("widget")
		})
	})

	r, _ := newTestReconciler(t, WithComponents(reg))
	el := mustMount(t, r, vdom.CustomElement("x-widget"))
	mustUpdate(t, r, el, vdom.CustomElement("x-widget"))
	mustUpdate(t, r, el, vdom.CustomElement("x-widget"))

	if instances != 1 {
		t.Errorf("factory called %d times, want 1 per host element", instances)
	}
}

func TestComponentAttributeChanged(t *testing.T) {
	reg := component.NewRegistry()
	inst := &observingComponent{}
	reg.Define("x-widget", func() component.Component { return inst })

	r, _ := newTestReconciler(t, WithComponents(reg))
	el := mustMount(t, r, vdom.CustomElement("x-widget", vdom.Data("label", "a")))

	mustUpdate(t, r, el, vdom.CustomElement("x-widget", vdom.Data("label", "b")))
	mustUpdate(t, r, el, vdom.CustomElement("x-widget"))

	want := []string{"data-label:a->b", "data-label:b->"}
	if len(inst.changes) != len(want) {
		t.Fatalf("changes = %v, want %v", inst.changes, want)
	}
	for i := range want {
		if inst.changes[i] != want[i] {
			t.Errorf("changes[%d] = %q, want %q", i, inst.changes[i], want[i])
		}
	}
}

func TestComponentInstanceReleasedOnRemove(t *testing.T) {
	reg := component.NewRegistry()
	reg.Define("x-widget", func() component.Component {
		return component.Func(func() *vdom.VNode { return vdom.Span() })
	})

	r, _ := newTestReconciler(t, WithComponents(reg))
	el := mustMount(t, r, vdom.Div(vdom.CustomElement("x-widget")))
	if len(r.instances) != 1 {
		t.Fatalf("instances = %d, want 1", len(r.instances))
	}

	mustUpdate(t, r, el, vdom.Div())
	if len(r.instances) != 0 {
		t.Error("component instance should be released with its host element")
	}
}

func TestObserverOption(t *testing.T) {
	rec := &Recorder{}
	r, _ := newTestReconciler(t, WithObserver(rec))
	mustMount(t, r, vdom.Div(vdom.ID("a")))

	if rec.Len() == 0 {
		t.Fatal("observer saw no ops")
	}
	if rec.Ops()[0].Kind != OpCreateElement {
		t.Errorf("first op = %v, want CreateElement", rec.Ops()[0].Kind)
	}
	if rec.CountOf(OpSetAttr) != 1 {
		t.Errorf("SetAttr = %d, want 1", rec.CountOf(OpSetAttr))
	}
}
