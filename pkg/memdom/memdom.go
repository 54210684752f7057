package memdom

import (
	"fmt"
	"strings"

	"github.com/gomorph/gomorph/pkg/dom"
)

// Document is the in-memory dom.Document.
type Document struct {
	moveBefore bool
}

// Option configures a Document.
type Option func(*Document)

// WithMoveBefore controls whether the document advertises state-preserving
// moves. Defaults to true; tests disable it to exercise the reconciler's
// insert-before fallback.
func WithMoveBefore(enabled bool) Option {
	return func(d *Document) {
		d.moveBefore = enabled
	}
}

// NewDocument creates an in-memory document.
func NewDocument(opts ...Option) *Document {
	d := &Document{moveBefore: true}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// CreateElement creates a detached element in the default namespace.
func (d *Document) CreateElement(tag string) (dom.Element, error) {
	return d.CreateElementNS("", tag)
}

// CreateElementNS creates a detached element in the given namespace.
func (d *Document) CreateElementNS(namespace, tag string) (dom.Element, error) {
	if !validTagName(tag) {
		return nil, fmt.Errorf("memdom: invalid tag name %q", tag)
	}
	return &Element{tag: tag, namespace: namespace}, nil
}

// CreateTextNode creates a detached text node.
func (d *Document) CreateTextNode(data string) dom.Text {
	return &Text{data: data}
}

// SupportsMoveBefore implements dom.Document.
func (d *Document) SupportsMoveBefore() bool {
	return d.moveBefore
}

// validTagName accepts what the browsers' createElement accepts in
// practice: a non-empty name without whitespace or markup characters.
func validTagName(tag string) bool {
	if tag == "" {
		return false
	}
	return !strings.ContainsAny(tag, " \t\n<>/&\"'")
}

// attrEntry preserves first-set order for AttributeNames.
type attrEntry struct {
	name  string
	value string
}

// attached is one live listener registration.
type attached struct {
	handler dom.EventHandler
	opts    dom.ListenerOptions
}

// Element is the in-memory dom.Element.
type Element struct {
	tag       string
	namespace string
	parent    *Element
	attrs     []attrEntry
	children  []dom.Node
	listeners map[string][]attached
}

var _ dom.Element = (*Element)(nil)

// Type implements dom.Node.
func (e *Element) Type() dom.NodeType { return dom.NodeElement }

// Parent implements dom.Node.
func (e *Element) Parent() dom.Element {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// NextSibling implements dom.Node.
func (e *Element) NextSibling() dom.Node {
	return nextSibling(e.parent, e)
}

// TagName implements dom.Element.
func (e *Element) TagName() string { return e.tag }

// Namespace implements dom.Element.
func (e *Element) Namespace() string { return e.namespace }

// Attribute implements dom.Element.
func (e *Element) Attribute(name string) (string, bool) {
	for _, a := range e.attrs {
		if a.name == name {
			return a.value, true
		}
	}
	return "", false
}

// SetAttribute implements dom.Element.
func (e *Element) SetAttribute(name, value string) {
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs[i].value = value
			return
		}
	}
	e.attrs = append(e.attrs, attrEntry{name: name, value: value})
}

// RemoveAttribute implements dom.Element.
func (e *Element) RemoveAttribute(name string) {
	for i := range e.attrs {
		if e.attrs[i].name == name {
			e.attrs = append(e.attrs[:i], e.attrs[i+1:]...)
			return
		}
	}
}

// AttributeNames implements dom.Element.
func (e *Element) AttributeNames() []string {
	names := make([]string, len(e.attrs))
	for i, a := range e.attrs {
		names[i] = a.name
	}
	return names
}

// AddEventListener implements dom.Element.
func (e *Element) AddEventListener(event string, handler dom.EventHandler, opts dom.ListenerOptions) {
	if handler == nil {
		return
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]attached)
	}
	e.listeners[event] = append(e.listeners[event], attached{handler: handler, opts: opts})
}

// RemoveEventListener implements dom.Element. The first registration with
// the same handler identity and capture flag is removed, matching the host
// DOM's matching rule.
func (e *Element) RemoveEventListener(event string, handler dom.EventHandler, opts dom.ListenerOptions) {
	regs := e.listeners[event]
	for i, reg := range regs {
		if dom.SameHandler(reg.handler, handler) && reg.opts.Capture == opts.Capture {
			e.listeners[event] = append(regs[:i], regs[i+1:]...)
			return
		}
	}
}

// ListenerCount returns the number of listeners attached for the event.
// Test helper; not part of the dom interfaces.
func (e *Element) ListenerCount(event string) int {
	return len(e.listeners[event])
}

// DispatchEvent synchronously delivers an event of the given type to this
// element's listeners in attach order and returns the number delivered.
// There is no capture or bubble phase.
func (e *Element) DispatchEvent(eventType string) int {
	regs := e.listeners[eventType]
	if len(regs) == 0 {
		return 0
	}
	// Snapshot so Once removal and re-entrant attaches don't skip entries.
	snapshot := make([]attached, len(regs))
	copy(snapshot, regs)
	ev := &event{typ: eventType, target: e}
	delivered := 0
	for _, reg := range snapshot {
		if reg.opts.Once {
			e.RemoveEventListener(eventType, reg.handler, reg.opts)
		}
		reg.handler.HandleEvent(ev)
		delivered++
	}
	return delivered
}

// ChildNodes implements dom.Element.
func (e *Element) ChildNodes() []dom.Node {
	out := make([]dom.Node, len(e.children))
	copy(out, e.children)
	return out
}

// InsertBefore implements dom.Element. A nil ref appends; a ref that is not
// a child of e also appends.
func (e *Element) InsertBefore(node dom.Node, ref dom.Node) {
	detach(node)
	setParent(node, e)
	idx := e.indexOf(ref)
	if idx < 0 {
		e.children = append(e.children, node)
		return
	}
	e.children = append(e.children, nil)
	copy(e.children[idx+1:], e.children[idx:])
	e.children[idx] = node
}

// MoveBefore implements dom.Element. In memory a move and an insert are the
// same operation; the distinction matters for hosts with per-node state.
func (e *Element) MoveBefore(node dom.Node, ref dom.Node) {
	e.InsertBefore(node, ref)
}

// RemoveChild implements dom.Element.
func (e *Element) RemoveChild(node dom.Node) {
	for i, c := range e.children {
		if c == node {
			e.children = append(e.children[:i], e.children[i+1:]...)
			setParent(node, nil)
			return
		}
	}
}

func (e *Element) indexOf(node dom.Node) int {
	if node == nil {
		return -1
	}
	for i, c := range e.children {
		if c == node {
			return i
		}
	}
	return -1
}

// Text is the in-memory dom.Text.
type Text struct {
	data   string
	parent *Element
}

var _ dom.Text = (*Text)(nil)

// Type implements dom.Node.
func (t *Text) Type() dom.NodeType { return dom.NodeText }

// Parent implements dom.Node.
func (t *Text) Parent() dom.Element {
	if t.parent == nil {
		return nil
	}
	return t.parent
}

// NextSibling implements dom.Node.
func (t *Text) NextSibling() dom.Node {
	return nextSibling(t.parent, t)
}

// Data implements dom.Text.
func (t *Text) Data() string { return t.data }

// SetData implements dom.Text.
func (t *Text) SetData(s string) { t.data = s }

// Comment is a non-element, non-text node. The reconciler classifies it as
// NodeOther and leaves it alone; tests use it to cover that path.
type Comment struct {
	data   string
	parent *Element
}

// NewComment creates a detached comment node.
func NewComment(data string) *Comment {
	return &Comment{data: data}
}

// Type implements dom.Node.
func (c *Comment) Type() dom.NodeType { return dom.NodeOther }

// Parent implements dom.Node.
func (c *Comment) Parent() dom.Element {
	if c.parent == nil {
		return nil
	}
	return c.parent
}

// NextSibling implements dom.Node.
func (c *Comment) NextSibling() dom.Node {
	return nextSibling(c.parent, c)
}

// Data returns the comment text.
func (c *Comment) Data() string { return c.data }

func nextSibling(parent *Element, node dom.Node) dom.Node {
	if parent == nil {
		return nil
	}
	idx := parent.indexOf(node)
	if idx < 0 || idx+1 >= len(parent.children) {
		return nil
	}
	return parent.children[idx+1]
}

func detach(node dom.Node) {
	if p := node.Parent(); p != nil {
		p.RemoveChild(node)
	}
}

func setParent(node dom.Node, parent *Element) {
	switch n := node.(type) {
	case *Element:
		n.parent = parent
	case *Text:
		n.parent = parent
	case *Comment:
		n.parent = parent
	}
}

// event is the value delivered by DispatchEvent.
type event struct {
	typ    string
	target *Element
}

// Type implements dom.Event.
func (e *event) Type() string { return e.typ }

// Target implements dom.Event.
func (e *event) Target() dom.Element { return e.target }
