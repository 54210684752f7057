package dom

// NodeType discriminates the node kinds the core cares about. Anything that
// is neither an element nor text (comments, processing instructions) is
// reported as NodeOther and left alone by the reconciler.
type NodeType uint8

const (
	NodeElement NodeType = iota
	NodeText
	NodeOther
)

// String returns the string representation of the NodeType.
func (t NodeType) String() string {
	switch t {
	case NodeElement:
		return "Element"
	case NodeText:
		return "Text"
	default:
		return "Other"
	}
}

// Node is a live node in the host tree. Implementations must be comparable
// interface values (pointers) so node identity can be tested with ==.
type Node interface {
	// Type classifies the node.
	Type() NodeType

	// Parent returns the parent element, or nil for a detached node.
	Parent() Element

	// NextSibling returns the node immediately following this one under the
	// same parent, or nil if this is the last child or the node is detached.
	NextSibling() Node
}

// Element is a live element node.
type Element interface {
	Node

	// TagName returns the element's tag name as created.
	TagName() string

	// Namespace returns the namespace URI the element was created with, or
	// "" for the default namespace.
	Namespace() string

	// Attribute returns the value of the named attribute and whether it is
	// present.
	Attribute(name string) (string, bool)

	// SetAttribute sets the named attribute.
	SetAttribute(name, value string)

	// RemoveAttribute removes the named attribute. Removing an absent
	// attribute is a no-op.
	RemoveAttribute(name string)

	// AttributeNames returns the names of all present attributes in the
	// order they were first set.
	AttributeNames() []string

	// AddEventListener attaches a listener for the named event.
	AddEventListener(event string, handler EventHandler, opts ListenerOptions)

	// RemoveEventListener detaches a previously attached listener. The
	// options must match those passed on attach.
	RemoveEventListener(event string, handler EventHandler, opts ListenerOptions)

	// ChildNodes returns the element's children in document order. The
	// returned slice is a snapshot; mutating the element does not alter it.
	ChildNodes() []Node

	// InsertBefore inserts node immediately before ref. A nil ref appends.
	// If node already has a parent it is detached first.
	InsertBefore(node Node, ref Node)

	// MoveBefore repositions node immediately before ref without the
	// detach/attach side effects of InsertBefore. Implementations whose
	// document reports SupportsMoveBefore() == false may implement it as
	// InsertBefore.
	MoveBefore(node Node, ref Node)

	// RemoveChild detaches node from this element. Removing a node that is
	// not a child is a no-op.
	RemoveChild(node Node)
}

// Text is a live text node.
type Text interface {
	Node

	// Data returns the text content.
	Data() string

	// SetData replaces the text content.
	SetData(s string)
}

// Document creates nodes and reports host capabilities.
type Document interface {
	// CreateElement creates a detached element in the default namespace.
	CreateElement(tag string) (Element, error)

	// CreateElementNS creates a detached element in the given namespace.
	CreateElementNS(namespace, tag string) (Element, error)

	// CreateTextNode creates a detached text node with the exact content
	// given. No escaping is applied; text nodes are inherently safe.
	CreateTextNode(data string) Text

	// SupportsMoveBefore reports whether elements of this document implement
	// MoveBefore as a true state-preserving move. Probed once by the
	// reconciler at construction.
	SupportsMoveBefore() bool
}

// ListenerOptions mirror the delivery options of the host event system.
type ListenerOptions struct {
	// Capture delivers the event during the capture phase.
	Capture bool

	// Passive promises the listener will not cancel the event.
	Passive bool

	// Once detaches the listener after its first delivery.
	Once bool
}

// Event is the value delivered to listeners.
type Event interface {
	// Type returns the event name, e.g. "click".
	Type() string

	// Target returns the element the event was dispatched on.
	Target() Element
}

// EventHandler handles a dispatched event.
type EventHandler interface {
	HandleEvent(Event)
}

// EventFunc adapts a plain function to an EventHandler.
type EventFunc func(Event)

// HandleEvent implements EventHandler.
func (f EventFunc) HandleEvent(e Event) { f(e) }
