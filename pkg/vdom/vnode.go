package vdom

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/gomorph/gomorph/pkg/dom"
)

// VKind is the node type discriminator.
type VKind uint8

const (
	KindElement VKind = iota // <div>, <button>, etc.
	KindText                 // Plain text node
)

// String returns the string representation of the VKind.
func (k VKind) String() string {
	switch k {
	case KindElement:
		return "Element"
	case KindText:
		return "Text"
	default:
		return "Unknown"
	}
}

// VNode is the virtual node description. A constructed VNode is owned by
// the caller and is never mutated by the materializer or reconciler.
type VNode struct {
	Kind      VKind               // Node type
	Tag       string              // Element tag name (e.g., "div")
	Namespace string              // Namespace URI, "" for the default
	Attrs     map[string]string   // Attributes, including the reserved "key"
	Listeners map[string]Listener // Event name -> listener
	Children  []*VNode            // Child nodes; nil when none were given
	Text      string              // For KindText
}

// Props holds attributes and event handlers for New. Entries whose key
// starts with "on" and whose value is handler-like become listeners; all
// other non-nil entries are stringified into attributes.
type Props map[string]any

// Listener is an event listener entry: the handler plus the delivery
// options it is attached with.
type Listener struct {
	Handler dom.EventHandler
	Options dom.ListenerOptions
}

// EventListener pairs an event name with a listener. Produced by the On*
// helpers and consumed by the element factories.
type EventListener struct {
	Event    string
	Listener Listener
}

// Attr represents a single attribute.
type Attr struct {
	Key   string
	Value any
}

// IsEmpty returns true if this is an empty/nil attribute.
func (a Attr) IsEmpty() bool {
	return a.Key == ""
}

// Key returns the reconciliation key, or "" if the node carries none.
func (v *VNode) Key() string {
	if v == nil || v.Attrs == nil {
		return ""
	}
	return v.Attrs["key"]
}

// New builds an element description from a tag name, a property map and
// variadic children. Children may be *VNode values or strings; strings
// become text nodes. Anything else is stringified into a text node, which
// mirrors the permissive behavior of the DOM helpers this library models.
func New(tag string, props Props, children ...any) *VNode {
	node := &VNode{Kind: KindElement, Tag: tag}
	for key, val := range props {
		if val == nil {
			continue
		}
		if name, ok := eventName(key); ok {
			if l, isHandler := asListener(val); isHandler {
				node.setListener(name, l)
				continue
			}
		}
		node.setAttr(key, stringify(val))
	}
	appendChildren(node, children)
	return node
}

// NewNS is New for a namespaced element (SVG, MathML).
func NewNS(namespace, tag string, props Props, children ...any) *VNode {
	node := New(tag, props, children...)
	node.Namespace = namespace
	return node
}

func (v *VNode) setAttr(key, value string) {
	if v.Attrs == nil {
		v.Attrs = make(map[string]string)
	}
	v.Attrs[key] = value
}

func (v *VNode) setListener(event string, l Listener) {
	if v.Listeners == nil {
		v.Listeners = make(map[string]Listener)
	}
	v.Listeners[event] = l
}

// eventName maps an "onClick"-style prop key to its event name ("click").
func eventName(key string) (string, bool) {
	if len(key) > 2 && strings.EqualFold(key[:2], "on") {
		return strings.ToLower(key[2:]), true
	}
	return "", false
}

// asListener coerces the handler shapes New accepts into a Listener.
func asListener(v any) (Listener, bool) {
	switch h := v.(type) {
	case Listener:
		return h, true
	case dom.EventHandler:
		return Listener{Handler: h}, true
	case func(dom.Event):
		return Listener{Handler: dom.EventFunc(h)}, true
	}
	return Listener{}, false
}

func appendChildren(node *VNode, children []any) {
	for _, child := range children {
		switch v := child.(type) {
		case nil:
			continue
		case *VNode:
			if v != nil {
				node.Children = append(node.Children, v)
			}
		case []*VNode:
			for _, c := range v {
				if c != nil {
					node.Children = append(node.Children, c)
				}
			}
		case string:
			node.Children = append(node.Children, Text(v))
		default:
			node.Children = append(node.Children, Text(fmt.Sprintf("%v", v)))
		}
	}
}

// stringify converts a prop value to its attribute string.
func stringify(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case bool:
		if val {
			return "true"
		}
		return "false"
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}
