package server

import (
	"fmt"
	"sync"

	"github.com/gomorph/gomorph/pkg/dom"
	"github.com/gomorph/gomorph/pkg/memdom"
	"github.com/gomorph/gomorph/pkg/reconcile"
	"github.com/gomorph/gomorph/pkg/vdom"
)

// RootFunc produces the current root description for a session. It is
// called once on connect and again after every dispatched event.
type RootFunc func(s *Session) *vdom.VNode

// Session is one live tree bound to one websocket connection.
type Session struct {
	ID string

	mu     sync.Mutex
	values map[string]any

	doc  *memdom.Document
	rec  *reconcile.Reconciler
	root dom.Element
}

// Set stores session-scoped state, typically from event handlers.
func (s *Session) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
}

// Get returns session-scoped state.
func (s *Session) Get(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.values[key]
	return v, ok
}

// GetInt returns an int value, or 0 when absent or of another type.
func (s *Session) GetInt(key string) int {
	v, ok := s.Get(key)
	if !ok {
		return 0
	}
	n, _ := v.(int)
	return n
}

// Root returns the session's live root element.
func (s *Session) Root() dom.Element {
	return s.root
}

// HTML returns the serialized markup of the live root.
func (s *Session) HTML() string {
	return memdom.OuterHTML(s.root)
}

// mount materializes the initial tree.
func (s *Session) mount(root RootFunc) error {
	el, err := s.rec.Mount(root(s))
	if err != nil {
		return fmt.Errorf("session %s: mount: %w", s.ID, err)
	}
	s.root = el
	return nil
}

// dispatch delivers an event to the element with the given id attribute,
// then reconciles the tree against a fresh root description. It returns
// the reconciler's op tally.
func (s *Session) dispatch(root RootFunc, eventType, targetID string) (reconcile.Ops, error) {
	target := findByID(s.root, targetID)
	if target == nil {
		return reconcile.Ops{}, fmt.Errorf("session %s: no element with id %q", s.ID, targetID)
	}
	target.DispatchEvent(eventType)

	if _, err := s.rec.Update(s.root, root(s)); err != nil {
		return reconcile.Ops{}, fmt.Errorf("session %s: update: %w", s.ID, err)
	}
	return s.rec.LastOps(), nil
}

// findByID walks the subtree looking for an element with a matching id
// attribute. Returns the concrete memdom element so events can be
// dispatched on it.
func findByID(node dom.Node, id string) *memdom.Element {
	el, ok := node.(*memdom.Element)
	if !ok {
		return nil
	}
	if v, ok := el.Attribute("id"); ok && v == id {
		return el
	}
	for _, child := range el.ChildNodes() {
		if found := findByID(child, id); found != nil {
			return found
		}
	}
	return nil
}
