package reconcile

import "github.com/gomorph/gomorph/pkg/dom"

// listenerEntry records one attached listener: the handler and the options
// it was attached with, so detachment can pass the same options back.
type listenerEntry struct {
	handler dom.EventHandler
	options dom.ListenerOptions
}

// listenerRegistry is the per-element side table of currently attached
// listeners. Its invariant: for every element the entry set equals the set
// of listeners actually attached through the reconciler. Entries are
// created lazily on first attach; the element's whole record is dropped
// when the reconciler removes the element, since a map key would otherwise
// pin the element in memory.
type listenerRegistry struct {
	byElement map[dom.Element]map[string]listenerEntry
}

func newListenerRegistry() *listenerRegistry {
	return &listenerRegistry{byElement: make(map[dom.Element]map[string]listenerEntry)}
}

// attached returns the live entry map for el, or nil if none exists.
func (r *listenerRegistry) attached(el dom.Element) map[string]listenerEntry {
	return r.byElement[el]
}

// lookup returns the entry recorded for an element's event.
func (r *listenerRegistry) lookup(el dom.Element, event string) (listenerEntry, bool) {
	entry, ok := r.byElement[el][event]
	return entry, ok
}

// record stores an entry, creating the element's map on first use.
func (r *listenerRegistry) record(el dom.Element, event string, entry listenerEntry) {
	m := r.byElement[el]
	if m == nil {
		m = make(map[string]listenerEntry)
		r.byElement[el] = m
	}
	m[event] = entry
}

// remove deletes a single event entry.
func (r *listenerRegistry) remove(el dom.Element, event string) {
	if m := r.byElement[el]; m != nil {
		delete(m, event)
		if len(m) == 0 {
			delete(r.byElement, el)
		}
	}
}

// release drops the whole record for an element.
func (r *listenerRegistry) release(el dom.Element) {
	delete(r.byElement, el)
}
