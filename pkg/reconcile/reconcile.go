package reconcile

import (
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/gomorph/gomorph/pkg/component"
	"github.com/gomorph/gomorph/pkg/dom"
	"github.com/gomorph/gomorph/pkg/vdom"
	"go.opentelemetry.io/otel/trace"
)

// Reconciler mounts descriptions into a document and updates live subtrees
// in place. All mounts and updates for a subtree must go through the same
// Reconciler so the listener registry stays consistent with the tree.
type Reconciler struct {
	doc        dom.Document
	moveBefore bool
	registry   *listenerRegistry
	components *component.Registry
	instances  map[dom.Element]component.Component
	observers  []Observer
	logger     *slog.Logger
	tracer     trace.Tracer
	ops        Ops
}

// Option configures a Reconciler.
type Option func(*Reconciler)

// WithObserver registers an observer for every primitive mutation.
// May be given multiple times.
func WithObserver(obs Observer) Option {
	return func(r *Reconciler) {
		if obs != nil {
			r.observers = append(r.observers, obs)
		}
	}
}

// WithLogger sets the logger. Updates log a per-call summary at debug
// level. Defaults to a discarding logger.
func WithLogger(logger *slog.Logger) Option {
	return func(r *Reconciler) {
		if logger != nil {
			r.logger = logger
		}
	}
}

// WithComponents attaches a component registry. Elements whose tag is
// registered get their subtree rendered by a per-element component
// instance instead of the description's children.
func WithComponents(reg *component.Registry) Option {
	return func(r *Reconciler) {
		r.components = reg
	}
}

// New creates a Reconciler bound to a document. The document's move-before
// capability is probed once here.
func New(doc dom.Document, opts ...Option) *Reconciler {
	r := &Reconciler{
		doc:        doc,
		moveBefore: doc.SupportsMoveBefore(),
		registry:   newListenerRegistry(),
		instances:  make(map[dom.Element]component.Component),
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Update synchronizes a live element in place to match the description and
// returns the same element for chaining. The element's tag must match the
// description's tag (case-insensitively); a mismatch fails with
// ErrTagMismatch before anything is touched.
func (r *Reconciler) Update(el dom.Element, desc *vdom.VNode) (dom.Element, error) {
	if el == nil || desc == nil {
		return el, ErrNilNode
	}
	if desc.Kind != vdom.KindElement {
		return el, ErrNotElement
	}
	if !strings.EqualFold(el.TagName(), desc.Tag) {
		return el, tagMismatch(el.TagName(), desc.Tag)
	}

	r.ops = Ops{}
	span := r.startSpan("gomorph.update", desc.Tag)
	err := r.updateElement(el, desc)
	r.endSpan(span, err)
	r.logger.Debug("update complete",
		"tag", desc.Tag,
		"ops", r.ops.Total(),
		"moved", r.ops.Count(OpMoveNode),
		"removed", r.ops.Count(OpRemoveNode),
		"err", err)
	return el, err
}

// Mount materializes a description into a fresh, detached element.
func (r *Reconciler) Mount(desc *vdom.VNode) (dom.Element, error) {
	if desc == nil {
		return nil, ErrNilNode
	}
	if desc.Kind != vdom.KindElement {
		return nil, ErrNotElement
	}

	r.ops = Ops{}
	span := r.startSpan("gomorph.mount", desc.Tag)
	el, err := r.mountElement(desc)
	r.endSpan(span, err)
	r.logger.Debug("mount complete", "tag", desc.Tag, "ops", r.ops.Total(), "err", err)
	return el, err
}

// LastOps returns the mutation tally of the most recent Mount or Update.
func (r *Reconciler) LastOps() Ops {
	return r.ops
}

func (r *Reconciler) emit(op Op) {
	r.ops.add(op.Kind)
	for _, obs := range r.observers {
		obs.ObserveOp(op)
	}
}

// updateElement syncs attributes, listeners and children of a matched
// element. Tag identity is already guaranteed by the caller.
func (r *Reconciler) updateElement(el dom.Element, desc *vdom.VNode) error {
	changes := r.syncAttributes(el, desc.Attrs)
	r.syncListeners(el, desc.Listeners)

	if inst, ok := r.componentFor(el); ok {
		notifyAttributeChanges(inst, changes)
		return r.syncChildren(el, renderedChildren(inst))
	}
	return r.syncChildren(el, desc.Children)
}

// attrChange records one attribute delta for component callbacks.
// A removal has an empty newValue.
type attrChange struct {
	name     string
	oldValue string
	newValue string
}

// syncAttributes applies the set/update pass first and the removal pass
// second, from a snapshot of the names present before the set pass.
// Removing first could drop and re-add a name that is merely updated.
func (r *Reconciler) syncAttributes(el dom.Element, want map[string]string) []attrChange {
	existing := el.AttributeNames()

	var changes []attrChange
	names := make([]string, 0, len(want))
	for name := range want {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		value := want[name]
		current, ok := el.Attribute(name)
		if ok && current == value {
			continue
		}
		el.SetAttribute(name, value)
		r.emit(Op{Kind: OpSetAttr, Tag: el.TagName(), Name: name, Value: value})
		changes = append(changes, attrChange{name: name, oldValue: current, newValue: value})
	}

	for _, name := range existing {
		if _, ok := want[name]; ok {
			continue
		}
		old, _ := el.Attribute(name)
		el.RemoveAttribute(name)
		r.emit(Op{Kind: OpRemoveAttr, Tag: el.TagName(), Name: name})
		changes = append(changes, attrChange{name: name, oldValue: old})
	}
	return changes
}

// syncListeners diffs the registry entries against the new listener map by
// event name. Handlers are compared by identity; a changed handler or
// changed options means detach with the originally recorded options, then
// reattach.
func (r *Reconciler) syncListeners(el dom.Element, want map[string]vdom.Listener) {
	for event, entry := range r.registry.attached(el) {
		l, ok := want[event]
		if ok && sameListener(entry, l) {
			continue
		}
		el.RemoveEventListener(event, entry.handler, entry.options)
		r.registry.remove(el, event)
		r.emit(Op{Kind: OpDetachListener, Tag: el.TagName(), Name: event})
	}

	for event, l := range want {
		if l.Handler == nil {
			continue
		}
		if _, ok := r.registry.lookup(el, event); ok {
			// Survived the detach pass, so it is the same listener.
			continue
		}
		el.AddEventListener(event, l.Handler, l.Options)
		r.registry.record(el, event, listenerEntry{handler: l.Handler, options: l.Options})
		r.emit(Op{Kind: OpAttachListener, Tag: el.TagName(), Name: event})
	}
}

func sameListener(entry listenerEntry, l vdom.Listener) bool {
	return dom.SameHandler(entry.handler, l.Handler) && entry.options == l.Options
}

// childKey identifies a child for matching: elements by lowercased tag plus
// the optional key attribute, text by exact content. The two namespaces are
// kept apart so a text node never matches an element.
type childKey struct {
	text bool
	key  string
}

func liveKey(node dom.Node) (childKey, bool) {
	switch n := node.(type) {
	case dom.Element:
		k := strings.ToLower(n.TagName())
		if key, ok := n.Attribute("key"); ok {
			k += "|" + key
		}
		return childKey{key: k}, true
	case dom.Text:
		return childKey{text: true, key: n.Data()}, true
	default:
		return childKey{}, false
	}
}

func descKey(desc *vdom.VNode) childKey {
	if desc.Kind == vdom.KindText {
		return childKey{text: true, key: desc.Text}
	}
	k := strings.ToLower(desc.Tag)
	if key := desc.Key(); key != "" {
		k += "|" + key
	}
	return childKey{key: k}
}

// syncChildren is the child reconciliation pass: index live children into
// FIFO queues per key, consume matches in description order, remove the
// unconsumed leftovers, then place everything with a single back-to-front
// walk that only moves nodes that are out of position.
func (r *Reconciler) syncChildren(parent dom.Element, children []*vdom.VNode) error {
	live := parent.ChildNodes()

	queues := make(map[childKey][]dom.Node)
	for _, n := range live {
		if k, ok := liveKey(n); ok {
			queues[k] = append(queues[k], n)
		}
	}

	placed := make([]dom.Node, 0, len(children))
	for _, c := range children {
		if c == nil {
			continue
		}
		k := descKey(c)
		if q := queues[k]; len(q) > 0 {
			n := q[0]
			queues[k] = q[1:]
			if c.Kind == vdom.KindElement {
				if err := r.updateElement(n.(dom.Element), c); err != nil {
					return err
				}
			}
			// Matched text already has the right content by construction
			// of the key.
			placed = append(placed, n)
			continue
		}
		n, err := r.materialize(c)
		if err != nil {
			return err
		}
		placed = append(placed, n)
	}

	// Remove unconsumed nodes in document order.
	leftover := make(map[dom.Node]bool)
	for _, q := range queues {
		for _, n := range q {
			leftover[n] = true
		}
	}
	for _, n := range live {
		if !leftover[n] {
			continue
		}
		parent.RemoveChild(n)
		r.release(n)
		r.emit(Op{Kind: OpRemoveNode, Tag: nodeTag(n)})
	}

	// Back-to-front placement: each node's final next sibling is already in
	// position when it is used as the anchor, which keeps the move count
	// close to minimal for this greedy pass.
	var next dom.Node
	for i := len(placed) - 1; i >= 0; i-- {
		n := placed[i]
		if n.Parent() == parent {
			if n.NextSibling() != next {
				if r.moveBefore {
					parent.MoveBefore(n, next)
				} else {
					parent.InsertBefore(n, next)
				}
				r.emit(Op{Kind: OpMoveNode, Tag: nodeTag(n)})
			}
		} else {
			parent.InsertBefore(n, next)
			r.emit(Op{Kind: OpInsertNode, Tag: nodeTag(n)})
		}
		next = n
	}
	return nil
}

// release drops registry records and component instances for a removed
// subtree so the side tables do not pin removed elements.
func (r *Reconciler) release(node dom.Node) {
	el, ok := node.(dom.Element)
	if !ok {
		return
	}
	r.registry.release(el)
	delete(r.instances, el)
	for _, c := range el.ChildNodes() {
		r.release(c)
	}
}

// componentFor returns the component instance backing el, creating it on
// first contact if el's tag is registered.
func (r *Reconciler) componentFor(el dom.Element) (component.Component, bool) {
	if r.components == nil {
		return nil, false
	}
	factory, ok := r.components.Lookup(el.TagName())
	if !ok {
		return nil, false
	}
	inst := r.instances[el]
	if inst == nil {
		inst = factory()
		r.instances[el] = inst
	}
	return inst, true
}

func notifyAttributeChanges(inst component.Component, changes []attrChange) {
	obs, ok := inst.(component.AttributeObserver)
	if !ok {
		return
	}
	for _, ch := range changes {
		obs.AttributeChanged(ch.name, ch.oldValue, ch.newValue)
	}
}

func renderedChildren(inst component.Component) []*vdom.VNode {
	rendered := inst.Render()
	if rendered == nil {
		return nil
	}
	return []*vdom.VNode{rendered}
}

func nodeTag(node dom.Node) string {
	if el, ok := node.(dom.Element); ok {
		return el.TagName()
	}
	return "#text"
}
