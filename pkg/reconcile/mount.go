package reconcile

import (
	"sort"

	"github.com/gomorph/gomorph/pkg/dom"
	"github.com/gomorph/gomorph/pkg/vdom"
)

// materialize turns one description into a detached live node.
func (r *Reconciler) materialize(desc *vdom.VNode) (dom.Node, error) {
	if desc.Kind == vdom.KindText {
		t := r.doc.CreateTextNode(desc.Text)
		r.emit(Op{Kind: OpCreateText, Tag: "#text", Value: desc.Text})
		return t, nil
	}
	return r.mountElement(desc)
}

// mountElement materializes an element description: create, apply
// attributes and listeners in deterministic order, then recurse into
// children. Creation errors from the document surface unchanged.
func (r *Reconciler) mountElement(desc *vdom.VNode) (dom.Element, error) {
	var el dom.Element
	var err error
	if desc.Namespace != "" {
		el, err = r.doc.CreateElementNS(desc.Namespace, desc.Tag)
	} else {
		el, err = r.doc.CreateElement(desc.Tag)
	}
	if err != nil {
		return nil, err
	}
	r.emit(Op{Kind: OpCreateElement, Tag: desc.Tag})

	names := make([]string, 0, len(desc.Attrs))
	for name := range desc.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		el.SetAttribute(name, desc.Attrs[name])
		r.emit(Op{Kind: OpSetAttr, Tag: desc.Tag, Name: name, Value: desc.Attrs[name]})
	}

	events := make([]string, 0, len(desc.Listeners))
	for event := range desc.Listeners {
		events = append(events, event)
	}
	sort.Strings(events)
	for _, event := range events {
		l := desc.Listeners[event]
		if l.Handler == nil {
			continue
		}
		el.AddEventListener(event, l.Handler, l.Options)
		r.registry.record(el, event, listenerEntry{handler: l.Handler, options: l.Options})
		r.emit(Op{Kind: OpAttachListener, Tag: desc.Tag, Name: event})
	}

	children := desc.Children
	if inst, ok := r.componentFor(el); ok {
		children = renderedChildren(inst)
	}
	for _, child := range children {
		if child == nil {
			continue
		}
		node, err := r.materialize(child)
		if err != nil {
			return nil, err
		}
		el.InsertBefore(node, nil)
		r.emit(Op{Kind: OpInsertNode, Tag: nodeTag(node)})
	}
	return el, nil
}
