// Package vdom provides the virtual node descriptions for gomorph.
//
// A VNode is a plain-data description of a desired element or text node:
// tag name, optional namespace, string attributes, event listeners and
// children. Descriptions are built once and never mutated by the library;
// the materializer and reconciler in package reconcile consume them.
//
// # Building descriptions
//
// The generic constructor classifies a property map the way hyperscript
// style DOM helpers do ("on"-prefixed handler values become listeners,
// everything else becomes a stringified attribute):
//
//	vdom.New("button", vdom.Props{
//	    "class":   "primary",
//	    "onClick": func(e dom.Event) { ... },
//	}, "Save")
//
// Element factories offer the same thing with more type safety:
//
//	Div(Class("card"), Key("42"),
//	    H1(Text("Title")),
//	    OnClick(handler),
//	)
//
// # Keys
//
// The reconciliation key is carried as a real attribute under the reserved
// name "key". Keys disambiguate same-tag siblings; they should be unique
// among siblings sharing a tag name, which is not enforced.
package vdom
