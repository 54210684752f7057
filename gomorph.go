// Package gomorph provides the public API for the gomorph DOM
// reconciliation library.
//
// This is the recommended import for most applications:
//
//	import "github.com/gomorph/gomorph"
//
// Usage:
//
//	doc := memdom.NewDocument()
//	rec := gomorph.New(doc)
//	root, _ := rec.Mount(gomorph.Div(gomorph.ID("app"), gomorph.Text("hello")))
//	rec.Update(root, gomorph.Div(gomorph.ID("app"), gomorph.Text("world")))
package gomorph

import (
	"github.com/gomorph/gomorph/pkg/dom"
	"github.com/gomorph/gomorph/pkg/reconcile"
	"github.com/gomorph/gomorph/pkg/vdom"
)

// =============================================================================
// Reconciler (re-export from pkg/reconcile)
// =============================================================================

// Reconciler synchronizes live DOM trees with virtual node descriptions.
type Reconciler = reconcile.Reconciler

// Option configures a Reconciler.
type Option = reconcile.Option

// Ops is the per-pass mutation tally.
type Ops = reconcile.Ops

// New creates a Reconciler bound to a document.
var New = reconcile.New

// WithObserver registers a mutation observer.
var WithObserver = reconcile.WithObserver

// WithLogger sets the reconciler's logger.
var WithLogger = reconcile.WithLogger

// WithComponents binds a component registry.
var WithComponents = reconcile.WithComponents

// WithTracing enables OpenTelemetry spans around reconcile passes.
var WithTracing = reconcile.WithTracing

// =============================================================================
// Descriptions (re-export from pkg/vdom)
// =============================================================================

// VNode is an immutable description of a DOM subtree.
type VNode = vdom.VNode

// Props is the generic property map accepted by the builder.
type Props = vdom.Props

// Listener pairs an event handler with its subscription options.
type Listener = vdom.Listener

// Text creates a text description.
var Text = vdom.Text

// Textf creates a formatted text description.
var Textf = vdom.Textf

// Common element factories.
var (
	Div    = vdom.Div
	Span   = vdom.Span
	P      = vdom.P
	H1     = vdom.H1
	Ul     = vdom.Ul
	Li     = vdom.Li
	Button = vdom.Button
	Input  = vdom.Input
	Form   = vdom.Form
	A      = vdom.A
	Img    = vdom.Img
)

// Common attribute helpers.
var (
	ID    = vdom.ID
	Class = vdom.Class
	Key   = vdom.Key
	Value = vdom.Value
	Href  = vdom.Href
	Src   = vdom.Src
)

// Event helpers.
var (
	On       = vdom.On
	OnClick  = vdom.OnClick
	OnInput  = vdom.OnInput
	OnChange = vdom.OnChange
	OnSubmit = vdom.OnSubmit
)

// =============================================================================
// DOM boundary (re-export from pkg/dom)
// =============================================================================

// Document is the factory side of the DOM boundary.
type Document = dom.Document

// Element is a live element node.
type Element = dom.Element

// Event is a delivered DOM event.
type Event = dom.Event

// EventHandler receives delivered events.
type EventHandler = dom.EventHandler

// EventFunc adapts a function to an EventHandler.
type EventFunc = dom.EventFunc

// ListenerOptions mirror addEventListener's option bag.
type ListenerOptions = dom.ListenerOptions
