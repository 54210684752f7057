// Package dom defines the document-object-model boundary the gomorph core
// talks to.
//
// The materializer and reconciler never touch a concrete DOM directly; they
// go through the Document, Element and Text interfaces defined here. Any
// host environment that can create nodes, read and write attributes, manage
// event listeners and reorder children can back the core: the in-memory
// implementation in package memdom is the reference, a js/wasm binding or a
// parsed HTML tree are equally valid.
//
// # Node identity
//
// Nodes are compared by interface identity. Implementations must return the
// same interface value for the same underlying node so that the reconciler
// can reuse nodes and detect "already in position" during placement.
//
// # Move support
//
// MoveBefore is an optional optimization over remove+insert that keeps node
// state (focus, playback position) intact. Implementations that cannot move
// report false from SupportsMoveBefore and the reconciler falls back to
// InsertBefore. The capability is probed once, not per call.
package dom
