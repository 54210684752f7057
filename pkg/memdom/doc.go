// Package memdom is an in-memory implementation of the dom interfaces.
//
// It backs the test suite, the demo server's per-session trees and the
// snapshot tooling: a small synchronous DOM with ordered children,
// insertion-ordered attributes, event listener attachment honoring the Once
// option, and single-node event dispatch (no capture or bubble phases).
//
// Serialization via OuterHTML produces deterministic markup: attributes are
// emitted in sorted order and text content is HTML-escaped, so two trees
// with the same logical state serialize identically.
//
// memdom is not safe for concurrent use; like the reconciler it assumes
// exclusive access to a tree between calls.
package memdom
