// Package render serializes virtual node descriptions to HTML.
//
// The renderer is used for server-side rendering of initial pages, for
// snapshots, and by tests that compare a rendered description against the
// serialized form of a mounted tree. To make those comparisons meaningful
// the output is deterministic: attributes are emitted in sorted name order
// and text is escaped exactly like memdom's serializer.
//
// Event listeners have no HTML representation and are skipped; wiring them
// up on a live tree is the reconciler's job.
package render
