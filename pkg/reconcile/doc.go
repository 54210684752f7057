// Package reconcile materializes virtual node descriptions into live DOM
// nodes and updates live trees in place to match new descriptions.
//
// # Mounting and updating
//
//	r := reconcile.New(doc)
//	el, err := r.Mount(description)        // build a fresh subtree
//	el, err = r.Update(el, description2)   // sync it in place
//
// Update reuses existing nodes wherever the child matching permits:
// element children are matched by tag name plus the optional "key"
// attribute, text children by exact content. Matched elements are
// reconciled recursively; unmatched live nodes are removed; brand-new
// descriptions are materialized. A final back-to-front placement pass
// moves only the nodes that are out of position, using the document's
// move-before primitive when it has one.
//
// # Listener registry
//
// The reconciler keeps a per-element side table of the listeners it has
// attached, so listener deltas are computed without re-reading the DOM.
// Handlers are compared by identity (see dom.SameHandler); passing a fresh
// closure on every update detaches and reattaches the listener each time.
// All mounts and updates for a given subtree must go through the same
// Reconciler, otherwise the table and the live tree drift apart.
//
// # Failure semantics
//
// Updating an element whose tag differs from the description's tag is a
// programmer error and fails with ErrTagMismatch before anything is
// touched. Errors raised mid-update propagate immediately; the tree may be
// left partially updated. There is no transactional rollback.
//
// The reconciler is synchronous and single-threaded: concurrent calls
// against overlapping subtrees are undefined behavior.
package reconcile
