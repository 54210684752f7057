// Package server provides the gomorph live-view demo server.
//
// Each websocket connection gets a session holding an in-memory DOM tree.
// The server mounts the app's root description into the tree, and on every
// event frame from the client it dispatches the event into the tree,
// re-renders the root description and reconciles the tree in place. The
// client receives the resulting markup plus the mutation count, which makes
// the reconciler's work directly observable during development.
//
// Routes: GET / serves the rendered page, GET /ws upgrades to the session
// websocket, POST /snapshots/{name} stores a rendering in the configured
// snapshot store, GET /metrics exposes Prometheus metrics and GET /healthz
// answers liveness probes.
package server
