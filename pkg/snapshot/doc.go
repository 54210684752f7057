// Package snapshot stores rendered HTML snapshots of live trees.
//
// The demo server saves a snapshot of each session's tree on demand, and
// the CLI's render command can publish its output. Two backends are
// provided: an in-memory store for tests and development, and an S3 store
// for durable publishing.
package snapshot
