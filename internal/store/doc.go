// Package store provides file-based persistence for the bank snapshot.
//
// It contains the concrete implementation of domain.SnapshotStore,
// serialising the snapshot as indented JSON on disk. Writes go through a
// temp file and rename so an interrupted save never leaves a half-written
// snapshot in place. Methods are concurrency-safe via internal locking.
package store
