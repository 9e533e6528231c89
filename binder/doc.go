// Package binder implements an ordered key-value container with value
// semantics and cheap copies.
//
// # Motivation
//
// Callers that need many logical snapshots of an evolving ordered collection
// (undo history, versioned configuration) cannot afford a full copy on every
// duplication. A Binder defers that cost: copies share one underlying
// snapshot until a mutation forces divergence (copy on write).
//
// The interesting machinery is the ownership protocol, not the container
// itself:
//
//  1. Every mutating operation first validates its preconditions against the
//     current snapshot, then asks for a safe-to-mutate target. If the
//     snapshot is shared by more than one live handle, the target is a fresh
//     clone; otherwise it is the snapshot itself.
//  2. All fallible work happens against that target. The handle's own state
//     is untouched until the operation is certain to succeed.
//  3. A single commit step installs the target and clears the unshareable
//     flag. Commit cannot fail, so a mutation either completes fully or
//     leaves every handle (including aliases of the same snapshot) exactly
//     as it was.
//
// # Escaped references
//
// Read returns a live pointer into the snapshot's value storage. From that
// point the snapshot can be mutated behind the container's back, so the
// handle is marked unshareable: a subsequent Clone performs a real deep copy
// instead of sharing. The mark is conservative; it is applied whether or not
// the caller ever writes through the pointer.
//
// # Snapshot representation
//
// A snapshot owns an arena of entries addressed by stable slot references.
// Sequence order is a doubly-linked thread through the arena and the key
// index maps keys to slots, never to Go pointers. Cloning is therefore an
// explicit rebuild of the slot relation rather than pointer surgery, and a
// failed clone can be discarded without touching the original.
//
// # Concurrency
//
// None. Handles and snapshots carry no internal synchronization. Concurrent
// mutation of handles sharing a snapshot, and concurrent Clone/Clear of any
// handle, require external synchronization by the caller.
package binder
