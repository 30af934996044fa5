// Package state hands sorting progress from the runner to the UI.
//
// # Overview
//
// The runner mutates a single array on its own goroutine while the UI
// renders on another. Instead of sharing the array, the runner publishes an
// immutable Snapshot after every step and the UI reads the latest one on
// each frame.
//
//	Producer (runner):             Consumer (UI):
//	┌────────────────┐            ┌─────────────────┐
//	│ step applied   │            │ frame tick      │
//	│      ↓         │            │      ↓          │
//	│ store.Update() │───────────→│ store.Snapshot()│
//	│      ↓         │  (atomic)  │      ↓          │
//	│ pacing delay   │            │ render bars     │
//	└────────────────┘            └─────────────────┘
//
// # Concurrency Model
//
// Store keeps the latest snapshot behind an atomic pointer. Update copies
// the values, stamps a version and publication time, and swaps the pointer;
// Snapshot loads the pointer and copies again. Neither side takes a lock, and
// a reader always sees one whole snapshot, never a mix of two steps.
//
// The version counter lets the UI skip frames when nothing changed since the
// last paint. Intermediate snapshots may be skipped entirely; only the latest
// one is ever rendered.
//
// # Run State
//
// RunState (Idle, Running, Completed) travels inside each snapshot so the
// control surface can enable or disable its actions from the same view it
// paints.
//
// # Testing Considerations
//
// The zero Store is ready to use and returns an Idle snapshot with version
// zero until the first Update.
package state
