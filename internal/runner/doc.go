// Package runner drives animated sorting runs.
//
// A Driver is the single owner of the array. Start executes the chosen
// algorithm's step sequence on its own goroutine, publishing a
// state.Snapshot after every step and then waiting the pacing delay. The
// delay is the only suspension point of a run; it honours context
// cancellation, so Stop or cancelling the context passed to Start (for
// example on SIGINT or when the UI exits) aborts the run between two steps
// with the array left as a valid, partially sorted permutation.
//
// Only one run may be active. Start returns ErrAlreadyRunning and Reset or
// Shuffle return ErrInvalidOperation while it is; callers treat both as
// no-ops.
//
// When a run ends, the driver publishes a Completed snapshot with the
// highlight cleared, then returns to Idle and publishes again.
package runner
