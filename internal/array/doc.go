// Package array holds the array being sorted together with its counters.
//
// A State carries the working values, the values as they were right after
// the last Generate (the reset target), the comparison and swap counters,
// and the highlight of the two positions most recently compared.
//
// Shuffle redefines what Reset returns to: there is no separate copy of the
// first array ever generated.
//
// State is not safe for concurrent use. The runner package owns the single
// State of a session and publishes copies of it for rendering.
package array
