// Package sorting implements the five animated sorting algorithms.
//
// Every algorithm is exposed through the same contract,
//
//	func (a Algorithm) Steps(st *array.State) iter.Seq[Step]
//
// which sorts the array in place and yields one Step per unit of progress:
// a comparison, a mutation (swap or single-element write), or both. The
// Step carries the highlighted pair and the cumulative counters, so a
// consumer can render progress without touching the array's internals.
//
// The package has no notion of time or of a user interface; pacing and
// publishing are the runner's job.
//
// Counting rules:
//
//   - Bubble: compare (j, j+1) for every inner iteration, swapping when the
//     left value is larger. Compare and swap are reported as one step.
//   - Selection: compare (i, j) for every candidate; one swap step per pass
//     when a smaller value was found.
//   - Insertion: compare (j, j+1) while scanning back; every shift is a
//     counted write. The final placement of the key is silent.
//   - Quick: Lomuto partition, pivot = last element. Every move below the
//     pivot is a counted swap, including self-swaps, plus the pivot swap.
//   - Merge: every element written into the merged region counts as a
//     swap, including plain tail copies.
package sorting
