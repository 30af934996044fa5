package sorting

import (
	"iter"

	"github.com/five82/sortviz/internal/array"
)

// Op describes what a step did. A step can both compare and mutate.
type Op uint8

const (
	OpCompare Op = 1 << iota
	OpSwap
	OpWrite
)

// Step is one unit of algorithm progress. Counters are cumulative after the
// step has been applied.
type Step struct {
	Op          Op
	First       int
	Second      int
	Comparisons int
	Swaps       int
}

// Has reports whether the step includes op.
func (s Step) Has(op Op) bool {
	return s.Op&op != 0
}

// Mutates reports whether the step changed the array.
func (s Step) Mutates() bool {
	return s.Has(OpSwap | OpWrite)
}

// Steps returns the algorithm as a lazy sequence of steps that sorts st in
// place. Stopping the iteration early stops the algorithm; the values are
// then left as a permutation of the input, partially sorted.
//
// The sequence consumes the array as it goes, so ranging over it a second
// time starts a new run on whatever order the array is in by then.
func (a Algorithm) Steps(st *array.State) iter.Seq[Step] {
	return func(yield func(Step) bool) {
		s := &stepper{st: st, yield: yield}
		n := st.Len()
		switch a {
		case Bubble:
			bubbleSort(s)
		case Selection:
			selectionSort(s)
		case Insertion:
			insertionSort(s)
		case Quick:
			quickSort(s, 0, n-1)
		case Merge:
			mergeSort(s, 0, n-1)
		}
	}
}

// stepper forwards array mutations as steps to the consumer.
type stepper struct {
	st    *array.State
	yield func(Step) bool
}

func (s *stepper) emit(op Op) bool {
	return s.yield(Step{
		Op:          op,
		First:       s.st.Highlight.First,
		Second:      s.st.Highlight.Second,
		Comparisons: s.st.Comparisons,
		Swaps:       s.st.Swaps,
	})
}
