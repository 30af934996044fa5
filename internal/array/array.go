package array

import (
	"fmt"
	"math/rand/v2"
)

// Defaults for a freshly generated array: 50 values in [10, 310).
const (
	DefaultSize = 50
	DefaultMin  = 10
	DefaultSpan = 300
)

// Highlight marks the two positions most recently compared. A value of -1
// means unset.
type Highlight struct {
	First  int
	Second int
}

// NoHighlight is the cleared highlight.
var NoHighlight = Highlight{First: -1, Second: -1}

// IsSet reports whether at least one index is highlighted.
func (h Highlight) IsSet() bool {
	return h.First >= 0 || h.Second >= 0
}

// Has reports whether idx is one of the highlighted positions.
func (h Highlight) Has(idx int) bool {
	return idx >= 0 && (idx == h.First || idx == h.Second)
}

// State holds the working array, the array as it was after the last
// generate, and the running counters.
type State struct {
	Values      []int
	Original    []int
	Comparisons int
	Swaps       int
	Highlight   Highlight

	size int
	min  int
	span int
	rng  *rand.Rand
}

// New builds a State with size random values in [min, min+span). A nil rng
// uses a randomly seeded source.
func New(size, min, span int, rng *rand.Rand) (*State, error) {
	if size < 1 {
		return nil, fmt.Errorf("array size must be positive, got %d", size)
	}
	if span < 1 {
		return nil, fmt.Errorf("value span must be positive, got %d", span)
	}
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := &State{
		Values:    make([]int, size),
		Original:  make([]int, size),
		Highlight: NoHighlight,
		size:      size,
		min:       min,
		span:      span,
		rng:       rng,
	}
	s.Generate()
	return s, nil
}

// FromValues builds a State over a copy of values. Shuffle on such a state
// draws from [DefaultMin, DefaultMin+DefaultSpan).
func FromValues(values []int) *State {
	s := &State{
		Values:    append([]int(nil), values...),
		Original:  append([]int(nil), values...),
		Highlight: NoHighlight,
		size:      len(values),
		min:       DefaultMin,
		span:      DefaultSpan,
		rng:       rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	return s
}

// Len returns the fixed array length.
func (s *State) Len() int { return len(s.Values) }

// Generate refills Values with uniform random integers and records them as
// the new Original.
func (s *State) Generate() {
	for i := range s.Values {
		s.Values[i] = s.min + s.rng.IntN(s.span)
	}
	copy(s.Original, s.Values)
}

// Reset restores Values from Original and clears counters and highlight.
func (s *State) Reset() {
	copy(s.Values, s.Original)
	s.ResetStats()
}

// Shuffle generates a new array, which also becomes the reset target.
func (s *State) Shuffle() {
	s.Generate()
	s.ResetStats()
}

// ResetStats zeroes both counters and clears the highlight.
func (s *State) ResetStats() {
	s.Comparisons = 0
	s.Swaps = 0
	s.Highlight = NoHighlight
}

// Compare counts a comparison between i and j and highlights them.
func (s *State) Compare(i, j int) {
	s.Comparisons++
	s.Highlight = Highlight{First: i, Second: j}
}

// Mark highlights i and j without counting anything.
func (s *State) Mark(i, j int) {
	s.Highlight = Highlight{First: i, Second: j}
}

// Swap exchanges two elements and counts a swap.
func (s *State) Swap(i, j int) {
	s.Values[i], s.Values[j] = s.Values[j], s.Values[i]
	s.Swaps++
}

// Write stores v at k and counts it as a swap.
func (s *State) Write(k, v int) {
	s.Values[k] = v
	s.Swaps++
}

// Clone returns a copy of the current values.
func (s *State) Clone() []int {
	return append([]int(nil), s.Values...)
}
