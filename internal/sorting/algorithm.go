package sorting

import (
	"fmt"
	"strings"
)

// Algorithm selects one of the sorting strategies.
type Algorithm int

const (
	Bubble Algorithm = iota
	Selection
	Insertion
	Quick
	Merge
)

var algorithmOrder = []Algorithm{Bubble, Selection, Insertion, Quick, Merge}

var algorithmNames = map[Algorithm]string{
	Bubble:    "Bubble Sort",
	Selection: "Selection Sort",
	Insertion: "Insertion Sort",
	Quick:     "Quick Sort",
	Merge:     "Merge Sort",
}

var algorithmKeys = map[Algorithm]string{
	Bubble:    "bubble",
	Selection: "selection",
	Insertion: "insertion",
	Quick:     "quick",
	Merge:     "merge",
}

// All returns the algorithms in selector order.
func All() []Algorithm {
	out := make([]Algorithm, len(algorithmOrder))
	copy(out, algorithmOrder)
	return out
}

// String returns the display name, e.g. "Bubble Sort".
func (a Algorithm) String() string {
	if name, ok := algorithmNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Algorithm(%d)", int(a))
}

// Key returns the short lowercase name used in config files and flags.
func (a Algorithm) Key() string {
	return algorithmKeys[a]
}

// Valid reports whether a is one of the five known algorithms.
func (a Algorithm) Valid() bool {
	_, ok := algorithmNames[a]
	return ok
}

// Next returns the algorithm after a in selector order, wrapping around.
func (a Algorithm) Next() Algorithm {
	return algorithmOrder[(a.index()+1)%len(algorithmOrder)]
}

// Prev returns the algorithm before a in selector order, wrapping around.
func (a Algorithm) Prev() Algorithm {
	n := len(algorithmOrder)
	return algorithmOrder[(a.index()-1+n)%n]
}

func (a Algorithm) index() int {
	for i, alg := range algorithmOrder {
		if alg == a {
			return i
		}
	}
	return 0
}

// ParseAlgorithm accepts a short key ("quick"), a display name
// ("Quick Sort") or a key with a "sort" suffix ("quicksort"), ignoring case
// and surrounding whitespace.
func ParseAlgorithm(name string) (Algorithm, error) {
	normalized := strings.ToLower(strings.TrimSpace(name))
	normalized = strings.ReplaceAll(normalized, "_", " ")
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.TrimSuffix(strings.ReplaceAll(normalized, " ", ""), "sort")
	for alg, key := range algorithmKeys {
		if key == normalized {
			return alg, nil
		}
	}
	return Bubble, fmt.Errorf("unknown algorithm %q", name)
}
