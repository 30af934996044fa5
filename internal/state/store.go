package state

import (
	"fmt"
	"sync/atomic"
	"time"

	"github.com/five82/sortviz/internal/array"
	"github.com/five82/sortviz/internal/sorting"
)

// RunState is the lifecycle of a sorting run.
type RunState int

const (
	Idle RunState = iota
	Running
	Completed
)

func (r RunState) String() string {
	switch r {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Completed:
		return "completed"
	default:
		return fmt.Sprintf("RunState(%d)", int(r))
	}
}

// Snapshot is an immutable view of the array and run at one point in time.
type Snapshot struct {
	Values      []int
	Highlight   array.Highlight
	Comparisons int
	Swaps       int
	Algorithm   sorting.Algorithm
	Run         RunState
	Status      string
	LastError   error
	Version     uint64
	UpdatedAt   time.Time
}

// Running reports whether a run was active when the snapshot was taken.
func (s Snapshot) Running() bool {
	return s.Run == Running
}

// MaxValue returns the largest value, or zero for an empty array.
func (s Snapshot) MaxValue() int {
	top := 0
	for i, v := range s.Values {
		if i == 0 || v > top {
			top = v
		}
	}
	return top
}

// Store hands snapshots from the single writer (the runner) to readers (the
// UI). Publishing swaps a pointer, so readers never block the writer.
type Store struct {
	current atomic.Pointer[Snapshot]
	version atomic.Uint64
}

// Update publishes snap as the latest snapshot. Values are copied, and the
// version and timestamp are assigned by the store.
func (s *Store) Update(snap Snapshot) uint64 {
	snap.Values = cloneValues(snap.Values)
	snap.Version = s.version.Add(1)
	snap.UpdatedAt = time.Now()
	s.current.Store(&snap)
	return snap.Version
}

// Snapshot returns a copy of the latest snapshot. The zero Snapshot (with
// Idle run state and version 0) is returned before the first Update.
func (s *Store) Snapshot() Snapshot {
	cur := s.current.Load()
	if cur == nil {
		return Snapshot{Highlight: array.NoHighlight}
	}
	snap := *cur
	snap.Values = cloneValues(cur.Values)
	if cur.LastError != nil {
		snap.LastError = fmt.Errorf("%w", cur.LastError)
	}
	return snap
}

// Version returns the version of the latest snapshot without copying it.
func (s *Store) Version() uint64 {
	cur := s.current.Load()
	if cur == nil {
		return 0
	}
	return cur.Version
}

func cloneValues(values []int) []int {
	if len(values) == 0 {
		return nil
	}
	dup := make([]int, len(values))
	copy(dup, values)
	return dup
}
