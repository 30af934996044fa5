package state

import (
	"errors"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/five82/sortviz/internal/array"
	"github.com/five82/sortviz/internal/sorting"
)

func TestStore_ZeroValue(t *testing.T) {
	var s Store

	snap := s.Snapshot()
	if snap.Version != 0 || snap.Run != Idle || snap.Values != nil {
		t.Fatalf("zero snapshot = %#v, want empty idle snapshot", snap)
	}
	if snap.Highlight.IsSet() {
		t.Fatalf("zero snapshot highlight = %+v, want cleared", snap.Highlight)
	}
	if s.Version() != 0 {
		t.Fatalf("Version() = %d, want 0", s.Version())
	}
}

func TestStore_UpdateAndSnapshotClone(t *testing.T) {
	var s Store

	values := []int{3, 1, 2}
	before := time.Now()
	v := s.Update(Snapshot{
		Values:      values,
		Highlight:   array.Highlight{First: 0, Second: 1},
		Comparisons: 4,
		Swaps:       2,
		Algorithm:   sorting.Quick,
		Run:         Running,
		Status:      "Running: Quick Sort",
	})
	if v != 1 {
		t.Fatalf("Update returned version %d, want 1", v)
	}

	// The caller's slice must not leak into the store.
	values[0] = 99

	snap := s.Snapshot()
	if snap.Values[0] != 3 {
		t.Fatalf("Update should clone values; got %v", snap.Values)
	}
	if snap.Comparisons != 4 || snap.Swaps != 2 || snap.Algorithm != sorting.Quick || !snap.Running() {
		t.Fatalf("snapshot = %#v, want published fields", snap)
	}
	if snap.UpdatedAt.Before(before) {
		t.Fatalf("UpdatedAt = %v, want >= %v", snap.UpdatedAt, before)
	}

	snap.Values[1] = 999
	if again := s.Snapshot(); again.Values[1] != 1 {
		t.Fatalf("Snapshot should clone values; got %v", again.Values)
	}
}

func TestStore_VersionIncreases(t *testing.T) {
	var s Store
	for i := 1; i <= 5; i++ {
		if got := s.Update(Snapshot{Values: []int{i}}); got != uint64(i) {
			t.Fatalf("Update #%d returned version %d", i, got)
		}
	}
	if s.Version() != 5 {
		t.Fatalf("Version() = %d, want 5", s.Version())
	}
}

func TestStore_ClonesError(t *testing.T) {
	var s Store
	origErr := errors.New("boom")
	s.Update(Snapshot{LastError: origErr})

	snap := s.Snapshot()
	if !errors.Is(snap.LastError, origErr) {
		t.Fatalf("LastError = %v, want it to wrap boom", snap.LastError)
	}
	if reflect.ValueOf(snap.LastError).Pointer() == reflect.ValueOf(origErr).Pointer() {
		t.Fatalf("Snapshot should clone error instance")
	}
}

func TestStore_ConcurrentReadersSeeWholeSnapshots(t *testing.T) {
	var s Store
	const n = 16

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for round := 0; round < 500; round++ {
			values := make([]int, n)
			for i := range values {
				values[i] = round
			}
			s.Update(Snapshot{Values: values, Comparisons: round})
		}
	}()

	for read := 0; read < 500; read++ {
		snap := s.Snapshot()
		for _, v := range snap.Values {
			if v != snap.Comparisons {
				t.Fatalf("torn snapshot: values %v with comparisons %d", snap.Values, snap.Comparisons)
			}
		}
	}
	wg.Wait()
}

func TestSnapshot_MaxValue(t *testing.T) {
	if got := (Snapshot{}).MaxValue(); got != 0 {
		t.Fatalf("MaxValue(empty) = %d, want 0", got)
	}
	if got := (Snapshot{Values: []int{-5, -2, -9}}).MaxValue(); got != -2 {
		t.Fatalf("MaxValue = %d, want -2", got)
	}
	if got := (Snapshot{Values: []int{10, 310, 42}}).MaxValue(); got != 310 {
		t.Fatalf("MaxValue = %d, want 310", got)
	}
}

func TestRunState_String(t *testing.T) {
	if Idle.String() != "idle" || Running.String() != "running" || Completed.String() != "completed" {
		t.Fatalf("unexpected RunState strings")
	}
}
