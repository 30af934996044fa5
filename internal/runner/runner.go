package runner

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/five82/sortviz/internal/array"
	"github.com/five82/sortviz/internal/sorting"
	"github.com/five82/sortviz/internal/state"
)

// DefaultDelay is the pacing delay between two steps.
const DefaultDelay = 50 * time.Millisecond

var (
	// ErrAlreadyRunning is returned by Start while a run is active.
	ErrAlreadyRunning = errors.New("a sorting run is already active")
	// ErrInvalidOperation is returned by Reset and Shuffle while a run is active.
	ErrInvalidOperation = errors.New("operation not allowed while a sorting run is active")
)

// SleepFunc waits for d or until ctx is done, returning ctx.Err() in the
// latter case.
type SleepFunc func(ctx context.Context, d time.Duration) error

// Options configure a Driver.
type Options struct {
	Store     *state.Store
	Logger    *slog.Logger
	Size      int // zero uses array.DefaultSize
	Min       int
	Span      int // zero uses the default range [10, 310), ignoring Min
	Delay     time.Duration
	Algorithm sorting.Algorithm // shown in snapshots before the first run
	Rand      *rand.Rand        // nil uses a randomly seeded source
	Sleep     SleepFunc         // nil uses a timer
}

// Driver owns the array and runs at most one sorting algorithm at a time,
// publishing a snapshot to the store after every step.
type Driver struct {
	store  *state.Store
	logger *slog.Logger
	delay  time.Duration
	sleep  SleepFunc

	mu     sync.Mutex
	arr    *array.State
	run    state.RunState
	alg    sorting.Algorithm
	status string
	err    error
	cancel context.CancelFunc
	done   chan struct{}
}

// New generates the initial array and publishes it.
func New(opts Options) (*Driver, error) {
	if opts.Store == nil {
		return nil, fmt.Errorf("runner requires a snapshot store")
	}
	size := opts.Size
	if size == 0 {
		size = array.DefaultSize
	}
	lo, span := opts.Min, opts.Span
	if span == 0 {
		lo, span = array.DefaultMin, array.DefaultSpan
	}
	if opts.Delay < 0 {
		return nil, fmt.Errorf("pacing delay must not be negative, got %v", opts.Delay)
	}
	if !opts.Algorithm.Valid() {
		return nil, fmt.Errorf("unknown algorithm %v", opts.Algorithm)
	}

	arr, err := array.New(size, lo, span, opts.Rand)
	if err != nil {
		return nil, fmt.Errorf("generate array: %w", err)
	}

	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	sleep := opts.Sleep
	if sleep == nil {
		sleep = sleepContext
	}

	d := &Driver{
		store:  opts.Store,
		logger: logger,
		delay:  opts.Delay,
		sleep:  sleep,
		arr:    arr,
		alg:    opts.Algorithm,
		status: "Ready",
	}
	d.mu.Lock()
	d.publishLocked()
	d.mu.Unlock()
	return d, nil
}

// Delay returns the pacing delay between steps.
func (d *Driver) Delay() time.Duration {
	return d.delay
}

// State returns the current run state.
func (d *Driver) State() state.RunState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.run
}

// Start runs alg on a new goroutine. It returns ErrAlreadyRunning without
// touching the array when a run is active. Cancelling ctx aborts the run at
// its next pacing delay.
func (d *Driver) Start(ctx context.Context, alg sorting.Algorithm) error {
	if !alg.Valid() {
		return fmt.Errorf("start: unknown algorithm %v", alg)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	if d.run != state.Idle {
		d.logger.Debug("start rejected", "algorithm", alg.Key(), "run", d.run.String())
		return ErrAlreadyRunning
	}

	d.arr.ResetStats()
	d.run = state.Running
	d.alg = alg
	d.status = "Running: " + alg.String()
	d.err = nil

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	d.cancel = cancel
	d.done = done
	d.publishLocked()

	go d.execute(runCtx, alg, done)
	return nil
}

// Stop aborts the active run at its next pacing delay. It is a no-op when
// no run is active.
func (d *Driver) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.cancel != nil {
		d.cancel()
	}
}

// Wait blocks until no run is active or ctx is done.
func (d *Driver) Wait(ctx context.Context) error {
	d.mu.Lock()
	done := d.done
	d.mu.Unlock()
	if done == nil {
		return nil
	}
	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Reset restores the array generated by the last shuffle.
func (d *Driver) Reset() error {
	return d.idleOp("reset", "Array Reset", d.arr.Reset)
}

// Shuffle generates a new random array, which also becomes the reset target.
func (d *Driver) Shuffle() error {
	return d.idleOp("shuffle", "Array Shuffled", d.arr.Shuffle)
}

func (d *Driver) idleOp(name, status string, op func()) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.run != state.Idle {
		d.logger.Debug(name+" rejected", "run", d.run.String())
		return ErrInvalidOperation
	}
	op()
	d.status = status
	d.err = nil
	d.publishLocked()
	return nil
}

// execute is the only code that mutates the array while a run is active.
func (d *Driver) execute(ctx context.Context, alg sorting.Algorithm, done chan struct{}) {
	defer close(done)

	started := time.Now()
	d.logger.Info("run started", "algorithm", alg.Key(), "size", d.arr.Len(), "delay", d.delay)

	running := "Running: " + alg.String()
	status := "Completed: " + alg.String()
	runErr := func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("%s panicked: %v", alg, r)
			}
		}()
		for step := range alg.Steps(d.arr) {
			d.publishStep(alg, running, step)
			if err := d.sleep(ctx, d.delay); err != nil {
				status = "Stopped: " + alg.String()
				break
			}
		}
		return nil
	}()
	if runErr != nil {
		status = "Failed: " + alg.String()
		d.logger.Error("run failed", "algorithm", alg.Key(), "error", runErr)
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	d.arr.Highlight = array.NoHighlight
	d.status = status
	d.err = runErr
	d.run = state.Completed
	d.publishLocked()

	d.run = state.Idle
	d.cancel()
	d.cancel = nil
	d.publishLocked()

	d.logger.Info("run finished",
		"algorithm", alg.Key(),
		"status", status,
		"comparisons", d.arr.Comparisons,
		"swaps", d.arr.Swaps,
		"elapsed", time.Since(started).Round(time.Millisecond))
}

// publishStep is called from the run goroutine only.
func (d *Driver) publishStep(alg sorting.Algorithm, status string, step sorting.Step) {
	d.store.Update(state.Snapshot{
		Values:      d.arr.Values,
		Highlight:   array.Highlight{First: step.First, Second: step.Second},
		Comparisons: step.Comparisons,
		Swaps:       step.Swaps,
		Algorithm:   alg,
		Run:         state.Running,
		Status:      status,
	})
}

func (d *Driver) publishLocked() {
	d.store.Update(state.Snapshot{
		Values:      d.arr.Values,
		Highlight:   d.arr.Highlight,
		Comparisons: d.arr.Comparisons,
		Swaps:       d.arr.Swaps,
		Algorithm:   d.alg,
		Run:         d.run,
		Status:      d.status,
		LastError:   d.err,
	})
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
