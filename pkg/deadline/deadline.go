// Package deadline races an operation against a fixed timer. It exists so the
// "insert or give up waiting" decision has a single, testable contract instead
// of ad hoc select statements at every call site.
package deadline

import (
	"context"
	"time"
)

// Outcome tags how a guarded operation finished.
type Outcome int

const (
	// Completed: the operation returned a value before the deadline.
	Completed Outcome = iota
	// Failed: the operation returned an error before the deadline.
	Failed
	// TimedOut: the deadline elapsed first. The operation keeps running in
	// the background and its eventual result is discarded.
	TimedOut
)

// Result is the tagged outcome of Run. Value is meaningful only for
// Completed, Err only for Failed.
type Result[T any] struct {
	Outcome Outcome
	Value   T
	Err     error
}

// Run executes op and waits at most d for it to settle.
//
// The operation receives a context derived with context.WithoutCancel, so
// neither the deadline elapsing nor the parent context being cancelled stops
// it: a slow store insert may still commit after Run has returned TimedOut,
// and callers must treat such a late completion as a valid but unconfirmed
// write. The result channel is buffered so the abandoned goroutine never
// blocks on send.
func Run[T any](ctx context.Context, d time.Duration, op func(context.Context) (T, error)) Result[T] {
	type settled struct {
		value T
		err   error
	}

	ch := make(chan settled, 1)
	go func() {
		v, err := op(context.WithoutCancel(ctx))
		ch <- settled{value: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case s := <-ch:
		if s.err != nil {
			return Result[T]{Outcome: Failed, Err: s.err}
		}
		return Result[T]{Outcome: Completed, Value: s.value}
	case <-timer.C:
		return Result[T]{Outcome: TimedOut}
	}
}
