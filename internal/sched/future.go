package sched

import (
	"errors"
	"time"
)

// ErrTimeout is returned when a future is not resolved before its deadline
var ErrTimeout = errors.New("timed out waiting for scheduled task")

// Future holds the eventual result of a scheduled task
type Future[T any] struct {
	done chan struct{}
	val  T
	err  error
}

// NewFuture creates an unresolved future
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Resolved creates a future that already carries a result
func Resolved[T any](v T, err error) *Future[T] {
	f := NewFuture[T]()
	f.Resolve(v, err)
	return f
}

// Resolve completes the future. Resolving more than once is a programming
// error and panics on the closed channel.
func (f *Future[T]) Resolve(v T, err error) {
	f.val = v
	f.err = err
	close(f.done)
}

// WaitDeadline blocks until the future resolves or the deadline passes.
// Expiry returns ErrTimeout; the task itself is not cancelled and runs to
// completion regardless.
func (f *Future[T]) WaitDeadline(deadline time.Time) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	default:
	}

	timer := time.NewTimer(time.Until(deadline))
	defer timer.Stop()

	select {
	case <-f.done:
		return f.val, f.err
	case <-timer.C:
		var zero T
		return zero, ErrTimeout
	}
}

// Wait blocks up to the given duration for the future to resolve
func (f *Future[T]) Wait(timeout time.Duration) (T, error) {
	return f.WaitDeadline(time.Now().Add(timeout))
}
