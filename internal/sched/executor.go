// Package sched bridges arbitrary caller goroutines onto the single
// designated goroutine that the host environment requires all world and
// inventory access to happen on. Work submitted from elsewhere is queued and
// returns a future; work submitted from the designated goroutine itself runs
// inline, which is what keeps re-entrant engine calls from deadlocking.
package sched

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// ErrStopped is returned for work submitted after the executor has stopped
var ErrStopped = errors.New("executor stopped")

type loopKey struct{}

// OnLoop reports whether ctx belongs to work currently executing on the
// designated goroutine
func OnLoop(ctx context.Context) bool {
	on, _ := ctx.Value(loopKey{}).(bool)
	return on
}

// Executor owns the designated goroutine. Tasks are executed one at a time
// in submission order; a running task is never preempted.
type Executor struct {
	tasks chan func(context.Context)
	done  chan struct{}

	// mu orders submissions against Stop, so a submission either lands in
	// the queue before it closes or fails with ErrStopped. Without it a
	// post-stop submission could race onto the buffered channel and leave
	// its future unresolved.
	mu      sync.Mutex
	stopped bool
}

// New creates an executor. Start must be called before submitting work.
func New() *Executor {
	return &Executor{
		tasks: make(chan func(context.Context), 64),
		done:  make(chan struct{}),
	}
}

// Start launches the designated goroutine
func (e *Executor) Start() {
	go e.run()
}

// Stop runs any queued tasks, then shuts the loop down. Work submitted
// after Stop fails its future with ErrStopped. Stop is idempotent.
func (e *Executor) Stop() {
	e.mu.Lock()
	if !e.stopped {
		e.stopped = true
		close(e.tasks)
	}
	e.mu.Unlock()
	<-e.done
}

// submit enqueues a task, or reports false if the executor has stopped
func (e *Executor) submit(task func(context.Context)) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.stopped {
		return false
	}
	e.tasks <- task
	return true
}

func (e *Executor) run() {
	defer close(e.done)

	// Everything the loop runs sees a context marked as on-loop, so nested
	// submissions execute inline instead of re-queueing.
	ctx := context.WithValue(context.Background(), loopKey{}, true)

	for task := range e.tasks {
		task(ctx)
	}
}

// Run executes fn on the designated goroutine and returns a future for its
// result. If ctx is already on-loop, fn runs inline and the returned future
// is already resolved. A panic inside fn resolves the future with an error.
func Run[T any](e *Executor, ctx context.Context, fn func(ctx context.Context) (T, error)) *Future[T] {
	if OnLoop(ctx) {
		v, err := call(ctx, fn)
		return Resolved(v, err)
	}

	f := NewFuture[T]()
	ok := e.submit(func(loopCtx context.Context) {
		f.Resolve(call(loopCtx, fn))
	})
	if !ok {
		var zero T
		f.Resolve(zero, ErrStopped)
	}
	return f
}

// Go runs fn on its own goroutine and returns a future for its result.
// Used for reads that do not need the designated goroutine.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := NewFuture[T]()
	go func() {
		f.Resolve(callNoCtx(fn))
	}()
	return f
}

func call[T any](ctx context.Context, fn func(ctx context.Context) (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in scheduled task: %v", r)
		}
	}()
	return fn(ctx)
}

func callNoCtx[T any](fn func() (T, error)) (v T, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic in scheduled task: %v", r)
		}
	}()
	return fn()
}
