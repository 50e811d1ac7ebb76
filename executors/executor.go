package executors

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/reusee/scriptrt/execpool"
	"github.com/reusee/scriptrt/faults"
	"github.com/reusee/scriptrt/locs"
	"github.com/reusee/scriptrt/logs"
)

type Pool = execpool.Pool[Executor]

var (
	ErrStarted = errors.New("executor already started")
	ErrClosed  = errors.New("executor closed")
)

// Executor is one run of a Script. It holds a pool slot from New until
// Execute returns, or until Close if it is never executed.
type Executor struct {
	id       int
	pool     *Pool
	script   Script
	resolver locs.Resolver
	logger   logs.Logger
	newSpan  logs.NewSpan
	signal   *faults.Signal

	mu     sync.Mutex
	state  State
	err    error
	closed bool

	done    chan struct{}
	release sync.Once
}

func New(pool *Pool, script Script, logger logs.Logger) (*Executor, error) {
	e := &Executor{
		pool:   pool,
		script: script,
		logger: logger.With("script", script.Name()),
		signal: faults.NewSignal(),
		done:   make(chan struct{}),
	}
	// positions in runtime errors refer to the script's sources
	e.resolver, _ = script.(locs.Resolver)

	id, err := pool.Acquire(e)
	if err != nil {
		return nil, err
	}
	e.id = id
	e.logger.Debug("executor acquired", "executor", id)
	return e, nil
}

func (e *Executor) ID() int {
	return e.id
}

func (e *Executor) Script() Script {
	return e.script
}

func (e *Executor) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Err is the result of Execute once Done is closed.
func (e *Executor) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.err
}

// Done is closed when Execute returns.
func (e *Executor) Done() <-chan struct{} {
	return e.done
}

func (e *Executor) Signal() *faults.Signal {
	return e.signal
}

// Cancel requests cooperative cancellation, observed at the next checkpoint.
func (e *Executor) Cancel(msg string) bool {
	return e.signal.Cancel(msg)
}

// ForceCancel ends the run without waiting for a checkpoint.
func (e *Executor) ForceCancel(msg string) bool {
	return e.signal.Force(msg)
}

func (e *Executor) Checkpoint() error {
	return e.signal.Checkpoint()
}

func (e *Executor) transition(to State) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.state.CanTransition(to) {
		return fmt.Errorf("%w: %v -> %v", ErrBadTransition, e.state, to)
	}
	e.state = to
	return nil
}

// Close releases the slot of an executor that was never executed. It is a
// no-op otherwise.
func (e *Executor) Close() error {
	e.mu.Lock()
	if e.state != Ready || e.closed {
		e.mu.Unlock()
		return nil
	}
	e.closed = true
	e.mu.Unlock()
	return e.releaseSlot()
}

func (e *Executor) releaseSlot() (err error) {
	e.release.Do(func() {
		err = e.pool.Release(e.id)
		e.logger.Debug("executor released", "executor", e.id)
	})
	return
}

// Execute runs the script and returns nil or a *faults.Fault.
func (e *Executor) Execute(ctx context.Context, args []string) (err error) {
	e.mu.Lock()
	switch {
	case e.closed:
		e.mu.Unlock()
		return ErrClosed
	case e.state != Ready:
		e.mu.Unlock()
		return ErrStarted
	}
	e.state = Running
	e.mu.Unlock()

	defer func() {
		e.mu.Lock()
		e.err = err
		e.mu.Unlock()
		if releaseErr := e.releaseSlot(); releaseErr != nil {
			e.logger.Error("release slot", "error", releaseErr)
		}
		close(e.done)
	}()

	ctx = logs.WithExecutor(ctx, e.id)
	if e.newSpan != nil {
		ctx, _ = e.newSpan(ctx, "")
	}
	e.logger.DebugContext(ctx, "execute", "args", args)

	// the caller giving up is a cooperative request
	stop := context.AfterFunc(ctx, func() {
		e.signal.Cancel("")
	})
	defer stop()

	runCtx, cancel := context.WithCancelCause(ctx)
	defer cancel(nil)

	results := make(chan error, 1)
	go func() {
		results <- e.run(runCtx, args)
	}()

	var runErr error
	select {
	case runErr = <-results:
	case <-e.signal.ForcedDone():
		// the goroutine is abandoned; it observes runCtx if it ever looks
		cancel(e.signal.Err())
	}
	if e.signal.Forced() {
		runErr = e.signal.Err()
	}

	switch {
	case runErr == nil:
		err = e.finalize(ctx, nil)
		if err == nil {
			e.settle(Completed)
		} else {
			e.settle(Faulted)
		}

	case faults.IsForced(runErr):
		e.settle(ForciblyCanceled)
		e.logger.InfoContext(ctx, "forcibly canceled", "message", runErr.Error())
		err = runErr

	case faults.IsCancellation(runErr):
		if finErr := e.finalize(ctx, runErr); finErr != nil {
			e.logger.ErrorContext(ctx, "finalize after cancellation", "error", finErr)
		}
		e.settle(Canceled)
		err = runErr

	default:
		err = e.finalize(ctx, runErr)
		e.settle(Faulted)
		if faults.KindOf(err) == faults.KindFinalization {
			e.settle(FinalizationFailed)
		}
	}

	return err
}

func (e *Executor) settle(to State) {
	if err := e.transition(to); err != nil {
		panic(err)
	}
}

func (e *Executor) run(ctx context.Context, args []string) (err error) {
	defer func() {
		if p := recover(); p != nil {
			err = faults.Wrap(e.resolver, fmt.Errorf("panic: %v", p))
		}
	}()
	return faults.Wrap(e.resolver, e.script.Run(ctx, e, args))
}

// finalize runs the cleanup step after a run that ended with cause. It
// returns cause, a fault for the cleanup failure, or a FinalizationFailure
// carrying both.
func (e *Executor) finalize(ctx context.Context, cause error) (err error) {
	finalizer, ok := e.script.(Finalizer)
	if !ok {
		return cause
	}

	defer func() {
		if p := recover(); p != nil {
			err = e.finalizeResult(cause, fmt.Errorf("panic: %v", p))
		}
	}()

	// cleanup must run even if the caller's context is done
	ctx = context.WithoutCancel(ctx)
	return e.finalizeResult(cause, finalizer.Finalize(ctx, e))
}

func (e *Executor) finalizeResult(cause error, finErr error) error {
	if finErr == nil {
		return cause
	}
	finErr = faults.Wrap(e.resolver, finErr)
	if cause == nil {
		return finErr
	}
	return faults.Finalization(cause, finErr)
}
