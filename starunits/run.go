package starunits

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/reusee/scriptrt/executors"
	"github.com/reusee/scriptrt/faults"
	"go.starlark.net/starlark"
)

const finalizeGlobal = "finalize"

func (u *Unit) newThread(exec *executors.Executor) *starlark.Thread {
	return &starlark.Thread{
		Name: fmt.Sprintf("%s#%d", u.name, exec.ID()),
		Print: func(_ *starlark.Thread, msg string) {
			fmt.Fprintln(u.stdout, msg)
		},
	}
}

// Run executes the script body. A cancellation request of the executor
// interrupts the interpreter at its next step.
func (u *Unit) Run(ctx context.Context, exec *executors.Executor, args []string) error {
	thread := u.newThread(exec)

	var canceled atomic.Bool
	finished := make(chan struct{})
	defer close(finished)
	go func() {
		select {
		case <-exec.Signal().Done():
		case <-ctx.Done():
		case <-finished:
			return
		}
		canceled.Store(true)
		thread.Cancel("canceled")
	}()

	globals, err := u.program.Init(thread, u.predeclared(exec, args))
	if !exec.Signal().Forced() {
		u.mu.Lock()
		u.runs[exec] = globals
		u.mu.Unlock()
		// a forced cancellation skips Finalize
		go func() {
			<-exec.Done()
			u.forget(exec)
		}()
	}

	if err != nil && canceled.Load() {
		if sigErr := exec.Checkpoint(); sigErr != nil {
			return sigErr
		}
		return faults.Canceled(false, context.Cause(ctx).Error())
	}
	return u.fault(err)
}

// Finalize calls the script's finalize() if it defines one.
func (u *Unit) Finalize(ctx context.Context, exec *executors.Executor) error {
	u.mu.Lock()
	globals := u.runs[exec]
	delete(u.runs, exec)
	u.mu.Unlock()
	fn, ok := globals[finalizeGlobal].(starlark.Callable)
	if !ok {
		return nil
	}
	thread := u.newThread(exec)
	_, err := starlark.Call(thread, fn, nil, nil)
	return u.fault(err)
}

func (u *Unit) forget(exec *executors.Executor) {
	u.mu.Lock()
	delete(u.runs, exec)
	u.mu.Unlock()
}

// fault converts an interpreter error to a fault carrying the position of
// the innermost script frame.
func (u *Unit) fault(err error) error {
	if err == nil {
		return nil
	}
	if _, ok := faults.As(err); ok {
		return faults.Wrap(u, err)
	}
	var evalErr *starlark.EvalError
	if !errors.As(err, &evalErr) {
		return faults.Wrap(u, err)
	}
	msg := evalErr.Msg
	for i := range len(evalErr.CallStack) {
		frame := evalErr.CallStack.At(i)
		if _, ok := u.pos(frame.Pos); ok {
			msg = u.located(frame.Pos, msg)
			break
		}
	}
	f := faults.Execution(u, msg)
	f.Data = map[string]any{
		faults.DataStackTrace: evalErr.CallStack.String(),
	}
	return f
}
