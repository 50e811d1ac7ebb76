package executors

import "context"

// Script is a compiled unit ready to run.
type Script interface {
	Name() string
	Run(ctx context.Context, exec *Executor, args []string) error
}

// Finalizer is implemented by scripts with a cleanup step. Finalize runs
// after Run returns, whatever the outcome, except after a forced
// cancellation.
type Finalizer interface {
	Finalize(ctx context.Context, exec *Executor) error
}
