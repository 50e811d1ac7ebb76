package executors

import (
	"github.com/reusee/dscope"
	"github.com/reusee/scriptrt/execpool"
	"github.com/reusee/scriptrt/logs"
	"github.com/reusee/scriptrt/rtconfigs"
)

type Module struct {
	dscope.Module
	RTConfigs rtconfigs.Module
	Logs      logs.Module
}

func (Module) Pool(
	capacity rtconfigs.ExecutorCapacity,
) *Pool {
	pool := execpool.New[Executor](execpool.DefaultCapacity)
	if err := pool.Configure(int(capacity)); err != nil {
		panic(err)
	}
	return pool
}

type NewExecutor func(script Script) (*Executor, error)

func (Module) NewExecutor(
	pool *Pool,
	logger logs.Logger,
	newSpan logs.NewSpan,
) NewExecutor {
	return func(script Script) (*Executor, error) {
		e, err := New(pool, script, logger)
		if err != nil {
			return nil, err
		}
		// each run is a span of its own
		e.newSpan = newSpan
		return e, nil
	}
}

// CancelAll requests cancellation of every live executor and returns how
// many were signaled.
func CancelAll(pool *Pool, forced bool, msg string) (n int) {
	for _, e := range pool.Range() {
		var ok bool
		if forced {
			ok = e.ForceCancel(msg)
		} else {
			ok = e.Cancel(msg)
		}
		if ok {
			n++
		}
	}
	return
}
