package rtconfigs

import (
	"github.com/reusee/scriptrt/cmds"
	"github.com/reusee/scriptrt/configs"
	"github.com/reusee/scriptrt/execpool"
	"github.com/reusee/scriptrt/logs"
	"github.com/reusee/scriptrt/vars"
)

// ExecutorCapacity bounds the number of live executors.
type ExecutorCapacity int

var executorsFlag = cmds.Var[int]("-executors")

func (Module) ExecutorCapacity(
	loader configs.Loader,
	logger logs.Logger,
) (ret ExecutorCapacity) {
	defer func() {
		logger.Debug("executor capacity", "capacity", int(ret))
	}()
	return ExecutorCapacity(vars.FirstNonZero(
		max(*executorsFlag, 0),
		configs.First[int](loader, "executor_capacity"),
		execpool.DefaultCapacity,
	))
}
