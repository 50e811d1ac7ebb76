package rtconfigs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/scriptrt/configs"
	"github.com/reusee/scriptrt/logs"
)

type Module struct {
	dscope.Module
	Configs configs.Module
	Logs    logs.Module
}
