package starunits

import (
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/scriptrt/logs"
	"github.com/reusee/scriptrt/rtconfigs"
	"github.com/reusee/scriptrt/sources"
	"github.com/reusee/scriptrt/texts"
)

type Module struct {
	dscope.Module
	RTConfigs rtconfigs.Module
}

// LoadFile loads a script file with the configured culture. info overrides
// the script's own app_info.
type LoadFile func(path string, info sources.AppInfo) (*Unit, error)

func (Module) LoadFile(
	comparer texts.Comparer,
	logger logs.Logger,
) LoadFile {
	return func(path string, info sources.AppInfo) (*Unit, error) {
		src, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return Load(path, src, Options{
			AppInfo:  info,
			Comparer: comparer,
			Progress: func(source any, step int) {
				if step == sources.Finished {
					logger.Debug("loaded", "path", path)
					return
				}
				logger.Debug("loading", "path", path, "step", step, "of", sources.LoadingSteps)
			},
		})
	}
}
