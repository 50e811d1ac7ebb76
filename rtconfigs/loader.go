package rtconfigs

import (
	_ "embed"
	"os"
	"path/filepath"

	"github.com/reusee/scriptrt/configs"
	"github.com/reusee/scriptrt/logs"
	"github.com/reusee/scriptrt/modes"
)

//go:embed schema.cue
var schema string

var filenames = []string{
	"scriptrt.cue",
	".scriptrt.cue",
}

func (Module) ConfigsLoader(
	logger logs.Logger,
	mode modes.Mode,
) configs.Loader {

	var paths []string
	defer func() {
		if len(paths) > 0 {
			logger.Info("config file",
				"paths", paths,
			)
		}
	}()

	// tests must not depend on files of the host
	if mode == modes.ModeDevelopment {
		return configs.NewLoader(nil, schema)
	}

	dirs := []string{}
	if workingDir, err := os.Getwd(); err == nil {
		dirs = append(dirs, workingDir)
	}
	if configDir, err := os.UserConfigDir(); err == nil {
		dirs = append(dirs, configDir)
	}
	dirs = append(dirs, "/etc")

	for _, dir := range dirs {
		for _, filename := range filenames {
			path := filepath.Join(dir, filename)
			if _, err := os.Stat(path); err == nil {
				paths = append(paths, path)
			}
		}
	}

	return configs.NewLoader(paths, schema)
}
