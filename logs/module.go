package logs

import (
	"io"
	"log/slog"
	"os"

	"github.com/reusee/dscope"
	"github.com/reusee/scriptrt/cmds"
)

type Module struct {
	dscope.Module
}

var level = new(slog.LevelVar)

func init() {
	for name, l := range map[string]slog.Level{
		"-log-debug": slog.LevelDebug,
		"-log-info":  slog.LevelInfo,
		"-log-warn":  slog.LevelWarn,
		"-log-error": slog.LevelError,
	} {
		cmds.Define(name, cmds.Func(func() {
			level.Set(l)
		}).Desc("set log level to "+l.String()))
	}
}

type Logger = *slog.Logger

type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
