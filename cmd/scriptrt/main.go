package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/reusee/dscope"
	"github.com/reusee/scriptrt/cmds"
	"github.com/reusee/scriptrt/executors"
	"github.com/reusee/scriptrt/faults"
	"github.com/reusee/scriptrt/logs"
	"github.com/reusee/scriptrt/modes"
	"github.com/reusee/scriptrt/sources"
	"github.com/reusee/scriptrt/starunits"
)

var (
	timeoutFlag = cmds.Var[time.Duration]("-timeout")
)

func main() {
	args := cmds.Execute(os.Args[1:])
	if len(args) == 0 {
		fmt.Fprintln(os.Stderr, "usage: scriptrt [flags] <script> [args...]")
		cmds.GlobalExecutor.PrintUsage(os.Stderr)
		os.Exit(faults.ExitFault)
	}

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	var code int
	scope.Call(func(
		loadFile starunits.LoadFile,
		newExecutor executors.NewExecutor,
		pool *executors.Pool,
		logger logs.Logger,
	) {
		err := run(loadFile, newExecutor, pool, logger, args[0], args[1:])
		if err != nil {
			fmt.Fprint(os.Stderr, faults.Render(err))
		}
		code = faults.ExitCode(err)
	})

	os.Exit(code)
}

func run(
	loadFile starunits.LoadFile,
	newExecutor executors.NewExecutor,
	pool *executors.Pool,
	logger logs.Logger,
	path string,
	args []string,
) error {

	info, err := readManifest(path)
	if err != nil {
		return err
	}

	unit, err := loadFile(path, info)
	if err != nil {
		return err
	}

	executor, err := newExecutor(unit)
	if err != nil {
		return err
	}

	// first interrupt asks politely, the second one does not
	signals := make(chan os.Signal, 2)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(signals)
	go func() {
		forced := false
		for {
			select {
			case <-signals:
			case <-executor.Done():
				return
			}
			n := executors.CancelAll(pool, forced, "")
			logger.Info("interrupted", "forced", forced, "executors", n)
			forced = true
		}
	}()

	if *timeoutFlag > 0 {
		timer := time.AfterFunc(*timeoutFlag, func() {
			executor.ForceCancel(fmt.Sprintf("timeout after %v", *timeoutFlag))
		})
		defer timer.Stop()
	}

	err = executor.Execute(context.Background(), args)
	logger.Debug("script done",
		"script", unit.Name(),
		"state", executor.State().String(),
	)
	return err
}

// readManifest reads the optional <script>.toml next to the script.
func readManifest(path string) (sources.AppInfo, error) {
	manifest := strings.TrimSuffix(path, filepath.Ext(path)) + ".toml"
	content, err := os.ReadFile(manifest)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return sources.ParseAppInfo(content)
}
