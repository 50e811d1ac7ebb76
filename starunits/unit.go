package starunits

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/reusee/scriptrt/executors"
	"github.com/reusee/scriptrt/faults"
	"github.com/reusee/scriptrt/locs"
	"github.com/reusee/scriptrt/sources"
	"github.com/reusee/scriptrt/texts"
	"go.starlark.net/resolve"
	"go.starlark.net/starlark"
	"go.starlark.net/syntax"
)

// Unit is a loaded Starlark script.
type Unit struct {
	name     string
	units    sources.Units
	main     *sources.Unit
	program  *starlark.Program
	appInfo  sources.AppInfo
	comparer texts.Comparer
	stdout   io.Writer
	extra    starlark.StringDict

	mu sync.Mutex
	// globals of each run, until finalized or the executor is done
	runs map[*executors.Executor]starlark.StringDict
}

var _ executors.Script = new(Unit)

var _ executors.Finalizer = new(Unit)

var _ locs.Resolver = new(Unit)

type Options struct {
	// Base is the script directory. Defaults to the directory of the file.
	Base     string
	Progress sources.Progress
	// AppInfo overrides entries of the script's own app_info.
	AppInfo  sources.AppInfo
	Comparer texts.Comparer
	Stdout   io.Writer
	// Builtins are predeclared in addition to the standard ones. Go
	// functions are converted with starlarkutil.MakeFunc.
	Builtins map[string]any
}

var fileOptions = &syntax.FileOptions{
	Set:             true,
	While:           true,
	TopLevelControl: true,
	GlobalReassign:  true,
	Recursion:       true,
}

// Load compiles src. Syntax and resolve errors are returned as a LoadingFault.
func Load(path string, src []byte, opts Options) (*Unit, error) {
	base := opts.Base
	if base == "" {
		base = filepath.Dir(path)
	}

	u := &Unit{
		name:     filepath.Base(path),
		comparer: opts.Comparer,
		stdout:   opts.Stdout,
		runs:     make(map[*executors.Executor]starlark.StringDict),
		extra:    make(starlark.StringDict, len(opts.Builtins)),
	}
	for name, value := range opts.Builtins {
		u.extra[name] = toStarlarkValue(value)
	}
	if u.stdout == nil {
		u.stdout = os.Stdout
	}
	u.main = u.units.Add(path, base)
	u.main.SetText(string(src))

	opts.Progress.Report(u, 0)

	f, err := fileOptions.Parse(path, src, 0)
	if err != nil {
		return nil, u.loadFault(err)
	}
	opts.Progress.Report(u, 1)

	u.program, err = starlark.FileProgram(f, u.isPredeclared)
	if err != nil {
		return nil, u.loadFault(err)
	}
	opts.Progress.Report(u, 2)

	u.appInfo = appInfoOf(f).Merge(opts.AppInfo)
	if culture, ok := u.appInfo.Culture(); ok {
		cmp, err := texts.ForCulture(culture)
		if err != nil {
			return nil, faults.Loading(u, err.Error())
		}
		u.comparer = cmp
	}

	opts.Progress.Report(u, sources.Finished)
	return u, nil
}

func (u *Unit) Name() string {
	if name := u.appInfo.Name(); name != "" {
		return name
	}
	return u.name
}

func (u *Unit) AppInfo() sources.AppInfo {
	return u.appInfo
}

func (u *Unit) Units() sources.Units {
	return u.units
}

func (u *Unit) FileName(num int) (string, bool) {
	return u.units.FileName(num)
}

func (u *Unit) isPredeclared(name string) bool {
	if slices.Contains(builtinNames, name) {
		return true
	}
	_, ok := u.extra[name]
	return ok
}

// pos maps an interpreter position to a position in the unit list.
func (u *Unit) pos(p syntax.Position) (locs.Pos, bool) {
	if !p.IsValid() {
		return locs.Pos{}, false
	}
	unit, ok := u.units.ByFile(p.Filename())
	if !ok {
		return locs.Pos{}, false
	}
	return locs.Pos{
		File: unit.Num,
		Line: int(p.Line),
		Col:  int(p.Col),
	}, true
}

func (u *Unit) located(p syntax.Position, msg string) string {
	if pos, ok := u.pos(p); ok {
		return locs.Encode(pos) + ": " + msg
	}
	return msg
}

func (u *Unit) loadFault(err error) error {
	var msgs []string
	var syntaxErr syntax.Error
	var resolveErrs resolve.ErrorList
	switch {
	case errors.As(err, &syntaxErr):
		msgs = append(msgs, u.located(syntaxErr.Pos, syntaxErr.Msg))
	case errors.As(err, &resolveErrs):
		for _, e := range resolveErrs {
			msgs = append(msgs, u.located(e.Pos, e.Msg))
		}
	default:
		msgs = append(msgs, err.Error())
	}
	return faults.Loading(u, strings.Join(msgs, "\n"))
}
