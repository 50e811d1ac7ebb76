package starunits

import (
	"fmt"

	"github.com/reusee/scriptrt/executors"
	"github.com/reusee/scriptrt/faults"
	"github.com/reusee/scriptrt/locs"
	"github.com/reusee/scriptrt/texts"
	"github.com/reusee/starlarkutil"
	"go.starlark.net/starlark"
)

var builtinNames = []string{
	"args",
	"checkpoint",
	"executor_id",
	"here",
	"index_of",
	"last_index_of",
	"restore",
	"starts_with",
	"throw",
	"type_tag",
}

func (u *Unit) predeclared(exec *executors.Executor, args []string) starlark.StringDict {
	ret := starlark.StringDict{
		"args": toStarlarkValue(args),

		"checkpoint": starlark.NewBuiltin("checkpoint", func(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
			if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
				return nil, err
			}
			if err := exec.Checkpoint(); err != nil {
				return nil, err
			}
			return starlark.None, nil
		}),

		"executor_id": starlarkutil.MakeFunc("executor_id", func() int {
			return exec.ID()
		}),

		"here": starlark.NewBuiltin("here", u.here),

		"index_of":      starlark.NewBuiltin("index_of", u.indexOf),
		"last_index_of": starlark.NewBuiltin("last_index_of", u.lastIndexOf),
		"starts_with":   starlark.NewBuiltin("starts_with", u.startsWith),

		"restore": starlarkutil.MakeFunc("restore", func(text string) string {
			return locs.Restore(text, u)
		}),

		"throw": starlark.NewBuiltin("throw", throw),

		"type_tag": starlark.NewBuiltin("type_tag", typeTag),
	}
	for name, value := range u.extra {
		ret[name] = value
	}
	return ret
}

// throw raises a script value. A dict with string Name and Message fields
// provides the exception name and message shown at the top level.
func throw(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &value); err != nil {
		return nil, err
	}

	data := map[string]any{
		faults.DataObject:     fromStarlarkValue(value),
		faults.DataObjectType: typeTagOf(value).String(),
		faults.DataStackTrace: thread.CallStack().String(),
	}
	switch value := value.(type) {
	case starlark.String:
		data[faults.DataMessage] = string(value)
	case *starlark.Dict:
		if name, ok := dictString(value, faults.FieldName); ok {
			data[faults.DataTypeName] = name
		}
		if msg, ok := dictString(value, faults.FieldMessage); ok {
			data[faults.DataMessage] = msg
		}
	}

	return nil, faults.UserThrown(value, data)
}

// typeTag returns the name of the runtime type tag classifying its argument.
func typeTag(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var value starlark.Value
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 1, &value); err != nil {
		return nil, err
	}
	return starlark.String(typeTagOf(value).String()), nil
}

func dictString(dict *starlark.Dict, key string) (string, bool) {
	v, found, err := dict.Get(starlark.String(key))
	if err != nil || !found {
		return "", false
	}
	return starlark.AsString(v)
}

// here returns the caller position as location markers.
func (u *Unit) here(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	if err := starlark.UnpackPositionalArgs(fn.Name(), args, kwargs, 0); err != nil {
		return nil, err
	}
	pos, ok := u.pos(thread.CallFrame(1).Pos)
	if !ok {
		return starlark.String(""), nil
	}
	return starlark.String(locs.Encode(pos)), nil
}

func parseMode(name string) (texts.Comparison, error) {
	if name == "" {
		return texts.Invariant, nil
	}
	cmp, ok := texts.ParseComparison(name)
	if !ok {
		return cmp, fmt.Errorf("unknown comparison: %s", name)
	}
	return cmp, nil
}

func (u *Unit) indexOf(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text, str, mode string
	pos := 0
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
		"text", &text,
		"str", &str,
		"pos?", &pos,
		"mode?", &mode,
	); err != nil {
		return nil, err
	}
	cmp, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	return starlark.MakeInt(u.comparer.IndexOf(text, str, pos, cmp)), nil
}

func (u *Unit) lastIndexOf(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text, str, mode string
	pos := texts.FromEnd
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
		"text", &text,
		"str", &str,
		"pos?", &pos,
		"mode?", &mode,
	); err != nil {
		return nil, err
	}
	cmp, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	return starlark.MakeInt(u.comparer.LastIndexOf(text, str, pos, cmp)), nil
}

func (u *Unit) startsWith(thread *starlark.Thread, fn *starlark.Builtin, args starlark.Tuple, kwargs []starlark.Tuple) (starlark.Value, error) {
	var text, value, mode string
	if err := starlark.UnpackArgs(fn.Name(), args, kwargs,
		"text", &text,
		"value", &value,
		"mode?", &mode,
	); err != nil {
		return nil, err
	}
	cmp, err := parseMode(mode)
	if err != nil {
		return nil, err
	}
	return starlark.Bool(u.comparer.HasPrefix(text, value, cmp)), nil
}
