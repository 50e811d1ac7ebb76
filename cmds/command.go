package cmds

import (
	"fmt"
	"reflect"
)

var errorType = reflect.TypeFor[error]()

// Command is a named action taking positional arguments. The argument types
// are the parameter types of its function.
type Command struct {
	fn          reflect.Value
	Description string
	Aliases     []string
}

// Func wraps fn, which must return nothing or an error.
func Func(fn any) *Command {
	v := reflect.ValueOf(fn)
	if v.Kind() != reflect.Func {
		panic(fmt.Errorf("must be function, got %T", fn))
	}
	switch v.Type().NumOut() {
	case 0:
	case 1:
		if v.Type().Out(0) != errorType {
			panic(fmt.Errorf("must return error, got %v", v.Type().Out(0)))
		}
	default:
		panic(fmt.Errorf("must return 0 or 1 value"))
	}
	return &Command{
		fn: v,
	}
}

func (c *Command) Desc(desc string) *Command {
	c.Description = desc
	return c
}

func (c *Command) Alias(names ...string) *Command {
	c.Aliases = append(c.Aliases, names...)
	return c
}

func (c *Command) numArgs() int {
	return c.fn.Type().NumIn()
}

func (c *Command) call(args []string) (rest []string, err error) {
	t := c.fn.Type()
	in := make([]reflect.Value, 0, t.NumIn())
	for i := range t.NumIn() {
		value, consumed, err := parseArg(t.In(i), args)
		if err != nil {
			return nil, err
		}
		if consumed {
			args = args[1:]
		}
		in = append(in, value)
	}
	out := c.fn.Call(in)
	if len(out) > 0 && !out[0].IsNil() {
		return nil, out[0].Interface().(error)
	}
	return args, nil
}
