package cmds

import (
	"os"
)

var GlobalExecutor = func() *Executor {
	e := NewExecutor()
	e.Define("-h", Func(func() {
		e.PrintUsage(os.Stderr)
		os.Exit(0)
	}).Desc("print this usage").Alias("-help", "--help"))
	return e
}()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

// Execute applies flags from args to the global executor and returns the
// remaining positional arguments.
func Execute(args []string) []string {
	return GlobalExecutor.MustExecute(args)
}

// Var defines a flag setting a value of type T, and name+"." resetting it.
func Var[T any](name string) *T {
	value := new(T)
	Define(name, Func(func(v T) {
		*value = v
	}))
	Define(name+".", Func(func() {
		var zero T
		*value = zero
	}))
	return value
}

// Switch defines name to turn a flag on and "!"+name to turn it off.
func Switch(name string) *bool {
	value := new(bool)
	Define(name, Func(func() {
		*value = true
	}))
	Define("!"+name, Func(func() {
		*value = false
	}))
	return value
}
