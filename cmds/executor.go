package cmds

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"
)

type Executor struct {
	commands map[string]*Command
}

func NewExecutor() *Executor {
	return &Executor{
		commands: make(map[string]*Command),
	}
}

func (e *Executor) Define(name string, command *Command) {
	for _, n := range append([]string{name}, command.Aliases...) {
		if _, ok := e.commands[n]; ok {
			panic(fmt.Errorf("duplicated command %s", n))
		}
		e.commands[n] = command
	}
}

// Execute runs commands from args in order. Arguments after "--" are
// returned untouched, as are all arguments from the first one that is not a
// known command.
func (e *Executor) Execute(args []string) (rest []string, err error) {
	for len(args) > 0 {
		name := strings.TrimSpace(args[0])
		if name == "--" {
			return args[1:], nil
		}
		command, ok := e.commands[name]
		if !ok {
			if strings.HasPrefix(name, "-") {
				return nil, fmt.Errorf("unknown command: %s", name)
			}
			return args, nil
		}
		args, err = command.call(args[1:])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
	}
	return nil, nil
}

func (e *Executor) MustExecute(args []string) []string {
	rest, err := e.Execute(args)
	if err != nil {
		panic(err)
	}
	return rest
}

func (e *Executor) PrintUsage(w io.Writer) {
	seen := make(map[*Command]bool)
	for _, name := range slices.Sorted(maps.Keys(e.commands)) {
		command := e.commands[name]
		if seen[command] {
			continue
		}
		seen[command] = true
		names := append([]string{name}, command.Aliases...)
		fmt.Fprintf(w, "  %s", strings.Join(names, ", "))
		if n := command.numArgs(); n > 0 {
			fmt.Fprintf(w, " <%d args>", n)
		}
		if command.Description != "" {
			fmt.Fprintf(w, "\t%s", command.Description)
		}
		fmt.Fprintln(w)
	}
}
