package cmds

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func TestExecutor(t *testing.T) {
	e := NewExecutor()
	var n int
	var name string
	e.Define("-n", Func(func(i int) {
		n = i
	}))
	e.Define("-name", Func(func(s string) error {
		if s == "" {
			return errEmpty
		}
		name = s
		return nil
	}).Alias("-N"))

	rest, err := e.Execute([]string{"-n", "42", "-N", "foo", "script.star", "-n", "1"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 42 || name != "foo" {
		t.Fatalf("got %d %q", n, name)
	}
	if strings.Join(rest, " ") != "script.star -n 1" {
		t.Fatalf("got %v", rest)
	}

	rest, err = e.Execute([]string{"-n", "7", "--", "-n", "8"})
	if err != nil {
		t.Fatal(err)
	}
	if n != 7 || len(rest) != 2 {
		t.Fatalf("got %d %v", n, rest)
	}

	_, err = e.Execute([]string{"-foo"})
	if err == nil || !strings.Contains(err.Error(), "unknown command: -foo") {
		t.Fatalf("got %v", err)
	}

	_, err = e.Execute([]string{"-n", "x"})
	if err == nil || !strings.Contains(err.Error(), "convert x to int") {
		t.Fatalf("got %v", err)
	}

	_, err = e.Execute([]string{"-n"})
	if err == nil {
		t.Fatal("should error")
	}

	_, err = e.Execute([]string{"-name", ""})
	if err == nil || !strings.Contains(err.Error(), "-name: empty") {
		t.Fatalf("got %v", err)
	}
}

func TestOptionalArgument(t *testing.T) {
	e := NewExecutor()
	var got *int
	e.Define("-opt", Func(func(i *int) {
		got = i
	}))
	e.MustExecute([]string{"-opt", "3"})
	if *got != 3 {
		t.Fatalf("got %v", *got)
	}
	e.MustExecute([]string{"-opt"})
	if *got != 0 {
		t.Fatalf("got %v", *got)
	}
}

func TestDuration(t *testing.T) {
	e := NewExecutor()
	var d time.Duration
	e.Define("-timeout", Func(func(v time.Duration) {
		d = v
	}))
	e.MustExecute([]string{"-timeout", "1m30s"})
	if d != 90*time.Second {
		t.Fatalf("got %v", d)
	}
	if _, err := e.Execute([]string{"-timeout", "90"}); err == nil {
		t.Fatal("should error")
	}
}

func TestDuplicated(t *testing.T) {
	e := NewExecutor()
	e.Define("-a", Func(func() {}))
	defer func() {
		if recover() == nil {
			t.Fatal("should panic")
		}
	}()
	e.Define("-b", Func(func() {}).Alias("-a"))
}

func TestUsage(t *testing.T) {
	e := NewExecutor()
	e.Define("-x", Func(func(int) {}).Desc("set x").Alias("-X"))
	buf := new(bytes.Buffer)
	e.PrintUsage(buf)
	if strings.Count(buf.String(), "set x") != 1 {
		t.Fatalf("got %s", buf.String())
	}
}

func TestGlobalHelpers(t *testing.T) {
	v := Var[int]("-TestGlobalHelpers-var")
	s := Switch("-TestGlobalHelpers-switch")
	rest := Execute([]string{"-TestGlobalHelpers-var", "9", "-TestGlobalHelpers-switch", "arg"})
	if *v != 9 || !*s {
		t.Fatalf("got %v %v", *v, *s)
	}
	if len(rest) != 1 || rest[0] != "arg" {
		t.Fatalf("got %v", rest)
	}
	Execute([]string{"-TestGlobalHelpers-var.", "!-TestGlobalHelpers-switch"})
	if *v != 0 || *s {
		t.Fatalf("got %v %v", *v, *s)
	}
}

var errEmpty = errorString("empty")

type errorString string

func (e errorString) Error() string {
	return string(e)
}
