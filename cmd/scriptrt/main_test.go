package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/scriptrt/executors"
	"github.com/reusee/scriptrt/faults"
	"github.com/reusee/scriptrt/logs"
	"github.com/reusee/scriptrt/modes"
	"github.com/reusee/scriptrt/starunits"
)

func TestReadManifest(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "inventory.star")

	info, err := readManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if info != nil {
		t.Fatalf("got %v", info)
	}

	if err := os.WriteFile(filepath.Join(dir, "inventory.toml"), []byte(`Name = "Inventory"`), 0644); err != nil {
		t.Fatal(err)
	}
	info, err = readManifest(path)
	if err != nil {
		t.Fatal(err)
	}
	if info.Name() != "Inventory" {
		t.Fatalf("got %v", info)
	}
}

func TestRun(t *testing.T) {
	dir := t.TempDir()
	write := func(name, content string) string {
		path := filepath.Join(dir, name)
		if err := os.WriteFile(path, []byte(content), 0644); err != nil {
			t.Fatal(err)
		}
		return path
	}
	ok := write("ok.star", "if len(args) != 2:\n    fail('args')\n")
	bad := write("bad.star", "def f():\n    throw({'Name': 'Bad', 'Message': 'bad input'})\n\nf()\n")

	dscope.New(new(Module), modes.ForTest(t)).Call(func(
		loadFile starunits.LoadFile,
		newExecutor executors.NewExecutor,
		pool *executors.Pool,
		logger logs.Logger,
	) {
		err := run(loadFile, newExecutor, pool, logger, ok, []string{"a", "b"})
		if err != nil {
			t.Fatal(err)
		}

		err = run(loadFile, newExecutor, pool, logger, bad, nil)
		if faults.KindOf(err) != faults.KindUserThrown {
			t.Fatalf("got %v", err)
		}
		if faults.ExitCode(err) != faults.ExitFault {
			t.Fatal()
		}

		err = run(loadFile, newExecutor, pool, logger, filepath.Join(dir, "missing.star"), nil)
		if err == nil {
			t.Fatal("should error")
		}

		if pool.Live() != 0 {
			t.Fatalf("got %d", pool.Live())
		}
	})
}
