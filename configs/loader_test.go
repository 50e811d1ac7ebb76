package configs

import (
	"errors"
	"fmt"
	"path/filepath"
	"testing"
)

var testSchema = `
executor_capacity?: int & >0
culture?: string
tags?: [...string]
`

func testPaths(names ...string) (ret []string) {
	for _, name := range names {
		ret = append(ret, filepath.Join("testdata", name))
	}
	return
}

func TestLoaderAssignFirst(t *testing.T) {
	loader := NewLoader(testPaths("local.cue", "user.cue"), testSchema)

	var n int
	if err := loader.AssignFirst("executor_capacity", &n); err != nil {
		t.Fatal(err)
	}
	if n != 8 {
		t.Fatalf("got %d", n)
	}

	var tags []string
	if err := loader.AssignFirst("tags", &tags); err != nil {
		t.Fatal(err)
	}
	if str := fmt.Sprintf("%v", tags); str != "[a b]" {
		t.Fatalf("got %s", str)
	}

	var culture string
	err := loader.AssignFirst("not", &culture)
	if !errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}

	paths, err := loader.Paths()
	if err != nil {
		t.Fatal(err)
	}
	if len(paths) != 2 {
		t.Fatalf("got %v", paths)
	}
}

func TestLoaderIterCueValues(t *testing.T) {
	loader := NewLoader(testPaths("local.cue", "user.cue"), testSchema)

	var ns []int
	for value, err := range loader.IterCueValues("executor_capacity") {
		if err != nil {
			t.Fatal(err)
		}
		var n int
		if err := value.Decode(&n); err != nil {
			t.Fatal(err)
		}
		ns = append(ns, n)
	}
	if str := fmt.Sprintf("%v", ns); str != "[8 16]" {
		t.Fatalf("got %s", str)
	}

	var cultures []string
	for culture := range All[string](loader, "culture") {
		cultures = append(cultures, culture)
	}
	if str := fmt.Sprintf("%v", cultures); str != "[fr-FR]" {
		t.Fatalf("got %s", str)
	}
}

func TestFirst(t *testing.T) {
	loader := NewLoader(testPaths("user.cue", "local.cue"), testSchema)
	if n := First[int](loader, "executor_capacity"); n != 16 {
		t.Fatalf("got %d", n)
	}
	if c := First[string](loader, "culture"); c != "fr-FR" {
		t.Fatalf("got %q", c)
	}

	empty := NewLoader(nil, testSchema)
	if n := First[int](empty, "executor_capacity"); n != 0 {
		t.Fatalf("got %d", n)
	}
}

func TestUnknownField(t *testing.T) {
	loader := NewLoader(testPaths("bad.cue"), testSchema)
	var n int
	err := loader.AssignFirst("unknown_field", &n)
	if err == nil {
		t.Fatal("should error")
	}
	t.Logf("%v", err)
}

func TestSchemaConstraint(t *testing.T) {
	loader := NewSourcesLoader([]Source{
		{Name: "zero.cue", Content: []byte("executor_capacity: 0\n")},
	}, testSchema)
	if err := loader.AssignFirst("executor_capacity", new(int)); err == nil {
		t.Fatal("should error")
	}

	loader = NewSourcesLoader([]Source{
		{Name: "ok.cue", Content: []byte("culture: \"de\"\n")},
	}, testSchema)
	if c := First[string](loader, "culture"); c != "de" {
		t.Fatalf("got %q", c)
	}
}

func TestMissingFile(t *testing.T) {
	loader := NewLoader(testPaths("missing.cue"), testSchema)
	if err := loader.AssignFirst("culture", new(string)); err == nil || errors.Is(err, ErrValueNotFound) {
		t.Fatalf("got %v", err)
	}
}
