package locs

import (
	"strings"
	"testing"
)

type names []string

func (n names) FileName(num int) (string, bool) {
	if num < 0 || num >= len(n) {
		return "", false
	}
	return n[num], true
}

func TestRoundTrip(t *testing.T) {
	files := names{"main.os", "lib/util.os"}
	for _, pos := range []Pos{
		{File: 0, Line: 1, Col: 1},
		{File: 1, Line: 42, Col: 7},
		{File: 1, Line: 1024, Col: 0},
		{File: 0, Line: 0, Col: 0},
	} {
		encoded := Encode(pos)
		if !HasMarkers(encoded) {
			t.Fatalf("got %q", encoded)
		}
		for _, r := range encoded {
			if !IsMarker(r) {
				t.Fatalf("got %q", r)
			}
		}
		text := "undefined variable x at " + encoded + "."
		restored := Restore(text, files)
		want := "undefined variable x at " + Format(pos, files) + "."
		if restored != want {
			t.Fatalf("got %q, want %q", restored, want)
		}
		if again := Restore(restored, files); again != restored {
			t.Fatalf("got %q", again)
		}
	}
}

func TestFormat(t *testing.T) {
	files := names{"main.os"}
	if s := Format(Pos{File: 0, Line: 3, Col: 5}, files); s != "main.os:3:5" {
		t.Fatalf("got %s", s)
	}
	if s := Format(Pos{File: 0, Line: 3}, files); s != "main.os:3" {
		t.Fatalf("got %s", s)
	}
	if s := Format(Pos{File: 9, Line: 3, Col: 1}, files); s != "<file 9>:3:1" {
		t.Fatalf("got %s", s)
	}
	if s := Format(Pos{File: 0, Line: 1, Col: 2}, nil); s != "<file 0>:1:2" {
		t.Fatalf("got %s", s)
	}
}

func TestMultipleMarkers(t *testing.T) {
	files := names{"a", "b"}
	text := "first " + Encode(Pos{0, 1, 2}) + " then " + Encode(Pos{1, 3, 4})
	if s := Restore(text, files); s != "first a:1:2 then b:3:4" {
		t.Fatalf("got %s", s)
	}
}

func TestMarkerFree(t *testing.T) {
	for _, text := range []string{
		"",
		"plain text",
		"café ünïcödé 中文",
	} {
		if s := Restore(text, nil); s != text {
			t.Fatalf("got %q", s)
		}
	}
}

func TestMalformed(t *testing.T) {
	text := "broken " + string(LocChar) + string(Bit1) + "x tail"
	restored := Restore(text, nil)
	if restored != text {
		t.Fatalf("got %q", restored)
	}
	if again := Restore(restored, nil); again != restored {
		t.Fatalf("got %q", again)
	}

	truncated := "cut " + Encode(Pos{0, 5, 6})
	truncated = truncated[:len(truncated)-len(string(LocChar))]
	if s := Restore(truncated, nil); s != truncated {
		t.Fatalf("got %q", s)
	}

	mixed := "bad " + string(LocChar) + "x good " + Encode(Pos{0, 2, 3})
	if s := Restore(mixed, names{"f"}); !strings.HasSuffix(s, " good f:2:3") {
		t.Fatalf("got %q", s)
	}
}
