package texts

import (
	"testing"

	"github.com/reusee/scriptrt/locs"
)

func TestDiacriticInsensitive(t *testing.T) {
	if i := EIndexOf("café", "cafe", 0, Invariant); i != 0 {
		t.Fatalf("got %d", i)
	}
	if i := EIndexOf("café", "cafe", 0, Ordinal); i != -1 {
		t.Fatalf("got %d", i)
	}
	if i := EIndexOf("le cafe", "café", 0, Invariant); i != 3 {
		t.Fatalf("got %d", i)
	}
	if i := EIndexOf("Cafe", "cafe", 0, Invariant); i != -1 {
		t.Fatalf("got %d", i)
	}
	// decomposed input keeps rune positions
	if i := EIndexOf("cafe\u0301 bar", "bar", 0, Invariant); i != 6 {
		t.Fatalf("got %d", i)
	}
	if i := EIndexOf("naïve naive", "naive", 1, Invariant); i != 6 {
		t.Fatalf("got %d", i)
	}
}

func TestMarkersIgnored(t *testing.T) {
	marker := locs.Encode(locs.Pos{File: 0, Line: 1, Col: 2})
	text := "x" + marker + "abc"
	markerLen := len([]rune(marker))

	if i := EIndexOf(text, "abc", 0, Invariant); i != 1+markerLen {
		t.Fatalf("got %d", i)
	}
	if i := EIndexOf(text, "xabc", 0, Invariant); i != 0 {
		t.Fatalf("got %d", i)
	}
	if i := EIndexOf(text, "xabc", 0, Ordinal); i != -1 {
		t.Fatalf("got %d", i)
	}
	if i := ELastIndexOf(text, "x", FromEnd, Invariant); i != 0 {
		t.Fatalf("got %d", i)
	}
	if !EStartsWith(marker+"abc", "abc") {
		t.Fatal()
	}
	// a marker character in the pattern is not stripped
	if i := EIndexOf("abc", string(locs.LocChar), 0, Invariant); i != -1 {
		t.Fatalf("got %d", i)
	}
}

func TestBounds(t *testing.T) {
	for _, pos := range []int{-1, 3, 100} {
		if i := EIndexOf("abc", "a", pos, Invariant); i != -1 {
			t.Fatalf("pos %d got %d", pos, i)
		}
		if i := EIndexOf("abc", "a", pos, Ordinal); i != -1 {
			t.Fatalf("pos %d got %d", pos, i)
		}
	}
	if i := EIndexOf("", "", 0, Invariant); i != -1 {
		t.Fatalf("got %d", i)
	}
	if i := ELastIndexOf("", "a", FromEnd, Invariant); i != -1 {
		t.Fatalf("got %d", i)
	}
	if i := ELastIndexOf("abc", "a", 3, Invariant); i != -1 {
		t.Fatalf("got %d", i)
	}
	if i := EIndexOf("abc", "", 1, Invariant); i != 1 {
		t.Fatalf("got %d", i)
	}
}

func TestLastIndexOf(t *testing.T) {
	if i := ELastIndexOf("abcabc", "abc", FromEnd, Invariant); i != 3 {
		t.Fatalf("got %d", i)
	}
	if i := ELastIndexOf("abcabc", "abc", 4, Invariant); i != 0 {
		t.Fatalf("got %d", i)
	}
	if i := ELastIndexOf("abcabc", "abc", 4, Ordinal); i != 0 {
		t.Fatalf("got %d", i)
	}
	if i := ELastIndexOf("résumé resume", "resume", FromEnd, Invariant); i != 7 {
		t.Fatalf("got %d", i)
	}
	if i := ELastIndexOf("résumé resume", "resume", 6, Invariant); i != 0 {
		t.Fatalf("got %d", i)
	}
	if i := ELastIndexOf("ABCabc", "abc", FromEnd, OrdinalIgnoreCase); i != 3 {
		t.Fatalf("got %d", i)
	}
}

func TestOrdinal(t *testing.T) {
	if i := EIndexOf("日本語テキスト", "テキ", 0, Ordinal); i != 3 {
		t.Fatalf("got %d", i)
	}
	if i := EIndexOf("日本語テキスト", "テキ", 4, Ordinal); i != -1 {
		t.Fatalf("got %d", i)
	}
	if i := EIndexOf("Hello", "LL", 0, OrdinalIgnoreCase); i != 2 {
		t.Fatalf("got %d", i)
	}
	if !Default.HasPrefix("Hello", "HE", OrdinalIgnoreCase) {
		t.Fatal()
	}
	if Default.HasPrefix("Hello", "HE", Ordinal) {
		t.Fatal()
	}
}

func TestStartsWith(t *testing.T) {
	if !EStartsWith("Élan vital", "Elan") {
		t.Fatal()
	}
	if EStartsWith("Elan", "Élan vital") {
		t.Fatal()
	}
	if !EStartsWith("anything", "") {
		t.Fatal()
	}
}

func TestCulture(t *testing.T) {
	c, err := ForCulture("fr-FR")
	if err != nil {
		t.Fatal(err)
	}
	if i := c.IndexOf("hello world", "world", 0, Culture); i != 6 {
		t.Fatalf("got %d", i)
	}
	if i := c.IndexOf("hello world", "world", 7, Culture); i != -1 {
		t.Fatalf("got %d", i)
	}
	if i := c.LastIndexOf("ab ab ab", "ab", FromEnd, Culture); i != 6 {
		t.Fatalf("got %d", i)
	}
	if !c.HasPrefix("hello", "hel", Culture) {
		t.Fatal()
	}
	if _, err := ForCulture("not a culture!"); err == nil {
		t.Fatal("should error")
	}
	if c, err := ForCulture(""); err != nil || c != Default {
		t.Fatalf("got %v %v", c, err)
	}
}

func TestParseComparison(t *testing.T) {
	for _, c := range []Comparison{Invariant, Ordinal, OrdinalIgnoreCase, Culture} {
		got, ok := ParseComparison(c.String())
		if !ok || got != c {
			t.Fatalf("got %v", got)
		}
	}
	if _, ok := ParseComparison("foo"); ok {
		t.Fatal()
	}
}
