package texts

import (
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/reusee/scriptrt/locs"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// folded is a diacritic-free projection of a text. starts[i] is the byte
// offset in text where the fold of rune i begins; starts has one extra
// element for the end.
type folded struct {
	text   string
	starts []int
}

func newFolder() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)))
}

func fold(s string) folded {
	t := newFolder()
	rs := []rune(s)
	var b strings.Builder
	b.Grow(len(s))
	starts := make([]int, len(rs)+1)
	for i, r := range rs {
		starts[i] = b.Len()
		switch {
		case r == 0 || locs.IsMarker(r):
			// ignorable
		case r < utf8.RuneSelf:
			b.WriteRune(r)
		default:
			out, _, err := transform.String(t, string(r))
			if err != nil {
				out = string(r)
			}
			b.WriteString(out)
		}
	}
	starts[len(rs)] = b.Len()
	return folded{
		text:   b.String(),
		starts: starts,
	}
}

// foldNeedle folds a caller-supplied pattern. Markers are not expected in
// patterns and are kept.
func foldNeedle(s string) string {
	var b strings.Builder
	t := newFolder()
	for _, r := range s {
		if r < utf8.RuneSelf {
			b.WriteRune(r)
			continue
		}
		out, _, err := transform.String(t, string(r))
		if err != nil {
			out = string(r)
		}
		b.WriteString(out)
	}
	return b.String()
}

func (f folded) runeCount() int {
	return len(f.starts) - 1
}

func (f folded) empty(i int) bool {
	return f.starts[i+1] == f.starts[i]
}

// startAt maps a byte offset to the first rune index >= min whose fold
// begins there and is not ignorable.
func (f folded) startAt(off int, min int) (int, bool) {
	i, ok := slices.BinarySearch(f.starts, off)
	if !ok {
		return 0, false
	}
	i = max(i, min)
	n := f.runeCount()
	for i < n && f.empty(i) {
		i++
	}
	if i >= n || f.starts[i] != off {
		return 0, false
	}
	return i, true
}

func (f folded) boundary(off int) bool {
	_, ok := slices.BinarySearch(f.starts, off)
	return ok
}

func (f folded) index(needle string, from int) int {
	off := f.starts[from]
	for off <= len(f.text) {
		k := strings.Index(f.text[off:], needle)
		if k < 0 {
			return -1
		}
		o := off + k
		if i, ok := f.startAt(o, from); ok && f.boundary(o+len(needle)) {
			return i
		}
		_, w := utf8.DecodeRuneInString(f.text[o:])
		off = o + max(w, 1)
	}
	return -1
}

// lastIndex finds the last match that ends at or before rune index upTo.
func (f folded) lastIndex(needle string, upTo int) int {
	limit := f.starts[upTo]
	for limit >= len(needle) {
		o := strings.LastIndex(f.text[:limit], needle)
		if o < 0 {
			return -1
		}
		if i, ok := f.startAt(o, 0); ok && f.boundary(o+len(needle)) {
			return i
		}
		limit = o + len(needle) - 1
	}
	return -1
}

func (f folded) hasPrefix(needle string) bool {
	if !strings.HasPrefix(f.text, needle) {
		return false
	}
	return f.boundary(len(needle))
}
