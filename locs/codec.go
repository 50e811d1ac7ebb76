package locs

import (
	"strconv"
	"strings"
	"unicode/utf8"
)

// Marker characters. They live in the private use area so ordinary source
// text never contains them.
const (
	LocChar rune = '\uf8f0'
	Bit0    rune = '\uf8f1'
	Bit1    rune = '\uf8f2'
)

// Pos is a source position. File is the ordinal of the source unit within
// its script, Line and Col are 1-based. Col 0 means unknown.
type Pos struct {
	File int
	Line int
	Col  int
}

// Resolver maps source unit ordinals to display names.
type Resolver interface {
	FileName(num int) (string, bool)
}

func IsMarker(r rune) bool {
	return r == LocChar || r == Bit0 || r == Bit1
}

func HasMarkers(text string) bool {
	return strings.ContainsFunc(text, IsMarker)
}

// Encode serializes pos as LocChar file LocChar line LocChar col LocChar,
// each number written in binary with Bit0 and Bit1.
func Encode(pos Pos) string {
	var b strings.Builder
	b.WriteRune(LocChar)
	for _, n := range []int{pos.File, pos.Line, pos.Col} {
		writeBits(&b, n)
		b.WriteRune(LocChar)
	}
	return b.String()
}

func writeBits(b *strings.Builder, n int) {
	if n <= 0 {
		return
	}
	s := strconv.FormatUint(uint64(n), 2)
	for _, c := range s {
		if c == '1' {
			b.WriteRune(Bit1)
		} else {
			b.WriteRune(Bit0)
		}
	}
}

// Format renders pos the way restored diagnostics show it.
func Format(pos Pos, r Resolver) string {
	var name string
	if r != nil {
		name, _ = r.FileName(pos.File)
	}
	if name == "" {
		name = "<file " + strconv.Itoa(pos.File) + ">"
	}
	if pos.Col == 0 {
		return name + ":" + strconv.Itoa(pos.Line)
	}
	return name + ":" + strconv.Itoa(pos.Line) + ":" + strconv.Itoa(pos.Col)
}

// Restore replaces every well-formed marker run in text with its formatted
// position. Malformed runs are kept as they are.
func Restore(text string, r Resolver) string {
	start := strings.IndexRune(text, LocChar)
	if start < 0 {
		return text
	}

	var b strings.Builder
	b.Grow(len(text))
	for start >= 0 {
		b.WriteString(text[:start])
		pos, n, ok := decode(text[start:])
		if ok {
			b.WriteString(Format(pos, r))
			text = text[start+n:]
		} else {
			// keep the sentinel and move on
			b.WriteString(text[start : start+n])
			text = text[start+n:]
		}
		start = strings.IndexRune(text, LocChar)
	}
	b.WriteString(text)
	return b.String()
}

// decode parses one marker run at the beginning of s. It returns the number
// of bytes consumed; on failure that is the length of the leading LocChar.
func decode(s string) (pos Pos, n int, ok bool) {
	size := utf8.RuneLen(LocChar)
	i := size
	var nums [3]int
	for k := range nums {
		v := 0
		for {
			if i >= len(s) {
				return pos, size, false
			}
			r, w := utf8.DecodeRuneInString(s[i:])
			i += w
			if r == LocChar {
				break
			}
			switch r {
			case Bit0:
				v <<= 1
			case Bit1:
				v = v<<1 | 1
			default:
				return pos, size, false
			}
			if v < 0 {
				return pos, size, false
			}
		}
		nums[k] = v
	}
	return Pos{File: nums[0], Line: nums[1], Col: nums[2]}, i, true
}
