package texts

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/language"
	"golang.org/x/text/search"
)

type Comparison uint8

const (
	// Invariant ignores diacritics and location markers, and is case-sensitive.
	Invariant Comparison = iota
	Ordinal
	OrdinalIgnoreCase
	// Culture uses the collation rules of Comparer.Culture.
	Culture
)

func (c Comparison) String() string {
	switch c {
	case Invariant:
		return "invariant"
	case Ordinal:
		return "ordinal"
	case OrdinalIgnoreCase:
		return "ordinal-ignore-case"
	case Culture:
		return "culture"
	}
	return fmt.Sprintf("Comparison(%d)", uint8(c))
}

func ParseComparison(name string) (Comparison, bool) {
	for c := Invariant; c <= Culture; c++ {
		if c.String() == name {
			return c, true
		}
	}
	return Invariant, false
}

// FromEnd as the start of a backward search means the last character.
const FromEnd = -1

type Comparer struct {
	Culture language.Tag
}

var Default = Comparer{
	Culture: language.Und,
}

// ForCulture returns a comparer for a BCP 47 culture name. An empty name
// yields Default.
func ForCulture(name string) (Comparer, error) {
	if name == "" {
		return Default, nil
	}
	tag, err := language.Parse(name)
	if err != nil {
		return Default, fmt.Errorf("culture %q: %w", name, err)
	}
	return Comparer{
		Culture: tag,
	}, nil
}

func EIndexOf(text, str string, pos int, cmp Comparison) int {
	return Default.IndexOf(text, str, pos, cmp)
}

func ELastIndexOf(text, str string, pos int, cmp Comparison) int {
	return Default.LastIndexOf(text, str, pos, cmp)
}

func EStartsWith(text, value string) bool {
	return Default.HasPrefix(text, value, Invariant)
}

// IndexOf returns the rune index of the first match of str in text starting
// at rune index pos, or -1.
func (c Comparer) IndexOf(text, str string, pos int, cmp Comparison) int {
	n := utf8.RuneCountInString(text)
	if pos < 0 || pos >= n {
		return -1
	}

	switch cmp {
	case Ordinal:
		return ordinalIndex(text, str, pos)
	case OrdinalIgnoreCase:
		return ordinalIndex(upper(text), upper(str), pos)
	case Culture:
		return c.cultureIndex(text, str, pos)
	}

	needle := foldNeedle(str)
	if needle == "" {
		return pos
	}
	return fold(text).index(needle, pos)
}

// LastIndexOf searches backward from rune index pos; a match must end at or
// before pos.
func (c Comparer) LastIndexOf(text, str string, pos int, cmp Comparison) int {
	n := utf8.RuneCountInString(text)
	if pos == FromEnd {
		pos = n - 1
	}
	if pos < 0 || pos >= n {
		return -1
	}

	switch cmp {
	case Ordinal:
		return ordinalLastIndex(text, str, pos)
	case OrdinalIgnoreCase:
		return ordinalLastIndex(upper(text), upper(str), pos)
	case Culture:
		return c.cultureLastIndex(text, str, pos)
	}

	needle := foldNeedle(str)
	if needle == "" {
		return pos
	}
	return fold(text).lastIndex(needle, pos+1)
}

func (c Comparer) HasPrefix(text, value string, cmp Comparison) bool {
	switch cmp {
	case Ordinal:
		return strings.HasPrefix(text, value)
	case OrdinalIgnoreCase:
		return strings.HasPrefix(upper(text), upper(value))
	case Culture:
		if value == "" {
			return true
		}
		start, _ := c.matcher().IndexString(text, value, search.Anchor)
		return start == 0
	}
	return fold(text).hasPrefix(foldNeedle(value))
}

func (c Comparer) matcher() *search.Matcher {
	return search.New(c.Culture)
}

func (c Comparer) cultureIndex(text, str string, pos int) int {
	offset := byteOffset(text, pos)
	start, _ := c.matcher().IndexString(text[offset:], str)
	if start < 0 {
		return -1
	}
	return pos + utf8.RuneCountInString(text[offset:offset+start])
}

func (c Comparer) cultureLastIndex(text, str string, pos int) int {
	region := text[:byteOffset(text, pos+1)]
	m := c.matcher()
	last := -1
	offset := 0
	for offset < len(region) {
		start, end := m.IndexString(region[offset:], str)
		if start < 0 {
			break
		}
		if end >= 0 {
			last = offset + start
		}
		_, w := utf8.DecodeRuneInString(region[offset+start:])
		offset += start + max(w, 1)
	}
	if last < 0 {
		return -1
	}
	return utf8.RuneCountInString(region[:last])
}

func ordinalIndex(text, str string, pos int) int {
	offset := byteOffset(text, pos)
	k := strings.Index(text[offset:], str)
	if k < 0 {
		return -1
	}
	return pos + utf8.RuneCountInString(text[offset:offset+k])
}

func ordinalLastIndex(text, str string, pos int) int {
	region := text[:byteOffset(text, pos+1)]
	k := strings.LastIndex(region, str)
	if k < 0 {
		return -1
	}
	return utf8.RuneCountInString(region[:k])
}

// upper maps each rune on its own, so rune indices are preserved.
func upper(s string) string {
	return strings.Map(unicode.ToUpper, s)
}

func byteOffset(s string, runeIndex int) int {
	if runeIndex <= 0 {
		return 0
	}
	i := 0
	for offset := range s {
		if i == runeIndex {
			return offset
		}
		i++
	}
	return len(s)
}
