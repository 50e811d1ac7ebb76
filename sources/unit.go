package sources

import (
	"path/filepath"
	"strings"

	"github.com/reusee/scriptrt/locs"
)

// Unit is one source file of a script.
type Unit struct {
	File  string
	Base  string
	Num   int
	Lines []string
}

func NewUnit(file string, num int, base string) *Unit {
	return &Unit{
		File:  file,
		Base:  base,
		Num:   num,
		Lines: []string{},
	}
}

func (u *Unit) SetText(text string) {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	u.Lines = strings.Split(text, "\n")
}

// Line returns the 1-based line n.
func (u *Unit) Line(n int) (string, bool) {
	if n < 1 || n > len(u.Lines) {
		return "", false
	}
	return u.Lines[n-1], true
}

// DisplayName is the file path relative to the script base when possible.
func (u *Unit) DisplayName() string {
	if u.Base != "" {
		if rel, err := filepath.Rel(u.Base, u.File); err == nil && !strings.HasPrefix(rel, "..") {
			return rel
		}
	}
	return u.File
}

// Units are the source files of one script, indexed by Num.
type Units []*Unit

var _ locs.Resolver = Units(nil)

func (u Units) FileName(num int) (string, bool) {
	for _, unit := range u {
		if unit.Num == num {
			return unit.DisplayName(), true
		}
	}
	return "", false
}

func (u Units) ByFile(file string) (*Unit, bool) {
	for _, unit := range u {
		if unit.File == file {
			return unit, true
		}
	}
	return nil, false
}

// Add appends a unit for file and returns it; an existing unit is reused.
func (u *Units) Add(file string, base string) *Unit {
	if unit, ok := u.ByFile(file); ok {
		return unit
	}
	unit := NewUnit(file, len(*u), base)
	*u = append(*u, unit)
	return unit
}
