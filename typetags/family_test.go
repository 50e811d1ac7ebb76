package typetags

import (
	"errors"
	"testing"
)

func TestFamilies(t *testing.T) {
	counts := make(map[Family]int)
	for tag := range All() {
		f := FamilyOf(tag)
		if f == FamilyInvalid {
			t.Fatalf("no family for %v", tag)
		}
		counts[f]++
	}
	if counts[FamilyScalar] != 15 {
		t.Fatalf("got %v", counts[FamilyScalar])
	}
	if counts[FamilyArray] != 13 {
		t.Fatalf("got %v", counts[FamilyArray])
	}
	if counts[FamilyMeta] != 8 {
		t.Fatalf("got %v", counts[FamilyMeta])
	}
	if counts[FamilyDescriptor] != 12 {
		t.Fatalf("got %v", counts[FamilyDescriptor])
	}
	if counts[FamilyDescriptorArray] != 12 {
		t.Fatalf("got %v", counts[FamilyDescriptorArray])
	}
	if FamilyOf(numTags) != FamilyInvalid {
		t.Fatal()
	}
}

func TestLattice(t *testing.T) {
	arrays := make(map[Tag]Tag)
	descriptors := make(map[Tag]Tag)
	for tag := range All() {
		if !IsScalar(tag) || tag == None || tag == Void {
			continue
		}

		arr, ok := ArrayOf(tag)
		if !ok {
			t.Fatalf("no array for %v", tag)
		}
		if FamilyOf(arr) != FamilyArray {
			t.Fatalf("got %v", arr)
		}
		if prev, ok := arrays[arr]; ok {
			t.Fatalf("%v and %v share %v", prev, tag, arr)
		}
		arrays[arr] = tag
		if elem, ok := ElementOf(arr); !ok || elem != tag {
			t.Fatalf("got %v", elem)
		}
		if arr.String() != tag.String()+"Array" {
			t.Fatalf("got %v", arr)
		}

		desc, ok := DescriptorOf(tag)
		if tag == Custom {
			if ok {
				t.Fatalf("got %v", desc)
			}
			continue
		}
		if !ok || FamilyOf(desc) != FamilyDescriptor {
			t.Fatalf("got %v", desc)
		}
		if prev, ok := descriptors[desc]; ok {
			t.Fatalf("%v and %v share %v", prev, tag, desc)
		}
		descriptors[desc] = tag
		if desc.String() != tag.String()+"Type" {
			t.Fatalf("got %v", desc)
		}

		arrDesc, ok := DescriptorOf(arr)
		if !ok {
			t.Fatalf("no descriptor for %v", arr)
		}
		if want, ok := ArrayDescriptorOf(desc); !ok || arrDesc != want {
			t.Fatalf("got %v, want %v", arrDesc, want)
		}
		if back, ok := ElementDescriptorOf(arrDesc); !ok || back != desc {
			t.Fatalf("got %v", back)
		}
		if back, ok := Described(arrDesc); !ok || back != arr {
			t.Fatalf("got %v", back)
		}
		if back, ok := Described(desc); !ok || back != tag {
			t.Fatalf("got %v", back)
		}
	}
	if len(arrays) != 13 || len(descriptors) != 12 {
		t.Fatalf("got %d %d", len(arrays), len(descriptors))
	}
}

func TestOutOfFamily(t *testing.T) {
	for _, tag := range []Tag{None, Void, Type, HintArrayType, IntArray, IntType} {
		if got, ok := ArrayOf(tag); ok {
			t.Fatalf("ArrayOf(%v) = %v", tag, got)
		}
	}
	for _, tag := range []Tag{Int, Type, Empty, IntType, IntArrayType} {
		if got, ok := ElementOf(tag); ok {
			t.Fatalf("ElementOf(%v) = %v", tag, got)
		}
	}
	for _, tag := range []Tag{Int, IntArray, Custom, CustomType, IntArrayType} {
		if got, ok := ArrayDescriptorOf(tag); ok {
			t.Fatalf("ArrayDescriptorOf(%v) = %v", tag, got)
		}
	}
	for _, tag := range []Tag{IntArray, IntType, Array, HintArrayType} {
		if got, ok := ElementDescriptorOf(tag); ok {
			t.Fatalf("ElementDescriptorOf(%v) = %v", tag, got)
		}
	}
	for _, tag := range []Tag{None, Void, Custom, CustomArray, Array, IntType, IntArrayType} {
		if got, ok := DescriptorOf(tag); ok {
			t.Fatalf("DescriptorOf(%v) = %v", tag, got)
		}
	}

	func() {
		defer func() {
			p := recover()
			err, ok := p.(error)
			if !ok || !errors.Is(err, ErrNotInFamily) {
				t.Fatalf("got %v", p)
			}
		}()
		MustArrayOf(Void)
	}()
}

func TestParse(t *testing.T) {
	for tag := range All() {
		got, ok := Parse(tag.String())
		if !ok || got != tag {
			t.Fatalf("got %v", got)
		}
	}
	if _, ok := Parse("Nope"); ok {
		t.Fatal()
	}
	if s := Tag(200).String(); s != "Tag(200)" {
		t.Fatalf("got %s", s)
	}
}
