package typetags

import "fmt"

type Family uint8

const (
	FamilyInvalid Family = iota
	FamilyScalar
	FamilyArray
	FamilyMeta
	FamilyDescriptor
	FamilyDescriptorArray
)

func (f Family) String() string {
	switch f {
	case FamilyScalar:
		return "scalar"
	case FamilyArray:
		return "array"
	case FamilyMeta:
		return "meta"
	case FamilyDescriptor:
		return "descriptor"
	case FamilyDescriptorArray:
		return "descriptor-array"
	}
	return "invalid"
}

func FamilyOf(t Tag) Family {
	switch {
	case t <= Custom:
		return FamilyScalar
	case t <= CustomArray:
		return FamilyArray
	case t <= HintArrayType:
		return FamilyMeta
	case t <= ObjectType:
		return FamilyDescriptor
	case t <= ObjectArrayType:
		return FamilyDescriptorArray
	}
	return FamilyInvalid
}

func IsScalar(t Tag) bool {
	return FamilyOf(t) == FamilyScalar
}

func IsArray(t Tag) bool {
	f := FamilyOf(t)
	return f == FamilyArray || f == FamilyDescriptorArray
}

// ArrayOf maps a scalar kind to its array kind. None and Void have no
// array kind. Descriptors are mapped by ArrayDescriptorOf.
func ArrayOf(t Tag) (Tag, bool) {
	if t >= Bool && t <= Custom {
		return t - Bool + BoolArray, true
	}
	return 0, false
}

// ElementOf is the inverse of ArrayOf.
func ElementOf(t Tag) (Tag, bool) {
	if t >= BoolArray && t <= CustomArray {
		return t - BoolArray + Bool, true
	}
	return 0, false
}

// ArrayDescriptorOf maps the descriptor of a scalar kind to the descriptor
// of its array kind.
func ArrayDescriptorOf(t Tag) (Tag, bool) {
	if t >= BoolType && t <= ObjectType {
		return t - BoolType + BoolArrayType, true
	}
	return 0, false
}

// ElementDescriptorOf is the inverse of ArrayDescriptorOf.
func ElementDescriptorOf(t Tag) (Tag, bool) {
	if t >= BoolArrayType && t <= ObjectArrayType {
		return t - BoolArrayType + BoolType, true
	}
	return 0, false
}

// DescriptorOf maps a scalar or array kind to the tag describing its type.
// Custom kinds are described by the generic CustomType meta tag and have no
// per-kind descriptor.
func DescriptorOf(t Tag) (Tag, bool) {
	switch {
	case t >= Bool && t <= Object:
		return t - Bool + BoolType, true
	case t >= BoolArray && t <= ObjectArray:
		return t - BoolArray + BoolArrayType, true
	}
	return 0, false
}

// Described is the inverse of DescriptorOf.
func Described(t Tag) (Tag, bool) {
	switch {
	case t >= BoolType && t <= ObjectType:
		return t - BoolType + Bool, true
	case t >= BoolArrayType && t <= ObjectArrayType:
		return t - BoolArrayType + BoolArray, true
	}
	return 0, false
}

func MustArrayOf(t Tag) Tag {
	return must(ArrayOf, t, "ArrayOf")
}

func MustElementOf(t Tag) Tag {
	return must(ElementOf, t, "ElementOf")
}

func MustDescriptorOf(t Tag) Tag {
	return must(DescriptorOf, t, "DescriptorOf")
}

func must(fn func(Tag) (Tag, bool), t Tag, what string) Tag {
	ret, ok := fn(t)
	if !ok {
		panic(fmt.Errorf("%s(%v): %w", what, t, ErrNotInFamily))
	}
	return ret
}
