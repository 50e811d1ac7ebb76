package typetags

import (
	"errors"
	"fmt"
	"iter"
)

// Tag is the kind of a runtime value or of a type description.
// The declaration order is significant: each family is a contiguous block and
// the scalar, array and descriptor blocks are parallel.
type Tag uint8

const (
	None Tag = iota
	Void
	Bool
	Byte
	Short
	Int
	Long
	Float
	Double
	Decimal
	String
	Char
	Date
	Object
	Custom

	BoolArray
	ByteArray
	ShortArray
	IntArray
	LongArray
	FloatArray
	DoubleArray
	DecimalArray
	StringArray
	CharArray
	DateArray
	ObjectArray
	CustomArray

	Type
	BasicType
	CustomType
	Array
	OfRefType
	Empty
	HintType
	HintArrayType

	BoolType
	ByteType
	ShortType
	IntType
	LongType
	FloatType
	DoubleType
	DecimalType
	StringType
	CharType
	DateType
	ObjectType

	BoolArrayType
	ByteArrayType
	ShortArrayType
	IntArrayType
	LongArrayType
	FloatArrayType
	DoubleArrayType
	DecimalArrayType
	StringArrayType
	CharArrayType
	DateArrayType
	ObjectArrayType

	numTags
)

var ErrNotInFamily = errors.New("tag not in family")

var names = [numTags]string{
	"None", "Void", "Bool", "Byte", "Short", "Int", "Long", "Float", "Double", "Decimal", "String", "Char", "Date", "Object", "Custom",
	"BoolArray", "ByteArray", "ShortArray", "IntArray", "LongArray", "FloatArray", "DoubleArray", "DecimalArray", "StringArray", "CharArray", "DateArray", "ObjectArray", "CustomArray",
	"Type", "BasicType", "CustomType", "Array", "OfRefType", "Empty", "HintType", "HintArrayType",
	"BoolType", "ByteType", "ShortType", "IntType", "LongType", "FloatType", "DoubleType", "DecimalType", "StringType", "CharType", "DateType", "ObjectType",
	"BoolArrayType", "ByteArrayType", "ShortArrayType", "IntArrayType", "LongArrayType", "FloatArrayType", "DoubleArrayType", "DecimalArrayType", "StringArrayType", "CharArrayType", "DateArrayType", "ObjectArrayType",
}

var byName = func() map[string]Tag {
	m := make(map[string]Tag, numTags)
	for i, name := range names {
		m[name] = Tag(i)
	}
	return m
}()

func (t Tag) String() string {
	if t < numTags {
		return names[t]
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

func (t Tag) Valid() bool {
	return t < numTags
}

// Parse returns the tag with the given name.
func Parse(name string) (Tag, bool) {
	t, ok := byName[name]
	return t, ok
}

// All iterates every tag in declaration order.
func All() iter.Seq[Tag] {
	return func(yield func(Tag) bool) {
		for t := range numTags {
			if !yield(t) {
				return
			}
		}
	}
}
