package starunits

import (
	"math"

	"github.com/reusee/scriptrt/typetags"
	"go.starlark.net/starlark"
)

// typeTagOf classifies a script value. Sequences whose elements share one
// scalar kind map to that kind's array, other sequences to ObjectArray.
func typeTagOf(v starlark.Value) typetags.Tag {
	switch v := v.(type) {

	case starlark.NoneType:
		return typetags.Void

	case starlark.Bool:
		return typetags.Bool

	case starlark.Int:
		i, ok := v.Int64()
		switch {
		case !ok:
			return typetags.Decimal
		case i < math.MinInt32 || i > math.MaxInt32:
			return typetags.Long
		}
		return typetags.Int

	case starlark.Float:
		return typetags.Double

	case starlark.String:
		return typetags.String

	case starlark.Bytes:
		return typetags.ByteArray

	case *starlark.Dict:
		return typetags.Object

	case starlark.Indexable:
		return sequenceTag(v)

	}
	return typetags.Custom
}

func sequenceTag(seq starlark.Indexable) typetags.Tag {
	if seq.Len() == 0 {
		return typetags.ObjectArray
	}
	elem := typeTagOf(seq.Index(0))
	for i := 1; i < seq.Len(); i++ {
		if typeTagOf(seq.Index(i)) != elem {
			return typetags.ObjectArray
		}
	}
	if !typetags.IsScalar(elem) {
		return typetags.ObjectArray
	}
	arr, ok := typetags.ArrayOf(elem)
	if !ok {
		return typetags.ObjectArray
	}
	return arr
}
