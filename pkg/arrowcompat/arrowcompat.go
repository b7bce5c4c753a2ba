// Package arrowcompat converts Apache Arrow arrays into attribute arrays so
// columnar callers can feed the normalizer without copying through
// interface{} slices element by element at the call site.
package arrowcompat

import (
	"github.com/apache/arrow-go/v18/arrow"
	"github.com/apache/arrow-go/v18/arrow/array"

	"github.com/jlikhuva/loompy/pkg/attr"
	"github.com/jlikhuva/loompy/pkg/loomerrors"
)

// FromArrow converts an Arrow array to a 1-D attribute array. Numeric
// element widths are preserved; string and binary arrays map to text and
// byte-string kinds. Null entries are rejected: the attribute model has no
// missing-value representation.
func FromArrow(a arrow.Array) (*attr.Array, error) {
	if a.NullN() > 0 {
		return nil, loomerrors.New(loomerrors.ErrorTypeValue, "attribute arrays cannot contain nulls").
			WithDetail("nulls", a.NullN()).
			WithDetail("arrow_type", a.DataType().String())
	}

	switch arr := a.(type) {
	case *array.Int8:
		return attr.Ints(numericValues[int8](arr))
	case *array.Int16:
		return attr.Ints(numericValues[int16](arr))
	case *array.Int32:
		return attr.Ints(numericValues[int32](arr))
	case *array.Int64:
		return attr.Ints(numericValues[int64](arr))
	case *array.Uint8:
		return attr.Ints(numericValues[uint8](arr))
	case *array.Uint16:
		return attr.Ints(numericValues[uint16](arr))
	case *array.Uint32:
		return attr.Ints(numericValues[uint32](arr))
	case *array.Uint64:
		return attr.Ints(numericValues[uint64](arr))
	case *array.Float32:
		return attr.Floats(numericValues[float32](arr))
	case *array.Float64:
		return attr.Floats(numericValues[float64](arr))
	case *array.Boolean:
		out := make([]bool, arr.Len())
		for i := range out {
			out[i] = arr.Value(i)
		}
		return attr.Bools(out), nil
	case *array.String:
		return attr.Strings(stringValues(arr)), nil
	case *array.LargeString:
		return attr.Strings(stringValues(arr)), nil
	case *array.Binary:
		return attr.ByteStrings(binaryValues(arr)), nil
	case *array.LargeBinary:
		return attr.ByteStrings(binaryValues(arr)), nil
	case *array.FixedSizeBinary:
		return attr.ByteStrings(binaryValues(arr)), nil
	default:
		return nil, loomerrors.New(loomerrors.ErrorTypeType, "unsupported arrow array type").
			WithDetail("arrow_type", a.DataType().String())
	}
}

// valuer is the per-element accessor shared by Arrow's typed arrays.
type valuer[T any] interface {
	Len() int
	Value(i int) T
}

func numericValues[T any](a valuer[T]) []T {
	out := make([]T, a.Len())
	for i := range out {
		out[i] = a.Value(i)
	}
	return out
}

func stringValues(a valuer[string]) []string {
	out := make([]string, a.Len())
	for i := range out {
		out[i] = a.Value(i)
	}
	return out
}

func binaryValues(a valuer[[]byte]) [][]byte {
	out := make([][]byte, a.Len())
	for i := range out {
		elem := a.Value(i)
		c := make([]byte, len(elem))
		copy(c, elem)
		out[i] = c
	}
	return out
}
