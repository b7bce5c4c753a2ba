// Package attr provides the attribute value model for loompy: a closed set
// of element kinds, one-dimensional arrays that retain the caller's backing
// slice, and the scalar/array duality threaded through both conversion
// pipelines.
package attr

import (
	"github.com/jlikhuva/loompy/pkg/loomerrors"
	stringpool "github.com/jlikhuva/loompy/pkg/strings"
)

// Kind is the element kind of an attribute array. It is computed once when
// the array is constructed and dispatched on exhaustively by the pipelines.
type Kind uint8

const (
	// KindInteger covers all signed and unsigned integer widths
	KindInteger Kind = iota
	// KindFloating covers float32 and float64
	KindFloating
	// KindBoolean covers bool elements (canonical persisted form is uint8 0/1)
	KindBoolean
	// KindText covers native unicode strings
	KindText
	// KindByteString covers fixed-width byte strings
	KindByteString
	// KindObject covers mixed or otherwise untyped elements
	KindObject
)

// String returns the kind name used in logs and metric labels.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindFloating:
		return "floating"
	case KindBoolean:
		return "boolean"
	case KindText:
		return "text"
	case KindByteString:
		return "bytestring"
	case KindObject:
		return "object"
	default:
		return "unknown"
	}
}

// Array is a one-dimensional attribute value. The backing slice supplied by
// the caller is retained unchanged so that numeric width (the dtype) is
// preserved through a passthrough normalization.
type Array struct {
	kind Kind
	data interface{}
	// width is the fixed element width of a byte-string array, zero otherwise
	width int
}

// Ints wraps an integer slice of any width without copying.
func Ints(data interface{}) (*Array, error) {
	switch data.(type) {
	case []int, []int8, []int16, []int32, []int64, []uint, []uint8, []uint16, []uint32, []uint64:
		return &Array{kind: KindInteger, data: data}, nil
	}
	return nil, loomerrors.New(loomerrors.ErrorTypeType, "not an integer slice").
		WithDetail("go_type", typeName(data))
}

// Floats wraps a float32 or float64 slice without copying.
func Floats(data interface{}) (*Array, error) {
	switch data.(type) {
	case []float32, []float64:
		return &Array{kind: KindFloating, data: data}, nil
	}
	return nil, loomerrors.New(loomerrors.ErrorTypeType, "not a floating-point slice").
		WithDetail("go_type", typeName(data))
}

// Bools wraps a bool slice.
func Bools(data []bool) *Array {
	return &Array{kind: KindBoolean, data: data}
}

// BoolBytes wraps a canonical 0/1 uint8 slice as a boolean array. This is
// the persisted form produced by the normalizer.
func BoolBytes(data []uint8) *Array {
	return &Array{kind: KindBoolean, data: data}
}

// Strings wraps a native text slice.
func Strings(data []string) *Array {
	return &Array{kind: KindText, data: data}
}

// ByteStrings wraps a byte-string slice, recording the fixed width as the
// longest element.
func ByteStrings(data [][]byte) *Array {
	width := 0
	for _, b := range data {
		if len(b) > width {
			width = len(b)
		}
	}
	return &Array{kind: KindByteString, data: data, width: width}
}

// Objects wraps an untyped element slice.
func Objects(data []interface{}) *Array {
	return &Array{kind: KindObject, data: data}
}

// FromSlice builds an Array from any accepted Go slice, classifying the
// element kind once. Typed slices keep their backing storage; []interface{}
// slices are reduced to a common element type where one exists, and kept as
// an object array otherwise so the layer above can decide how to coerce.
func FromSlice(v interface{}) (*Array, error) {
	switch s := v.(type) {
	case []int, []int8, []int16, []int32, []int64, []uint, []uint8, []uint16, []uint32, []uint64:
		return &Array{kind: KindInteger, data: s}, nil
	case []float32, []float64:
		return &Array{kind: KindFloating, data: s}, nil
	case []bool:
		return Bools(s), nil
	case []string:
		return Strings(s), nil
	case [][]byte:
		return ByteStrings(s), nil
	case []interface{}:
		return fromObjects(s), nil
	}
	return nil, loomerrors.New(loomerrors.ErrorTypeType, "unsupported array-like input").
		WithDetail("go_type", typeName(v))
}

// fromObjects infers a common element type for an untyped slice, mirroring
// array construction from a heterogeneous list. Integers promote to int64,
// a mix of integers and floats promotes to float64, and anything else stays
// an object array.
func fromObjects(s []interface{}) *Array {
	var (
		ints    = 0
		floats  = 0
		bools   = 0
		strs    = 0
		byteStr = 0
	)
	for _, e := range s {
		switch e.(type) {
		case int, int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
			ints++
		case float32, float64:
			floats++
		case bool:
			bools++
		case string:
			strs++
		case []byte:
			byteStr++
		}
	}

	n := len(s)
	switch {
	case n == 0:
		return Objects(s)
	case ints == n:
		out := make([]int64, n)
		for i, e := range s {
			out[i] = asInt64(e)
		}
		return &Array{kind: KindInteger, data: out}
	case ints+floats == n:
		out := make([]float64, n)
		for i, e := range s {
			out[i] = asFloat64(e)
		}
		return &Array{kind: KindFloating, data: out}
	case bools == n:
		out := make([]bool, n)
		for i, e := range s {
			out[i] = e.(bool)
		}
		return Bools(out)
	case strs == n:
		out := make([]string, n)
		for i, e := range s {
			out[i] = e.(string)
		}
		return Strings(out)
	case byteStr == n:
		out := make([][]byte, n)
		for i, e := range s {
			out[i] = e.([]byte)
		}
		return ByteStrings(out)
	default:
		return Objects(s)
	}
}

// Kind returns the element kind.
func (a *Array) Kind() Kind {
	return a.kind
}

// Data returns the backing slice unchanged.
func (a *Array) Data() interface{} {
	return a.data
}

// Width returns the fixed element width of a byte-string array.
func (a *Array) Width() int {
	return a.width
}

// Len returns the number of elements.
func (a *Array) Len() int {
	switch s := a.data.(type) {
	case []int:
		return len(s)
	case []int8:
		return len(s)
	case []int16:
		return len(s)
	case []int32:
		return len(s)
	case []int64:
		return len(s)
	case []uint:
		return len(s)
	case []uint8:
		return len(s)
	case []uint16:
		return len(s)
	case []uint32:
		return len(s)
	case []uint64:
		return len(s)
	case []float32:
		return len(s)
	case []float64:
		return len(s)
	case []bool:
		return len(s)
	case []string:
		return len(s)
	case [][]byte:
		return len(s)
	case []interface{}:
		return len(s)
	default:
		return 0
	}
}

// At returns element i as an untyped value.
func (a *Array) At(i int) interface{} {
	switch s := a.data.(type) {
	case []int:
		return s[i]
	case []int8:
		return s[i]
	case []int16:
		return s[i]
	case []int32:
		return s[i]
	case []int64:
		return s[i]
	case []uint:
		return s[i]
	case []uint8:
		return s[i]
	case []uint16:
		return s[i]
	case []uint32:
		return s[i]
	case []uint64:
		return s[i]
	case []float32:
		return s[i]
	case []float64:
		return s[i]
	case []bool:
		return s[i]
	case []string:
		return s[i]
	case [][]byte:
		return s[i]
	case []interface{}:
		return s[i]
	default:
		return nil
	}
}

// Strings returns the backing slice of a text array.
func (a *Array) Strings() ([]string, bool) {
	s, ok := a.data.([]string)
	return s, ok
}

// ByteStrings returns the backing slice of a byte-string array.
func (a *Array) ByteStrings() ([][]byte, bool) {
	s, ok := a.data.([][]byte)
	return s, ok
}

// Objects returns the backing slice of an object array.
func (a *Array) Objects() ([]interface{}, bool) {
	s, ok := a.data.([]interface{})
	return s, ok
}

// Bools returns the backing slice of a caller-side boolean array.
func (a *Array) Bools() ([]bool, bool) {
	s, ok := a.data.([]bool)
	return s, ok
}

// Uint8s returns the backing slice of a canonical boolean (0/1) array.
func (a *Array) Uint8s() ([]uint8, bool) {
	s, ok := a.data.([]uint8)
	return s, ok
}

// Value is an attribute value together with its scalar marker. A value
// normalized from a scalar input must be unwrapped back to a scalar on
// output; the flag is carried here instead of being re-detected at each
// call site.
type Value struct {
	Array  *Array
	Scalar bool
}

// ScalarValue wraps a one-element array as a scalar value.
func ScalarValue(a *Array) Value {
	return Value{Array: a, Scalar: true}
}

// ArrayValue wraps an array value.
func ArrayValue(a *Array) Value {
	return Value{Array: a, Scalar: false}
}

// Interface unwraps the value for the caller: element 0 for scalars, the
// backing slice otherwise.
func (v Value) Interface() interface{} {
	if v.Array == nil {
		return nil
	}
	if v.Scalar {
		if v.Array.Len() == 0 {
			return nil
		}
		return v.Array.At(0)
	}
	return v.Array.Data()
}

// Len returns the element count of the underlying array.
func (v Value) Len() int {
	if v.Array == nil {
		return 0
	}
	return v.Array.Len()
}

// typeName reports the Go type of a rejected input for error details.
func typeName(v interface{}) string {
	return stringpool.Sprintf("%T", v)
}

func asInt64(v interface{}) int64 {
	switch n := v.(type) {
	case int:
		return int64(n)
	case int8:
		return int64(n)
	case int16:
		return int64(n)
	case int32:
		return int64(n)
	case int64:
		return n
	case uint:
		return int64(n)
	case uint8:
		return int64(n)
	case uint16:
		return int64(n)
	case uint32:
		return int64(n)
	case uint64:
		return int64(n)
	default:
		return 0
	}
}

func asFloat64(v interface{}) float64 {
	switch n := v.(type) {
	case float32:
		return float64(n)
	case float64:
		return n
	default:
		return float64(asInt64(v))
	}
}
