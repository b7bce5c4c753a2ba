// Package shape reduces any accepted array-like input container to a
// one-dimensional attribute array, preserving element order.
package shape

import (
	"github.com/jlikhuva/loompy/pkg/attr"
	"github.com/jlikhuva/loompy/pkg/loomerrors"
)

// Coerce converts an accepted container to a 1-D attribute array.
//
// Accepted inputs:
//   - *attr.Array: already one-dimensional, returned unchanged
//   - *attr.Matrix: must have exactly one axis of length 1; the other axis
//     is extracted in order with its backing slice type preserved
//   - attr.Sparse: densified, then coerced as a dense matrix
//   - any supported Go slice or []interface{}: classified by element kind;
//     mixed-type []interface{} stays an object array for the caller above
//
// Anything else is rejected with a type error; a matrix with no singleton
// axis is rejected with a shape error.
func Coerce(v interface{}) (*attr.Array, error) {
	switch in := v.(type) {
	case *attr.Array:
		return in, nil
	case *attr.Matrix:
		return coerceMatrix(in)
	case attr.Sparse:
		return coerceMatrix(in.Dense())
	case nil:
		return nil, loomerrors.New(loomerrors.ErrorTypeType, "unsupported array-like input").
			WithDetail("go_type", "nil")
	default:
		arr, err := attr.FromSlice(v)
		if err != nil {
			return nil, loomerrors.Wrap(err, loomerrors.ErrorTypeType, "unsupported array-like input")
		}
		return arr, nil
	}
}

func coerceMatrix(m *attr.Matrix) (*attr.Array, error) {
	rows, cols := m.Dims()
	var flat interface{}
	switch {
	case rows == 1:
		flat = m.Row(0)
	case cols == 1:
		flat = m.Col(0)
	default:
		return nil, loomerrors.New(loomerrors.ErrorTypeShape, "attribute values must be 1-dimensional").
			WithDetail("rows", rows).
			WithDetail("cols", cols)
	}
	return attr.FromSlice(flat)
}
