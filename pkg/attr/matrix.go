package attr

import (
	"github.com/jlikhuva/loompy/pkg/loomerrors"
)

// Matrix is a dense two-dimensional numeric array in row-major order. The
// shape coercer accepts a Matrix only when exactly one axis has length 1;
// the backing slice type is preserved through extraction.
type Matrix struct {
	rows, cols int
	data       interface{}
}

// NewMatrix builds a dense matrix over a flat row-major numeric slice.
func NewMatrix(rows, cols int, data interface{}) (*Matrix, error) {
	if rows < 0 || cols < 0 {
		return nil, loomerrors.New(loomerrors.ErrorTypeShape, "matrix dimensions must be non-negative").
			WithDetail("rows", rows).
			WithDetail("cols", cols)
	}

	n := sliceLen(data)
	if n < 0 {
		return nil, loomerrors.New(loomerrors.ErrorTypeType, "matrix data must be a numeric slice").
			WithDetail("go_type", typeName(data))
	}
	if n != rows*cols {
		return nil, loomerrors.New(loomerrors.ErrorTypeShape, "matrix data length does not match dimensions").
			WithDetail("rows", rows).
			WithDetail("cols", cols).
			WithDetail("len", n)
	}

	return &Matrix{rows: rows, cols: cols, data: data}, nil
}

// Dims returns the matrix dimensions.
func (m *Matrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// Data returns the flat row-major backing slice.
func (m *Matrix) Data() interface{} {
	return m.data
}

// Row returns row i as a new slice of the backing type.
func (m *Matrix) Row(i int) interface{} {
	switch s := m.data.(type) {
	case []int:
		return rowOf(s, i, m.cols)
	case []int8:
		return rowOf(s, i, m.cols)
	case []int16:
		return rowOf(s, i, m.cols)
	case []int32:
		return rowOf(s, i, m.cols)
	case []int64:
		return rowOf(s, i, m.cols)
	case []uint:
		return rowOf(s, i, m.cols)
	case []uint8:
		return rowOf(s, i, m.cols)
	case []uint16:
		return rowOf(s, i, m.cols)
	case []uint32:
		return rowOf(s, i, m.cols)
	case []uint64:
		return rowOf(s, i, m.cols)
	case []float32:
		return rowOf(s, i, m.cols)
	case []float64:
		return rowOf(s, i, m.cols)
	default:
		return nil
	}
}

// Col returns column j as a new slice of the backing type.
func (m *Matrix) Col(j int) interface{} {
	switch s := m.data.(type) {
	case []int:
		return colOf(s, j, m.rows, m.cols)
	case []int8:
		return colOf(s, j, m.rows, m.cols)
	case []int16:
		return colOf(s, j, m.rows, m.cols)
	case []int32:
		return colOf(s, j, m.rows, m.cols)
	case []int64:
		return colOf(s, j, m.rows, m.cols)
	case []uint:
		return colOf(s, j, m.rows, m.cols)
	case []uint8:
		return colOf(s, j, m.rows, m.cols)
	case []uint16:
		return colOf(s, j, m.rows, m.cols)
	case []uint32:
		return colOf(s, j, m.rows, m.cols)
	case []uint64:
		return colOf(s, j, m.rows, m.cols)
	case []float32:
		return colOf(s, j, m.rows, m.cols)
	case []float64:
		return colOf(s, j, m.rows, m.cols)
	default:
		return nil
	}
}

func rowOf[T any](data []T, i, cols int) []T {
	out := make([]T, cols)
	copy(out, data[i*cols:(i+1)*cols])
	return out
}

func colOf[T any](data []T, j, rows, cols int) []T {
	out := make([]T, rows)
	for r := range out {
		out[r] = data[r*cols+j]
	}
	return out
}

// sliceLen returns the length of a numeric slice, or -1 for anything else.
func sliceLen(data interface{}) int {
	switch s := data.(type) {
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
	default:
		return -1
	}
}
