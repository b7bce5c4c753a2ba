package attr

import (
	"github.com/jlikhuva/loompy/pkg/loomerrors"
)

// Sparse is a two-dimensional sparse matrix. The shape coercer densifies a
// sparse input and then applies the ordinary matrix rules to the result.
type Sparse interface {
	// Dims returns the matrix dimensions.
	Dims() (rows, cols int)
	// NNZ returns the number of stored (explicit) entries.
	NNZ() int
	// Dense materializes the full matrix, with absent entries as zero.
	Dense() *Matrix
}

// COOMatrix is a coordinate-format sparse matrix.
type COOMatrix struct {
	rows, cols int
	rowIdx     []int
	colIdx     []int
	vals       []float64
}

// NewCOOMatrix builds a COO matrix from parallel coordinate slices.
func NewCOOMatrix(rows, cols int, rowIdx, colIdx []int, vals []float64) (*COOMatrix, error) {
	if len(rowIdx) != len(vals) || len(colIdx) != len(vals) {
		return nil, loomerrors.New(loomerrors.ErrorTypeShape, "coordinate slices must have equal length").
			WithDetail("rows_len", len(rowIdx)).
			WithDetail("cols_len", len(colIdx)).
			WithDetail("vals_len", len(vals))
	}
	for i := range vals {
		if rowIdx[i] < 0 || rowIdx[i] >= rows || colIdx[i] < 0 || colIdx[i] >= cols {
			return nil, loomerrors.New(loomerrors.ErrorTypeShape, "coordinate out of bounds").
				WithDetail("row", rowIdx[i]).
				WithDetail("col", colIdx[i]).
				WithDetail("index", i)
		}
	}
	return &COOMatrix{rows: rows, cols: cols, rowIdx: rowIdx, colIdx: colIdx, vals: vals}, nil
}

// Dims returns the matrix dimensions.
func (m *COOMatrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// NNZ returns the number of stored entries.
func (m *COOMatrix) NNZ() int {
	return len(m.vals)
}

// Dense materializes the full matrix. Duplicate coordinates accumulate.
func (m *COOMatrix) Dense() *Matrix {
	data := make([]float64, m.rows*m.cols)
	for i, v := range m.vals {
		data[m.rowIdx[i]*m.cols+m.colIdx[i]] += v
	}
	dense, _ := NewMatrix(m.rows, m.cols, data)
	return dense
}

// CSRMatrix is a compressed sparse row matrix.
type CSRMatrix struct {
	rows, cols int
	indptr     []int
	indices    []int
	vals       []float64
}

// NewCSRMatrix builds a CSR matrix. indptr must have rows+1 entries and
// indices/vals must be parallel.
func NewCSRMatrix(rows, cols int, indptr, indices []int, vals []float64) (*CSRMatrix, error) {
	if len(indptr) != rows+1 {
		return nil, loomerrors.New(loomerrors.ErrorTypeShape, "row pointer slice must have rows+1 entries").
			WithDetail("rows", rows).
			WithDetail("indptr_len", len(indptr))
	}
	if len(indices) != len(vals) {
		return nil, loomerrors.New(loomerrors.ErrorTypeShape, "index and value slices must have equal length").
			WithDetail("indices_len", len(indices)).
			WithDetail("vals_len", len(vals))
	}
	if indptr[0] != 0 || indptr[rows] != len(vals) {
		return nil, loomerrors.New(loomerrors.ErrorTypeShape, "row pointer slice is inconsistent").
			WithDetail("first", indptr[0]).
			WithDetail("last", indptr[rows])
	}
	for _, j := range indices {
		if j < 0 || j >= cols {
			return nil, loomerrors.New(loomerrors.ErrorTypeShape, "column index out of bounds").
				WithDetail("col", j)
		}
	}
	return &CSRMatrix{rows: rows, cols: cols, indptr: indptr, indices: indices, vals: vals}, nil
}

// Dims returns the matrix dimensions.
func (m *CSRMatrix) Dims() (rows, cols int) {
	return m.rows, m.cols
}

// NNZ returns the number of stored entries.
func (m *CSRMatrix) NNZ() int {
	return len(m.vals)
}

// Dense materializes the full matrix.
func (m *CSRMatrix) Dense() *Matrix {
	data := make([]float64, m.rows*m.cols)
	for r := 0; r < m.rows; r++ {
		for k := m.indptr[r]; k < m.indptr[r+1]; k++ {
			data[r*m.cols+m.indices[k]] = m.vals[k]
		}
	}
	dense, _ := NewMatrix(m.rows, m.cols, data)
	return dense
}
