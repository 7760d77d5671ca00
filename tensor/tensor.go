package tensor

import "fmt"

// Vector is a fixed-length sequence of reals. The length is set once at
// construction and never changes; there is no resize and no append.
type Vector struct {
	data []float64
}

// NewVector builds a Vector from literal values. The argument count fixes
// the length for the lifetime of the value.
func NewVector(vals ...float64) Vector {
	if len(vals) == 0 {
		panic("tensor: vector must have at least one element")
	}
	return Vector{data: append([]float64(nil), vals...)}
}

// Len returns the fixed length.
func (v Vector) Len() int { return len(v.data) }

// At returns the element at index i.
func (v Vector) At(i int) float64 {
	if i < 0 || i >= len(v.data) {
		panic(fmt.Sprintf("tensor: index %d out of range for length %d", i, len(v.data)))
	}
	return v.data[i]
}

// Add returns the element-wise sum of two vectors of the same length.
// A length mismatch is a construction-class defect, not a per-call error.
func (v Vector) Add(o Vector) Vector {
	if len(v.data) != len(o.data) {
		panic(fmt.Sprintf("tensor: length mismatch: %d vs %d", len(v.data), len(o.data)))
	}
	out := make([]float64, len(v.data))
	for i := range v.data {
		out[i] = v.data[i] + o.data[i]
	}
	return Vector{data: out}
}

// Map rewrites each element in place as fn(element). The shape never
// changes; this is the only mutation a Vector supports.
func (v *Vector) Map(fn func(float64) float64) {
	for i, x := range v.data {
		v.data[i] = fn(x)
	}
}

// Matrix is an R×C real matrix with both dimensions fixed at construction.
// Data is stored row-major in a flat slice.
type Matrix struct {
	rows, cols int
	data       []float64
}

// NewMatrix builds a Matrix from row vectors. All rows must have the same
// length; a ragged row set fails construction.
func NewMatrix(rows ...Vector) Matrix {
	if len(rows) == 0 {
		panic("tensor: matrix must have at least one row")
	}
	cols := rows[0].Len()
	data := make([]float64, 0, len(rows)*cols)
	for r, row := range rows {
		if row.Len() != cols {
			panic(fmt.Sprintf("tensor: ragged matrix: row %d has length %d, want %d", r, row.Len(), cols))
		}
		data = append(data, row.data...)
	}
	return Matrix{rows: len(rows), cols: cols, data: data}
}

// Rows returns the fixed row count.
func (m Matrix) Rows() int { return m.rows }

// Cols returns the fixed column count.
func (m Matrix) Cols() int { return m.cols }

// At returns the element at row r, column c.
func (m Matrix) At(r, c int) float64 {
	if r < 0 || r >= m.rows || c < 0 || c >= m.cols {
		panic(fmt.Sprintf("tensor: index (%d,%d) out of range for %dx%d matrix", r, c, m.rows, m.cols))
	}
	return m.data[r*m.cols+c]
}

// MulVec returns the matrix-vector product m·x as a new Vector of length
// Rows(). Accumulation runs row-major, left to right. The column count
// must equal the input length; the check never fires for layers built
// through nn.NewDense, which pins dimensions once at construction.
func (m Matrix) MulVec(x Vector) Vector {
	if m.cols != x.Len() {
		panic(fmt.Sprintf("tensor: dimension mismatch: %dx%d matrix times length-%d vector", m.rows, m.cols, x.Len()))
	}
	out := make([]float64, m.rows)
	for r := 0; r < m.rows; r++ {
		sum := 0.0
		for c := 0; c < m.cols; c++ {
			sum += m.data[r*m.cols+c] * x.data[c]
		}
		out[r] = sum
	}
	return Vector{data: out}
}
