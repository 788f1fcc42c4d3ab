package ml

import (
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/floats"
)

// Matrix is a dense row-major matrix.
// Element (i, j) is stored at Data[i*Cols+j].
type Matrix struct {
	Data []float64
	Rows int
	Cols int
}

func NewMatrix(rows, cols int) Matrix {
	return Matrix{
		Data: make([]float64, rows*cols),
		Rows: rows,
		Cols: cols,
	}
}

// FromRows copies equal-length rows into a new matrix.
func FromRows(rows [][]float64) (Matrix, error) {
	if len(rows) == 0 {
		return Matrix{}, ErrEmpty
	}
	var cols = len(rows[0])
	var m = Matrix{
		Data: make([]float64, 0, len(rows)*cols),
		Rows: len(rows),
		Cols: cols,
	}
	for i, row := range rows {
		if len(row) != cols {
			return Matrix{}, fmt.Errorf("FromRows: row %d has %d values, want %d: %w",
				i, len(row), cols, ErrShapeMismatch)
		}
		m.Data = append(m.Data, row...)
	}
	return m, nil
}

func (m *Matrix) Get(row, col int) float64 {
	return m.Data[row*m.Cols+col]
}

func (m *Matrix) Set(row, col int, value float64) {
	m.Data[row*m.Cols+col] = value
}

// Row returns row i as a slice aliasing the matrix storage.
// It panics if i is out of range.
func (m *Matrix) Row(i int) []float64 {
	if i < 0 || i >= m.Rows {
		panic(fmt.Sprintf("ml: row %d out of range [0,%d)", i, m.Rows))
	}
	var start = i * m.Cols
	return m.Data[start : start+m.Cols : start+m.Cols]
}

func (m *Matrix) Fill(value float64) {
	for i := range m.Data {
		m.Data[i] = value
	}
}

// Randomize draws every element independently from U[low, high).
func (m *Matrix) Randomize(rnd *rand.Rand, low, high float64) {
	initUniform(rnd, m.Data, low, high)
}

func (m *Matrix) Clone() Matrix {
	var data = make([]float64, len(m.Data))
	copy(data, m.Data)
	return Matrix{
		Data: data,
		Rows: m.Rows,
		Cols: m.Cols,
	}
}

func (m *Matrix) SameShape(other *Matrix) bool {
	return m.Rows == other.Rows && m.Cols == other.Cols
}

// Add returns the elementwise sum m + other.
func (m *Matrix) Add(other *Matrix) (Matrix, error) {
	if !m.SameShape(other) {
		return Matrix{}, fmt.Errorf("Add: %dx%d + %dx%d: %w",
			m.Rows, m.Cols, other.Rows, other.Cols, ErrShapeMismatch)
	}
	var result = NewMatrix(m.Rows, m.Cols)
	floats.AddTo(result.Data, m.Data, other.Data)
	return result, nil
}

// Dot returns the matrix product m · other.
func (m *Matrix) Dot(other *Matrix) (Matrix, error) {
	if m.Cols != other.Rows {
		return Matrix{}, fmt.Errorf("Dot: %dx%d · %dx%d: %w",
			m.Rows, m.Cols, other.Rows, other.Cols, ErrShapeMismatch)
	}
	var inner = m.Cols
	var result = NewMatrix(m.Rows, other.Cols)
	for i := 0; i < result.Rows; i++ {
		for j := 0; j < result.Cols; j++ {
			var x float64
			for k := 0; k < inner; k++ {
				x += m.Data[i*m.Cols+k] * other.Data[k*other.Cols+j]
			}
			result.Data[i*result.Cols+j] = x
		}
	}
	return result, nil
}

// Sigmoid returns a new matrix with the logistic function applied to every element.
func (m *Matrix) Sigmoid() Matrix {
	var result = NewMatrix(m.Rows, m.Cols)
	for i, x := range m.Data {
		result.Data[i] = Sigmoid(x)
	}
	return result
}
