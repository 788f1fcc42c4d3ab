package ml

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func mustFromRows(t *testing.T, rows [][]float64) Matrix {
	t.Helper()
	m, err := FromRows(rows)
	require.NoError(t, err)
	return m
}

func TestNewMatrixIsZero(t *testing.T) {
	var m = NewMatrix(3, 4)
	assert.Equal(t, 3, m.Rows)
	assert.Equal(t, 4, m.Cols)
	require.Len(t, m.Data, 12)
	for _, x := range m.Data {
		assert.Zero(t, x)
	}
}

func TestFromRows(t *testing.T) {
	tests := []struct {
		name    string
		rows    [][]float64
		wantErr error
	}{
		{"square", [][]float64{{1, 2}, {3, 4}}, nil},
		{"single row", [][]float64{{1, 2, 3}}, nil},
		{"column", [][]float64{{1}, {2}, {3}}, nil},
		{"ragged", [][]float64{{1, 2}, {3}}, ErrShapeMismatch},
		{"ragged longer", [][]float64{{1}, {2, 3}}, ErrShapeMismatch},
		{"empty", nil, ErrEmpty},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := FromRows(tt.rows)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			require.Equal(t, len(tt.rows), m.Rows)
			require.Equal(t, len(tt.rows[0]), m.Cols)
			for i, row := range tt.rows {
				assert.Equal(t, row, m.Row(i))
			}
		})
	}
}

func TestFromRowsCopies(t *testing.T) {
	var rows = [][]float64{{1, 2}, {3, 4}}
	var m = mustFromRows(t, rows)
	rows[0][0] = 100
	assert.Equal(t, 1.0, m.Get(0, 0))
}

func TestRowAliasesStorage(t *testing.T) {
	var m = NewMatrix(2, 3)
	var row = m.Row(1)
	row[2] = 7
	assert.Equal(t, 7.0, m.Get(1, 2))
	assert.Equal(t, 7.0, m.Data[5])

	m.Set(0, 1, 5)
	assert.Equal(t, []float64{0, 5, 0}, m.Row(0))
}

func TestRowOutOfRangePanics(t *testing.T) {
	var m = NewMatrix(2, 2)
	assert.Panics(t, func() { m.Row(2) })
	assert.Panics(t, func() { m.Row(-1) })
}

func TestRowDoesNotGrowIntoNextRow(t *testing.T) {
	var m = NewMatrix(2, 2)
	var row = append(m.Row(0), 9)
	assert.Len(t, row, 3)
	assert.Equal(t, 0.0, m.Get(1, 0))
}

func TestFill(t *testing.T) {
	var m = NewMatrix(2, 3)
	m.Fill(1.5)
	for _, x := range m.Data {
		assert.Equal(t, 1.5, x)
	}
}

func TestRandomize(t *testing.T) {
	var m = NewMatrix(20, 20)
	m.Randomize(rand.New(rand.NewSource(1)), -2, 3)
	var distinct = make(map[float64]struct{})
	for _, x := range m.Data {
		assert.GreaterOrEqual(t, x, -2.0)
		assert.Less(t, x, 3.0)
		distinct[x] = struct{}{}
	}
	assert.Greater(t, len(distinct), 1)
}

func TestRandomizeIsDeterministicForSeed(t *testing.T) {
	var a, b = NewMatrix(3, 3), NewMatrix(3, 3)
	a.Randomize(rand.New(rand.NewSource(42)), 0, 1)
	b.Randomize(rand.New(rand.NewSource(42)), 0, 1)
	assert.Equal(t, a.Data, b.Data)
}

func TestAdd(t *testing.T) {
	var rnd = rand.New(rand.NewSource(7))
	var a, b = NewMatrix(3, 4), NewMatrix(3, 4)
	a.Randomize(rnd, -1, 1)
	b.Randomize(rnd, -1, 1)
	var aBefore, bBefore = a.Clone(), b.Clone()

	sum, err := a.Add(&b)
	require.NoError(t, err)
	for i := 0; i < a.Rows; i++ {
		for j := 0; j < a.Cols; j++ {
			assert.Equal(t, a.Get(i, j)+b.Get(i, j), sum.Get(i, j))
		}
	}

	reversed, err := b.Add(&a)
	require.NoError(t, err)
	assert.Equal(t, sum, reversed)

	assert.Equal(t, aBefore, a)
	assert.Equal(t, bBefore, b)
}

func TestAddShapeMismatch(t *testing.T) {
	var a, b = NewMatrix(2, 3), NewMatrix(3, 2)
	_, err := a.Add(&b)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestDot(t *testing.T) {
	var a = mustFromRows(t, [][]float64{{1, 2, 3}, {4, 5, 6}})
	var b = mustFromRows(t, [][]float64{{7, 8}, {9, 10}, {11, 12}})
	product, err := a.Dot(&b)
	require.NoError(t, err)
	assert.Equal(t, 2, product.Rows)
	assert.Equal(t, 2, product.Cols)
	assert.Equal(t, []float64{58, 64, 139, 154}, product.Data)
}

func TestDotMatchesGonum(t *testing.T) {
	var rnd = rand.New(rand.NewSource(3))
	var a, b = NewMatrix(4, 5), NewMatrix(5, 3)
	a.Randomize(rnd, -1, 1)
	b.Randomize(rnd, -1, 1)

	product, err := a.Dot(&b)
	require.NoError(t, err)

	var want mat.Dense
	want.Mul(mat.NewDense(a.Rows, a.Cols, a.Data), mat.NewDense(b.Rows, b.Cols, b.Data))
	for i := 0; i < product.Rows; i++ {
		for j := 0; j < product.Cols; j++ {
			assert.InDelta(t, want.At(i, j), product.Get(i, j), 1e-12)
		}
	}
}

func TestDotWithZeroMatrix(t *testing.T) {
	var a = NewMatrix(3, 2)
	a.Randomize(rand.New(rand.NewSource(5)), -10, 10)
	var zero = NewMatrix(2, 4)
	product, err := a.Dot(&zero)
	require.NoError(t, err)
	assert.Equal(t, 3, product.Rows)
	assert.Equal(t, 4, product.Cols)
	for _, x := range product.Data {
		assert.Zero(t, x)
	}
}

func TestDotShapeMismatch(t *testing.T) {
	var a, b = NewMatrix(2, 3), NewMatrix(2, 3)
	_, err := a.Dot(&b)
	require.ErrorIs(t, err, ErrShapeMismatch)
}

func TestSigmoidMatrix(t *testing.T) {
	var m = mustFromRows(t, [][]float64{{0, 1}, {-1, 2}})
	var before = m.Clone()
	var s = m.Sigmoid()
	assert.Equal(t, before, m)
	assert.Equal(t, 0.5, s.Get(0, 0))
	for i, x := range m.Data {
		assert.Equal(t, Sigmoid(x), s.Data[i])
	}
}

func TestCloneIsDeep(t *testing.T) {
	var m = mustFromRows(t, [][]float64{{1, 2}})
	var c = m.Clone()
	c.Set(0, 0, 9)
	assert.Equal(t, 1.0, m.Get(0, 0))
}
