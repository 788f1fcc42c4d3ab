package nn

import (
	"math/rand"
	"testing"

	"github.com/2crayon/ml-adder/internal/ml"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	xorInputs  = [][]float64{{0, 0}, {0, 1}, {1, 0}, {1, 1}}
	xorOutputs = [][]float64{{0}, {1}, {1}, {0}}
	orOutputs  = [][]float64{{0}, {1}, {1}, {1}}
)

func randomParams(t *testing.T, structure []int, seed int64) *Params {
	t.Helper()
	p, err := NewParams(structure)
	require.NoError(t, err)
	p.Randomize(rand.New(rand.NewSource(seed)), -1, 1)
	return p
}

func TestForwardZeroParamsIsHalf(t *testing.T) {
	p, err := NewParams([]int{2, 1})
	require.NoError(t, err)
	for _, input := range [][]float64{{0, 0}, {1, -1}, {3.5, 100}, {-7, 2}} {
		out, err := Forward(p, input)
		require.NoError(t, err)
		assert.Equal(t, []float64{0.5}, out)
	}
}

func TestForwardMatchesHandComputation(t *testing.T) {
	p, err := NewParams([]int{2, 2, 1})
	require.NoError(t, err)
	copy(p.Layers[0].Weights.Data, []float64{1, -1, 2, 0.5})
	copy(p.Layers[0].Biases.Data, []float64{0.1, -0.2})
	copy(p.Layers[1].Weights.Data, []float64{0.3, -0.7})
	copy(p.Layers[1].Biases.Data, []float64{0.05})

	var x, y = 0.4, -0.6
	var h0 = ml.Sigmoid(x*1 + y*2 + 0.1)
	var h1 = ml.Sigmoid(x*-1 + y*0.5 - 0.2)
	var want = ml.Sigmoid(h0*0.3 + h1*-0.7 + 0.05)

	out, err := Forward(p, []float64{x, y})
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.InDelta(t, want, out[0], 1e-12)
}

func TestForwardOutputsInOpenUnitInterval(t *testing.T) {
	var rnd = rand.New(rand.NewSource(11))
	for seed := int64(0); seed < 10; seed++ {
		var p = randomParams(t, []int{3, 4, 2}, seed)
		var input = []float64{rnd.Float64()*10 - 5, rnd.Float64()*10 - 5, rnd.Float64()*10 - 5}
		out, err := Forward(p, input)
		require.NoError(t, err)
		require.Len(t, out, 2)
		for _, y := range out {
			assert.Greater(t, y, 0.0)
			assert.Less(t, y, 1.0)
		}
	}
}

func TestForwardDoesNotMutate(t *testing.T) {
	var p = randomParams(t, []int{2, 2, 1}, 1)
	var before = p.Clone()
	var input = []float64{0.25, 0.75}
	_, err := Forward(p, input)
	require.NoError(t, err)
	assert.Equal(t, before, p)
	assert.Equal(t, []float64{0.25, 0.75}, input)
}

func TestForwardInputShapeMismatch(t *testing.T) {
	var p = randomParams(t, []int{2, 1}, 1)
	_, err := Forward(p, []float64{1, 2, 3})
	require.ErrorIs(t, err, ml.ErrShapeMismatch)
}

func TestCostIsNonNegative(t *testing.T) {
	for seed := int64(0); seed < 10; seed++ {
		var p = randomParams(t, []int{2, 2, 1}, seed)
		c, err := Cost(p, xorInputs, xorOutputs)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, c, 0.0)
	}
}

func TestCostZeroWhenOutputsMatch(t *testing.T) {
	var p = randomParams(t, []int{2, 3, 2}, 5)
	var outputs = make([][]float64, len(xorInputs))
	for i, input := range xorInputs {
		out, err := Forward(p, input)
		require.NoError(t, err)
		outputs[i] = out
	}
	c, err := Cost(p, xorInputs, outputs)
	require.NoError(t, err)
	assert.InDelta(t, 0, c, 1e-15)

	outputs[2] = []float64{outputs[2][0] + 0.5, outputs[2][1]}
	c, err = Cost(p, xorInputs, outputs)
	require.NoError(t, err)
	assert.Greater(t, c, 0.0)
}

func TestCostDividesBySampleCountOnly(t *testing.T) {
	// Every output is 0.5, so each coordinate contributes 0.25.
	p, err := NewParams([]int{2, 3})
	require.NoError(t, err)
	var inputs = [][]float64{{0, 0}, {1, 1}}
	var outputs = [][]float64{{0, 0, 0}, {1, 1, 1}}
	c, err := Cost(p, inputs, outputs)
	require.NoError(t, err)
	assert.InDelta(t, 3*0.25, c, 1e-15)
}

func TestCostShapeErrors(t *testing.T) {
	var p = randomParams(t, []int{2, 1}, 1)
	tests := []struct {
		name    string
		inputs  [][]float64
		outputs [][]float64
		wantErr error
	}{
		{"count mismatch", [][]float64{{0, 0}}, [][]float64{{0}, {1}}, ml.ErrShapeMismatch},
		{"input width", [][]float64{{0, 0}, {1}}, [][]float64{{0}, {1}}, ml.ErrShapeMismatch},
		{"output width", [][]float64{{0, 0}, {1, 1}}, [][]float64{{0}, {1, 0}}, ml.ErrShapeMismatch},
		{"empty", nil, nil, ErrNoSamples},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Cost(p, tt.inputs, tt.outputs)
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
