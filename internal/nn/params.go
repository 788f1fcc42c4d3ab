// Package nn holds the parameters of a fully connected sigmoid network and the
// numeric training steps over them: forward pass, MSE cost, finite-difference
// gradient estimation and gradient descent.
package nn

import (
	"fmt"
	"math/rand"

	"github.com/2crayon/ml-adder/internal/ml"
)

// Layer maps an n_i wide activation row to an n_{i+1} wide one.
// Weights is n_i x n_{i+1}, Biases is 1 x n_{i+1}.
type Layer struct {
	Index   int
	Weights ml.Matrix
	Biases  ml.Matrix
}

// Params is the ordered set of layers of a network.
// Structure [n0, n1, ..., nL] yields L layers.
type Params struct {
	Layers []Layer
}

// NewParams allocates zero-initialized layers for the given structure.
func NewParams(structure []int) (*Params, error) {
	if len(structure) < 2 {
		return nil, fmt.Errorf("NewParams(%v): need at least 2 widths: %w", structure, ErrInvalidStructure)
	}
	for _, width := range structure {
		if width <= 0 {
			return nil, fmt.Errorf("NewParams(%v): width %d: %w", structure, width, ErrInvalidStructure)
		}
	}
	var layers = make([]Layer, len(structure)-1)
	for i := range layers {
		var inputSize = structure[i]
		var outputSize = structure[i+1]
		layers[i] = Layer{
			Index:   i,
			Weights: ml.NewMatrix(inputSize, outputSize),
			Biases:  ml.NewMatrix(1, outputSize),
		}
	}
	return &Params{Layers: layers}, nil
}

// Structure derives the layer widths from the current weight shapes.
func (p *Params) Structure() []int {
	if len(p.Layers) == 0 {
		return nil
	}
	var result = make([]int, 0, len(p.Layers)+1)
	result = append(result, p.Layers[0].Weights.Rows)
	for i := range p.Layers {
		result = append(result, p.Layers[i].Weights.Cols)
	}
	return result
}

func (p *Params) InputSize() int {
	return p.Layers[0].Weights.Rows
}

func (p *Params) OutputSize() int {
	return p.Layers[len(p.Layers)-1].Weights.Cols
}

// Size returns the total number of scalar parameters.
func (p *Params) Size() int {
	var n int
	for i := range p.Layers {
		n += len(p.Layers[i].Weights.Data) + len(p.Layers[i].Biases.Data)
	}
	return n
}

// Randomize draws every weight and bias independently from U[low, high).
func (p *Params) Randomize(rnd *rand.Rand, low, high float64) {
	p.each(func(m *ml.Matrix) {
		m.Randomize(rnd, low, high)
	})
}

func (p *Params) Fill(value float64) {
	p.each(func(m *ml.Matrix) {
		m.Fill(value)
	})
}

func (p *Params) Clone() *Params {
	var layers = make([]Layer, len(p.Layers))
	for i := range p.Layers {
		layers[i] = Layer{
			Index:   p.Layers[i].Index,
			Weights: p.Layers[i].Weights.Clone(),
			Biases:  p.Layers[i].Biases.Clone(),
		}
	}
	return &Params{Layers: layers}
}

// SameStructure reports whether p and other have identical layer shapes.
func (p *Params) SameStructure(other *Params) bool {
	if len(p.Layers) != len(other.Layers) {
		return false
	}
	for i := range p.Layers {
		if !p.Layers[i].Weights.SameShape(&other.Layers[i].Weights) ||
			!p.Layers[i].Biases.SameShape(&other.Layers[i].Biases) {
			return false
		}
	}
	return true
}

// each visits the parameter matrices in canonical order:
// layer 0 weights, layer 0 biases, layer 1 weights, ...
func (p *Params) each(f func(m *ml.Matrix)) {
	for i := range p.Layers {
		f(&p.Layers[i].Weights)
		f(&p.Layers[i].Biases)
	}
}

// matrices returns pointers to the parameter matrices in canonical order.
func (p *Params) matrices() []*ml.Matrix {
	var result = make([]*ml.Matrix, 0, 2*len(p.Layers))
	p.each(func(m *ml.Matrix) {
		result = append(result, m)
	})
	return result
}
