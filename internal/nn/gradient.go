package nn

import (
	"fmt"
	"runtime"
	"sync/atomic"

	"github.com/2crayon/ml-adder/internal/ml"
	"golang.org/x/sync/errgroup"
)

// FiniteDiff estimates the gradient of Cost with respect to every parameter by
// forward differences: g_k = (Cost(p + eps*e_k) - Cost(p)) / eps.
// Coordinates are probed in canonical order (layer 0 weights row-major,
// layer 0 biases, layer 1 weights, ...). p is not modified.
//
// eps must be non-zero; eps == 0 produces non-finite gradients.
func FiniteDiff(p *Params, inputs, outputs [][]float64, eps float64) (*Params, error) {
	return finiteDiff(p, inputs, outputs, eps, 1)
}

// FiniteDiffConcurrent is FiniteDiff with probes spread over workers goroutines,
// each owning a scratch copy of p. workers <= 0 means runtime.NumCPU().
// The result is identical to FiniteDiff.
func FiniteDiffConcurrent(p *Params, inputs, outputs [][]float64, eps float64, workers int) (*Params, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return finiteDiff(p, inputs, outputs, eps, workers)
}

type probe struct {
	matrix int
	index  int
}

func finiteDiff(p *Params, inputs, outputs [][]float64, eps float64, workers int) (*Params, error) {
	var err = checkSamples(p, inputs, outputs)
	if err != nil {
		return nil, fmt.Errorf("FiniteDiff: %w", err)
	}
	baseline, err := cost(p, inputs, outputs)
	if err != nil {
		return nil, fmt.Errorf("FiniteDiff: %w", err)
	}

	var grad = zerosLike(p)
	var gradMatrices = grad.matrices()
	var probes = make([]probe, 0, p.Size())
	for mi, m := range p.matrices() {
		for k := range m.Data {
			probes = append(probes, probe{matrix: mi, index: k})
		}
	}
	if workers > len(probes) {
		workers = len(probes)
	}

	var index int32 = -1
	var g errgroup.Group
	for w := 0; w < workers; w++ {
		var scratch = p.Clone()
		g.Go(func() error {
			var matrices = scratch.matrices()
			for {
				var i = int(atomic.AddInt32(&index, 1))
				if i >= len(probes) {
					return nil
				}
				var pr = probes[i]
				var data = matrices[pr.matrix].Data
				var saved = data[pr.index]
				data[pr.index] = saved + eps
				c, err := cost(scratch, inputs, outputs)
				data[pr.index] = saved
				if err != nil {
					return err
				}
				gradMatrices[pr.matrix].Data[pr.index] = (c - baseline) / eps
			}
		})
	}
	err = g.Wait()
	if err != nil {
		return nil, fmt.Errorf("FiniteDiff: %w", err)
	}
	return grad, nil
}

func zerosLike(p *Params) *Params {
	var layers = make([]Layer, len(p.Layers))
	for i := range p.Layers {
		var l = &p.Layers[i]
		layers[i] = Layer{
			Index:   l.Index,
			Weights: ml.NewMatrix(l.Weights.Rows, l.Weights.Cols),
			Biases:  ml.NewMatrix(l.Biases.Rows, l.Biases.Cols),
		}
	}
	return &Params{Layers: layers}
}
