package nn

import (
	"fmt"

	"github.com/2crayon/ml-adder/internal/ml"
	"gonum.org/v1/gonum/floats"
)

// Descend returns new params p - rate*grad. Neither p nor grad is modified.
func Descend(p, grad *Params, rate float64) (*Params, error) {
	if !p.SameStructure(grad) {
		return nil, fmt.Errorf("Descend: params %v, gradient %v: %w",
			p.Structure(), grad.Structure(), ml.ErrShapeMismatch)
	}
	var result = p.Clone()
	var deltas = grad.matrices()
	for i, m := range result.matrices() {
		floats.AddScaled(m.Data, -rate, deltas[i].Data)
	}
	return result, nil
}
