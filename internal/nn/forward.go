package nn

import (
	"fmt"

	"github.com/2crayon/ml-adder/internal/ml"
)

// Forward runs one input vector through every layer:
// a = sigmoid(a · W_i + b_i), starting from the input as a 1 x n0 row.
// Every output coordinate lies in (0, 1).
func Forward(p *Params, input []float64) ([]float64, error) {
	if len(input) != p.InputSize() {
		return nil, fmt.Errorf("Forward: input has %d values, want %d: %w",
			len(input), p.InputSize(), ml.ErrShapeMismatch)
	}
	var activation = ml.NewMatrix(1, len(input))
	copy(activation.Data, input)
	for i := range p.Layers {
		var layer = &p.Layers[i]
		z, err := activation.Dot(&layer.Weights)
		if err != nil {
			return nil, fmt.Errorf("Forward: layer %d: %w", layer.Index, err)
		}
		z, err = z.Add(&layer.Biases)
		if err != nil {
			return nil, fmt.Errorf("Forward: layer %d: %w", layer.Index, err)
		}
		activation = z.Sigmoid()
	}
	return activation.Data, nil
}

// Cost is the squared error of the forward pass against the targets,
// summed over every output coordinate and divided by the sample count only.
func Cost(p *Params, inputs, outputs [][]float64) (float64, error) {
	var err = checkSamples(p, inputs, outputs)
	if err != nil {
		return 0, err
	}
	return cost(p, inputs, outputs)
}

func cost(p *Params, inputs, outputs [][]float64) (float64, error) {
	var total float64
	for i := range inputs {
		predicted, err := Forward(p, inputs[i])
		if err != nil {
			return 0, err
		}
		for j, target := range outputs[i] {
			total += ml.SquaredError(predicted[j], target)
		}
	}
	return total / float64(len(inputs)), nil
}

func checkSamples(p *Params, inputs, outputs [][]float64) error {
	if len(inputs) != len(outputs) {
		return fmt.Errorf("Cost: %d inputs, %d outputs: %w", len(inputs), len(outputs), ml.ErrShapeMismatch)
	}
	if len(inputs) == 0 {
		return ErrNoSamples
	}
	var inputSize, outputSize = p.InputSize(), p.OutputSize()
	for i := range inputs {
		if len(inputs[i]) != inputSize {
			return fmt.Errorf("Cost: sample %d input has %d values, want %d: %w",
				i, len(inputs[i]), inputSize, ml.ErrShapeMismatch)
		}
		if len(outputs[i]) != outputSize {
			return fmt.Errorf("Cost: sample %d output has %d values, want %d: %w",
				i, len(outputs[i]), outputSize, ml.ErrShapeMismatch)
		}
	}
	return nil
}
