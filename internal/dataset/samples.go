// Package dataset provides training sets for the network: literal truth
// tables and JSON files of {"input": [...], "output": [...]} records.
package dataset

import (
	"errors"
	"fmt"
)

var (
	// ErrMalformed is returned for empty or non-rectangular sample sets.
	ErrMalformed = errors.New("dataset: malformed samples")

	// ErrUnknown is returned by Builtin for an unknown set name.
	ErrUnknown = errors.New("dataset: unknown builtin")
)

// Samples holds a training set as two parallel collections.
type Samples struct {
	Inputs  [][]float64
	Outputs [][]float64
}

func (s *Samples) Len() int {
	return len(s.Inputs)
}

func (s *Samples) InputSize() int {
	if len(s.Inputs) == 0 {
		return 0
	}
	return len(s.Inputs[0])
}

func (s *Samples) OutputSize() int {
	if len(s.Outputs) == 0 {
		return 0
	}
	return len(s.Outputs[0])
}

func (s *Samples) Add(input, output []float64) {
	s.Inputs = append(s.Inputs, input)
	s.Outputs = append(s.Outputs, output)
}

// Validate checks that the set is non-empty and rectangular.
func (s *Samples) Validate() error {
	if len(s.Inputs) != len(s.Outputs) {
		return fmt.Errorf("%d inputs, %d outputs: %w", len(s.Inputs), len(s.Outputs), ErrMalformed)
	}
	if len(s.Inputs) == 0 {
		return fmt.Errorf("no samples: %w", ErrMalformed)
	}
	var inputSize, outputSize = s.InputSize(), s.OutputSize()
	if inputSize == 0 || outputSize == 0 {
		return fmt.Errorf("empty sample vectors: %w", ErrMalformed)
	}
	for i := range s.Inputs {
		if len(s.Inputs[i]) != inputSize {
			return fmt.Errorf("sample %d: input has %d values, want %d: %w",
				i, len(s.Inputs[i]), inputSize, ErrMalformed)
		}
		if len(s.Outputs[i]) != outputSize {
			return fmt.Errorf("sample %d: output has %d values, want %d: %w",
				i, len(s.Outputs[i]), outputSize, ErrMalformed)
		}
	}
	return nil
}
