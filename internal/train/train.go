// Package train runs the fixed-budget training loop:
// cost, gradient estimate, descent, repeated Iterations times.
package train

import (
	"fmt"
	"log"

	"github.com/2crayon/ml-adder/internal/dataset"
	"github.com/2crayon/ml-adder/internal/nn"
)

type State int

const (
	Initialized State = iota
	Iterating
	Done
)

func (s State) String() string {
	switch s {
	case Initialized:
		return "initialized"
	case Iterating:
		return "iterating"
	case Done:
		return "done"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

type Trainer struct {
	Samples    dataset.Samples
	Eps        float64
	Rate       float64
	Iterations int
	// Threads is the number of finite-difference workers; 1 runs them inline,
	// 0 uses every CPU.
	Threads int
	// OnIteration, if set, receives the cost measured at the start of each iteration.
	OnIteration func(iteration int, cost float64)

	state State
}

type Result struct {
	Params *nn.Params
	// Costs[i] is the cost before the update of iteration i.
	Costs []float64
}

func (t *Trainer) State() State {
	return t.state
}

// Run trains p for exactly t.Iterations full-batch steps and returns the final
// params. p itself is not modified. There is no early exit on the cost.
func (t *Trainer) Run(p *nn.Params) (Result, error) {
	if t.Iterations < 0 {
		return Result{}, fmt.Errorf("train: negative iteration count %d", t.Iterations)
	}

	log.Println("Train started")
	defer log.Println("Train finished")

	var inputs, outputs = t.Samples.Inputs, t.Samples.Outputs
	var costs = make([]float64, 0, t.Iterations)
	t.state = Initialized
	for iteration := 0; iteration < t.Iterations; iteration++ {
		t.state = Iterating
		cost, err := nn.Cost(p, inputs, outputs)
		if err != nil {
			return Result{}, err
		}
		costs = append(costs, cost)
		if t.OnIteration != nil {
			t.OnIteration(iteration, cost)
		}

		grad, err := t.gradient(p)
		if err != nil {
			return Result{}, err
		}
		p, err = nn.Descend(p, grad, t.Rate)
		if err != nil {
			return Result{}, err
		}
	}
	t.state = Done

	return Result{
		Params: p,
		Costs:  costs,
	}, nil
}

func (t *Trainer) gradient(p *nn.Params) (*nn.Params, error) {
	if t.Threads == 1 {
		return nn.FiniteDiff(p, t.Samples.Inputs, t.Samples.Outputs, t.Eps)
	}
	return nn.FiniteDiffConcurrent(p, t.Samples.Inputs, t.Samples.Outputs, t.Eps, t.Threads)
}
