package main

import (
	"context"
	"fmt"
	"io"

	"github.com/2crayon/ml-adder/internal/ml"
	"github.com/2crayon/ml-adder/internal/nn"
	"github.com/2crayon/ml-adder/internal/report"
)

func runPredict(cli *CommandArgs, stdout io.Writer) error {
	var netPath = cli.GetString("net", "")
	if netPath == "" {
		return fmt.Errorf("-net is required")
	}
	params, err := nn.LoadParams(mapPath(netPath))
	if err != nil {
		return err
	}

	if data := cli.GetString("data", ""); data != "" {
		samples, err := loadSamples(context.Background(), data, 1)
		if err != nil {
			return err
		}
		cost, err := nn.Cost(params, samples.Inputs, samples.Outputs)
		if err != nil {
			return err
		}
		fmt.Fprintf(stdout, "cost = %f\n", cost)
		return writePredictions(stdout, params, samples)
	}

	input, err := cli.GetFloats("input")
	if err != nil {
		return err
	}
	output, err := nn.Forward(params, input)
	if err != nil {
		return err
	}
	var row = ml.Matrix{Data: output, Rows: 1, Cols: len(output)}
	return report.WriteMatrix(stdout, &row)
}
