package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/2crayon/ml-adder/internal/dataset"
	"github.com/2crayon/ml-adder/internal/nn"
	"github.com/2crayon/ml-adder/internal/report"
	"github.com/2crayon/ml-adder/internal/train"
)

type trainConfig struct {
	data       string
	layers     []int
	iterations int
	eps        float64
	rate       float64
	low        float64
	high       float64
	seed       int64
	threads    int
	savePath   string
	live       bool
	every      int
}

func parseTrainConfig(cli *CommandArgs) (trainConfig, error) {
	var config = trainConfig{
		data:     cli.GetString("data", "xor"),
		savePath: cli.GetString("save", ""),
	}
	var err error
	if config.layers, err = cli.GetInts("layers", nil); err != nil {
		return config, err
	}
	if config.iterations, err = cli.GetInt("iterations", 10_000); err != nil {
		return config, err
	}
	if config.eps, err = cli.GetFloat("eps", 0.1); err != nil {
		return config, err
	}
	if config.rate, err = cli.GetFloat("rate", 1.0); err != nil {
		return config, err
	}
	if config.low, err = cli.GetFloat("low", 0); err != nil {
		return config, err
	}
	if config.high, err = cli.GetFloat("high", 1); err != nil {
		return config, err
	}
	seed, err := cli.GetInt("seed", 0)
	if err != nil {
		return config, err
	}
	config.seed = int64(seed)
	if config.threads, err = cli.GetInt("threads", 1); err != nil {
		return config, err
	}
	live, err := cli.GetInt("live", 0)
	if err != nil {
		return config, err
	}
	config.live = live != 0
	if config.every, err = cli.GetInt("every", 1); err != nil {
		return config, err
	}

	if config.eps == 0 {
		return config, fmt.Errorf("-eps must be non-zero")
	}
	if config.iterations < 0 {
		return config, fmt.Errorf("-iterations must be >= 0, got %d", config.iterations)
	}
	if config.high < config.low {
		return config, fmt.Errorf("-high %v is below -low %v", config.high, config.low)
	}
	if config.seed == 0 {
		config.seed = time.Now().UnixNano()
	}
	if config.threads <= 0 {
		config.threads = runtime.NumCPU()
	}
	return config, nil
}

func loadSamples(ctx context.Context, data string, threads int) (dataset.Samples, error) {
	if samples, err := dataset.Builtin(data); err == nil {
		return samples, nil
	}
	var paths = strings.Split(data, ",")
	for i := range paths {
		paths[i] = mapPath(strings.TrimSpace(paths[i]))
	}
	var provider = &dataset.FileProvider{
		Paths:   paths,
		Threads: threads,
	}
	return provider.Load(ctx)
}

func runTrain(config trainConfig, stdout io.Writer) error {
	log.Printf("%+v", config)

	samples, err := loadSamples(context.Background(), config.data, config.threads)
	if err != nil {
		return err
	}
	log.Println("Loaded dataset", samples.Len())

	var structure = config.layers
	if structure == nil {
		structure = []int{samples.InputSize(), 2, samples.OutputSize()}
	}
	if len(structure) < 2 {
		return fmt.Errorf("layers %v: need at least input and output widths", structure)
	}
	if structure[0] != samples.InputSize() || structure[len(structure)-1] != samples.OutputSize() {
		return fmt.Errorf("layers %v do not fit dataset with %d inputs and %d outputs",
			structure, samples.InputSize(), samples.OutputSize())
	}

	params, err := nn.NewParams(structure)
	if err != nil {
		return err
	}
	params.Randomize(rand.New(rand.NewSource(config.seed)), config.low, config.high)
	log.Println("Num of weights", params.Size())

	var progress *report.Progress
	if config.live {
		progress = report.NewLiveProgress(config.iterations, os.Stderr)
	} else {
		progress = report.NewProgress(config.iterations, log.Default())
	}
	progress.Every = config.every

	var trainer = &train.Trainer{
		Samples:     samples,
		Eps:         config.eps,
		Rate:        config.rate,
		Iterations:  config.iterations,
		Threads:     config.threads,
		OnIteration: progress.Update,
	}
	result, err := trainer.Run(params)
	progress.Stop()
	if err != nil {
		return err
	}

	finalCost, err := nn.Cost(result.Params, samples.Inputs, samples.Outputs)
	if err != nil {
		return err
	}
	fmt.Fprintf(stdout, "cost = %f\n", finalCost)
	err = report.WriteParams(stdout, result.Params)
	if err != nil {
		return err
	}
	err = writePredictions(stdout, result.Params, samples)
	if err != nil {
		return err
	}

	if config.savePath != "" {
		var path = mapPath(config.savePath)
		err = result.Params.Save(path)
		if err != nil {
			return err
		}
		log.Println("Stored network", path)
	}
	return nil
}

func writePredictions(w io.Writer, p *nn.Params, samples dataset.Samples) error {
	for i := range samples.Inputs {
		predicted, err := nn.Forward(p, samples.Inputs[i])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintf(w, "%v -> %.4f (want %v)\n", samples.Inputs[i], predicted, samples.Outputs[i])
		if err != nil {
			return err
		}
	}
	return nil
}
