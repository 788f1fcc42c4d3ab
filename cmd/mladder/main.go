// Command mladder trains and runs small sigmoid networks whose gradients are
// estimated by finite differences.
//
//	mladder train -data xor -layers 2,2,1 -iterations 10000 -eps 0.1 -rate 1
//	mladder train -data ~/samples/a.json,~/samples/b.json -save net.ml
//	mladder predict -net net.ml -input 1,0
//	mladder demo
package main

import (
	"io"
	"log"
	"os"
)

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)

	var err = run(os.Args, os.Stdout)
	if err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	var cli = NewCommandArgs(args)
	var handler = NewCommandHandler()
	handler.Add("train", func() error {
		config, err := parseTrainConfig(cli)
		if err != nil {
			return err
		}
		return runTrain(config, stdout)
	})
	handler.Add("predict", func() error {
		return runPredict(cli, stdout)
	})
	handler.Add("demo", func() error {
		return runDemo(stdout)
	})
	return handler.Execute(cli.CommandName())
}
