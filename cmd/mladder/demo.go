package main

import (
	"fmt"
	"io"

	"github.com/2crayon/ml-adder/internal/ml"
	"github.com/2crayon/ml-adder/internal/report"
)

const separator = "===================="

// runDemo prints two 2x2 matrices of ones and their sum.
func runDemo(stdout io.Writer) error {
	var a = ml.NewMatrix(2, 2)
	a.Fill(1)
	var b = ml.NewMatrix(2, 2)
	b.Fill(1)

	sum, err := a.Add(&b)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(stdout, "a:\n%s\n%s\na+b\n%s\n", report.FormatMatrix(&a), separator, report.FormatMatrix(&sum))
	return err
}
