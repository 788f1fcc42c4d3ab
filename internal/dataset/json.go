package dataset

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

type record struct {
	Input  []float64 `json:"input"`
	Output []float64 `json:"output"`
}

// Decode reads a JSON array of {"input": [...], "output": [...]} records.
func Decode(r io.Reader) (Samples, error) {
	var records []record
	var err = json.NewDecoder(r).Decode(&records)
	if err != nil {
		return Samples{}, fmt.Errorf("%v: %w", err, ErrMalformed)
	}
	var result Samples
	for _, rec := range records {
		result.Add(rec.Input, rec.Output)
	}
	err = result.Validate()
	if err != nil {
		return Samples{}, err
	}
	return result, nil
}

func LoadJSON(path string) (Samples, error) {
	file, err := os.Open(path)
	if err != nil {
		return Samples{}, err
	}
	defer file.Close()

	samples, err := Decode(file)
	if err != nil {
		return Samples{}, fmt.Errorf("%s: %w", path, err)
	}
	return samples, nil
}
