package dataset

import (
	"context"
	"fmt"
	"log"

	"golang.org/x/sync/errgroup"
)

// FileProvider loads and concatenates JSON sample files in the order given.
type FileProvider struct {
	Paths   []string
	Threads int
}

type loadedFile struct {
	index   int
	samples Samples
}

func (fp *FileProvider) Load(ctx context.Context) (Samples, error) {
	log.Println("load dataset started")
	defer log.Println("load dataset finished")

	if len(fp.Paths) == 0 {
		return Samples{}, fmt.Errorf("at least one dataset file is expected: %w", ErrMalformed)
	}

	g, ctx := errgroup.WithContext(ctx)

	var jobs = make(chan int)
	var results = make(chan loadedFile, len(fp.Paths))

	g.Go(func() error {
		defer close(jobs)
		for i := range fp.Paths {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case jobs <- i:
			}
		}
		return nil
	})

	var threads = fp.Threads
	if threads <= 0 || threads > len(fp.Paths) {
		threads = len(fp.Paths)
	}
	for i := 0; i < threads; i++ {
		g.Go(func() error {
			for index := range jobs {
				samples, err := LoadJSON(fp.Paths[index])
				if err != nil {
					return err
				}
				log.Println("loadDataset",
					"filepath", fp.Paths[index],
					"samples", samples.Len())
				results <- loadedFile{index: index, samples: samples}
			}
			return nil
		})
	}

	var err = g.Wait()
	close(results)
	if err != nil {
		return Samples{}, err
	}

	var ordered = make([]Samples, len(fp.Paths))
	for r := range results {
		ordered[r.index] = r.samples
	}
	var merged Samples
	for _, s := range ordered {
		merged.Inputs = append(merged.Inputs, s.Inputs...)
		merged.Outputs = append(merged.Outputs, s.Outputs...)
	}
	err = merged.Validate()
	if err != nil {
		return Samples{}, err
	}
	return merged, nil
}

// LoadFiles is a shortcut for FileProvider.Load.
func LoadFiles(ctx context.Context, paths ...string) (Samples, error) {
	var fp = &FileProvider{Paths: paths}
	return fp.Load(ctx)
}
