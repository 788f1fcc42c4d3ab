package report

import (
	"fmt"
	"io"
	"log"

	"github.com/gosuri/uilive"
)

// Progress prints the per-iteration cost, either as log lines or as a single
// live-updating terminal line.
type Progress struct {
	Every int

	total  int
	logger *log.Logger
	live   *uilive.Writer
}

func NewProgress(total int, logger *log.Logger) *Progress {
	return &Progress{
		Every:  1,
		total:  total,
		logger: logger,
	}
}

// NewLiveProgress renders to out, redrawing the same line on every update.
func NewLiveProgress(total int, out io.Writer) *Progress {
	var writer = uilive.New()
	writer.Out = out
	writer.Start()
	return &Progress{
		Every: 1,
		total: total,
		live:  writer,
	}
}

func (p *Progress) Update(iteration int, cost float64) {
	var last = iteration == p.total-1
	if p.Every > 1 && iteration%p.Every != 0 && !last {
		return
	}
	if p.live != nil {
		fmt.Fprintf(p.live, "%d/%d: cost = %f\n", iteration+1, p.total, cost)
		return
	}
	p.logger.Printf("%d: cost = %f", iteration, cost)
}

func (p *Progress) Stop() {
	if p.live != nil {
		p.live.Stop()
	}
}
