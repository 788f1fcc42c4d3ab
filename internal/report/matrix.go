// Package report renders matrices, network parameters and training progress as text.
package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/2crayon/ml-adder/internal/ml"
	"github.com/2crayon/ml-adder/internal/nn"
)

// WriteMatrix writes one line per row: "|\t" followed by every value with
// four decimals and a trailing tab.
func WriteMatrix(w io.Writer, m *ml.Matrix) error {
	var sb strings.Builder
	for i := 0; i < m.Rows; i++ {
		sb.WriteString("|\t")
		for _, x := range m.Row(i) {
			fmt.Fprintf(&sb, "%.4f\t", x)
		}
		sb.WriteString("\n")
	}
	_, err := io.WriteString(w, sb.String())
	return err
}

func FormatMatrix(m *ml.Matrix) string {
	var sb strings.Builder
	WriteMatrix(&sb, m)
	return sb.String()
}

// WriteParams dumps every layer's weights and biases.
func WriteParams(w io.Writer, p *nn.Params) error {
	for i := range p.Layers {
		var layer = &p.Layers[i]
		_, err := fmt.Fprintf(w, "w%d:\n%sb%d:\n%s",
			layer.Index+1, FormatMatrix(&layer.Weights),
			layer.Index+1, FormatMatrix(&layer.Biases))
		if err != nil {
			return err
		}
	}
	return nil
}
