package game

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/louisbranch/fairdice/internal/core/probability"
	"golang.org/x/text/message"
)

const (
	labelWidth = 5
	cellWidth  = 6
)

// WriteTable renders a probability table with two decimals per cell. Rows are
// the first die of each pair, columns the second.
func WriteTable(w io.Writer, p *message.Printer, table probability.Table) error {
	var b strings.Builder
	b.WriteString(strings.Repeat(" ", labelWidth))
	for j := 0; j < table.Size(); j++ {
		b.WriteString(pad(dieLabel(j), cellWidth))
	}
	b.WriteString("\n")
	for i := 0; i < table.Size(); i++ {
		b.WriteString(pad(dieLabel(i), labelWidth))
		for j := 0; j < table.Size(); j++ {
			b.WriteString(pad(p.Sprintf("%.2f", table.Probability(i, j)), cellWidth))
		}
		b.WriteString("\n")
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// FormatCycle renders a cycle of die indices as "D1 -> D2 -> D3 -> D1".
func FormatCycle(cycle []int) string {
	if len(cycle) == 0 {
		return ""
	}
	parts := make([]string, 0, len(cycle)+1)
	for _, i := range cycle {
		parts = append(parts, dieLabel(i))
	}
	parts = append(parts, dieLabel(cycle[0]))
	return strings.Join(parts, " -> ")
}

func dieLabel(i int) string {
	return "D" + strconv.Itoa(i+1)
}

func pad(s string, width int) string {
	return fmt.Sprintf("%-*s", width, s)
}
