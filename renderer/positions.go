package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tradebook"
	md "github.com/nao1215/markdown"
)

// PositionsMarkdown renders the open-positions summary: one row per symbol
// with its remaining quantity, weighted-average entry price, value and the
// date the position was opened, plus the portfolio total.
func PositionsMarkdown(s *tradebook.Snapshot) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Open Positions Summary")

	if len(s.Positions) == 0 {
		doc.PlainText("No open positions.")
		return doc.String()
	}

	table := md.TableSet{
		Header: []string{"Symbol", "Shares", "Avg Price", "Total Value", "Since"},
	}
	for _, p := range s.Positions {
		table.Rows = append(table.Rows, []string{
			p.Symbol,
			p.Quantity.String(),
			p.AveragePrice.String(),
			p.TotalValue.String(),
			p.Since.String(),
		})
	}
	doc.Table(table)

	doc.PlainText(fmt.Sprintf("Total Portfolio Value: %s", md.Bold(s.TotalValue.String())))

	return doc.String()
}
