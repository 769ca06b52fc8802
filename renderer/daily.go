package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tradebook"
	md "github.com/nao1215/markdown"
)

// DailyMarkdown renders the per-day consolidated summary, one row per
// (symbol, day, side) bucket.
func DailyMarkdown(buckets []tradebook.Bucket) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Daily Summary (%d rows)", len(buckets)))

	table := md.TableSet{
		Header: []string{"Date", "Symbol", "Side", "Quantity", "Avg Price", "Total Value", "First Fill"},
	}
	for _, b := range buckets {
		table.Rows = append(table.Rows, []string{
			b.Day.String(),
			b.Symbol,
			b.Side.String(),
			b.Quantity.String(),
			b.AveragePrice.String(),
			b.TotalValue.String(),
			b.At.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
