// Package renderer builds markdown reports from tradebook views.
package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tradebook"
	md "github.com/nao1215/markdown"
)

// LedgerMarkdown renders the raw trade ledger, one row per fill.
func LedgerMarkdown(l *tradebook.Ledger) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1(fmt.Sprintf("Trade Ledger (%d trades)", l.Len()))

	table := md.TableSet{
		Header: []string{"Date", "Time", "Symbol", "Side", "Quantity", "Price"},
	}
	for t := range l.Trades() {
		table.Rows = append(table.Rows, []string{
			t.Day.String(),
			t.At.String(),
			t.Symbol,
			t.Side.String(),
			t.Quantity.String(),
			t.Price.String(),
		})
	}
	doc.Table(table)

	return doc.String()
}
