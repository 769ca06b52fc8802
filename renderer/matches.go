package renderer

import (
	"bytes"
	"fmt"

	"github.com/etnz/tradebook"
	md "github.com/nao1215/markdown"
)

// MatchesMarkdown renders the FIFO matching result: one row per closed
// match with its entry/exit attribution and realized value, the realized
// total, and any unmatched sells.
func MatchesMarkdown(r *tradebook.MatchResult) string {
	var buf bytes.Buffer
	doc := md.NewMarkdown(&buf)

	doc.H1("Closed Matches")

	if len(r.Matches) == 0 {
		doc.PlainText("No closed matches.")
	} else {
		table := md.TableSet{
			Header: []string{"Symbol", "Quantity", "Entry", "Entry Price", "Exit", "Exit Price", "Realized"},
		}
		for _, m := range r.Matches {
			table.Rows = append(table.Rows, []string{
				m.Symbol,
				m.Quantity.String(),
				fmt.Sprintf("%s %s", m.EntryDay, m.EntryAt),
				m.EntryPrice.String(),
				fmt.Sprintf("%s %s", m.ExitDay, m.ExitAt),
				m.ExitPrice.String(),
				m.Realized().SignedString(),
			})
		}
		doc.Table(table)
		doc.PlainText(fmt.Sprintf("Total Realized: %s", md.Bold(r.TotalRealized().SignedString())))
	}

	if len(r.Unmatched) > 0 {
		doc.H2("Unmatched Sells")
		table := md.TableSet{
			Header: []string{"Symbol", "Deficit", "Date", "Time", "Price"},
		}
		for _, u := range r.Unmatched {
			table.Rows = append(table.Rows, []string{
				u.Symbol,
				u.Deficit.String(),
				u.Day.String(),
				u.At.String(),
				u.Price.String(),
			})
		}
		doc.Table(table)
	}

	return doc.String()
}
