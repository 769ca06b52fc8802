package tradebook

import (
	"fmt"
	"sort"

	"github.com/etnz/tradebook/date"
)

// ClosedMatch records one lot (or lot fragment) paired with a closing sell.
//
// A single sell spanning several lots yields one ClosedMatch per lot, and a
// single lot consumed by several sells yields one ClosedMatch per sell.
type ClosedMatch struct {
	Symbol   string
	Quantity Quantity

	EntryPrice Money
	EntryDay   date.Date
	EntryAt    date.Clock

	ExitPrice Money
	ExitDay   date.Date
	ExitAt    date.Clock
}

// Realized returns the realized value of the match:
// quantity × (exit price − entry price).
func (m ClosedMatch) Realized() Money {
	return m.ExitPrice.Sub(m.EntryPrice).Mul(m.Quantity)
}

// UnmatchedSell reports a sell whose quantity exceeded the open-lot
// quantity available for its symbol at that point in chronological order.
//
// The book is long-only: the residual is reported as a deficit, never
// turned into a short position and never silently dropped. The engine
// still applies all consumable quantity before reporting.
type UnmatchedSell struct {
	Symbol  string
	Deficit Quantity // quantity that found no lot to match
	Price   Money
	Day     date.Date
	At      date.Clock
}

func (u UnmatchedSell) Error() string {
	return fmt.Sprintf("unmatched sell of %s on %s %s: %s units found no open lot",
		u.Symbol, u.Day, u.At, u.Deficit)
}

// MatchResult is the outcome of one matching run.
type MatchResult struct {
	Matches   []ClosedMatch
	Book      *Book
	Unmatched []UnmatchedSell
}

// TotalRealized sums the realized value of all closed matches.
func (r *MatchResult) TotalRealized() Money {
	var total Money
	for _, m := range r.Matches {
		total = total.Add(m.Realized())
	}
	return total
}

// Match consumes trades in chronological order and matches sells against
// the oldest open lots of the same symbol (FIFO).
//
// Buys open new lots; sells consume lots oldest-first, emitting one
// ClosedMatch per (lot, sell) pairing. Each symbol's queue is independent,
// so no global ordering is needed across symbols.
//
// Match is deterministic and keeps no state between calls: running it
// twice over the same trades yields identical matches and identical final
// open-lot state. Callers re-running after appending trades must supply
// the full history again.
func Match(trades []Trade) *MatchResult {
	ordered := make([]Trade, len(trades))
	copy(ordered, trades)
	sort.SliceStable(ordered, func(i, j int) bool { return ordered[i].before(ordered[j]) })

	result := &MatchResult{Book: NewBook()}
	for _, t := range ordered {
		switch t.Side {
		case Buy:
			result.Book.open(t)
		case Sell:
			deficit := result.Book.consume(t.Symbol, t.Quantity, func(lot *Lot, taken Quantity) {
				result.Matches = append(result.Matches, ClosedMatch{
					Symbol:     t.Symbol,
					Quantity:   taken,
					EntryPrice: lot.Price,
					EntryDay:   lot.Day,
					EntryAt:    lot.At,
					ExitPrice:  t.Price,
					ExitDay:    t.Day,
					ExitAt:     t.At,
				})
			})
			if deficit.IsPositive() {
				result.Unmatched = append(result.Unmatched, UnmatchedSell{
					Symbol:  t.Symbol,
					Deficit: deficit,
					Price:   t.Price,
					Day:     t.Day,
					At:      t.At,
				})
			}
		}
	}
	return result
}
