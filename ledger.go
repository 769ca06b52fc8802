package tradebook

import (
	"iter"
	"sort"

	"github.com/etnz/tradebook/date"
)

// Ledger holds the complete canonical trade history.
//
// In a Ledger trades are always in chronological (Day, At) order; trades
// with identical timestamps keep their append order. The Ledger does not
// deduplicate: the caller is responsible for not feeding the same raw
// record twice (see ingest.Tracker).
type Ledger struct {
	trades  []Trade
	nextSeq int
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{trades: make([]Trade, 0)}
}

// Append adds trades to the ledger and restores chronological order.
// Each trade is stamped with a monotonic sequence number so that re-sorting
// is stable with respect to append order.
func (l *Ledger) Append(trades ...Trade) {
	for _, t := range trades {
		t.seq = l.nextSeq
		l.nextSeq++
		l.trades = append(l.trades, t)
	}
	sort.SliceStable(l.trades, func(i, j int) bool {
		return l.trades[i].before(l.trades[j])
	})
}

// Len returns the number of trades in the ledger.
func (l *Ledger) Len() int { return len(l.trades) }

// Trades returns an iterator over all trades in chronological order.
func (l *Ledger) Trades() iter.Seq[Trade] {
	return func(yield func(Trade) bool) {
		for _, t := range l.trades {
			if !yield(t) {
				return
			}
		}
	}
}

// Slice returns a copy of the trades in chronological order.
func (l *Ledger) Slice() []Trade {
	out := make([]Trade, len(l.trades))
	copy(out, l.trades)
	return out
}

// Within returns the trades whose day falls within r, in chronological order.
func (l *Ledger) Within(r date.Range) []Trade {
	var out []Trade
	for _, t := range l.trades {
		if r.Contains(t.Day) {
			out = append(out, t)
		}
	}
	return out
}

// Match runs the FIFO matching engine over the full trade history.
//
// The engine does not memoize: each call consumes the whole history again,
// so matching after appending new trades yields a consistent result.
func (l *Ledger) Match() *MatchResult { return Match(l.trades) }

// Consolidate groups the full trade history by (symbol, day, side).
func (l *Ledger) Consolidate() []Bucket { return Consolidate(l.trades) }
