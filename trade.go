package tradebook

import "github.com/etnz/tradebook/date"

// Trade is a canonical, multiplier-adjusted trade record.
//
// A Trade is immutable once appended to a Ledger. Its ordering key for
// matching is (Day, At) ascending; trades with identical timestamps keep
// their original stream order.
type Trade struct {
	Symbol   string
	Day      date.Date
	At       date.Clock
	Side     Side
	Quantity Quantity
	Price    Money // per share/contract, already multiplier-adjusted

	// seq preserves the original stream order for stable tie-breaks.
	// It is assigned by Ledger.Append.
	seq int
}

// before reports whether t was executed strictly before x, falling back on
// the original stream order for identical timestamps.
func (t Trade) before(x Trade) bool {
	if t.Day != x.Day {
		return t.Day.Before(x.Day)
	}
	if t.At != x.At {
		return t.At.Before(x.At)
	}
	return t.seq < x.seq
}
