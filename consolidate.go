package tradebook

import (
	"sort"

	"github.com/etnz/tradebook/date"
)

// Bucket is the consolidation of all trades sharing (symbol, day, side).
type Bucket struct {
	Symbol string
	Day    date.Date
	Side   Side
	At     date.Clock // earliest trade time in the bucket

	Quantity     Quantity
	AveragePrice Money // quantity-weighted mean, exact
	TotalValue   Money // Σ quantity×price, computed independently of the average
}

// Consolidate groups trades by (symbol, day, side) and computes the
// quantity-weighted average price and total notional of each group.
//
// The result is recomputed from scratch on every call and sorted by
// symbol, then day, then side, so output is reproducible. The weighted
// average uses full input precision; TotalValue is a plain sum of
// quantity×price and never derived from a rounded average.
func Consolidate(trades []Trade) []Bucket {
	type key struct {
		symbol string
		day    date.Date
		side   Side
	}

	buckets := make(map[key]*Bucket)
	for _, t := range trades {
		k := key{t.Symbol, t.Day, t.Side}
		b, ok := buckets[k]
		if !ok {
			buckets[k] = &Bucket{
				Symbol:     t.Symbol,
				Day:        t.Day,
				Side:       t.Side,
				At:         t.At,
				Quantity:   t.Quantity,
				TotalValue: t.Price.Mul(t.Quantity),
			}
			continue
		}
		if t.At.Before(b.At) {
			b.At = t.At
		}
		b.Quantity = b.Quantity.Add(t.Quantity)
		b.TotalValue = b.TotalValue.Add(t.Price.Mul(t.Quantity))
	}

	out := make([]Bucket, 0, len(buckets))
	for _, b := range buckets {
		b.AveragePrice = b.TotalValue.Div(b.Quantity)
		out = append(out, *b)
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i], out[j]
		if a.Symbol != b.Symbol {
			return a.Symbol < b.Symbol
		}
		if a.Day != b.Day {
			return a.Day.Before(b.Day)
		}
		return a.Side < b.Side
	})
	return out
}
