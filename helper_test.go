package tradebook

import "github.com/etnz/tradebook/date"

// USD is a helper for test to create usd money from const
func USD(v float64) Money { return M(v, "USD") }

// buy is a helper for test to create a canonical buy trade.
func buy(symbol, day, at string, qty int, price float64) Trade {
	return Trade{
		Symbol:   symbol,
		Day:      date.MustParse(day),
		At:       date.MustParseClock(at),
		Side:     Buy,
		Quantity: Q(qty),
		Price:    USD(price),
	}
}

// sell is a helper for test to create a canonical sell trade.
func sell(symbol, day, at string, qty int, price float64) Trade {
	t := buy(symbol, day, at, qty, price)
	t.Side = Sell
	return t
}
