package tradebook

import (
	"sort"

	"github.com/etnz/tradebook/date"
)

// Lot represents a single purchase of a symbol, tracked until fully
// consumed by later sells.
type Lot struct {
	Symbol    string
	Quantity  Quantity // quantity originally bought
	Remaining Quantity // still open, decreases as sells consume the lot
	Price     Money    // entry price per share/contract
	Day       date.Date
	At        date.Clock
}

// lots is a per-symbol FIFO queue of open lots, oldest first.
type lots []*Lot

// Book holds the open-lot state of the whole portfolio, one FIFO queue per
// symbol. It is owned by a single matching run; concurrent mutation is not
// supported.
type Book struct {
	queues map[string]lots
}

// NewBook creates an empty book.
func NewBook() *Book {
	return &Book{queues: make(map[string]lots)}
}

// open appends a new lot at the back of the symbol's queue. Queue order is
// arrival order, which is FIFO order for chronologically fed trades.
func (b *Book) open(t Trade) {
	b.queues[t.Symbol] = append(b.queues[t.Symbol], &Lot{
		Symbol:    t.Symbol,
		Quantity:  t.Quantity,
		Remaining: t.Quantity,
		Price:     t.Price,
		Day:       t.Day,
		At:        t.At,
	})
}

// consume takes quantity from the oldest open lots of the symbol, calling
// matched once per consumed lot fragment. It returns the quantity it could
// not serve because the queue ran out.
func (b *Book) consume(symbol string, quantity Quantity, matched func(lot *Lot, taken Quantity)) (deficit Quantity) {
	queue := b.queues[symbol]
	for len(queue) > 0 && quantity.IsPositive() {
		oldest := queue[0]
		taken := quantity.Min(oldest.Remaining)
		oldest.Remaining = oldest.Remaining.Sub(taken)
		quantity = quantity.Sub(taken)
		matched(oldest, taken)
		if oldest.Remaining.IsZero() {
			queue = queue[1:]
		}
	}
	if len(queue) == 0 {
		delete(b.queues, symbol)
	} else {
		b.queues[symbol] = queue
	}
	return quantity
}

// Lots returns the symbol's open lots, oldest first.
func (b *Book) Lots(symbol string) []*Lot {
	return b.queues[symbol]
}

// Symbols returns the symbols with at least one open lot, sorted.
func (b *Book) Symbols() []string {
	symbols := make([]string, 0, len(b.queues))
	for symbol := range b.queues {
		symbols = append(symbols, symbol)
	}
	sort.Strings(symbols)
	return symbols
}
