package tradebook

import "github.com/etnz/tradebook/date"

// Position is the per-symbol summary of a book's open lots.
type Position struct {
	Symbol       string
	Quantity     Quantity  // total remaining quantity across open lots
	AveragePrice Money     // remaining-quantity weighted entry price
	TotalValue   Money     // Quantity × AveragePrice
	Since        date.Date // earliest entry day among the open lots
}

// Snapshot is a read-only view of the open positions, derived from the
// matching engine's live lot state. It holds no identity of its own and is
// recomputed on demand.
type Snapshot struct {
	Positions  []Position // sorted by symbol
	TotalValue Money      // Σ position total value
}

// Snapshot derives the per-symbol open positions and the portfolio total
// from the book's current open-lot state.
//
// An empty book yields a snapshot with no positions and a zero total.
func (b *Book) Snapshot() *Snapshot {
	snapshot := &Snapshot{}
	for _, symbol := range b.Symbols() {
		var quantity Quantity
		var cost Money
		var since date.Date
		for i, lot := range b.Lots(symbol) {
			quantity = quantity.Add(lot.Remaining)
			cost = cost.Add(lot.Price.Mul(lot.Remaining))
			if i == 0 || lot.Day.Before(since) {
				since = lot.Day
			}
		}
		if quantity.IsZero() {
			continue
		}
		// The total value is quantity × average price, which is exactly the
		// remaining cost; summing costs avoids the division round-trip.
		position := Position{
			Symbol:       symbol,
			Quantity:     quantity,
			AveragePrice: cost.Div(quantity),
			TotalValue:   cost,
			Since:        since,
		}
		snapshot.Positions = append(snapshot.Positions, position)
		snapshot.TotalValue = snapshot.TotalValue.Add(position.TotalValue)
	}
	return snapshot
}
