package tradebook

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/etnz/tradebook/date"
	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// jtrade is the persisted form of a Trade: one JSON object per line.
type jtrade struct {
	Symbol   string          `json:"symbol"`
	Date     date.Date       `json:"date"`
	Time     date.Clock      `json:"time"`
	Side     Side            `json:"side"`
	Quantity Quantity        `json:"quantity"`
	Price    decimal.Decimal `json:"price"`
	Currency string          `json:"currency,omitempty"`
}

// DecodeLedger decodes trades from a stream of JSONL data and returns a
// chronologically sorted Ledger. Empty lines are skipped; a malformed line
// aborts the decode with the offending line in the error.
func DecodeLedger(r io.Reader) (*Ledger, error) {
	ledger := NewLedger()
	scanner := bufio.NewScanner(r)

	for scanner.Scan() {
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // Skip empty lines
		}
		var jt jtrade
		if err := json.Unmarshal(lineBytes, &jt); err != nil {
			return nil, fmt.Errorf("cannot parse ledger line %q: %w", string(lineBytes), err)
		}
		ledger.Append(Trade{
			Symbol:   jt.Symbol,
			Day:      jt.Date,
			At:       jt.Time,
			Side:     jt.Side,
			Quantity: jt.Quantity,
			Price:    M(jt.Price, jt.Currency),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read ledger: %w", err)
	}
	return ledger, nil
}

// EncodeTrade writes a single trade as one JSONL line.
func EncodeTrade(w io.Writer, t Trade) error {
	data, err := json.Marshal(jtrade{
		Symbol:   t.Symbol,
		Date:     t.Day,
		Time:     t.At,
		Side:     t.Side,
		Quantity: t.Quantity,
		Price:    t.Price.value,
		Currency: t.Price.cur,
	})
	if err != nil {
		return fmt.Errorf("cannot marshal trade: %w", err)
	}
	if _, err := w.Write(append(data, '\n')); err != nil {
		return fmt.Errorf("cannot write trade: %w", err)
	}
	return nil
}

// EncodeLedger writes the whole ledger in its canonical JSONL form,
// chronologically sorted.
func EncodeLedger(w io.Writer, l *Ledger) error {
	for t := range l.Trades() {
		if err := EncodeTrade(w, t); err != nil {
			return err
		}
	}
	return nil
}
