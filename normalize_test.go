package tradebook

import (
	"errors"
	"testing"

	"github.com/etnz/tradebook/date"
)

func record(symbol, day, at, side, qty, price string) RawRecord {
	return RawRecord{
		Symbol:   symbol,
		Date:     day,
		Time:     at,
		Side:     side,
		Quantity: qty,
		Price:    price,
		Source:   "DailyTradeReport.test.pdf",
		Row:      7,
	}
}

func TestNormalize(t *testing.T) {
	trade, err := Normalize(record("HIMS", "2025-05-19", "09:30:40", "BUY", "35", "62.3950"), "USD")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if trade.Symbol != "HIMS" || trade.Side != Buy {
		t.Errorf("trade = %+v, want BUY HIMS", trade)
	}
	if trade.Day != date.MustParse("2025-05-19") || trade.At != date.MustParseClock("09:30:40") {
		t.Errorf("trade timestamp = %s %s, want 2025-05-19 09:30:40", trade.Day, trade.At)
	}
	if !trade.Quantity.Equal(Q(35)) {
		t.Errorf("trade quantity = %v, want 35", trade.Quantity)
	}
	// Equity: price is unchanged.
	if !trade.Price.Equal(USD(62.3950)) {
		t.Errorf("trade price = %v, want $62.40", trade.Price)
	}
}

func TestNormalize_OptionMultiplier(t *testing.T) {
	trade, err := Normalize(record("SPY 19DEC25 580 C", "2025-05-19", "09:30:40", "SELL", "2", "2.50"), "USD")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	// Option contract: quoted 2.50, notional price 250.00.
	if !trade.Price.Equal(USD(250.00)) {
		t.Errorf("option price = %v, want $250.00", trade.Price)
	}
}

func TestNormalize_UppercasesSymbol(t *testing.T) {
	trade, err := Normalize(record("spy 19dec25 580 c", "2025-05-19", "09:30:40", "SELL", "2", "2.50"), "USD")
	if err != nil {
		t.Fatalf("Normalize() error = %v", err)
	}
	if trade.Symbol != "SPY 19DEC25 580 C" {
		t.Errorf("symbol = %q, want canonical upper case", trade.Symbol)
	}
	// The canonical form classifies as an option, so the contract
	// multiplier applies even to a lower-case source.
	if !trade.Price.Equal(USD(250.00)) {
		t.Errorf("option price = %v, want $250.00", trade.Price)
	}
}

func TestNormalize_Deterministic(t *testing.T) {
	rec := record("HIMS", "2025-05-19", "09:30:40", "BUY", "35", "62.3950")
	a, _ := Normalize(rec, "USD")
	b, _ := Normalize(rec, "USD")
	same := a.Symbol == b.Symbol && a.Day == b.Day && a.At == b.At &&
		a.Side == b.Side && a.Quantity.Equal(b.Quantity) && a.Price.Equal(b.Price)
	if !same {
		t.Errorf("same record normalized twice gave %+v and %+v", a, b)
	}
}

func TestNormalize_Malformed(t *testing.T) {
	testCases := []struct {
		name  string
		rec   RawRecord
		field string
	}{
		{"missing symbol", record("", "2025-05-19", "09:30:40", "BUY", "35", "62.39"), "symbol"},
		{"bad date", record("HIMS", "19.05.2025", "09:30:40", "BUY", "35", "62.39"), "date"},
		{"bad time", record("HIMS", "2025-05-19", "9h30", "BUY", "35", "62.39"), "time"},
		{"bad side", record("HIMS", "2025-05-19", "09:30:40", "LONG", "35", "62.39"), "side"},
		{"bad quantity", record("HIMS", "2025-05-19", "09:30:40", "BUY", "many", "62.39"), "quantity"},
		{"zero quantity", record("HIMS", "2025-05-19", "09:30:40", "BUY", "0", "62.39"), "quantity"},
		{"negative quantity", record("HIMS", "2025-05-19", "09:30:40", "BUY", "-5", "62.39"), "quantity"},
		{"bad price", record("HIMS", "2025-05-19", "09:30:40", "BUY", "35", "n/a"), "price"},
		{"zero price", record("HIMS", "2025-05-19", "09:30:40", "BUY", "35", "0"), "price"},
		{"negative price", record("HIMS", "2025-05-19", "09:30:40", "BUY", "35", "-1.5"), "price"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Normalize(tc.rec, "USD")
			if err == nil {
				t.Fatalf("Normalize(%+v) succeeded, want error", tc.rec)
			}
			var mErr *MalformedRecordError
			if !errors.As(err, &mErr) {
				t.Fatalf("error %v is not a MalformedRecordError", err)
			}
			if mErr.Field != tc.field {
				t.Errorf("error field = %q, want %q", mErr.Field, tc.field)
			}
			if mErr.Record.Source != "DailyTradeReport.test.pdf" || mErr.Record.Row != 7 {
				t.Errorf("error lost the record context: %+v", mErr.Record)
			}
		})
	}
}
