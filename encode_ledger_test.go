package tradebook

import (
	"strings"
	"testing"
)

func TestEncodeDecodeLedger(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		buy("HIMS", "2025-05-19", "09:30:40", 35, 62.3950),
		sell("IONQ", "2025-05-02", "15:59:16", 125, 30.905),
	)

	var sb strings.Builder
	if err := EncodeLedger(&sb, ledger); err != nil {
		t.Fatalf("EncodeLedger() error = %v", err)
	}

	decoded, err := DecodeLedger(strings.NewReader(sb.String()))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if decoded.Len() != 2 {
		t.Fatalf("decoded %d trades, want 2", decoded.Len())
	}

	a, b := ledger.Slice(), decoded.Slice()
	for i := range a {
		if a[i].Symbol != b[i].Symbol || a[i].Day != b[i].Day || a[i].At != b[i].At ||
			a[i].Side != b[i].Side || !a[i].Quantity.Equal(b[i].Quantity) || !a[i].Price.Equal(b[i].Price) {
			t.Errorf("trade %d round trip: got %+v, want %+v", i, b[i], a[i])
		}
	}
}

func TestDecodeLedger_SkipsEmptyLines(t *testing.T) {
	input := `{"symbol":"HIMS","date":"2025-05-19","time":"09:30:40","side":"BUY","quantity":35,"price":62.3950,"currency":"USD"}

{"symbol":"IONQ","date":"2025-05-02","time":"15:59:16","side":"SELL","quantity":125,"price":30.905,"currency":"USD"}
`
	ledger, err := DecodeLedger(strings.NewReader(input))
	if err != nil {
		t.Fatalf("DecodeLedger() error = %v", err)
	}
	if ledger.Len() != 2 {
		t.Errorf("decoded %d trades, want 2", ledger.Len())
	}
	// Decoding restores chronological order regardless of file order.
	if first := ledger.Slice()[0]; first.Symbol != "IONQ" {
		t.Errorf("first trade = %q, want the earlier IONQ trade", first.Symbol)
	}
}

func TestDecodeLedger_BadLine(t *testing.T) {
	input := `{"symbol":"HIMS","date":"not-a-date","time":"09:30:40","side":"BUY","quantity":35,"price":62.39}`
	_, err := DecodeLedger(strings.NewReader(input))
	if err == nil {
		t.Fatal("DecodeLedger() succeeded on a malformed line, want error")
	}
	if !strings.Contains(err.Error(), "not-a-date") {
		t.Errorf("error %q does not carry the offending line", err)
	}
}
