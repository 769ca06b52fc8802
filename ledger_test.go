package tradebook

import (
	"testing"

	"github.com/etnz/tradebook/date"
)

func TestLedger_AppendKeepsChronologicalOrder(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		sell("X", "2025-05-20", "09:00:00", 120, 155.25),
		buy("X", "2025-05-19", "10:15:00", 50, 151.00),
	)
	ledger.Append(buy("X", "2025-05-19", "09:30:00", 100, 150.50))

	var days []string
	for trade := range ledger.Trades() {
		days = append(days, trade.Day.String()+" "+trade.At.String())
	}
	want := []string{
		"2025-05-19 09:30:00",
		"2025-05-19 10:15:00",
		"2025-05-20 09:00:00",
	}
	for i := range want {
		if days[i] != want[i] {
			t.Fatalf("trades out of order: got %v, want %v", days, want)
		}
	}
}

func TestLedger_StableTieBreak(t *testing.T) {
	// Identical timestamps: append order is the matching order.
	ledger := NewLedger()
	ledger.Append(
		buy("X", "2025-05-19", "09:30:00", 10, 100),
		buy("X", "2025-05-19", "09:30:00", 10, 200),
	)

	trades := ledger.Slice()
	if !trades[0].Price.Equal(USD(100)) || !trades[1].Price.Equal(USD(200)) {
		t.Errorf("tie-break reordered equal-timestamp trades: %v", trades)
	}
}

func TestLedger_MatchAfterAppendIsConsistent(t *testing.T) {
	// The engine is stateless: matching, appending, and matching again must
	// behave as if the whole history was matched once.
	ledger := NewLedger()
	ledger.Append(
		buy("X", "2025-05-19", "09:30:00", 100, 150.50),
		buy("X", "2025-05-19", "10:15:00", 50, 151.00),
	)
	if got := ledger.Match(); len(got.Matches) != 0 {
		t.Fatalf("matching a buy-only ledger produced matches: %v", got.Matches)
	}

	ledger.Append(sell("X", "2025-05-20", "09:00:00", 120, 155.25))
	result := ledger.Match()
	if len(result.Matches) != 2 || len(result.Unmatched) != 0 {
		t.Fatalf("re-match after append: got %d matches %d unmatched, want 2 and 0",
			len(result.Matches), len(result.Unmatched))
	}
}

func TestLedger_Within(t *testing.T) {
	ledger := NewLedger()
	ledger.Append(
		buy("X", "2025-04-30", "09:30:00", 10, 100),
		buy("X", "2025-05-19", "09:30:00", 10, 100),
		buy("X", "2025-06-01", "09:30:00", 10, 100),
	)

	may := date.NewRange(date.MustParse("2025-05-15"), date.Monthly)
	got := ledger.Within(may)
	if len(got) != 1 || got[0].Day != date.MustParse("2025-05-19") {
		t.Errorf("Within(may) = %v, want only the May trade", got)
	}
}
