package tradebook

import "testing"

func TestClassify(t *testing.T) {
	testCases := []struct {
		symbol         string
		wantKind       Kind
		wantMultiplier Quantity
	}{
		{"HIMS", Equity, Q(1)},
		{"IONQ", Equity, Q(1)},
		{"BRK", Equity, Q(1)},
		{"SPY 19DEC25 580 C", Option, Q(100)},
		{"QQQ 3JAN25 505.5 P", Option, Q(100)},
		{"TSLA 20JUN25 300 C", Option, Q(100)},
		// Near misses stay equities by policy, never an error.
		{"SPY 19DEC25 580", Equity, Q(1)},
		{"SPY 19DEC25 580 X", Equity, Q(1)},
		{"spy 19DEC25 580 C", Equity, Q(1)},
		{"SPY  19DEC25 580 C", Equity, Q(1)},
		{"", Equity, Q(1)},
	}
	for _, tc := range testCases {
		kind, multiplier := Classify(tc.symbol)
		if kind != tc.wantKind {
			t.Errorf("Classify(%q) kind = %v, want %v", tc.symbol, kind, tc.wantKind)
		}
		if !multiplier.Equal(tc.wantMultiplier) {
			t.Errorf("Classify(%q) multiplier = %v, want %v", tc.symbol, multiplier, tc.wantMultiplier)
		}
	}
}
