package cmd

import (
	"testing"

	"github.com/etnz/tradebook/date"
)

func TestRangeFlags(t *testing.T) {
	tests := []struct {
		name     string
		flags    rangeFlags
		from, to string
	}{
		{
			name:  "day period",
			flags: rangeFlags{period: "day", end: "2025-05-19"},
			from:  "2025-05-19", to: "2025-05-19",
		},
		{
			name:  "month period",
			flags: rangeFlags{period: "month", end: "2025-05-19"},
			from:  "2025-05-01", to: "2025-05-31",
		},
		{
			name:  "explicit start overrides period",
			flags: rangeFlags{period: "month", start: "2025-05-02", end: "2025-05-19"},
			from:  "2025-05-02", to: "2025-05-19",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, err := tt.flags.parse()
			if err != nil {
				t.Fatalf("parse() error: %v", err)
			}
			want := date.Range{From: date.MustParse(tt.from), To: date.MustParse(tt.to)}
			if r != want {
				t.Errorf("parse() = %v..%v, want %v..%v", r.From, r.To, want.From, want.To)
			}
		})
	}
}

func TestRangeFlagsRejectsBadDate(t *testing.T) {
	flags := rangeFlags{period: "month", end: "not-a-date"}
	if _, err := flags.parse(); err == nil {
		t.Error("parse() accepted an invalid end date")
	}
}
