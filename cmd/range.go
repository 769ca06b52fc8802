package cmd

import (
	"flag"
	"fmt"

	"github.com/etnz/tradebook/date"
)

// rangeFlags is the common -p/-s/-d flag set shared by the report
// subcommands that operate on a date range.
type rangeFlags struct {
	period string
	start  string
	end    string
}

func (r *rangeFlags) setFlags(f *flag.FlagSet) {
	f.StringVar(&r.period, "p", "month", "Predefined period for the report (day, week, month, quarter, year).")
	f.StringVar(&r.start, "s", "", "The start date for a custom range (YYYY-MM-DD). Overrides -p.")
	f.StringVar(&r.end, "d", date.Today().String(), "The end date for the report (YYYY-MM-DD).")
}

// parse resolves the flags into a date range ending on the -d date.
func (r *rangeFlags) parse() (date.Range, error) {
	end, err := date.Parse(r.end)
	if err != nil {
		return date.Range{}, fmt.Errorf("invalid end date %q: %w", r.end, err)
	}
	if r.start != "" {
		start, err := date.Parse(r.start)
		if err != nil {
			return date.Range{}, fmt.Errorf("invalid start date %q: %w", r.start, err)
		}
		return date.Range{From: start, To: end}, nil
	}
	period, err := date.ParsePeriod(r.period)
	if err != nil {
		return date.Range{}, err
	}
	return date.NewRange(end, period), nil
}
