package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

type matchesCmd struct {
	rangeFlags
}

func (*matchesCmd) Name() string { return "matches" }
func (*matchesCmd) Synopsis() string {
	return "display the closed matches and their realized values"
}
func (*matchesCmd) Usage() string {
	return `tbk matches [-p <period> | -s <start_date>] [-d <end_date>]

  Matches sells against open lots in first-in-first-out order over the
  whole ledger, then displays the matches closed within the date range,
  with their realized values and any unmatched sells.
`
}

func (p *matchesCmd) SetFlags(f *flag.FlagSet) { p.setFlags(f) }

func (p *matchesCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := DecodeLedger(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}

	periodRange, err := p.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing range: %v\n", err)
		return subcommands.ExitFailure
	}

	// Matching always runs over the whole ledger: a match closed within
	// the range may consume a lot opened long before it.
	result := ledger.Match()
	window := &tradebook.MatchResult{Book: result.Book}
	for _, m := range result.Matches {
		if periodRange.Contains(m.ExitDay) {
			window.Matches = append(window.Matches, m)
		}
	}
	for _, u := range result.Unmatched {
		if periodRange.Contains(u.Day) {
			window.Unmatched = append(window.Unmatched, u)
		}
	}
	printMarkdown(renderer.MatchesMarkdown(window))

	return subcommands.ExitSuccess
}
