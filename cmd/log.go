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

type logCmd struct {
	rangeFlags
}

func (*logCmd) Name() string { return "log" }
func (*logCmd) Synopsis() string {
	return "display the chronological log of trades in the ledger"
}
func (*logCmd) Usage() string {
	return `tbk log [-p <period> | -s <start_date>] [-d <end_date>]

  Displays the trades recorded in the ledger within a date range, in
  chronological order.
`
}

func (p *logCmd) SetFlags(f *flag.FlagSet) { p.setFlags(f) }

func (p *logCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	window := tradebook.NewLedger()
	window.Append(ledger.Within(periodRange)...)
	printMarkdown(renderer.LedgerMarkdown(window))

	return subcommands.ExitSuccess
}
