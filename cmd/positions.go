package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

type positionsCmd struct{}

func (*positionsCmd) Name() string { return "positions" }
func (*positionsCmd) Synopsis() string {
	return "display the open positions remaining after matching all trades"
}
func (*positionsCmd) Usage() string {
	return `tbk positions

  Matches the whole ledger and displays the remaining open positions per
  symbol, with the weighted average entry price, the total value and the
  date of the oldest open lot.
`
}

func (*positionsCmd) SetFlags(_ *flag.FlagSet) {}

func (*positionsCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	result := ledger.Match()
	printMarkdown(renderer.PositionsMarkdown(result.Book.Snapshot()))

	return subcommands.ExitSuccess
}
