package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/ingest"
	"github.com/etnz/tradebook/renderer"
	"github.com/google/subcommands"
)

type dailyCmd struct {
	rangeFlags
	output string
}

func (*dailyCmd) Name() string { return "daily" }
func (*dailyCmd) Synopsis() string {
	return "display trades consolidated per symbol, day and side"
}
func (*dailyCmd) Usage() string {
	return `tbk daily [-p <period> | -s <start_date>] [-d <end_date>] [-o <file>]

  Consolidates the trades of each day into one line per symbol and side,
  with the quantity-weighted average price. With -o, the consolidated
  lines are also exported as a CSV file.
`
}

func (c *dailyCmd) SetFlags(f *flag.FlagSet) {
	c.setFlags(f)
	f.StringVar(&c.output, "o", "", "Export the consolidated trades to a CSV file")
}

func (c *dailyCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	periodRange, err := c.parse()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing range: %v\n", err)
		return subcommands.ExitFailure
	}

	buckets := tradebook.Consolidate(ledger.Within(periodRange))
	printMarkdown(renderer.DailyMarkdown(buckets))

	if c.output != "" {
		if err := exportCSV(c.output, buckets); err != nil {
			fmt.Fprintf(os.Stderr, "Error exporting CSV: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Exported %d consolidated trades to %s\n", len(buckets), c.output)
	}
	return subcommands.ExitSuccess
}

func exportCSV(path string, buckets []tradebook.Bucket) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return ingest.WriteCSV(f, buckets)
}
