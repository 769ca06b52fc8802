package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

type fmtCmd struct{}

func (*fmtCmd) Name() string { return "fmt" }
func (*fmtCmd) Synopsis() string {
	return "rewrites the ledger file into a canonical form"
}
func (*fmtCmd) Usage() string {
	return `tbk fmt

  Reads the ledger, sorts the trades chronologically and writes them back
  in a canonical JSONL form.
`
}

func (*fmtCmd) SetFlags(_ *flag.FlagSet) {}

func (p *fmtCmd) Execute(_ context.Context, _ *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitFailure
	}
	ledger, err := DecodeLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: could not load ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	if err := EncodeLedger(cfg, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving formatted ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	fmt.Fprintf(os.Stderr, "Formatted %d trades in %q.\n", ledger.Len(), cfg.LedgerFile)
	return subcommands.ExitSuccess
}
