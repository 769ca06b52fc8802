package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/tradebook/ingest"
	"github.com/google/subcommands"
)

// ingestCmd holds the flags for the 'ingest' subcommand.
type ingestCmd struct {
	csv bool
}

func (*ingestCmd) Name() string     { return "ingest" }
func (*ingestCmd) Synopsis() string { return "parse broker daily reports and append trades to the ledger" }
func (*ingestCmd) Usage() string {
	return `tbk ingest [-csv] <file>...

  Parses each report file, normalizes its trade records and appends them
  to the ledger. Files already ingested (per the tracker file) are
  skipped. With -csv, files are read in the consolidated CSV format
  instead of the daily report text format.
`
}

func (c *ingestCmd) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&c.csv, "csv", false, "Read files as consolidated CSV exports")
}

func (c *ingestCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if f.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "ingest requires at least one report file")
		return subcommands.ExitUsageError
	}

	cfg, err := LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		return subcommands.ExitFailure
	}
	ledger, err := DecodeLedger(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	tracker, err := DecodeTracker(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	pipeline := ingest.NewPipeline(cfg, tracker, cfg.Logger())
	var added int
	status := subcommands.ExitSuccess
	for _, path := range f.Args() {
		file, err := os.Open(path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error opening %q: %v\n", path, err)
			status = subcommands.ExitFailure
			continue
		}
		var n int
		if c.csv {
			n, err = pipeline.IngestCSV(ledger, path, file)
		} else {
			n, err = pipeline.IngestReport(ledger, path, file)
		}
		file.Close()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error ingesting %q: %v\n", path, err)
			status = subcommands.ExitFailure
		}
		added += n
	}

	if err := EncodeLedger(cfg, ledger); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing ledger: %v\n", err)
		return subcommands.ExitFailure
	}
	if err := EncodeTracker(cfg, tracker); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing tracker: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Appended %d trades to %s\n", added, cfg.LedgerFile)
	return status
}
