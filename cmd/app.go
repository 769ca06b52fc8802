// Package cmd implements the CLI application to manage a trade book.
package cmd

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"

	"github.com/etnz/tradebook"
	"github.com/etnz/tradebook/ingest"
	"github.com/google/subcommands"
)

// Register the subcommands.
// A main package will call Register() to allow subcommands, and Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(&ingestCmd{}, "ledger")
	c.Register(&fmtCmd{}, "ledger")

	c.Register(&logCmd{}, "reports")
	c.Register(&dailyCmd{}, "reports")
	c.Register(&positionsCmd{}, "reports")
	c.Register(&matchesCmd{}, "reports")

	c.Register(&topicCmd{}, "documentation")
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var configFile = flag.String("config", "tradebook.yaml", "Path to the configuration file (YAML)")

// LoadConfig loads the app configuration.
func LoadConfig() (ingest.Config, error) {
	return ingest.LoadConfig(*configFile)
}

// DecodeLedger loads the ledger from the configured ledger file.
func DecodeLedger(cfg ingest.Config) (*tradebook.Ledger, error) {
	f, err := os.Open(cfg.LedgerFile)
	if errors.Is(err, fs.ErrNotExist) {
		log.Println("warning, ledger file does not exist, starting from an empty ledger")
		return tradebook.NewLedger(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open ledger %q: %w", cfg.LedgerFile, err)
	}
	defer f.Close()
	return tradebook.DecodeLedger(f)
}

// EncodeLedger writes the whole ledger back to the configured ledger file
// in canonical form.
func EncodeLedger(cfg ingest.Config, ledger *tradebook.Ledger) error {
	f, err := os.Create(cfg.LedgerFile)
	if err != nil {
		return fmt.Errorf("cannot create ledger %q: %w", cfg.LedgerFile, err)
	}
	defer f.Close()
	return tradebook.EncodeLedger(f, ledger)
}

// DecodeTracker loads the ingestion tracker from the configured file.
func DecodeTracker(cfg ingest.Config) (*ingest.Tracker, error) {
	f, err := os.Open(cfg.TrackerFile)
	if errors.Is(err, fs.ErrNotExist) {
		return ingest.NewTracker(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot open tracker %q: %w", cfg.TrackerFile, err)
	}
	defer f.Close()
	return ingest.DecodeTracker(f)
}

// EncodeTracker writes the ingestion tracker back to the configured file.
func EncodeTracker(cfg ingest.Config, tracker *ingest.Tracker) error {
	f, err := os.Create(cfg.TrackerFile)
	if err != nil {
		return fmt.Errorf("cannot create tracker %q: %w", cfg.TrackerFile, err)
	}
	defer f.Close()
	return ingest.EncodeTracker(f, tracker)
}
