package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

func TestIngestAppendsReportTrades(t *testing.T) {
	report := `U***3749 HIMS 2025-05-19, 09:30:40 2025-05-20 - BUY 35 62.3950 -2183.82
U***3749 IONQ 2025-05-19, 10:06:17 2025-05-20 - SELL 100 30.4000 3040.00
`
	ledgerPath := useTempConfig(t, "")
	reportPath := filepath.Join(filepath.Dir(ledgerPath), "daily-report.txt")
	if err := os.WriteFile(reportPath, []byte(report), 0644); err != nil {
		t.Fatalf("Failed to write report file: %v", err)
	}

	cmd := &ingestCmd{}
	f := flag.NewFlagSet("test", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse([]string{reportPath}); err != nil {
		t.Fatalf("Failed to parse flags: %v", err)
	}

	status := cmd.Execute(context.Background(), f)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}

	got, err := os.ReadFile(ledgerPath)
	if err != nil {
		t.Fatalf("Failed to read ledger: %v", err)
	}
	for _, want := range []string{`"symbol":"HIMS"`, `"symbol":"IONQ"`, `"side":"SELL"`} {
		if !strings.Contains(string(got), want) {
			t.Errorf("Ledger missing %s:\n%s", want, got)
		}
	}

	// A second run must skip the already ingested report.
	status = cmd.Execute(context.Background(), f)
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess on re-run, got %v", status)
	}
	again, err := os.ReadFile(ledgerPath)
	if err != nil {
		t.Fatalf("Failed to re-read ledger: %v", err)
	}
	if string(again) != string(got) {
		t.Errorf("Re-ingesting the same report changed the ledger.\nBefore:\n%s\nAfter:\n%s", got, again)
	}
}
