// Package ingest feeds the tradebook core from broker daily-report text,
// tracks which sources were already ingested, and drives the whole
// report-to-ledger pipeline.
package ingest

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/etnz/tradebook"
)

// reportLine matches the single-line trade form of the daily report:
//
//	U***3749 HIMS 2025-05-19, 09:30:40 2025-05-20 - BUY 35 62.3950 -2183.82
//
// The account id is masked by the broker; the settle date and proceeds are
// ignored.
var reportLine = regexp.MustCompile(`(?i)U\*\*\*\d+\s+` +
	`(?P<symbol>[A-Z]+(?: \d{1,2}[A-Z]{3}\d{2} \d+(?:\.\d+)? [CP])?)\s+` +
	`(?P<date>\d{4}-\d{2}-\d{2}),?\s*` +
	`(?P<time>\d{2}:\d{2}:\d{2})\s*` +
	`(?:\d{4}-\d{2}-\d{2})?\s*[-\s]*` +
	`(?P<side>BUY|SELL)\s*` +
	`(?P<quantity>\d+)\s+` +
	`(?P<price>\d+\.?\d*)`)

// accountPrefix starts every trade record in both report layouts.
const accountPrefix = "U***"

// reportTrailer ends the trade section of a report page; everything after
// it is instrument reference data the core does not consume.
const reportTrailer = "Financial Instrument Information"

// ParseReport extracts raw trade records from a broker daily report given
// as text, one record per trade fill.
//
// Two layouts are recognized: the single-line form, and the stacked form
// where the account line is followed by symbol, "date, time", settle date,
// exchange, side, quantity and price on their own lines. Total rows are
// skipped. Field typing is not done here: records go through
// tradebook.Normalize, which owns the malformed-record diagnostics.
func ParseReport(r io.Reader, source string) ([]tradebook.RawRecord, error) {
	// Rows keep the source file's line numbers so diagnostics point at
	// the actual line, blank lines included.
	var lines []string
	var rows []int
	scanner := bufio.NewScanner(r)
	for row := 1; scanner.Scan(); row++ {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if strings.Contains(line, reportTrailer) {
			break
		}
		lines = append(lines, line)
		rows = append(rows, row)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cannot read report %q: %w", source, err)
	}

	var records []tradebook.RawRecord
	for i := 0; i < len(lines); i++ {
		line := lines[i]
		if !strings.HasPrefix(line, accountPrefix) {
			continue
		}

		if m := matchLine(line); m != nil {
			m.Source, m.Row = source, rows[i]
			records = append(records, *m)
			continue
		}

		// Stacked layout: symbol, "date, time", settle date, exchange,
		// side, quantity, price each on their own line.
		if i+7 >= len(lines) {
			continue
		}
		symbol := lines[i+1]
		if strings.Contains(symbol, "Total") {
			continue
		}
		// Drops a trailing "(Stock)" annotation while keeping option
		// symbols, which legitimately contain spaces.
		symbol, _, _ = strings.Cut(symbol, "(")
		day, at, ok := strings.Cut(lines[i+2], ",")
		if !ok {
			continue
		}
		records = append(records, tradebook.RawRecord{
			Symbol:   strings.TrimSpace(symbol),
			Date:     strings.TrimSpace(day),
			Time:     strings.TrimSpace(at),
			Side:     lines[i+5],
			Quantity: lines[i+6],
			Price:    lines[i+7],
			Source:   source,
			Row:      rows[i],
		})
		i += 7
	}
	return records, nil
}

// matchLine parses the single-line form, returning nil when the line does
// not match.
func matchLine(line string) *tradebook.RawRecord {
	m := reportLine.FindStringSubmatch(line)
	if m == nil {
		return nil
	}
	rec := &tradebook.RawRecord{}
	for i, name := range reportLine.SubexpNames() {
		switch name {
		case "symbol":
			rec.Symbol = m[i]
		case "date":
			rec.Date = m[i]
		case "time":
			rec.Time = m[i]
		case "side":
			rec.Side = m[i]
		case "quantity":
			rec.Quantity = m[i]
		case "price":
			rec.Price = m[i]
		}
	}
	return rec
}
