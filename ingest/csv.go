package ingest

import (
	"encoding/csv"
	"fmt"
	"io"

	"github.com/etnz/tradebook"
)

// csvHeader is the consolidated-trades export column order.
var csvHeader = []string{"Symbol", "Quantity", "Side", "Price", "Time", "Date"}

// WriteCSV exports consolidated buckets as CSV, one row per bucket.
//
// The average price is written with full precision; rounding is a concern
// of whoever reads the file.
func WriteCSV(w io.Writer, buckets []tradebook.Bucket) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("cannot write csv header: %w", err)
	}
	for _, b := range buckets {
		row := []string{
			b.Symbol,
			b.Quantity.String(),
			b.Side.String(),
			b.AveragePrice.Amount().String(),
			b.At.String(),
			b.Day.String(),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("cannot write csv row for %s: %w", b.Symbol, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// ReadCSV reads raw trade records from a CSV file in the export column
// order. The header row is required.
func ReadCSV(r io.Reader, source string) ([]tradebook.RawRecord, error) {
	cr := csv.NewReader(r)
	rows, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot read csv %q: %w", source, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}

	// Map columns by header name so reordered files still load.
	col := make(map[string]int, len(rows[0]))
	for i, name := range rows[0] {
		col[name] = i
	}
	for _, name := range csvHeader {
		if _, ok := col[name]; !ok {
			return nil, fmt.Errorf("csv %q is missing column %q", source, name)
		}
	}

	var records []tradebook.RawRecord
	for i, row := range rows[1:] {
		records = append(records, tradebook.RawRecord{
			Symbol:   row[col["Symbol"]],
			Quantity: row[col["Quantity"]],
			Side:     row[col["Side"]],
			Price:    row[col["Price"]],
			Time:     row[col["Time"]],
			Date:     row[col["Date"]],
			Source:   source,
			Row:      i + 2, // 1-based, after the header
		})
	}
	return records, nil
}
