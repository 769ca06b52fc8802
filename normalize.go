package tradebook

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/etnz/tradebook/date"
	"github.com/shopspring/decimal"
)

// RawRecord is a trade record as extracted from a source document, before
// any validation. All fields are strings: the extractor does layout work
// only, the Normalizer owns typing.
type RawRecord struct {
	Symbol   string
	Date     string
	Time     string
	Side     string
	Quantity string
	Price    string

	// Source context, carried into errors so a human can fix the document.
	Source string // file or document name
	Row    int    // line or record index within the source
}

// MalformedRecordError reports a raw record whose required fields are
// missing or fail to parse. It is not retried; the record is surfaced to
// the caller with enough context to locate it in the source.
type MalformedRecordError struct {
	Record RawRecord
	Field  string
	Err    error
}

func (e *MalformedRecordError) Error() string {
	loc := e.Record.Source
	if loc == "" {
		loc = "record"
	}
	return fmt.Sprintf("%s row %d: malformed field %q: %v", loc, e.Record.Row, e.Field, e.Err)
}

func (e *MalformedRecordError) Unwrap() error { return e.Err }

func malformed(rec RawRecord, field string, err error) error {
	return &MalformedRecordError{Record: rec, Field: field, Err: err}
}

var errMissing = fmt.Errorf("missing value")

// Normalize converts a raw extracted record into a canonical Trade in the
// given currency, applying the instrument multiplier to the quoted price.
//
// It is a pure, deterministic transform. Zero or negative quantities and
// prices are rejected here so the matching engine can assume strictly
// positive values.
func Normalize(rec RawRecord, currency string) (Trade, error) {
	// Symbols are canonically upper case. Sources are not: the report
	// grammar is case-insensitive, and Classify only knows the canonical
	// form.
	symbol := strings.ToUpper(strings.TrimSpace(rec.Symbol))
	if symbol == "" {
		return Trade{}, malformed(rec, "symbol", errMissing)
	}

	day, err := date.Parse(strings.TrimSpace(rec.Date))
	if err != nil {
		return Trade{}, malformed(rec, "date", err)
	}

	at, err := date.ParseClock(strings.TrimSpace(rec.Time))
	if err != nil {
		return Trade{}, malformed(rec, "time", err)
	}

	side, err := ParseSide(rec.Side)
	if err != nil {
		return Trade{}, malformed(rec, "side", err)
	}

	qty, err := strconv.Atoi(strings.TrimSpace(rec.Quantity))
	if err != nil {
		return Trade{}, malformed(rec, "quantity", err)
	}
	if qty <= 0 {
		return Trade{}, malformed(rec, "quantity", fmt.Errorf("must be strictly positive, got %d", qty))
	}

	price, err := decimal.NewFromString(strings.TrimSpace(rec.Price))
	if err != nil {
		return Trade{}, malformed(rec, "price", err)
	}
	if !price.IsPositive() {
		return Trade{}, malformed(rec, "price", fmt.Errorf("must be strictly positive, got %s", price))
	}

	_, multiplier := Classify(symbol)

	return Trade{
		Symbol:   symbol,
		Day:      day,
		At:       at,
		Side:     side,
		Quantity: Q(qty),
		Price:    M(price, currency).Mul(multiplier),
	}, nil
}
