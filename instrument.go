package tradebook

import (
	"regexp"

	"github.com/shopspring/decimal"
)

// Kind classifies the instrument a symbol denotes.
type Kind int

const (
	// Equity is a plain stock ticker.
	Equity Kind = iota
	// Option is a derivative contract quoted per share with a standard
	// contract size of 100.
	Option
)

func (k Kind) String() string {
	switch k {
	case Equity:
		return "equity"
	case Option:
		return "option"
	default:
		return "unknown"
	}
}

// optionSymbol recognizes the space-separated option contract form emitted
// by the broker reports: ticker, expiry token, strike and right (C or P),
// e.g. "SPY 19DEC25 580 C". This is string-pattern matching, not real
// instrument metadata; a stricter options grammar can replace it without
// touching the matching logic.
var optionSymbol = regexp.MustCompile(`^[A-Z]+ \d{1,2}[A-Z]{3}\d{2} \d+(\.\d+)? [CP]$`)

var (
	equityMultiplier = Quantity{value: decimal.NewFromInt(1)}
	optionMultiplier = Quantity{value: decimal.NewFromInt(100)}
)

// Classify determines whether a symbol denotes an equity or an option
// contract, and returns the price multiplier to apply to quoted prices.
//
// Symbols that do not match the option pattern are treated as equities
// with a multiplier of 1. That is an assumption, not an error: the
// classifier has no symbol reference data to validate against.
func Classify(symbol string) (Kind, Quantity) {
	if optionSymbol.MatchString(symbol) {
		return Option, optionMultiplier
	}
	return Equity, equityMultiplier
}
