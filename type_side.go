package tradebook

import (
	"encoding/json"
	"fmt"
	"strings"
)

// Side is the direction of a single fill. The book itself is long-only:
// a Sell closes previously bought lots, it never opens a short position.
type Side int

const (
	Buy Side = iota
	Sell
)

func (s Side) String() string {
	switch s {
	case Buy:
		return "BUY"
	case Sell:
		return "SELL"
	default:
		return "unknown"
	}
}

// ParseSide parses a string into a Side.
func ParseSide(s string) (Side, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "BUY":
		return Buy, nil
	case "SELL":
		return Sell, nil
	default:
		return 0, fmt.Errorf("unknown side: %q", s)
	}
}

// MarshalJSON implements the json.Marshaler interface.
func (s Side) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Side) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseSide(str)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
