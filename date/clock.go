package date

import (
	"encoding/json"
	"fmt"
	"time"
)

// ClockFormat is the format used to represent a time of day as a string.
const ClockFormat = "15:04:05"

// Clock represents a time of day with second granularity, with no date or
// time zone attached.
type Clock struct {
	h, m, s int
}

// NewClock returns a normalized Clock for the given hour, minute and second.
func NewClock(hour, min, sec int) Clock {
	t := time.Date(0, time.January, 1, hour, min, sec, 0, time.UTC)
	return Clock{t.Hour(), t.Minute(), t.Second()}
}

// Hour returns the hour of the clock.
func (c Clock) Hour() int { return c.h }

// Minute returns the minute of the clock.
func (c Clock) Minute() int { return c.m }

// Second returns the second of the clock.
func (c Clock) Second() int { return c.s }

func (c Clock) seconds() int { return c.h*3600 + c.m*60 + c.s }

// Before reports whether the clock c is before x.
func (c Clock) Before(x Clock) bool { return c.seconds() < x.seconds() }

// After reports whether the clock c is after x.
func (c Clock) After(x Clock) bool { return c.seconds() > x.seconds() }

// String formats the clock in its standard "15:04:05" format.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.h, c.m, c.s)
}

// ParseClock parses a Clock from a string in the "15:04:05" format.
func ParseClock(str string) (Clock, error) {
	on, err := time.Parse(ClockFormat, str)
	if err != nil {
		return Clock{}, fmt.Errorf("invalid time %q want format %q: %w", str, ClockFormat, err)
	}
	return NewClock(on.Clock()), nil
}

// MustParseClock is like ParseClock but panics on error.
func MustParseClock(str string) Clock {
	c, err := ParseClock(str)
	if err != nil {
		panic(err.Error())
	}
	return c
}

// UnmarshalJSON implements the json specific way to unmarshall a clock from a json string.
func (c *Clock) UnmarshalJSON(bytes []byte) error {
	var str string
	if err := json.Unmarshal(bytes, &str); err != nil {
		return err
	}
	parsed, err := ParseClock(str)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (c Clock) MarshalJSON() ([]byte, error) {
	str := c.String()
	return json.Marshal(&str)
}

var _ json.Marshaler = (*Clock)(nil)
var _ json.Unmarshaler = (*Clock)(nil)
