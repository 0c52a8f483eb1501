package dto

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire format for due dates and date-range query params.
const DateLayout = "2006-01-02"

// Date is a calendar date that marshals as "2006-01-02".
type Date struct {
	time.Time
}

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.Format(DateLayout) + `"`), nil
}

func (d *Date) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		return nil
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return fmt.Errorf("invalid date %q, expected %s: %w", s, DateLayout, err)
	}
	d.Time = t
	return nil
}

// NewDate builds a Date from a time value, truncated to the day.
func NewDate(t time.Time) Date {
	return Date{Time: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())}
}
