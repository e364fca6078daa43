package kernel

import (
	"fmt"
	"time"

	"catering/internal/pkg/errs"
)

// DateLayout is the ISO-8601 calendar date layout used for storage and parameters.
const DateLayout = "2006-01-02"

// Date is a calendar date with no time of day and no zone. The zero value is unset.
type Date struct {
	t time.Time
}

// NewDate builds a date; out-of-range components normalize like time.Date.
func NewDate(year int, month time.Month, day int) Date {
	return Date{t: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) Date {
	y, m, d := t.Date()
	return NewDate(y, m, d)
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, errs.NewValueIsInvalidErrorWithCause("date", fmt.Errorf("%q is not a YYYY-MM-DD date", s))
	}
	return Date{t: t}, nil
}

func (d Date) IsZero() bool {
	return d.t.IsZero()
}

func (d Date) Equal(other Date) bool {
	return d.t.Equal(other.t)
}

func (d Date) Before(other Date) bool {
	return d.t.Before(other.t)
}

// AddDays returns the date n days later (earlier for negative n).
func (d Date) AddDays(n int) Date {
	return Date{t: d.t.AddDate(0, 0, n)}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time {
	return d.t
}

func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.t.Format(DateLayout)
}

func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Date) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := ParseDate(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
