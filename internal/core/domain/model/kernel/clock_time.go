package kernel

import (
	"fmt"
	"regexp"
	"strconv"

	"catering/internal/pkg/errs"
	"catering/internal/pkg/guard"
)

var clockTimePattern = regexp.MustCompile(`^([01]\d|2[0-3]):([0-5]\d)$`)

// ClockTime is a 24h wall-clock time (HH:MM). The zero value means "not set", which
// is distinct from midnight.
type ClockTime struct {
	hour   int
	minute int

	guard guard.ConstructorGuard
}

// NewClockTime validates and builds a clock time.
func NewClockTime(hour, minute int) (ClockTime, error) {
	if hour < 0 || hour > 23 {
		return ClockTime{}, errs.NewValueIsOutOfRangeError("hour", hour, 0, 23)
	}
	if minute < 0 || minute > 59 {
		return ClockTime{}, errs.NewValueIsOutOfRangeError("minute", minute, 0, 59)
	}
	return ClockTime{hour: hour, minute: minute, guard: guard.NewConstructorGuard()}, nil
}

// ParseClockTime parses "HH:MM". An empty string yields the unset value.
func ParseClockTime(s string) (ClockTime, error) {
	if s == "" {
		return ClockTime{}, nil
	}
	m := clockTimePattern.FindStringSubmatch(s)
	if m == nil {
		return ClockTime{}, errs.NewValueIsInvalidErrorWithCause("deliveryTime", fmt.Errorf("%q is not HH:MM", s))
	}
	hour, _ := strconv.Atoi(m[1])
	minute, _ := strconv.Atoi(m[2])
	return NewClockTime(hour, minute)
}

// IsSet reports whether the value was constructed (as opposed to left zero).
func (c ClockTime) IsSet() bool {
	return c.guard.Validate(nil) == nil
}

func (c ClockTime) Hour() int {
	return c.hour
}

func (c ClockTime) Minute() int {
	return c.minute
}

// String renders HH:MM, or "" when unset.
func (c ClockTime) String() string {
	if !c.IsSet() {
		return ""
	}
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

func (c ClockTime) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *ClockTime) UnmarshalText(text []byte) error {
	parsed, err := ParseClockTime(string(text))
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}
