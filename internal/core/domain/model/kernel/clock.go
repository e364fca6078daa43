package kernel

import "time"

// Clock supplies the current instant. Everything that stamps history or creation
// times takes a Clock so tests can pin "now".
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to Clock.
type ClockFunc func() time.Time

func (f ClockFunc) Now() time.Time {
	return f()
}

// InstantPrecision is the resolution at which recorded instants are kept. It
// matches what timestamptz columns store, so a reloaded order compares equal.
const InstantPrecision = time.Microsecond

// Instant normalizes t to UTC at InstantPrecision.
func Instant(t time.Time) time.Time {
	return t.UTC().Truncate(InstantPrecision)
}

// SystemClock returns wall-clock time in UTC at InstantPrecision.
func SystemClock() Clock {
	return ClockFunc(func() time.Time { return Instant(time.Now()) })
}

// FixedClock always returns t.
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}
