package bankbook

import (
	"fmt"
	"time"
)

// TimeFormat is the format used to represent transaction timestamps as
// strings, with second resolution.
const TimeFormat = "2006-01-02 15:04:05"

// Timestamp represents a point in time with second-level granularity.
type Timestamp struct {
	t time.Time
}

// Now returns the current local time truncated to the second.
func Now() Timestamp { return Timestamp{time.Now().Truncate(time.Second)} }

// NewTimestamp returns a Timestamp for the given calendar values.
func NewTimestamp(year int, month time.Month, day, hour, min, sec int) Timestamp {
	return Timestamp{time.Date(year, month, day, hour, min, sec, 0, time.Local)}
}

// ParseTimestamp parses a string in TimeFormat.
func ParseTimestamp(s string) (Timestamp, error) {
	t, err := time.ParseInLocation(TimeFormat, s, time.Local)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid timestamp %q: %w", s, err)
	}
	return Timestamp{t}, nil
}

// MustParseTimestamp parses a string in TimeFormat and panics on error.
// It is meant for tests and constants.
func MustParseTimestamp(s string) Timestamp {
	ts, err := ParseTimestamp(s)
	if err != nil {
		panic(err)
	}
	return ts
}

// String formats the timestamp in TimeFormat.
func (ts Timestamp) String() string { return ts.t.Format(TimeFormat) }

// IsZero returns true if the timestamp is the zero value.
func (ts Timestamp) IsZero() bool { return ts.t.IsZero() }

// Before reports whether ts is before x.
func (ts Timestamp) Before(x Timestamp) bool { return ts.t.Before(x.t) }

// After reports whether ts is after x.
func (ts Timestamp) After(x Timestamp) bool { return ts.t.After(x.t) }

// Equal reports whether ts and x denote the same second.
func (ts Timestamp) Equal(x Timestamp) bool { return ts.t.Equal(x.t) }
