package core

import (
	"fmt"
	"time"
)

// Timestamp is a UTC instant recorded on reports and battery runs
type Timestamp time.Time

// Now returns the current instant in UTC
func Now() Timestamp {
	return Timestamp(time.Now().UTC())
}

func (t Timestamp) Time() time.Time { return time.Time(t) }

func (t Timestamp) IsZero() bool { return t.Time().IsZero() }

// Sub returns t-u; battery runs use it for elapsed time
func (t Timestamp) Sub(u Timestamp) time.Duration {
	return t.Time().Sub(u.Time())
}

// MarshalJSON always writes RFC 3339 with nanoseconds in UTC
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return []byte(`"` + t.Time().UTC().Format(time.RFC3339Nano) + `"`), nil
}

func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return fmt.Errorf("timestamp: expected JSON string, got %s", data)
	}
	parsed, err := time.Parse(time.RFC3339Nano, string(data[1:len(data)-1]))
	if err != nil {
		return fmt.Errorf("timestamp: %w", err)
	}
	*t = Timestamp(parsed.UTC())
	return nil
}

func (t Timestamp) String() string { return t.Time().Format(time.RFC3339) }
