package domain

import (
	"fmt"
	"time"
)

// TimestampLayout is the fixed wire format for trade timestamps,
// interpreted in the server's local time zone.
const TimestampLayout = "2006-01-02 15:04:05"

// ParseTimestamp parses a trade timestamp against TimestampLayout.
// Strings that don't match the layout are rejected rather than being
// mapped to a fallback time.
func ParseTimestamp(s string) (time.Time, error) {
	t, err := time.ParseInLocation(TimestampLayout, s, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("malformed timestamp %q: expected YYYY-MM-DD HH:MM:SS", s)
	}
	return t, nil
}
