// Package datefmt mirrors the permissive date parsing of the previous
// implementation: handlers only need "is this a date" plus day-granularity
// comparison, with values stored and echoed back as the strings clients sent.
package datefmt

import "time"

const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)

var layouts = []string{
	DateLayout,
	DateTimeLayout,
	time.RFC3339,
	"01/02/2006",
}

// Parse tries the accepted layouts in order.
func Parse(s string) (time.Time, bool) {
	for _, layout := range layouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// Valid reports whether s parses under any accepted layout.
func Valid(s string) bool {
	_, ok := Parse(s)
	return ok
}

// Today returns the current day truncated to midnight (local time), the
// reference point for "start date cannot be in the past".
func Today() time.Time {
	now := time.Now()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
}

// Now returns the current timestamp in the storage layout.
func Now() string {
	return time.Now().Format(DateTimeLayout)
}
