// Package period defines time period units and frequency name parsing.
package period

import (
	"errors"
	"fmt"
	"time"
)

// Errors reported by unit construction and parsing.
var (
	// ErrUnknownUnit is returned for a frequency name outside the
	// recognized set.
	ErrUnknownUnit = errors.New("unknown period unit")

	// ErrNonPositive is returned for a stride or period length below 1.
	ErrNonPositive = errors.New("period length must be positive")
)

// Tag identifies one period unit.
type Tag int

// Recognized period units, coarsest first.
const (
	Year Tag = iota
	Quarter
	Month
	Week
	Day
	Hour
	Minute
	Second
	Millisecond
	Microsecond
	Nanosecond
)

var tagNames = [...]string{
	Year:        "years",
	Quarter:     "quarters",
	Month:       "months",
	Week:        "weeks",
	Day:         "days",
	Hour:        "hours",
	Minute:      "minutes",
	Second:      "seconds",
	Millisecond: "milliseconds",
	Microsecond: "microseconds",
	Nanosecond:  "nanoseconds",
}

// String returns the frequency name of the tag ("years", "months", ...).
func (t Tag) String() string {
	if t < Year || t > Nanosecond {
		return fmt.Sprintf("Tag(%d)", int(t))
	}
	return tagNames[t]
}

// IsCalendar reports whether the tag is a calendar unit whose length
// varies with the calendar (Year, Quarter, Month, Week). The remaining
// tags are fixed-duration units.
func (t Tag) IsCalendar() bool {
	return t >= Year && t <= Week
}

// Duration returns the constant length of a fixed-duration tag.
// ok is false for calendar tags, which have no constant length.
func (t Tag) Duration() (d time.Duration, ok bool) {
	switch t {
	case Day:
		return 24 * time.Hour, true
	case Hour:
		return time.Hour, true
	case Minute:
		return time.Minute, true
	case Second:
		return time.Second, true
	case Millisecond:
		return time.Millisecond, true
	case Microsecond:
		return time.Microsecond, true
	case Nanosecond:
		return time.Nanosecond, true
	}
	return 0, false
}

// Parse resolves a frequency name to its tag. Names are the lower-case
// plurals "years" through "nanoseconds", matched case-sensitively.
func Parse(name string) (Tag, error) {
	for t, n := range tagNames {
		if n == name {
			return Tag(t), nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownUnit)
}

// Unit is a period unit with a positive multiplier, e.g. Months(2).
type Unit struct {
	Tag Tag
	N   int
}

// Validate checks the multiplier. A zero or negative N is rejected
// before any scanning happens.
func (u Unit) Validate() error {
	if u.N < 1 {
		return fmt.Errorf("%d %s: %w", u.N, u.Tag, ErrNonPositive)
	}
	return nil
}

// String returns the unit as "<n> <name>", e.g. "2 months".
func (u Unit) String() string {
	return fmt.Sprintf("%d %s", u.N, u.Tag)
}

// Years returns a Unit of n years.
func Years(n int) Unit { return Unit{Year, n} }

// Quarters returns a Unit of n quarters.
func Quarters(n int) Unit { return Unit{Quarter, n} }

// Months returns a Unit of n months.
func Months(n int) Unit { return Unit{Month, n} }

// Weeks returns a Unit of n Monday-to-Sunday weeks.
func Weeks(n int) Unit { return Unit{Week, n} }

// Days returns a Unit of n civil days.
func Days(n int) Unit { return Unit{Day, n} }

// Hours returns a Unit of n hours.
func Hours(n int) Unit { return Unit{Hour, n} }

// Minutes returns a Unit of n minutes.
func Minutes(n int) Unit { return Unit{Minute, n} }

// Seconds returns a Unit of n seconds.
func Seconds(n int) Unit { return Unit{Second, n} }

// Milliseconds returns a Unit of n milliseconds.
func Milliseconds(n int) Unit { return Unit{Millisecond, n} }

// Microseconds returns a Unit of n microseconds.
func Microseconds(n int) Unit { return Unit{Microsecond, n} }

// Nanoseconds returns a Unit of n nanoseconds.
func Nanoseconds(n int) Unit { return Unit{Nanosecond, n} }
