// Package period defines the unit vocabulary for time bucketing.
//
// A Unit pairs a Tag (Year through Nanosecond) with a positive
// multiplier:
//
//	u := period.Months(2)   // every second month boundary
//	u = period.Unit{period.Hour, 6}
//
// Year, Quarter, Month, and Week are calendar units: their length
// varies with the calendar, so they bucket by calendar component.
// The remaining tags are fixed-duration units with a constant length
// available from Tag.Duration.
//
// # Frequency names
//
// The named form used by endpoints.ByFrequency resolves the eleven
// lower-case plural names:
//
//	tag, err := period.Parse("months")  // period.Month
//	_, err = period.Parse("Months")     // period.ErrUnknownUnit
//
// Unit.Validate rejects non-positive multipliers with
// period.ErrNonPositive before any data is scanned.
package period
