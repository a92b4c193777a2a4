// Package endpoints resolves period end-points over an index sequence.
package endpoints

import (
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/sartorproj/gotsframe/index"
	"github.com/sartorproj/gotsframe/period"
)

// ErrKindMismatch is returned when a calendar or fixed-duration unit
// is applied to an index whose kind cannot support it, e.g. months
// over a plain integer index.
var ErrKindMismatch = errors.New("index kind does not support this period unit")

// KeyFunc maps one index element to a comparable bucket key, e.g.
// day-of-week for a date index or x*x for a plain index. Elements
// with equal keys fall into the same bucket. Returned keys must be of
// a comparable type (a non-comparable key panics) and must not be
// NaN, which compares unequal to itself and would strand every
// element it keys in its own bucket.
type KeyFunc func(v index.Value) any

// ByPeriod returns the 1-based positions of the last element of every
// u.N-th period bucket, scanning the sequence once. The positions are
// strictly increasing; because they are 1-based, each value doubles as
// the exclusive end of a 0-based half-open row slice, so consecutive
// results delimit bucket rows directly.
//
// Calendar units (Year, Quarter, Month, Week) and Day bucket by
// calendar component, so the final position always closes a bucket
// when u.N == 1 even if the trailing period is incomplete. Sub-day
// units bucket by the timestamp floored to the unit and a multiplier
// larger than the number of buckets yields an empty result.
func ByPeriod(ix *index.Index, u period.Unit) ([]int, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}
	keys, err := unitKeys(ix, u.Tag)
	if err != nil {
		return nil, err
	}
	return every(lastOfRuns(keys), u.N), nil
}

// ByFrequency is the named-unit form of ByPeriod: name is one of the
// frequency names recognized by period.Parse and k is the stride.
// ByFrequency(ix, "months", 2) equals ByPeriod(ix, period.Months(2)).
func ByFrequency(ix *index.Index, name string, k int) ([]int, error) {
	tag, err := period.Parse(name)
	if err != nil {
		return nil, err
	}
	return ByPeriod(ix, period.Unit{Tag: tag, N: k})
}

// ByFunc buckets by an arbitrary classifier: f is applied to every
// element, the last position of each distinct key is a raw boundary,
// and every k-th raw boundary is kept. Works on any index kind.
func ByFunc(ix *index.Index, f KeyFunc, k int) ([]int, error) {
	if k < 1 {
		return nil, fmt.Errorf("k = %d: %w", k, period.ErrNonPositive)
	}
	n := ix.Len()
	last := make(map[any]int, n)
	for i := 0; i < n; i++ {
		last[f(ix.At(i))] = i + 1
	}
	pts := make([]int, 0, len(last))
	for _, p := range last {
		pts = append(pts, p)
	}
	sort.Ints(pts)
	return every(pts, k), nil
}

// unitKeys computes one bucket key per element for a period tag.
func unitKeys(ix *index.Index, tag period.Tag) ([]int64, error) {
	n := ix.Len()
	keys := make([]int64, n)
	switch ix.Kind() {
	case index.Date, index.DateTime:
		for i := 0; i < n; i++ {
			keys[i] = timeKey(ix.Time(i), tag)
		}
	case index.TimeOfDay:
		d, ok := tag.Duration()
		if !ok || tag == period.Day {
			// A clock has no calendar and never crosses a day boundary.
			return nil, fmt.Errorf("%s on a %s index: %w", tag, ix.Kind(), ErrKindMismatch)
		}
		if n == 0 {
			return keys, nil
		}
		// Elapsed offset from the first element, not from midnight.
		start := ix.Clock(0)
		for i := 0; i < n; i++ {
			keys[i] = floorDiv(int64(ix.Clock(i)-start), int64(d))
		}
	default:
		return nil, fmt.Errorf("%s on a %s index: %w", tag, ix.Kind(), ErrKindMismatch)
	}
	return keys, nil
}

// timeKey maps a timestamp to its bucket key for one base unit.
func timeKey(t time.Time, tag period.Tag) int64 {
	switch tag {
	case period.Year:
		return int64(t.Year())
	case period.Quarter:
		return int64(t.Year())*4 + (int64(t.Month())-1)/3
	case period.Month:
		return int64(t.Year())*12 + int64(t.Month()) - 1
	case period.Week:
		// Monday-to-Sunday weeks; the epoch day 1970-01-01 is a Thursday.
		return floorDiv(civilDay(t)+3, 7)
	case period.Day:
		return civilDay(t)
	default:
		d, _ := tag.Duration()
		return floorDiv(t.UnixNano(), int64(d))
	}
}

// civilDay returns the day number of t's calendar date.
func civilDay(t time.Time) int64 {
	y, m, d := t.Date()
	return floorDiv(time.Date(y, m, d, 0, 0, 0, 0, time.UTC).Unix(), 86400)
}

// lastOfRuns returns the 1-based last position of every key run.
// Keys of a sorted sequence arrive in runs, so the last element of
// each run is the last occurrence of its key.
func lastOfRuns(keys []int64) []int {
	n := len(keys)
	if n == 0 {
		return []int{}
	}
	pts := make([]int, 0, 8)
	for i := 1; i < n; i++ {
		if keys[i] != keys[i-1] {
			pts = append(pts, i)
		}
	}
	return append(pts, n)
}

// every keeps the k-th, 2k-th, ... raw boundary. A trailing group of
// fewer than k boundaries contributes nothing.
func every(pts []int, k int) []int {
	if k == 1 {
		return pts
	}
	out := make([]int, 0, len(pts)/k)
	for i := k - 1; i < len(pts); i += k {
		out = append(out, pts[i])
	}
	return out
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int64) int64 {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}
