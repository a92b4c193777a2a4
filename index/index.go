// Package index provides the kinded index sequence of a time-series frame.
package index

import (
	"fmt"
	"time"
)

// Kind classifies the elements of an Index.
type Kind int

// Index element kinds.
const (
	// Plain is any totally ordered scalar with no time semantics.
	Plain Kind = iota
	// Date is a calendar date at day resolution.
	Date
	// DateTime is a calendar timestamp at sub-day resolution.
	DateTime
	// TimeOfDay is a clock offset within one 24h day, with no calendar.
	TimeOfDay
)

var kindNames = [...]string{
	Plain:     "plain",
	Date:      "date",
	DateTime:  "datetime",
	TimeOfDay: "timeofday",
}

// String returns the kind name.
func (k Kind) String() string {
	if k < Plain || k > TimeOfDay {
		return fmt.Sprintf("Kind(%d)", int(k))
	}
	return kindNames[k]
}

// TimeLike reports whether elements of this kind support time
// arithmetic (everything except Plain).
func (k Kind) TimeLike() bool {
	return k != Plain
}

// Value is a view of one index element. Which field is meaningful
// depends on the owning Index's kind.
type Value struct {
	Kind  Kind
	Time  time.Time     // Date and DateTime
	Clock time.Duration // TimeOfDay: offset since midnight
	Num   float64       // Plain
}

// Index is an immutable ordered sequence of same-kind elements.
// Bucketing assumes the sequence is non-decreasing; the frame
// constructor enforces that, Index itself only offers IsSorted as a
// diagnostic and never reorders (reordering would break the
// row-to-observation correspondence).
type Index struct {
	kind   Kind
	times  []time.Time
	clocks []time.Duration
	nums   []float64
}

// Dates builds a day-resolution calendar index.
func Dates(ts []time.Time) *Index {
	return &Index{kind: Date, times: ts}
}

// DateTimes builds a sub-day calendar index.
func DateTimes(ts []time.Time) *Index {
	return &Index{kind: DateTime, times: ts}
}

// Clocks builds a time-of-day index from offsets since midnight.
func Clocks(cs []time.Duration) *Index {
	return &Index{kind: TimeOfDay, clocks: cs}
}

// Nums builds a plain scalar index.
func Nums(xs []float64) *Index {
	return &Index{kind: Plain, nums: xs}
}

// Ints builds a plain scalar index from integers.
func Ints(xs []int) *Index {
	nums := make([]float64, len(xs))
	for i, x := range xs {
		nums[i] = float64(x)
	}
	return Nums(nums)
}

// Default builds the implicit plain index 1..n.
func Default(n int) *Index {
	nums := make([]float64, n)
	for i := range nums {
		nums[i] = float64(i + 1)
	}
	return Nums(nums)
}

// Kind returns the element kind shared by the whole sequence.
func (ix *Index) Kind() Kind {
	return ix.kind
}

// Len returns the number of elements.
func (ix *Index) Len() int {
	switch ix.kind {
	case TimeOfDay:
		return len(ix.clocks)
	case Plain:
		return len(ix.nums)
	default:
		return len(ix.times)
	}
}

// At returns the i-th element (0-based).
func (ix *Index) At(i int) Value {
	v := Value{Kind: ix.kind}
	switch ix.kind {
	case TimeOfDay:
		v.Clock = ix.clocks[i]
	case Plain:
		v.Num = ix.nums[i]
	default:
		v.Time = ix.times[i]
	}
	return v
}

// Time returns the i-th timestamp. Valid for Date and DateTime kinds.
func (ix *Index) Time(i int) time.Time {
	return ix.times[i]
}

// Clock returns the i-th clock offset. Valid for the TimeOfDay kind.
func (ix *Index) Clock(i int) time.Duration {
	return ix.clocks[i]
}

// Num returns the i-th scalar. Valid for the Plain kind.
func (ix *Index) Num(i int) float64 {
	return ix.nums[i]
}

// IsSorted reports whether the sequence is non-decreasing.
func (ix *Index) IsSorted() bool {
	switch ix.kind {
	case TimeOfDay:
		for i := 1; i < len(ix.clocks); i++ {
			if ix.clocks[i] < ix.clocks[i-1] {
				return false
			}
		}
	case Plain:
		for i := 1; i < len(ix.nums); i++ {
			if ix.nums[i] < ix.nums[i-1] {
				return false
			}
		}
	default:
		for i := 1; i < len(ix.times); i++ {
			if ix.times[i].Before(ix.times[i-1]) {
				return false
			}
		}
	}
	return true
}

// Slice returns the elements in [start, end) as a new Index. Bounds
// are clamped to the sequence.
func (ix *Index) Slice(start, end int) *Index {
	n := ix.Len()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		start, end = 0, 0
	}
	out := &Index{kind: ix.kind}
	switch ix.kind {
	case TimeOfDay:
		out.clocks = append([]time.Duration(nil), ix.clocks[start:end]...)
	case Plain:
		out.nums = append([]float64(nil), ix.nums[start:end]...)
	default:
		out.times = append([]time.Time(nil), ix.times[start:end]...)
	}
	return out
}

// Format renders the i-th element for display.
func (ix *Index) Format(i int) string {
	switch ix.kind {
	case Date:
		return ix.times[i].Format("2006-01-02")
	case DateTime:
		return ix.times[i].Format("2006-01-02 15:04:05")
	case TimeOfDay:
		base := time.Time{}.Add(ix.clocks[i])
		return base.Format("15:04:05")
	default:
		return fmt.Sprintf("%g", ix.nums[i])
	}
}
