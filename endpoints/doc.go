// Package endpoints finds the positions that close period buckets in
// an ordered index sequence.
//
// Given daily dates spanning January through part of July, the last
// row of every month is:
//
//	eps, err := endpoints.ByPeriod(ix, period.Months(1))
//	// eps == [30 58 89 119 150 180 181]
//
// Positions are 1-based and strictly increasing, and the final
// position is included while it closes a calendar bucket, even a
// partial one. A 1-based position doubles as the exclusive end of a
// 0-based half-open slice, so consecutive results cut the rows of one
// bucket out of a frame:
//
//	prev := 0
//	for _, ep := range eps {
//	    bucket := f.Slice(prev, ep)
//	    prev = ep
//	}
//
// # Selector forms
//
// Three equivalent entry points mirror the three selector forms:
//
//	endpoints.ByPeriod(ix, period.Months(2))      // typed unit
//	endpoints.ByFrequency(ix, "months", 2)        // frequency name + stride
//	endpoints.ByFunc(ix, f, 2)                    // arbitrary classifier
//
// The classifier form groups by the key f returns for each element
// and works on any index kind, including plain integers:
//
//	sq := func(v index.Value) any { n := v.Num; return n * n }
//	endpoints.ByFunc(index.Ints([]int{-3, -2, -1, 0, 1, 2, 3}), sq, 1)
//	// [4 5 6 7]
//
// # Errors
//
// Non-positive strides or multipliers return period.ErrNonPositive,
// unrecognized frequency names return period.ErrUnknownUnit, and
// calendar or duration units over an index kind that cannot support
// them return ErrKindMismatch. The engine is pure: it only reads the
// sequence, allocates the result, and is safe for concurrent use.
package endpoints
