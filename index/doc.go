// Package index provides the ordered index sequence a frame is keyed by.
//
// An Index holds elements of exactly one Kind:
//
//	index.Dates(dates)       // calendar dates, day resolution
//	index.DateTimes(stamps)  // calendar timestamps
//	index.Clocks(offsets)    // time of day, offsets since midnight
//	index.Nums(xs)           // plain ordered scalars
//	index.Default(n)         // the implicit integer index 1..n
//
// Bucketing requires a non-decreasing sequence. IsSorted is the
// diagnostic for that; nothing in this package reorders data.
package index
