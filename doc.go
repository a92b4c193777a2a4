// Package gotsframe provides a time-series-aware tabular data type.
//
// GoTSFrame is a Go package for spreadsheet-style time-series
// manipulation: a frame whose first column is a monotonic index
// (dates, timestamps, clock offsets, or plain integers) and whose
// remaining columns are observations, with guarantees about index
// ordering. Its core is the period end-point engine, which resolves
// the row positions that close each calendar or fixed-duration bucket.
//
// # Quick Start
//
// Build a frame and find the last row of every month:
//
//	f, _ := frame.New(index.Dates(dates), []string{"price"}, [][]float64{prices})
//	eps, _ := f.Endpoints(period.Months(1))
//	for _, ep := range eps {
//	    last := f.Slice(ep-1, ep) // closing row of one bucket
//	}
//
// Summarize and transform:
//
//	summary, _ := f.Describe(nil)
//	logs := f.Apply("log", math.Log)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - period: period unit tags, multipliers, and frequency-name parsing
//   - index: the kinded, ordered index sequence
//   - endpoints: the period end-point resolution engine
//   - frame: the indexed tabular container with selection, renaming,
//     broadcasting, and summary statistics
package gotsframe
