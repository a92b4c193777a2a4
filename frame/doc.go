// Package frame provides an index-first tabular container for time
// series: the first column is an ordered index (dates, timestamps,
// clock offsets, or plain integers) and the remaining columns are
// float64 observations.
//
// # Construction
//
// Build a frame over an explicit index, or let FromValues generate
// the implicit integer index 1..n:
//
//	ix := index.Dates(dates)
//	f, err := frame.New(ix, []string{"price", "volume"}, [][]float64{prices, volumes})
//
//	f, err := frame.FromValues("y", values)
//
// Construction rejects columns that disagree with the index length,
// duplicate or reserved column names, and a non-decreasing check
// failure on the index. Rows are never reordered on the caller's
// behalf.
//
// # Selection and transformation
//
//	f.Head(5)
//	f.Tail(5)
//	f.Slice(30, 58)                 // rows of one bucket
//	sub, _ := f.Select("price")
//	err := f.Rename("price", "close")
//	logs := f.Apply("log", math.Log) // columns price_log, volume_log
//
// # Summary statistics
//
// Describe aggregates each column, defaulting to mean, min, median,
// and max plus a missing count and the column type:
//
//	s, _ := f.Describe(nil)
//	s, _ = f.Describe([]string{"price"}, frame.Mean, frame.Std)
//	fmt.Println(s)
//
// # Period endpoints
//
// The endpoints engine runs against the frame's index; returned
// positions index the frame's rows 1:1:
//
//	eps, err := f.Endpoints(period.Months(1))
//	eps, err = f.EndpointsEvery("weeks", 2)
//	eps, err = f.EndpointsFunc(byWeekday, 1)
package frame
