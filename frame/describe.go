package frame

import (
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// Stat is a named statistic request for Describe. Fn receives the
// column's non-missing values in ascending order, so quantile-style
// statistics need no extra sorting.
type Stat struct {
	Name string
	Fn   func(xs []float64) float64
}

// Ready-made statistic requests. Describe defaults to Mean, Min,
// Median, and Max.
var (
	Mean = Stat{"mean", func(xs []float64) float64 { return stat.Mean(xs, nil) }}
	Min  = Stat{"min", floats.Min}
	Median = Stat{"median", func(xs []float64) float64 {
		return stat.Quantile(0.5, stat.Empirical, xs, nil)
	}}
	Max = Stat{"max", floats.Max}
	Std = Stat{"std", func(xs []float64) float64 { return stat.StdDev(xs, nil) }}
)

// Summary holds per-column aggregates produced by Describe. Rows are
// the requested statistics plus a missing count and the column type.
type Summary struct {
	Columns []string
	Stats   []string
	Values  [][]float64 // Values[stat][column]
	Missing []int       // NaN observations per column
	Types   []string
}

// Describe computes per-column aggregates. cols filters which columns
// are summarized (nil means all); stats replaces the default
// mean/min/median/max set. NaN observations count as missing and are
// excluded from every aggregate; a column with no remaining values
// reports NaN.
func (f *Frame) Describe(cols []string, stats ...Stat) (*Summary, error) {
	if cols == nil {
		cols = f.names
	}
	if len(stats) == 0 {
		stats = []Stat{Mean, Min, Median, Max}
	}

	s := &Summary{
		Columns: append([]string(nil), cols...),
		Stats:   make([]string, len(stats)),
		Values:  make([][]float64, len(stats)),
		Missing: make([]int, len(cols)),
		Types:   make([]string, len(cols)),
	}
	for i, st := range stats {
		s.Stats[i] = st.Name
		s.Values[i] = make([]float64, len(cols))
	}

	for j, name := range cols {
		p, err := f.pos(name)
		if err != nil {
			return nil, err
		}
		clean := make([]float64, 0, len(f.cols[p]))
		for _, v := range f.cols[p] {
			if math.IsNaN(v) {
				s.Missing[j]++
				continue
			}
			clean = append(clean, v)
		}
		sort.Float64s(clean)
		s.Types[j] = "float64"
		for i, st := range stats {
			if len(clean) == 0 {
				s.Values[i][j] = math.NaN()
				continue
			}
			s.Values[i][j] = st.Fn(clean)
		}
	}
	return s, nil
}

// String renders the summary as an ASCII table with one row per
// statistic.
func (s *Summary) String() string {
	var b strings.Builder
	tw := tablewriter.NewWriter(&b)
	tw.SetHeader(append([]string{"stat"}, s.Columns...))
	tw.SetAutoFormatHeaders(false)
	for i, name := range s.Stats {
		row := make([]string, 0, len(s.Columns)+1)
		row = append(row, name)
		for j := range s.Columns {
			row = append(row, strconv.FormatFloat(s.Values[i][j], 'g', 6, 64))
		}
		tw.Append(row)
	}
	missing := []string{"missing"}
	types := []string{"type"}
	for j := range s.Columns {
		missing = append(missing, strconv.Itoa(s.Missing[j]))
		types = append(types, s.Types[j])
	}
	tw.Append(missing)
	tw.Append(types)
	tw.Render()
	return b.String()
}
