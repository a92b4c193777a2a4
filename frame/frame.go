// Package frame provides the indexed tabular container for time series.
package frame

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/sartorproj/gotsframe/endpoints"
	"github.com/sartorproj/gotsframe/index"
	"github.com/sartorproj/gotsframe/period"
)

// IndexName is the reserved name of the index column.
const IndexName = "Index"

// Errors reported by frame construction and column operations.
var (
	// ErrLengthMismatch is returned when a column disagrees with the
	// index length.
	ErrLengthMismatch = errors.New("index and column lengths differ")

	// ErrUnsorted is returned for a non-decreasing check failure at
	// construction. The frame never reorders rows: silent sorting
	// would change the row-to-observation correspondence.
	ErrUnsorted = errors.New("index must be non-decreasing")

	// ErrReservedName is returned when a column operation touches the
	// reserved index column name.
	ErrReservedName = errors.New(`"Index" is reserved for the index column`)

	// ErrUnknownColumn is returned for a column name the frame does
	// not hold.
	ErrUnknownColumn = errors.New("unknown column")

	// ErrDuplicateName is returned when two columns would share a name.
	ErrDuplicateName = errors.New("duplicate column name")
)

// Frame is a table whose first column is an ordered index and whose
// remaining columns are float64 observations. Transforming methods
// return new frames and leave the receiver untouched.
type Frame struct {
	ix    *index.Index
	names []string
	cols  [][]float64
}

// New builds a frame over an explicit index. Every column must match
// the index length, names must be unique and must not use the
// reserved index name, and the index must be non-decreasing.
func New(ix *index.Index, names []string, cols [][]float64) (*Frame, error) {
	if len(names) != len(cols) {
		return nil, fmt.Errorf("%d names for %d columns: %w", len(names), len(cols), ErrLengthMismatch)
	}
	seen := make(map[string]bool, len(names))
	for i, name := range names {
		if name == IndexName {
			return nil, ErrReservedName
		}
		if seen[name] {
			return nil, fmt.Errorf("%q: %w", name, ErrDuplicateName)
		}
		seen[name] = true
		if len(cols[i]) != ix.Len() {
			return nil, fmt.Errorf("column %q has %d rows, index has %d: %w",
				name, len(cols[i]), ix.Len(), ErrLengthMismatch)
		}
	}
	if !ix.IsSorted() {
		return nil, ErrUnsorted
	}
	f := &Frame{ix: ix, names: append([]string(nil), names...)}
	f.cols = make([][]float64, len(cols))
	for i, col := range cols {
		f.cols[i] = append([]float64(nil), col...)
	}
	return f, nil
}

// FromValues builds a single-column frame over the implicit integer
// index 1..n.
func FromValues(name string, values []float64) (*Frame, error) {
	return New(index.Default(len(values)), []string{name}, [][]float64{values})
}

// Index returns the frame's index sequence.
func (f *Frame) Index() *index.Index {
	return f.ix
}

// NRows returns the number of observation rows.
func (f *Frame) NRows() int {
	return f.ix.Len()
}

// NCols returns the number of observation columns, excluding the index.
func (f *Frame) NCols() int {
	return len(f.cols)
}

// Names returns the observation column names in order.
func (f *Frame) Names() []string {
	return append([]string(nil), f.names...)
}

// Column returns a copy of the named column's values.
func (f *Frame) Column(name string) ([]float64, error) {
	i, err := f.pos(name)
	if err != nil {
		return nil, err
	}
	return append([]float64(nil), f.cols[i]...), nil
}

// ColumnAt returns a copy of the i-th observation column (0-based).
func (f *Frame) ColumnAt(i int) ([]float64, error) {
	if i < 0 || i >= len(f.cols) {
		return nil, fmt.Errorf("position %d of %d: %w", i, len(f.cols), ErrUnknownColumn)
	}
	return append([]float64(nil), f.cols[i]...), nil
}

// Select returns a new frame holding only the named columns, index
// included.
func (f *Frame) Select(names ...string) (*Frame, error) {
	cols := make([][]float64, len(names))
	for i, name := range names {
		p, err := f.pos(name)
		if err != nil {
			return nil, err
		}
		cols[i] = f.cols[p]
	}
	return New(f.ix, names, cols)
}

// Slice returns the rows in [start, end) as a new frame. Bounds are
// clamped to the frame. Endpoint positions are 1-based, so a pair of
// consecutive endpoint values delimits one bucket: Slice(prev, ep).
func (f *Frame) Slice(start, end int) *Frame {
	n := f.NRows()
	if start < 0 {
		start = 0
	}
	if end > n {
		end = n
	}
	if start >= end {
		start, end = 0, 0
	}
	out := &Frame{
		ix:    f.ix.Slice(start, end),
		names: append([]string(nil), f.names...),
		cols:  make([][]float64, len(f.cols)),
	}
	for i, col := range f.cols {
		out.cols[i] = append([]float64(nil), col[start:end]...)
	}
	return out
}

// Head returns the first n rows.
func (f *Frame) Head(n int) *Frame {
	return f.Slice(0, n)
}

// Tail returns the last n rows.
func (f *Frame) Tail(n int) *Frame {
	if n > f.NRows() {
		n = f.NRows()
	}
	return f.Slice(f.NRows()-n, f.NRows())
}

// Rename changes a column name in place. The reserved index name is
// rejected on both sides.
func (f *Frame) Rename(old, new string) error {
	if old == IndexName || new == IndexName {
		return ErrReservedName
	}
	for _, name := range f.names {
		if name == new {
			return fmt.Errorf("%q: %w", new, ErrDuplicateName)
		}
	}
	i, err := f.pos(old)
	if err != nil {
		return err
	}
	f.names[i] = new
	return nil
}

// Apply broadcasts a unary function over every observation column,
// returning a new frame whose columns are named <col>_<name> and
// whose index is unchanged.
func (f *Frame) Apply(name string, fn func(float64) float64) *Frame {
	out := &Frame{
		ix:    f.ix,
		names: make([]string, len(f.names)),
		cols:  make([][]float64, len(f.cols)),
	}
	for i, col := range f.cols {
		out.names[i] = f.names[i] + "_" + name
		mapped := make([]float64, len(col))
		for j, v := range col {
			mapped[j] = fn(v)
		}
		out.cols[i] = mapped
	}
	return out
}

// Endpoints returns the 1-based last row of every u.N-th period
// bucket of the frame's index. See endpoints.ByPeriod.
func (f *Frame) Endpoints(u period.Unit) ([]int, error) {
	return endpoints.ByPeriod(f.ix, u)
}

// EndpointsEvery is the frequency-name form: every k-th bucket of the
// named unit. See endpoints.ByFrequency.
func (f *Frame) EndpointsEvery(name string, k int) ([]int, error) {
	return endpoints.ByFrequency(f.ix, name, k)
}

// EndpointsFunc buckets the frame's rows by an arbitrary classifier.
// See endpoints.ByFunc.
func (f *Frame) EndpointsFunc(fn endpoints.KeyFunc, k int) ([]int, error) {
	return endpoints.ByFunc(f.ix, fn, k)
}

// String renders the frame as an ASCII table, truncated past
// maxPrintRows rows.
func (f *Frame) String() string {
	const maxPrintRows = 10

	var b strings.Builder
	tw := tablewriter.NewWriter(&b)
	tw.SetHeader(append([]string{IndexName}, f.names...))
	// Column names render verbatim; auto-uppercasing would collapse
	// distinct names like "Price" and "price".
	tw.SetAutoFormatHeaders(false)

	n := f.NRows()
	shown := n
	if shown > maxPrintRows {
		shown = maxPrintRows
	}
	for i := 0; i < shown; i++ {
		row := make([]string, 0, len(f.cols)+1)
		row = append(row, f.ix.Format(i))
		for _, col := range f.cols {
			row = append(row, strconv.FormatFloat(col[i], 'g', -1, 64))
		}
		tw.Append(row)
	}
	tw.Render()
	fmt.Fprintf(&b, "%d x %d %s index\n", n, len(f.cols), f.ix.Kind())
	return b.String()
}

// pos returns the slot of a named column.
func (f *Frame) pos(name string) (int, error) {
	for i, n := range f.names {
		if n == name {
			return i, nil
		}
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownColumn)
}
