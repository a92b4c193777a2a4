package frame

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/sartorproj/gotsframe/index"
)

func TestDescribeDefaults(t *testing.T) {
	f, err := New(index.Default(5),
		[]string{"a", "b"},
		[][]float64{
			{1, 2, 3, 4, 5},
			{10, math.NaN(), 30, math.NaN(), 50},
		})
	require.NoError(t, err)

	s, err := f.Describe(nil)
	require.NoError(t, err)

	require.Equal(t, []string{"a", "b"}, s.Columns)
	require.Equal(t, []string{"mean", "min", "median", "max"}, s.Stats)
	require.Equal(t, []int{0, 2}, s.Missing)
	require.Equal(t, []string{"float64", "float64"}, s.Types)

	require.InDelta(t, 3.0, s.Values[0][0], 1e-12)  // mean a
	require.InDelta(t, 1.0, s.Values[1][0], 1e-12)  // min a
	require.InDelta(t, 3.0, s.Values[2][0], 1e-12)  // median a
	require.InDelta(t, 5.0, s.Values[3][0], 1e-12)  // max a
	require.InDelta(t, 30.0, s.Values[0][1], 1e-12) // mean b, NaNs excluded
	require.InDelta(t, 30.0, s.Values[2][1], 1e-12) // median b
	require.InDelta(t, 50.0, s.Values[3][1], 1e-12) // max b
}

func TestDescribeColumnFilter(t *testing.T) {
	f, err := New(index.Default(3),
		[]string{"a", "b"},
		[][]float64{{1, 2, 3}, {4, 5, 6}})
	require.NoError(t, err)

	s, err := f.Describe([]string{"b"})
	require.NoError(t, err)
	require.Equal(t, []string{"b"}, s.Columns)
	require.InDelta(t, 5.0, s.Values[0][0], 1e-12)

	_, err = f.Describe([]string{"missing"})
	require.ErrorIs(t, err, ErrUnknownColumn)
}

func TestDescribeCustomStats(t *testing.T) {
	f, err := FromValues("y", []float64{2, 4, 4, 4, 5, 5, 7, 9})
	require.NoError(t, err)

	s, err := f.Describe(nil, Mean, Std)
	require.NoError(t, err)
	require.Equal(t, []string{"mean", "std"}, s.Stats)
	require.InDelta(t, 5.0, s.Values[0][0], 1e-12)
	require.InDelta(t, math.Sqrt(4.571428571428571), s.Values[1][0], 1e-12)
}

func TestDescribeAllMissing(t *testing.T) {
	f, err := FromValues("y", []float64{math.NaN(), math.NaN()})
	require.NoError(t, err)

	s, err := f.Describe(nil)
	require.NoError(t, err)
	require.Equal(t, []int{2}, s.Missing)
	for i := range s.Stats {
		require.True(t, math.IsNaN(s.Values[i][0]), s.Stats[i])
	}
}

func TestDescribeEmptyFrame(t *testing.T) {
	f, err := FromValues("y", nil)
	require.NoError(t, err)

	s, err := f.Describe(nil)
	require.NoError(t, err)
	require.Equal(t, []int{0}, s.Missing)
	require.True(t, math.IsNaN(s.Values[0][0]))
}

func TestSummaryString(t *testing.T) {
	f, err := FromValues("y", []float64{1, 2, 3})
	require.NoError(t, err)

	s, err := f.Describe(nil)
	require.NoError(t, err)
	out := s.String()
	require.Contains(t, out, "stat")
	require.NotContains(t, out, "STAT")
	require.Contains(t, out, "mean")
	require.Contains(t, out, "missing")
	require.Contains(t, out, "float64")
	require.Contains(t, out, "y")
}
