package intensity

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCalculate(t *testing.T) {
	s := Calculate([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	require.Equal(t, 8, s.Length)
	require.Equal(t, 2.0, s.Min)
	require.Equal(t, 0, s.MinPos)
	require.Equal(t, 9.0, s.Max)
	require.Equal(t, 7, s.MaxPos)
	require.Equal(t, 7.0, s.Range)
	require.InDelta(t, 5, s.Mean, 1e-12)
	require.InDelta(t, 4, s.Variance, 1e-12)
	require.Equal(t, 40.0, s.Total)
	require.False(t, s.Flat())
}

func TestCalculateFirstExtremumWins(t *testing.T) {
	s := Calculate([]float64{1, 5, 0, 5, 0})
	require.Equal(t, 1, s.MaxPos)
	require.Equal(t, 2, s.MinPos)
}

func TestCalculateEmptyAndFlat(t *testing.T) {
	require.Equal(t, Stats{}, Calculate(nil))

	s := Calculate([]float64{3, 3, 3})
	require.True(t, s.Flat())
	require.Equal(t, 0.0, s.Variance)
}

func TestNormalize(t *testing.T) {
	got, err := Normalize([]float64{-2, 0, 2, 6})
	require.NoError(t, err)
	require.Equal(t, []float64{0, 0.25, 0.5, 1}, got)

	_, err = Normalize([]float64{1, 1})
	require.True(t, errors.Is(err, ErrNoDynamicRange))

	_, err = Normalize(nil)
	require.True(t, errors.Is(err, ErrEmptyInput))

	err = NormalizeTo(make([]float64, 1), []float64{1, 2})
	require.True(t, errors.Is(err, ErrLengthMismatch))
}

func TestPercentile(t *testing.T) {
	values := []float64{5, 1, 4, 2, 3}

	tests := []struct {
		p    float64
		want float64
	}{
		{p: 0, want: 1},
		{p: 25, want: 2},
		{p: 50, want: 3},
		{p: 62.5, want: 3.5},
		{p: 100, want: 5},
	}

	for _, tt := range tests {
		got, err := Percentile(values, tt.p)
		require.NoError(t, err)
		require.InDelta(t, tt.want, got, 1e-12, "p=%v", tt.p)
	}
	require.Equal(t, []float64{5, 1, 4, 2, 3}, values, "input must not be reordered")
}

func TestPercentileFifthOfSparseTrace(t *testing.T) {
	norm, err := Normalize([]float64{0, 0, 0, 5, 10, 5, 0, 0, 0, 0})
	require.NoError(t, err)

	got, err := Percentile(norm, 5)
	require.NoError(t, err)
	require.Equal(t, 0.0, got)
}

func TestPercentileErrors(t *testing.T) {
	_, err := Percentile(nil, 5)
	require.True(t, errors.Is(err, ErrEmptyInput))

	for _, p := range []float64{-0.1, 100.5, math.NaN()} {
		_, err = Percentile([]float64{1}, p)
		require.True(t, errors.Is(err, ErrInvalidPercentile), "p=%v", p)
	}
}

func TestPercentileSortedClamps(t *testing.T) {
	sorted := []float64{1, 2, 3}
	require.Equal(t, 1.0, PercentileSorted(sorted, -5))
	require.Equal(t, 3.0, PercentileSorted(sorted, 500))
	require.Equal(t, 0.0, PercentileSorted(nil, 50))
}
