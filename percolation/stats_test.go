package percolation_test

import (
	"context"
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/percolation/percolation"
)

// TestSummarize checks the moments of a small fixed sample.
func TestSummarize(t *testing.T) {
	sum, err := percolation.Summarize([]float64{0.2, 0.4, 0.6})
	require.NoError(t, err)

	assert.Equal(t, 3, sum.N)
	assert.InDelta(t, 0.4, sum.Mean, 1e-12)
	assert.InDelta(t, math.Sqrt(0.08/3), sum.StdDev, 1e-12)
	assert.Equal(t, 0.2, sum.Min)
	assert.Equal(t, 0.6, sum.Max)

	_, err = percolation.Summarize(nil)
	assert.ErrorIs(t, err, percolation.ErrNoSamples)
}

// TestProbabilityRange checks arange-style bounds.
func TestProbabilityRange(t *testing.T) {
	ps, err := percolation.ProbabilityRange(0.1, 0.9, 0.01)
	require.NoError(t, err)
	require.Len(t, ps, 80)
	assert.InDelta(t, 0.1, ps[0], 1e-12)
	assert.InDelta(t, 0.89, ps[79], 1e-12)

	ps, err = percolation.ProbabilityRange(0, 1, 0.25)
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 0.25, 0.5, 0.75}, ps)

	ps, err = percolation.ProbabilityRange(0.5, 0.5, 0.1)
	require.NoError(t, err)
	assert.Empty(t, ps)

	for _, bad := range [][3]float64{
		{0.1, 0.9, 0},
		{0.1, 0.9, -0.1},
		{-0.1, 0.9, 0.1},
		{0.1, 1.5, 0.1},
		{0.9, 0.1, 0.1},
		{0.1, 0.9, math.NaN()},
	} {
		_, err := percolation.ProbabilityRange(bad[0], bad[1], bad[2])
		assert.True(t, errors.Is(err, percolation.ErrInvalidRange), "range %v: got %v", bad, err)
	}
}

// TestCurve_Extremes pins the curve at p=0 and p=1 and checks it rises through
// the threshold region.
func TestCurve_Extremes(t *testing.T) {
	ctx := context.Background()
	points, err := percolation.Curve(ctx, 4, []float64{0, 1}, 3, percolation.WithSeed(5))
	require.NoError(t, err)
	require.Len(t, points, 2)

	assert.Equal(t, 0.0, points[0].P)
	assert.Equal(t, 1.0/16.0, points[0].Mean)
	assert.Equal(t, 0.0, points[0].StdDev)
	assert.Equal(t, 1.0, points[1].Mean)
	assert.Equal(t, 3, points[1].N)
}

// TestCurve_Monotone: with enough trials the mean rises from p=0.2 to p=0.8.
func TestCurve_Monotone(t *testing.T) {
	points, err := percolation.Curve(context.Background(), 20, []float64{0.2, 0.5, 0.8}, 30, percolation.WithSeed(8))
	require.NoError(t, err)
	assert.Less(t, points[0].Mean, points[1].Mean)
	assert.Less(t, points[1].Mean, points[2].Mean)
}

// TestCurve_Reproducible: same seed, same curve.
func TestCurve_Reproducible(t *testing.T) {
	ps := []float64{0.4, 0.6}
	a, err := percolation.Curve(context.Background(), 10, ps, 10, percolation.WithSeed(3))
	require.NoError(t, err)
	b, err := percolation.Curve(context.Background(), 10, ps, 10, percolation.WithSeed(3), percolation.WithWorkers(1))
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

// TestCurve_Errors wraps parameter errors with the failing point.
func TestCurve_Errors(t *testing.T) {
	_, err := percolation.Curve(context.Background(), 4, []float64{0.5}, 0)
	assert.True(t, errors.Is(err, percolation.ErrNoSamples), "got %v", err)

	_, err = percolation.Curve(context.Background(), 4, []float64{0.5, 1.5}, 2)
	assert.True(t, errors.Is(err, percolation.ErrInvalidProbability), "got %v", err)
}
