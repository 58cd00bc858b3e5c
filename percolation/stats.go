package percolation

import (
	"github.com/cockroachdb/errors"
	"github.com/montanaflynn/stats"
)

// Summarize computes the sample size, mean, population standard deviation,
// minimum and maximum of vals. Returns ErrNoSamples for an empty slice.
// Complexity: O(n).
func Summarize(vals []float64) (Summary, error) {
	if len(vals) == 0 {
		return Summary{}, ErrNoSamples
	}
	data := stats.Float64Data(vals)
	mean, err := stats.Mean(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "Summarize: mean")
	}
	std, err := stats.StandardDeviationPopulation(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "Summarize: standard deviation")
	}
	lo, err := stats.Min(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "Summarize: min")
	}
	hi, err := stats.Max(data)
	if err != nil {
		return Summary{}, errors.Wrap(err, "Summarize: max")
	}

	return Summary{N: len(vals), Mean: mean, StdDev: std, Min: lo, Max: hi}, nil
}
