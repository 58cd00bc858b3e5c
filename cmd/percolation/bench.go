package main

import (
	"fmt"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/percolation"
)

func newBenchCmd(f *samplerFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time sequential against parallel Monte Carlo for one (L, p)",
		Args:  cobra.NoArgs,
	}
	lf := addLatticeFlags(cmd.Flags(), 100, 0.7, 1000)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		s, err := percolation.New(lf.side, lf.p, f.options(cmd)...)
		if err != nil {
			return err
		}

		start := time.Now()
		serial := s.MonteCarlo(lf.trials)
		serialTook := time.Since(start)

		start = time.Now()
		parallel, err := s.MonteCarloParallel(cmd.Context(), lf.trials)
		if err != nil {
			return err
		}
		parallelTook := time.Since(start)

		table := tablewriter.NewWriter(cmd.OutOrStdout())
		table.SetHeader([]string{"mode", "trials", "mean", "std", "elapsed", "trials/s"})
		for _, r := range []struct {
			mode string
			vals []float64
			took time.Duration
		}{
			{"sequential", serial, serialTook},
			{"parallel", parallel, parallelTook},
		} {
			sum, err := percolation.Summarize(r.vals)
			if err != nil {
				return err
			}
			var rate float64
			if r.took > 0 {
				rate = float64(sum.N) / r.took.Seconds()
			}
			table.Append([]string{
				r.mode,
				humanize.Comma(int64(sum.N)),
				fmt.Sprintf("%.5f", sum.Mean),
				fmt.Sprintf("%.5f", sum.StdDev),
				r.took.Round(time.Microsecond).String(),
				humanize.Comma(int64(rate)),
			})
		}
		table.Render()
		return nil
	}
	return cmd
}
