package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/dustin/go-humanize"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/percolation"
)

func newRunCmd(f *samplerFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Run independent trials at one (L, p) and summarize the percolation fraction",
		Args:  cobra.NoArgs,
	}
	lf := addLatticeFlags(cmd.Flags(), 100, 0.7, 1000)
	cmd.RunE = func(cmd *cobra.Command, _ []string) error {
		s, err := percolation.New(lf.side, lf.p, f.options(cmd)...)
		if err != nil {
			return err
		}
		vals, err := s.MonteCarloParallel(cmd.Context(), lf.trials)
		if err != nil {
			return err
		}
		sum, err := percolation.Summarize(vals)
		if err != nil {
			return errors.Wrap(err, "run")
		}
		renderSummary(cmd.OutOrStdout(), s, sum)
		return nil
	}
	return cmd
}

func renderSummary(w io.Writer, s *percolation.Sampler, sum percolation.Summary) {
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"L", "p", "boundary", "trials", "mean", "std", "min", "max"})
	table.Append([]string{
		strconv.Itoa(s.Side()),
		strconv.FormatFloat(s.Probability(), 'f', -1, 64),
		s.Lattice().Boundary.String(),
		humanize.Comma(int64(sum.N)),
		fmt.Sprintf("%.5f", sum.Mean),
		fmt.Sprintf("%.5f", sum.StdDev),
		fmt.Sprintf("%.5f", sum.Min),
		fmt.Sprintf("%.5f", sum.Max),
	})
	table.Render()
}
