package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/cockroachdb/errors"
	"github.com/guptarohit/asciigraph"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/percolation/percolation"
)

type sweepFlags struct {
	sides  []int
	trials int
	pMin   float64
	pMax   float64
	pStep  float64
	noPlot bool
}

func newSweepCmd(f *samplerFlags) *cobra.Command {
	sf := &sweepFlags{}
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Estimate mean and std of the percolation fraction over a range of p for several L",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ps, err := percolation.ProbabilityRange(sf.pMin, sf.pMax, sf.pStep)
			if err != nil {
				return err
			}
			if len(ps) == 0 {
				return errors.New("sweep: empty probability range")
			}
			curves := make([][]percolation.Point, 0, len(sf.sides))
			for _, side := range sf.sides {
				points, err := percolation.Curve(cmd.Context(), side, ps, sf.trials, f.options(cmd)...)
				if err != nil {
					return errors.Wrapf(err, "sweep: L=%d", side)
				}
				curves = append(curves, points)
			}
			renderCurves(cmd.OutOrStdout(), sf.sides, ps, curves)
			if !sf.noPlot {
				fmt.Fprintln(cmd.OutOrStdout(), plotCurves(sf.sides, curves))
			}
			return nil
		},
	}
	fs := cmd.Flags()
	fs.IntVar(&sf.trials, "trials", 1000, "trials per (L, p) point")
	fs.IntSliceVar(&sf.sides, "sides", []int{10, 20, 50, 100}, "lattice edge lengths to sweep")
	fs.Float64Var(&sf.pMin, "p-min", 0.1, "first probability (inclusive)")
	fs.Float64Var(&sf.pMax, "p-max", 0.9, "last probability (exclusive)")
	fs.Float64Var(&sf.pStep, "p-step", 0.01, "probability step")
	fs.BoolVar(&sf.noPlot, "no-plot", false, "skip the ASCII plot")
	return cmd
}

// renderCurves prints one row per p with a "mean ± std" column per side.
func renderCurves(w io.Writer, sides []int, ps []float64, curves [][]percolation.Point) {
	header := []string{"p"}
	for _, side := range sides {
		header = append(header, "L="+strconv.Itoa(side))
	}
	table := tablewriter.NewWriter(w)
	table.SetHeader(header)
	for k, p := range ps {
		row := []string{fmt.Sprintf("%.3f", p)}
		for _, points := range curves {
			row = append(row, fmt.Sprintf("%.4f ± %.4f", points[k].Mean, points[k].StdDev))
		}
		table.Append(row)
	}
	table.Render()
}

// plotCurves draws mean fraction against p, one series per side.
func plotCurves(sides []int, curves [][]percolation.Point) string {
	series := make([][]float64, len(curves))
	for i, points := range curves {
		series[i] = make([]float64, len(points))
		for k, pt := range points {
			series[i][k] = pt.Mean
		}
	}
	caption := "percolation probability vs p, series L ="
	for _, side := range sides {
		caption += " " + strconv.Itoa(side)
	}
	return asciigraph.PlotMany(series,
		asciigraph.Height(15),
		asciigraph.Precision(2),
		asciigraph.Caption(caption))
}
