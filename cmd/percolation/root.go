package main

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/katalvlaran/percolation/gridgraph"
	"github.com/katalvlaran/percolation/percolation"
	"github.com/katalvlaran/percolation/unionfind"
)

// samplerFlags holds the persistent flags shared by every subcommand.
type samplerFlags struct {
	seed        int64
	workers     int
	periodic    bool
	mergeBySize bool
	verbose     bool
}

func newRootCmd() *cobra.Command {
	f := &samplerFlags{}
	root := &cobra.Command{
		Use:           "percolation",
		Short:         "Monte Carlo estimates of bond percolation on square lattices",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	pf := root.PersistentFlags()
	pf.Int64Var(&f.seed, "seed", 0, "random seed (default: derived from the current time)")
	pf.IntVar(&f.workers, "workers", 0, "parallel trials (default: GOMAXPROCS)")
	pf.BoolVar(&f.periodic, "periodic", false, "add the wraparound bonds of the torus to every sweep")
	pf.BoolVar(&f.mergeBySize, "merge-by-size", false, "merge union-find components by size instead of by index")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "log run progress to stderr")

	root.AddCommand(
		newRunCmd(f),
		newSweepCmd(f),
		newBenchCmd(f),
	)
	return root
}

// latticeFlags holds the per-subcommand lattice parameters.
type latticeFlags struct {
	side   int
	p      float64
	trials int
}

// addLatticeFlags registers --side, --p and --trials with the given defaults
// and returns the struct they are bound to.
func addLatticeFlags(fs *pflag.FlagSet, side int, p float64, trials int) *latticeFlags {
	lf := &latticeFlags{}
	fs.IntVar(&lf.side, "side", side, "lattice edge length L")
	fs.Float64Var(&lf.p, "p", p, "bond activation probability in [0,1]")
	fs.IntVar(&lf.trials, "trials", trials, "number of independent trials")
	return lf
}

// options converts the shared flags into sampler options.
func (f *samplerFlags) options(cmd *cobra.Command) []percolation.Option {
	seed := f.seed
	if !cmd.Flags().Changed("seed") {
		seed = time.Now().UnixNano()
	}
	opts := []percolation.Option{
		percolation.WithSeed(seed),
		percolation.WithLogger(f.logger(cmd)),
	}
	if f.workers > 0 {
		opts = append(opts, percolation.WithWorkers(f.workers))
	}
	if f.periodic {
		opts = append(opts, percolation.WithBoundary(gridgraph.Periodic))
	}
	if f.mergeBySize {
		opts = append(opts, percolation.WithMergePolicy(unionfind.MergeBySize))
	}
	return opts
}

func (f *samplerFlags) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if f.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}
