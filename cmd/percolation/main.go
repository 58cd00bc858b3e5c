// Command percolation estimates bond-percolation probabilities on square
// lattices from the command line.
//
//	percolation run   --side 100 --p 0.7 --trials 1000
//	percolation sweep --sides 10,20,50 --p-min 0.1 --p-max 0.9 --p-step 0.01
//	percolation bench --side 100 --p 0.7 --trials 1000
//
// Every subcommand is a thin adapter over package percolation; flags are
// marshalled into sampler options and results are printed as tables.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		stop()
		os.Exit(1)
	}
}
