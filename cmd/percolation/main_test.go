package main

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root := newRootCmd()
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

// TestRun_PZero: with p=0 every trial measures 1/9 on a 3×3 lattice.
func TestRun_PZero(t *testing.T) {
	out, err := execute(t, "run", "--side", "3", "--p", "0", "--trials", "4", "--seed", "1")
	require.NoError(t, err)
	assert.Contains(t, out, "0.11111")
	assert.Contains(t, out, "open")
	assert.Contains(t, strings.ToUpper(out), "MEAN")
}

// TestRun_Periodic reports the boundary in the summary row.
func TestRun_Periodic(t *testing.T) {
	out, err := execute(t, "run", "--side", "4", "--p", "1", "--trials", "2", "--periodic", "--merge-by-size")
	require.NoError(t, err)
	assert.Contains(t, out, "periodic")
	assert.Contains(t, out, "1.00000")
}

// TestRun_InvalidProbability surfaces validation errors.
func TestRun_InvalidProbability(t *testing.T) {
	_, err := execute(t, "run", "--side", "3", "--p", "1.5")
	assert.ErrorContains(t, err, "activation probability")
}

// TestSweep_Table prints one row per p and one column per side.
func TestSweep_Table(t *testing.T) {
	out, err := execute(t, "sweep", "--sides", "3,4", "--p-min", "0", "--p-max", "1", "--p-step", "0.5",
		"--trials", "2", "--seed", "3", "--no-plot")
	require.NoError(t, err)
	assert.Contains(t, out, "L=3")
	assert.Contains(t, out, "L=4")
	assert.Contains(t, out, "0.500")
	assert.Contains(t, out, "0.1111 ± 0.0000")
	assert.Contains(t, out, "0.0625 ± 0.0000")
}

// TestSweep_Plot appends the ASCII plot caption.
func TestSweep_Plot(t *testing.T) {
	out, err := execute(t, "sweep", "--sides", "3", "--p-min", "0.2", "--p-max", "0.8", "--p-step", "0.2",
		"--trials", "2", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, out, "percolation probability vs p, series L = 3")
}

// TestBench compares both modes.
func TestBench(t *testing.T) {
	out, err := execute(t, "bench", "--side", "5", "--p", "0.5", "--trials", "3", "--workers", "2")
	require.NoError(t, err)
	assert.Contains(t, out, "sequential")
	assert.Contains(t, out, "parallel")
}

// TestLatticeFlags_PerCommand: a value parsed for one subcommand leaves the
// other subcommands' flags at their own defaults.
func TestLatticeFlags_PerCommand(t *testing.T) {
	root := newRootCmd()
	sweep, _, err := root.Find([]string{"sweep"})
	require.NoError(t, err)
	require.NoError(t, sweep.Flags().Parse([]string{"--trials", "7"}))
	assert.Equal(t, "7", sweep.Flags().Lookup("trials").Value.String())

	for _, name := range []string{"run", "bench"} {
		cmd, _, err := root.Find([]string{name})
		require.NoError(t, err)
		assert.Equal(t, "1000", cmd.Flags().Lookup("trials").Value.String(), name)
		assert.Equal(t, "100", cmd.Flags().Lookup("side").Value.String(), name)
	}

	run, _, err := root.Find([]string{"run"})
	require.NoError(t, err)
	require.NoError(t, run.Flags().Parse([]string{"--side", "9"}))
	bench, _, err := root.Find([]string{"bench"})
	require.NoError(t, err)
	assert.Equal(t, "100", bench.Flags().Lookup("side").Value.String())
}
