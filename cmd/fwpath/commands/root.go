// SPDX-License-Identifier: MIT

// Package commands implements the fwpath command line interface.
package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/allpairs/core"
	"github.com/katalvlaran/allpairs/floydwarshall"
	"github.com/katalvlaran/allpairs/graphio"
)

// ErrUnknownRelaxer indicates a --relaxer value outside the supported set.
var ErrUnknownRelaxer = errors.New("fwpath: unknown relaxer")

// Relaxer names accepted by --relaxer.
const (
	RelaxerShortest = "shortest"
	RelaxerCritical = "critical"
)

// CLI represents the fwpath command tree.
type CLI struct {
	rootCmd *cobra.Command

	graphPath string
	relaxer   string
	timeout   time.Duration
	verbose   bool
}

// New creates the command tree.
func New() *CLI {
	c := &CLI{}
	rootCmd := &cobra.Command{
		Use:           "fwpath",
		Short:         "All-pairs shortest paths over a YAML or TOML graph file",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&c.graphPath, "graph", "g", "graph.yaml", "Path to the graph document (.yaml, .yml or .toml)")
	flags.StringVarP(&c.relaxer, "relaxer", "r", RelaxerShortest, "Cost algebra: shortest or critical")
	flags.DurationVar(&c.timeout, "timeout", 0, "Abort the computation after this long (0 disables)")
	flags.BoolVarP(&c.verbose, "verbose", "v", false, "Log engine state transitions")

	rootCmd.AddCommand(c.newPathCmd())
	rootCmd.AddCommand(c.newTableCmd())
	rootCmd.AddCommand(c.newDumpCmd())

	c.rootCmd = rootCmd

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)

	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput redirects command output and logs. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

// logger builds the diagnostics logger on the command's error stream.
func (c *CLI) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelInfo
	if c.verbose {
		level = slog.LevelDebug
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

// relaxerFor maps a --relaxer value to its relaxer.
func relaxerFor(name string) (floydwarshall.Relaxer[int64], error) {
	switch name {
	case RelaxerShortest:
		return floydwarshall.ShortestDistance[int64]{}, nil
	case RelaxerCritical:
		return floydwarshall.CriticalDistance[int64]{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (want %s or %s)", ErrUnknownRelaxer, name, RelaxerShortest, RelaxerCritical)
	}
}

// compute loads the graph and runs the engine under the configured timeout.
func (c *CLI) compute(cmd *cobra.Command) (*floydwarshall.Engine[string, core.Arc, int64], error) {
	log := c.logger(cmd)

	relaxer, err := relaxerFor(c.relaxer)
	if err != nil {
		return nil, err
	}
	g, err := graphio.Load(c.graphPath)
	if err != nil {
		return nil, err
	}
	log.Debug("graph loaded",
		"path", c.graphPath,
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
	)

	en, err := floydwarshall.New[string, core.Arc, int64](
		floydwarshall.FromCore(g),
		floydwarshall.ArcWeight,
		relaxer,
		floydwarshall.WithLogger(log),
	)
	if err != nil {
		return nil, err
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err = en.Compute(ctx); err != nil {
		return nil, fmt.Errorf("fwpath: %s: %w", c.graphPath, err)
	}

	return en, nil
}
