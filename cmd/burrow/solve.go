package main

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/solver"
)

func (a *app) solveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "solve [file...]",
		Short: "Print the minimum sorting cost of each diagram",
		Long: `Solve reads one burrow diagram per file ("-" or no argument for stdin)
and prints "<file>: <cost>" or "<file>: no solution" per input, in argument order.
Inputs are solved concurrently, up to --workers at a time.`,
		RunE: a.runSolve,
	}
	cmd.Flags().IntVarP(&a.workers, "workers", "w", 1, "inputs solved concurrently")
	cmd.Flags().StringVar(&a.metrics, "metrics-file", "", "write Prometheus metrics to this file on exit")
	return cmd
}

func (a *app) runSolve(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		args = []string{"-"}
	}

	// stdin is read once and shared by every "-" argument
	var stdin []byte
	if slices.Contains(args, "-") {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return fmt.Errorf("read stdin: %w", err)
		}
		stdin = data
	}

	results := make([]solver.Result, len(args))
	g, ctx := errgroup.WithContext(cmd.Context())
	g.SetLimit(a.cfg.Workers)
	for i, path := range args {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			var (
				l   burrow.Layout
				err error
			)
			if path == "-" {
				l, err = a.parse(bytes.NewReader(stdin), path)
			} else {
				l, err = a.load(cmd, path)
			}
			if err != nil {
				return err
			}
			res, err := solver.Solve(l,
				solver.WithLogger(a.log.With(slog.String("input", path))),
				solver.WithMaxStates(a.cfg.MaxStates),
				solver.WithProgressEvery(a.cfg.ProgressEvery),
			)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = res
			return nil
		})
	}
	err := g.Wait()
	if mErr := a.writeMetrics(); mErr != nil && err == nil {
		err = mErr
	}
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for i, res := range results {
		if res.Solved {
			fmt.Fprintf(out, "%s: %d\n", args[i], res.Cost)
		} else {
			fmt.Fprintf(out, "%s: no solution\n", args[i])
		}
	}
	return nil
}

// writeMetrics dumps the default registry when a metrics file is configured.
func (a *app) writeMetrics() error {
	if a.cfg.MetricsFile == "" {
		return nil
	}
	if err := prometheus.WriteToTextfile(a.cfg.MetricsFile, prometheus.DefaultGatherer); err != nil {
		return fmt.Errorf("write metrics: %w", err)
	}
	return nil
}
