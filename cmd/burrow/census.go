package main

import (
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/burrow/solver"
)

func (a *app) censusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "census [file]",
		Short: "Count the layouts reachable from a diagram",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "-"
			if len(args) == 1 {
				path = args[0]
			}
			l, err := a.load(cmd, path)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			res, err := solver.Census(ctx, l,
				solver.WithLogger(a.log),
				solver.WithMaxStates(a.cfg.MaxStates),
			)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "layouts: %d\ngoals: %d\nmax moves: %d\n",
				res.Layouts, res.Goals, res.MaxMoves)
			return nil
		},
	}
}
