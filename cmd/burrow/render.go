package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *app) renderCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "render [file]",
		Short: "Print a diagram as parsed, with its geometry",
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
			g := l.Geometry()
			out := cmd.OutOrStdout()
			fmt.Fprint(out, l.String())
			fmt.Fprintf(out, "corridor: %d  rooms: %d  depth: %d  hash: %016x\n",
				g.CorridorLen(), g.Rooms(), g.Depth(), l.Hash())
			return nil
		},
	}
}
