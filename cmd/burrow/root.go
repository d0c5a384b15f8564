package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/burrow/burrow"
	"github.com/katalvlaran/burrow/config"
)

// app carries the state shared by all subcommands.
type app struct {
	configPath string
	cfg        config.Config
	log        *slog.Logger

	// flag overrides, applied over the config file when set
	unfold    bool
	maxStates int
	workers   int
	logLevel  string
	logFormat string
	metrics   string
}

func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:          "burrow",
		Short:        "Minimum-cost sorting of amphipod burrows",
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}
	root.SetOut(os.Stdout)
	root.SetErr(os.Stderr)

	f := root.PersistentFlags()
	f.StringVarP(&a.configPath, "config", "c", "", "YAML config file")
	f.BoolVar(&a.unfold, "unfold", false, "insert the two extra room rows (four-room diagrams only)")
	f.IntVar(&a.maxStates, "max-states", 0, "cap on layouts held by one search (0 = none)")
	f.StringVar(&a.logLevel, "log-level", "", "debug, info, warn or error")
	f.StringVar(&a.logFormat, "log-format", "", "text or json")

	root.AddCommand(a.solveCmd(), a.censusCmd(), a.renderCmd())
	return root
}

// setup loads the config file, applies flag overrides and builds the logger.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	flags := cmd.Flags()
	if flags.Changed("unfold") {
		cfg.Unfold = a.unfold
	}
	if flags.Changed("max-states") {
		cfg.MaxStates = a.maxStates
	}
	if flags.Changed("workers") {
		cfg.Workers = a.workers
	}
	if flags.Changed("metrics-file") {
		cfg.MetricsFile = a.metrics
	}
	if a.logLevel != "" {
		cfg.Log.Level = a.logLevel
	}
	if a.logFormat != "" {
		cfg.Log.Format = a.logFormat
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := cfg.Log.NewLogger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.log = log
	return nil
}

// load parses one diagram file ("-" for stdin).
func (a *app) load(cmd *cobra.Command, path string) (burrow.Layout, error) {
	if path == "-" {
		return a.parse(cmd.InOrStdin(), path)
	}
	f, err := os.Open(path)
	if err != nil {
		return burrow.Layout{}, err
	}
	defer f.Close()
	return a.parse(f, path)
}

// parse reads one diagram from r; name labels errors.
func (a *app) parse(r io.Reader, name string) (burrow.Layout, error) {
	l, err := burrow.Parse(r, burrow.WithUnfold(a.cfg.Unfold))
	if err != nil {
		return burrow.Layout{}, fmt.Errorf("%s: %w", name, err)
	}
	return l, nil
}
