package main

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/lvsieve/sieve"
	"github.com/spf13/cobra"
)

// app carries the resolved configuration from the root command to its
// subcommands. One app exists per command tree, so tests can build as many
// trees as they like.
type app struct {
	cfg        Config
	configPath string

	// flag targets; applied over cfg only when the flag was set.
	output      string
	logLevel    string
	maxModulus  int
	concurrency int

	log *slog.Logger
}

// newRootCmd assembles the command tree.
func newRootCmd() *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "sieve",
		Short: "Evaluate and compress periodic integer sieves",
		Long: `sieve works with Xenakis-style sieves: unions and intersections of
residue classes written as m@s (every m-th integer starting at s).

It evaluates formulas over integer ranges, compresses explicit point sets
or binary periods back into formulas, and processes whole files of them.`,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.configPath, "config", "", "YAML config file")
	pf.StringVarP(&a.output, "output", "o", "", "output format: text or json")
	pf.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")
	pf.IntVar(&a.maxModulus, "max-modulus", 0, "cap on trial moduli during compression (0 = window width)")

	root.AddCommand(
		a.newParseCmd(),
		a.newCompressCmd(),
		a.newBinaryCmd(),
		a.newBatchCmd(),
	)

	return root
}

// setup resolves config file, flag overrides and the logger.
func (a *app) setup(cmd *cobra.Command, _ []string) error {
	cfg := DefaultConfig()
	if a.configPath != "" {
		var err error
		if cfg, err = LoadConfig(a.configPath); err != nil {
			return err
		}
	}

	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Output = a.output
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("max-modulus") {
		cfg.MaxModulus = a.maxModulus
	}
	if flags.Changed("concurrency") {
		cfg.Concurrency = a.concurrency
	}
	if flags.Changed("recompress") {
		cfg.Recompress, _ = flags.GetBool("recompress")
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	a.cfg = cfg
	a.log = newLogger(cmd.ErrOrStderr(), cfg.LogLevel).With("command", cmd.Name())
	a.log.Debug("configuration resolved",
		"config_file", a.configPath,
		"output", cfg.Output,
		"max_modulus", cfg.MaxModulus,
		"concurrency", cfg.Concurrency)

	return nil
}

// sieveOptions translates config into library options.
func (a *app) sieveOptions() []sieve.Option {
	var opts []sieve.Option
	if a.cfg.MaxModulus > 0 {
		opts = append(opts, sieve.WithMaxModulus(a.cfg.MaxModulus))
	}
	if a.cfg.Recompress {
		opts = append(opts, sieve.WithRecompress())
	}

	return opts
}

// window holds the optional --min/--max/--shift flags of a query command.
type window struct {
	min, max, shift int
}

func (w *window) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.IntVar(&w.min, "min", 0, "lower bound of the query range (inclusive)")
	f.IntVar(&w.max, "max", 0, "upper bound of the query range (inclusive)")
	f.IntVar(&w.shift, "shift", 0, "offset added to every segment point")
}

// bounded reports whether both --min and --max were given.
func (w *window) bounded(cmd *cobra.Command) bool {
	return cmd.Flags().Changed("min") && cmd.Flags().Changed("max")
}

// resolve returns the query bounds, falling back to lo/hi for unset flags.
func (w *window) resolve(cmd *cobra.Command, lo, hi int) (int, int, error) {
	if cmd.Flags().Changed("min") {
		lo = w.min
	}
	if cmd.Flags().Changed("max") {
		hi = w.max
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("empty range: --min %d > --max %d", lo, hi)
	}

	return lo, hi, nil
}
