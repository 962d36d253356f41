package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/freshcart/gridkit/internal/config"
	"github.com/freshcart/gridkit/internal/logging"
	"github.com/freshcart/gridkit/pkg/errors"
	"github.com/freshcart/gridkit/pkg/fluidgrid"
)

type rootFlags struct {
	configPath string
	verbose    bool
	logFormat  string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gridkit",
		Short:         "gridkit lays out product grids that adapt to their container width",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Path to gridkit.yaml or gridkit.toml (default: search the working directory)")
	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVar(&flags.logFormat, "log-format", logging.FormatConsole, "Log format: console or json")

	cmd.AddCommand(newSolveCmd(flags))
	cmd.AddCommand(newPreviewCmd(flags))
	cmd.AddCommand(newWatchCmd(flags))
	cmd.AddCommand(newServeCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

// newLogger builds the command logger and routes reported errors through it.
func newLogger(cmd *cobra.Command, flags *rootFlags) (zerolog.Logger, error) {
	human, ok := logging.ParseFormat(flags.logFormat)
	if !ok {
		return zerolog.Nop(), fmt.Errorf("invalid --log-format %q: want console or json", flags.logFormat)
	}
	level := "info"
	if flags.verbose {
		level = "debug"
	}
	log, err := logging.New(logging.Options{Level: level, HumanReadable: human, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return zerolog.Nop(), err
	}
	errors.SetHandler(&errors.LogHandler{Verbose: flags.verbose, Logger: &log})
	return log, nil
}

// loadConfig resolves the configuration for the working directory.
func loadConfig(flags *rootFlags) (*config.Resolved, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return config.Resolve(wd, flags.configPath)
}

// gridFlags are the layout overrides shared by several commands.
type gridFlags struct {
	min float64
	max float64
	gap float64
}

func (g *gridFlags) register(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&g.min, "min", fluidgrid.DefaultMinItemWidth, "Minimum item width")
	cmd.Flags().Float64Var(&g.max, "max", fluidgrid.DefaultMaxItemWidth, "Maximum item width")
	cmd.Flags().Float64Var(&g.gap, "gap", fluidgrid.DefaultGap, "Gap between items")
}

// apply overrides cfg with the flags the user set and validates the result.
func (g *gridFlags) apply(cmd *cobra.Command, cfg fluidgrid.Config) (fluidgrid.Config, error) {
	if cmd.Flags().Changed("min") {
		cfg.MinItemWidth = g.min
	}
	if cmd.Flags().Changed("max") {
		cfg.MaxItemWidth = g.max
	}
	if cmd.Flags().Changed("gap") {
		cfg.Gap = g.gap
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
