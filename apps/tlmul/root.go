//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"io"

	"github.com/markkurossi/twolevel/config"
	"github.com/markkurossi/twolevel/logging"
	"github.com/markkurossi/twolevel/multiplier"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// app holds the state shared by all commands.
type app struct {
	v          *viper.Viper
	configFile string
	cfg        *config.Config
	out        io.Writer
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{
		v:   config.New(),
		out: out,
	}

	cmd := &cobra.Command{
		Use:   "tlmul [multiplier] [multiplicand]",
		Short: "Two-level multiplier emulator",
		Long: `tlmul multiplies the operands with the two-level multiplier,
first as unsigned integers and then as signed-magnitude integers,
and prints the iteration trace of both passes. Missing or empty
operands are replaced with the default operands.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.multiply(cmd.Context(), args)
		},
	}
	cmd.SetOut(out)

	pflags := cmd.PersistentFlags()
	pflags.StringVar(&a.configFile, "config", "", "configuration file")
	pflags.String("log-level", "warn", "log level")
	pflags.String("log-file", "", "log file")
	pflags.Bool("log-json", false, "log in JSON format")
	pflags.Bool("twolevel", false,
		"use the two-level encoder, shifter, and decoder")
	pflags.Bool("netlist", false,
		"accumulate with the gate-level ripple-carry adder")
	pflags.String("style", "unicode", "table style: plain, ascii, unicode")
	a.bind(pflags, "log.level", "log-level")
	a.bind(pflags, "log.file", "log-file")
	a.bind(pflags, "log.json", "log-json")
	a.bind(pflags, "twolevel", "twolevel")
	a.bind(pflags, "netlist", "netlist")
	a.bind(pflags, "trace.style", "style")

	flags := cmd.Flags()
	flags.String("format", "text", "trace format: text, table")
	a.bind(flags, "trace.format", "format")

	cmd.AddCommand(newHWGenCmd(a))
	cmd.AddCommand(newNetlistCmd(a))
	cmd.AddCommand(newSweepCmd(a))

	return cmd
}

func (a *app) bind(flags *pflag.FlagSet, key, name string) {
	if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
		panic(err)
	}
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.v, a.configFile)
	if err != nil {
		return err
	}
	level, err := logging.ParseLevel(cfg.Log.Level)
	if err != nil {
		return err
	}
	a.cfg = cfg

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New(level, cfg.Log.File, cfg.Log.JSON)
	cmd.SetContext(logging.NewContext(ctx, logger))

	return nil
}

func (a *app) multiply(ctx context.Context, args []string) error {
	logger := logging.FromContext(ctx)

	if len(args) > 0 {
		a.cfg.Multiplier = args[0]
	}
	if len(args) > 1 {
		a.cfg.Multiplicand = args[1]
	}
	mr, md, err := a.cfg.Operands()
	if err != nil {
		return err
	}
	reporter, err := a.cfg.Reporter()
	if err != nil {
		return err
	}
	logger.Debug("multiply",
		zap.Stringer("multiplier", mr),
		zap.Stringer("multiplicand", md),
		zap.Bool("twolevel", a.cfg.TwoLevel),
		zap.Bool("netlist", a.cfg.Netlist))

	session, err := reporter.Run(a.out, mr, md, multiplier.Multiplier{
		TwoLevel: a.cfg.TwoLevel,
		Netlist:  a.cfg.Netlist,
	})
	if err != nil {
		return err
	}
	logger.Info("multiplied",
		zap.Int("unsigned-iterations", session.UnsignedResult.Iterations),
		zap.Int("signed-iterations", session.SignedResult.Iterations))

	return nil
}
