//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"fmt"

	"github.com/markkurossi/twolevel/logging"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newHWGenCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hwgen",
		Short: "Generate the multiplier VHDL components",
		Long: `hwgen writes the two-level priority encoder, barrel shifter,
decoder, and the top-level multiplier as VHDL files into the output
directory. The multiplier and multiplicand lengths must be powers
of two.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			params := a.cfg.HWParams()
			if err := params.Validate(); err != nil {
				return err
			}
			g := params.Geometry()
			logging.FromContext(cmd.Context()).Info("generating components",
				zap.Int("n", params.N),
				zap.Int("m", params.M),
				zap.Stringer("geometry", g),
				zap.String("adder", params.AdderEntity()))

			files, err := params.Generate(a.cfg.HWGen.Dir)
			for _, file := range files {
				fmt.Fprintf(a.out, "Created %s\n", file)
			}
			return err
		},
	}
	flags := cmd.Flags()
	flags.Int("n", 256, "multiplier length")
	flags.Int("m", 256, "multiplicand length")
	flags.String("adder", "cla", "product adder: cla, rca")
	flags.StringP("dir", "o", ".", "output directory")
	a.bind(flags, "hwgen.width", "n")
	a.bind(flags, "hwgen.mdwidth", "m")
	a.bind(flags, "hwgen.adder", "adder")
	a.bind(flags, "hwgen.dir", "dir")

	return cmd
}
