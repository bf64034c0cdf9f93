//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"os"

	"github.com/markkurossi/twolevel/circuit"
	"github.com/spf13/cobra"
)

func newNetlistCmd(a *app) *cobra.Command {
	var bits int
	var format string
	var stats bool
	var input string

	cmd := &cobra.Command{
		Use:   "netlist",
		Short: "Print the ripple-carry adder netlist",
		Long: `netlist prints the gate-level ripple-carry adder that accumulates
the partial products. The default width is the product width of the
configured operands. With --input, the netlist is read from a Bristol
circuit file instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := a.netlist(input, bits)
			if err != nil {
				return err
			}
			if stats {
				reporter, err := a.cfg.Reporter()
				if err != nil {
					return err
				}
				c.PrintStats(a.out, reporter.Style)
				return nil
			}
			return c.MarshalFormat(a.out, format)
		},
	}
	flags := cmd.Flags()
	flags.IntVar(&bits, "bits", 0, "adder width")
	flags.StringVar(&format, "format", "bristol", "output format: bristol, dot")
	flags.BoolVar(&stats, "stats", false, "print gate statistics")
	flags.StringVarP(&input, "input", "i", "", "read Bristol circuit from file")

	return cmd
}

func (a *app) netlist(input string, bits int) (*circuit.Circuit, error) {
	if len(input) > 0 {
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return circuit.ParseBristol(f)
	}
	if bits <= 0 {
		mr, md, err := a.cfg.Operands()
		if err != nil {
			return nil, err
		}
		bits = mr.Len() + md.Len()
	}
	return circuit.NewRippleCarryAdder(bits)
}
