//
// params.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

// Package hwgen generates the VHDL components of the two-level
// multiplier hardware.
package hwgen

import (
	"fmt"
	"io"
	"math/bits"

	"github.com/markkurossi/twolevel/multiplier"
)

// Adder names.
const (
	AdderCLA = "cla"
	AdderRCA = "rca"
)

// Suffix is the file name suffix of the generated files.
const Suffix = "_ngen.vhd"

// Params define the hardware parameters.
type Params struct {
	// N is the multiplier length in bits.
	N int
	// M is the multiplicand length in bits.
	M int
	// Adder selects the product accumulator: AdderCLA references an
	// external carry-lookahead adder CLA<size> and AdderRCA
	// generates a ripple-carry adder rca_<size>.
	Adder string
}

// Validate checks the parameters.
func (p Params) Validate() error {
	if p.N < 4 || bits.OnesCount(uint(p.N)) != 1 {
		return fmt.Errorf("invalid multiplier length %d: must be a power of 2 >= 4",
			p.N)
	}
	if p.M < 1 || bits.OnesCount(uint(p.M)) != 1 {
		return fmt.Errorf("invalid multiplicand length %d: must be a power of 2",
			p.M)
	}
	switch p.Adder {
	case AdderCLA, AdderRCA:
	default:
		return fmt.Errorf("unknown adder '%s'", p.Adder)
	}
	return nil
}

// Geometry returns the two-level geometry of the multiplier register.
func (p Params) Geometry() multiplier.Geometry {
	return multiplier.NewGeometry(p.N)
}

// AdderSize returns the width of the product accumulator.
func (p Params) AdderSize() int {
	return 2 * max(p.N, p.M)
}

// AdderEntity returns the entity name of the product accumulator.
func (p Params) AdderEntity() string {
	if p.Adder == AdderRCA {
		return fmt.Sprintf("rca_%d", p.AdderSize())
	}
	return fmt.Sprintf("CLA%d", p.AdderSize())
}

func printLibraries(w io.Writer, misc bool) {
	fmt.Fprint(w, `library IEEE;
use IEEE.std_logic_1164.all;
use IEEE.numeric_std.all;
use IEEE.std_logic_unsigned.all;
`)
	if misc {
		fmt.Fprintln(w, "use IEEE.std_logic_misc.all;")
	}
	fmt.Fprintln(w)
}

func (p Params) printGenerics(w io.Writer, withM bool) {
	g := p.Geometry()

	fmt.Fprintln(w, "generic(")
	fmt.Fprintf(w, "  g_n:      integer := %d;  -- multiplier length\n", g.N)
	fmt.Fprintf(w, "  g_log2n:  integer := %d;  -- log2(n), encoder output length\n",
		g.Log2N)
	if withM {
		fmt.Fprintf(w, "  g_m:      integer := %d;  -- multiplicand length\n", p.M)
	}
	fmt.Fprintf(w, "  g_q:      integer := %d;  -- least power of 2 >= sqrt(n)\n",
		g.Q)
	fmt.Fprintf(w, "  g_log2q:  integer := %d;  -- log2(q)\n", g.Log2Q)
	fmt.Fprintf(w, "  g_k:      integer := %d;  -- n/q\n", g.K)
	fmt.Fprintf(w, "  g_log2k:  integer := %d   -- log2(k)\n", g.Log2K)
	fmt.Fprintln(w, ");")
}

// digits returns the number of decimal digits in v.
func digits(v int) int {
	return len(fmt.Sprintf("%d", v))
}

func pad(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%*s", n, "")
}

func zeros(n int) string {
	if n <= 0 {
		return ""
	}
	return fmt.Sprintf("%0*d", n, 0)
}

// binary returns v as a width digits long binary string.
func binary(v, width int) string {
	return fmt.Sprintf("%0*b", width, v)
}
