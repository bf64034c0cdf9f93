//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package hwgen

import (
	"fmt"
	"io"
	"strings"
)

// ShifterEntity returns the name of the barrel shifter.
func (p Params) ShifterEntity() string {
	return fmt.Sprintf("barrel_shifter_%d", p.N)
}

// BarrelShifter writes the two-level barrel shifter. The shifter
// shifts the multiplicand first by the fine amount, shamt mod q, and
// then by whole q bit slices.
func (p Params) BarrelShifter(w io.Writer) {
	g := p.Geometry()
	name := p.ShifterEntity()

	printLibraries(w, false)

	fmt.Fprintf(w, "entity %s is\n", name)
	p.printGenerics(w, true)
	fmt.Fprint(w, `port(
  input: in std_logic_vector(g_m - 1 downto 0); -- multiplicand
  shamt: in std_logic_vector(g_log2n - 1 downto 0); -- shift amount
  output: out std_logic_vector(g_m + g_n - 1 downto 0) -- shifted output
);
`)
	fmt.Fprintf(w, "end %s;\n\n", name)

	fmt.Fprintf(w, "architecture behavioral of %s is\n\n", name)
	fmt.Fprint(w, `signal shamt_upper: std_logic_vector(g_log2k - 1 downto 0); -- coarse shift amount
signal shamt_lower: std_logic_vector(g_log2q - 1 downto 0); -- fine shift amount
signal coarse_result: std_logic_vector(g_m + g_n - 2 downto 0);
signal fine_result: std_logic_vector(g_m + g_q - 2 downto 0);
constant q_0s: std_logic_vector(g_q - 1 downto 0) := (others => '0');

begin
shamt_upper <= shamt(g_log2n - 1 downto g_log2q);
shamt_lower <= shamt(g_log2q - 1 downto 0);

-- maximum fine shift: q - 1 bits
fine_result <=
`)
	for i := g.Q - 1; i >= 1; i-- {
		fmt.Fprint(w, "  ")
		if lead := g.Q - 1 - i; lead > 0 {
			fmt.Fprintf(w, "\"%s\" & ", zeros(lead))
		} else {
			fmt.Fprint(w, pad(5))
		}
		fmt.Fprintf(w, "input & \"%s\" when shamt_lower = %d%s else\n",
			zeros(i), i, pad(digits(g.Q-1)-digits(i)))
	}
	fmt.Fprintf(w, "  \"%s\" & input;\n\n", zeros(g.Q-1))

	fmt.Fprintln(w, "coarse_result <=")
	for i := g.K - 1; i >= 1; i-- {
		fmt.Fprintf(w, "  %sfine_result %swhen shamt_upper = %d else\n",
			strings.Repeat("q_0s & ", g.K-1-i), strings.Repeat("& q_0s ", i), i)
	}
	fmt.Fprintf(w, "  %sfine_result;\n\n", strings.Repeat("q_0s & ", g.K-1))

	fmt.Fprintln(w, "output <= '0' & coarse_result;")
	fmt.Fprintln(w, "end;")
}
