//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package hwgen

import (
	"fmt"
	"io"
)

// RippleCarryAdder writes the rca_<size> product accumulator.
func (p Params) RippleCarryAdder(w io.Writer) {
	size := p.AdderSize()
	name := fmt.Sprintf("rca_%d", size)

	printLibraries(w, false)

	fmt.Fprintf(w, "entity %s is\n", name)
	fmt.Fprintln(w, "generic(")
	fmt.Fprintf(w, "  g_width:  integer := %d   -- operand length\n", size)
	fmt.Fprintln(w, ");")
	fmt.Fprint(w, `port(
  A, B: in std_logic_vector(g_width - 1 downto 0);
  Ci: in std_logic;
  S: out std_logic_vector(g_width - 1 downto 0);
  Co: out std_logic
);
`)
	fmt.Fprintf(w, "end %s;\n\n", name)

	fmt.Fprintf(w, "architecture behavioral of %s is\n\n", name)
	fmt.Fprint(w, `signal c: std_logic_vector(g_width downto 0); -- carry chain

begin
c(0) <= Ci;

adder: for i in 0 to g_width - 1 generate
  S(i) <= A(i) xor B(i) xor c(i);
  c(i + 1) <= (A(i) and B(i)) or ((A(i) xor B(i)) and c(i));
end generate adder;

Co <= c(g_width);
end;
`)
}
