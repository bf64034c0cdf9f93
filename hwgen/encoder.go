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

// EncoderEntity returns the name of the width bit priority encoder.
func EncoderEntity(width int) string {
	return fmt.Sprintf("priority_encoder_%d", width)
}

// Encoder writes the two-level priority encoder of the multiplier
// register. The coarse encoder selects the most significant non-zero
// q bit slice of the input and the fine encoder encodes the selected
// slice.
func (p Params) Encoder(w io.Writer) {
	g := p.Geometry()
	name := EncoderEntity(g.N)

	printLibraries(w, false)

	fmt.Fprintf(w, "entity %s is\n", name)
	p.printGenerics(w, false)
	fmt.Fprint(w, `port(
  input: in std_logic_vector(g_n-1 downto 0);
  output: out std_logic_vector(g_log2n-1 downto 0)
);
`)
	fmt.Fprintf(w, "end %s;\n\n", name)

	fmt.Fprintf(w, "architecture behavioral of %s is\n\n", name)

	fmt.Fprintf(w, `component %s
port(
  input: in std_logic_vector(g_k - 1 downto 0);
  output: out std_logic_vector(g_log2k - 1 downto 0)
);
end component;

`, EncoderEntity(g.K))

	if g.Q != g.K {
		fmt.Fprintf(w, `component %s
port(
  input: in std_logic_vector(g_q - 1 downto 0);
  output: out std_logic_vector(g_log2q - 1 downto 0)
);
end component;

`, EncoderEntity(g.Q))
	}

	fmt.Fprint(w, `signal c_output: std_logic_vector(g_log2k - 1 downto 0); -- coarse encoder output, slice select
signal f_input: std_logic_vector(g_q - 1 downto 0); -- fine encoder input
signal slice_or: std_logic_vector(g_k - 1 downto 0); -- q input OR of each slice

begin
`)

	// Slice 0 is selected when no other slice has set bits so its
	// OR gate is not needed.
	for i := g.K - 1; i > 0; i-- {
		var sb strings.Builder
		fmt.Fprintf(&sb, "slice_or(%d)%s <= ", i, pad(2-digits(i)))
		for j := 1; j <= g.Q; j++ {
			fmt.Fprintf(&sb, "input(%d)", g.Q*(i+1)-j)
			if j < g.Q {
				sb.WriteString(" or ")
				if j%8 == 0 {
					sb.WriteString("\n                ")
				}
			}
		}
		sb.WriteString(";\n\n")
		fmt.Fprint(w, sb.String())
	}
	fmt.Fprint(w, "slice_or(0) <= '1'; -- not examined\n\n")

	fmt.Fprintf(w, "coarse_encoder: %s port map(slice_or, c_output);\n\n",
		EncoderEntity(g.K))

	fmt.Fprintln(w, "f_input <=")
	for i := g.K; i > 0; i-- {
		upper := g.Q*i - 1
		lower := g.Q * (i - 1)
		fmt.Fprintf(w, "  input(%d downto %d)", upper, lower)
		if i > 1 {
			fmt.Fprintf(w, "%s when c_output = \"%s\" else\n",
				pad(2*digits(g.N)-digits(upper)-digits(lower)),
				binary(i-1, g.Log2K))
		} else {
			fmt.Fprintln(w, ";")
		}
	}
	fmt.Fprintln(w)

	fmt.Fprintf(w,
		"fine_encoder: %s port map(f_input, output(g_log2q - 1 downto 0));\n\n",
		EncoderEntity(g.Q))
	fmt.Fprintln(w,
		"output(g_log2n - 1 downto g_log2q) <= c_output(g_log2k - 1 downto 0);")
	fmt.Fprintln(w, "end;")
}

// LeafEncoder writes a single-level width bit priority encoder. The
// two-level encoder instantiates leaf encoders for its coarse and fine
// stages.
func LeafEncoder(w io.Writer, width int) {
	name := EncoderEntity(width)
	log2 := 0
	for 1<<log2 < width {
		log2++
	}

	printLibraries(w, false)

	fmt.Fprintf(w, "entity %s is\n", name)
	fmt.Fprintln(w, "generic(")
	fmt.Fprintf(w, "  g_n:      integer := %d;  -- input length\n", width)
	fmt.Fprintf(w, "  g_log2n:  integer := %d   -- output length\n", log2)
	fmt.Fprintln(w, ");")
	fmt.Fprint(w, `port(
  input: in std_logic_vector(g_n - 1 downto 0);
  output: out std_logic_vector(g_log2n - 1 downto 0)
);
`)
	fmt.Fprintf(w, "end %s;\n\n", name)

	fmt.Fprintf(w, "architecture behavioral of %s is\n", name)
	fmt.Fprint(w, `begin
  process (input) begin
    output <= (others => '0');
    -- the last match is the most significant set bit
    for i in 0 to g_n - 1 loop
      if input(i) = '1' then
        output <= std_logic_vector(to_unsigned(i, g_log2n));
      end if;
    end loop;
  end process;
end;
`)
}
