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

// DecoderEntity returns the name of the decoder.
func (p Params) DecoderEntity() string {
	return fmt.Sprintf("decoder_%d", p.N)
}

// Decoder writes the two-level decoder. The column decoder decodes
// the log2(k) most significant input bits, the row decoder the log2(q)
// least significant bits, and each output bit is the AND of its
// column and row.
func (p Params) Decoder(w io.Writer) {
	g := p.Geometry()
	name := p.DecoderEntity()

	printLibraries(w, false)

	fmt.Fprintf(w, "entity %s is\n", name)
	p.printGenerics(w, false)
	fmt.Fprint(w, `port(
  input: in std_logic_vector(g_log2n - 1 downto 0); -- shift amount
  output: out std_logic_vector(g_n - 1 downto 0) -- consumed bit mask
);
`)
	fmt.Fprintf(w, "end %s;\n\n", name)

	fmt.Fprintf(w, "architecture behavioral of %s is\n\n", name)
	fmt.Fprint(w, `signal col: std_logic_vector(g_k - 1 downto 0); -- column decoder
signal row: std_logic_vector(g_q - 1 downto 0); -- row decoder
signal result: std_logic_vector(g_n - 1 downto 0);

begin
`)
	partialDecoder(w, "col", g.K, g.Log2N-1, g.Log2Q)
	fmt.Fprintln(w)
	partialDecoder(w, "row", g.Q, g.Log2Q-1, 0)
	fmt.Fprintln(w)

	fmt.Fprint(w, `coarse: for i in g_k - 1 downto 0 generate
  fine: for j in g_q - 1 downto 0 generate
    result((g_q * i) + j) <= col(i) and row(j);
  end generate fine;
end generate coarse;

output <= result;
end;
`)
}

// partialDecoder writes a single-level decoder assigning the outputs
// name(count-1)...name(0) from input(upper downto lower).
func partialDecoder(w io.Writer, name string, count, upper, lower int) {
	for i := count - 1; i >= 0; i-- {
		fmt.Fprintf(w, "%s(%d)%s <= ", name, i,
			pad(digits(count-1)-digits(i)))
		for j := upper; j >= lower; j-- {
			if (i>>(j-lower))&1 == 0 {
				fmt.Fprint(w, "not ")
			}
			fmt.Fprintf(w, "input(%d)", j)
			if j > lower {
				fmt.Fprint(w, " and ")
			} else {
				fmt.Fprintln(w, ";")
			}
		}
	}
}
