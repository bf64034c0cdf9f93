//
// multiplier.go
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

// MultiplierEntity returns the name of the top-level multiplier.
func (p Params) MultiplierEntity() string {
	return fmt.Sprintf("multiplier_%d", p.N)
}

// Multiplier writes the top-level structural multiplier. The
// multiplier wires the encoder, decoder, shifter, and adder around the
// mr_reg and prod_reg registers and iterates until the multiplier
// register is zero.
func (p Params) Multiplier(w io.Writer) {
	g := p.Geometry()
	name := p.MultiplierEntity()
	adder := p.AdderEntity()

	printLibraries(w, true)

	fmt.Fprintf(w, "entity %s is\n", name)
	p.printGenerics(w, true)
	fmt.Fprint(w, `port(
  clk: in std_logic;
  start: in std_logic;
  reset: in std_logic;
  mr: in std_logic_vector(g_n - 1 downto 0);
  s_mr: in std_logic;
  md: in std_logic_vector(g_m - 1 downto 0);
  s_md: in std_logic;
  prod: out std_logic_vector(g_n + g_m - 1 downto 0);
  s_prod: out std_logic;
  done: out std_logic
);
`)
	fmt.Fprintf(w, "end %s;\n\n", name)

	fmt.Fprintf(w, "architecture structural of %s is\n\n", name)
	fmt.Fprintf(w, "  constant c_adder: integer := %d; -- adder width\n\n",
		p.AdderSize())

	fmt.Fprintf(w, `  component %s
  port(
    input: in std_logic_vector(g_n-1 downto 0);
    output: out std_logic_vector(g_log2n-1 downto 0)
  );
  end component;

`, EncoderEntity(g.N))

	fmt.Fprintf(w, `  component %s
  port(
    input: in std_logic_vector(g_m - 1 downto 0);
    shamt: in std_logic_vector(g_log2n - 1 downto 0);
    output: out std_logic_vector(g_m + g_n - 1 downto 0)
  );
  end component;

`, p.ShifterEntity())

	fmt.Fprintf(w, `  component %s
  port(
    input: in std_logic_vector(g_log2n - 1 downto 0);
    output: out std_logic_vector(g_n - 1 downto 0)
  );
  end component;

`, p.DecoderEntity())

	fmt.Fprintf(w, "  component %s\n", adder)
	fmt.Fprintln(w, "  port(")
	fmt.Fprintln(w, "    A, B: in std_logic_vector(c_adder - 1 downto 0);")
	fmt.Fprintln(w, "    Ci: in std_logic;")
	fmt.Fprintln(w, "    S: out std_logic_vector(c_adder - 1 downto 0);")
	if p.Adder == AdderCLA {
		fmt.Fprintln(w, "    Co, PG, GG: out std_logic")
	} else {
		fmt.Fprintln(w, "    Co: out std_logic")
	}
	fmt.Fprint(w, "  );\n  end component;\n\n")

	fmt.Fprint(w, `  -- Registers
  signal mr_reg: std_logic_vector(g_n - 1 downto 0) := (others => '1');
  signal prod_reg: std_logic_vector(g_n + g_m - 1 downto 0);

  -- Intermediate Signals
  signal encoder_output: std_logic_vector(g_log2n - 1 downto 0);
  signal decoder_output: std_logic_vector(g_n - 1 downto 0);
  signal shifter_output: std_logic_vector(g_n + g_m - 1 downto 0);
  signal xor_output: std_logic_vector(g_n - 1 downto 0);
  signal adder_a: std_logic_vector(c_adder - 1 downto 0);
  signal adder_b: std_logic_vector(c_adder - 1 downto 0);
  signal adder_output: std_logic_vector(c_adder - 1 downto 0);
  signal adder_cout: std_logic;
  signal hw_done: std_logic := '0';
  signal active: std_logic := '0';
  attribute dont_touch: string;
  attribute dont_touch of shifter_output: signal is "true";
  attribute dont_touch of active: signal is "true";

begin
`)

	fmt.Fprintln(w, "  -- Instantiate Components")
	fmt.Fprintf(w, "  encoder: %s port map(mr_reg, encoder_output);\n",
		EncoderEntity(g.N))
	fmt.Fprintf(w, "  decoder: %s port map(encoder_output, decoder_output);\n",
		p.DecoderEntity())
	fmt.Fprintf(w, "  shifter: %s port map(md, encoder_output, shifter_output);\n",
		p.ShifterEntity())
	fmt.Fprintf(w, "  adder: %s port map(\n", adder)
	fmt.Fprint(w, `    A => adder_a,
    B => adder_b,
    Ci => '0',
    S => adder_output,
`)
	if p.Adder == AdderCLA {
		fmt.Fprint(w, `    Co => adder_cout,
    PG => open,
    GG => open
`)
	} else {
		fmt.Fprintln(w, "    Co => adder_cout")
	}
	fmt.Fprint(w, "  );\n\n")

	fmt.Fprint(w, `  adder_a <= std_logic_vector(resize(unsigned(prod_reg), c_adder));
  adder_b <= std_logic_vector(resize(unsigned(shifter_output), c_adder));
  xor_output <= mr_reg xor decoder_output;
  prod <= prod_reg;
  s_prod <= s_mr xor s_md;
  hw_done <= not or_reduce(mr_reg);

  process (clk, reset) begin
    if (reset = '1') then
      mr_reg <= (others => '1'); -- all ones until started
      prod_reg <= (others => '0');
      done <= '0';
    elsif (clk'event and clk = '1') then
      done <= hw_done;
      if (start = '1' and active = '0') then
        mr_reg <= mr;
        prod_reg <= (others => '0');
        active <= '1';
      elsif (active = '1' and hw_done = '0') then
        mr_reg <= xor_output;
        prod_reg <= adder_output(g_n + g_m - 1 downto 0);
      end if;
    end if;
  end process;
end;
`)
}
