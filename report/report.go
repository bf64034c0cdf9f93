//
// report.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

// Package report renders multiplication traces and result equations.
package report

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/text/superscript"
	"github.com/markkurossi/twolevel/bitvec"
	"github.com/markkurossi/twolevel/multiplier"
)

// Format specifies the trace format.
type Format int

// Trace formats.
const (
	FormatText Format = iota
	FormatTable
)

var formats = map[Format]string{
	FormatText:  "text",
	FormatTable: "table",
}

func (f Format) String() string {
	name, ok := formats[f]
	if ok {
		return name
	}
	return fmt.Sprintf("{Format %d}", f)
}

// ParseFormat parses the trace format name.
func ParseFormat(name string) (Format, error) {
	for f, n := range formats {
		if n == name {
			return f, nil
		}
	}
	return FormatText, fmt.Errorf("unknown trace format '%s'", name)
}

var styles = map[string]tabulate.Style{
	"plain":   tabulate.Plain,
	"ascii":   tabulate.ASCII,
	"unicode": tabulate.UnicodeLight,
}

// ParseStyle parses the table style name.
func ParseStyle(name string) (tabulate.Style, error) {
	style, ok := styles[name]
	if !ok {
		return tabulate.Plain, fmt.Errorf("unknown table style '%s'", name)
	}
	return style, nil
}

// Separator is printed between the unsigned and signed passes.
var Separator = strings.Repeat("=", 53)

// Reporter writes multiplication reports.
type Reporter struct {
	Format Format
	Style  tabulate.Style
}

// Header returns the trace header of the multiplier.
func Header(m *multiplier.Multiplier) string {
	return fmt.Sprintf("%s_%s * %s_%s", m.MultiplierSign, m.Multiplier,
		m.MultiplicandSign, m.Multiplicand)
}

// WriteTrace writes the iteration trace of the multiplication.
func (r *Reporter) WriteTrace(out io.Writer, m *multiplier.Multiplier,
	result *multiplier.Result) error {

	w := bufio.NewWriter(out)

	header := Header(m)
	fmt.Fprintln(w, header)
	fmt.Fprintln(w, strings.Repeat("-", len(header)))

	switch r.Format {
	case FormatTable:
		r.printTable(w, result)
	default:
		for _, step := range result.Steps {
			fmt.Fprintf(w, "Iteration %d:\n", step.Iteration)
			fmt.Fprintf(w, "Mr_i:   %s\n", step.Register)
			fmt.Fprintf(w, "Sh_i:   %d bits\n", step.Shift)
			fmt.Fprintf(w, "Pp_i:   %s\n", step.PartialProduct)
			fmt.Fprintf(w, "Prod_i: %s\n", step.Product)
			fmt.Fprintf(w, "C_i:    %s\n", step.Consumed)
			fmt.Fprintf(w, "Done:   %v\n", step.Done)
			fmt.Fprintln(w)
		}
	}
	fmt.Fprintf(w, "Total Iterations: %d\n", result.Iterations)
	fmt.Fprintf(w, "Number of high bits in multiplier (h): %d\n",
		result.SetBits)
	fmt.Fprintln(w)

	return w.Flush()
}

func (r *Reporter) printTable(out io.Writer, result *multiplier.Result) {
	tab := tabulate.New(r.Style)
	tab.Header("i").SetAlign(tabulate.MR)
	tab.Header("Mr").SetAlign(tabulate.MR)
	tab.Header("Sh").SetAlign(tabulate.ML)
	tab.Header("Pp").SetAlign(tabulate.MR)
	tab.Header("Prod").SetAlign(tabulate.MR)
	tab.Header("C").SetAlign(tabulate.MR)
	tab.Header("Done").SetAlign(tabulate.ML)

	for _, step := range result.Steps {
		row := tab.Row()
		row.Column(fmt.Sprintf("%d", step.Iteration))
		row.Column(step.Register.String())
		row.Column(ShiftLabel(step.Shift))
		row.Column(step.PartialProduct.String())
		if step.Done {
			row.Column(step.Product.String()).SetFormat(tabulate.FmtBold)
		} else {
			row.Column(step.Product.String())
		}
		row.Column(step.Consumed.String())
		row.Column(fmt.Sprintf("%v", step.Done))
	}
	tab.Print(out)
	fmt.Fprintln(out)
}

// ShiftLabel returns the shift amount as the power of two the
// multiplicand is multiplied with.
func ShiftLabel(shamt int) string {
	return "2" + superscript.Itoa(shamt)
}

// WriteUnsignedEquations writes the result equations of an unsigned
// multiplication.
func WriteUnsignedEquations(out io.Writer, m *multiplier.Multiplier,
	result *multiplier.Result) error {

	_, err := fmt.Fprintf(out, "Base 10: %s * %s = %s\nBase 2: %s * %s = %s\n",
		m.Multiplier.Int(), m.Multiplicand.Int(), result.Product.Int(),
		m.Multiplier, m.Multiplicand, result.Product)
	return err
}

// WriteSignedEquations writes the result equations of a
// signed-magnitude multiplication.
func WriteSignedEquations(out io.Writer, m *multiplier.Multiplier,
	result *multiplier.Result) error {

	_, err := fmt.Fprintf(out,
		"Base 10: %s%s * %s%s = %s%s\nBase 2: %s_%s * %s_%s = %s_%s\n",
		signChar(m.MultiplierSign), m.Multiplier.Int(),
		signChar(m.MultiplicandSign), m.Multiplicand.Int(),
		signChar(result.Sign), result.Product.Int(),
		m.MultiplierSign, m.Multiplier,
		m.MultiplicandSign, m.Multiplicand,
		result.Sign, result.Product)
	return err
}

func signChar(sign bitvec.Vector) string {
	neg, _ := sign.At(0)
	if neg {
		return "-"
	}
	return "+"
}
