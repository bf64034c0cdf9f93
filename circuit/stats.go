//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
	"io"

	"github.com/markkurossi/tabulate"
)

// PrintStats prints the circuit gate statistics as a table.
func (c *Circuit) PrintStats(out io.Writer, style tabulate.Style) {
	tab := tabulate.New(style)
	tab.Header("Gate").SetAlign(tabulate.ML)
	tab.Header("Count").SetAlign(tabulate.MR)
	tab.Header("%").SetAlign(tabulate.MR)

	total := c.Stats.Count()
	for op := XOR; op <= INV; op++ {
		count := c.Stats[op]
		if count == 0 {
			continue
		}
		row := tab.Row()
		row.Column(op.String())
		row.Column(fmt.Sprintf("%d", count))
		row.Column(fmt.Sprintf("%.2f%%", float64(count)/float64(total)*100))
	}

	row := tab.Row()
	row.Column("Total").SetFormat(tabulate.FmtBold)
	row.Column(fmt.Sprintf("%d", total)).SetFormat(tabulate.FmtBold)
	row.Column("").SetFormat(tabulate.FmtBold)

	row = tab.Row()
	row.Column("├╴Wires").SetFormat(tabulate.FmtItalic)
	row.Column(fmt.Sprintf("%d", c.NumWires)).SetFormat(tabulate.FmtItalic)
	row.Column("")

	row = tab.Row()
	row.Column("╰╴Cost").SetFormat(tabulate.FmtItalic)
	row.Column(fmt.Sprintf("%d", c.Cost())).SetFormat(tabulate.FmtItalic)
	row.Column("")

	tab.Print(out)
}
