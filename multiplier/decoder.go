//
// decoder.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package multiplier

import (
	"github.com/markkurossi/twolevel/bitvec"
)

// Decode returns the pattern of the bit consumed at position shamt: a
// one digit followed by shamt zero digits.
func Decode(shamt int) bitvec.Vector {
	if shamt < 0 {
		return bitvec.Zeros(0)
	}
	result, _ := bitvec.Zeros(shamt + 1).Set(0, true)
	return result
}

// DecodeTwoLevel implements the two-level hardware decoder. The
// column decoder decodes the coarse slice index and the row decoder
// the fine offset of shamt; each result digit is the AND of its
// column and row lines. The result is g.N digits long and equals
// Decode(shamt) padded to g.N digits.
func DecodeTwoLevel(shamt int, g Geometry) bitvec.Vector {
	if shamt < 0 || shamt >= g.N {
		return bitvec.Zeros(g.N)
	}
	c, r := g.Split(shamt)

	col := make([]bool, g.K)
	col[c] = true
	row := make([]bool, g.Q)
	row[r] = true

	// Least significant digit first.
	result := make([]bool, g.N)
	for i := g.K - 1; i >= 0; i-- {
		for j := g.Q - 1; j >= 0; j-- {
			result[g.Q*i+j] = col[i] && row[j]
		}
	}
	return bitvec.NewBoolView(result...).Reversed().Vector()
}
