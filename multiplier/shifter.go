//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package multiplier

import (
	"github.com/markkurossi/twolevel/bitvec"
)

// Shift shifts the value left by shamt bits. The result is shamt
// digits longer than the value.
func Shift(value bitvec.Vector, shamt int) bitvec.Vector {
	if shamt <= 0 {
		return value
	}
	return value.Concat(bitvec.Zeros(shamt))
}

// ShiftTwoLevel implements the two-level barrel shifter of the
// hardware. It shifts the value first by the fine offset of shamt and
// then by the coarse slice index times Q. The result is value.Len() +
// g.N digits long.
func ShiftTwoLevel(value bitvec.Vector, shamt int, g Geometry) bitvec.Vector {
	coarse, fine := g.Split(max(shamt, 0))

	// Fine shift: at most Q-1 bits.
	result := Shift(value, fine)

	// Coarse shift: whole slices.
	result = Shift(result, coarse*g.Q)

	result, _ = result.PadTo(value.Len() + g.N)
	return result
}
