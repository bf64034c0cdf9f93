//
// encoder.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package multiplier

import (
	"github.com/markkurossi/twolevel/bitvec"
)

// Encode implements the priority encoder. It returns the position,
// counted from the least significant digit, of the most significant
// set digit of the register, or -1 if the register is all zero.
func Encode(register bitvec.BoolView) int {
	bits := register.Bits()
	for idx, bit := range bits {
		if bit {
			return len(bits) - idx - 1
		}
	}
	return -1
}

// EncodeTwoLevel implements the two-level priority encoder of the
// hardware. The coarse encoder selects the most significant non-zero
// Q bit slice of the register and the fine encoder selects the most
// significant set digit inside the slice. The result is always equal
// to Encode(register).
func EncodeTwoLevel(register bitvec.BoolView, g Geometry) int {
	if register.Len() > g.N {
		g = NewGeometry(register.Len())
	}
	padded, _ := register.Vector().PadTo(g.N)

	// Least significant digit first.
	bits := padded.Bools().Reversed().Bits()

	// The coarse encoder input is the OR of each slice. Slice 0 is
	// selected when no other slice has set digits.
	coarse := 0
	for i := g.K - 1; i > 0; i-- {
		if sliceOR(bits[i*g.Q : (i+1)*g.Q]) {
			coarse = i
			break
		}
	}
	slice := bits[coarse*g.Q : (coarse+1)*g.Q]
	for fine := g.Q - 1; fine >= 0; fine-- {
		if slice[fine] {
			return coarse<<g.Log2Q | fine
		}
	}
	return -1
}

func sliceOR(bits []bool) bool {
	for _, bit := range bits {
		if bit {
			return true
		}
	}
	return false
}
