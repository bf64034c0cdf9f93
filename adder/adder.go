//
// adder.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package adder

import (
	"github.com/markkurossi/twolevel/bitvec"
)

// RippleCarryAdder implements a ripple-carry adder over two vectors.
// The adder is a transient computation object: create it with the
// operands, call Add, and read the sum and carry.
type RippleCarryAdder struct {
	augend  bitvec.Vector
	addend  bitvec.Vector
	carryIn bool
	carry   bool
	sum     bitvec.Vector
	added   bool
}

// New creates a new ripple-carry adder for augend+addend+carryIn.
func New(augend, addend bitvec.Vector, carryIn bool) *RippleCarryAdder {
	return &RippleCarryAdder{
		augend:  augend,
		addend:  addend,
		carryIn: carryIn,
	}
}

// Len returns the sum length in bits.
func (rca *RippleCarryAdder) Len() int {
	return max(rca.augend.Len(), rca.addend.Len())
}

// Add adds the operands and returns the sum, most significant digit
// first. The sum is Len() digits long; the final carry is available
// from CarryOut.
func (rca *RippleCarryAdder) Add() bitvec.Vector {
	n := rca.Len()
	x, _ := rca.augend.PadTo(n)
	y, _ := rca.addend.PadTo(n)

	// Process least significant digit first.
	a := x.Bools().Reversed()
	b := y.Bools().Reversed()
	sum := make([]bool, n)

	c := rca.carryIn
	for i := 0; i < n; i++ {
		ai, _ := a.At(i)
		bi, _ := b.At(i)
		sum[i] = ai != bi != c
		c = (ai && bi) || (ai != bi && c)
	}

	rca.carry = c
	rca.sum = bitvec.NewBoolView(sum...).Reversed().Vector()
	rca.added = true

	return rca.sum
}

// CarryOut returns the carry out of the most significant digit.
func (rca *RippleCarryAdder) CarryOut() bool {
	if !rca.added {
		rca.Add()
	}
	return rca.carry
}

// Sum returns the sum of the operands.
func (rca *RippleCarryAdder) Sum() bitvec.Vector {
	if !rca.added {
		rca.Add()
	}
	return rca.sum
}

// ExtendedSum returns the sum with the carry out as its new most
// significant digit. The extended sum never loses information.
func (rca *RippleCarryAdder) ExtendedSum() bitvec.Vector {
	result, _ := rca.Sum().PadWith(1)
	if rca.carry {
		result, _ = result.Set(0, true)
	}
	return result
}
