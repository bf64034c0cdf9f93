//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package bitvec

import (
	"strings"
)

// BoolView is a boolean projection of a vector's digits, most
// significant digit first. A view owns its snapshot: it does not
// observe changes to the vector it was created from.
type BoolView struct {
	bits []bool
}

// NewBoolView creates a view of the argument bits. The bits are
// copied.
func NewBoolView(bits ...bool) BoolView {
	return BoolView{
		bits: append([]bool(nil), bits...),
	}
}

// Len returns the number of elements in the view.
func (b BoolView) Len() int {
	return len(b.bits)
}

func (b BoolView) String() string {
	var sb strings.Builder
	sb.WriteString("[ ")
	for _, bit := range b.bits {
		if bit {
			sb.WriteString("true ")
		} else {
			sb.WriteString("false ")
		}
	}
	sb.WriteString("]")
	return sb.String()
}

// Bits returns a copy of the view elements.
func (b BoolView) Bits() []bool {
	return append([]bool(nil), b.bits...)
}

// Vector converts the view back to a vector.
func (b BoolView) Vector() Vector {
	return Vector{
		digits: append([]bool(nil), b.bits...),
	}
}

// At returns the element i.
func (b BoolView) At(i int) (bool, error) {
	if i < 0 || i >= len(b.bits) {
		return false, &IndexError{
			Index:  i,
			Length: len(b.bits),
		}
	}
	return b.bits[i], nil
}

// Set sets the element i to v.
func (b *BoolView) Set(i int, v bool) error {
	if i < 0 || i >= len(b.bits) {
		return &IndexError{
			Index:  i,
			Length: len(b.bits),
		}
	}
	b.bits[i] = v
	return nil
}

// Reversed returns a new view with the elements in reverse order.
func (b BoolView) Reversed() BoolView {
	result := make([]bool, len(b.bits))
	for idx, bit := range b.bits {
		result[len(b.bits)-idx-1] = bit
	}
	return BoolView{
		bits: result,
	}
}

// AllZero implements the NOR reduction of the view: it returns true
// if all elements are false.
func (b BoolView) AllZero() bool {
	for _, bit := range b.bits {
		if bit {
			return false
		}
	}
	return true
}

// Xor returns the element-wise XOR of the views. The shorter operand
// is padded with leading false elements to the length of the longer
// one.
func (b BoolView) Xor(o BoolView) BoolView {
	x, y := zeroPad(b.bits, o.bits)
	for i := range x {
		x[i] = x[i] != y[i]
	}
	return BoolView{
		bits: x,
	}
}

// And returns the element-wise AND of the views, padding like Xor.
func (b BoolView) And(o BoolView) BoolView {
	x, y := zeroPad(b.bits, o.bits)
	for i := range x {
		x[i] = x[i] && y[i]
	}
	return BoolView{
		bits: x,
	}
}

// Equal tests if the views have the same length and elements.
func (b BoolView) Equal(o BoolView) bool {
	return b.Vector().Equal(o.Vector())
}

// zeroPad returns fresh copies of x and y, padded at the most
// significant end to equal length.
func zeroPad(x, y []bool) ([]bool, []bool) {
	n := max(len(x), len(y))
	px := make([]bool, n)
	py := make([]bool, n)
	copy(px[n-len(x):], x)
	copy(py[n-len(y):], y)
	return px, py
}
