//
// multiplier.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package multiplier

import (
	"fmt"

	"github.com/markkurossi/twolevel/adder"
	"github.com/markkurossi/twolevel/bitvec"
	"github.com/markkurossi/twolevel/circuit"
)

// Multiplier implements the two-level multiplier. The multiplier
// value holds the operands and options; each Multiply call runs the
// multiplication from scratch so the same value can be multiplied
// many times and from many goroutines.
type Multiplier struct {
	MultiplierSign   bitvec.Vector
	Multiplier       bitvec.Vector
	MultiplicandSign bitvec.Vector
	Multiplicand     bitvec.Vector

	// TwoLevel selects the two-level encoder, shifter, and decoder.
	TwoLevel bool

	// Netlist accumulates the partial products with the gate-level
	// ripple-carry adder circuit.
	Netlist bool
}

// Step describes one iteration of the multiplication.
type Step struct {
	Iteration      int
	Register       bitvec.Vector
	Shift          int
	PartialProduct bitvec.Vector
	Product        bitvec.Vector
	Consumed       bitvec.Vector
	Done           bool
}

// Result holds the outcome of a multiplication.
type Result struct {
	Product    bitvec.Vector
	Sign       bitvec.Vector
	Steps      []Step
	Iterations int
	// SetBits is the number of one digits in the multiplier.
	SetBits int
}

// New creates an unsigned multiplier for mr*md. Both signs are zero.
func New(mr, md bitvec.Vector) *Multiplier {
	return &Multiplier{
		MultiplierSign:   bitvec.MustParse("0"),
		Multiplier:       mr,
		MultiplicandSign: bitvec.MustParse("0"),
		Multiplicand:     md,
	}
}

// NewSigned creates a signed-magnitude multiplier. The signs must be
// one digit long.
func NewSigned(sMr, mr, sMd, md bitvec.Vector) (*Multiplier, error) {
	if sMr.Len() != 1 {
		return nil, fmt.Errorf("invalid multiplier sign '%s'", sMr)
	}
	if sMd.Len() != 1 {
		return nil, fmt.Errorf("invalid multiplicand sign '%s'", sMd)
	}
	return &Multiplier{
		MultiplierSign:   sMr,
		Multiplier:       mr,
		MultiplicandSign: sMd,
		Multiplicand:     md,
	}, nil
}

// SplitSigned creates a signed-magnitude multiplier from the
// operands. The most significant digit of each operand is its sign.
func SplitSigned(mr, md bitvec.Vector) (*Multiplier, error) {
	sMr, mMr, err := mr.SplitSign()
	if err != nil {
		return nil, fmt.Errorf("multiplier: %w", err)
	}
	sMd, mMd, err := md.SplitSign()
	if err != nil {
		return nil, fmt.Errorf("multiplicand: %w", err)
	}
	return NewSigned(sMr, mMr, sMd, mMd)
}

// ProductLen returns the product width in bits.
func (m *Multiplier) ProductLen() int {
	return m.Multiplier.Len() + m.Multiplicand.Len()
}

// Sign returns the sign of the product: one if exactly one of the
// operand signs is one.
func (m *Multiplier) Sign() bitvec.Vector {
	sMr, _ := m.MultiplierSign.At(0)
	sMd, _ := m.MultiplicandSign.At(0)
	if sMr != sMd {
		return bitvec.MustParse("1")
	}
	return bitvec.MustParse("0")
}

// Multiply multiplies the operands.
func (m *Multiplier) Multiply() (*Result, error) {
	productLen := m.ProductLen()
	product := bitvec.Zeros(productLen)
	register := m.Multiplier.Bools()
	g := NewGeometry(register.Len())

	var accumulate func(x, y bitvec.Vector) (bitvec.Vector, error)
	if m.Netlist && productLen > 0 {
		rca, err := circuit.NewRippleCarryAdder(productLen)
		if err != nil {
			return nil, err
		}
		accumulate = func(x, y bitvec.Vector) (bitvec.Vector, error) {
			return netlistAdd(rca, x, y)
		}
	} else {
		accumulate = func(x, y bitvec.Vector) (bitvec.Vector, error) {
			return adder.New(x, y, false).Add(), nil
		}
	}

	result := &Result{
		Sign:    m.Sign(),
		SetBits: m.Multiplier.CountSetBits(),
	}

	for iteration := 1; !register.AllZero(); iteration++ {
		step := Step{
			Iteration: iteration,
			Register:  register.Vector(),
		}

		var pp, consumed bitvec.Vector
		if m.TwoLevel {
			step.Shift = EncodeTwoLevel(register, g)
			pp = ShiftTwoLevel(m.Multiplicand, step.Shift, g)
			consumed = trimLeading(DecodeTwoLevel(step.Shift, g),
				step.Shift+1)
		} else {
			step.Shift = Encode(register)
			pp = Shift(m.Multiplicand, step.Shift)
			consumed = Decode(step.Shift)
		}
		pp = fitTo(pp, productLen)
		step.PartialProduct = pp

		var err error
		product, err = accumulate(product, pp)
		if err != nil {
			return nil, err
		}
		step.Product = product
		step.Consumed = consumed

		register = register.Xor(consumed.Bools())
		step.Done = register.AllZero()

		result.Steps = append(result.Steps, step)
	}
	result.Product = product
	result.Iterations = len(result.Steps)

	return result, nil
}

// fitTo pads or truncates the vector to n digits.
func fitTo(v bitvec.Vector, n int) bitvec.Vector {
	if v.Len() < n {
		v, _ = v.PadTo(n)
	} else if v.Len() > n {
		v, _ = v.Truncate(n)
	}
	return v
}

// trimLeading keeps the n least significant digits of v if v is
// longer than n.
func trimLeading(v bitvec.Vector, n int) bitvec.Vector {
	v, _ = v.Truncate(n)
	return v
}

func netlistAdd(rca *circuit.Circuit, x, y bitvec.Vector) (bitvec.Vector, error) {
	out, err := rca.Compute([][]bool{
		x.Bools().Reversed().Bits(),
		y.Bools().Reversed().Bits(),
	})
	if err != nil {
		return bitvec.Vector{}, err
	}
	// The carry out, out[1], is discarded.
	return bitvec.NewBoolView(out[0]...).Reversed().Vector(), nil
}
