//
// adder.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// NewHalfAdder adds a half adder s=a+b, with carry c, into the
// circuit. The carry is not generated if c is nil.
func NewHalfAdder(b *Builder, x, y, s, c *Net) {
	// S = XOR(A, B)
	b.AddGate(XOR, x, y, s)

	if c != nil {
		// C = AND(A, B)
		b.AddGate(AND, x, y, c)
	}
}

// NewFullAdder adds a full adder s=a+b+cin, with carry cout, into the
// circuit. The carry is not generated if cout is nil.
func NewFullAdder(b *Builder, x, y, cin, s, cout *Net) {
	w1 := NewNet()

	// s = a XOR b XOR cin
	// cout = cin XOR ((a XOR cin) AND (b XOR cin)).

	// w1 = XOR(b, cin)
	b.AddGate(XOR, y, cin, w1)

	// s = XOR(a, w1)
	b.AddGate(XOR, x, w1, s)

	if cout != nil {
		w2 := NewNet()
		w3 := NewNet()

		// w2 = XOR(a, cin)
		b.AddGate(XOR, x, cin, w2)

		// w3 = AND(w1, w2)
		b.AddGate(AND, w1, w2, w3)

		// cout = XOR(cin, w3)
		b.AddGate(XOR, cin, w3, cout)
	}
}

// NewAdder adds a ripple-carry adder z=x+y into the circuit. The nets
// are least significant bit first and x and y must have the same
// width. If z is one bit wider than x, its most significant bit
// receives the carry out, otherwise the carry is dropped.
func NewAdder(b *Builder, x, y, z []*Net) error {
	if len(x) == 0 || len(x) != len(y) {
		return fmt.Errorf("invalid adder arguments: x=%d, y=%d",
			len(x), len(y))
	}
	if len(z) != len(x) && len(z) != len(x)+1 {
		return fmt.Errorf("invalid adder arguments: x=%d, y=%d, z=%d",
			len(x), len(y), len(z))
	}
	carry := func(i int) *Net {
		if i+1 < len(x) {
			return NewNet()
		}
		if len(z) > len(x) {
			return z[len(x)]
		}
		// N+N=N, overflow, drop carry bit.
		return nil
	}

	cin := carry(0)
	NewHalfAdder(b, x[0], y[0], z[0], cin)

	for i := 1; i < len(x); i++ {
		cout := carry(i)
		NewFullAdder(b, x[i], y[i], cin, z[i], cout)
		cin = cout
	}
	return nil
}

// NewRippleCarryAdder creates a bits wide ripple-carry adder circuit
// with inputs a and b, and outputs s and cout.
func NewRippleCarryAdder(bits int) (*Circuit, error) {
	if bits <= 0 {
		return nil, fmt.Errorf("invalid adder width %d", bits)
	}
	b, err := NewBuilder(IO{
		{
			Name: "a",
			Size: bits,
		},
		{
			Name: "b",
			Size: bits,
		},
	}, IO{
		{
			Name: "s",
			Size: bits,
		},
		{
			Name: "cout",
			Size: 1,
		},
	})
	if err != nil {
		return nil, err
	}
	// The output nets s[0..bits) and cout are contiguous.
	z := make([]*Net, 0, bits+1)
	z = append(z, b.Output(0)...)
	z = append(z, b.Output(1)...)
	err = NewAdder(b, b.Input(0), b.Input(1), z)
	if err != nil {
		return nil, err
	}
	return b.Compile()
}
