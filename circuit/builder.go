//
// builder.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// Net implements a wire under construction. Nets receive their wire
// IDs when the circuit is compiled.
type Net struct {
	id      Wire
	defined bool
	output  bool
}

// NewNet creates an undefined net.
func NewNet() *Net {
	return new(Net)
}

// MakeNets creates bits number of nets.
func MakeNets(bits int) []*Net {
	result := make([]*Net, bits)
	for i := 0; i < bits; i++ {
		result[i] = NewNet()
	}
	return result
}

type pendingGate struct {
	op Operation
	a  *Net
	b  *Net
	o  *Net
}

// Builder builds boolean circuits from gates connected with nets.
type Builder struct {
	Inputs     IO
	Outputs    IO
	InputNets  []*Net
	OutputNets []*Net
	gates      []pendingGate
	nextWireID Wire
	compiled   bool
}

// NewBuilder creates a new circuit builder for the specified circuit
// inputs and outputs.
func NewBuilder(inputs, outputs IO) (*Builder, error) {
	if inputs.Size() == 0 {
		return nil, fmt.Errorf("no inputs defined")
	}
	if outputs.Size() == 0 {
		return nil, fmt.Errorf("no outputs defined")
	}
	b := &Builder{
		Inputs:     inputs,
		Outputs:    outputs,
		InputNets:  MakeNets(inputs.Size()),
		OutputNets: MakeNets(outputs.Size()),
	}
	for _, n := range b.OutputNets {
		n.output = true
	}
	return b, nil
}

// Input returns the nets of the input argument idx.
func (b *Builder) Input(idx int) []*Net {
	return b.InputNets[offset(b.Inputs, idx):offset(b.Inputs, idx+1)]
}

// Output returns the nets of the output argument idx.
func (b *Builder) Output(idx int) []*Net {
	return b.OutputNets[offset(b.Outputs, idx):offset(b.Outputs, idx+1)]
}

func offset(io IO, idx int) int {
	var result int
	for i := 0; i < idx && i < len(io); i++ {
		result += io[i].Size
	}
	return result
}

// AddGate adds a binary gate o = op(a, b) into the circuit.
func (b *Builder) AddGate(op Operation, x, y, o *Net) {
	b.gates = append(b.gates, pendingGate{
		op: op,
		a:  x,
		b:  y,
		o:  o,
	})
}

// AddINV adds an inverter o = INV(i) into the circuit.
func (b *Builder) AddINV(i, o *Net) {
	b.gates = append(b.gates, pendingGate{
		op: INV,
		a:  i,
		o:  o,
	})
}

func (b *Builder) nextWire() Wire {
	ret := b.nextWireID
	b.nextWireID++
	return ret
}

// Compile assigns wire IDs and creates the circuit. Input wires are
// numbered first and output wires last. Gates must be added in
// topological order.
func (b *Builder) Compile() (*Circuit, error) {
	if b.compiled {
		return nil, fmt.Errorf("circuit already compiled")
	}
	b.compiled = true

	for _, n := range b.InputNets {
		n.defined = true
		n.id = b.nextWire()
	}

	for idx, g := range b.gates {
		if !g.a.defined || (g.op != INV && !g.b.defined) {
			return nil, fmt.Errorf("gate %d: %s input not defined", idx, g.op)
		}
		if g.o.defined {
			return nil, fmt.Errorf("gate %d: %s output already defined",
				idx, g.op)
		}
		g.o.defined = true
		if !g.o.output {
			g.o.id = b.nextWire()
		}
	}
	for idx, n := range b.OutputNets {
		if !n.defined {
			return nil, fmt.Errorf("output %d not defined", idx)
		}
		n.id = b.nextWire()
	}

	gates := make([]Gate, 0, len(b.gates))
	var stats Stats
	for _, g := range b.gates {
		gate := Gate{
			Input0: g.a.id,
			Output: g.o.id,
			Op:     g.op,
		}
		if g.op != INV {
			gate.Input1 = g.b.id
		}
		gates = append(gates, gate)
		stats[g.op]++
	}

	return &Circuit{
		NumGates: len(gates),
		NumWires: int(b.nextWireID),
		Inputs:   b.Inputs,
		Outputs:  b.Outputs,
		Gates:    gates,
		Stats:    stats,
	}, nil
}
