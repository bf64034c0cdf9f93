//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// Operation specifies gate function.
type Operation byte

// Gate functions.
const (
	XOR Operation = iota
	XNOR
	AND
	OR
	INV
)

// Stats holds statistics about circuit operations.
type Stats [INV + 1]int

// Add adds the argument statistics to this statistics object.
func (stats *Stats) Add(o Stats) {
	for i := XOR; i <= INV; i++ {
		stats[i] += o[i]
	}
}

// Count returns the number of gates in the statistics.
func (stats Stats) Count() int {
	var result int
	for _, v := range stats {
		result += v
	}
	return result
}

func (op Operation) String() string {
	switch op {
	case XOR:
		return "XOR"
	case XNOR:
		return "XNOR"
	case AND:
		return "AND"
	case OR:
		return "OR"
	case INV:
		return "INV"
	default:
		return fmt.Sprintf("{Operation %d}", op)
	}
}

// Eval evaluates the operation on the argument values. The b value
// is ignored for INV.
func (op Operation) Eval(a, b bool) (bool, error) {
	switch op {
	case XOR:
		return a != b, nil
	case XNOR:
		return a == b, nil
	case AND:
		return a && b, nil
	case OR:
		return a || b, nil
	case INV:
		return !a, nil
	default:
		return false, fmt.Errorf("invalid gate %s", op)
	}
}

// IOArg describes a circuit input or output argument.
type IOArg struct {
	Name string
	Size int
}

func (io IOArg) String() string {
	return fmt.Sprintf("%s:%d", io.Name, io.Size)
}

// IO specifies circuit input and output arguments.
type IO []IOArg

// Size computes the size of the circuit input and output arguments in
// bits.
func (io IO) Size() int {
	var sum int
	for _, a := range io {
		sum += a.Size
	}
	return sum
}

func (io IO) String() string {
	var str = ""
	for i, a := range io {
		if i > 0 {
			str += ", "
		}
		str += a.String()
	}
	return str
}

// Circuit specifies a boolean circuit. Input wires are numbered
// first and output wires last.
type Circuit struct {
	NumGates int
	NumWires int
	Inputs   IO
	Outputs  IO
	Gates    []Gate
	Stats    Stats
}

func (c *Circuit) String() string {
	var stats string

	for k := XOR; k <= INV; k++ {
		v := c.Stats[k]
		if len(stats) > 0 {
			stats += " "
		}
		stats += fmt.Sprintf("%s=%d", k, v)
	}
	return fmt.Sprintf("#gates=%d (%s) #w=%d", c.NumGates, stats, c.NumWires)
}

// Cost computes the relative hardware cost of the circuit.
func (c *Circuit) Cost() int {
	return (c.Stats[AND]+c.Stats[OR])*4 + c.Stats[INV]*2 +
		(c.Stats[XOR]+c.Stats[XNOR])*2
}

// Gate specifies a boolean gate.
type Gate struct {
	Input0 Wire
	Input1 Wire
	Output Wire
	Op     Operation
}

func (g Gate) String() string {
	return fmt.Sprintf("%v %v %v", g.Inputs(), g.Op, g.Output)
}

// Inputs returns gate input wires.
func (g Gate) Inputs() []Wire {
	switch g.Op {
	case XOR, XNOR, AND, OR:
		return []Wire{g.Input0, g.Input1}
	case INV:
		return []Wire{g.Input0}
	default:
		panic(fmt.Sprintf("unsupported gate type %s", g.Op))
	}
}

// Wire specifies a wire ID.
type Wire uint32

// ID returns the wire ID as integer.
func (w Wire) ID() int {
	return int(w)
}

func (w Wire) String() string {
	return fmt.Sprintf("w%d", w)
}
