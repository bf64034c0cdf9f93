//
// Copyright (c) 2020-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"fmt"
)

// Compute evaluates the circuit with the argument input values. Each
// input and output value is least significant bit first.
func (c *Circuit) Compute(inputs [][]bool) ([][]bool, error) {
	if len(inputs) != len(c.Inputs) {
		return nil, fmt.Errorf("invalid inputs: got %d, expected %d",
			len(inputs), len(c.Inputs))
	}

	wires := make([]bool, c.NumWires)

	var w int
	for idx, io := range c.Inputs {
		if len(inputs[idx]) != io.Size {
			return nil, fmt.Errorf("invalid input %s: got %d bits, expected %d",
				io.Name, len(inputs[idx]), io.Size)
		}
		copy(wires[w:], inputs[idx])
		w += io.Size
	}

	// Evaluate circuit.
	for _, gate := range c.Gates {
		result, err := gate.Op.Eval(wires[gate.Input0], wires[gate.Input1])
		if err != nil {
			return nil, err
		}
		wires[gate.Output] = result
	}

	// Construct outputs
	w = c.NumWires - c.Outputs.Size()
	var result [][]bool
	for _, io := range c.Outputs {
		r := make([]bool, io.Size)
		copy(r, wires[w:w+io.Size])
		w += io.Size
		result = append(result, r)
	}

	return result, nil
}
