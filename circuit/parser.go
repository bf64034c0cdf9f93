//
// parser.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
)

var reParts = regexp.MustCompile("\\s+")

var operations = map[string]Operation{
	"XOR":  XOR,
	"XNOR": XNOR,
	"AND":  AND,
	"OR":   OR,
	"INV":  INV,
}

// ParseBristol parses a circuit in the Bristol format. Inputs and
// outputs are named by their index.
func ParseBristol(in io.Reader) (*Circuit, error) {
	r := bufio.NewReader(in)

	// NumGates NumWires
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}
	if len(line) != 2 {
		return nil, fmt.Errorf("invalid 1st line: %v", line)
	}
	numGates, err := strconv.Atoi(line[0])
	if err != nil {
		return nil, err
	}
	numWires, err := strconv.Atoi(line[1])
	if err != nil {
		return nil, err
	}

	// NumInputs Size0 Size1...
	inputs, err := parseIO(r, "i")
	if err != nil {
		return nil, err
	}
	// NumOutputs Size0 Size1...
	outputs, err := parseIO(r, "o")
	if err != nil {
		return nil, err
	}
	if inputs.Size()+outputs.Size() > numWires {
		return nil, fmt.Errorf("%d wires for %d inputs and %d outputs",
			numWires, inputs.Size(), outputs.Size())
	}

	c := &Circuit{
		NumGates: numGates,
		NumWires: numWires,
		Inputs:   inputs,
		Outputs:  outputs,
	}

	for {
		line, err = readLine(r)
		if err != nil {
			if err == io.EOF {
				break
			}
			return nil, err
		}
		gate, err := parseGate(line, numWires)
		if err != nil {
			return nil, err
		}
		c.Gates = append(c.Gates, gate)
		c.Stats[gate.Op]++
	}
	if len(c.Gates) != numGates {
		return nil, fmt.Errorf("got %d gates, expected %d",
			len(c.Gates), numGates)
	}

	return c, nil
}

func parseIO(r *bufio.Reader, prefix string) (IO, error) {
	line, err := readLine(r)
	if err != nil {
		return nil, err
	}
	values, err := atoi(line)
	if err != nil {
		return nil, err
	}
	if len(values) == 0 || values[0] != len(values)-1 {
		return nil, fmt.Errorf("invalid IO line: %v", line)
	}
	var result IO
	for idx, size := range values[1:] {
		if size <= 0 {
			return nil, fmt.Errorf("invalid IO size %d", size)
		}
		result = append(result, IOArg{
			Name: fmt.Sprintf("%s%d", prefix, idx),
			Size: size,
		})
	}
	return result, nil
}

func parseGate(line []string, numWires int) (Gate, error) {
	var gate Gate

	if len(line) < 3 {
		return gate, fmt.Errorf("invalid gate: %v", line)
	}
	op, ok := operations[line[len(line)-1]]
	if !ok {
		return gate, fmt.Errorf("invalid operation '%s'", line[len(line)-1])
	}
	gate.Op = op

	values, err := atoi(line[:len(line)-1])
	if err != nil {
		return gate, err
	}
	n1 := values[0]
	n2 := values[1]
	if n2 != 1 || 2+n1+n2 != len(values) {
		return gate, fmt.Errorf("invalid gate: %v", line)
	}
	for _, w := range values[2:] {
		if w < 0 || w >= numWires {
			return gate, fmt.Errorf("invalid wire %d: %v", w, line)
		}
	}
	switch op {
	case INV:
		if n1 != 1 {
			return gate, fmt.Errorf("invalid INV gate: %v", line)
		}
		gate.Input0 = Wire(values[2])
	default:
		if n1 != 2 {
			return gate, fmt.Errorf("invalid %s gate: %v", op, line)
		}
		gate.Input0 = Wire(values[2])
		gate.Input1 = Wire(values[3])
	}
	gate.Output = Wire(values[len(values)-1])

	return gate, nil
}

func atoi(parts []string) ([]int, error) {
	var result []int
	for _, part := range parts {
		v, err := strconv.Atoi(part)
		if err != nil {
			return nil, err
		}
		result = append(result, v)
	}
	return result, nil
}

func readLine(r *bufio.Reader) ([]string, error) {
	for {
		line, err := r.ReadString('\n')
		if err != nil {
			if err == io.EOF && len(line) > 0 {
				err = nil
			} else {
				return nil, err
			}
		}
		var parts []string
		for _, part := range reParts.Split(line, -1) {
			if len(part) > 0 {
				parts = append(parts, part)
			}
		}
		if len(parts) > 0 {
			return parts, nil
		}
	}
}
