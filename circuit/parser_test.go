//
// parser_test.go
//
// Copyright (c) 2019-2026 Markku Rossi
//
// All rights reserved.
//

package circuit

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var data = `1 3
2 1 1
1 1

2 1 0 1 2 AND
`

func TestParse(t *testing.T) {
	c, err := ParseBristol(strings.NewReader(data))
	require.NoError(t, err)

	assert.Equal(t, 1, c.NumGates)
	assert.Equal(t, 3, c.NumWires)
	assert.Equal(t, 2, c.Inputs.Size())
	assert.Equal(t, 1, c.Outputs.Size())
	assert.Equal(t, 1, c.Stats[AND])

	out, err := c.Compute([][]bool{{true}, {true}})
	require.NoError(t, err)
	assert.True(t, out[0][0])
}

func TestParseAdder(t *testing.T) {
	adder, err := NewRippleCarryAdder(4)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, adder.MarshalBristol(&buf))

	c, err := ParseBristol(&buf)
	require.NoError(t, err)
	assert.Equal(t, adder.Gates, c.Gates)
	assert.Equal(t, adder.Stats, c.Stats)

	out, err := c.Compute([][]bool{toBits(9, 4), toBits(8, 4)})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), fromBits(out[0]))
	assert.True(t, out[1][0])
}

func TestParseErrors(t *testing.T) {
	tests := []string{
		"",
		"1\n",
		"1 3\n2 1\n1 1\n",
		"1 3\n2 1 1\n1 1\n2 1 0 1 2 NAND\n",
		"1 3\n2 1 1\n1 1\n2 1 0 1 7 AND\n",
		"1 3\n2 1 1\n1 1\n1 1 0 2 AND\n",
		"2 3\n2 1 1\n1 1\n2 1 0 1 2 AND\n",
		"1 3\n2 1 1\n1 1\n2 1 0 x 2 AND\n",
	}
	for _, test := range tests {
		_, err := ParseBristol(strings.NewReader(test))
		assert.Error(t, err, "%q", test)
	}
}
