//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package bitvec

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolViewSnapshot(t *testing.T) {
	v := MustParse("1010")
	view := v.Bools()

	require.NoError(t, view.Set(1, true))
	assert.Equal(t, "1110", view.Vector().String())
	assert.Equal(t, "1010", v.String())

	// The vector created from the view is independent of it.
	w := view.Vector()
	require.NoError(t, view.Set(0, false))
	assert.Equal(t, "1110", w.String())
}

func TestBoolViewIndex(t *testing.T) {
	view := MustParse("01").Bools()

	bit, err := view.At(1)
	require.NoError(t, err)
	assert.True(t, bit)

	_, err = view.At(2)
	var indexErr *IndexError
	assert.True(t, errors.As(err, &indexErr))

	assert.Error(t, view.Set(-1, true))
}

func TestReversed(t *testing.T) {
	view := MustParse("1100").Bools()
	assert.Equal(t, "0011", view.Reversed().Vector().String())
	assert.Equal(t, "1100", view.Vector().String())
	assert.True(t, view.Equal(view.Reversed().Reversed()))
}

func TestAllZero(t *testing.T) {
	assert.True(t, MustParse("0000").Bools().AllZero())
	assert.True(t, MustParse("").Bools().AllZero())
	assert.False(t, MustParse("0010").Bools().AllZero())
}

func TestXor(t *testing.T) {
	tests := []struct {
		a, b string
		want string
	}{
		{"10001011", "10000000", "00001011"},
		{"10001011", "1000", "10000011"},
		{"1", "11110", "11111"},
		{"", "101", "101"},
		{"0110", "0110", "0000"},
	}
	for _, test := range tests {
		a := MustParse(test.a).Bools()
		b := MustParse(test.b).Bools()
		assert.Equal(t, test.want, a.Xor(b).Vector().String(),
			"%s xor %s", test.a, test.b)
		assert.Equal(t, test.want, b.Xor(a).Vector().String(),
			"%s xor %s", test.b, test.a)

		// Operands are not modified.
		assert.Equal(t, test.a, a.Vector().String())
		assert.Equal(t, test.b, b.Vector().String())
	}
}

func TestAnd(t *testing.T) {
	a := MustParse("10001011").Bools()
	b := MustParse("1000").Bools()
	assert.Equal(t, "00001000", a.And(b).Vector().String())
	assert.Equal(t, "00001000", b.And(a).Vector().String())
}

func TestBoolViewString(t *testing.T) {
	assert.Equal(t, "[ true false ]", MustParse("10").Bools().String())
	assert.Equal(t, "[ ]", NewBoolView().String())
	assert.Equal(t, "[ false ]", NewBoolView(false).String())
}
