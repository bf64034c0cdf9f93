//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package bitvec

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	v, err := Parse("10001011")
	require.NoError(t, err)
	assert.Equal(t, 8, v.Len())
	assert.Equal(t, "10001011", v.String())
	assert.Equal(t, int64(139), v.Int().Int64())

	empty, err := Parse("")
	require.NoError(t, err)
	assert.Equal(t, 0, empty.Len())
	assert.Equal(t, int64(0), empty.Int().Int64())

	_, err = Parse("0102")
	assert.Error(t, err)
}

func TestZeros(t *testing.T) {
	assert.Equal(t, "0000", Zeros(4).String())
	assert.Equal(t, 0, Zeros(0).Len())
	assert.Equal(t, 0, Zeros(-3).Len())
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in      string
		n       int
		want    string
		resized bool
	}{
		{"10001011", 4, "1011", true},
		{"10001011", 0, "", true},
		{"10001011", 7, "0001011", true},
		{"10001011", 8, "10001011", false},
		{"10001011", 12, "10001011", false},
		{"10001011", -1, "10001011", false},
		{"", 0, "", false},
	}
	for _, test := range tests {
		v := MustParse(test.in)
		got, ok := v.Truncate(test.n)
		assert.Equal(t, test.resized, ok, "%s.Truncate(%d)", test.in, test.n)
		assert.Equal(t, test.want, got.String(),
			"%s.Truncate(%d)", test.in, test.n)
		assert.Equal(t, len(test.want), got.Len())

		// The receiver is never modified.
		assert.Equal(t, test.in, v.String())
	}
}

func TestPadTo(t *testing.T) {
	tests := []struct {
		in      string
		n       int
		want    string
		resized bool
	}{
		{"1011", 8, "00001011", true},
		{"1011", 5, "01011", true},
		{"1011", 4, "1011", false},
		{"1011", 2, "1011", false},
		{"", 3, "000", true},
	}
	for _, test := range tests {
		v := MustParse(test.in)
		got, ok := v.PadTo(test.n)
		assert.Equal(t, test.resized, ok, "%s.PadTo(%d)", test.in, test.n)
		assert.Equal(t, test.want, got.String())
		assert.Equal(t, test.in, v.String())
	}

	got, ok := MustParse("11").PadWith(3)
	assert.True(t, ok)
	assert.Equal(t, "00011", got.String())

	got, ok = MustParse("11").PadWith(0)
	assert.False(t, ok)
	assert.Equal(t, "11", got.String())
}

func TestAtSet(t *testing.T) {
	v := MustParse("100")

	bit, err := v.At(0)
	require.NoError(t, err)
	assert.True(t, bit)

	bit, err = v.At(2)
	require.NoError(t, err)
	assert.False(t, bit)

	_, err = v.At(3)
	var indexErr *IndexError
	require.True(t, errors.As(err, &indexErr))
	assert.Equal(t, 3, indexErr.Index)
	assert.Equal(t, 3, indexErr.Length)

	_, err = v.At(-1)
	assert.Error(t, err)

	v2, err := v.Set(2, true)
	require.NoError(t, err)
	assert.Equal(t, "101", v2.String())
	assert.Equal(t, "100", v.String())

	_, err = v.Set(5, true)
	require.True(t, errors.As(err, &indexErr))
}

func TestConcat(t *testing.T) {
	a := MustParse("10")
	b := MustParse("011")

	assert.Equal(t, "10011", a.Concat(b).String())
	assert.Equal(t, "01110", a.Prepend(b).String())
	assert.Equal(t, "10", a.String())
	assert.Equal(t, "011", b.String())
}

func TestCountSetBits(t *testing.T) {
	assert.Equal(t, 4, MustParse("10001011").CountSetBits())
	assert.Equal(t, 5, MustParse("01011011").CountSetBits())
	assert.Equal(t, 0, MustParse("0000").CountSetBits())
	assert.Equal(t, 0, MustParse("").CountSetBits())
}

func TestInt(t *testing.T) {
	assert.Equal(t, int64(91), MustParse("01011011").Int().Int64())
	assert.Equal(t, int64(12649), MustParse("0011000101101001").Int().Int64())

	// Wider than any machine word.
	wide := MustParse("1").Concat(Zeros(300))
	want := new(big.Int).Lsh(big.NewInt(1), 300)
	assert.Equal(t, 0, want.Cmp(wide.Int()))
}

func TestFromInts(t *testing.T) {
	assert.Equal(t, "10001011", FromUint64(139, 8).String())
	assert.Equal(t, "1011", FromUint64(139, 4).String())
	assert.Equal(t, "0000000001011011", FromUint64(91, 16).String())
	assert.Equal(t, "0011000101101001",
		FromBig(big.NewInt(12649), 16).String())
}

func TestUint256(t *testing.T) {
	u, ok := MustParse("0011000101101001").Uint256()
	require.True(t, ok)
	assert.Equal(t, uint64(12649), u.Uint64())

	// Leading zeros do not count against the 256-bit limit.
	u, ok = Zeros(400).Concat(MustParse("11")).Uint256()
	require.True(t, ok)
	assert.Equal(t, uint64(3), u.Uint64())

	_, ok = MustParse("1").Concat(Zeros(256)).Uint256()
	assert.False(t, ok)
}

func TestSplitSign(t *testing.T) {
	sign, mag, err := MustParse("10001011").SplitSign()
	require.NoError(t, err)
	assert.Equal(t, "1", sign.String())
	assert.Equal(t, "0001011", mag.String())

	sign, mag, err = MustParse("0").SplitSign()
	require.NoError(t, err)
	assert.Equal(t, "0", sign.String())
	assert.Equal(t, 0, mag.Len())

	_, _, err = MustParse("").SplitSign()
	assert.Error(t, err)
}

func TestBoolsRoundTrip(t *testing.T) {
	for _, digits := range []string{
		"", "0", "1", "10001011", "01011011", "0000", "1111111100000001",
	} {
		v := MustParse(digits)
		assert.True(t, v.Equal(FromBools(v.Bools())), "round trip %q", digits)
		assert.Equal(t, v.Len(), v.Bools().Len())
	}
}
