//
// multiplier_test.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package multiplier

import (
	"fmt"
	"math/big"
	"math/rand"
	"testing"

	"github.com/markkurossi/twolevel/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stepTrace struct {
	Register string
	Shift    int
	Pp       string
	Product  string
	Consumed string
	Done     bool
}

func trace(result *Result) []stepTrace {
	var steps []stepTrace
	for _, s := range result.Steps {
		steps = append(steps, stepTrace{
			Register: s.Register.String(),
			Shift:    s.Shift,
			Pp:       s.PartialProduct.String(),
			Product:  s.Product.String(),
			Consumed: s.Consumed.String(),
			Done:     s.Done,
		})
	}
	return steps
}

var defaultTrace = []stepTrace{
	{"10001011", 7, "0010110110000000", "0010110110000000", "10000000", false},
	{"00001011", 3, "0000001011011000", "0011000001011000", "1000", false},
	{"00000011", 1, "0000000010110110", "0011000100001110", "10", false},
	{"00000001", 0, "0000000001011011", "0011000101101001", "1", true},
}

func modes() []Multiplier {
	return []Multiplier{
		{},
		{TwoLevel: true},
		{Netlist: true},
		{TwoLevel: true, Netlist: true},
	}
}

func withMode(m *Multiplier, mode Multiplier) *Multiplier {
	m.TwoLevel = mode.TwoLevel
	m.Netlist = mode.Netlist
	return m
}

func TestUnsignedDefault(t *testing.T) {
	for _, mode := range modes() {
		name := fmt.Sprintf("twolevel=%v,netlist=%v", mode.TwoLevel, mode.Netlist)
		t.Run(name, func(t *testing.T) {
			m := withMode(New(bitvec.MustParse("10001011"),
				bitvec.MustParse("01011011")), mode)

			result, err := m.Multiply()
			require.NoError(t, err)

			assert.Equal(t, "0011000101101001", result.Product.String())
			assert.Equal(t, int64(12649), result.Product.Int().Int64())
			assert.Equal(t, "0", result.Sign.String())
			assert.Equal(t, 4, result.Iterations)
			assert.Equal(t, 4, result.SetBits)
			assert.Equal(t, defaultTrace, trace(result))
		})
	}
}

func TestSignedDefault(t *testing.T) {
	m, err := SplitSigned(bitvec.MustParse("10001011"),
		bitvec.MustParse("01011011"))
	require.NoError(t, err)

	assert.Equal(t, "1", m.MultiplierSign.String())
	assert.Equal(t, "0001011", m.Multiplier.String())
	assert.Equal(t, "0", m.MultiplicandSign.String())
	assert.Equal(t, "1011011", m.Multiplicand.String())

	result, err := m.Multiply()
	require.NoError(t, err)

	assert.Equal(t, "00001111101001", result.Product.String())
	assert.Equal(t, int64(1001), result.Product.Int().Int64())
	assert.Equal(t, "1", result.Sign.String())
	assert.Equal(t, 3, result.Iterations)
	assert.Equal(t, 3, result.SetBits)

	shifts := make([]int, 0, len(result.Steps))
	for _, s := range result.Steps {
		shifts = append(shifts, s.Shift)
	}
	assert.Equal(t, []int{3, 1, 0}, shifts)
}

func TestSign(t *testing.T) {
	tests := []struct {
		sMr, sMd string
		want     string
	}{
		{"0", "0", "0"},
		{"0", "1", "1"},
		{"1", "0", "1"},
		{"1", "1", "0"},
	}
	for _, test := range tests {
		m, err := NewSigned(bitvec.MustParse(test.sMr), bitvec.MustParse("1"),
			bitvec.MustParse(test.sMd), bitvec.MustParse("1"))
		require.NoError(t, err)
		assert.Equal(t, test.want, m.Sign().String(),
			"%s^%s", test.sMr, test.sMd)
	}

	_, err := NewSigned(bitvec.MustParse("01"), bitvec.MustParse("1"),
		bitvec.MustParse("0"), bitvec.MustParse("1"))
	assert.Error(t, err)

	_, err = NewSigned(bitvec.MustParse("0"), bitvec.MustParse("1"),
		bitvec.MustParse(""), bitvec.MustParse("1"))
	assert.Error(t, err)

	_, err = SplitSigned(bitvec.MustParse(""), bitvec.MustParse("1"))
	assert.Error(t, err)
}

func TestZeroMultiplier(t *testing.T) {
	for _, mode := range modes() {
		m := withMode(New(bitvec.MustParse("0000"),
			bitvec.MustParse("1111")), mode)

		result, err := m.Multiply()
		require.NoError(t, err)
		assert.Equal(t, 0, result.Iterations)
		assert.Empty(t, result.Steps)
		assert.Equal(t, "00000000", result.Product.String())
	}

	result, err := New(bitvec.MustParse(""), bitvec.MustParse("")).Multiply()
	require.NoError(t, err)
	assert.Equal(t, 0, result.Iterations)
	assert.Equal(t, 0, result.Product.Len())
}

func TestUnequalLengths(t *testing.T) {
	m := New(bitvec.MustParse("101"), bitvec.MustParse("110111"))
	result, err := m.Multiply()
	require.NoError(t, err)

	assert.Equal(t, 9, result.Product.Len())
	assert.Equal(t, int64(5*55), result.Product.Int().Int64())
	assert.Equal(t, 2, result.Iterations)
	assert.Equal(t, "100", result.Steps[0].Consumed.String())
	assert.Equal(t, "1", result.Steps[1].Consumed.String())
}

func TestReentrant(t *testing.T) {
	m := New(bitvec.MustParse("10001011"), bitvec.MustParse("01011011"))

	r1, err := m.Multiply()
	require.NoError(t, err)
	r2, err := m.Multiply()
	require.NoError(t, err)

	assert.Equal(t, trace(r1), trace(r2))
	assert.Equal(t, "10001011", m.Multiplier.String())
}

func TestRandomProducts(t *testing.T) {
	rnd := rand.New(rand.NewSource(42))

	for i := 0; i < 200; i++ {
		mrLen := 1 + rnd.Intn(40)
		mdLen := 1 + rnd.Intn(40)
		mr := bitvec.FromBig(new(big.Int).Rand(rnd,
			new(big.Int).Lsh(big.NewInt(1), uint(mrLen))), mrLen)
		md := bitvec.FromBig(new(big.Int).Rand(rnd,
			new(big.Int).Lsh(big.NewInt(1), uint(mdLen))), mdLen)

		expected := new(big.Int).Mul(mr.Int(), md.Int())

		var reference []stepTrace
		for _, mode := range modes() {
			m := withMode(New(mr, md), mode)
			result, err := m.Multiply()
			require.NoError(t, err)

			require.Equal(t, mrLen+mdLen, result.Product.Len())
			require.Zero(t, expected.Cmp(result.Product.Int()),
				"%s*%s: %s", mr, md, result.Product)
			assert.Equal(t, mr.CountSetBits(), result.Iterations)

			steps := trace(result)
			if reference == nil {
				reference = steps
			} else {
				assert.Equal(t, reference, steps, "%s*%s", mr, md)
			}

			// Each iteration consumes exactly one set digit of
			// the register.
			prev := -1
			for idx, s := range result.Steps {
				setBits := s.Register.CountSetBits()
				assert.Equal(t, mr.CountSetBits()-idx, setBits)
				if prev >= 0 {
					assert.Less(t, s.Shift, prev)
				}
				prev = s.Shift

				and := s.Register.Bools().And(s.Consumed.Bools())
				expectedAnd, _ := s.Consumed.PadTo(s.Register.Len())
				assert.Equal(t, expectedAnd.String(), and.Vector().String())
				assert.Equal(t, idx == len(result.Steps)-1, s.Done)
			}
		}
	}
}
