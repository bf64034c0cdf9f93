//
// vector.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package bitvec

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/holiman/uint256"
)

// IndexError reports an out-of-range digit access.
type IndexError struct {
	Index  int
	Length int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("bit index %d out of range [0:%d]", e.Index, e.Length)
}

// Vector implements an explicitly sized sequence of binary digits,
// most significant digit first. Vectors are values: all operations
// return new vectors and never share storage with their receiver.
type Vector struct {
	digits []bool
}

// Parse creates a vector from a string of '0' and '1' digits. The
// empty string yields a zero-length vector.
func Parse(digits string) (Vector, error) {
	result := make([]bool, len(digits))
	for idx, ch := range []byte(digits) {
		switch ch {
		case '0':
		case '1':
			result[idx] = true
		default:
			return Vector{}, fmt.Errorf("invalid binary digit '%c' at %d",
				ch, idx)
		}
	}
	return Vector{
		digits: result,
	}, nil
}

// MustParse is like Parse but panics if digits is not a binary
// string.
func MustParse(digits string) Vector {
	v, err := Parse(digits)
	if err != nil {
		panic(err)
	}
	return v
}

// Zeros creates a vector of bits zero digits.
func Zeros(bits int) Vector {
	if bits < 0 {
		bits = 0
	}
	return Vector{
		digits: make([]bool, bits),
	}
}

// FromUint64 creates a width digits long vector holding v. Bits of v
// above width are dropped.
func FromUint64(v uint64, width int) Vector {
	result := Zeros(width)
	for i := 0; i < width && i < 64; i++ {
		if v&(1<<i) != 0 {
			result.digits[width-i-1] = true
		}
	}
	return result
}

// FromBig creates a width digits long vector holding the absolute
// value of v. Bits of v above width are dropped.
func FromBig(v *big.Int, width int) Vector {
	result := Zeros(width)
	for i := 0; i < width; i++ {
		if v.Bit(i) == 1 {
			result.digits[width-i-1] = true
		}
	}
	return result
}

// Len returns the number of digits in the vector.
func (v Vector) Len() int {
	return len(v.digits)
}

func (v Vector) String() string {
	var sb strings.Builder
	for _, d := range v.digits {
		if d {
			sb.WriteRune('1')
		} else {
			sb.WriteRune('0')
		}
	}
	return sb.String()
}

// Equal tests if the vectors have the same length and digits.
func (v Vector) Equal(o Vector) bool {
	if len(v.digits) != len(o.digits) {
		return false
	}
	for idx, d := range v.digits {
		if d != o.digits[idx] {
			return false
		}
	}
	return true
}

func (v Vector) clone(extra int) []bool {
	result := make([]bool, len(v.digits), len(v.digits)+extra)
	copy(result, v.digits)
	return result
}

// Truncate keeps the newLength least significant digits of the
// vector. If newLength is not in the range [0, Len()), Truncate
// returns the vector unchanged and false.
func (v Vector) Truncate(newLength int) (Vector, bool) {
	if newLength < 0 || newLength >= len(v.digits) {
		return v, false
	}
	result := make([]bool, newLength)
	copy(result, v.digits[len(v.digits)-newLength:])
	return Vector{
		digits: result,
	}, true
}

// PadTo prepends zero digits so that the result is newLength digits
// long. If newLength is not greater than Len(), PadTo returns the
// vector unchanged and false.
func (v Vector) PadTo(newLength int) (Vector, bool) {
	if newLength <= len(v.digits) {
		return v, false
	}
	result := make([]bool, newLength)
	copy(result[newLength-len(v.digits):], v.digits)
	return Vector{
		digits: result,
	}, true
}

// PadWith prepends n zero digits to the vector.
func (v Vector) PadWith(n int) (Vector, bool) {
	return v.PadTo(len(v.digits) + n)
}

// At returns the digit at index i, counting from the most significant
// digit.
func (v Vector) At(i int) (bool, error) {
	if i < 0 || i >= len(v.digits) {
		return false, &IndexError{
			Index:  i,
			Length: len(v.digits),
		}
	}
	return v.digits[i], nil
}

// Set returns a copy of the vector where the digit at index i,
// counting from the most significant digit, is set to bit.
func (v Vector) Set(i int, bit bool) (Vector, error) {
	if i < 0 || i >= len(v.digits) {
		return v, &IndexError{
			Index:  i,
			Length: len(v.digits),
		}
	}
	result := v.clone(0)
	result[i] = bit
	return Vector{
		digits: result,
	}, nil
}

// Concat returns the digits of v followed by the digits of o.
func (v Vector) Concat(o Vector) Vector {
	result := v.clone(len(o.digits))
	result = append(result, o.digits...)
	return Vector{
		digits: result,
	}
}

// Prepend returns the digits of prefix followed by the digits of v.
func (v Vector) Prepend(prefix Vector) Vector {
	return prefix.Concat(v)
}

// CountSetBits returns the number of one digits.
func (v Vector) CountSetBits() int {
	var count int
	for _, d := range v.digits {
		if d {
			count++
		}
	}
	return count
}

// Int returns the unsigned value of the vector.
func (v Vector) Int() *big.Int {
	result := new(big.Int)
	for i := 0; i < len(v.digits); i++ {
		if v.digits[len(v.digits)-i-1] {
			result.SetBit(result, i, 1)
		}
	}
	return result
}

// Uint256 returns the unsigned value of the vector as a 256-bit
// integer. The boolean result is false if the value does not fit
// into 256 bits.
func (v Vector) Uint256() (*uint256.Int, bool) {
	result, overflow := uint256.FromBig(v.Int())
	if overflow {
		return nil, false
	}
	return result, true
}

// SplitSign splits the most significant digit off the vector. It
// returns the one-digit sign and the remaining magnitude digits.
func (v Vector) SplitSign() (sign, magnitude Vector, err error) {
	if len(v.digits) == 0 {
		return Vector{}, Vector{}, &IndexError{
			Index:  0,
			Length: 0,
		}
	}
	sign = Vector{
		digits: []bool{v.digits[0]},
	}
	magnitude = Vector{
		digits: append([]bool(nil), v.digits[1:]...),
	}
	return sign, magnitude, nil
}

// Bools returns the boolean view of the vector. The view holds a
// snapshot of the digits.
func (v Vector) Bools() BoolView {
	return BoolView{
		bits: v.clone(0),
	}
}

// FromBools creates a vector from the boolean view.
func FromBools(b BoolView) Vector {
	return b.Vector()
}
