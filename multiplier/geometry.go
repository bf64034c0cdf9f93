//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package multiplier

import (
	"fmt"
	"math/bits"
)

// Geometry defines the two-level hardware layout for an N bit
// register. The register is split into K slices of Q bits. The coarse
// components operate on the slice index and the fine components
// within a slice.
type Geometry struct {
	N     int
	Log2N int
	Q     int
	Log2Q int
	K     int
	Log2K int
}

// NewGeometry creates the two-level geometry for a width bit
// register. The width is rounded up to the next power of two. Q is
// the least power of two greater than or equal to sqrt(N) and K is
// N/Q.
func NewGeometry(width int) Geometry {
	n := 1
	if width > 1 {
		n = 1 << bits.Len(uint(width-1))
	}
	log2n := bits.TrailingZeros(uint(n))
	log2q := (log2n + 1) / 2
	return Geometry{
		N:     n,
		Log2N: log2n,
		Q:     1 << log2q,
		Log2Q: log2q,
		K:     1 << (log2n - log2q),
		Log2K: log2n - log2q,
	}
}

func (g Geometry) String() string {
	return fmt.Sprintf("n=%d, q=%d, k=%d", g.N, g.Q, g.K)
}

// Split splits the bit position into its coarse slice index and fine
// offset within the slice.
func (g Geometry) Split(pos int) (coarse, fine int) {
	return pos >> g.Log2Q, pos & (g.Q - 1)
}
