//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

// Package multiplier implements a bit-level emulator of the two-level
// multiplier. The multiplier scans the multiplier register with a
// priority encoder, shifts the multiplicand by the position of the
// most significant set bit, accumulates the partial product with a
// ripple-carry adder, and clears the consumed bit from the register
// with the decoder output. The loop runs until the register is zero
// so the number of iterations is the number of set bits in the
// multiplier.
//
// The two-level variants of the encoder, decoder, and shifter follow
// the hardware structure: the register is split into K slices of Q
// bits and each component has a coarse stage operating on the slice
// index and a fine stage operating inside the slice.
package multiplier
