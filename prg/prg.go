//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

// Package prg implements a deterministic pseudorandom operand
// generator. The generator expands its seed into a ChaCha20 keystream
// so the same seed always yields the same operands.
package prg

import (
	"encoding/binary"
	"math/big"

	"github.com/markkurossi/twolevel/bitvec"
	"golang.org/x/crypto/chacha20"
)

// PRG implements a ChaCha20 keystream generator.
type PRG struct {
	cipher *chacha20.Cipher
}

// New creates a new generator for the seed.
func New(seed int64) *PRG {
	var seedBytes [8]byte
	binary.BigEndian.PutUint64(seedBytes[:], uint64(seed))

	key := make([]byte, chacha20.KeySize)
	for i := range key {
		key[i] = seedBytes[i%len(seedBytes)]
	}
	nonce := make([]byte, chacha20.NonceSize)

	// Key and nonce sizes are always valid.
	cipher, err := chacha20.NewUnauthenticatedCipher(key, nonce)
	if err != nil {
		panic(err)
	}
	return &PRG{
		cipher: cipher,
	}
}

// Read fills p with keystream bytes. It implements io.Reader and never
// fails.
func (prg *PRG) Read(p []byte) (int, error) {
	for i := range p {
		p[i] = 0
	}
	prg.cipher.XORKeyStream(p, p)
	return len(p), nil
}

// Uint64 returns a pseudorandom 64-bit value.
func (prg *PRG) Uint64() uint64 {
	var buf [8]byte
	prg.Read(buf[:])
	return binary.BigEndian.Uint64(buf[:])
}

// Intn returns a pseudorandom value in [0, n). It panics if n <= 0.
func (prg *PRG) Intn(n int) int {
	if n <= 0 {
		panic("prg: invalid argument to Intn")
	}
	return int(prg.Uint64() % uint64(n))
}

// Vector returns a width digits long pseudorandom vector.
func (prg *PRG) Vector(width int) bitvec.Vector {
	if width <= 0 {
		return bitvec.Zeros(0)
	}
	buf := make([]byte, (width+7)/8)
	prg.Read(buf)
	return bitvec.FromBig(new(big.Int).SetBytes(buf), width)
}
