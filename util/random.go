/*
 * FrankyGo - UCI chess engine in GO for learning purposes
 *
 * MIT License
 *
 * Copyright (c) 2018-2020 Frank Kopp
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package util holds small standalone helpers shared across packages that
// don't belong to any single domain layer.
package util

// Random is a xorshift64star pseudo-random number generator, based on
// original code written and dedicated to the public domain by Sebastiano
// Vigna (2014). It needs no warm-up, has a single 64-bit word of state and
// a period of 2^64-1 - good enough for deterministic Zobrist table seeding
// where reproducibility across runs matters more than cryptographic
// strength.
type Random struct {
	s uint64
}

// NewRandom creates a generator seeded with seed, which must not be zero.
func NewRandom(seed uint64) Random {
	if seed == 0 {
		panic("Random: seed must not be zero")
	}
	return Random{s: seed}
}

// Rand64 returns the next 64-bit pseudo-random number.
func (r *Random) Rand64() uint64 {
	r.s ^= r.s << 25
	r.s ^= r.s >> 27
	r.s ^= r.s >> 12
	return r.s * 2685821657736338717
}
