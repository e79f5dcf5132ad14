// Copyright 2024 The Erigon Authors
// This file is part of Erigon.
//
// Erigon is free software: you can redistribute it and/or modify
// it under the terms of the GNU Lesser General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Erigon is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE. See the
// GNU Lesser General Public License for more details.
//
// You should have received a copy of the GNU Lesser General Public License
// along with Erigon. If not, see <http://www.gnu.org/licenses/>.

// Package xmath holds the small bit-level helpers shared by the split-ordered
// FIB implementation: reversal, power-of-two rounding and the like.
package xmath

import "math/bits"

// MaxUint32 is the largest value representable in 32 bits.
const MaxUint32 = 1<<32 - 1

// ReverseBits32 reverses the bit order of v, so the most significant bit of
// v becomes the least significant bit of the result and vice versa.
//
// This is the key transform behind split-ordered hashing (Shalev & Shavit):
// reversing the hash turns "append a bit to the bucket index" into
// "prepend a bit to the sort key", so doubling the bucket count only ever
// inserts new split points into the existing order, never reorders it.
func ReverseBits32(v uint32) uint32 {
	return bits.Reverse32(v)
}

// IsPowerOfTwo reports whether n is a positive power of two.
func IsPowerOfTwo(n uint32) bool {
	return n != 0 && n&(n-1) == 0
}

// NextPowerOfTwo returns the smallest power of two >= n. n must be >= 1.
func NextPowerOfTwo(n uint32) uint32 {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len32(n-1)
}

// ParentBucket returns the bucket whose sentinel anchors bucket b's sentinel
// chain: b with its highest set bit cleared. Bucket 0 is its own parent and
// must be handled by the caller (it is the list head, created at table
// initialisation rather than recursively inserted).
func ParentBucket(b uint32) uint32 {
	if b == 0 {
		return 0
	}
	return b &^ (1 << (bits.Len32(b) - 1))
}
