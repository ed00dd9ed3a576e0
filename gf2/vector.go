/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package gf2

import (
	"math/bits"

	"github.com/pkg/errors"
	"github.com/xlab-si/go-mceliece/internal"
	"github.com/xlab-si/go-mceliece/permutation"
	"github.com/xlab-si/go-mceliece/rng"
)

const wordBits = 64

// Vector is a fixed-length element of GF(2)^n, packed into 64-bit
// words. Bit i lives in word i/64 at bit position i%64.
type Vector struct {
	n     int
	words []uint64
}

// NewVector returns the zero vector of length n.
func NewVector(n int) Vector {
	return Vector{n: n, words: make([]uint64, wordCount(n))}
}

// NewRandomVector returns a vector of length n with each bit sampled
// independently and uniformly from source.
func NewRandomVector(n int, source rng.Source) Vector {
	v := NewVector(n)
	for i := 0; i < n; i++ {
		if source.Intn(2) == 1 {
			v.SetBit(i, 1)
		}
	}
	return v
}

// VectorFromBits builds a Vector from a slice of 0/1 values, one per
// position. Any nonzero entry is treated as 1.
func VectorFromBits(bits []int) Vector {
	v := NewVector(len(bits))
	for i, b := range bits {
		if b != 0 {
			v.SetBit(i, 1)
		}
	}
	return v
}

func wordCount(n int) int {
	return (n + wordBits - 1) / wordBits
}

// Len returns the number of bits in v.
func (v Vector) Len() int {
	return v.n
}

// Bit returns the bit at position i as 0 or 1.
func (v Vector) Bit(i int) int {
	return int((v.words[i/wordBits] >> uint(i%wordBits)) & 1)
}

// SetBit sets the bit at position i to b (0 or 1).
func (v Vector) SetBit(i int, b int) {
	mask := uint64(1) << uint(i%wordBits)
	if b&1 == 1 {
		v.words[i/wordBits] |= mask
	} else {
		v.words[i/wordBits] &^= mask
	}
}

// Clone returns an independent copy of v.
func (v Vector) Clone() Vector {
	words := make([]uint64, len(v.words))
	copy(words, v.words)
	return Vector{n: v.n, words: words}
}

// Add returns the bitwise XOR of v and other (GF(2) vector addition).
func (v Vector) Add(other Vector) (Vector, error) {
	if v.n != other.n {
		return Vector{}, errors.Wrap(internal.ErrDimensionMismatch, "gf2: Vector.Add")
	}
	out := NewVector(v.n)
	for i := range out.words {
		out.words[i] = v.words[i] ^ other.words[i]
	}
	return out, nil
}

// dotParity returns the parity of the bitwise AND of v and other,
// i.e. their GF(2) dot product. Both vectors must be the same length.
func (v Vector) dotParity(other Vector) int {
	acc := 0
	for i := range v.words {
		acc ^= bits.OnesCount64(v.words[i] & other.words[i])
	}
	return acc & 1
}

// Weight returns the Hamming weight of v (its population count).
func (v Vector) Weight() int {
	w := 0
	for _, word := range v.words {
		w += bits.OnesCount64(word)
	}
	return w
}

// Parity returns the Hamming weight of v modulo 2.
func (v Vector) Parity() int {
	return v.Weight() & 1
}

// Equal reports whether v and other have the same length and bits.
func (v Vector) Equal(other Vector) bool {
	if v.n != other.n {
		return false
	}
	for i := range v.words {
		if v.words[i] != other.words[i] {
			return false
		}
	}
	return true
}

// Slice returns the sub-vector v[lo:hi).
func (v Vector) Slice(lo, hi int) Vector {
	out := NewVector(hi - lo)
	for i := lo; i < hi; i++ {
		out.SetBit(i-lo, v.Bit(i))
	}
	return out
}

// Concat returns the concatenation of vs, in order.
func Concat(vs ...Vector) Vector {
	total := 0
	for _, v := range vs {
		total += v.n
	}
	out := NewVector(total)
	offset := 0
	for _, v := range vs {
		for i := 0; i < v.n; i++ {
			out.SetBit(offset+i, v.Bit(i))
		}
		offset += v.n
	}
	return out
}

// Permute returns v' such that v'[i] = v[p[i]], for p a permutation of
// {0,...,v.Len()-1}.
func (v Vector) Permute(p permutation.Permutation) (Vector, error) {
	if len(p) != v.n {
		return Vector{}, errors.Wrap(internal.ErrDimensionMismatch, "gf2: Vector.Permute")
	}
	out := NewVector(v.n)
	for i, pi := range p {
		out.SetBit(i, v.Bit(pi))
	}
	return out, nil
}

// Bits unpacks v into a slice of 0/1 values, one per position.
func (v Vector) Bits() []int {
	out := make([]int, v.n)
	for i := range out {
		out[i] = v.Bit(i)
	}
	return out
}

// Pack packs v into ceil(n/8) bytes, bit i going to bit i%8 of byte
// i/8 (little-endian within the byte). Packing the empty vector
// yields zero bytes.
func (v Vector) Pack() []byte {
	out := make([]byte, (v.n+7)/8)
	for i := 0; i < v.n; i++ {
		if v.Bit(i) == 1 {
			out[i/8] |= 1 << uint(i%8)
		}
	}
	return out
}

// UnpackVector unpacks the first length bits of data, inverting Pack.
// If data covers fewer than length bits, the result is truncated to
// however many bits data actually provides.
func UnpackVector(data []byte, length int) Vector {
	n := length
	if avail := len(data) * 8; avail < n {
		n = avail
	}
	v := NewVector(n)
	for i := 0; i < n; i++ {
		if (data[i/8]>>uint(i%8))&1 == 1 {
			v.SetBit(i, 1)
		}
	}
	return v
}
