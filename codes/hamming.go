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

package codes

import (
	"github.com/pkg/errors"
	"github.com/xlab-si/go-mceliece/gf2"
	"github.com/xlab-si/go-mceliece/internal"
)

const (
	hammingN = 15
	hammingK = 11
	hammingT = 1
)

// parityPos holds the 1-indexed parity-bit positions of the (15,11)
// Hamming code: the powers of two up to 8.
var parityPos = [4]int{1, 2, 4, 8}

// dataPos holds the 1-indexed data-bit positions: the 11 positions in
// [1,15] that are not a power of two.
var dataPos = func() [hammingK]int {
	var pos [hammingK]int
	idx := 0
	for i := 1; i <= hammingN; i++ {
		isParity := false
		for _, p := range parityPos {
			if i == p {
				isParity = true
				break
			}
		}
		if !isParity {
			pos[idx] = i
			idx++
		}
	}
	return pos
}()

// Hamming is the (15,11,1) single-error-correcting Hamming code.
type Hamming struct {
	generator gf2.Matrix
}

// NewHamming constructs the (15,11) Hamming code.
func NewHamming() *Hamming {
	h := &Hamming{}
	h.generator = baseGenerator(h)
	return h
}

func (h *Hamming) N() int { return hammingN }
func (h *Hamming) K() int { return hammingK }
func (h *Hamming) T() int { return hammingT }

// Generator returns the 11x15 generator matrix.
func (h *Hamming) Generator() gf2.Matrix {
	return h.generator
}

// EncodeBlock places the 11 message bits at the data positions, then
// sets each parity bit to the XOR of all positions whose (1-indexed)
// binary representation has the corresponding power-of-two bit set.
func (h *Hamming) EncodeBlock(msg gf2.Vector) (gf2.Vector, error) {
	if msg.Len() != hammingK {
		return gf2.Vector{}, errors.Wrapf(internal.ErrInvalidLength, "codes: Hamming.EncodeBlock wants length %d", hammingK)
	}
	// code is 1-indexed: code[0] is unused.
	code := make([]int, hammingN+1)
	for i, pos := range dataPos {
		code[pos] = msg.Bit(i)
	}
	for _, pbit := range []uint{0, 1, 2, 3} {
		p := 0
		for i := 1; i <= hammingN; i++ {
			if i&(1<<pbit) != 0 {
				p ^= code[i]
			}
		}
		code[1<<pbit] = p
	}
	out := gf2.NewVector(hammingN)
	for i := 1; i <= hammingN; i++ {
		out.SetBit(i-1, code[i])
	}
	return out, nil
}

// DecodeBlock computes the four syndrome bits and, if nonzero, flips
// the indicated position before reading the message back out of the
// data positions. The syndrome is always either zero (word accepted
// as-is) or a valid 1-indexed position to flip, so success is true
// whenever DecodeBlock is given a length-N input.
func (h *Hamming) DecodeBlock(r gf2.Vector) (gf2.Vector, bool, error) {
	if r.Len() != hammingN {
		return gf2.Vector{}, false, errors.Wrapf(internal.ErrInvalidLength, "codes: Hamming.DecodeBlock wants length %d", hammingN)
	}
	code := make([]int, hammingN+1)
	for i := 1; i <= hammingN; i++ {
		code[i] = r.Bit(i - 1)
	}

	syn := 0
	for pbit := uint(0); pbit < 4; pbit++ {
		s := 0
		for i := 1; i <= hammingN; i++ {
			if i&(1<<pbit) != 0 {
				s ^= code[i]
			}
		}
		syn |= s << pbit
	}

	if syn != 0 {
		code[syn] ^= 1
	}

	msg := gf2.NewVector(hammingK)
	for i, pos := range dataPos {
		msg.SetBit(i, code[pos])
	}
	return msg, true, nil
}

// baseGenerator derives the 11x15 generator matrix by encoding each of
// the 11 unit messages.
func baseGenerator(h *Hamming) gf2.Matrix {
	g := gf2.NewMatrix(hammingK, hammingN)
	for i := 0; i < hammingK; i++ {
		unit := gf2.NewVector(hammingK)
		unit.SetBit(i, 1)
		row, err := h.EncodeBlock(unit)
		if err != nil {
			panic(err)
		}
		g[i] = row
	}
	return g
}
