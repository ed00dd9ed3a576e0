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

package codes_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xlab-si/go-mceliece/codes"
	"github.com/xlab-si/go-mceliece/gf2"
)

// TestHammingEncodeLiteral is the concrete example from the scheme's
// test plan: e_0 encodes to a weight-3 codeword covering both parity
// bits that guard data position 3.
func TestHammingEncodeLiteral(t *testing.T) {
	h := codes.NewHamming()
	m := gf2.VectorFromBits([]int{1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0})
	code, err := h.EncodeBlock(m)
	assert.NoError(t, err)
	assert.Equal(t, []int{1, 1, 1, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, code.Bits())
}

// TestHammingSingleBitCorrectionLiteral flips 0-indexed position 6
// (1-indexed position 7) of the all-zero codeword; the syndrome is 7
// and decoding recovers the all-zero message.
func TestHammingSingleBitCorrectionLiteral(t *testing.T) {
	h := codes.NewHamming()
	r := gf2.NewVector(15)
	r.SetBit(6, 1)
	msg, ok, err := h.DecodeBlock(r)
	assert.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, gf2.NewVector(11).Bits(), msg.Bits())
}

func TestHammingEncodeDecodeRoundtrip(t *testing.T) {
	h := codes.NewHamming()
	for v := 0; v < 1<<11; v++ {
		bits := make([]int, 11)
		for i := range bits {
			bits[i] = (v >> uint(i)) & 1
		}
		m := gf2.VectorFromBits(bits)
		code, err := h.EncodeBlock(m)
		assert.NoError(t, err)
		decoded, ok, err := h.DecodeBlock(code)
		assert.NoError(t, err)
		assert.True(t, ok)
		assert.Equal(t, m.Bits(), decoded.Bits())
	}
}

func TestHammingSingleErrorCorrection(t *testing.T) {
	h := codes.NewHamming()
	samples := [][]int{
		{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0},
		{1, 1, 1, 1, 1, 1, 1, 1, 1, 1, 1},
		{1, 0, 1, 0, 1, 0, 1, 0, 1, 0, 1},
		{0, 1, 0, 1, 1, 0, 0, 1, 0, 1, 1},
	}
	for _, bits := range samples {
		m := gf2.VectorFromBits(bits)
		code, err := h.EncodeBlock(m)
		assert.NoError(t, err)
		for i := 0; i < 15; i++ {
			flipped := code.Clone()
			flipped.SetBit(i, 1-flipped.Bit(i))
			decoded, ok, err := h.DecodeBlock(flipped)
			assert.NoError(t, err)
			assert.True(t, ok)
			assert.Equal(t, m.Bits(), decoded.Bits(), "error at position %d should be corrected", i)
		}
	}
}

func TestHammingGeneratorMatchesEncodeBlock(t *testing.T) {
	h := codes.NewHamming()
	g := h.Generator()
	assert.Equal(t, 11, g.Rows())
	assert.Equal(t, 15, g.Cols())
	for i := 0; i < 11; i++ {
		unit := gf2.NewVector(11)
		unit.SetBit(i, 1)
		viaMatrix, err := g.VecMultiply(unit)
		assert.NoError(t, err)
		viaEncode, err := h.EncodeBlock(unit)
		assert.NoError(t, err)
		assert.True(t, viaMatrix.Equal(viaEncode))
	}
}
