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
	bchN = 15
	bchK = 7
	bchT = 2
)

// gPoly is g(x) = x^8 + x^7 + x^6 + x^4 + 1, the generator polynomial
// of the narrow-sense binary (15,7,2) BCH code.
const gPoly = (1 << 8) | (1 << 7) | (1 << 6) | (1 << 4) | 1

// BCH is the (15,7,2) double-error-correcting binary BCH code. Its
// coset-leader syndrome table is built once, in NewBCH, and is
// immutable afterward; it is safe to share a single *BCH across many
// key pairs.
type BCH struct {
	generator gf2.Matrix
	syndTable map[int]gf2.Vector
}

// NewBCH constructs the (15,7) BCH code, building its full
// coset-leader syndrome table (every single- and double-bit error
// pattern).
func NewBCH() *BCH {
	b := &BCH{}
	b.syndTable = buildSyndromeTable()
	b.generator = baseBCHGenerator(b)
	return b
}

func (b *BCH) N() int { return bchN }
func (b *BCH) K() int { return bchK }
func (b *BCH) T() int { return bchT }

// Generator returns the 7x15 generator matrix.
func (b *BCH) Generator() gf2.Matrix {
	return b.generator
}

// SyndromeTableSize reports the number of entries in the coset-leader
// syndrome table, used by mceliece.PrivateKey.SerializeSize to account
// for BCH-specific key material that Hamming keys don't carry.
func (b *BCH) SyndromeTableSize() int {
	return len(b.syndTable)
}

// EncodeBlock treats the 7 message bits as the coefficients of a
// degree-<7 polynomial m(x) and returns the 15 coefficients of
// m(x)*g(x).
func (b *BCH) EncodeBlock(msg gf2.Vector) (gf2.Vector, error) {
	if msg.Len() != bchK {
		return gf2.Vector{}, errors.Wrapf(internal.ErrInvalidLength, "codes: BCH.EncodeBlock wants length %d", bchK)
	}
	m := vectorToPoly(msg)
	code := polyMul(m, gPoly)
	return polyToVector(code, bchN), nil
}

// computeSyndrome returns r(x) mod g(x) as an integer syndrome value.
func computeSyndrome(r gf2.Vector) int {
	_, rem := polyDivMod(vectorToPoly(r), gPoly)
	return rem
}

// DecodeBlock looks up the received word's syndrome in the
// coset-leader table. If present, it corrects the indicated error
// pattern and divides out g(x); success is true iff that division
// leaves no remainder. If the syndrome is absent from the table (more
// errors than any coset leader it covers), DecodeBlock reports
// success=false and returns the first K bits of r as a best effort.
func (b *BCH) DecodeBlock(r gf2.Vector) (gf2.Vector, bool, error) {
	if r.Len() != bchN {
		return gf2.Vector{}, false, errors.Wrapf(internal.ErrInvalidLength, "codes: BCH.DecodeBlock wants length %d", bchN)
	}
	syn := computeSyndrome(r)
	e, ok := b.syndTable[syn]
	if !ok {
		return r.Slice(0, bchK), false, nil
	}
	c, err := r.Add(e)
	if err != nil {
		return gf2.Vector{}, false, err
	}
	msg, rem := polyDivMod(vectorToPoly(c), gPoly)
	return polyToVector(msg, bchK), rem == 0, nil
}

// buildSyndromeTable builds the coset-leader table: zero error, then
// every single-bit error, then every double-bit error, each inserted
// only if its syndrome hasn't already been claimed by a lower-weight
// (or lexicographically earlier) pattern. This first-wins insertion
// order is what makes every stored error pattern minimum weight for
// its syndrome.
func buildSyndromeTable() map[int]gf2.Vector {
	table := make(map[int]gf2.Vector)
	zero := gf2.NewVector(bchN)
	table[computeSyndrome(zero)] = zero

	insert := func(e gf2.Vector) {
		s := computeSyndrome(e)
		if _, exists := table[s]; !exists {
			table[s] = e
		}
	}

	for i := 0; i < bchN; i++ {
		e := gf2.NewVector(bchN)
		e.SetBit(i, 1)
		insert(e)
	}
	for i := 0; i < bchN; i++ {
		for j := i + 1; j < bchN; j++ {
			e := gf2.NewVector(bchN)
			e.SetBit(i, 1)
			e.SetBit(j, 1)
			insert(e)
		}
	}
	return table
}

func baseBCHGenerator(b *BCH) gf2.Matrix {
	g := gf2.NewMatrix(bchK, bchN)
	for i := 0; i < bchK; i++ {
		unit := gf2.NewVector(bchK)
		unit.SetBit(i, 1)
		row, err := b.EncodeBlock(unit)
		if err != nil {
			panic(err)
		}
		g[i] = row
	}
	return g
}

func vectorToPoly(v gf2.Vector) int {
	p := 0
	for i := 0; i < v.Len(); i++ {
		if v.Bit(i) == 1 {
			p |= 1 << uint(i)
		}
	}
	return p
}

func polyToVector(p, length int) gf2.Vector {
	v := gf2.NewVector(length)
	for i := 0; i < length; i++ {
		if p&(1<<uint(i)) != 0 {
			v.SetBit(i, 1)
		}
	}
	return v
}
