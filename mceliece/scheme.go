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

package mceliece

import (
	"github.com/pkg/errors"
	"github.com/xlab-si/go-mceliece/codes"
	"github.com/xlab-si/go-mceliece/gf2"
	"github.com/xlab-si/go-mceliece/internal"
	"github.com/xlab-si/go-mceliece/permutation"
	"github.com/xlab-si/go-mceliece/rng"
)

// Family selects which short block code a Scheme concatenates L times.
type Family int

const (
	// FamilyHamming selects the single-error-correcting (15,11)
	// Hamming code.
	FamilyHamming Family = iota
	// FamilyBCH selects the double-error-correcting (15,7) BCH code.
	FamilyBCH
)

// Scheme configures a McEliece-family cryptosystem over L
// concatenated blocks of one short code. Once constructed, a Scheme's
// configuration is immutable, and Decrypt draws no randomness. Keygen
// (for S and P) and Encrypt (for the error vector) both draw from the
// source passed to New, and the Scheme does no locking around it:
// concurrent Keygen or Encrypt calls on the same Scheme are safe only
// when that source is itself safe for concurrent use (the
// rng.NewCryptoSource source is; a *math/rand.Rand is not).
type Scheme struct {
	code           codes.BlockCode
	l              int
	errorsPerBlock int
	n, k           int
	source         rng.Source
	gBase          gf2.Matrix // k x n, L copies of code.Generator() on the diagonal
	sampler        *ErrorSampler
}

// New configures a Scheme for the given code family, block count L,
// and per-block error count, with source supplying all randomness New
// and the Scheme's methods need. errorsPerBlock must be in [1, T] for
// the chosen code's correction radius T.
func New(family Family, l int, errorsPerBlock int, source rng.Source) (*Scheme, error) {
	if l < 1 {
		return nil, errors.Wrap(internal.ErrInvalidParameter, "mceliece: L must be >= 1")
	}

	var code codes.BlockCode
	switch family {
	case FamilyHamming:
		code = codes.NewHamming()
	case FamilyBCH:
		code = codes.NewBCH()
	default:
		return nil, errors.Wrap(internal.ErrInvalidParameter, "mceliece: unknown code family")
	}

	if errorsPerBlock < 1 || errorsPerBlock > code.T() {
		return nil, errors.Wrapf(internal.ErrInvalidParameter, "mceliece: errorsPerBlock must be in [1,%d]", code.T())
	}

	sampler, err := NewErrorSampler(code.N(), l, errorsPerBlock)
	if err != nil {
		return nil, err
	}

	s := &Scheme{
		code:           code,
		l:              l,
		errorsPerBlock: errorsPerBlock,
		n:              code.N() * l,
		k:              code.K() * l,
		source:         source,
		sampler:        sampler,
	}
	s.gBase = blockDiagonalGenerator(code, l)
	return s, nil
}

// blockDiagonalGenerator builds the (K*L)x(N*L) matrix with L copies
// of base on the diagonal and zeros elsewhere.
func blockDiagonalGenerator(code codes.BlockCode, l int) gf2.Matrix {
	base := code.Generator()
	k, n := code.K(), code.N()
	g := gf2.NewMatrix(k*l, n*l)
	for blk := 0; blk < l; blk++ {
		for r := 0; r < k; r++ {
			row := blk*k + r
			for c := 0; c < n; c++ {
				g[row].SetBit(blk*n+c, base[r].Bit(c))
			}
		}
	}
	return g
}

// N returns the scheme's codeword length n = N_block*L.
func (s *Scheme) N() int { return s.n }

// K returns the scheme's message length k = K_block*L.
func (s *Scheme) K() int { return s.k }

// Keygen samples a random invertible scrambler S (retrying on a
// singular draw) and a random permutation P, and returns the public
// key G_pub = permute_columns(S*G, P) alongside the private key
// (S^-1, P^-1, the shared code instance, L, errors_per_block).
func (s *Scheme) Keygen() (*PublicKey, *PrivateKey, error) {
	var sInv gf2.Matrix
	var sMat gf2.Matrix
	for {
		sMat = gf2.NewRandomMatrix(s.k, s.k, s.source)
		inv, err := sMat.Invert()
		if err == nil {
			sInv = inv
			break
		}
		if errors.Cause(err) != internal.ErrSingular {
			return nil, nil, err
		}
	}

	p := permutation.Random(s.n, s.source)

	sg, err := sMat.Multiply(s.gBase)
	if err != nil {
		return nil, nil, err
	}
	gPub, err := sg.PermuteColumns(p)
	if err != nil {
		return nil, nil, err
	}

	pub := &PublicKey{
		GPub:           gPub,
		N:              s.n,
		K:              s.k,
		L:              s.l,
		ErrorsPerBlock: s.errorsPerBlock,
		P:              p,
	}
	priv := &PrivateKey{
		SInv:           sInv,
		PInv:           p.Inverse(),
		code:           s.code,
		L:              s.l,
		ErrorsPerBlock: s.errorsPerBlock,
	}
	return pub, priv, nil
}

// Encrypt computes c = m*G_pub XOR e, where e injects exactly
// errors_per_block errors into each of pub's L blocks, permuted into
// the ciphertext's coordinate system by pub.P.
func (s *Scheme) Encrypt(m gf2.Vector, pub *PublicKey) (gf2.Vector, error) {
	if m.Len() != pub.K {
		return gf2.Vector{}, errors.Wrapf(internal.ErrInvalidLength, "mceliece: Encrypt wants a length-%d message", pub.K)
	}
	u, err := pub.GPub.VecMultiply(m)
	if err != nil {
		return gf2.Vector{}, err
	}

	ePrivate := s.sampler.Sample(s.source)
	ePublic, err := ePrivate.Permute(pub.P)
	if err != nil {
		return gf2.Vector{}, err
	}

	return u.Add(ePublic)
}

// Decrypt undoes P, decodes each of the L blocks independently with
// the scheme's code, concatenates the recovered messages, and
// multiplies by S^-1. success is the AND of every block's decode
// success; the message bits are always returned, even when
// success=false, so callers can inspect partial correctness.
func (s *Scheme) Decrypt(c gf2.Vector, pub *PublicKey, priv *PrivateKey) (gf2.Vector, bool, error) {
	if c.Len() != pub.N {
		return gf2.Vector{}, false, errors.Wrapf(internal.ErrInvalidLength, "mceliece: Decrypt wants a length-%d ciphertext", pub.N)
	}

	cPrime, err := c.Permute(priv.PInv)
	if err != nil {
		return gf2.Vector{}, false, err
	}

	n := priv.code.N()
	blocks := make([]gf2.Vector, priv.L)
	success := true
	for blk := 0; blk < priv.L; blk++ {
		block := cPrime.Slice(blk*n, (blk+1)*n)
		msg, ok, err := priv.code.DecodeBlock(block)
		if err != nil {
			return gf2.Vector{}, false, err
		}
		blocks[blk] = msg
		success = success && ok
	}

	decoded := gf2.Concat(blocks...)
	m, err := priv.SInv.VecMultiply(decoded)
	if err != nil {
		return gf2.Vector{}, false, err
	}
	return m, success, nil
}
