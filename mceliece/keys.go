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
	"github.com/xlab-si/go-mceliece/codes"
	"github.com/xlab-si/go-mceliece/gf2"
	"github.com/xlab-si/go-mceliece/permutation"
)

// PublicKey is (G_pub, n, k, L, errors_per_block, P). As in the
// reference this module ports, P is published alongside G_pub so the
// encrypter can inject per-block errors in the permuted coordinate
// system (see Scheme.Encrypt) — a teaching simplification that removes
// the scheme's cryptographic hardness; a production McEliece variant
// must keep P private.
type PublicKey struct {
	GPub           gf2.Matrix
	N              int
	K              int
	L              int
	ErrorsPerBlock int
	P              permutation.Permutation
}

// SerializeSize reports the informational, uncompressed byte size
// ceil(k*n/8) + 2*n a benchmark harness would report for this key.
func (pub *PublicKey) SerializeSize() int {
	return (pub.K*pub.N+7)/8 + 2*pub.N
}

// PrivateKey is (S_inv, P_inv, a shared reference to the code instance
// — which holds the syndrome table for BCH — L, errors_per_block).
type PrivateKey struct {
	SInv           gf2.Matrix
	PInv           permutation.Permutation
	code           codes.BlockCode
	L              int
	ErrorsPerBlock int
}

// syndromeTableSizer is implemented by codes.BCH, not codes.Hamming:
// only BCH keys carry syndrome-table bytes.
type syndromeTableSizer interface {
	SyndromeTableSize() int
}

// SerializeSize reports the informational byte size
// ceil(k*k/8) + 2*n, plus, for BCH keys, sum(2+ceil(N/8)) over the
// syndrome table's entries (a syndrome key plus its packed error
// vector, per entry).
func (priv *PrivateKey) SerializeSize() int {
	n := priv.code.N() * priv.L
	k := priv.code.K() * priv.L
	size := (k*k+7)/8 + 2*n
	if sizer, ok := priv.code.(syndromeTableSizer); ok {
		size += sizer.SyndromeTableSize() * (2 + (priv.code.N()+7)/8)
	}
	return size
}
