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

package rng

import (
	"encoding/binary"
	"math/big"

	"golang.org/x/crypto/salsa20"
)

// Keyed is a Source backed by a salsa20 keystream under a fixed
// 32-byte key, giving byte-seed determinism: the same key always
// produces the same sequence of draws.
type Keyed struct {
	key   *[32]byte
	nonce uint64
}

// NewKeyed returns a Source whose output is fully determined by key.
func NewKeyed(key *[32]byte) *Keyed {
	return &Keyed{key: key}
}

// stream returns n fresh keystream bytes and advances the internal
// nonce so the next call draws from a disjoint part of the stream.
func (k *Keyed) stream(n int) []byte {
	nonceBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(nonceBytes, k.nonce)
	k.nonce++

	in := make([]byte, n)
	out := make([]byte, n)
	salsa20.XORKeyStream(out, in, nonceBytes, k.key)
	return out
}

// Intn returns a uniform value in [0, n) by rejection sampling over
// the keystream.
func (k *Keyed) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	max := big.NewInt(int64(n))
	maxBytes := (max.BitLen() / 8) + 1
	shift := uint(8 - (max.BitLen() % 8))
	if shift == 8 {
		maxBytes--
		shift = 0
	}

	for {
		out := k.stream(maxBytes)
		out[0] >>= shift
		v := new(big.Int).SetBytes(out)
		if v.Cmp(max) < 0 {
			return int(v.Int64())
		}
	}
}

// Shuffle performs a Fisher-Yates shuffle driven by Intn.
func (k *Keyed) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := k.Intn(i + 1)
		swap(i, j)
	}
}
