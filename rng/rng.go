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
	"crypto/rand"
	"math/big"
)

// Source is the randomness handle passed to constructors of this
// module's types. Intn returns a uniform value in [0, n). Shuffle
// permutes n elements in place by repeatedly calling swap.
type Source interface {
	Intn(n int) int
	Shuffle(n int, swap func(i, j int))
}

// cryptoSource is a Source backed by crypto/rand, suitable for real
// key generation. It has no internal state: every call reaches the OS
// entropy source directly.
type cryptoSource struct{}

// NewCryptoSource returns a Source backed by crypto/rand.Reader. Use
// this for real key generation; use a seeded *math/rand.Rand or
// NewKeyed for reproducible tests.
func NewCryptoSource() Source {
	return cryptoSource{}
}

func (cryptoSource) Intn(n int) int {
	if n <= 0 {
		panic("rng: invalid argument to Intn")
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		panic(err)
	}
	return int(v.Int64())
}

// Shuffle performs a Fisher-Yates shuffle of n elements, calling swap
// once per surviving position, matching the algorithm math/rand.Rand
// itself uses.
func (c cryptoSource) Shuffle(n int, swap func(i, j int)) {
	for i := n - 1; i > 0; i-- {
		j := c.Intn(i + 1)
		swap(i, j)
	}
}
