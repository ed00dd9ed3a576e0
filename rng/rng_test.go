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

package rng_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xlab-si/go-mceliece/rng"
)

// This blank assignment is a compile-time check that *rand.Rand's
// method set matches rng.Source without any adapter.
var _ rng.Source = (*rand.Rand)(nil)

func TestCryptoSourceIntnRange(t *testing.T) {
	source := rng.NewCryptoSource()
	for i := 0; i < 200; i++ {
		v := source.Intn(7)
		assert.True(t, v >= 0 && v < 7)
	}
}

func TestCryptoSourceShufflePermutes(t *testing.T) {
	source := rng.NewCryptoSource()
	perm := []int{0, 1, 2, 3, 4, 5, 6, 7}
	source.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	seen := make(map[int]bool)
	for _, v := range perm {
		assert.False(t, seen[v], "shuffle must not duplicate an element")
		seen[v] = true
	}
	assert.Len(t, seen, 8)
}

func TestKeyedIsDeterministic(t *testing.T) {
	var key [32]byte
	for i := range key {
		key[i] = byte(i)
	}

	a := rng.NewKeyed(&key)
	b := rng.NewKeyed(&key)

	for i := 0; i < 50; i++ {
		va := a.Intn(100)
		vb := b.Intn(100)
		assert.Equal(t, va, vb, "same key must produce the same sequence")
	}
}

func TestKeyedDifferentKeysDiverge(t *testing.T) {
	var keyA, keyB [32]byte
	keyB[0] = 1

	a := rng.NewKeyed(&keyA)
	b := rng.NewKeyed(&keyB)

	diverged := false
	for i := 0; i < 50; i++ {
		if a.Intn(1000000) != b.Intn(1000000) {
			diverged = true
			break
		}
	}
	assert.True(t, diverged, "distinct keys should eventually diverge")
}

func TestKeyedShufflePermutes(t *testing.T) {
	var key [32]byte
	k := rng.NewKeyed(&key)
	perm := []int{0, 1, 2, 3, 4, 5, 6, 7, 8, 9}
	k.Shuffle(len(perm), func(i, j int) {
		perm[i], perm[j] = perm[j], perm[i]
	})
	seen := make(map[int]bool)
	for _, v := range perm {
		seen[v] = true
	}
	assert.Len(t, seen, 10)
}
