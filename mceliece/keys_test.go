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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPublicKeySerializeSize(t *testing.T) {
	source := rand.New(rand.NewSource(21))
	scheme, err := New(FamilyHamming, 2, 1, source)
	assert.NoError(t, err)
	pub, _, err := scheme.Keygen()
	assert.NoError(t, err)

	// ceil(k*n/8) + 2*n, k=22, n=30.
	want := (22*30+7)/8 + 2*30
	assert.Equal(t, want, pub.SerializeSize())
}

func TestPrivateKeySerializeSizeHammingHasNoSyndromeTable(t *testing.T) {
	source := rand.New(rand.NewSource(22))
	scheme, err := New(FamilyHamming, 2, 1, source)
	assert.NoError(t, err)
	_, priv, err := scheme.Keygen()
	assert.NoError(t, err)

	want := (22*22+7)/8 + 2*30
	assert.Equal(t, want, priv.SerializeSize())
}

func TestPrivateKeySerializeSizeBCHIncludesSyndromeTable(t *testing.T) {
	source := rand.New(rand.NewSource(23))
	scheme, err := New(FamilyBCH, 1, 2, source)
	assert.NoError(t, err)
	_, priv, err := scheme.Keygen()
	assert.NoError(t, err)

	entryCost := 2 + (15+7)/8
	want := (7*7+7)/8 + 2*15 + (1+15+105)*entryCost
	assert.Equal(t, want, priv.SerializeSize())
}
