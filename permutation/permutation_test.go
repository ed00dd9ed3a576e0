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

package permutation_test

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/xlab-si/go-mceliece/permutation"
)

func TestRandomIsBijection(t *testing.T) {
	source := rand.New(rand.NewSource(1))
	for trial := 0; trial < 10; trial++ {
		n := 3 + trial
		p := permutation.Random(n, source)
		assert.NoError(t, p.Validate())

		sorted := append(permutation.Permutation{}, p...)
		sort.Ints(sorted)
		want := make(permutation.Permutation, n)
		for i := range want {
			want[i] = i
		}
		assert.Equal(t, want, sorted)
	}
}

func TestInverse(t *testing.T) {
	source := rand.New(rand.NewSource(2))
	p := permutation.Random(12, source)
	inv := p.Inverse()
	for i, pi := range p {
		assert.Equal(t, i, inv[pi])
	}
}

func TestValidateCatchesOutOfRange(t *testing.T) {
	p := permutation.Permutation{0, 1, 5}
	assert.Error(t, p.Validate())
}

func TestValidateCatchesRepeat(t *testing.T) {
	p := permutation.Permutation{0, 1, 1}
	assert.Error(t, p.Validate())
}

func TestValidateAcceptsIdentity(t *testing.T) {
	p := permutation.Permutation{0, 1, 2, 3}
	assert.NoError(t, p.Validate())
}
