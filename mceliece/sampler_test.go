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

func TestErrorSamplerWeightPerBlock(t *testing.T) {
	source := rand.New(rand.NewSource(11))
	s, err := NewErrorSampler(15, 3, 2)
	assert.NoError(t, err)

	for trial := 0; trial < 30; trial++ {
		e := s.Sample(source)
		assert.Equal(t, 45, e.Len())
		for blk := 0; blk < 3; blk++ {
			weight := 0
			for i := 0; i < 15; i++ {
				weight += e.Bit(blk*15 + i)
			}
			assert.Equal(t, 2, weight, "block %d should carry exactly ErrorsPerBlock ones", blk)
		}
	}
}

func TestNewErrorSamplerRejectsOutOfRange(t *testing.T) {
	_, err := NewErrorSampler(15, 1, 16)
	assert.Error(t, err)

	_, err = NewErrorSampler(15, 1, -1)
	assert.Error(t, err)
}

func TestNewErrorSamplerAllowsZero(t *testing.T) {
	s, err := NewErrorSampler(15, 2, 0)
	assert.NoError(t, err)

	source := rand.New(rand.NewSource(4))
	e := s.Sample(source)
	assert.Equal(t, 0, e.Weight())
}
