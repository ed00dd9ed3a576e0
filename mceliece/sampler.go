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
	"github.com/xlab-si/go-mceliece/gf2"
	"github.com/xlab-si/go-mceliece/internal"
	"github.com/xlab-si/go-mceliece/rng"
)

// ErrorSampler draws error vectors with exactly ErrorsPerBlock ones in
// each of L contiguous BlockSize-sized windows, via a per-window
// Fisher-Yates shuffle of that window's indices.
type ErrorSampler struct {
	BlockSize      int
	L              int
	ErrorsPerBlock int
}

// NewErrorSampler validates and returns an ErrorSampler for blocks of
// length blockSize.
func NewErrorSampler(blockSize, l, errorsPerBlock int) (*ErrorSampler, error) {
	if errorsPerBlock < 0 || errorsPerBlock > blockSize {
		return nil, errors.Wrap(internal.ErrInvalidParameter, "mceliece: errorsPerBlock out of range")
	}
	return &ErrorSampler{BlockSize: blockSize, L: l, ErrorsPerBlock: errorsPerBlock}, nil
}

// Sample draws a length BlockSize*L vector with exactly ErrorsPerBlock
// ones in each window [blk*BlockSize, (blk+1)*BlockSize).
func (s *ErrorSampler) Sample(source rng.Source) gf2.Vector {
	e := gf2.NewVector(s.BlockSize * s.L)
	positions := make([]int, s.BlockSize)
	for blk := 0; blk < s.L; blk++ {
		base := blk * s.BlockSize
		for i := range positions {
			positions[i] = base + i
		}
		source.Shuffle(len(positions), func(i, j int) {
			positions[i], positions[j] = positions[j], positions[i]
		})
		for _, pos := range positions[:s.ErrorsPerBlock] {
			e.SetBit(pos, 1)
		}
	}
	return e
}
