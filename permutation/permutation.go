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

package permutation

import (
	"fmt"

	"github.com/xlab-si/go-mceliece/rng"
)

// Permutation is a bijection on {0,...,n-1} stored as an array where
// p[i] is the image of i.
type Permutation []int

// Random returns a permutation of {0,...,n-1} sampled by a
// Fisher-Yates shuffle driven by source.
func Random(n int, source rng.Source) Permutation {
	p := make(Permutation, n)
	for i := range p {
		p[i] = i
	}
	source.Shuffle(n, func(i, j int) {
		p[i], p[j] = p[j], p[i]
	})
	return p
}

// Inverse returns p^-1, satisfying p.Inverse()[p[i]] == i for all i.
func (p Permutation) Inverse() Permutation {
	inv := make(Permutation, len(p))
	for i, pi := range p {
		inv[pi] = i
	}
	return inv
}

// Validate reports an error if p is not a bijection on
// {0,...,len(p)-1}, i.e. if sorting p would not yield exactly that
// range.
func (p Permutation) Validate() error {
	seen := make([]bool, len(p))
	for _, v := range p {
		if v < 0 || v >= len(p) {
			return fmt.Errorf("permutation: value %d out of range [0,%d)", v, len(p))
		}
		if seen[v] {
			return fmt.Errorf("permutation: value %d repeated", v)
		}
		seen[v] = true
	}
	return nil
}
