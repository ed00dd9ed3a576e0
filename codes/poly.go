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

package codes

import "math/bits"

// Polynomials over GF(2)[x] are represented as ints, bit i holding the
// coefficient of x^i.

func polyDegree(p int) int {
	if p == 0 {
		return -1
	}
	return bits.Len(uint(p)) - 1
}

func polyMul(a, b int) int {
	res := 0
	for b != 0 {
		if b&1 != 0 {
			res ^= a
		}
		a <<= 1
		b >>= 1
	}
	return res
}

// polyDivMod divides dividend by divisor over GF(2)[x], returning the
// quotient and remainder.
func polyDivMod(dividend, divisor int) (quot, rem int) {
	ddeg := polyDegree(divisor)
	rem = dividend
	for polyDegree(rem) >= ddeg {
		shift := polyDegree(rem) - ddeg
		quot ^= 1 << uint(shift)
		rem ^= divisor << uint(shift)
	}
	return quot, rem
}
