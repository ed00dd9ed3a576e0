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

// Package gf2 implements dense linear algebra over GF(2): bit-packed
// vectors and row-major matrices, with the multiply and Gauss-Jordan
// inversion operations the McEliece scheme in package mceliece builds
// on.
//
// Matrix is a slice of Vector, constructed with an injected source of
// randomness rather than a package-level generator, and Invert uses
// Gauss-Jordan elimination generalized to arithmetic mod 2: addition
// is XOR, and a dot product is the parity of a bitwise AND.
package gf2
