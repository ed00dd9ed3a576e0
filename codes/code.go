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

import "github.com/xlab-si/go-mceliece/gf2"

// BlockCode is a short binary block code: N codeword bits, K message
// bits, and a guaranteed correction radius T. The mceliece package is
// generic over any implementation of this interface, parameterizing
// the scheme over a small method-set interface rather than a class
// hierarchy.
type BlockCode interface {
	// N is the codeword length.
	N() int
	// K is the message length.
	K() int
	// T is the number of errors the code is guaranteed to correct.
	T() int
	// Generator returns the code's K x N generator matrix.
	Generator() gf2.Matrix
	// EncodeBlock maps a length-K message to its length-N codeword.
	// EncodeBlock(m) must equal m's row-vector product with
	// Generator().
	EncodeBlock(msg gf2.Vector) (gf2.Vector, error)
	// DecodeBlock maps a length-N received word to a length-K
	// message and a success flag. success is true iff r is within
	// Hamming distance T of some codeword c, in which case the
	// returned message is c's message. Otherwise DecodeBlock returns
	// a best-effort message and success=false; it never errors on a
	// length-N input.
	DecodeBlock(r gf2.Vector) (msg gf2.Vector, success bool, err error)
}
