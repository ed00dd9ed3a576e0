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

// Package rng defines the randomness Source threaded explicitly
// through every constructor in this module that needs it, in place of
// a package-level generator.
//
// Source's method set is deliberately the subset of math/rand.Rand
// used by Fisher-Yates shuffling and random-matrix sampling, so that
// *math/rand.Rand satisfies it directly: tests can pass
// math/rand.New(math/rand.NewSource(seed)) for reproducible key
// generation. NewCryptoSource returns the crypto/rand-backed default
// for production use, and NewKeyed returns a salsa20-keystream-backed
// Source for byte-seed determinism.
package rng
