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

// Package mceliece implements a didactic code-based public-key
// cryptosystem in the McEliece family, instantiated over L
// concatenated copies of a short binary block code (package codes).
//
// A Scheme is configured once with a code family, a block count L,
// and a per-block error count: construct it, then call Keygen,
// Encrypt, and Decrypt as pure functions of their arguments plus an
// injected rng.Source.
//
// The public key carries the permutation P used to build it.
// Publishing P removes the scheme's cryptographic hardness; this is a
// known weakness kept for didactic purposes, not a recommendation —
// see PublicKey.
package mceliece
