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

// Package internal holds sentinel errors shared across the module's
// domain packages, in place of ad-hoc fmt.Errorf calls at every call
// site.
package internal

import "errors"

// ErrDimensionMismatch is returned when two matrices, or a matrix and
// a vector, are combined with incompatible dimensions. It signals a
// programmer error: callers are expected to have checked dimensions
// before calling, not to recover from it.
var ErrDimensionMismatch = errors.New("gf2: dimension mismatch")

// ErrSingular is returned by Matrix.Invert when a square matrix does
// not reduce to the identity under Gauss-Jordan elimination. Unlike
// ErrDimensionMismatch this is a statistical error: callers sampling
// random matrices are expected to retry.
var ErrSingular = errors.New("gf2: matrix is singular")

// ErrInvalidLength is returned when a bit vector passed to an
// operation has the wrong length for that operation.
var ErrInvalidLength = errors.New("mceliece: invalid input length")

// ErrInvalidParameter is returned when a constructor is given a
// parameter outside its valid range, e.g. an error count exceeding a
// code's correction capacity.
var ErrInvalidParameter = errors.New("mceliece: invalid parameter")
