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

package gf2

import (
	"github.com/pkg/errors"
	"github.com/xlab-si/go-mceliece/internal"
	"github.com/xlab-si/go-mceliece/permutation"
	"github.com/xlab-si/go-mceliece/rng"
)

// Matrix is a dense r*c matrix over GF(2), represented row-major: the
// j-th bit of the i-th row is m[i].Bit(j).
type Matrix []Vector

// NewMatrix returns the all-zero rows*cols matrix.
func NewMatrix(rows, cols int) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = NewVector(cols)
	}
	return m
}

// NewIdentity returns the n*n identity matrix.
func NewIdentity(n int) Matrix {
	m := NewMatrix(n, n)
	for i := 0; i < n; i++ {
		m[i].SetBit(i, 1)
	}
	return m
}

// NewRandomMatrix returns a rows*cols matrix with every bit sampled
// independently and uniformly from source.
func NewRandomMatrix(rows, cols int, source rng.Source) Matrix {
	m := make(Matrix, rows)
	for i := range m {
		m[i] = NewRandomVector(cols, source)
	}
	return m
}

// Rows returns the number of rows of m.
func (m Matrix) Rows() int {
	return len(m)
}

// Cols returns the number of columns of m, or 0 for an empty matrix.
func (m Matrix) Cols() int {
	if len(m) == 0 {
		return 0
	}
	return m[0].Len()
}

// Clone returns an independent copy of m.
func (m Matrix) Clone() Matrix {
	out := make(Matrix, len(m))
	for i, row := range m {
		out[i] = row.Clone()
	}
	return out
}

// column returns the j-th column of m as a Vector of length m.Rows().
func (m Matrix) column(j int) Vector {
	col := NewVector(m.Rows())
	for i, row := range m {
		col.SetBit(i, row.Bit(j))
	}
	return col
}

// Multiply computes m*other. other must have exactly m.Cols() rows;
// the result is m.Rows() x other.Cols(). Each output bit is the
// parity of the AND of a row of m and a column of other.
func (m Matrix) Multiply(other Matrix) (Matrix, error) {
	if m.Cols() != other.Rows() {
		return nil, errors.Wrap(internal.ErrDimensionMismatch, "gf2: Matrix.Multiply")
	}
	cols := make([]Vector, other.Cols())
	for j := range cols {
		cols[j] = other.column(j)
	}
	out := NewMatrix(m.Rows(), other.Cols())
	for i, row := range m {
		for j, col := range cols {
			out[i].SetBit(j, row.dotParity(col))
		}
	}
	return out, nil
}

// VecMultiply computes the row-vector product v*m: v is treated as a
// 1xm.Rows() matrix, and the result has length m.Cols(). v must have
// length m.Rows().
func (m Matrix) VecMultiply(v Vector) (Vector, error) {
	if v.Len() != m.Rows() {
		return Vector{}, errors.Wrap(internal.ErrDimensionMismatch, "gf2: Matrix.VecMultiply")
	}
	out := NewVector(m.Cols())
	for j := 0; j < m.Cols(); j++ {
		out.SetBit(j, v.dotParity(m.column(j)))
	}
	return out, nil
}

// PermuteColumns returns a matrix m' with m'[i][j] = m[i][p[j]].
func (m Matrix) PermuteColumns(p permutation.Permutation) (Matrix, error) {
	if len(p) != m.Cols() {
		return nil, errors.Wrap(internal.ErrDimensionMismatch, "gf2: Matrix.PermuteColumns")
	}
	out := NewMatrix(m.Rows(), m.Cols())
	for i, row := range m {
		for j := range p {
			out[i].SetBit(j, row.Bit(p[j]))
		}
	}
	return out, nil
}

// Invert computes the inverse of a square matrix m by Gauss-Jordan
// elimination: for each column in order, find the first row at or
// below it with a 1 there, swap it into place, then XOR that row into
// every other row that also has a 1 in that column (tracking the same
// operations in an identity shadow). If no pivot can be found for some
// column, m is singular and ErrSingular is returned. There is no
// pivoting heuristic; the algorithm is deterministic.
func (m Matrix) Invert() (Matrix, error) {
	n := m.Rows()
	if m.Cols() != n {
		return nil, errors.Wrap(internal.ErrDimensionMismatch, "gf2: Matrix.Invert: not square")
	}

	a := m.Clone()
	inv := NewIdentity(n)

	for col := 0; col < n; col++ {
		pivot := -1
		for r := col; r < n; r++ {
			if a[r].Bit(col) == 1 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			return nil, errors.Wrap(internal.ErrSingular, "gf2: Matrix.Invert")
		}
		if pivot != col {
			a[col], a[pivot] = a[pivot], a[col]
			inv[col], inv[pivot] = inv[pivot], inv[col]
		}
		for r := 0; r < n; r++ {
			if r == col {
				continue
			}
			if a[r].Bit(col) == 1 {
				xa, _ := a[r].Add(a[col])
				xi, _ := inv[r].Add(inv[col])
				a[r] = xa
				inv[r] = xi
			}
		}
	}

	return inv, nil
}

// Equal reports whether m and other have the same dimensions and
// bits.
func (m Matrix) Equal(other Matrix) bool {
	if m.Rows() != other.Rows() {
		return false
	}
	for i := range m {
		if !m[i].Equal(other[i]) {
			return false
		}
	}
	return true
}
