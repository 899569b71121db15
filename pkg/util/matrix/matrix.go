// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package matrix

import (
	"fmt"

	"github.com/consensys/go-grobner/pkg/util/field"
)

// Matrix is a dense matrix of field elements, stored row major.  An
// uninitialised cell holds the zero element.
type Matrix[F field.Element[F]] struct {
	rows [][]F
	cols uint
}

// New constructs a zeroed nrows x ncols matrix.
func New[F field.Element[F]](nrows, ncols uint) *Matrix[F] {
	rows := make([][]F, nrows)
	//
	for i := range rows {
		rows[i] = make([]F, ncols)
		//
		for j := range rows[i] {
			rows[i][j] = field.Zero[F]()
		}
	}
	//
	return &Matrix[F]{rows, ncols}
}

// FromRows constructs a matrix from the given rows, each of which must have
// the same width.  A ragged row set yields an error.
func FromRows[F field.Element[F]](rows [][]F) (*Matrix[F], error) {
	var cols uint
	//
	if len(rows) > 0 {
		cols = uint(len(rows[0]))
	}
	// Sanity check widths
	for i, row := range rows {
		if uint(len(row)) != cols {
			return nil, fmt.Errorf("ragged matrix (row %d has %d columns, expected %d)", i, len(row), cols)
		}
	}
	//
	return &Matrix[F]{rows, cols}, nil
}

// Rows returns the number of rows in this matrix.
func (p *Matrix[F]) Rows() uint {
	return uint(len(p.rows))
}

// Cols returns the number of columns in this matrix.
func (p *Matrix[F]) Cols() uint {
	return p.cols
}

// Get returns the element at the given row and column.
func (p *Matrix[F]) Get(row, col uint) F {
	return p.rows[row][col]
}

// Set assigns the element at the given row and column.
func (p *Matrix[F]) Set(row, col uint, val F) {
	p.rows[row][col] = val
}

// Row returns the ith row of this matrix.  The returned slice aliases the
// matrix contents.
func (p *Matrix[F]) Row(row uint) []F {
	return p.rows[row]
}

// IsZeroRow checks whether every element of the given row is zero.
func (p *Matrix[F]) IsZeroRow(row uint) bool {
	for _, val := range p.rows[row] {
		if !val.IsZero() {
			return false
		}
	}
	//
	return true
}

// Echelonize reduces this matrix (in place) to reduced row-echelon form,
// returning its rank.  Pivots are normalised to one, with all entries above
// and below a pivot eliminated.
func (p *Matrix[F]) Echelonize() uint {
	var (
		nrows = uint(len(p.rows))
		rank  uint
	)
	//
	for col := uint(0); col < p.cols && rank < nrows; col++ {
		// Find pivot
		pivot := -1
		//
		for i := rank; i < nrows; i++ {
			if !p.rows[i][col].IsZero() {
				pivot = int(i)
				break
			}
		}
		// No pivot in this column
		if pivot == -1 {
			continue
		}
		// Swap to top
		p.rows[rank], p.rows[pivot] = p.rows[pivot], p.rows[rank]
		// Normalise pivot row
		inv := p.rows[rank][col].Inverse()
		//
		for j := col; j < p.cols; j++ {
			p.rows[rank][j] = p.rows[rank][j].Mul(inv)
		}
		// Eliminate above and below
		for i := uint(0); i < nrows; i++ {
			if i == rank || p.rows[i][col].IsZero() {
				continue
			}
			//
			f := p.rows[i][col]
			//
			for j := col; j < p.cols; j++ {
				p.rows[i][j] = p.rows[i][j].Sub(f.Mul(p.rows[rank][j]))
			}
		}
		//
		rank++
	}
	//
	return rank
}
