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
package order

// binomials is a Pascal triangle of all binomial coefficients C(i,j) for
// i,j <= n.  All entries fit a uint64 for n <= 63.
type binomials struct {
	n    uint
	rows [][]uint64
}

func newBinomials(n uint) binomials {
	rows := make([][]uint64, n+1)
	//
	for i := uint(0); i <= n; i++ {
		rows[i] = make([]uint64, n+1)
		rows[i][0] = 1
		//
		for j := uint(1); j <= i; j++ {
			rows[i][j] = rows[i-1][j-1] + rows[i-1][j]
		}
	}
	//
	return binomials{n, rows}
}

// choose returns C(i,j), or zero when j > i.
func (p binomials) choose(i, j uint) uint64 {
	if j > i {
		return 0
	}
	//
	return p.rows[i][j]
}

// offsets returns the cumulative block offsets of a degree-major order, where
// the block of degree d monomials begins at offset(d) = sum of C(n,k) for all
// k < d.
func (p binomials) offsets() []uint64 {
	offsets := make([]uint64, p.n+2)
	//
	for d := uint(0); d <= p.n; d++ {
		offsets[d+1] = offsets[d] + p.choose(p.n, d)
	}
	//
	return offsets
}

// colexRank returns the position of a strictly ascending index sequence
// amongst all sequences of the same length, under the colexicographic order.
func (p binomials) colexRank(indices []uint) uint64 {
	var rank uint64
	//
	for i, index := range indices {
		rank += p.choose(index, uint(i+1))
	}
	//
	return rank
}

// colexUnrank inverts colexRank for sequences of the given length, returning
// the resulting indices in ascending order.
func (p binomials) colexUnrank(rank uint64, length uint) []uint {
	indices := make([]uint, length)
	//
	for i := length; i > 0; i-- {
		// Find the largest index whose contribution fits.
		index := i - 1
		//
		for p.choose(index+1, i) <= rank {
			index++
		}
		//
		indices[i-1] = index
		rank -= p.choose(index, i)
	}
	//
	return indices
}
