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

import (
	"github.com/consensys/go-grobner/pkg/algebra/exterior"
)

// degLex is the degree lexicographic order.  Monomials are compared first by
// degree, with ties broken by the plain lexicographic order: of two distinct
// monomials of equal degree, the larger is the one containing the smallest
// generator index on which they differ.  Mirroring every index (i becomes
// n-1-i) turns that tie-break into the colexicographic comparison, which is
// how the in-block position is computed.
type degLex struct {
	n       uint
	binom   binomials
	offsets []uint64
}

// DegLex constructs the degree lexicographic order over n generators, for n
// in 1..63.
func DegLex(n uint) Order {
	if n == 0 || n > exterior.MaxRank {
		panic("unsupported rank")
	}
	//
	binom := newBinomials(n)
	//
	return &degLex{n, binom, binom.offsets()}
}

// Rank implementation for the Order interface.
func (p *degLex) Rank() uint {
	return p.n
}

// RankOf implementation for the Order interface.
func (p *degLex) RankOf(mono exterior.Monomial) uint64 {
	checkWidth(mono, p.n)
	//
	degree := mono.Degree()
	//
	return p.offsets[degree] + p.binom.colexRank(p.mirror(mono.Indices()))
}

// MonomialOf implementation for the Order interface.
func (p *degLex) MonomialOf(rank uint64) exterior.Monomial {
	checkRank(rank, p.n)
	//
	degree := p.degreeOf(rank)
	indices := p.binom.colexUnrank(rank-p.offsets[degree], degree)
	//
	return exterior.NewMonomial(p.n, p.mirror(indices)...)
}

// degreeOf locates the degree block holding a given rank.
func (p *degLex) degreeOf(rank uint64) uint {
	degree := uint(0)
	//
	for p.offsets[degree+1] <= rank {
		degree++
	}
	//
	return degree
}

// mirror reflects an ascending index sequence through the middle of the
// generator range, yielding the ascending sequence of n-1-i for each i.
func (p *degLex) mirror(indices []uint) []uint {
	mirrored := make([]uint, len(indices))
	//
	for i, index := range indices {
		mirrored[len(indices)-1-i] = p.n - 1 - index
	}
	//
	return mirrored
}

func (p *degLex) String() string {
	return "deglex"
}
