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

// degRevLex is the degree reverse lexicographic order.  Monomials are
// compared first by degree, with ties broken by the reverse lexicographic
// order: of two distinct monomials of equal degree, the larger is the one not
// containing the largest generator index on which they differ.  Ranks are
// therefore laid out in ascending degree blocks, with each block holding the
// reversed colexicographic enumeration of its index sequences.
type degRevLex struct {
	n       uint
	binom   binomials
	offsets []uint64
}

// DegRevLex constructs the degree reverse lexicographic order over n
// generators, for n in 1..63.
func DegRevLex(n uint) Order {
	if n == 0 || n > exterior.MaxRank {
		panic("unsupported rank")
	}
	//
	binom := newBinomials(n)
	//
	return &degRevLex{n, binom, binom.offsets()}
}

// Rank implementation for the Order interface.
func (p *degRevLex) Rank() uint {
	return p.n
}

// RankOf implementation for the Order interface.
func (p *degRevLex) RankOf(mono exterior.Monomial) uint64 {
	checkWidth(mono, p.n)
	//
	var (
		degree = mono.Degree()
		within = p.binom.choose(p.n, degree) - 1 - p.binom.colexRank(mono.Indices())
	)
	//
	return p.offsets[degree] + within
}

// MonomialOf implementation for the Order interface.
func (p *degRevLex) MonomialOf(rank uint64) exterior.Monomial {
	checkRank(rank, p.n)
	//
	degree := p.degreeOf(rank)
	within := rank - p.offsets[degree]
	colex := p.binom.choose(p.n, degree) - 1 - within
	//
	return exterior.NewMonomial(p.n, p.binom.colexUnrank(colex, degree)...)
}

// degreeOf locates the degree block holding a given rank.
func (p *degRevLex) degreeOf(rank uint64) uint {
	degree := uint(0)
	//
	for p.offsets[degree+1] <= rank {
		degree++
	}
	//
	return degree
}

func (p *degRevLex) String() string {
	return "degrevlex"
}
