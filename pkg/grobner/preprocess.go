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
package grobner

import (
	"sort"

	"github.com/consensys/go-grobner/pkg/algebra/exterior"
)

// preprocess augments a set of pending rows with the additional basis
// multiples needed for plain Gaussian elimination to carry out every
// reduction the rows admit (symbolic preprocessing in the style of F4).  For
// every monomial occurring anywhere in the row set which some basis member's
// leading monomial divides, one monic multiple of that member with leading
// monomial equal to it is added, and the closure repeated over the support of
// the added rows.  Returns the augmented rows together with the full column
// set, i.e. every occurring monomial in descending rank order.
func (p *Strategy[F]) preprocess(rows []exterior.Element[F]) ([]exterior.Element[F], []exterior.Monomial) {
	var (
		done = make(map[uint64]exterior.Monomial)
		todo = make(map[uint64]exterior.Monomial)
	)
	//
	for _, row := range rows {
		p.schedule(row, done, todo)
	}
	//
	for len(todo) > 0 {
		rank, mono := maxRank(todo)
		delete(todo, rank)
		done[rank] = mono
		//
		if reducer, ok := p.additionalProduct(mono); ok {
			rows = append(rows, reducer)
			p.schedule(reducer, done, todo)
		}
	}
	//
	return rows, sortColumns(done)
}

// additionalProduct looks for a basis member whose leading monomial divides
// the given monomial and, if one exists, returns its monic multiple with
// leading monomial equal to that monomial.  The multiplication side follows
// the ideal side, with left multiples used for two-sided ideals (either side
// provides a valid reducer there).
func (p *Strategy[F]) additionalProduct(mono exterior.Monomial) (exterior.Element[F], bool) {
	for _, g := range p.basis {
		if g.lm.Divides(mono) {
			side := p.side
			//
			if side == TwoSided {
				side = Left
			}
			//
			return p.multiple(g, mono.Minus(g.lm), side), true
		}
	}
	//
	return exterior.Element[F]{}, false
}

// schedule queues every support monomial of a row not already processed.
func (p *Strategy[F]) schedule(row exterior.Element[F], done, todo map[uint64]exterior.Monomial) {
	for _, term := range row.Terms() {
		rank := p.algebra.Order().RankOf(term.Monomial)
		//
		if _, ok := done[rank]; !ok {
			todo[rank] = term.Monomial
		}
	}
}

// maxRank returns the highest-ranked entry of a (non-empty) monomial set.
func maxRank(monomials map[uint64]exterior.Monomial) (uint64, exterior.Monomial) {
	var (
		best  uint64
		first = true
	)
	//
	for rank := range monomials {
		if first || rank > best {
			best, first = rank, false
		}
	}
	//
	return best, monomials[best]
}

// sortColumns flattens a processed monomial set into descending rank order,
// such that leading monomials sort first.
func sortColumns(done map[uint64]exterior.Monomial) []exterior.Monomial {
	ranks := make([]uint64, 0, len(done))
	//
	for rank := range done {
		ranks = append(ranks, rank)
	}
	//
	sort.Slice(ranks, func(i, j int) bool { return ranks[i] > ranks[j] })
	//
	columns := make([]exterior.Monomial, len(ranks))
	//
	for i, rank := range ranks {
		columns[i] = done[rank]
	}
	//
	return columns
}
