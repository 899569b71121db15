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
	"github.com/consensys/go-grobner/pkg/algebra/exterior"
)

// pair identifies a critical pair of basis members by index, where i == j
// denotes an element paired against itself.  Self pairs matter in an exterior
// algebra because multiplying by a generator occurring in the leading
// monomial annihilates the leading term outright, which can expose relations
// a commutative Buchberger loop would never see.
type pair struct {
	i, j int
}

// criticalRows constructs the S-polynomials of a critical pair, as rows for
// the forthcoming echelonization.  Pairs whose leading monomials share no
// generator are skipped (the product criterion: their leading terms cannot
// interact).  For two-sided ideals both the left- and right-multiplication
// constructions are produced.
func (p *Strategy[F]) criticalRows(pr pair) []exterior.Element[F] {
	if pr.i == pr.j {
		return p.selfRows(p.basis[pr.i])
	}
	//
	var (
		f, g = p.basis[pr.i], p.basis[pr.j]
		rows []exterior.Element[F]
	)
	// Product criterion, i.e. disjoint leading terms never interact.
	if f.lm.Disjoint(g.lm) {
		return nil
	}
	//
	if p.side == Left || p.side == TwoSided {
		if s, ok := p.spoly(f, g, Left); ok {
			rows = append(rows, s)
		}
	}
	//
	if p.side == Right || p.side == TwoSided {
		if s, ok := p.spoly(f, g, Right); ok {
			rows = append(rows, s)
		}
	}
	//
	return rows
}

// spoly builds the S-polynomial of two basis members for a given
// multiplication side: both are multiplied up to the union of their leading
// monomials, normalised monic, and subtracted so the leading terms cancel.
func (p *Strategy[F]) spoly(f, g GBElement[F], side Side) (exterior.Element[F], bool) {
	var (
		union = f.lm.Union(g.lm)
		fm    = p.multiple(f, union.Minus(f.lm), side)
		gm    = p.multiple(g, union.Minus(g.lm), side)
		s     = p.algebra.Sub(fm, gm)
	)
	//
	return s, !s.IsZero()
}

// selfRows constructs the critical elements of a basis member paired against
// itself.  Multiplying by any generator inside the leading monomial
// annihilates the leading term, so each such (non-zero) product is pending
// material in its own right.  For two-sided ideals, every generator outside
// the leading monomial additionally yields the difference between the left
// and right multiples, which accounts for side switching.
func (p *Strategy[F]) selfRows(f GBElement[F]) []exterior.Element[F] {
	var (
		rows []exterior.Element[F]
		rank = p.algebra.Rank()
	)
	//
	for k := uint(0); k < rank; k++ {
		mono := exterior.NewMonomial(rank, k)
		//
		if f.lm.Contains(k) {
			if p.side == Left || p.side == TwoSided {
				if product := p.algebra.MulMonomialLeft(mono, f.element); !product.IsZero() {
					rows = append(rows, product)
				}
			}
			//
			if p.side == Right || p.side == TwoSided {
				if product := p.algebra.MulMonomialRight(f.element, mono); !product.IsZero() {
					rows = append(rows, product)
				}
			}
		} else if p.side == TwoSided {
			// Left and right multiples share their leading monomial, so the
			// monic difference cancels it.
			var (
				left  = p.monic(p.algebra.MulMonomialLeft(mono, f.element))
				right = p.monic(p.algebra.MulMonomialRight(f.element, mono))
				s     = p.algebra.Sub(left, right)
			)
			//
			if !s.IsZero() {
				rows = append(rows, s)
			}
		}
	}
	//
	return rows
}

// multiple computes the monic product of a basis member with a monomial
// disjoint from its leading monomial, on the given side.
func (p *Strategy[F]) multiple(f GBElement[F], mono exterior.Monomial, side Side) exterior.Element[F] {
	var product exterior.Element[F]
	//
	if side == Right {
		product = p.algebra.MulMonomialRight(f.element, mono)
	} else {
		product = p.algebra.MulMonomialLeft(mono, f.element)
	}
	// The multiplier avoids the leading monomial, so the leading term must
	// survive with monomial mono ∪ lm(f).  Anything else indicates internal
	// breakage.
	lt, ok := product.LeadingTerm()
	//
	if !ok || !lt.Monomial.Equals(mono.Union(f.lm)) {
		panic("grobner: degenerate product")
	}
	//
	return p.monic(product)
}
