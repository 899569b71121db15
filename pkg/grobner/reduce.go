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

// Reduce computes the normal form of an element against the finalised basis,
// i.e. the unique representative in which no term is divisible by any basis
// member's leading monomial.  The normal form is zero exactly when the
// element lies in the ideal.  Calling Reduce before Compute has succeeded
// yields ErrNotComputed.
func (p *Strategy[F]) Reduce(element exterior.Element[F]) (exterior.Element[F], error) {
	if !p.computed {
		return exterior.Element[F]{}, ErrNotComputed
	}
	//
	return p.reduceExcluding(element, -1), nil
}

// reduceExcluding fully reduces an element against all basis members except
// the one at the excluded index (with -1 excluding nothing).  Basis members
// are scanned in index order; since the basis ends up reduced, the resulting
// normal form does not depend on which applicable divisor is picked first.
func (p *Strategy[F]) reduceExcluding(element exterior.Element[F], exclude int) exterior.Element[F] {
	for changed := true; changed && !element.IsZero(); {
		changed = false
		//
		for i, g := range p.basis {
			if i == exclude {
				continue
			}
			//
			if reduced, ok := p.reduceSingle(element, g); ok {
				element, changed = reduced, true
			}
			//
			if element.IsZero() {
				return element
			}
		}
	}
	//
	return element
}

// reduceSingle applies a single reduction of an element by a given basis
// member, if one applies: the highest-ranked term divisible by the member's
// leading monomial is eliminated, by subtracting the appropriately scaled
// monomial multiple of the member.  Returns whether a reduction occurred.
func (p *Strategy[F]) reduceSingle(element exterior.Element[F], g GBElement[F]) (exterior.Element[F], bool) {
	for _, term := range element.Terms() {
		if !g.lm.Divides(term.Monomial) {
			continue
		}
		//
		var (
			side     = p.side
			cofactor = term.Monomial.Minus(g.lm)
			multiple exterior.Element[F]
		)
		// For two-sided ideals either side serves; use the left.
		if side == TwoSided {
			side = Left
		}
		//
		if side == Right {
			multiple = p.algebra.MulMonomialRight(g.element, cofactor)
		} else {
			multiple = p.algebra.MulMonomialLeft(cofactor, g.element)
		}
		// The cofactor avoids the leading monomial, so the leading term
		// survives as exactly the term being eliminated.
		lt, ok := multiple.LeadingTerm()
		//
		if !ok || !lt.Monomial.Equals(term.Monomial) {
			panic("grobner: degenerate product")
		}
		//
		factor := term.Coefficient.Mul(lt.Coefficient.Inverse())
		//
		return p.algebra.AddScaled(element, multiple, factor.Neg()), true
	}
	//
	return element, false
}
