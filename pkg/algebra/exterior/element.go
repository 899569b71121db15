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
package exterior

import (
	"strings"

	"github.com/consensys/go-grobner/pkg/util/field"
)

// Term is a monomial scaled by a (non-zero) field coefficient.
type Term[F field.Element[F]] struct {
	// Coefficient of this term.
	Coefficient F
	// Monomial of this term.
	Monomial Monomial
}

// Negate returns this term with its coefficient negated.
func (p Term[F]) Negate() Term[F] {
	return Term[F]{p.Coefficient.Neg(), p.Monomial}
}

// Scale returns this term with its coefficient multiplied by a given scalar.
func (p Term[F]) Scale(scalar F) Term[F] {
	return Term[F]{p.Coefficient.Mul(scalar), p.Monomial}
}

// Element is a linear combination of monomials with field coefficients.  Its
// terms are held in strictly descending rank under the order of the ambient
// algebra, such that the leading term always comes first.  An uninitialised
// Element corresponds with zero.
type Element[F field.Element[F]] struct {
	terms []Term[F]
}

// IsZero checks whether this element is the zero element.
func (p Element[F]) IsZero() bool {
	return len(p.terms) == 0
}

// Len returns the number of terms in this element.
func (p Element[F]) Len() uint {
	return uint(len(p.terms))
}

// Term returns the ith term of this element, where the zeroth term is the
// leading term.
func (p Element[F]) Term(ith uint) Term[F] {
	return p.terms[ith]
}

// Terms returns all terms of this element in descending rank order.
func (p Element[F]) Terms() []Term[F] {
	return p.terms
}

// LeadingTerm returns the term of maximal rank, or false if this element is
// zero.
func (p Element[F]) LeadingTerm() (Term[F], bool) {
	if len(p.terms) == 0 {
		return Term[F]{}, false
	}
	//
	return p.terms[0], true
}

func (p Element[F]) String() string {
	if len(p.terms) == 0 {
		return "0"
	}
	//
	var builder strings.Builder
	//
	for i, term := range p.terms {
		var coeff = term.Coefficient
		// Render subtraction where the negated coefficient reads better (e.g.
		// "- e3" rather than "+ <p-1>*e3").
		if neg := coeff.Neg(); neg.Cmp(coeff) < 0 {
			coeff = neg
			//
			if i == 0 {
				builder.WriteString("-")
			} else {
				builder.WriteString(" - ")
			}
		} else if i != 0 {
			builder.WriteString(" + ")
		}
		//
		switch {
		case term.Monomial.IsUnit():
			builder.WriteString(coeff.String())
		case coeff.IsOne():
			builder.WriteString(term.Monomial.String())
		default:
			builder.WriteString(coeff.String())
			builder.WriteString("*")
			builder.WriteString(term.Monomial.String())
		}
	}
	//
	return builder.String()
}
