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
	"fmt"
	"sort"

	"github.com/consensys/go-grobner/pkg/util/field"
)

// Order assigns every monomial of a fixed-rank algebra a unique rank integer,
// such that comparing ranks realises a total order on monomials (higher rank
// meaning larger monomial).  Concrete orders live in pkg/grobner/order.
type Order interface {
	// Rank returns the number of generators this order covers.
	Rank() uint
	// RankOf returns the rank integer of a given monomial.
	RankOf(mono Monomial) uint64
}

// MaxRank is the largest supported number of generators, chosen such that
// monomial ranks always fit within a uint64.
const MaxRank = 63

// Algebra is a finite-dimensional exterior algebra of a given rank, together
// with the monomial order under which its elements are normalised.
type Algebra[F field.Element[F]] struct {
	rank uint
	ord  Order
}

// NewAlgebra constructs an exterior algebra with rank many generators, whose
// elements keep their terms sorted under the given order.
func NewAlgebra[F field.Element[F]](ord Order) (*Algebra[F], error) {
	var rank = ord.Rank()
	//
	if rank == 0 || rank > MaxRank {
		return nil, fmt.Errorf("unsupported algebra rank %d (must be in 1..%d)", rank, MaxRank)
	}
	//
	return &Algebra[F]{rank, ord}, nil
}

// Rank returns the number of generators of this algebra.
func (p *Algebra[F]) Rank() uint {
	return p.rank
}

// Order returns the monomial order of this algebra.
func (p *Algebra[F]) Order() Order {
	return p.ord
}

// Zero returns the zero element.
func (p *Algebra[F]) Zero() Element[F] {
	return Element[F]{}
}

// One returns the unit element.
func (p *Algebra[F]) One() Element[F] {
	return p.BasisElement(NewMonomial(p.rank))
}

// BasisElement returns the element consisting of the given monomial with
// coefficient one.
func (p *Algebra[F]) BasisElement(mono Monomial) Element[F] {
	return Element[F]{[]Term[F]{{field.One[F](), mono}}}
}

// Generator returns the ith generator of this algebra (zero based).
func (p *Algebra[F]) Generator(index uint) Element[F] {
	return p.BasisElement(NewMonomial(p.rank, index))
}

// FromTerms constructs an element from an arbitrary collection of terms,
// normalising as necessary (sorting by descending rank, merging duplicate
// monomials and dropping zero coefficients).
func (p *Algebra[F]) FromTerms(terms ...Term[F]) Element[F] {
	return p.normalise(terms)
}

// Add computes x + y.
func (p *Algebra[F]) Add(x, y Element[F]) Element[F] {
	return p.addScaled(x, y, field.One[F]())
}

// Sub computes x - y.
func (p *Algebra[F]) Sub(x, y Element[F]) Element[F] {
	return p.addScaled(x, y, field.One[F]().Neg())
}

// Neg computes -x.
func (p *Algebra[F]) Neg(x Element[F]) Element[F] {
	return p.Scale(x, field.One[F]().Neg())
}

// Scale computes scalar * x.
func (p *Algebra[F]) Scale(x Element[F], scalar F) Element[F] {
	if scalar.IsZero() {
		return p.Zero()
	}
	//
	terms := make([]Term[F], len(x.terms))
	//
	for i, term := range x.terms {
		terms[i] = term.Scale(scalar)
	}
	//
	return Element[F]{terms}
}

// AddScaled computes x + scalar * y.
func (p *Algebra[F]) AddScaled(x, y Element[F], scalar F) Element[F] {
	return p.addScaled(x, y, scalar)
}

// MulMonomialLeft computes mono * x, applying the anti-commutation sign to
// every term and dropping those the multiplication annihilates.
func (p *Algebra[F]) MulMonomialLeft(mono Monomial, x Element[F]) Element[F] {
	terms := make([]Term[F], 0, len(x.terms))
	//
	for _, term := range x.terms {
		if product, sign, ok := mono.Mul(term.Monomial); ok {
			terms = append(terms, Term[F]{applySign(term.Coefficient, sign), product})
		}
	}
	//
	return p.normalise(terms)
}

// MulMonomialRight computes x * mono, applying the anti-commutation sign to
// every term and dropping those the multiplication annihilates.
func (p *Algebra[F]) MulMonomialRight(x Element[F], mono Monomial) Element[F] {
	terms := make([]Term[F], 0, len(x.terms))
	//
	for _, term := range x.terms {
		if product, sign, ok := term.Monomial.Mul(mono); ok {
			terms = append(terms, Term[F]{applySign(term.Coefficient, sign), product})
		}
	}
	//
	return p.normalise(terms)
}

// Equals checks whether two elements are identical.
func (p *Algebra[F]) Equals(x, y Element[F]) bool {
	return p.Sub(x, y).IsZero()
}

// IsHomogeneous checks whether every term of x has the same degree.
func (p *Algebra[F]) IsHomogeneous(x Element[F]) bool {
	for i := 1; i < len(x.terms); i++ {
		if x.terms[i].Monomial.Degree() != x.terms[0].Monomial.Degree() {
			return false
		}
	}
	//
	return true
}

// addScaled computes x + scalar * y by merging the two (sorted) term lists.
func (p *Algebra[F]) addScaled(x, y Element[F], scalar F) Element[F] {
	var (
		terms = make([]Term[F], 0, len(x.terms)+len(y.terms))
		i, j  = 0, 0
	)
	//
	if scalar.IsZero() {
		return x
	}
	//
	for i < len(x.terms) && j < len(y.terms) {
		var (
			xr = p.ord.RankOf(x.terms[i].Monomial)
			yr = p.ord.RankOf(y.terms[j].Monomial)
		)
		//
		switch {
		case xr > yr:
			terms = append(terms, x.terms[i])
			i++
		case xr < yr:
			terms = append(terms, y.terms[j].Scale(scalar))
			j++
		default:
			// Matching monomials, hence combine coefficients.
			sum := x.terms[i].Coefficient.Add(y.terms[j].Coefficient.Mul(scalar))
			//
			if !sum.IsZero() {
				terms = append(terms, Term[F]{sum, x.terms[i].Monomial})
			}
			//
			i++
			j++
		}
	}
	//
	terms = append(terms, x.terms[i:]...)
	//
	for ; j < len(y.terms); j++ {
		terms = append(terms, y.terms[j].Scale(scalar))
	}
	//
	return Element[F]{terms}
}

// normalise sorts a term list into descending rank order, merging terms over
// matching monomials and dropping any whose coefficient cancels to zero.
func (p *Algebra[F]) normalise(terms []Term[F]) Element[F] {
	sort.SliceStable(terms, func(i, j int) bool {
		return p.ord.RankOf(terms[i].Monomial) > p.ord.RankOf(terms[j].Monomial)
	})
	//
	normalised := make([]Term[F], 0, len(terms))
	//
	for _, term := range terms {
		n := len(normalised)
		//
		if n > 0 && normalised[n-1].Monomial.Equals(term.Monomial) {
			sum := normalised[n-1].Coefficient.Add(term.Coefficient)
			//
			if sum.IsZero() {
				normalised = normalised[:n-1]
			} else {
				normalised[n-1].Coefficient = sum
			}
		} else if !term.Coefficient.IsZero() {
			normalised = append(normalised, term)
		}
	}
	//
	return Element[F]{normalised}
}

func applySign[F field.Element[F]](coeff F, sign int) F {
	if sign < 0 {
		return coeff.Neg()
	}
	//
	return coeff
}
