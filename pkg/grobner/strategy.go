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

// Package grobner computes Gröbner bases for one- and two-sided ideals of a
// finite-dimensional exterior algebra, using a Buchberger-style fixpoint loop
// in which pending S-polynomials are batch reduced by echelonizing a
// coefficient matrix (following the symbolic preprocessing approach of F4).
package grobner

import (
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/consensys/go-grobner/pkg/algebra/exterior"
	"github.com/consensys/go-grobner/pkg/util/field"
)

// ErrNonHomogeneous indicates the homogeneity flag was set for a generating
// set containing an element of mixed degree.
var ErrNonHomogeneous = errors.New("generating set is not homogeneous")

// ErrNotComputed indicates a normal form was requested before the basis was
// computed.
var ErrNotComputed = errors.New("basis not yet computed")

// Strategy orchestrates the computation of a reduced Gröbner basis for the
// ideal spanned by a given generating set, after which it serves normal-form
// queries against that basis.
type Strategy[F field.Element[F]] struct {
	algebra *exterior.Algebra[F]
	// Side of the ideal being generated.
	side Side
	// Original generating set.
	generators []exterior.Element[F]
	// Indicates all generators are homogeneous, which enables processing
	// critical pairs in ascending degree order.
	homogeneous bool
	// Basis computed thus far, whose members always have pairwise distinct
	// leading monomials.
	basis []GBElement[F]
	// Indicates the basis is finalised.
	computed bool
}

// NewStrategy constructs a strategy for the ideal spanned by the given
// generators on the given side.  Setting homogeneous declares that every
// generator is homogeneous (i.e. all its terms have the same degree); this is
// checked against the generating set, with a mismatch reported as
// ErrNonHomogeneous.
func NewStrategy[F field.Element[F]](algebra *exterior.Algebra[F], side Side,
	generators []exterior.Element[F], homogeneous bool) (*Strategy[F], error) {
	//
	if homogeneous {
		for i, gen := range generators {
			if !algebra.IsHomogeneous(gen) {
				return nil, fmt.Errorf("generator %d: %w", i, ErrNonHomogeneous)
			}
		}
	}
	//
	return &Strategy[F]{
		algebra:     algebra,
		side:        side,
		generators:  generators,
		homogeneous: homogeneous,
	}, nil
}

// Algebra returns the ambient algebra of this strategy.
func (p *Strategy[F]) Algebra() *exterior.Algebra[F] {
	return p.algebra
}

// Side returns the side of the ideal being generated.
func (p *Strategy[F]) Side() Side {
	return p.side
}

// Basis returns the basis computed thus far.  Once Compute has succeeded,
// this is the unique reduced Gröbner basis of the ideal, ordered by ascending
// leading rank.
func (p *Strategy[F]) Basis() []GBElement[F] {
	return p.basis
}

// Compute runs the fixpoint loop to completion, finalising the reduced
// Gröbner basis.  Calling Compute a second time has no effect.
func (p *Strategy[F]) Compute() error {
	if p.computed {
		return nil
	}
	//
	var pending []pair
	// Seed basis with the (normalised) non-zero generators.
	for _, gen := range p.generators {
		if !gen.IsZero() {
			pending = p.append(p.monic(gen), pending)
		}
	}
	//
	for pass := 1; len(pending) > 0; pass++ {
		var (
			batch = p.selectBatch(&pending)
			rows  []exterior.Element[F]
		)
		//
		for _, pr := range batch {
			rows = append(rows, p.criticalRows(pr)...)
		}
		//
		if len(rows) == 0 {
			continue
		}
		// Close the support of the pending rows under reduction.
		rows, columns := p.preprocess(rows)
		// Batch reduce via row-echelonization.
		fresh, err := p.echelonize(rows, columns)
		//
		if err != nil {
			return fmt.Errorf("pass %d: %w", pass, err)
		}
		//
		log.Debugf("groebner pass %d: %d pairs, %d rows, %d columns, %d new elements",
			pass, len(batch), len(rows), len(columns), len(fresh))
		//
		for _, element := range fresh {
			pending = p.append(element.element, pending)
		}
	}
	//
	p.interreduce()
	p.computed = true
	//
	return nil
}

// append adds a (non-zero, monic) element to the working basis, scheduling
// its critical pairs against every other member and against itself.
func (p *Strategy[F]) append(element exterior.Element[F], pending []pair) []pair {
	var (
		gb, _ = p.newGBElement(element)
		k     = len(p.basis)
	)
	//
	p.basis = append(p.basis, gb)
	//
	for i := 0; i <= k; i++ {
		pending = append(pending, pair{i, k})
	}
	//
	return pending
}

// selectBatch removes the next batch of critical pairs from the pending set.
// For homogeneous inputs only pairs of minimal degree are taken, so that the
// basis grows degree by degree; otherwise all pending pairs are processed at
// once.
func (p *Strategy[F]) selectBatch(pending *[]pair) []pair {
	if !p.homogeneous {
		batch := *pending
		*pending = nil
		//
		return batch
	}
	// Determine minimal degree amongst pending pairs.
	minimum := p.algebra.Rank() + 2
	//
	for _, pr := range *pending {
		if d := p.pairDegree(pr); d < minimum {
			minimum = d
		}
	}
	//
	var batch, rest []pair
	//
	for _, pr := range *pending {
		if p.pairDegree(pr) == minimum {
			batch = append(batch, pr)
		} else {
			rest = append(rest, pr)
		}
	}
	//
	*pending = rest
	//
	return batch
}

// pairDegree returns the degree of the monomial a critical pair aims to
// cancel.
func (p *Strategy[F]) pairDegree(pr pair) uint {
	if pr.i == pr.j {
		return p.basis[pr.i].lm.Degree() + 1
	}
	//
	return p.basis[pr.i].lm.Union(p.basis[pr.j].lm).Degree()
}

// interreduce reduces every basis member against all others until no further
// reduction applies, removing those which reduce to zero.  This yields the
// unique reduced Gröbner basis for the chosen order, which is finally
// normalised to monic form and sorted by ascending leading rank.
func (p *Strategy[F]) interreduce() {
	for changed := true; changed; {
		changed = false
		//
		for i := 0; i < len(p.basis); i++ {
			reduced := p.reduceExcluding(p.basis[i].element, i)
			//
			if reduced.IsZero() {
				// Redundant member, so drop it and restart the pass.
				p.basis = append(p.basis[:i], p.basis[i+1:]...)
				changed = true
				//
				break
			} else if !p.algebra.Equals(reduced, p.basis[i].element) {
				p.basis[i], _ = p.newGBElement(p.monic(reduced))
				changed = true
			}
		}
	}
	//
	sort.Slice(p.basis, func(i, j int) bool {
		return p.basis[i].rank < p.basis[j].rank
	})
}

// newGBElement wraps a non-zero element along with its cached leading
// monomial and rank.
func (p *Strategy[F]) newGBElement(element exterior.Element[F]) (GBElement[F], bool) {
	lt, ok := element.LeadingTerm()
	//
	if !ok {
		return GBElement[F]{}, false
	}
	//
	return GBElement[F]{element, lt.Monomial, p.algebra.Order().RankOf(lt.Monomial)}, true
}

// monic scales a non-zero element such that its leading coefficient is one.
func (p *Strategy[F]) monic(element exterior.Element[F]) exterior.Element[F] {
	lt, ok := element.LeadingTerm()
	//
	if !ok || lt.Coefficient.IsOne() {
		return element
	}
	//
	return p.algebra.Scale(element, lt.Coefficient.Inverse())
}
