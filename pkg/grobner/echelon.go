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
	"fmt"

	"github.com/consensys/go-grobner/pkg/algebra/exterior"
	"github.com/consensys/go-grobner/pkg/util/field"
	"github.com/consensys/go-grobner/pkg/util/matrix"
)

// echelonize batch reduces the given rows by building their coefficient
// matrix over the given column set (monomials in descending rank order) and
// reducing it to row-echelon form.  Every resulting row whose leading
// monomial is a genuinely new leading term, meaning no current basis member's
// leading monomial divides it, is wrapped up as a new basis candidate.
func (p *Strategy[F]) echelonize(rows []exterior.Element[F],
	columns []exterior.Monomial) ([]GBElement[F], error) {
	//
	var (
		index = make(map[uint64]uint, len(columns))
		data  = make([][]F, len(rows))
	)
	//
	for i, mono := range columns {
		index[p.algebra.Order().RankOf(mono)] = uint(i)
	}
	// Expand each row into its coordinate vector.
	for i, row := range rows {
		data[i] = make([]F, len(columns))
		//
		for j := range data[i] {
			data[i][j] = field.Zero[F]()
		}
		//
		for _, term := range row.Terms() {
			data[i][index[p.algebra.Order().RankOf(term.Monomial)]] = term.Coefficient
		}
	}
	//
	mat, err := matrix.FromRows(data)
	//
	if err != nil {
		return nil, fmt.Errorf("echelonization failed: %w", err)
	}
	//
	rank := mat.Echelonize()
	// Read back the non-zero rows, keeping those with new leading terms.
	var fresh []GBElement[F]
	//
	for i := uint(0); i < rank; i++ {
		element := p.rowElement(mat.Row(i), columns)
		lt, ok := element.LeadingTerm()
		//
		if ok && !p.reducible(lt.Monomial) {
			gb, _ := p.newGBElement(element)
			fresh = append(fresh, gb)
		}
	}
	//
	return fresh, nil
}

// rowElement converts a coordinate vector back into an algebra element over
// the given column monomials.
func (p *Strategy[F]) rowElement(row []F, columns []exterior.Monomial) exterior.Element[F] {
	var terms []exterior.Term[F]
	//
	for j, coeff := range row {
		if !coeff.IsZero() {
			terms = append(terms, exterior.Term[F]{Coefficient: coeff, Monomial: columns[j]})
		}
	}
	//
	return p.algebra.FromTerms(terms...)
}

// reducible checks whether some basis member's leading monomial divides the
// given monomial.
func (p *Strategy[F]) reducible(mono exterior.Monomial) bool {
	for _, g := range p.basis {
		if g.lm.Divides(mono) {
			return true
		}
	}
	//
	return false
}
