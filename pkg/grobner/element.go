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
	"github.com/consensys/go-grobner/pkg/util/field"
)

// GBElement is a basis member together with its leading monomial and that
// monomial's rank integer, both fixed at construction.  Caching these makes
// leading-term comparisons constant time during pair generation and
// reduction.  A GBElement is immutable, with any reduction of its underlying
// element producing a fresh GBElement.
type GBElement[F field.Element[F]] struct {
	element exterior.Element[F]
	lm      exterior.Monomial
	rank    uint64
}

// Element returns the underlying algebra element.
func (p GBElement[F]) Element() exterior.Element[F] {
	return p.element
}

// LeadingMonomial returns the leading monomial of the underlying element.
func (p GBElement[F]) LeadingMonomial() exterior.Monomial {
	return p.lm
}

// LeadingRank returns the rank integer of the leading monomial.
func (p GBElement[F]) LeadingRank() uint64 {
	return p.rank
}

// LeadingCoefficient returns the coefficient of the leading term.
func (p GBElement[F]) LeadingCoefficient() F {
	return p.element.Term(0).Coefficient
}

func (p GBElement[F]) String() string {
	return p.element.String()
}
