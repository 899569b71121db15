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

// negLex is the negative lexicographic order.  Monomials are compared
// lexicographically with the largest generator index dominant, and the
// comparison then inverted.  Hence the unit monomial is the largest of all,
// and rank(X) = 2^n - 1 - sum of 2^i for all i in X.
type negLex struct {
	n uint
}

// NegLex constructs the negative lexicographic order over n generators, for
// n in 1..63.
func NegLex(n uint) Order {
	if n == 0 || n > exterior.MaxRank {
		panic("unsupported rank")
	}
	//
	return &negLex{n}
}

// Rank implementation for the Order interface.
func (p *negLex) Rank() uint {
	return p.n
}

// RankOf implementation for the Order interface.
func (p *negLex) RankOf(mono exterior.Monomial) uint64 {
	checkWidth(mono, p.n)
	//
	var value uint64
	//
	for _, index := range mono.Indices() {
		value |= uint64(1) << index
	}
	//
	return (uint64(1)<<p.n - 1) - value
}

// MonomialOf implementation for the Order interface.
func (p *negLex) MonomialOf(rank uint64) exterior.Monomial {
	checkRank(rank, p.n)
	//
	var (
		value   = (uint64(1)<<p.n - 1) - rank
		indices []uint
	)
	//
	for i := uint(0); i < p.n; i++ {
		if value&(uint64(1)<<i) != 0 {
			indices = append(indices, i)
		}
	}
	//
	return exterior.NewMonomial(p.n, indices...)
}

func (p *negLex) String() string {
	return "neglex"
}
