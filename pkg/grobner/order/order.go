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

// Package order provides total orders on the monomials of an exterior
// algebra.  Each order is realised as a codec which bijects monomials over n
// generators with their rank integers 0 .. 2ⁿ-1, such that comparing two
// monomials amounts to comparing their ranks (higher rank meaning larger
// monomial).
package order

import (
	"fmt"

	"github.com/consensys/go-grobner/pkg/algebra/exterior"
)

// Order is a total order on monomials, given as a rank codec.  RankOf and
// MonomialOf are mutually inverse bijections between the monomials over
// Rank() generators and the integers 0 .. 2^Rank()-1.
type Order interface {
	fmt.Stringer
	// Rank returns the number of generators this order covers.
	Rank() uint
	// RankOf returns the rank integer of a given monomial.
	RankOf(mono exterior.Monomial) uint64
	// MonomialOf returns the monomial of a given rank integer.  This panics
	// if the rank lies outside the valid range, since that indicates a broken
	// caller rather than bad input.
	MonomialOf(rank uint64) exterior.Monomial
}

// Parse returns the order of a given name over n generators.  Valid names are
// "neglex", "degrevlex" and "deglex".
func Parse(name string, n uint) (Order, error) {
	if n == 0 || n > exterior.MaxRank {
		return nil, fmt.Errorf("unsupported rank %d (must be in 1..%d)", n, exterior.MaxRank)
	}
	//
	switch name {
	case "neglex":
		return NegLex(n), nil
	case "degrevlex":
		return DegRevLex(n), nil
	case "deglex":
		return DegLex(n), nil
	default:
		return nil, fmt.Errorf("unknown monomial order %q", name)
	}
}

// checkRank enforces the codec contract on an incoming rank integer.
func checkRank(rank uint64, n uint) {
	if rank >= uint64(1)<<n {
		panic(fmt.Sprintf("order: rank %d out of range [0,%d)", rank, uint64(1)<<n))
	}
}

// checkWidth enforces that a monomial belongs to the algebra this order
// covers.
func checkWidth(mono exterior.Monomial, n uint) {
	if mono.Width() != n {
		panic(fmt.Sprintf("order: monomial of width %d given to order of rank %d", mono.Width(), n))
	}
}
