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
	"strings"

	"github.com/bits-and-blooms/bitset"
)

// Monomial is a product of distinct generators of an exterior algebra,
// identified by the set of their (zero-based) indices.  Thus, for an algebra
// of rank n, a monomial is a fixed-width bit vector over indices 0..n-1, with
// the empty monomial denoting the unit of the algebra.  Monomials are
// immutable, with every operation returning a fresh value.
type Monomial struct {
	width uint
	bits  *bitset.BitSet
}

// NewMonomial constructs a monomial of the given width from zero or more
// generator indices, each of which must lie below the width.
func NewMonomial(width uint, indices ...uint) Monomial {
	bits := bitset.New(width)
	//
	for _, i := range indices {
		if i >= width {
			panic(fmt.Sprintf("generator index %d out of range [0,%d)", i, width))
		}
		//
		bits.Set(i)
	}
	//
	return Monomial{width, bits}
}

// Width returns the number of generators in the ambient algebra.
func (p Monomial) Width() uint {
	return p.width
}

// Degree returns the number of generators making up this monomial.
func (p Monomial) Degree() uint {
	return p.bits.Count()
}

// IsUnit checks whether this is the empty monomial (i.e. the unit of the
// algebra).
func (p Monomial) IsUnit() bool {
	return p.bits.None()
}

// Contains checks whether a given generator index occurs in this monomial.
func (p Monomial) Contains(index uint) bool {
	return p.bits.Test(index)
}

// Disjoint checks whether this monomial shares no generator with the other.
func (p Monomial) Disjoint(other Monomial) bool {
	return p.bits.IntersectionCardinality(other.bits) == 0
}

// Divides checks whether this monomial divides the other.  In an exterior
// algebra, that is simply the subset relation on generator indices.
func (p Monomial) Divides(other Monomial) bool {
	return other.bits.IsSuperSet(p.bits)
}

// Union returns the monomial made up of all generators occurring in either
// this monomial or the other.
func (p Monomial) Union(other Monomial) Monomial {
	return Monomial{p.width, p.bits.Union(other.bits)}
}

// Minus returns the monomial made up of all generators occurring in this
// monomial but not the other.
func (p Monomial) Minus(other Monomial) Monomial {
	return Monomial{p.width, p.bits.Difference(other.bits)}
}

// Equals checks whether two monomials are identical.
func (p Monomial) Equals(other Monomial) bool {
	return p.width == other.width && p.bits.Equal(other.bits)
}

// Indices returns the generator indices of this monomial in ascending order.
func (p Monomial) Indices() []uint {
	indices := make([]uint, 0, p.bits.Count())
	//
	for i, ok := p.bits.NextSet(0); ok; i, ok = p.bits.NextSet(i + 1) {
		indices = append(indices, i)
	}
	//
	return indices
}

// Mul computes the exterior product of two monomials.  When the monomials
// share a generator the product is zero (since every generator squares to
// zero) and ok is false.  Otherwise, the product is their union together with
// the sign arising from anti-commutation, namely -1 raised to the number of
// generator pairs (i,j) with i in this monomial, j in the other and i > j.
func (p Monomial) Mul(other Monomial) (Monomial, int, bool) {
	if !p.Disjoint(other) {
		return Monomial{}, 0, false
	}
	// Count inversions between the two index sequences.
	inversions := uint(0)
	//
	for i, ok := p.bits.NextSet(0); ok; i, ok = p.bits.NextSet(i + 1) {
		if i > 0 {
			inversions += other.bits.Rank(i - 1)
		}
	}
	//
	sign := 1
	if inversions%2 == 1 {
		sign = -1
	}
	//
	return p.Union(other), sign, true
}

func (p Monomial) String() string {
	if p.IsUnit() {
		return "1"
	}
	//
	var builder strings.Builder
	//
	for i, index := range p.Indices() {
		if i != 0 {
			builder.WriteString("*")
		}
		// Generators are named from one upwards.
		fmt.Fprintf(&builder, "e%d", index+1)
	}
	//
	return builder.String()
}
