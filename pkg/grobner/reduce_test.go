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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/consensys/go-grobner/pkg/algebra/exterior"
	"github.com/consensys/go-grobner/pkg/util/field"
)

func Test_Reduce_Idempotent(t *testing.T) {
	inputs := []string{
		"e1*e2 - e3",
		"e1*e2*e3 + e1 - 2*e2",
		"e1 + e2 + e3 + 1",
		"e1*e3 - e2*e3 + e3",
		"0",
	}
	//
	for _, name := range []string{"neglex", "degrevlex", "deglex"} {
		s := computed(t, 3, name, TwoSided, "e1*e2 - e3")
		//
		for _, input := range inputs {
			var (
				once  = reduce(t, s, parse(t, s, input))
				twice = reduce(t, s, once)
			)
			//
			assert.True(t, s.Algebra().Equals(once, twice),
				"%s: reduce(reduce(%s)) = %s differs from %s", name, input, twice, once)
		}
	}
}

func Test_Reduce_Membership(t *testing.T) {
	// Ideal members constructed as signed monomial multiples of the
	// generators must all reduce to zero.
	var (
		s       = computed(t, 4, "degrevlex", TwoSided, "e1*e2 - e3*e4", "e1*e3")
		algebra = s.Algebra()
		rank    = algebra.Rank()
	)
	//
	for _, gen := range []string{"e1*e2 - e3*e4", "e1*e3"} {
		element := parse(t, s, gen)
		// The generator itself.
		assertZero(t, s, element)
		// All left and right multiples by single generators.
		for k := uint(0); k < rank; k++ {
			mono := exterior.NewMonomial(rank, k)
			assertZero(t, s, algebra.MulMonomialLeft(mono, element))
			assertZero(t, s, algebra.MulMonomialRight(element, mono))
			// And a mixed product on both sides.
			for l := uint(0); l < rank; l++ {
				assertZero(t, s, algebra.MulMonomialRight(
					algebra.MulMonomialLeft(mono, element), exterior.NewMonomial(rank, l)))
			}
		}
	}
	// Likewise any linear combination of members.
	var (
		f = parse(t, s, "e1*e2 - e3*e4")
		g = parse(t, s, "e1*e3")
		h = algebra.AddScaled(algebra.MulMonomialLeft(exterior.NewMonomial(rank, 3), f), g,
			field.Int64[F](-7))
	)
	//
	assertZero(t, s, h)
}

func Test_Reduce_NormalFormIrreducible(t *testing.T) {
	// No term of a normal form is divisible by any basis leading monomial.
	s := computed(t, 4, "degrevlex", TwoSided, "e1*e2 - e3*e4", "e1*e3")
	//
	for _, input := range []string{"e1*e2", "e1*e2*e3", "e1 + e2*e3 + e1*e2*e3*e4"} {
		reduced := reduce(t, s, parse(t, s, input))
		//
		for _, term := range reduced.Terms() {
			for _, g := range s.Basis() {
				assert.False(t, g.LeadingMonomial().Divides(term.Monomial),
					"term %s of nf(%s) divisible by %s", term.Monomial, input, g.LeadingMonomial())
			}
		}
	}
}

func Test_Reduce_SingleStep(t *testing.T) {
	s := computed(t, 3, "degrevlex", TwoSided, "e1*e2 - e3")
	// Locate the member with leading monomial e1*e2.
	var (
		member GBElement[F]
		found  bool
	)
	//
	for _, g := range s.Basis() {
		if g.LeadingMonomial().Equals(exterior.NewMonomial(3, 0, 1)) {
			member, found = g, true
		}
	}
	//
	require.True(t, found)
	// A single step against e1*e2 - e3 rewrites e1*e2 into e3.
	reduced, ok := s.reduceSingle(parse(t, s, "e1*e2"), member)
	assert.True(t, ok)
	assert.True(t, s.Algebra().Equals(reduced, parse(t, s, "e3")))
	// No step applies to an irreducible element.
	_, ok = s.reduceSingle(parse(t, s, "e3"), member)
	assert.False(t, ok)
}

// ===================================================================
// Test Helpers
// ===================================================================

func reduce(t *testing.T, s *Strategy[F], element exterior.Element[F]) exterior.Element[F] {
	reduced, err := s.Reduce(element)
	require.NoError(t, err)
	//
	return reduced
}

func assertZero(t *testing.T, s *Strategy[F], element exterior.Element[F]) {
	reduced := reduce(t, s, element)
	assert.True(t, reduced.IsZero(), "%s reduces to %s (expected 0)", element, reduced)
}
