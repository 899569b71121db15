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
package exterior_test

import (
	"testing"

	"github.com/consensys/go-grobner/pkg/algebra/exterior"
	"github.com/consensys/go-grobner/pkg/util/field"
)

func Test_Parser_01(t *testing.T) {
	var (
		alg = newAlgebra(t, 3)
		f   = mustParse(t, alg, "e1*e2 - e3")
	)
	//
	expected := alg.Sub(
		alg.BasisElement(exterior.NewMonomial(3, 0, 1)),
		alg.Generator(2))
	//
	if !alg.Equals(f, expected) {
		t.Errorf("got %s (expected %s)", f, expected)
	}
}

func Test_Parser_02(t *testing.T) {
	var (
		alg = newAlgebra(t, 3)
	)
	// Coefficients, implicit products and signs.
	check_Parses(t, alg, "2*e1 + 3*e2", "-e1", "1", "- e1*e2*e3", "e2 e3", "2", "e1 - 2 e2")
	// Reordered generators pick up the anti-commutation sign.
	var (
		forward  = mustParse(t, alg, "e1*e2")
		backward = mustParse(t, alg, "e2*e1")
	)
	//
	if !alg.Equals(forward, alg.Neg(backward)) {
		t.Errorf("expected %s == -(%s)", forward, backward)
	}
	// Repeated generators annihilate.
	if !mustParse(t, alg, "e1*e1").IsZero() {
		t.Error("e1*e1 should parse to zero")
	}
	//
	if !mustParse(t, alg, "e1*e2*e1 + e3*e3").IsZero() {
		t.Error("e1*e2*e1 + e3*e3 should parse to zero")
	}
}

func Test_Parser_03(t *testing.T) {
	var (
		alg = newAlgebra(t, 3)
	)
	// Scalars multiply together within a product.
	var (
		f        = mustParse(t, alg, "2*3*e1")
		expected = alg.Scale(alg.Generator(0), field.Uint64[F](6))
	)
	//
	if !alg.Equals(f, expected) {
		t.Errorf("got %s (expected %s)", f, expected)
	}
}

func Test_Parser_04(t *testing.T) {
	var (
		alg = newAlgebra(t, 3)
	)
	// Malformed expressions are rejected.
	for _, input := range []string{"", "e0", "e4", "e", "x1", "e1 +", "*e1", "e1 ** e2", "e1 & e2"} {
		if _, err := alg.Parse(input); err == nil {
			t.Errorf("expected error parsing %q", input)
		}
	}
}

func Test_Parser_05(t *testing.T) {
	var (
		alg = newAlgebra(t, 3)
	)
	// Rendering round trips through the parser.
	for _, input := range []string{"e1*e2 - e3", "e1 + e2 + e3", "-e1*e2*e3", "2*e1 - 2*e2", "0", "1"} {
		var (
			f    = mustParse(t, alg, input)
			back = mustParse(t, alg, f.String())
		)
		//
		if !alg.Equals(f, back) {
			t.Errorf("%q renders as %q which parses differently", input, f.String())
		}
	}
}

// ===================================================================
// Test Helpers
// ===================================================================

func check_Parses(t *testing.T, alg *exterior.Algebra[F], inputs ...string) {
	for _, input := range inputs {
		if _, err := alg.Parse(input); err != nil {
			t.Errorf("parsing %q: %s", input, err)
		}
	}
}
