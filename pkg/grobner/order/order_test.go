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
	"testing"

	"github.com/consensys/go-grobner/pkg/algebra/exterior"
)

func Test_NegLex_01(t *testing.T) {
	for n := uint(1); n <= 8; n++ {
		check_Bijection(t, NegLex(n))
	}
}

func Test_NegLex_02(t *testing.T) {
	// The unit monomial is the largest of all under neglex.
	ord := NegLex(3)
	unit := exterior.NewMonomial(3)
	//
	if ord.RankOf(unit) != 7 {
		t.Errorf("unit monomial has rank %d (expected 7)", ord.RankOf(unit))
	}
}

func Test_NegLex_03(t *testing.T) {
	check_Precedes(t, NegLex(3), mono(3, 2), mono(3, 1))    // e3 < e2
	check_Precedes(t, NegLex(3), mono(3, 1), mono(3, 0))    // e2 < e1
	check_Precedes(t, NegLex(3), mono(3, 2), mono(3, 0, 1)) // e3 < e1*e2
	check_Precedes(t, NegLex(3), mono(3, 0, 1, 2), mono(3)) // e1*e2*e3 < 1
}

func Test_NegLex_04(t *testing.T) {
	for n := uint(1); n <= 6; n++ {
		check_Comparator(t, NegLex(n), compareNegLex)
	}
}

func Test_DegRevLex_01(t *testing.T) {
	for n := uint(1); n <= 8; n++ {
		check_Bijection(t, DegRevLex(n))
	}
}

func Test_DegRevLex_02(t *testing.T) {
	for n := uint(1); n <= 8; n++ {
		check_DegreeMonotone(t, DegRevLex(n))
	}
}

func Test_DegRevLex_03(t *testing.T) {
	// Within a degree: e2*e3 < e1*e3 < e1*e2, whilst e1*e4 < e2*e3.
	check_Precedes(t, DegRevLex(3), mono(3, 1, 2), mono(3, 0, 2))
	check_Precedes(t, DegRevLex(3), mono(3, 0, 2), mono(3, 0, 1))
	check_Precedes(t, DegRevLex(4), mono(4, 0, 3), mono(4, 1, 2))
}

func Test_DegRevLex_04(t *testing.T) {
	for n := uint(1); n <= 6; n++ {
		check_Comparator(t, DegRevLex(n), compareDegRevLex)
	}
}

func Test_DegLex_01(t *testing.T) {
	for n := uint(1); n <= 8; n++ {
		check_Bijection(t, DegLex(n))
	}
}

func Test_DegLex_02(t *testing.T) {
	for n := uint(1); n <= 8; n++ {
		check_DegreeMonotone(t, DegLex(n))
	}
}

func Test_DegLex_03(t *testing.T) {
	// Within a degree: e2*e3 < e1*e3 < e1*e2, whilst e2*e3 < e1*e4.
	check_Precedes(t, DegLex(3), mono(3, 1, 2), mono(3, 0, 2))
	check_Precedes(t, DegLex(3), mono(3, 0, 2), mono(3, 0, 1))
	check_Precedes(t, DegLex(4), mono(4, 1, 2), mono(4, 0, 3))
}

func Test_DegLex_04(t *testing.T) {
	for n := uint(1); n <= 6; n++ {
		check_Comparator(t, DegLex(n), compareDegLex)
	}
}

func Test_Order_Parse(t *testing.T) {
	for _, name := range []string{"neglex", "degrevlex", "deglex"} {
		ord, err := Parse(name, 4)
		//
		if err != nil {
			t.Fatalf("parsing %q failed: %s", name, err)
		} else if ord.String() != name {
			t.Errorf("parsed %q, got %q", name, ord.String())
		} else if ord.Rank() != 4 {
			t.Errorf("parsed %q with rank %d", name, ord.Rank())
		}
	}
	// Invalid configurations
	if _, err := Parse("lex", 4); err == nil {
		t.Error("expected error for unknown order")
	}
	//
	if _, err := Parse("deglex", 0); err == nil {
		t.Error("expected error for rank 0")
	}
	//
	if _, err := Parse("deglex", 64); err == nil {
		t.Error("expected error for rank 64")
	}
}

func Test_Order_InvalidRank(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for out-of-range rank")
		}
	}()
	//
	DegRevLex(3).MonomialOf(8)
}

// ===================================================================
// Test Helpers
// ===================================================================

// check_Bijection enumerates every valid rank, checking the codec round
// trips in both directions.
func check_Bijection(t *testing.T, ord Order) {
	var (
		n    = ord.Rank()
		size = uint64(1) << n
	)
	//
	seen := make(map[uint64]bool, size)
	//
	for rank := uint64(0); rank < size; rank++ {
		mono := ord.MonomialOf(rank)
		//
		if back := ord.RankOf(mono); back != rank {
			t.Fatalf("%s (n=%d): rank %d maps to %s which maps back to %d", ord, n, rank, mono, back)
		}
		//
		if seen[rank] {
			t.Fatalf("%s (n=%d): rank %d produced twice", ord, n, rank)
		}
		//
		seen[rank] = true
	}
}

// check_DegreeMonotone enforces that a degree-major order ranks any monomial
// of lower degree below every monomial of higher degree.
func check_DegreeMonotone(t *testing.T, ord Order) {
	var (
		n    = ord.Rank()
		size = uint64(1) << n
		last = uint(0)
	)
	//
	for rank := uint64(0); rank < size; rank++ {
		degree := ord.MonomialOf(rank).Degree()
		//
		if degree < last {
			t.Fatalf("%s (n=%d): degree drops from %d to %d at rank %d", ord, n, last, degree, rank)
		}
		//
		last = degree
	}
}

// check_Comparator confirms the rank order coincides with a reference
// comparator across all pairs of monomials.
func check_Comparator(t *testing.T, ord Order, compare func(x, y exterior.Monomial) int) {
	var (
		n    = ord.Rank()
		size = uint64(1) << n
	)
	//
	for i := uint64(0); i < size; i++ {
		for j := uint64(0); j < size; j++ {
			var (
				x, y = ord.MonomialOf(i), ord.MonomialOf(j)
				sign = compare(x, y)
			)
			//
			if (i < j && sign >= 0) || (i > j && sign <= 0) || (i == j && sign != 0) {
				t.Fatalf("%s (n=%d): ranks %d,%d disagree with comparator on %s vs %s", ord, n, i, j, x, y)
			}
		}
	}
}

func check_Precedes(t *testing.T, ord Order, smaller, larger exterior.Monomial) {
	if ord.RankOf(smaller) >= ord.RankOf(larger) {
		t.Errorf("%s: expected %s < %s (got ranks %d >= %d)", ord, smaller, larger,
			ord.RankOf(smaller), ord.RankOf(larger))
	}
}

func mono(n uint, indices ...uint) exterior.Monomial {
	return exterior.NewMonomial(n, indices...)
}

// compareNegLex inverts the comparison of the raw bit-vector values.
func compareNegLex(x, y exterior.Monomial) int {
	var xv, yv uint64
	//
	for _, i := range x.Indices() {
		xv |= uint64(1) << i
	}
	//
	for _, i := range y.Indices() {
		yv |= uint64(1) << i
	}
	//
	switch {
	case xv > yv:
		return -1
	case xv < yv:
		return 1
	default:
		return 0
	}
}

// compareDegRevLex compares by degree, breaking ties such that the larger
// monomial is the one not containing the largest differing index.
func compareDegRevLex(x, y exterior.Monomial) int {
	if x.Degree() != y.Degree() {
		return int(x.Degree()) - int(y.Degree())
	}
	//
	for i := int(x.Width()) - 1; i >= 0; i-- {
		xc, yc := x.Contains(uint(i)), y.Contains(uint(i))
		//
		if xc && !yc {
			return -1
		} else if yc && !xc {
			return 1
		}
	}
	//
	return 0
}

// compareDegLex compares by degree, breaking ties such that the larger
// monomial is the one containing the smallest differing index.
func compareDegLex(x, y exterior.Monomial) int {
	if x.Degree() != y.Degree() {
		return int(x.Degree()) - int(y.Degree())
	}
	//
	for i := uint(0); i < x.Width(); i++ {
		xc, yc := x.Contains(i), y.Contains(i)
		//
		if xc && !yc {
			return 1
		} else if yc && !xc {
			return -1
		}
	}
	//
	return 0
}
