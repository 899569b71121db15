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
	"strconv"
	"unicode"

	"github.com/consensys/go-grobner/pkg/util/field"
)

// Parse an element from a textual expression, such as "e1*e2 - 2*e3 + 1".
// Expressions are sums and differences of products, where each product
// multiplies an optional integer coefficient with zero or more generators
// (named e1 up to the rank of the algebra).
func (p *Algebra[F]) Parse(input string) (Element[F], error) {
	parser := &elementParser[F]{p, []rune(input), 0}
	//
	element, err := parser.parseSum()
	//
	if err == nil && !parser.done() {
		return p.Zero(), fmt.Errorf("unexpected character %q at offset %d", parser.peek(), parser.offset)
	}
	//
	return element, err
}

type elementParser[F field.Element[F]] struct {
	algebra *Algebra[F]
	input   []rune
	offset  int
}

func (p *elementParser[F]) parseSum() (Element[F], error) {
	var (
		element  = p.algebra.Zero()
		negative = false
	)
	// Leading sign
	if p.match('-') {
		negative = true
	} else {
		p.match('+')
	}
	//
	for {
		term, err := p.parseProduct(negative)
		//
		if err != nil {
			return p.algebra.Zero(), err
		}
		//
		element = p.algebra.Add(element, term)
		//
		if p.match('+') {
			negative = false
		} else if p.match('-') {
			negative = true
		} else {
			return element, nil
		}
	}
}

func (p *elementParser[F]) parseProduct(negative bool) (Element[F], error) {
	var (
		coeff = field.One[F]()
		mono  = NewMonomial(p.algebra.rank)
		seen  = false
		sign  = 1
		dead  = false
	)
	//
	if negative {
		coeff = coeff.Neg()
	}
	// Assemble the final product, which collapses to zero whenever a
	// generator was repeated along the way.
	finish := func() Element[F] {
		if dead {
			return p.algebra.Zero()
		}
		//
		return p.algebra.Scale(p.algebra.BasisElement(mono), applySign(coeff, sign))
	}
	//
	for {
		p.skipSpace()
		//
		switch {
		case p.done():
			if !seen {
				return p.algebra.Zero(), fmt.Errorf("unexpected end of expression")
			}
			//
			return finish(), nil
		case unicode.IsDigit(p.peek()):
			value, err := p.parseNumber()
			if err != nil {
				return p.algebra.Zero(), err
			}
			//
			coeff = coeff.Mul(field.Uint64[F](value))
		case p.peek() == 'e':
			index, err := p.parseGenerator()
			if err != nil {
				return p.algebra.Zero(), err
			}
			// Multiply on the right by the given generator.
			if product, s, ok := mono.Mul(NewMonomial(p.algebra.rank, index)); ok {
				mono = product
				sign *= s
			} else {
				// Generator repeated, hence the product is zero.
				dead = true
			}
		default:
			if !seen {
				return p.algebra.Zero(), fmt.Errorf("unexpected character %q at offset %d", p.peek(), p.offset)
			}
			//
			return finish(), nil
		}
		//
		seen = true
		// Factors are separated by (optional) multiplication signs.
		if !p.match('*') {
			p.skipSpace()
			//
			if p.done() || (p.peek() != 'e' && !unicode.IsDigit(p.peek())) {
				return finish(), nil
			}
		}
	}
}

func (p *elementParser[F]) parseNumber() (uint64, error) {
	start := p.offset
	//
	for !p.done() && unicode.IsDigit(p.peek()) {
		p.offset++
	}
	//
	return strconv.ParseUint(string(p.input[start:p.offset]), 10, 64)
}

func (p *elementParser[F]) parseGenerator() (uint, error) {
	// Skip over the leading 'e'.
	p.offset++
	//
	if p.done() || !unicode.IsDigit(p.peek()) {
		return 0, fmt.Errorf("malformed generator at offset %d", p.offset)
	}
	//
	value, err := p.parseNumber()
	//
	if err != nil {
		return 0, err
	} else if value == 0 || value > uint64(p.algebra.rank) {
		return 0, fmt.Errorf("generator e%d out of range (rank %d algebra)", value, p.algebra.rank)
	}
	// Generators are named from one, but indexed from zero.
	return uint(value - 1), nil
}

// match consumes the given character (skipping leading whitespace), returning
// true if it was found.
func (p *elementParser[F]) match(c rune) bool {
	p.skipSpace()
	//
	if !p.done() && p.peek() == c {
		p.offset++
		return true
	}
	//
	return false
}

func (p *elementParser[F]) skipSpace() {
	for !p.done() && unicode.IsSpace(p.peek()) {
		p.offset++
	}
}

func (p *elementParser[F]) peek() rune {
	return p.input[p.offset]
}

func (p *elementParser[F]) done() bool {
	return p.offset >= len(p.input)
}
