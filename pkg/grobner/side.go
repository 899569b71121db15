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

import "fmt"

// Side determines which kind of ideal a generating set spans.
type Side int

const (
	// Left ideals are closed under multiplication on the left.
	Left Side = iota
	// Right ideals are closed under multiplication on the right.
	Right
	// TwoSided ideals are closed under multiplication on either side.
	TwoSided
)

// ParseSide returns the ideal side of a given name.  Valid names are "left",
// "right" and "twosided".
func ParseSide(name string) (Side, error) {
	switch name {
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	case "twosided":
		return TwoSided, nil
	default:
		return 0, fmt.Errorf("unknown ideal side %q", name)
	}
}

func (p Side) String() string {
	switch p {
	case Left:
		return "left"
	case Right:
		return "right"
	case TwoSided:
		return "twosided"
	default:
		return fmt.Sprintf("Side(%d)", int(p))
	}
}
