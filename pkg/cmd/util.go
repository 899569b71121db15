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
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/consensys/go-grobner/pkg/algebra/exterior"
	"github.com/consensys/go-grobner/pkg/grobner"
	"github.com/consensys/go-grobner/pkg/grobner/order"
	"github.com/consensys/go-grobner/pkg/util/field/bls12_377"
)

// Get an expected boolean flag, or panic if an error arises.
func getFlag(cmd *cobra.Command, flag string) bool {
	r, err := cmd.Flags().GetBool(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected string flag, or panic if an error arises.
func getString(cmd *cobra.Command, flag string) string {
	r, err := cmd.Flags().GetString(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Get an expected unsigned flag, or panic if an error arises.
func getUint(cmd *cobra.Command, flag string) uint {
	r, err := cmd.Flags().GetUint(flag)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	return r
}

// Construct a strategy from the shared command-line flags and the generator
// expressions given as arguments, exiting on any malformed input.
func strategyFromFlags(cmd *cobra.Command, args []string) *grobner.Strategy[bls12_377.Element] {
	ord, err := order.Parse(getString(cmd, "order"), getUint(cmd, "rank"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	side, err := grobner.ParseSide(getString(cmd, "side"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	algebra, err := exterior.NewAlgebra[bls12_377.Element](ord)
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	// Parse generator expressions
	generators := make([]exterior.Element[bls12_377.Element], len(args))
	//
	for i, arg := range args {
		if generators[i], err = algebra.Parse(arg); err != nil {
			fmt.Printf("generator %d: %s\n", i+1, err)
			os.Exit(2)
		}
	}
	//
	strategy, err := grobner.NewStrategy(algebra, side, generators, getFlag(cmd, "homogeneous"))
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}
	//
	return strategy
}

// Register the flags shared by all subcommands operating on an ideal.
func addIdealFlags(cmd *cobra.Command) {
	cmd.Flags().Uint("rank", 3, "Number of generators of the ambient algebra")
	cmd.Flags().String("order", "degrevlex", "Monomial order (neglex, degrevlex or deglex)")
	cmd.Flags().String("side", "twosided", "Side of the ideal (left, right or twosided)")
	cmd.Flags().Bool("homogeneous", false, "Declare that every generator is homogeneous")
}
