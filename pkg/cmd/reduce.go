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
)

// reduceCmd represents the reduce command
var reduceCmd = &cobra.Command{
	Use:   "reduce [flags] generator...",
	Short: "Reduce an element to its normal form against an ideal.",
	Long: "Compute the Gröbner basis of the ideal spanned by the given generator\n" +
		"expressions, then reduce the target element to its normal form.  The normal\n" +
		"form is zero exactly when the target lies in the ideal.",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		strategy := strategyFromFlags(cmd, args)
		//
		target, err := strategy.Algebra().Parse(getString(cmd, "target"))
		if err != nil {
			fmt.Printf("target: %s\n", err)
			os.Exit(2)
		}
		//
		if err := strategy.Compute(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		reduced, err := strategy.Reduce(target)
		if err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		fmt.Println(reduced)
	},
}

func init() {
	rootCmd.AddCommand(reduceCmd)
	addIdealFlags(reduceCmd)
	//
	reduceCmd.Flags().String("target", "", "Element to reduce")
	//
	if err := reduceCmd.MarkFlagRequired("target"); err != nil {
		panic(err)
	}
}
