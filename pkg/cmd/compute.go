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

// computeCmd represents the compute command
var computeCmd = &cobra.Command{
	Use:   "compute [flags] generator...",
	Short: "Compute the reduced Gröbner basis of an ideal.",
	Long: "Compute the reduced Gröbner basis of the ideal spanned by the given\n" +
		"generator expressions, such as \"e1*e2 - e3\".",
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		strategy := strategyFromFlags(cmd, args)
		//
		if err := strategy.Compute(); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
		//
		for _, element := range strategy.Basis() {
			fmt.Println(element)
		}
	},
}

func init() {
	rootCmd.AddCommand(computeCmd)
	addIdealFlags(computeCmd)
}
