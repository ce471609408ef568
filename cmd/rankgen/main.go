// Copyright 2025 go-ranksort Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command rankgen sorts constant tables at generation time.
//
// Usage:
//
//	rankgen -input . -var thresholds -ranks
//	rankgen -values 5,7,3,1,-5,9 -type int -var demo -pkg demo
//
// Or via go:generate:
//
//	//go:generate go run github.com/ajroetker/go-ranksort/cmd/rankgen -input . -var thresholds
//
// In package mode the generator loads the package at -input, resolves the
// slice literal assigned to -var, and evaluates every element as a
// compile-time constant; a single non-constant element fails the run. The
// table is sorted with the same rank ordering the library applies at run
// time, and the result is written to z_<var>_sorted.go:
//  1. <var>Sorted with the elements in non-descending order
//  2. <var>Ranks with the rank permutation (with -ranks)
//
// The -values flag skips package loading and sorts an inline
// comma-separated list instead, typed by -type.
package main

import (
	"flag"
	"fmt"
	"os"
)

var (
	inputDir     = flag.String("input", ".", "Directory of the package containing the table")
	varName      = flag.String("var", "", "Name of the slice variable to sort (required)")
	values       = flag.String("values", "", "Comma-separated literal values to sort instead of loading a package")
	elemType     = flag.String("type", "int64", "Element type for -values mode (int, int64, float64, string, ...)")
	outputDir    = flag.String("output", ".", "Output directory (default: current directory)")
	outputPrefix = flag.String("output_prefix", "", "Output file name, the default (if empty) is z_<var>_sorted.go")
	packageOut   = flag.String("pkg", "", "Output package name (default: same as input package)")
	emitRanks    = flag.Bool("ranks", false, "Also emit the rank permutation as <var>Ranks")
	elemCount    = flag.Int("n", -1, "Sort only the first n elements, -1 for the whole table")
)

func main() {
	flag.Parse()

	if *varName == "" {
		fmt.Fprintf(os.Stderr, "Error: -var flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}
	if *values != "" && *packageOut == "" {
		fmt.Fprintf(os.Stderr, "Error: -pkg flag is required with -values\n")
		os.Exit(1)
	}

	// Create and run generator
	gen := &Generator{
		InputDir:     *inputDir,
		VarName:      *varName,
		Values:       *values,
		ElemType:     *elemType,
		OutputDir:    *outputDir,
		OutputPrefix: *outputPrefix,
		PackageOut:   *packageOut,
		EmitRanks:    *emitRanks,
		N:            *elemCount,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated sorted table for %s\n", *varName)
}
