// Copyright 2025 go-matbench Authors
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

// Command matbench times the row-partitioned matrix benchmark under every
// execution strategy and combination policy.
//
// Usage:
//
//	matbench                       # reference run: seed 1, one round, CPU clock
//	matbench --rounds 100          # adds a min/mean/max summary table
//	matbench --clock wall --workers 4 --schedule dynamic
//	matbench --verify --host -v
//
// The program fills A and B from a seeded generator, prints A, runs the six
// (strategy, policy) cases printing each duration in milliseconds, then
// prints A, B and the result of the last case.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
