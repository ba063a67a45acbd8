// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package matmul runs and times the row-partitioned matrix combination
// benchmark.
//
// A Session owns two operand matrices and one result matrix. Each call to
// Run fills the whole result using one of three execution strategies:
//
//   - Sequential: one loop over the rows on the calling goroutine.
//   - Threaded: one goroutine per row, each locked to its own OS thread,
//     joined before Run returns.
//   - ParallelFor: a session-owned worker pool splits the rows between an
//     implementation-chosen number of workers.
//
// and one of two combination policies:
//
//   - Transposed: C[i][j] = A[i][j] * B[j][i]
//   - Elementwise: C[i][j] = A[i][j] * B[i][j]
//
// Transposed is not the matrix product; it is a distinct rule and is kept as
// written.
//
// Every row of the result is written by exactly one worker and the operands
// are only read, so the result needs no locking. For a fixed pair of
// operands and policy all strategies produce the same result; only the
// timing differs.
//
// Usage:
//
//	s := matmul.NewSession[int8]()
//	defer s.Close()
//
//	s.FillOperands(matrix.Random[int8](src), matrix.Random[int8](src))
//	for _, c := range matmul.DefaultPlan() {
//	    sample := s.Measure(c.Strategy, c.Policy)
//	    fmt.Printf("%s: %fms\n", c.Strategy, sample.Milliseconds())
//	}
package matmul

//go:generate go tool stringer -type=Strategy,Policy -linecomment -output=enum_string.go
