// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package matmul

// computeRow writes every cell of result row `row` under policy p.
// It reads the operands and writes only that row, so calls for different
// rows may run concurrently with no synchronization.
func (s *Session[T]) computeRow(row int, p Policy) {
	out := s.c.Row(row)
	for j := range out {
		out[j] = Combine(p, &s.a, &s.b, row, j)
		if s.observe != nil {
			s.observe(row, j)
		}
	}
}
