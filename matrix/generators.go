// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package matrix

import "math/rand/v2"

// Random returns a generator that draws a 64-bit value from src for each
// cell and truncates it to T. Truncation keeps the low bits, so every value
// of T is reachable, including negative ones for signed types.
//
// Cells are drawn in row-major order; the same source state always yields
// the same matrix.
func Random[T Element](src rand.Source) Generator[T] {
	return func(_, _ int) T {
		return T(src.Uint64())
	}
}

// Constant returns a generator that yields v for every cell.
func Constant[T Element](v T) Generator[T] {
	return func(_, _ int) T {
		return v
	}
}

// FromRows returns a generator that copies rows into the top-left corner of
// the matrix and yields zero elsewhere. rows may be smaller than Size × Size
// and ragged; entries past Size are ignored.
func FromRows[T Element](rows [][]T) Generator[T] {
	return func(i, j int) T {
		if i >= len(rows) || j >= len(rows[i]) {
			var zero T
			return zero
		}
		return rows[i][j]
	}
}
