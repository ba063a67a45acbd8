// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package matrix

// At returns the element at row i, column j.
func (m *Matrix[T]) At(i, j int) T {
	return m[i][j]
}

// Set stores v at row i, column j.
func (m *Matrix[T]) Set(i, j int, v T) {
	m[i][j] = v
}

// Row returns the storage of row i. Writes through the returned pointer land
// in m. Each row is a disjoint region, so distinct rows may be written
// concurrently without synchronization.
func (m *Matrix[T]) Row(i int) *[Size]T {
	return &m[i]
}

// Fill assigns gen(i, j) to every cell, row by row.
func (m *Matrix[T]) Fill(gen Generator[T]) {
	for i := range Size {
		for j := range Size {
			m[i][j] = gen(i, j)
		}
	}
}

// Clear zeroes every cell.
func (m *Matrix[T]) Clear() {
	*m = Matrix[T]{}
}

// Equal reports whether m and other hold the same elements.
func (m *Matrix[T]) Equal(other *Matrix[T]) bool {
	return *m == *other
}

// Transpose returns a new matrix with rows and columns swapped.
func (m *Matrix[T]) Transpose() Matrix[T] {
	var t Matrix[T]
	for i := range Size {
		for j := range Size {
			t[j][i] = m[i][j]
		}
	}
	return t
}

// FirstDiff returns the first cell (in row-major order) where m and other
// differ. ok is false when the matrices are equal.
func (m *Matrix[T]) FirstDiff(other *Matrix[T]) (i, j int, ok bool) {
	for i := range Size {
		for j := range Size {
			if m[i][j] != other[i][j] {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}
