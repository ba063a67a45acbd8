// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package matrix

// SignedInts is a constraint for signed integer types.
type SignedInts interface {
	~int8 | ~int16 | ~int32 | ~int64
}

// UnsignedInts is a constraint for unsigned integer types.
type UnsignedInts interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// Element is a constraint for the fixed-width integer types a matrix may
// hold. Arithmetic on elements wraps at the type's native width.
type Element interface {
	SignedInts | UnsignedInts
}

// Size is the dimension of every matrix (N in N × N).
const Size = 8

// Matrix is a Size × Size buffer in row-major order.
//
// The zero value is a matrix of zeros and is ready to use.
type Matrix[T Element] [Size][Size]T

// Generator produces the value for cell (i, j) when filling a matrix.
type Generator[T Element] func(i, j int) T
