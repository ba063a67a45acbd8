// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"fmt"

	"github.com/ajroetker/go-matbench/matrix"
)

// Policy selects the rule that derives one result cell from the operands.
type Policy int

const (
	// Transposed pairs A[i][j] with B[j][i].
	Transposed Policy = iota // transposed

	// Elementwise pairs A[i][j] with B[i][j].
	Elementwise // elementwise
)

// Policies returns every policy in reporting order.
func Policies() []Policy {
	return []Policy{Transposed, Elementwise}
}

// ParsePolicy returns the policy whose String value is name.
func ParsePolicy(name string) (Policy, error) {
	for _, p := range Policies() {
		if p.String() == name {
			return p, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, name)
}

func (p Policy) valid() bool {
	return p == Transposed || p == Elementwise
}

// Combine returns the value of result cell (i, j) under policy p.
//
// The product is computed in T and wraps at T's width: for int8,
// 100 * 2 is -56.
func Combine[T matrix.Element](p Policy, a, b *matrix.Matrix[T], i, j int) T {
	switch p {
	case Transposed:
		return a[i][j] * b[j][i]
	case Elementwise:
		return a[i][j] * b[i][j]
	}
	panic(fmt.Sprintf("matmul: invalid policy %d", int(p)))
}
