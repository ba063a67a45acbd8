// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"fmt"
	"runtime"
	"sync"

	"github.com/ajroetker/go-matbench/matrix"
)

// MaxThreads is the number of threads the Threaded strategy starts per run:
// one per row.
const MaxThreads = matrix.Size

// Strategy selects how row work is dispatched during a run.
type Strategy int

const (
	// Sequential computes the rows in order on the calling goroutine.
	Sequential Strategy = iota // sequential

	// Threaded starts MaxThreads goroutines, one per row, each on a
	// dedicated OS thread.
	Threaded // threaded

	// ParallelFor runs the rows as iterations of a data-parallel loop on
	// the session's worker pool.
	ParallelFor // parallel-for
)

// Strategies returns every strategy in reporting order.
func Strategies() []Strategy {
	return []Strategy{Sequential, Threaded, ParallelFor}
}

// ParseStrategy returns the strategy whose String value is name.
func ParseStrategy(name string) (Strategy, error) {
	for _, st := range Strategies() {
		if st.String() == name {
			return st, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownStrategy, name)
}

// Run overwrites the result matrix using the given strategy and policy.
// When Run returns, every result cell has been written exactly once and no
// goroutine started by the run is still executing.
//
// Run panics if strategy or policy is not one of the declared constants.
func (s *Session[T]) Run(strategy Strategy, policy Policy) {
	if !policy.valid() {
		panic(fmt.Sprintf("matmul: invalid policy %d", int(policy)))
	}

	switch strategy {
	case Sequential:
		s.runSequential(policy)
	case Threaded:
		s.runThreaded(policy)
	case ParallelFor:
		s.runParallelFor(policy)
	default:
		panic(fmt.Sprintf("matmul: invalid strategy %d", int(strategy)))
	}
}

func (s *Session[T]) runSequential(p Policy) {
	for i := range matrix.Size {
		for j := range matrix.Size {
			s.c[i][j] = Combine(p, &s.a, &s.b, i, j)
			if s.observe != nil {
				s.observe(i, j)
			}
		}
	}
}

// runThreaded gives each row its own goroutine and OS thread. The goroutine
// never unlocks its thread, so the runtime destroys the thread when the row
// is done and no thread outlives the run.
func (s *Session[T]) runThreaded(p Policy) {
	var wg sync.WaitGroup
	for row := range MaxThreads {
		wg.Go(func() {
			runtime.LockOSThread()
			s.computeRow(row, p)
		})
	}
	wg.Wait()
}

func (s *Session[T]) runParallelFor(p Policy) {
	s.pool.For(matrix.Size, s.schedule, func(row int) {
		s.computeRow(row, p)
	})
}
