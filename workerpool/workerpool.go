// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package workerpool provides the data-parallel loop construct used by the
// parallel-for execution strategy: a persistent set of worker goroutines
// that split an index range [0, n) between them and rejoin before the loop
// call returns.
//
// The pool size is chosen by the caller or defaults to GOMAXPROCS, so it is
// not tied to the number of iterations. Iterations never run twice and the
// loop call never returns while one is still running.
//
// Usage:
//
//	pool := workerpool.New(0)
//	defer pool.Close()
//
//	pool.For(rows, workerpool.Static, func(row int) {
//	    computeRow(row)
//	})
package workerpool

import (
	"errors"
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"
)

// ErrUnknownSchedule is returned by ParseSchedule for unrecognized names.
var ErrUnknownSchedule = errors.New("workerpool: unknown schedule")

// Schedule selects how loop iterations are assigned to workers.
type Schedule int

const (
	// Static gives each worker one contiguous chunk of ceil(n/workers)
	// iterations, decided before any iteration runs.
	Static Schedule = iota

	// Dynamic lets workers claim one iteration at a time from a shared
	// counter until the range is exhausted.
	Dynamic
)

// String returns the schedule name accepted by ParseSchedule.
func (s Schedule) String() string {
	switch s {
	case Static:
		return "static"
	case Dynamic:
		return "dynamic"
	default:
		return fmt.Sprintf("Schedule(%d)", int(s))
	}
}

// ParseSchedule returns the schedule with the given name.
func ParseSchedule(name string) (Schedule, error) {
	switch name {
	case "static":
		return Static, nil
	case "dynamic":
		return Dynamic, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownSchedule, name)
}

// Pool is a fixed set of worker threads reused by every loop it runs.
type Pool struct {
	numWorkers int
	workC      chan task
	closeOnce  sync.Once
	closed     atomic.Bool
}

// task is one worker's share of a loop. done is the loop's join barrier.
type task struct {
	fn   func()
	done *sync.WaitGroup
}

// New starts a pool with numWorkers goroutines.
// If numWorkers <= 0, GOMAXPROCS is used.
func New(numWorkers int) *Pool {
	if numWorkers <= 0 {
		numWorkers = runtime.GOMAXPROCS(0)
	}

	p := &Pool{
		numWorkers: numWorkers,
		workC:      make(chan task, numWorkers),
	}
	for range numWorkers {
		go p.worker()
	}
	return p
}

// worker keeps its goroutine on one OS thread for the life of the pool, so a
// chunk of iterations never migrates between threads. The thread exits with
// the goroutine after Close.
func (p *Pool) worker() {
	runtime.LockOSThread()
	for t := range p.workC {
		t.fn()
		t.done.Done()
	}
}

// NumWorkers returns the number of goroutines in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Close stops the workers once queued work has drained. It is safe to call
// more than once. Loops started after Close run on the calling goroutine.
func (p *Pool) Close() {
	p.closeOnce.Do(func() {
		p.closed.Store(true)
		close(p.workC)
	})
}

// For runs body(i) for every i in [0, n) using the given schedule and blocks
// until all iterations have returned.
func (p *Pool) For(n int, s Schedule, body func(i int)) {
	switch s {
	case Static:
		p.ParallelFor(n, func(start, end int) {
			for i := start; i < end; i++ {
				body(i)
			}
		})
	case Dynamic:
		p.ParallelForAtomic(n, body)
	default:
		panic(fmt.Sprintf("workerpool: invalid schedule %d", int(s)))
	}
}

// ParallelFor splits [0, n) into at most NumWorkers contiguous chunks and
// calls fn(start, end) once per chunk on the pool. Blocks until every chunk
// is done.
func (p *Pool) ParallelFor(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		fn(0, n)
		return
	}

	chunk := (n + workers - 1) / workers
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		p.workC <- task{
			fn:   func() { fn(start, end) },
			done: &wg,
		}
	}
	wg.Wait()
}

// ParallelForAtomic calls fn(i) for every i in [0, n), with workers claiming
// indices from a shared counter. Blocks until every index is done.
func (p *Pool) ParallelForAtomic(n int, fn func(i int)) {
	if n <= 0 {
		return
	}

	workers := min(p.numWorkers, n)
	if workers == 1 || p.closed.Load() {
		for i := range n {
			fn(i)
		}
		return
	}

	var next atomic.Int64
	var wg sync.WaitGroup
	wg.Add(workers)
	for range workers {
		p.workC <- task{
			fn: func() {
				for {
					i := int(next.Add(1)) - 1
					if i >= n {
						return
					}
					fn(i)
				}
			},
			done: &wg,
		}
	}
	wg.Wait()
}
