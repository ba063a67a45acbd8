// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build linux

package matmul

import (
	"runtime"
	"testing"

	"golang.org/x/sys/unix"

	"github.com/ajroetker/go-matbench/matrix"
	"github.com/ajroetker/go-matbench/workerpool"
)

// writerThreads runs one (strategy, policy) pair with an observer that
// records the OS thread id that wrote each cell.
func writerThreads(t *testing.T, st Strategy, opts ...Option) [matrix.Size][matrix.Size]int {
	t.Helper()

	var tids [matrix.Size][matrix.Size]int
	// Each cell is recorded by the goroutine that wrote it, so rows stay
	// disjoint here too. Run's join orders these writes before the reads below.
	opts = append(opts, WithCellObserver(func(row, col int) {
		tids[row][col] = unix.Gettid()
	}))

	s := NewSession[int8](opts...)
	defer s.Close()
	s.FillOperands(matrix.Constant[int8](2), matrix.Constant[int8](3))
	s.Run(st, Transposed)

	for i := range matrix.Size {
		for j := range matrix.Size {
			if tids[i][j] == 0 {
				t.Fatalf("%s: cell [%d][%d] never written", st, i, j)
			}
		}
	}
	return tids
}

func assertRowsSingleWriter(t *testing.T, st Strategy, tids [matrix.Size][matrix.Size]int) {
	t.Helper()
	for i := range matrix.Size {
		for j := range matrix.Size {
			if tids[i][j] != tids[i][0] {
				t.Errorf("%s: row %d written by threads %d and %d", st, i, tids[i][0], tids[i][j])
			}
		}
	}
}

func TestThreadedOneThreadPerRow(t *testing.T) {
	tids := writerThreads(t, Threaded)
	assertRowsSingleWriter(t, Threaded, tids)

	owner := make(map[int]int)
	for i := range matrix.Size {
		tid := tids[i][0]
		if prev, ok := owner[tid]; ok {
			t.Errorf("thread %d wrote rows %d and %d", tid, prev, i)
		}
		owner[tid] = i
	}
	if len(owner) != MaxThreads {
		t.Errorf("rows written by %d threads, want %d", len(owner), MaxThreads)
	}
}

func TestThreadedDoesNotUseCaller(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	caller := unix.Gettid()

	tids := writerThreads(t, Threaded)
	for i := range matrix.Size {
		if tids[i][0] == caller {
			t.Errorf("row %d was computed on the calling thread", i)
		}
	}
}

func TestParallelForRowsSingleWriter(t *testing.T) {
	for _, sched := range []workerpool.Schedule{workerpool.Static, workerpool.Dynamic} {
		t.Run(sched.String(), func(t *testing.T) {
			tids := writerThreads(t, ParallelFor, WithWorkers(3), WithSchedule(sched))
			assertRowsSingleWriter(t, ParallelFor, tids)
		})
	}
}

func TestSequentialSingleThread(t *testing.T) {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()
	caller := unix.Gettid()

	tids := writerThreads(t, Sequential)
	for i := range matrix.Size {
		for j := range matrix.Size {
			if tids[i][j] != caller {
				t.Fatalf("cell [%d][%d] written by thread %d, want caller %d", i, j, tids[i][j], caller)
			}
		}
	}
}

func TestCPUClockAdvances(t *testing.T) {
	c, err := NewCPUClock()
	if err != nil {
		t.Fatalf("NewCPUClock: %v", err)
	}
	start := c.Now()
	x := 0
	for i := range 5_000_000 {
		x ^= i * i
	}
	_ = x
	if c.Now() < start {
		t.Errorf("CPU clock went backwards")
	}
}
