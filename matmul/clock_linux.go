// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build linux

package matmul

import (
	"fmt"
	"time"

	"golang.org/x/sys/unix"
)

// CPUClock reads the CPU time consumed by the whole process.
type CPUClock struct{}

// NewCPUClock checks that the process CPU-time clock is readable.
func NewCPUClock() (*CPUClock, error) {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrClockUnsupported, err)
	}
	return &CPUClock{}, nil
}

// Now returns the CPU time consumed so far.
func (*CPUClock) Now() time.Duration {
	var ts unix.Timespec
	if err := unix.ClockGettime(unix.CLOCK_PROCESS_CPUTIME_ID, &ts); err != nil {
		// NewCPUClock already proved the clock readable.
		panic(fmt.Sprintf("matmul: reading process CPU clock: %v", err))
	}
	return time.Duration(ts.Nano())
}
