// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

//go:build !linux

package matmul

import "time"

// CPUClock reads the CPU time consumed by the whole process. It is only
// available on linux.
type CPUClock struct{}

// NewCPUClock always fails on this platform.
func NewCPUClock() (*CPUClock, error) {
	return nil, ErrClockUnsupported
}

// Now always returns zero on this platform.
func (*CPUClock) Now() time.Duration {
	return 0
}
