// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"fmt"
	"time"
)

// Clock is a time source for Measure. Only differences between two Now
// readings are meaningful.
type Clock interface {
	Now() time.Duration
}

// WallClock reads the monotonic wall clock.
type WallClock struct {
	origin time.Time
}

// NewWallClock returns a wall clock whose readings count from now.
func NewWallClock() *WallClock {
	return &WallClock{origin: time.Now()}
}

// Now returns the monotonic time elapsed since the clock was created.
func (c *WallClock) Now() time.Duration {
	return time.Since(c.origin)
}

// Clock names accepted by NewClock.
const (
	ClockWall = "wall"
	ClockCPU  = "cpu"
)

// NewClock returns the clock with the given name.
//
// "cpu" counts CPU time consumed by all threads of the process, so a
// parallel run may report more time than it took on the wall.
func NewClock(name string) (Clock, error) {
	switch name {
	case ClockWall:
		return NewWallClock(), nil
	case ClockCPU:
		c, err := NewCPUClock()
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownClock, name)
}
