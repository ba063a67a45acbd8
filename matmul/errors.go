// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import "errors"

var (
	// ErrUnknownStrategy is returned by ParseStrategy for unrecognized names.
	ErrUnknownStrategy = errors.New("matmul: unknown strategy")

	// ErrUnknownPolicy is returned by ParsePolicy for unrecognized names.
	ErrUnknownPolicy = errors.New("matmul: unknown policy")

	// ErrUnknownClock is returned by NewClock for unrecognized names.
	ErrUnknownClock = errors.New("matmul: unknown clock")

	// ErrClockUnsupported means the requested clock is not available on this
	// platform.
	ErrClockUnsupported = errors.New("matmul: clock not supported on this platform")

	// ErrMismatch is returned by Verify when a strategy disagrees with the
	// sequential baseline.
	ErrMismatch = errors.New("matmul: result mismatch")
)
