// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package matrix provides the fixed-capacity square buffers the benchmark
// operates on.
//
// Every matrix is Size × Size and backed by a Go array, so an index past the
// capacity is caught by the runtime bounds check and panics. There is no
// error path for out-of-range access: the callers in this module only ever
// iterate [0, Size).
//
// Usage:
//
//	var a, b matrix.Matrix[int8]
//	a.Fill(matrix.Random[int8](rand.NewPCG(1, 0)))
//	b.Fill(matrix.Random[int8](rand.NewPCG(2, 0)))
//
//	row := a.Row(3) // the region one row worker owns
package matrix
