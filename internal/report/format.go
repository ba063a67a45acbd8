// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package report

import (
	"strconv"
	"strings"
	"time"

	"github.com/ajroetker/go-matbench/matrix"
)

// writeInt appends v in base 10. Signed and unsigned elements are widened
// separately so that the full range of either prints correctly.
func writeInt[T matrix.Element](b *strings.Builder, v T) {
	if v < 0 {
		b.WriteString(strconv.FormatInt(int64(v), 10))
		return
	}
	b.WriteString(strconv.FormatUint(uint64(v), 10))
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
