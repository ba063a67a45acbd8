// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package sysinfo

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/sys/cpu"
)

func TestDetect(t *testing.T) {
	h := Detect()
	assert.Equal(t, runtime.GOOS, h.GOOS)
	assert.Equal(t, runtime.GOARCH, h.GOARCH)
	assert.Positive(t, h.NumCPU)
	assert.Positive(t, h.GOMAXPROCS)
}

func TestFeaturesPerArch(t *testing.T) {
	assert.Empty(t, features("riscv64"))

	if runtime.GOARCH == "amd64" && cpu.X86.HasSSE2 {
		assert.Contains(t, features("amd64"), "sse2")
	}
	if runtime.GOARCH == "arm64" && cpu.ARM64.HasASIMD {
		assert.Contains(t, features("arm64"), "asimd")
	}
}

func TestFields(t *testing.T) {
	h := Host{GOOS: "linux", GOARCH: "amd64", NumCPU: 4, GOMAXPROCS: 2, Features: []string{"sse2"}}
	fields := h.Fields()
	assert.Len(t, fields, 5)
	assert.Equal(t, "goos", fields[0].Key)
	assert.Equal(t, "linux", fields[0].String)
	assert.Equal(t, int64(4), fields[2].Integer)
}
