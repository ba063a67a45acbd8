// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package sysinfo describes the host a benchmark ran on, so timings can be
// read against the hardware that produced them.
package sysinfo

import (
	"runtime"

	"go.uber.org/zap"
	"golang.org/x/sys/cpu"
)

// Host is a snapshot of the machine and runtime configuration.
type Host struct {
	GOOS       string
	GOARCH     string
	NumCPU     int
	GOMAXPROCS int
	// Features lists the SIMD extensions detected on this CPU, widest last.
	Features []string
}

// Detect reads the current host description.
func Detect() Host {
	return Host{
		GOOS:       runtime.GOOS,
		GOARCH:     runtime.GOARCH,
		NumCPU:     runtime.NumCPU(),
		GOMAXPROCS: runtime.GOMAXPROCS(0),
		Features:   features(runtime.GOARCH),
	}
}

type feature struct {
	name    string
	present bool
}

func features(goarch string) []string {
	var table []feature
	switch goarch {
	case "amd64", "386":
		table = []feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse4.1", cpu.X86.HasSSE41},
			{"sse4.2", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"fma", cpu.X86.HasFMA},
			{"avx2", cpu.X86.HasAVX2},
			{"avx512f", cpu.X86.HasAVX512F},
		}
	case "arm64":
		table = []feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"asimdhp", cpu.ARM64.HasASIMDHP},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}

	var out []string
	for _, f := range table {
		if f.present {
			out = append(out, f.name)
		}
	}
	return out
}

// Fields returns h as structured log fields.
func (h Host) Fields() []zap.Field {
	return []zap.Field{
		zap.String("goos", h.GOOS),
		zap.String("goarch", h.GOARCH),
		zap.Int("numCPU", h.NumCPU),
		zap.Int("gomaxprocs", h.GOMAXPROCS),
		zap.Strings("features", h.Features),
	}
}
