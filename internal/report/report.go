// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

// Package report renders benchmark output for the console.
package report

import (
	"io"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/ajroetker/go-matbench/internal/sysinfo"
	"github.com/ajroetker/go-matbench/matmul"
	"github.com/ajroetker/go-matbench/matrix"
)

// Printer writes report sections to w. Write errors are not returned by the
// individual methods; the first one is kept and reported by Err.
type Printer struct {
	w     io.Writer
	p     *message.Printer
	title cases.Caser
	prev  *matmul.Case
	err   error
}

// NewPrinter returns a Printer that formats numbers for English.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{
		w:     w,
		p:     message.NewPrinter(language.English),
		title: cases.Title(language.English),
	}
}

// Err returns the first write error, if any.
func (r *Printer) Err() error {
	return r.err
}

func (r *Printer) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	_, r.err = r.p.Fprintf(r.w, format, args...)
}

// Blank writes an empty line.
func (r *Printer) Blank() {
	r.printf("\n")
}

// Label names a case the way samples are reported: the strategy name, with
// " with <policy> multi" appended for every policy except Transposed.
func Label(c matmul.Case) string {
	if c.Policy == matmul.Transposed {
		return c.Strategy.String()
	}
	return c.Strategy.String() + " with " + c.Policy.String() + " multi"
}

// WriteMatrix writes "label:" followed by one line per row, each element
// followed by a tab.
func WriteMatrix[T matrix.Element](r *Printer, label string, m *matrix.Matrix[T]) {
	var b strings.Builder
	b.WriteString(label)
	b.WriteString(":\n")
	for i := range matrix.Size {
		for j := range matrix.Size {
			writeInt(&b, m.At(i, j))
			b.WriteByte('\t')
		}
		b.WriteByte('\n')
	}
	r.printf("%s", b.String())
}

// Sample writes the label and duration of one run. Consecutive samples are
// separated by a blank line, and by two when the policy changes.
func (r *Printer) Sample(s matmul.Sample) {
	if r.prev != nil {
		r.printf("\n")
		if r.prev.Policy != s.Policy {
			r.printf("\n")
		}
	}
	r.printf("%s\n\t%fms\n", Label(s.Case), s.Milliseconds())
	c := s.Case
	r.prev = &c
}

// Summary writes one line per case with min, mean and max in milliseconds.
func (r *Printer) Summary(rows []matmul.Summary) {
	r.printf("\n%-40s %6s %12s %12s %12s\n", "Case", "Runs", "Min ms", "Mean ms", "Max ms")
	for _, s := range rows {
		r.printf("%-40s %6d %12.6f %12.6f %12.6f\n",
			r.title.String(Label(s.Case)), s.Runs,
			millis(s.Min), millis(s.Mean), millis(s.Max))
	}
}

// Host writes a short description of the machine.
func (r *Printer) Host(h sysinfo.Host) {
	features := strings.Join(h.Features, " ")
	if features == "" {
		features = "none"
	}
	r.printf("host: %s/%s, %d CPUs, GOMAXPROCS=%d, features: %s\n\n",
		h.GOOS, h.GOARCH, h.NumCPU, h.GOMAXPROCS, features)
}
