// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"go.uber.org/zap"

	"github.com/ajroetker/go-matbench/matrix"
	"github.com/ajroetker/go-matbench/workerpool"
)

// Defaults for a Session built without options.
const (
	// DefaultWorkers lets the parallel-for pool size itself to GOMAXPROCS.
	DefaultWorkers = 0

	// DefaultSchedule hands each pool worker one contiguous block of rows.
	DefaultSchedule = workerpool.Static
)

type options struct {
	workers  int
	schedule workerpool.Schedule
	clock    Clock
	logger   *zap.Logger
	observe  func(row, col int)
}

// Option configures a Session.
type Option func(*options)

// WithWorkers sets the number of goroutines in the parallel-for pool.
// n <= 0 means GOMAXPROCS. It has no effect on the other strategies.
func WithWorkers(n int) Option {
	return func(o *options) { o.workers = n }
}

// WithSchedule selects how the parallel-for strategy assigns rows to workers.
func WithSchedule(s workerpool.Schedule) Option {
	return func(o *options) { o.schedule = s }
}

// WithClock sets the clock used by Measure. The default is a WallClock.
func WithClock(c Clock) Option {
	return func(o *options) { o.clock = c }
}

// WithLogger sets the logger for session diagnostics. Nothing is logged
// inside the timed region.
func WithLogger(l *zap.Logger) Option {
	return func(o *options) { o.logger = l }
}

// WithCellObserver registers fn to be called right after every result cell
// is written, on the goroutine that wrote it. Calls for different rows may
// run concurrently.
func WithCellObserver(fn func(row, col int)) Option {
	return func(o *options) { o.observe = fn }
}

// Session holds the operand and result matrices of one benchmark together
// with the resources its strategies need. Sessions share nothing, so
// several may run at once.
//
// A Session is not safe for concurrent use: Run, Measure and the accessors
// must be called from one goroutine at a time.
type Session[T matrix.Element] struct {
	a, b, c matrix.Matrix[T]

	pool     *workerpool.Pool
	schedule workerpool.Schedule
	clock    Clock
	logger   *zap.Logger
	observe  func(row, col int)
}

// NewSession returns a session with zeroed matrices. Close releases its
// worker pool.
func NewSession[T matrix.Element](opts ...Option) *Session[T] {
	o := options{
		workers:  DefaultWorkers,
		schedule: DefaultSchedule,
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.clock == nil {
		o.clock = NewWallClock()
	}
	if o.logger == nil {
		o.logger = zap.NewNop()
	}

	s := &Session[T]{
		pool:     workerpool.New(o.workers),
		schedule: o.schedule,
		clock:    o.clock,
		logger:   o.logger,
		observe:  o.observe,
	}
	s.logger.Debug("Session created",
		zap.Int("size", matrix.Size),
		zap.Int("poolWorkers", s.pool.NumWorkers()),
		zap.Stringer("schedule", s.schedule))
	return s
}

// Close stops the parallel-for pool. Runs after Close still complete, with
// the parallel-for strategy falling back to the calling goroutine.
func (s *Session[T]) Close() {
	s.pool.Close()
}

// Load copies a and b into the session's operands.
func (s *Session[T]) Load(a, b *matrix.Matrix[T]) {
	s.a, s.b = *a, *b
}

// FillOperands fills A from genA and then B from genB.
func (s *Session[T]) FillOperands(genA, genB matrix.Generator[T]) {
	s.a.Fill(genA)
	s.b.Fill(genB)
}

// A returns a copy of the first operand.
func (s *Session[T]) A() matrix.Matrix[T] { return s.a }

// B returns a copy of the second operand.
func (s *Session[T]) B() matrix.Matrix[T] { return s.b }

// Result returns a copy of the result of the most recent run.
func (s *Session[T]) Result() matrix.Matrix[T] { return s.c }

// ClearResult zeroes the result matrix.
func (s *Session[T]) ClearResult() { s.c.Clear() }
