// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package matmul

import (
	"fmt"
	"time"

	"github.com/samber/lo"
	"go.uber.org/zap"
)

// Case is one (strategy, policy) combination of a benchmark plan.
type Case struct {
	Strategy Strategy
	Policy   Policy
}

// Sample is the timing of a single run.
type Sample struct {
	Case
	Elapsed time.Duration
}

// Milliseconds returns Elapsed in fractional milliseconds.
func (s Sample) Milliseconds() float64 {
	return float64(s.Elapsed) / float64(time.Millisecond)
}

// DefaultPlan returns the six cases in reporting order: every strategy under
// Transposed, then every strategy under Elementwise.
func DefaultPlan() []Case {
	return lo.FlatMap(Policies(), func(p Policy, _ int) []Case {
		return lo.Map(Strategies(), func(st Strategy, _ int) Case {
			return Case{Strategy: st, Policy: p}
		})
	})
}

// Measure times one Run. Only the run itself is inside the timed region.
// The result is never negative.
func (s *Session[T]) Measure(strategy Strategy, policy Policy) Sample {
	start := s.clock.Now()
	s.Run(strategy, policy)
	elapsed := max(s.clock.Now()-start, 0)

	s.logger.Debug("Run measured",
		zap.Stringer("strategy", strategy),
		zap.Stringer("policy", policy),
		zap.Duration("elapsed", elapsed))
	return Sample{Case: Case{Strategy: strategy, Policy: policy}, Elapsed: elapsed}
}

// RunPlan measures every case of plan, rounds times over. Samples are
// returned in execution order: the whole plan for round one, then round two,
// and so on. rounds < 1 is treated as 1.
//
// The result matrix afterwards holds the output of the last case.
func (s *Session[T]) RunPlan(plan []Case, rounds int) []Sample {
	rounds = max(rounds, 1)
	samples := make([]Sample, 0, len(plan)*rounds)
	for range rounds {
		for _, c := range plan {
			samples = append(samples, s.Measure(c.Strategy, c.Policy))
		}
	}
	return samples
}

// Summary aggregates the samples of one case.
type Summary struct {
	Case
	Runs           int
	Min, Mean, Max time.Duration
}

// Summarize groups samples by case, in order of first appearance.
func Summarize(samples []Sample) []Summary {
	groups := lo.GroupBy(samples, func(s Sample) Case { return s.Case })
	order := lo.Uniq(lo.Map(samples, func(s Sample, _ int) Case { return s.Case }))

	return lo.Map(order, func(c Case, _ int) Summary {
		elapsed := lo.Map(groups[c], func(s Sample, _ int) time.Duration { return s.Elapsed })
		return Summary{
			Case: c,
			Runs: len(elapsed),
			Min:  lo.Min(elapsed),
			Mean: lo.Mean(elapsed),
			Max:  lo.Max(elapsed),
		}
	})
}

// Verify runs every strategy under policy, starting from a cleared result
// each time, and compares each result with the sequential one. It returns
// an error wrapping ErrMismatch at the first differing cell.
func (s *Session[T]) Verify(policy Policy) error {
	s.c.Clear()
	s.Run(Sequential, policy)
	want := s.c

	for _, st := range Strategies() {
		if st == Sequential {
			continue
		}
		s.c.Clear()
		s.Run(st, policy)
		if i, j, ok := want.FirstDiff(&s.c); ok {
			return fmt.Errorf("%w: %s/%s cell [%d][%d] = %d, sequential = %d",
				ErrMismatch, st, policy, i, j, s.c[i][j], want[i][j])
		}
	}
	s.logger.Debug("Strategies agree", zap.Stringer("policy", policy))
	return nil
}
