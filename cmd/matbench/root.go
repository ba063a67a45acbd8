// Copyright 2025 The go-matbench Authors. SPDX-License-Identifier: Apache-2.0

package main

import (
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/ajroetker/go-matbench/internal/report"
	"github.com/ajroetker/go-matbench/internal/sysinfo"
	"github.com/ajroetker/go-matbench/matmul"
	"github.com/ajroetker/go-matbench/matrix"
	"github.com/ajroetker/go-matbench/workerpool"
)

// element is the matrix element type of the benchmark binary.
type element = int8

type config struct {
	seed     uint64
	rounds   int
	clock    string
	workers  int
	schedule string
	verify   bool
	host     bool
	verbose  bool
}

func (c *config) addFlags(fs *pflag.FlagSet) {
	fs.Uint64Var(&c.seed, "seed", 1, "seed for the operand generator")
	fs.IntVar(&c.rounds, "rounds", 1, "times to run the whole plan; more than one prints a summary")
	fs.StringVar(&c.clock, "clock", matmul.ClockCPU, "time source: cpu (process CPU time) or wall")
	fs.IntVar(&c.workers, "workers", matmul.DefaultWorkers, "parallel-for pool size (0 means GOMAXPROCS)")
	fs.StringVar(&c.schedule, "schedule", matmul.DefaultSchedule.String(), "parallel-for schedule: static or dynamic")
	fs.BoolVar(&c.verify, "verify", false, "check that every strategy matches the sequential result before timing")
	fs.BoolVar(&c.host, "host", false, "print the host description first")
	fs.BoolVarP(&c.verbose, "verbose", "v", false, "log diagnostics to stderr")
}

func newRootCmd(out io.Writer) *cobra.Command {
	var cfg config
	cmd := &cobra.Command{
		Use:           "matbench",
		Short:         "Time the row-partitioned matrix benchmark under each strategy",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(_ *cobra.Command, _ []string) error {
			logger, err := newLogger(cfg.verbose)
			if err != nil {
				return err
			}
			defer func() { _ = logger.Sync() }()
			return run(out, cfg, logger)
		},
	}
	cfg.addFlags(cmd.Flags())
	return cmd
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	return zap.NewDevelopment()
}

// newClock resolves the clock flag. A CPU clock that the platform lacks
// falls back to the wall clock with a warning.
func newClock(name string, logger *zap.Logger) (matmul.Clock, error) {
	clock, err := matmul.NewClock(name)
	if errors.Is(err, matmul.ErrClockUnsupported) {
		logger.Warn("CPU clock unavailable, using wall clock", zap.Error(err))
		return matmul.NewWallClock(), nil
	}
	return clock, err
}

func run(out io.Writer, cfg config, logger *zap.Logger) error {
	schedule, err := workerpool.ParseSchedule(cfg.schedule)
	if err != nil {
		return err
	}
	clock, err := newClock(cfg.clock, logger)
	if err != nil {
		return err
	}
	if cfg.rounds < 1 {
		return fmt.Errorf("--rounds must be at least 1, got %d", cfg.rounds)
	}

	host := sysinfo.Detect()
	logger.Debug("Host detected", host.Fields()...)

	s := matmul.NewSession[element](
		matmul.WithWorkers(cfg.workers),
		matmul.WithSchedule(schedule),
		matmul.WithClock(clock),
		matmul.WithLogger(logger),
	)
	defer s.Close()

	src := rand.NewPCG(cfg.seed, 0)
	s.FillOperands(matrix.Random[element](src), matrix.Random[element](src))

	r := report.NewPrinter(out)
	if cfg.host {
		r.Host(host)
	}

	a, b := s.A(), s.B()
	report.WriteMatrix(r, "", &a)

	if cfg.verify {
		for _, p := range matmul.Policies() {
			if err := s.Verify(p); err != nil {
				return err
			}
		}
	}

	samples := s.RunPlan(matmul.DefaultPlan(), cfg.rounds)
	if cfg.rounds == 1 {
		for _, sample := range samples {
			r.Sample(sample)
		}
	} else {
		r.Summary(matmul.Summarize(samples))
	}

	c := s.Result()
	report.WriteMatrix(r, "A", &a)
	r.Blank()
	report.WriteMatrix(r, "B", &b)
	r.Blank()
	report.WriteMatrix(r, "C", &c)
	return r.Err()
}
