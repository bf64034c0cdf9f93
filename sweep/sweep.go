//
// sweep.go
//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

// Package sweep cross-checks the multiplier against reference
// arithmetic over pseudorandom operands.
package sweep

import (
	"context"
	"fmt"
	"math/big"
	"sync"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/holiman/uint256"
	"github.com/markkurossi/twolevel/bitvec"
	"github.com/markkurossi/twolevel/logging"
	"github.com/markkurossi/twolevel/metrics"
	"github.com/markkurossi/twolevel/multiplier"
	"github.com/markkurossi/twolevel/prg"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// Config defines the sweep parameters.
type Config struct {
	Count    int
	Workers  int
	MinWidth int
	MaxWidth int
	Seed     int64
	TwoLevel bool
	Netlist  bool
}

// Summary describes a completed sweep.
type Summary struct {
	Count           int
	TotalIterations int
	MaxIterations   int
	Mismatches      int
	Elapsed         time.Duration
	Timing          *Timing
}

func (s *Summary) String() string {
	return fmt.Sprintf("%d multiplications, %d iterations (max %d), %d mismatches, %s",
		s.Count, s.TotalIterations, s.MaxIterations, s.Mismatches, s.Elapsed)
}

// Mode returns the metrics label of the multiplication mode.
func (cfg Config) Mode() string {
	switch {
	case cfg.TwoLevel && cfg.Netlist:
		return "twolevel-netlist"
	case cfg.TwoLevel:
		return "twolevel"
	case cfg.Netlist:
		return "netlist"
	default:
		return "flat"
	}
}

type job struct {
	id int
	mr bitvec.Vector
	md bitvec.Vector
}

// Run runs the sweep, logging to the logger of ctx. All operand pairs are drawn up front from the
// seeded generator so the operands do not depend on the worker
// scheduling. Run returns all product mismatches combined into one
// error.
func Run(ctx context.Context, cfg Config, collector *metrics.Collector) (
	*Summary, error) {

	if cfg.Count < 0 {
		return nil, fmt.Errorf("invalid count %d", cfg.Count)
	}
	if cfg.Workers <= 0 {
		return nil, fmt.Errorf("invalid workers %d", cfg.Workers)
	}
	if cfg.MinWidth < 1 || cfg.MaxWidth < cfg.MinWidth {
		return nil, fmt.Errorf("invalid widths [%d,%d]",
			cfg.MinWidth, cfg.MaxWidth)
	}
	logger := logging.FromContext(ctx)

	timing := NewTiming()

	rnd := prg.New(cfg.Seed)
	width := func() int {
		return cfg.MinWidth + rnd.Intn(cfg.MaxWidth-cfg.MinWidth+1)
	}
	jobs := make([]job, cfg.Count)
	for i := range jobs {
		jobs[i] = job{
			id: i,
			mr: rnd.Vector(width()),
			md: rnd.Vector(width()),
		}
	}

	timing.Sample("Operands", fmt.Sprint(len(jobs)))

	logger.Info("sweep started",
		zap.Int("count", cfg.Count),
		zap.Int("workers", cfg.Workers),
		zap.String("mode", cfg.Mode()),
		zap.Int64("seed", cfg.Seed))

	summary := &Summary{
		Timing: timing,
	}
	var multiplyTime, checkTime time.Duration

	var m sync.Mutex
	var mismatches *multierror.Error

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)

	for _, j := range jobs {
		j := j
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			t0 := time.Now()
			result, err := multiply(cfg, j)
			if err != nil {
				return err
			}
			t1 := time.Now()
			collector.Observe(cfg.Mode(), result.Iterations, t1.Sub(t0))

			checkErr := Check(j.mr, j.md, result)
			t2 := time.Now()

			m.Lock()
			multiplyTime += t1.Sub(t0)
			checkTime += t2.Sub(t1)
			summary.Count++
			summary.TotalIterations += result.Iterations
			summary.MaxIterations = max(summary.MaxIterations, result.Iterations)
			if checkErr != nil {
				summary.Mismatches++
				mismatches = multierror.Append(mismatches,
					fmt.Errorf("#%d %s*%s: %w", j.id, j.mr, j.md, checkErr))
			}
			m.Unlock()

			if checkErr != nil {
				collector.Mismatch()
				logger.Warn("product mismatch",
					zap.Int("id", j.id),
					zap.Stringer("multiplier", j.mr),
					zap.Stringer("multiplicand", j.md),
					zap.Error(checkErr))
			} else {
				logger.Debug("multiplied",
					zap.Int("id", j.id),
					zap.Int("iterations", result.Iterations))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return summary, err
	}
	if err := ctx.Err(); err != nil {
		return summary, err
	}
	sample := timing.Sample("Multiply", fmt.Sprint(summary.Count))
	sample.AbsSubSample("Emulate", multiplyTime)
	sample.AbsSubSample("Check", checkTime)
	summary.Elapsed = timing.Total()

	logger.Info("sweep done", zap.Stringer("summary", summary))

	return summary, mismatches.ErrorOrNil()
}

func multiply(cfg Config, j job) (*multiplier.Result, error) {
	m := multiplier.New(j.mr, j.md)
	m.TwoLevel = cfg.TwoLevel
	m.Netlist = cfg.Netlist
	return m.Multiply()
}

// Check verifies the multiplication result against reference
// arithmetic. It checks the product value, the iteration count, and
// that each consumed mask clears exactly one set register bit.
func Check(mr, md bitvec.Vector, result *multiplier.Result) error {
	var errs *multierror.Error

	if !productMatches(mr, md, result.Product) {
		errs = multierror.Append(errs,
			fmt.Errorf("product %s does not match reference", result.Product))
	}
	if result.Product.Len() != mr.Len()+md.Len() {
		errs = multierror.Append(errs,
			fmt.Errorf("product length %d, expected %d",
				result.Product.Len(), mr.Len()+md.Len()))
	}
	if h := mr.CountSetBits(); result.Iterations != h {
		errs = multierror.Append(errs,
			fmt.Errorf("%d iterations, expected %d", result.Iterations, h))
	}
	for _, step := range result.Steps {
		and := step.Register.Bools().And(step.Consumed.Bools())
		if and.Vector().CountSetBits() != 1 ||
			step.Consumed.CountSetBits() != 1 {
			errs = multierror.Append(errs,
				fmt.Errorf("iteration %d: consumed %s not in register %s",
					step.Iteration, step.Consumed, step.Register))
		}
	}
	return errs.ErrorOrNil()
}

// productMatches compares the product against the reference product.
// Products fitting into 256 bits are computed with 256-bit integers,
// larger ones with math/big.
func productMatches(mr, md, product bitvec.Vector) bool {
	if mr.Len()+md.Len() <= 256 {
		a, okA := mr.Uint256()
		b, okB := md.Uint256()
		p, okP := product.Uint256()
		if okA && okB && okP {
			return new(uint256.Int).Mul(a, b).Eq(p)
		}
	}
	expected := new(big.Int).Mul(mr.Int(), md.Int())
	return expected.Cmp(product.Int()) == 0
}
