//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package sweep

import (
	"bytes"
	"context"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/markkurossi/tabulate"
	"github.com/markkurossi/twolevel/bitvec"
	"github.com/markkurossi/twolevel/logging"
	"github.com/markkurossi/twolevel/metrics"
	"github.com/markkurossi/twolevel/multiplier"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest"
	"go.uber.org/zap/zaptest/observer"
)

func TestRun(t *testing.T) {
	for _, cfg := range []Config{
		{Count: 200, Workers: 4, MinWidth: 1, MaxWidth: 48, Seed: 1},
		{Count: 100, Workers: 3, MinWidth: 1, MaxWidth: 33, Seed: 2,
			TwoLevel: true},
		{Count: 50, Workers: 2, MinWidth: 1, MaxWidth: 24, Seed: 3,
			Netlist: true},
	} {
		t.Run(cfg.Mode(), func(t *testing.T) {
			reg := prometheus.NewRegistry()
			collector := metrics.New(reg)

			ctx := logging.NewContext(context.Background(),
				zaptest.NewLogger(t))
			summary, err := Run(ctx, cfg, collector)
			require.NoError(t, err)

			assert.Equal(t, cfg.Count, summary.Count)
			assert.Equal(t, 0, summary.Mismatches)
			assert.LessOrEqual(t, summary.MaxIterations, cfg.MaxWidth)
			assert.Equal(t, float64(cfg.Count), testutil.ToFloat64(
				collector.Multiplications.WithLabelValues(cfg.Mode())))
			assert.Equal(t, 0.0, testutil.ToFloat64(collector.Mismatches))
		})
	}
}

func TestDeterministic(t *testing.T) {
	cfg := Config{Count: 64, Workers: 8, MinWidth: 4, MaxWidth: 16, Seed: 9}

	a, err := Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	b, err := Run(context.Background(), cfg, nil)
	require.NoError(t, err)

	assert.Equal(t, a.TotalIterations, b.TotalIterations)
	assert.Equal(t, a.MaxIterations, b.MaxIterations)
}

func TestWideOperands(t *testing.T) {
	// Products wider than 256 bits use the math/big reference.
	cfg := Config{Count: 8, Workers: 2, MinWidth: 140, MaxWidth: 200, Seed: 5}
	summary, err := Run(context.Background(), cfg, nil)
	require.NoError(t, err)
	assert.Equal(t, 8, summary.Count)
}

func TestInvalidConfig(t *testing.T) {
	_, err := Run(context.Background(), Config{Count: 1, Workers: 0,
		MinWidth: 1, MaxWidth: 1}, nil)
	assert.Error(t, err)

	_, err = Run(context.Background(), Config{Count: 1, Workers: 1,
		MinWidth: 4, MaxWidth: 2}, nil)
	assert.Error(t, err)

	_, err = Run(context.Background(), Config{Count: -1, Workers: 1,
		MinWidth: 1, MaxWidth: 2}, nil)
	assert.Error(t, err)

	summary, err := Run(context.Background(), Config{Count: 0, Workers: 1,
		MinWidth: 1, MaxWidth: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, summary.Count)
}

func TestCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Run(ctx, Config{Count: 1000, Workers: 2, MinWidth: 1,
		MaxWidth: 8}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCheck(t *testing.T) {
	mr := bitvec.MustParse("10001011")
	md := bitvec.MustParse("01011011")

	result, err := multiplier.New(mr, md).Multiply()
	require.NoError(t, err)
	assert.NoError(t, Check(mr, md, result))

	// Corrupt the product and the iteration count.
	result.Product = bitvec.MustParse("0011000101101000")
	result.Iterations = 3
	err = Check(mr, md, result)
	require.Error(t, err)

	var merr *multierror.Error
	require.ErrorAs(t, err, &merr)
	assert.Len(t, merr.Errors, 2)

	// A consumed mask outside the register.
	result, err = multiplier.New(mr, md).Multiply()
	require.NoError(t, err)
	result.Steps[0].Consumed = bitvec.MustParse("1000000")
	assert.Error(t, Check(mr, md, result))
}

func TestTiming(t *testing.T) {
	summary, err := Run(context.Background(), Config{Count: 10, Workers: 2,
		MinWidth: 1, MaxWidth: 8}, nil)
	require.NoError(t, err)
	require.NotNil(t, summary.Timing)
	require.Len(t, summary.Timing.Samples, 2)
	assert.Equal(t, "Operands", summary.Timing.Samples[0].Label)
	assert.Equal(t, []string{"10"}, summary.Timing.Samples[1].Cols)
	assert.Len(t, summary.Timing.Samples[1].Samples, 2)
	assert.Equal(t, summary.Elapsed, summary.Timing.Total())

	var buf bytes.Buffer
	summary.Timing.Print(&buf, tabulate.ASCII)
	assert.Contains(t, buf.String(), "Multiply")
	assert.Contains(t, buf.String(), "Emulate")
	assert.Contains(t, buf.String(), "Total")

	buf.Reset()
	NewTiming().Print(&buf, tabulate.ASCII)
	assert.Empty(t, buf.String())
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	ctx := logging.NewContext(context.Background(), zap.New(core))

	_, err := Run(ctx, Config{Count: 4, Workers: 2, MinWidth: 1,
		MaxWidth: 8}, nil)
	require.NoError(t, err)

	assert.Equal(t, 1, logs.FilterMessage("sweep started").Len())
	assert.Equal(t, 1, logs.FilterMessage("sweep done").Len())
}

func TestMode(t *testing.T) {
	assert.Equal(t, "flat", Config{}.Mode())
	assert.Equal(t, "twolevel", Config{TwoLevel: true}.Mode())
	assert.Equal(t, "netlist", Config{Netlist: true}.Mode())
	assert.Equal(t, "twolevel-netlist",
		Config{TwoLevel: true, Netlist: true}.Mode())
}
