//
// Copyright (c) 2023-2026 Markku Rossi
//
// All rights reserved.
//

package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/markkurossi/twolevel/logging"
	"github.com/markkurossi/twolevel/metrics"
	"github.com/markkurossi/twolevel/sweep"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newSweepCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Cross-check the multiplier over pseudorandom operands",
		Long: `sweep multiplies pseudorandom operand pairs in parallel and checks
each product, iteration count, and consumed bit mask against
reference arithmetic. The operands are derived from the seed so a
sweep is reproducible.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.sweep(cmd.Context())
		},
	}
	flags := cmd.Flags()
	flags.Int("count", 1000, "number of multiplications")
	flags.Int("workers", 4, "number of parallel workers")
	flags.Int("min-width", 1, "minimum operand width")
	flags.Int("max-width", 64, "maximum operand width")
	flags.Int64("seed", 1, "operand generator seed")
	flags.String("metrics-addr", "",
		"serve prometheus metrics at address during the sweep")
	flags.Bool("timing", false, "print sweep phase timing")
	a.bind(flags, "sweep.count", "count")
	a.bind(flags, "sweep.workers", "workers")
	a.bind(flags, "sweep.minwidth", "min-width")
	a.bind(flags, "sweep.maxwidth", "max-width")
	a.bind(flags, "sweep.seed", "seed")
	a.bind(flags, "sweep.metricsaddr", "metrics-addr")
	a.bind(flags, "sweep.timing", "timing")

	return cmd
}

func (a *app) sweep(ctx context.Context) error {
	if err := a.cfg.Sweep.Validate(); err != nil {
		return err
	}
	sc := a.cfg.Sweep
	cfg := sweep.Config{
		Count:    sc.Count,
		Workers:  sc.Workers,
		MinWidth: sc.MinWidth,
		MaxWidth: sc.MaxWidth,
		Seed:     sc.Seed,
		TwoLevel: a.cfg.TwoLevel,
		Netlist:  a.cfg.Netlist,
	}

	logger := logging.FromContext(ctx)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	reg := prometheus.NewRegistry()
	collector := metrics.New(reg)

	if len(sc.MetricsAddr) > 0 {
		server := &http.Server{
			Addr: sc.MetricsAddr,
			Handler: promhttp.HandlerFor(reg, promhttp.HandlerOpts{
				Registry: reg,
			}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			err := server.ListenAndServe()
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error("metrics server failed", zap.Error(err))
			}
		}()
		defer func() {
			sctx, cancel := context.WithTimeout(context.Background(),
				5*time.Second)
			defer cancel()
			server.Shutdown(sctx)
		}()
		logger.Info("serving metrics", zap.String("addr", sc.MetricsAddr))
	}

	summary, err := sweep.Run(ctx, cfg, collector)
	if summary != nil {
		fmt.Fprintf(a.out, "Sweep: %s\n", summary)
		if sc.Timing && err == nil {
			reporter, rerr := a.cfg.Reporter()
			if rerr != nil {
				return rerr
			}
			summary.Timing.Print(a.out, reporter.Style)
		}
	}
	return err
}
