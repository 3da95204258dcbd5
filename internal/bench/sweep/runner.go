package sweep

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/zeusync/listbench/internal/bench/harness"
	"github.com/zeusync/listbench/internal/core/observability/log"
	"github.com/zeusync/listbench/internal/core/syncset"
	"github.com/zeusync/listbench/internal/core/workload"
)

// Runner executes a Plan in-process, one harness per sample.
type Runner struct {
	logger log.Log
	seed   uint64
	runs   uint64
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithRunnerLogger sets the logger handed to every harness.
func WithRunnerLogger(logger log.Log) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// WithBaseSeed makes the sweep reproducible. Each sample derives its own seed.
func WithBaseSeed(seed uint64) RunnerOption {
	return func(r *Runner) {
		r.seed = seed
	}
}

// NewRunner returns a Runner with a no-op logger and a time based seed unless
// options say otherwise.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.NewNop()
	}
	if r.seed == 0 {
		r.seed = uint64(time.Now().UnixNano())
	}
	return r
}

// Run measures every case of plan and returns the collected report.
func (r *Runner) Run(ctx context.Context, plan Plan) (*Report, error) {
	if err := plan.Validate(); err != nil {
		return nil, err
	}

	report := &Report{
		ID:      uuid.NewString(),
		Samples: plan.Samples,
		Seed:    r.seed,
	}
	ctx = log.ContextWithRunID(ctx, report.ID)
	logger := r.logger.WithContext(ctx)

	for _, c := range plan.Cases {
		caseReport := CaseReport{
			Name:       c.Name,
			Initial:    c.Initial,
			Operations: c.Operations,
			Member:     c.Member,
			Insert:     c.Insert,
			Delete:     c.Delete,
		}

		strategies, err := c.strategies()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", c.Name, err)
		}
		for _, strategy := range strategies {
			series := Series{Strategy: strategy.String()}
			for _, workers := range c.workers(strategy) {
				m, err := r.measure(ctx, logger, c, strategy, workers, plan.Samples)
				if err != nil {
					return nil, fmt.Errorf("%s/%s/%d: %w", c.Name, strategy, workers, err)
				}
				series.Measurements = append(series.Measurements, m)

				logger.Info("measurement complete",
					log.String("case", c.Name),
					log.String("strategy", strategy.String()),
					log.Int("workers", workers),
					log.Float64("mean_ms", m.Mean),
					log.Float64("stddev_ms", m.StdDev))
			}
			caseReport.Series = append(caseReport.Series, series)
		}
		report.Cases = append(report.Cases, caseReport)
	}

	return report, nil
}

func (r *Runner) measure(ctx context.Context, logger log.Log, c Case, strategy syncset.Strategy, workers, samples int) (Measurement, error) {
	cfg := c.config(workers)
	millis := make([]float64, 0, samples)

	for range samples {
		// Single runs are never interrupted; a sweep stops between samples.
		if err := ctx.Err(); err != nil {
			return Measurement{}, err
		}

		r.runs++
		h, err := harness.New(cfg, strategy,
			harness.WithLogger(logger),
			harness.WithSeed(workload.DeriveSeed(r.seed, int(r.runs))))
		if err != nil {
			return Measurement{}, err
		}

		res, err := h.Execute(ctx)
		if err != nil {
			return Measurement{}, err
		}
		millis = append(millis, float64(res.Elapsed)/float64(time.Millisecond))
	}

	return Measurement{
		Threads:   workers,
		Summary:   Summarize(millis),
		SamplesMS: millis,
	}, nil
}
