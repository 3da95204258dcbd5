package harness

import (
	"context"
	"fmt"
	"time"

	"github.com/zeusync/listbench/internal/bench/config"
	"github.com/zeusync/listbench/internal/core/list"
	"github.com/zeusync/listbench/internal/core/observability/log"
	"github.com/zeusync/listbench/internal/core/syncset"
	"github.com/zeusync/listbench/internal/core/workload"
	"github.com/zeusync/listbench/pkg/concurrent"
)

// MaxPopulationAttempts bounds the draws spent filling the initial set. Filling
// the whole operand range needs about ValueRange*ln(ValueRange) draws on average.
const MaxPopulationAttempts = 64 * workload.ValueRange

// Stream indexes for seed derivation. Workers use 0..n-1.
const (
	populationStream = -1
	shuffleStream    = -2
)

// Result describes one timed run.
type Result struct {
	Strategy     syncset.Strategy
	Workers      int
	OpsPerWorker int
	Elapsed      time.Duration
	Stats        Stats
	FinalSize    int
}

// Millis returns the elapsed wall time in whole milliseconds.
func (r Result) Millis() int64 {
	return r.Elapsed.Milliseconds()
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. Defaults to a no-op logger.
func WithLogger(logger log.Log) Option {
	return func(h *Harness) {
		h.logger = logger
	}
}

// WithSeed fixes the run level seed, overriding BenchmarkConfig.Seed.
func WithSeed(seed uint64) Option {
	return func(h *Harness) {
		h.seed = seed
	}
}

// Harness owns one benchmark run: the shared set, the workload and the workers.
// It is driven from a single goroutine.
type Harness struct {
	cfg      config.BenchmarkConfig
	strategy syncset.Strategy
	logger   log.Log
	seed     uint64
	attempts int // Population draw budget

	set      syncset.Set
	tags     []workload.OperationTag
	tornDown bool
}

// New validates cfg against strategy and returns a Harness ready for Setup.
func New(cfg config.BenchmarkConfig, strategy syncset.Strategy, opts ...Option) (*Harness, error) {
	if err := cfg.Validate(strategy); err != nil {
		return nil, err
	}

	h := &Harness{
		cfg:      cfg,
		strategy: strategy,
		seed:     cfg.Seed,
		attempts: MaxPopulationAttempts,
	}
	for _, opt := range opts {
		opt(h)
	}

	if h.logger == nil {
		h.logger = log.NewNop()
	}
	if h.seed == 0 {
		h.seed = uint64(time.Now().UnixNano())
	}
	h.logger = h.logger.With(log.String("strategy", strategy.String()), log.Int("workers", cfg.Workers))

	return h, nil
}

// Seed returns the run level seed in use.
func (h *Harness) Seed() uint64 {
	return h.seed
}

// Setup builds the set and fills it with InitialCount unique operands. It runs
// before any worker exists, so the list is filled directly with no locking.
func (h *Harness) Setup() error {
	if h.tornDown {
		return ErrTornDown
	}
	if h.set != nil {
		return ErrAlreadySetUp
	}

	l := list.New()
	ops := workload.NewOperands(workload.DeriveSeed(h.seed, populationStream))

	attempts := 0
	for l.Len() < h.cfg.InitialCount {
		if attempts >= h.attempts {
			filled := l.Len()
			l.Destroy()
			return fmt.Errorf("%w: %d of %d after %d draws",
				ErrPopulationExhausted, filled, h.cfg.InitialCount, attempts)
		}
		attempts++
		l.Insert(ops.Next())
	}

	set, err := syncset.New(h.strategy, l)
	if err != nil {
		l.Destroy()
		return err
	}
	h.set = set

	h.logger.Debug("set populated",
		log.Int("initial", h.cfg.InitialCount),
		log.Int("draws", attempts))

	return nil
}

// BuildWorkload generates the shuffled tag sequence every worker runs. The
// sequence is read-only once Run starts.
func (h *Harness) BuildWorkload() []workload.OperationTag {
	perWorker := h.cfg.OpsPerWorker()
	inserts, deletes := h.cfg.InsertsPerWorker(), h.cfg.DeletesPerWorker()

	rng := workload.NewRand(workload.DeriveSeed(h.seed, shuffleStream))
	h.tags = workload.GenerateTags(perWorker, inserts, deletes, rng)

	if dropped := h.cfg.DroppedOperations(); dropped > 0 {
		h.logger.Debug("operations dropped by uneven split",
			log.Int("total", h.cfg.TotalOperations),
			log.Int("dropped", dropped))
	}
	if !h.cfg.BalancedFractions() {
		h.logger.Warn("operation fractions do not sum to 1",
			log.Float64("sum", h.cfg.FractionSum()))
	}

	h.logger.Debug("workload built",
		log.Int("per_worker", perWorker),
		log.Int("inserts", inserts),
		log.Int("deletes", deletes),
		log.Int("members", perWorker-min(perWorker, inserts+deletes)))

	return h.tags
}

// Run times the workers from the first spawn to the last completion. There is
// no cancellation: Run waits for every worker regardless of ctx. Run ids are
// bound by whoever builds the logger handed to WithLogger.
func (h *Harness) Run(ctx context.Context) (Result, error) {
	switch {
	case h.tornDown:
		return Result{}, ErrTornDown
	case h.set == nil:
		return Result{}, ErrNotSetUp
	case h.tags == nil:
		return Result{}, ErrNoWorkload
	}

	start := time.Now()
	perWorker, err := concurrent.Collect(ctx, h.cfg.Workers, h.work)
	elapsed := time.Since(start)
	if err != nil {
		return Result{}, err
	}

	var stats Stats
	for _, s := range perWorker {
		stats.Merge(s)
	}

	res := Result{
		Strategy:     h.strategy,
		Workers:      h.cfg.Workers,
		OpsPerWorker: len(h.tags),
		Elapsed:      elapsed,
		Stats:        stats,
		FinalSize:    h.set.Len(),
	}

	h.logger.Debug("run complete",
		append(stats.fields(),
			log.Duration("elapsed", elapsed),
			log.Int("final_size", res.FinalSize))...)

	return res, nil
}

// work is one worker's loop: draw an operand, dispatch by tag, repeat.
func (h *Harness) work(_ context.Context, worker int) (Stats, error) {
	var stats Stats
	ops := workload.NewOperands(workload.DeriveSeed(h.seed, worker))
	for _, tag := range h.tags {
		stats.Record(tag, syncset.Do(h.set, tag, ops.Next()))
	}
	return stats, nil
}

// Values snapshots the set for inspection. It returns nil before Setup or after Teardown.
func (h *Harness) Values() []int {
	if h.set == nil {
		return nil
	}
	return h.set.Values()
}

// Teardown releases the set. Calling it more than once is a no-op.
func (h *Harness) Teardown() {
	if h.tornDown {
		return
	}
	h.tornDown = true
	if h.set != nil {
		h.set.Destroy()
		h.set = nil
	}
	h.tags = nil
}

// Execute runs Setup, BuildWorkload and Run, then tears down.
func (h *Harness) Execute(ctx context.Context) (Result, error) {
	defer h.Teardown()

	if err := h.Setup(); err != nil {
		return Result{}, err
	}
	h.BuildWorkload()

	return h.Run(ctx)
}
