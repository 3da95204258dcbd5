package config

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"github.com/zeusync/listbench/internal/core/syncset"
	"github.com/zeusync/listbench/internal/core/workload"
)

// Positional parameter names, in command line order.
var ParamNames = []string{"initial", "operations", "member", "insert", "delete", "workers"}

// BenchmarkConfig holds the validated parameters of a single run.
type BenchmarkConfig struct {
	InitialCount    int     `yaml:"initial"`
	TotalOperations int     `yaml:"operations"`
	MemberFraction  float64 `yaml:"member"`
	InsertFraction  float64 `yaml:"insert"`
	DeleteFraction  float64 `yaml:"delete"`
	Workers         int     `yaml:"workers"`
	Seed            uint64  `yaml:"seed,omitempty"`
}

// Parse reads the six positional parameters. The worker count may be omitted
// for the unsynchronized strategy, where it defaults to 1.
func Parse(strategy syncset.Strategy, args []string) (BenchmarkConfig, error) {
	const required = 5

	if len(args) > len(ParamNames) {
		return BenchmarkConfig{}, newError("args", "", fmt.Errorf("%w: got %d, want %d", ErrTooManyArguments, len(args), len(ParamNames)))
	}
	if len(args) < required || (len(args) == required && strategy != syncset.StrategyUnsynchronized) {
		missing := ParamNames[len(args)]
		return BenchmarkConfig{}, newError(missing, "", ErrMissingArgument)
	}

	var (
		cfg  BenchmarkConfig
		errs []error
	)

	cfg.InitialCount = parseInt(ParamNames[0], args[0], &errs)
	cfg.TotalOperations = parseInt(ParamNames[1], args[1], &errs)
	cfg.MemberFraction = parseFloat(ParamNames[2], args[2], &errs)
	cfg.InsertFraction = parseFloat(ParamNames[3], args[3], &errs)
	cfg.DeleteFraction = parseFloat(ParamNames[4], args[4], &errs)

	cfg.Workers = 1
	if len(args) == len(ParamNames) {
		cfg.Workers = parseInt(ParamNames[5], args[5], &errs)
	}

	if len(errs) > 0 {
		return BenchmarkConfig{}, errors.Join(errs...)
	}

	if err := cfg.Validate(strategy); err != nil {
		return BenchmarkConfig{}, err
	}

	return cfg, nil
}

func parseInt(param, raw string, errs *[]error) int {
	v, err := strconv.Atoi(raw)
	if err != nil {
		*errs = append(*errs, newError(param, raw, ErrInvalidArgument))
	}
	return v
}

func parseFloat(param, raw string, errs *[]error) float64 {
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) {
		*errs = append(*errs, newError(param, raw, ErrInvalidArgument))
	}
	return v
}

// Validate checks ranges and the worker count against strategy. Fractions are
// not required to sum to 1.
func (c BenchmarkConfig) Validate(strategy syncset.Strategy) error {
	var errs []error

	if c.InitialCount < 0 {
		errs = append(errs, newError("initial", strconv.Itoa(c.InitialCount), ErrNegativeCount))
	} else if c.InitialCount > workload.ValueRange {
		errs = append(errs, newError("initial", strconv.Itoa(c.InitialCount),
			fmt.Errorf("%w: at most %d unique values", ErrInitialExceedsRange, workload.ValueRange)))
	}

	if c.TotalOperations < 0 {
		errs = append(errs, newError("operations", strconv.Itoa(c.TotalOperations), ErrNegativeCount))
	}

	for _, f := range []struct {
		name  string
		value float64
	}{
		{"member", c.MemberFraction},
		{"insert", c.InsertFraction},
		{"delete", c.DeleteFraction},
	} {
		if f.value < 0 || f.value > 1 || math.IsNaN(f.value) {
			errs = append(errs, newError(f.name, strconv.FormatFloat(f.value, 'g', -1, 64), ErrFractionRange))
		}
	}

	if c.Workers < 1 {
		errs = append(errs, newError("workers", strconv.Itoa(c.Workers), fmt.Errorf("%w: must be positive", ErrWorkerCount)))
	} else if limit := strategy.MaxWorkers(); limit > 0 && c.Workers > limit {
		errs = append(errs, newError("workers", strconv.Itoa(c.Workers),
			fmt.Errorf("%w: %s supports at most %d", ErrWorkerCount, strategy, limit)))
	}

	return errors.Join(errs...)
}

// OpsPerWorker divides the total evenly. Remainder operations are dropped.
func (c BenchmarkConfig) OpsPerWorker() int {
	if c.Workers <= 0 {
		return 0
	}
	return c.TotalOperations / c.Workers
}

// DroppedOperations is the remainder lost to integer division.
func (c BenchmarkConfig) DroppedOperations() int {
	return c.TotalOperations - c.OpsPerWorker()*c.Workers
}

// InsertsPerWorker is the insert share of one worker's slice.
func (c BenchmarkConfig) InsertsPerWorker() int {
	inserts, _ := workload.Counts(c.OpsPerWorker(), c.InsertFraction, c.DeleteFraction)
	return inserts
}

// DeletesPerWorker is the delete share of one worker's slice.
func (c BenchmarkConfig) DeletesPerWorker() int {
	_, deletes := workload.Counts(c.OpsPerWorker(), c.InsertFraction, c.DeleteFraction)
	return deletes
}

// FractionSum adds up the three configured fractions.
func (c BenchmarkConfig) FractionSum() float64 {
	return c.MemberFraction + c.InsertFraction + c.DeleteFraction
}

// BalancedFractions reports whether the fractions sum to 1 within rounding.
func (c BenchmarkConfig) BalancedFractions() bool {
	return math.Abs(c.FractionSum()-1) < 1e-9
}
