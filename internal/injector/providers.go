package injector

import (
	"io"

	"github.com/google/wire"

	"github.com/zeusync/listbench/internal/bench/config"
	"github.com/zeusync/listbench/internal/bench/harness"
	"github.com/zeusync/listbench/internal/bench/sweep"
	"github.com/zeusync/listbench/internal/core/observability/log"
	"github.com/zeusync/listbench/internal/core/syncset"
)

// LoggerConfig selects the level and sink of the process logger.
type LoggerConfig struct {
	Level  log.Level
	Writer io.Writer // Optional; stderr when nil
}

// SweepSeed is the base seed of a sweep. Zero picks a time based seed.
type SweepSeed uint64

func ProvideLogger(cfg LoggerConfig) log.Log {
	if cfg.Writer != nil {
		return log.New(cfg.Level, log.WithWriter(cfg.Writer))
	}
	return log.New(cfg.Level)
}

func ProvideHarness(logger log.Log, cfg config.BenchmarkConfig, strategy syncset.Strategy) (*harness.Harness, error) {
	return harness.New(cfg, strategy, harness.WithLogger(logger))
}

func ProvideRunner(logger log.Log, seed SweepSeed) *sweep.Runner {
	return sweep.NewRunner(sweep.WithRunnerLogger(logger), sweep.WithBaseSeed(uint64(seed)))
}

var (
	LoggerSet  = wire.NewSet(ProvideLogger)
	HarnessSet = wire.NewSet(ProvideHarness)
	SweepSet   = wire.NewSet(ProvideRunner)
)
