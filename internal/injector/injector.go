//go:build wireinject
// +build wireinject

// The build tag makes sure the stub is not built in the final build.

package injector

import (
	"github.com/google/wire"

	"github.com/zeusync/listbench/internal/bench/config"
	"github.com/zeusync/listbench/internal/bench/harness"
	"github.com/zeusync/listbench/internal/bench/sweep"
	"github.com/zeusync/listbench/internal/core/observability/log"
	"github.com/zeusync/listbench/internal/core/syncset"
)

func InitializeLogger(cfg LoggerConfig) log.Log {
	wire.Build(LoggerSet)
	return nil
}

func InitializeHarness(logger log.Log, cfg config.BenchmarkConfig, strategy syncset.Strategy) (*harness.Harness, error) {
	wire.Build(HarnessSet)
	return nil, nil
}

func InitializeRunner(logger log.Log, seed SweepSeed) *sweep.Runner {
	wire.Build(SweepSet)
	return nil
}
