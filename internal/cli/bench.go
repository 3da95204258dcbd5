package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/google/uuid"

	"github.com/zeusync/listbench/internal/bench/config"
	"github.com/zeusync/listbench/internal/core/observability/log"
	"github.com/zeusync/listbench/internal/core/syncset"
	"github.com/zeusync/listbench/internal/injector"
)

// Exit codes.
const (
	ExitOK     = 0
	ExitConfig = 1
	ExitRun    = 2
)

// Bench runs a single timed benchmark for strategy with positional args and
// writes the elapsed milliseconds to stdout. Diagnostics go to stderr only.
func Bench(ctx context.Context, strategy syncset.Strategy, args []string, stdout, stderr io.Writer) int {
	logger := injector.InitializeLogger(injector.LoggerConfig{Level: log.LevelWarn, Writer: stderr})
	defer func() { _ = logger.Sync() }()

	runID := uuid.NewString()
	ctx = log.ContextWithRunID(ctx, runID)
	logger = logger.WithContext(ctx)

	cfg, err := config.Parse(strategy, args)
	if err != nil {
		logger.Error("invalid configuration",
			log.String("strategy", strategy.String()),
			log.Strings("args", args),
			log.String("usage", Usage(strategy)),
			log.Error(err))
		return ExitConfig
	}

	h, err := injector.InitializeHarness(logger, cfg, strategy)
	if err != nil {
		logger.Error("invalid configuration", log.Error(err))
		return ExitConfig
	}

	res, err := h.Execute(ctx)
	if err != nil {
		logger.Error("benchmark failed", log.Error(err))
		return ExitRun
	}

	if _, err = fmt.Fprintf(stdout, "%d\n", res.Millis()); err != nil {
		logger.Error("write result", log.Error(err))
		return ExitRun
	}

	return ExitOK
}

// Usage describes the positional parameters for strategy.
func Usage(strategy syncset.Strategy) string {
	if strategy == syncset.StrategyUnsynchronized {
		return "<initial> <operations> <member> <insert> <delete> [workers=1]"
	}
	return "<initial> <operations> <member> <insert> <delete> <workers>"
}
