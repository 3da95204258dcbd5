package harness

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/zeusync/listbench/internal/bench/config"
	"github.com/zeusync/listbench/internal/core/observability/log"
	"github.com/zeusync/listbench/internal/core/syncset"
	"github.com/zeusync/listbench/internal/core/workload"
)

func literalConfig() config.BenchmarkConfig {
	return config.BenchmarkConfig{
		InitialCount:    100,
		TotalOperations: 1000,
		MemberFraction:  0.5,
		InsertFraction:  0.3,
		DeleteFraction:  0.2,
		Workers:         4,
	}
}

func isAscending(values []int) bool {
	for i := 1; i < len(values); i++ {
		if values[i-1] >= values[i] {
			return false
		}
	}
	return true
}

func TestHarness_LiteralScenario(t *testing.T) {
	for _, strategy := range []syncset.Strategy{syncset.StrategyExclusive, syncset.StrategyReadWrite} {
		t.Run(strategy.String(), func(t *testing.T) {
			h, err := New(literalConfig(), strategy, WithSeed(2024))
			require.NoError(t, err)
			require.Equal(t, uint64(2024), h.Seed())

			require.NoError(t, h.Setup())
			require.Len(t, h.Values(), 100)

			tags := h.BuildWorkload()
			require.Len(t, tags, 250)
			ins, del, mem := workload.Tally(tags)
			require.Equal(t, 75, ins)
			require.Equal(t, 50, del)
			require.Equal(t, 125, mem)

			res, err := h.Run(context.Background())
			require.NoError(t, err)
			require.GreaterOrEqual(t, res.Millis(), int64(0))
			require.Equal(t, 4, res.Workers)
			require.Equal(t, 250, res.OpsPerWorker)
			require.EqualValues(t, 1000, res.Stats.Total())
			require.EqualValues(t, 300, res.Stats.Inserts)
			require.EqualValues(t, 200, res.Stats.Deletes)
			require.EqualValues(t, 500, res.Stats.Members)

			values := h.Values()
			require.True(t, isAscending(values))
			require.Equal(t, res.FinalSize, len(values))
			require.EqualValues(t, 100+res.Stats.NetGrowth(), res.FinalSize)

			h.Teardown()
			require.Nil(t, h.Values())
		})
	}
}

func TestHarness_Serial(t *testing.T) {
	cfg := literalConfig()
	cfg.Workers = 1

	h, err := New(cfg, syncset.StrategyUnsynchronized, WithSeed(1))
	require.NoError(t, err)

	res, err := h.Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1000, res.OpsPerWorker)
	require.EqualValues(t, 1000, res.Stats.Total())

	_, err = New(literalConfig(), syncset.StrategyUnsynchronized)
	require.ErrorIs(t, err, config.ErrWorkerCount)
}

func TestHarness_ZeroOperations(t *testing.T) {
	cfg := literalConfig()
	cfg.TotalOperations = 0

	h, err := New(cfg, syncset.StrategyReadWrite)
	require.NoError(t, err)
	require.NotZero(t, h.Seed())

	res, err := h.Execute(context.Background())
	require.NoError(t, err)
	require.Zero(t, res.OpsPerWorker)
	require.Zero(t, res.Stats.Total())
	require.GreaterOrEqual(t, res.Millis(), int64(0))
	require.Equal(t, 100, res.FinalSize)
}

func TestHarness_DroppedRemainder(t *testing.T) {
	cfg := literalConfig()
	cfg.TotalOperations = 1003

	h, err := New(cfg, syncset.StrategyExclusive, WithSeed(3))
	require.NoError(t, err)

	res, err := h.Execute(context.Background())
	require.NoError(t, err)
	require.Equal(t, 250, res.OpsPerWorker)
	require.EqualValues(t, 1000, res.Stats.Total())
}

func TestHarness_Lifecycle(t *testing.T) {
	h, err := New(literalConfig(), syncset.StrategyExclusive)
	require.NoError(t, err)

	_, err = h.Run(context.Background())
	require.ErrorIs(t, err, ErrNotSetUp)

	require.NoError(t, h.Setup())
	require.ErrorIs(t, h.Setup(), ErrAlreadySetUp)

	_, err = h.Run(context.Background())
	require.ErrorIs(t, err, ErrNoWorkload)

	h.BuildWorkload()
	h.Teardown()
	h.Teardown()

	_, err = h.Run(context.Background())
	require.ErrorIs(t, err, ErrTornDown)
	require.ErrorIs(t, h.Setup(), ErrTornDown)
}

func TestHarness_Population(t *testing.T) {
	t.Run("Unique Values", func(t *testing.T) {
		cfg := config.BenchmarkConfig{InitialCount: 3000, Workers: 1}
		h, err := New(cfg, syncset.StrategyUnsynchronized, WithSeed(9))
		require.NoError(t, err)

		require.NoError(t, h.Setup())
		values := h.Values()
		require.Len(t, values, 3000)
		require.True(t, isAscending(values))
		require.GreaterOrEqual(t, values[0], 0)
		require.LessOrEqual(t, values[len(values)-1], workload.MaxValue)
		h.Teardown()
	})

	t.Run("Beyond Range", func(t *testing.T) {
		cfg := config.BenchmarkConfig{InitialCount: workload.ValueRange + 1, Workers: 1}
		_, err := New(cfg, syncset.StrategyUnsynchronized)
		require.ErrorIs(t, err, config.ErrInitialExceedsRange)
	})

	t.Run("Bounded Draws", func(t *testing.T) {
		cfg := config.BenchmarkConfig{InitialCount: 5000, Workers: 1}
		h, err := New(cfg, syncset.StrategyUnsynchronized)
		require.NoError(t, err)
		h.attempts = 100

		require.ErrorIs(t, h.Setup(), ErrPopulationExhausted)
		require.Nil(t, h.Values())
	})

	t.Run("Deterministic For Seed", func(t *testing.T) {
		build := func() []int {
			h, err := New(literalConfig(), syncset.StrategyExclusive, WithSeed(77))
			require.NoError(t, err)
			require.NoError(t, h.Setup())
			defer h.Teardown()
			return h.Values()
		}
		require.Equal(t, build(), build())
	})
}

func TestStats(t *testing.T) {
	var a, b Stats
	a.Record(workload.Insert, true)
	a.Record(workload.Insert, false)
	a.Record(workload.Delete, true)
	b.Record(workload.Member, true)
	b.Record(workload.Member, false)

	a.Merge(b)
	require.Equal(t, Stats{Inserts: 2, InsertHits: 1, Deletes: 1, DeleteHits: 1, Members: 2, MemberHits: 1}, a)
	require.EqualValues(t, 5, a.Total())
	require.Zero(t, a.NetGrowth())
}

func BenchmarkHarness(b *testing.B) {
	cfg := config.BenchmarkConfig{
		InitialCount:    1000,
		TotalOperations: 10000,
		MemberFraction:  0.9,
		InsertFraction:  0.05,
		DeleteFraction:  0.05,
	}

	for _, strategy := range syncset.Strategies {
		b.Run(strategy.String(), func(b *testing.B) {
			cfg := cfg
			cfg.Workers = 4
			if strategy == syncset.StrategyUnsynchronized {
				cfg.Workers = 1
			}
			for i := 0; i < b.N; i++ {
				h, err := New(cfg, strategy)
				require.NoError(b, err)
				_, err = h.Execute(context.Background())
				require.NoError(b, err)
			}
		})
	}
}

func TestHarness_RunIDLoggedOnce(t *testing.T) {
	var buf strings.Builder
	ctx := log.ContextWithRunID(context.Background(), "run-1")
	logger := log.New(log.LevelDebug, log.WithWriter(&buf)).WithContext(ctx)

	h, err := New(literalConfig(), syncset.StrategyExclusive, WithLogger(logger), WithSeed(3))
	require.NoError(t, err)
	_, err = h.Execute(ctx)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)
	for _, line := range lines {
		require.Equal(t, 1, strings.Count(line, `"run_id"`), line)
	}
}
